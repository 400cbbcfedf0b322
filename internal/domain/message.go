package domain

import "time"

// MessageStyle controls the tone of a generated message.
type MessageStyle string

const (
	StyleProfessional MessageStyle = "professional"
	StyleFriendly     MessageStyle = "friendly"
	StyleCasual       MessageStyle = "casual"
	StyleFormal       MessageStyle = "formal"
	StyleEnthusiastic MessageStyle = "enthusiastic"
)

// MessageTarget controls the purpose of a generated message.
type MessageTarget string

const (
	TargetConnection    MessageTarget = "connection"
	TargetBusiness      MessageTarget = "business"
	TargetRecruitment   MessageTarget = "recruitment"
	TargetNetworking    MessageTarget = "networking"
	TargetEvent         MessageTarget = "event"
	TargetCollaboration MessageTarget = "collaboration"
)

// MessageLength controls how long a generated message should be.
type MessageLength string

const (
	LengthShort    MessageLength = "short"
	LengthStandard MessageLength = "standard"
	LengthDetailed MessageLength = "detailed"
)

// Experience is one employment entry from a LinkedIn profile.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

// Education is one education entry from a LinkedIn profile.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
	Field  string `json:"field,omitempty"`
	Year   string `json:"year,omitempty"`
}

// LinkedInData is optional profile enrichment supplied with a generation
// request.
type LinkedInData struct {
	Headline    string       `json:"headline,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Experience  []Experience `json:"experience,omitempty"`
	Education   []Education  `json:"education,omitempty"`
	Skills      []string     `json:"skills,omitempty"`
	Location    string       `json:"location,omitempty"`
	Connections int          `json:"connections,omitempty"`
}

// GenerationRequest drives one prompt-assembly and generation cycle.
// Name, role and company are required; every other field is a soft hint.
// Unrecognized style/target/length values fall back to defaults rather than
// failing the request.
type GenerationRequest struct {
	Name          string        `json:"name" validate:"required"`
	Role          string        `json:"role" validate:"required"`
	Company       string        `json:"company" validate:"required"`
	LinkedInURL   string        `json:"linkedin_url,omitempty"`
	Industry      string        `json:"industry,omitempty"`
	CompanySize   string        `json:"company_size,omitempty"`
	LinkedInData  *LinkedInData `json:"linkedin_data,omitempty"`
	Style         MessageStyle  `json:"style,omitempty"`
	Target        MessageTarget `json:"target,omitempty"`
	Length        MessageLength `json:"length,omitempty"`
	IncludeEmojis bool          `json:"include_emojis,omitempty"`
	CustomContext string        `json:"custom_context,omitempty"`
}

// GeneratedMessage is the outcome of one generation cycle.
type GeneratedMessage struct {
	Message         string        `json:"message"`
	Style           MessageStyle  `json:"style"`
	Target          MessageTarget `json:"target"`
	Length          MessageLength `json:"length"`
	CharacterCount  int           `json:"character_count"`
	ConfidenceScore float64       `json:"confidence_score"`
	Suggestions     []string      `json:"suggestions,omitempty"`
}

// MessageStatus enumerates the workflow states of a stored message.
type MessageStatus string

const (
	MessageStatusDraft    MessageStatus = "Draft"
	MessageStatusApproved MessageStatus = "Approved"
	MessageStatusSent     MessageStatus = "Sent"
)

// ValidMessageStatus reports whether s is one of the known message statuses.
func ValidMessageStatus(s MessageStatus) bool {
	switch s {
	case MessageStatusDraft, MessageStatusApproved, MessageStatusSent:
		return true
	}
	return false
}

// Message is a persisted outreach message tied to a lead.
type Message struct {
	ID             string        `json:"id"`
	LeadID         string        `json:"lead_id"`
	Content        string        `json:"content"`
	Status         MessageStatus `json:"status"`
	TemplateUsed   string        `json:"template_used,omitempty"`
	AIModel        string        `json:"ai_model,omitempty"`
	CharacterCount int           `json:"character_count,omitempty"`
	GeneratedAt    time.Time     `json:"generated_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	Lead           *LeadSummary  `json:"lead,omitempty"`
}

// LeadSummary is the subset of lead fields embedded in message listings.
type LeadSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
}

// CreateMessageData carries the fields accepted when storing a message.
type CreateMessageData struct {
	LeadID         string `json:"lead_id" validate:"required"`
	Content        string `json:"content" validate:"required"`
	TemplateUsed   string `json:"template_used"`
	AIModel        string `json:"ai_model"`
	CharacterCount int    `json:"character_count"`
}

// UpdateMessageData carries optional updates to a stored message.
type UpdateMessageData struct {
	Content *string        `json:"content"`
	Status  *MessageStatus `json:"status"`
}

// MessageFilter narrows message listings.
type MessageFilter struct {
	LeadID string
	Status MessageStatus
	Page   int
	Limit  int
}
