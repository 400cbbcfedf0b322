package domain

import "time"

// LeadStatus enumerates the outreach workflow states of a lead.
type LeadStatus string

const (
	LeadStatusDraft    LeadStatus = "Draft"
	LeadStatusApproved LeadStatus = "Approved"
	LeadStatusSent     LeadStatus = "Sent"
)

// ValidLeadStatus reports whether s is one of the known lead statuses.
func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadStatusDraft, LeadStatusApproved, LeadStatusSent:
		return true
	}
	return false
}

// Lead represents a prospective outreach recipient.
type Lead struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Company     string     `json:"company"`
	LinkedInURL string     `json:"linkedin_url,omitempty"`
	Industry    string     `json:"industry,omitempty"`
	CompanySize string     `json:"company_size,omitempty"`
	Email       string     `json:"email,omitempty"`
	Location    string     `json:"location,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Status      LeadStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateLeadData carries the fields accepted when creating a lead.
type CreateLeadData struct {
	Name        string `json:"name" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Company     string `json:"company" validate:"required"`
	LinkedInURL string `json:"linkedin_url"`
	Industry    string `json:"industry"`
	CompanySize string `json:"company_size"`
	Email       string `json:"email" validate:"omitempty,email"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
}

// UpdateLeadData carries optional updates to an existing lead. Nil fields are
// left untouched.
type UpdateLeadData struct {
	Name        *string     `json:"name"`
	Role        *string     `json:"role"`
	Company     *string     `json:"company"`
	LinkedInURL *string     `json:"linkedin_url"`
	Industry    *string     `json:"industry"`
	CompanySize *string     `json:"company_size"`
	Email       *string     `json:"email"`
	Location    *string     `json:"location"`
	Notes       *string     `json:"notes"`
	Status      *LeadStatus `json:"status"`
}

// LeadFilter narrows lead listings.
type LeadFilter struct {
	Status LeadStatus
	Page   int
	Limit  int
}

// BulkImportResult summarizes the outcome of a bulk lead import.
type BulkImportResult struct {
	Success    int      `json:"success"`
	Failed     int      `json:"failed"`
	Duplicates int      `json:"duplicates"`
	Errors     []string `json:"errors"`
}
