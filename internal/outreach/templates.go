package outreach

import (
	"regexp"
	"strings"

	"leadreach/internal/domain"
)

// Template is a reusable outreach message with {variable} placeholders. The
// template system is a UI-facing convenience and deliberately separate from
// prompt assembly; templates are never fed to the model.
type Template struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Industry    string               `json:"industry,omitempty"`
	Style       domain.MessageStyle  `json:"style"`
	Target      domain.MessageTarget `json:"target"`
	Length      domain.MessageLength `json:"length"`
	Template    string               `json:"template"`
	Variables   []string             `json:"variables"`
	IsDefault   bool                 `json:"is_default"`
}

var defaultTemplates = []Template{
	{
		ID:          "tech-connection",
		Name:        "Tech Industry Connection",
		Description: "Professional initial outreach for technology industry",
		Industry:    "technology",
		Style:       domain.StyleProfessional,
		Target:      domain.TargetConnection,
		Length:      domain.LengthStandard,
		Template:    "Hi {name}, I noticed your work on {project} and was impressed by your approach to {challenge}. I'd love to connect and discuss industry trends. Would you be open to a brief conversation?",
		Variables:   []string{"name", "project", "challenge"},
		IsDefault:   true,
	},
	{
		ID:          "startup-collaboration",
		Name:        "Startup Partnership",
		Description: "Explore collaboration opportunities with startups",
		Industry:    "technology",
		Style:       domain.StyleEnthusiastic,
		Target:      domain.TargetBusiness,
		Length:      domain.LengthDetailed,
		Template:    "Hi {name}! I came across {company} and was excited to see what you're building in the {industry} space. Your approach to {specific_aspect} really caught my attention. I'd love to explore potential collaboration opportunities. Are you open to discussing how we might work together?",
		Variables:   []string{"name", "company", "industry", "specific_aspect"},
		IsDefault:   true,
	},
	{
		ID:          "finance-networking",
		Name:        "Finance Industry Networking",
		Description: "Professional networking expansion in finance sector",
		Industry:    "finance",
		Style:       domain.StyleFormal,
		Target:      domain.TargetNetworking,
		Length:      domain.LengthStandard,
		Template:    "Dear {name}, I hope this message finds you well. I noticed your role at {company} and your expertise in {area_of_expertise}. I would appreciate the opportunity to connect and discuss developments in the {industry} sector. Would you be available for a brief conversation?",
		Variables:   []string{"name", "company", "area_of_expertise", "industry"},
		IsDefault:   true,
	},
	{
		ID:          "healthcare-partnership",
		Name:        "Healthcare Collaboration",
		Description: "Explore partnership opportunities in healthcare",
		Industry:    "healthcare",
		Style:       domain.StyleProfessional,
		Target:      domain.TargetBusiness,
		Length:      domain.LengthDetailed,
		Template:    "Hello {name}, I hope you're doing well. I've been following {company}'s work in {specific_area} and am impressed by your innovative approach to {challenge}. I believe there could be valuable partnership opportunities between our organizations. Would you be interested in discussing potential collaboration?",
		Variables:   []string{"name", "company", "specific_area", "challenge"},
		IsDefault:   true,
	},
	{
		ID:          "recruitment-senior",
		Name:        "Senior Talent Recruitment",
		Description: "Recruitment outreach for senior positions",
		Style:       domain.StyleProfessional,
		Target:      domain.TargetRecruitment,
		Length:      domain.LengthStandard,
		Template:    "Hi {name}, I hope this message finds you well. I came across your profile and was impressed by your experience in {field}. We're currently looking for a {position} at {company} and I believe your background would be a great fit. Would you be interested in learning more about this opportunity?",
		Variables:   []string{"name", "field", "position", "company"},
		IsDefault:   true,
	},
	{
		ID:          "event-invitation",
		Name:        "Event Invitation",
		Description: "Invitation to industry events or conferences",
		Style:       domain.StyleFriendly,
		Target:      domain.TargetEvent,
		Length:      domain.LengthShort,
		Template:    "Hi {name}! I wanted to personally invite you to {event_name} on {date}. Given your expertise in {area}, I think you'd find the discussions on {topic} particularly valuable. Would you be interested in attending?",
		Variables:   []string{"name", "event_name", "date", "area", "topic"},
		IsDefault:   true,
	},
	{
		ID:          "casual-connection",
		Name:        "Casual Connection",
		Description: "Light and friendly initial outreach",
		Style:       domain.StyleCasual,
		Target:      domain.TargetConnection,
		Length:      domain.LengthShort,
		Template:    "Hey {name}! I noticed we both work in {industry} and I thought it would be great to connect. I'm always interested in meeting fellow professionals in the space. Would love to chat sometime!",
		Variables:   []string{"name", "industry"},
		IsDefault:   true,
	},
}

var templateVariableRegexp = regexp.MustCompile(`\{([^}]+)\}`)

// DefaultTemplates returns a copy of the built-in template library.
func DefaultTemplates() []Template {
	out := make([]Template, len(defaultTemplates))
	copy(out, defaultTemplates)
	return out
}

// RecommendTemplates filters the library by the given criteria and returns
// the top three matches. Empty criteria match everything; industry-agnostic
// templates match any industry.
func RecommendTemplates(industry string, style domain.MessageStyle, target domain.MessageTarget) []Template {
	industry = strings.ToLower(strings.TrimSpace(industry))
	var out []Template
	for _, t := range defaultTemplates {
		if industry != "" && t.Industry != "" && t.Industry != industry {
			continue
		}
		if style != "" && t.Style != style {
			continue
		}
		if target != "" && t.Target != target {
			continue
		}
		out = append(out, t)
		if len(out) == 3 {
			break
		}
	}
	return out
}

// ParseTemplateVariables extracts the distinct {variable} names in order of
// first appearance.
func ParseTemplateVariables(template string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, match := range templateVariableRegexp.FindAllStringSubmatch(template, -1) {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// FillTemplate substitutes known variables into the template. Placeholders
// with no supplied value pass through unchanged so the caller can see what is
// still missing.
func FillTemplate(template string, variables map[string]string) string {
	return templateVariableRegexp.ReplaceAllStringFunc(template, func(placeholder string) string {
		name := strings.Trim(placeholder, "{}")
		if value, ok := variables[name]; ok {
			return value
		}
		return placeholder
	})
}

// ValidateTemplate checks that a template's declared variables match the
// placeholders its body actually uses.
func ValidateTemplate(t Template) []string {
	var errs []string
	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, "template name cannot be empty")
	}
	if strings.TrimSpace(t.Template) == "" {
		errs = append(errs, "template content cannot be empty")
	}
	parsed := ParseTemplateVariables(t.Template)
	if len(parsed) == 0 {
		errs = append(errs, "template must contain at least one variable")
	}
	declared := make(map[string]struct{}, len(t.Variables))
	for _, v := range t.Variables {
		declared[v] = struct{}{}
	}
	for _, v := range parsed {
		if _, ok := declared[v]; !ok {
			errs = append(errs, "template uses undeclared variable: "+v)
		}
	}
	used := make(map[string]struct{}, len(parsed))
	for _, v := range parsed {
		used[v] = struct{}{}
	}
	for _, v := range t.Variables {
		if _, ok := used[v]; !ok {
			errs = append(errs, "variable declared but not used: "+v)
		}
	}
	return errs
}
