package outreach

import (
	"fmt"
	"strings"

	"leadreach/internal/domain"
)

// RoleLevel is a derived seniority classification of a free-text job title.
type RoleLevel string

const (
	RoleLevelExecutive RoleLevel = "executive"
	RoleLevelSenior    RoleLevel = "senior"
	RoleLevelMidLevel  RoleLevel = "mid-level"
	RoleLevelJunior    RoleLevel = "junior"
)

// roleLevelRules is evaluated top to bottom; the first rule with a matching
// keyword wins. The order is part of the contract: a title containing
// keywords from two categories resolves to the earlier one.
var roleLevelRules = []struct {
	Keywords []string
	Level    RoleLevel
}{
	{Keywords: []string{"ceo", "founder", "president"}, Level: RoleLevelExecutive},
	{Keywords: []string{"director", "head of", "vp"}, Level: RoleLevelSenior},
	{Keywords: []string{"manager", "lead", "senior"}, Level: RoleLevelMidLevel},
	{Keywords: []string{"associate", "coordinator", "specialist"}, Level: RoleLevelJunior},
}

// ClassifyRole maps a job title onto a RoleLevel using case-insensitive
// substring matching. Titles matching no rule default to mid-level.
func ClassifyRole(role string) RoleLevel {
	lower := strings.ToLower(role)
	for _, rule := range roleLevelRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Level
			}
		}
	}
	return RoleLevelMidLevel
}

// CompanySizeCategory buckets a raw employee count. A zero or negative count
// means the size is unknown.
func CompanySizeCategory(employeeCount int) string {
	switch {
	case employeeCount <= 0:
		return "unknown"
	case employeeCount <= 10:
		return "startup"
	case employeeCount <= 50:
		return "small"
	case employeeCount <= 200:
		return "medium"
	case employeeCount <= 1000:
		return "large"
	default:
		return "enterprise"
	}
}

var roleLevelHints = map[RoleLevel]string{
	RoleLevelExecutive: "Emphasize strategic value and high-level outcomes.",
	RoleLevelSenior:    "Emphasize leadership experience and domain expertise.",
	RoleLevelMidLevel:  "Emphasize concrete skills and recent projects.",
	RoleLevelJunior:    "Emphasize growth potential and learning opportunities.",
}

// companySizeHints only covers the two extremes. Mid-range sizes get no hint.
var companySizeHints = map[string]string{
	"startup":    "Acknowledge the fast pace and broad ownership typical of a startup.",
	"enterprise": "Acknowledge the scale and structure of an enterprise organization.",
}

const (
	linkedInSummaryLimit = 200
	linkedInSkillsLimit  = 5
	hintKeywordsLimit    = 3
	hintInterestsLimit   = 2
)

// Context holds everything the prompt assembler needs beyond the normalized
// request itself. It is derived once per call and never mutates the request.
type Context struct {
	Industry        *IndustryProfile
	RoleLevel       RoleLevel
	CompanySizeHint string
	LinkedInSummary string
	Hints           []string
}

// BuildContext derives the enrichment context for a normalized request.
func BuildContext(req NormalizedRequest) Context {
	c := Context{
		RoleLevel:       ClassifyRole(req.Role),
		CompanySizeHint: strings.TrimSpace(req.CompanySize),
	}
	if profile, ok := IndustryProfileFor(req.Industry); ok {
		c.Industry = &profile
	}
	if req.LinkedInData != nil {
		c.LinkedInSummary = summarizeLinkedIn(req.LinkedInData)
	}
	c.Hints = buildHints(c)
	return c
}

// summarizeLinkedIn renders profile enrichment as a compact block in a fixed
// line order, skipping lines whose underlying field is absent.
func summarizeLinkedIn(data *domain.LinkedInData) string {
	var lines []string
	if data.Headline != "" {
		lines = append(lines, "Headline: "+data.Headline)
	}
	if data.Summary != "" {
		lines = append(lines, "Summary: "+truncate(data.Summary, linkedInSummaryLimit))
	}
	if len(data.Experience) > 0 {
		// The first entry is treated as the current position.
		exp := data.Experience[0]
		lines = append(lines, fmt.Sprintf("Current role: %s at %s (%s)", exp.Title, exp.Company, exp.Duration))
	}
	if len(data.Skills) > 0 {
		skills := data.Skills
		if len(skills) > linkedInSkillsLimit {
			skills = skills[:linkedInSkillsLimit]
		}
		lines = append(lines, "Skills: "+strings.Join(skills, ", "))
	}
	if len(data.Education) > 0 {
		if edu := formatEducation(data.Education[0]); edu != "" {
			lines = append(lines, "Education: "+edu)
		}
	}
	if data.Location != "" {
		lines = append(lines, "Location: "+data.Location)
	}
	return strings.Join(lines, "\n")
}

func formatEducation(edu domain.Education) string {
	switch {
	case edu.School == "":
		return ""
	case edu.Degree != "" && edu.Field != "":
		return fmt.Sprintf("%s in %s, %s", edu.Degree, edu.Field, edu.School)
	case edu.Degree != "":
		return fmt.Sprintf("%s, %s", edu.Degree, edu.School)
	default:
		return edu.School
	}
}

// buildHints assembles the personalization bullet list from the matched
// industry profile, the role level and the company-size extremes.
func buildHints(c Context) []string {
	var hints []string
	if c.Industry != nil {
		hints = append(hints, "Industry tone: "+c.Industry.Tone)
		if kws := firstN(c.Industry.Keywords, hintKeywordsLimit); len(kws) > 0 {
			hints = append(hints, "Industry keywords: "+strings.Join(kws, ", "))
		}
		if interests := firstN(c.Industry.CommonInterests, hintInterestsLimit); len(interests) > 0 {
			hints = append(hints, "Shared interests: "+strings.Join(interests, ", "))
		}
	}
	hints = append(hints, roleLevelHints[c.RoleLevel])
	if hint, ok := companySizeHints[strings.ToLower(c.CompanySizeHint)]; ok {
		hints = append(hints, hint)
	}
	return hints
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
