package outreach

import (
	"fmt"
	"strings"
)

// SystemPersona is the fixed system-level instruction sent with every
// generation call.
const SystemPersona = "You are a professional networking expert who writes personalized LinkedIn outreach messages."

// BuildPrompt assembles the instruction string for the text-generation
// provider. Section order is fixed and sections without content are omitted
// entirely, so identical inputs always produce byte-identical prompts.
func BuildPrompt(req NormalizedRequest, c Context) string {
	style := StyleProfileFor(req.Style)
	target := TargetProfileFor(req.Target)
	length := LengthProfileFor(req.Length)

	sb := &strings.Builder{}

	// 1. Persona framing.
	if c.Industry != nil {
		fmt.Fprintf(sb, "You are an expert at networking outreach in the %s industry.\n", c.Industry.Name)
	} else {
		sb.WriteString("You are an expert at professional networking outreach.\n")
	}
	sb.WriteString("Write a personalized LinkedIn outreach message.\n")

	// 2. Target person.
	sb.WriteString("\nTarget person:\n")
	fmt.Fprintf(sb, "- Name: %s\n", req.Name)
	fmt.Fprintf(sb, "- Role: %s (%s level)\n", req.Role, c.RoleLevel)
	fmt.Fprintf(sb, "- Company: %s\n", req.Company)
	if c.CompanySizeHint != "" {
		fmt.Fprintf(sb, "- Company size: %s\n", c.CompanySizeHint)
	}
	if c.Industry != nil {
		fmt.Fprintf(sb, "- Industry: %s\n", c.Industry.Name)
	}

	// 3. Message requirements.
	sb.WriteString("\nMessage requirements:\n")
	fmt.Fprintf(sb, "- Tone: %s\n", style.Tone)
	fmt.Fprintf(sb, "- Purpose: %s\n", target.Purpose)
	fmt.Fprintf(sb, "- Length: %s (max %d characters)\n", length.Description, length.MaxChars)
	if req.IncludeEmojis {
		sb.WriteString("- Include 1-2 relevant emojis where they fit naturally\n")
	} else {
		sb.WriteString("- Do not use emojis\n")
	}
	fmt.Fprintf(sb, "- Formality: %s\n", style.Formality)

	// 4. LinkedIn enrichment.
	if c.LinkedInSummary != "" {
		sb.WriteString("\nLinkedIn profile:\n")
		sb.WriteString(c.LinkedInSummary)
		sb.WriteString("\n")
	}

	// 5. Personalization hints.
	if len(c.Hints) > 0 {
		sb.WriteString("\nPersonalization hints:\n")
		for _, hint := range c.Hints {
			fmt.Fprintf(sb, "- %s\n", hint)
		}
	}

	// 6. Caller-supplied context, verbatim.
	if req.CustomContext != "" {
		sb.WriteString("\nAdditional context:\n")
		sb.WriteString(req.CustomContext)
		sb.WriteString("\n")
	}

	// 7. Closing instructions.
	sb.WriteString("\nInstructions:\n")
	sb.WriteString("- Write as if a real person wrote it, not a template.\n")
	fmt.Fprintf(sb, "- Keep the tone %s.\n", style.Tone)
	fmt.Fprintf(sb, "- Focus on the goal: %s.\n", target.Purpose)
	fmt.Fprintf(sb, "- Stay under %d characters.\n", length.MaxChars)
	fmt.Fprintf(sb, "- End with a call to action: %s.\n", target.CallToAction)
	sb.WriteString("- Reference concrete details from the profile when available.\n")

	// 8. Output contract.
	sb.WriteString("\nReturn only the message body, with no preamble or extra formatting.")

	return sb.String()
}
