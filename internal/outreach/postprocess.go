package outreach

import (
	"strings"
	"unicode/utf8"

	"leadreach/internal/domain"
)

// Placeholder quality signal until a real heuristic exists.
const defaultConfidenceScore = 0.85

// postProcess turns the raw model output into a GeneratedMessage. The length
// cap from the request's LengthProfile is advisory: over-cap messages pass
// through untruncated and callers decide how to surface them.
func postProcess(raw string, req NormalizedRequest) *domain.GeneratedMessage {
	message := strings.TrimSpace(raw)
	return &domain.GeneratedMessage{
		Message:         message,
		Style:           req.Style,
		Target:          req.Target,
		Length:          req.Length,
		CharacterCount:  utf8.RuneCountInString(message),
		ConfidenceScore: defaultConfidenceScore,
	}
}
