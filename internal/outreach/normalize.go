package outreach

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"leadreach/internal/domain"
)

// Defaults substituted when a soft parameter is absent or unrecognized.
const (
	DefaultStyle  = domain.StyleProfessional
	DefaultTarget = domain.TargetConnection
	DefaultLength = domain.LengthStandard
)

var validate = validator.New()

// NormalizedRequest is a GenerationRequest whose style, target and length are
// guaranteed to be valid enum values.
type NormalizedRequest struct {
	domain.GenerationRequest
}

// Normalize validates the required identity fields and resolves the soft
// parameters to valid enum values. Unrecognized style/target/length values
// are substituted with defaults rather than rejected; an unrecognized
// industry is left as-is and simply matches no profile downstream.
func Normalize(req domain.GenerationRequest) (NormalizedRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Role = strings.TrimSpace(req.Role)
	req.Company = strings.TrimSpace(req.Company)

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			return NormalizedRequest{}, fmt.Errorf("%w: %s", domain.ErrMissingRequiredField, strings.Join(fields, ", "))
		}
		return NormalizedRequest{}, fmt.Errorf("%w: %v", domain.ErrMissingRequiredField, err)
	}

	if _, ok := styleProfiles[req.Style]; !ok {
		req.Style = DefaultStyle
	}
	if _, ok := targetProfiles[req.Target]; !ok {
		req.Target = DefaultTarget
	}
	if _, ok := lengthProfiles[req.Length]; !ok {
		req.Length = DefaultLength
	}
	return NormalizedRequest{GenerationRequest: req}, nil
}
