package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"leadreach/internal/domain"
)

type generateMessageRequest struct {
	domain.GenerationRequest
	// When set, the generated message is also stored as a draft for the lead.
	LeadID string `json:"lead_id,omitempty"`
}

type generateMessageResponse struct {
	domain.GeneratedMessage
	MessageID string `json:"message_id,omitempty"`
	Success   bool   `json:"success"`
}

// GenerateMessage runs the outreach generation pipeline for one request.
// Validation failures map to 400, upstream generation failures to 500 with a
// generic message; the upstream detail is only logged.
func (a *App) GenerateMessage(w http.ResponseWriter, r *http.Request) {
	var req generateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	result, err := a.Generator.Generate(r.Context(), req.GenerationRequest)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingRequiredField):
			a.error(w, http.StatusBadRequest, "missing_required_field", "missing required fields: name, role, company")
		case errors.Is(err, domain.ErrGenerationFailed):
			a.Logger.Error().Err(err).Msg("message generation failed")
			a.error(w, http.StatusInternalServerError, "generation_failed", "failed to generate message, please try again")
		default:
			a.Logger.Error().Err(err).Msg("message generation aborted")
			a.error(w, http.StatusInternalServerError, "internal", "failed to generate message, please try again")
		}
		return
	}

	resp := generateMessageResponse{GeneratedMessage: *result, Success: true}
	if req.LeadID != "" {
		stored, err := a.Messages.Create(r.Context(), domain.CreateMessageData{
			LeadID:         req.LeadID,
			Content:        result.Message,
			AIModel:        a.Generator.Model(),
			CharacterCount: result.CharacterCount,
		})
		if err != nil {
			// The generation succeeded; a failed save is reported but does
			// not fail the request.
			a.Logger.Error().Err(err).Str("lead_id", req.LeadID).Msg("failed to store generated message")
		} else {
			resp.MessageID = stored.ID
		}
	}
	a.json(w, http.StatusOK, resp)
}
