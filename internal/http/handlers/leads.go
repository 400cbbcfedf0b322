package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"leadreach/internal/domain"
)

type leadListResponse struct {
	Leads []domain.Lead `json:"leads"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// LeadsList returns a page of leads, newest first, optionally filtered by
// status.
func (a *App) LeadsList(w http.ResponseWriter, r *http.Request) {
	filter := domain.LeadFilter{
		Status: domain.LeadStatus(r.URL.Query().Get("status")),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 10),
	}
	if filter.Status != "" && !domain.ValidLeadStatus(filter.Status) {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid status filter")
		return
	}
	leads, total, err := a.Leads.List(r.Context(), filter)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to list leads")
		a.error(w, http.StatusInternalServerError, "internal", "failed to fetch leads")
		return
	}
	if leads == nil {
		leads = []domain.Lead{}
	}
	a.json(w, http.StatusOK, leadListResponse{Leads: leads, Total: total, Page: filter.Page, Limit: filter.Limit})
}

// LeadsCreate stores a new lead.
func (a *App) LeadsCreate(w http.ResponseWriter, r *http.Request) {
	var data domain.CreateLeadData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Validate.Struct(data); err != nil {
		a.error(w, http.StatusBadRequest, "missing_required_field", "missing required fields: name, role, company")
		return
	}
	lead, err := a.Leads.Create(r.Context(), data)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to create lead")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create lead")
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"lead": lead, "success": true})
}

// LeadsGet fetches one lead by id.
func (a *App) LeadsGet(w http.ResponseWriter, r *http.Request) {
	lead, err := a.Leads.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "lead not found")
			return
		}
		a.Logger.Error().Err(err).Msg("failed to load lead")
		a.error(w, http.StatusInternalServerError, "internal", "failed to fetch lead")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"lead": lead, "success": true})
}

// LeadsUpdate applies a partial update to a lead.
func (a *App) LeadsUpdate(w http.ResponseWriter, r *http.Request) {
	var data domain.UpdateLeadData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if data.Status != nil && !domain.ValidLeadStatus(*data.Status) {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid status")
		return
	}
	lead, err := a.Leads.Update(r.Context(), chi.URLParam(r, "id"), data)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "lead not found")
			return
		}
		a.Logger.Error().Err(err).Msg("failed to update lead")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update lead")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"lead": lead, "success": true})
}

// LeadsDelete removes a lead.
func (a *App) LeadsDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.Leads.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "lead not found")
			return
		}
		a.Logger.Error().Err(err).Msg("failed to delete lead")
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete lead")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true})
}

func queryInt(r *http.Request, key string, fallback int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
