package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leadreach/internal/domain"
)

type messageListResponse struct {
	Messages []domain.Message `json:"messages"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

// MessagesList returns a page of messages, newest first, optionally filtered
// by lead and status.
func (a *App) MessagesList(w http.ResponseWriter, r *http.Request) {
	filter := domain.MessageFilter{
		LeadID: r.URL.Query().Get("lead_id"),
		Status: domain.MessageStatus(r.URL.Query().Get("status")),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 10),
	}
	if filter.Status != "" && !domain.ValidMessageStatus(filter.Status) {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid status filter")
		return
	}
	messages, total, err := a.Messages.List(r.Context(), filter)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to list messages")
		a.error(w, http.StatusInternalServerError, "internal", "failed to fetch messages")
		return
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	a.json(w, http.StatusOK, messageListResponse{Messages: messages, Total: total, Page: filter.Page, Limit: filter.Limit})
}

// MessagesCreate stores a message for a lead.
func (a *App) MessagesCreate(w http.ResponseWriter, r *http.Request) {
	var data domain.CreateMessageData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Validate.Struct(data); err != nil {
		a.error(w, http.StatusBadRequest, "missing_required_field", "missing required fields: lead_id, content")
		return
	}
	message, err := a.Messages.Create(r.Context(), data)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to create message")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create message")
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"message": message, "success": true})
}

// MessagesGet fetches one message with its lead summary.
func (a *App) MessagesGet(w http.ResponseWriter, r *http.Request) {
	message, err := a.Messages.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "message not found")
			return
		}
		a.Logger.Error().Err(err).Msg("failed to load message")
		a.error(w, http.StatusInternalServerError, "internal", "failed to fetch message")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"message": message, "success": true})
}

// MessagesUpdate applies a partial update to a message.
func (a *App) MessagesUpdate(w http.ResponseWriter, r *http.Request) {
	var data domain.UpdateMessageData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if data.Status != nil && !domain.ValidMessageStatus(*data.Status) {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid status")
		return
	}
	message, err := a.Messages.Update(r.Context(), chi.URLParam(r, "id"), data)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "message not found")
			return
		}
		a.Logger.Error().Err(err).Msg("failed to update message")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update message")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"message": message, "success": true})
}

// MessagesDelete removes a message.
func (a *App) MessagesDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.Messages.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "message not found")
			return
		}
		a.Logger.Error().Err(err).Msg("failed to delete message")
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete message")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true})
}
