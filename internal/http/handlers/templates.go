package handlers

import (
	"encoding/json"
	"net/http"

	"leadreach/internal/domain"
	"leadreach/internal/outreach"
)

// TemplatesList returns the built-in template library, optionally filtered by
// industry, style and target (top three matches when any filter is set).
func (a *App) TemplatesList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	industry := q.Get("industry")
	style := domain.MessageStyle(q.Get("style"))
	target := domain.MessageTarget(q.Get("target"))

	var templates []outreach.Template
	if industry == "" && style == "" && target == "" {
		templates = outreach.DefaultTemplates()
	} else {
		templates = outreach.RecommendTemplates(industry, style, target)
	}
	if templates == nil {
		templates = []outreach.Template{}
	}
	a.json(w, http.StatusOK, map[string]any{"templates": templates})
}

type templateRenderRequest struct {
	TemplateID string            `json:"template_id"`
	Template   string            `json:"template"`
	Variables  map[string]string `json:"variables"`
}

// TemplatesRender fills a template with variables. Unresolved placeholders
// pass through unchanged and are reported back so the client can prompt for
// them.
func (a *App) TemplatesRender(w http.ResponseWriter, r *http.Request) {
	var req templateRenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	body := req.Template
	if req.TemplateID != "" {
		found := false
		for _, t := range outreach.DefaultTemplates() {
			if t.ID == req.TemplateID {
				body = t.Template
				found = true
				break
			}
		}
		if !found {
			a.error(w, http.StatusNotFound, "not_found", "template not found")
			return
		}
	}
	if body == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "template or template_id required")
		return
	}

	rendered := outreach.FillTemplate(body, req.Variables)
	var missing []string
	for _, v := range outreach.ParseTemplateVariables(rendered) {
		missing = append(missing, v)
	}
	if missing == nil {
		missing = []string{}
	}
	a.json(w, http.StatusOK, map[string]any{
		"rendered":  rendered,
		"missing":   missing,
		"variables": outreach.ParseTemplateVariables(body),
	})
}
