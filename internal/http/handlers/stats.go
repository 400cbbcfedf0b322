package handlers

import (
	"net/http"
)

// StatsSummary returns dashboard counters for leads and messages.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.Stats.Summary(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to load stats")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}
	a.json(w, http.StatusOK, summary)
}
