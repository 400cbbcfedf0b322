package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"leadreach/internal/domain"
)

// MessageGenerator is the slice of the outreach service the handlers need.
// Kept as an interface so tests can count calls and fake outcomes.
type MessageGenerator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GeneratedMessage, error)
	Model() string
}

// App bundles the dependencies shared by all HTTP handlers.
type App struct {
	Leads     domain.LeadRepository
	Messages  domain.MessageRepository
	Stats     domain.StatsRepository
	Generator MessageGenerator
	Logger    zerolog.Logger
	Validate  *validator.Validate
}

// NewApp wires an App container.
func NewApp(leads domain.LeadRepository, messages domain.MessageRepository, stats domain.StatsRepository, gen MessageGenerator, logger zerolog.Logger) *App {
	return &App{
		Leads:     leads,
		Messages:  messages,
		Stats:     stats,
		Generator: gen,
		Logger:    logger,
		Validate:  validator.New(),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{"error": message, "code": code, "success": false})
}
