package handlers

import (
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadreach/internal/domain"
)

func TestLeadsExportCSV(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	pages := 0
	app := newTestApp()
	app.Leads = &fakeLeadRepo{
		list: func(_ context.Context, filter domain.LeadFilter) ([]domain.Lead, int, error) {
			pages++
			require.Equal(t, exportPageSize, filter.Limit)
			if filter.Page > 1 {
				return nil, 1, nil
			}
			return []domain.Lead{{
				ID: "l1", Name: "Jane", Role: "CTO", Company: "Acme",
				Status: domain.LeadStatusDraft, CreatedAt: now, UpdatedAt: now,
			}}, 1, nil
		},
	}

	rec := doRequest(app.LeadsExportCSV, httptest.NewRequest(http.MethodGet, "/v1/leads/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=leads-")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Id", records[0][0])
	assert.Equal(t, "Linkedin Url", records[0][4])
	assert.Equal(t, []string{
		"l1", "Jane", "CTO", "Acme", "", "", "", "", "", "", "Draft",
		"2026-08-01T12:00:00Z", "2026-08-01T12:00:00Z",
	}, records[1])
	assert.Equal(t, 1, pages)
}

func TestMessagesExportCSVIncludesLeadColumns(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	app := newTestApp()
	app.Messages = &fakeMessageRepo{
		list: func(context.Context, domain.MessageFilter) ([]domain.Message, int, error) {
			return []domain.Message{{
				ID: "m1", LeadID: "l1", Content: "Hi, \"Jane\"", Status: domain.MessageStatusDraft,
				AIModel: "gpt-3.5-turbo", CharacterCount: 10,
				GeneratedAt: now, UpdatedAt: now,
				Lead: &domain.LeadSummary{ID: "l1", Name: "Jane", Company: "Acme"},
			}}, 1, nil
		},
	}

	rec := doRequest(app.MessagesExportCSV, httptest.NewRequest(http.MethodGet, "/v1/messages/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Lead Name", records[0][2])
	row := records[1]
	assert.Equal(t, "Jane", row[2])
	assert.Equal(t, "Acme", row[3])
	// Embedded quotes survive the csv round trip.
	assert.Equal(t, `Hi, "Jane"`, row[4])
	assert.Equal(t, "10", row[8])
}

func TestStatsSummary(t *testing.T) {
	app := newTestApp()
	app.Stats = &fakeStatsRepo{
		summary: func(context.Context) (*domain.StatsSummary, error) {
			return &domain.StatsSummary{TotalLeads: 4, TotalMessages: 2, MessagesLast24h: 1}, nil
		},
	}

	rec := doRequest(app.StatsSummary, httptest.NewRequest(http.MethodGet, "/v1/stats/summary", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"total_leads":4`)
	assert.Contains(t, body, `"messages_last_24h":1`)
}

func TestHealth(t *testing.T) {
	app := newTestApp()
	rec := doRequest(app.Health, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"status":"ok"`))
}
