package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"leadreach/internal/domain"
)

// exportPageSize bounds how many rows are pulled per repository call while
// streaming an export.
const exportPageSize = 500

var headerCaser = cases.Title(language.English)

func csvHeader(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = headerCaser.String(strings.ReplaceAll(f, "_", " "))
	}
	return out
}

// LeadsExportCSV streams all leads as a CSV download.
func (a *App) LeadsExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=leads-%s.csv", time.Now().Format("2006-01-02")))

	writer := csv.NewWriter(w)
	fields := []string{"id", "name", "role", "company", "linkedin_url", "industry", "company_size", "email", "location", "notes", "status", "created_at", "updated_at"}
	if err := writer.Write(csvHeader(fields)); err != nil {
		return
	}

	for page := 1; ; page++ {
		leads, total, err := a.Leads.List(r.Context(), domain.LeadFilter{Page: page, Limit: exportPageSize})
		if err != nil {
			a.Logger.Error().Err(err).Msg("lead export aborted")
			return
		}
		for _, l := range leads {
			record := []string{
				l.ID, l.Name, l.Role, l.Company, l.LinkedInURL, l.Industry, l.CompanySize,
				l.Email, l.Location, l.Notes, string(l.Status),
				l.CreatedAt.Format(time.RFC3339), l.UpdatedAt.Format(time.RFC3339),
			}
			if err := writer.Write(record); err != nil {
				return
			}
		}
		if page*exportPageSize >= total || len(leads) == 0 {
			break
		}
	}
	writer.Flush()
}

// MessagesExportCSV streams all messages as a CSV download, including the
// owning lead's name and company.
func (a *App) MessagesExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=messages-%s.csv", time.Now().Format("2006-01-02")))

	writer := csv.NewWriter(w)
	fields := []string{"id", "lead_id", "lead_name", "lead_company", "content", "status", "template_used", "ai_model", "character_count", "generated_at", "updated_at"}
	if err := writer.Write(csvHeader(fields)); err != nil {
		return
	}

	for page := 1; ; page++ {
		messages, total, err := a.Messages.List(r.Context(), domain.MessageFilter{Page: page, Limit: exportPageSize})
		if err != nil {
			a.Logger.Error().Err(err).Msg("message export aborted")
			return
		}
		for _, m := range messages {
			leadName, leadCompany := "", ""
			if m.Lead != nil {
				leadName, leadCompany = m.Lead.Name, m.Lead.Company
			}
			record := []string{
				m.ID, m.LeadID, leadName, leadCompany, m.Content, string(m.Status),
				m.TemplateUsed, m.AIModel, strconv.Itoa(m.CharacterCount),
				m.GeneratedAt.Format(time.RFC3339), m.UpdatedAt.Format(time.RFC3339),
			}
			if err := writer.Write(record); err != nil {
				return
			}
		}
		if page*exportPageSize >= total || len(messages) == 0 {
			break
		}
	}
	writer.Flush()
}
