package handlers

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"leadreach/internal/domain"
	"leadreach/internal/outreach"
)

type bulkImportRequest struct {
	Leads []domain.CreateLeadData `json:"leads"`
}

// LeadsBulkImport inserts a batch of leads with per-row validation and
// duplicate detection by name+company.
func (a *App) LeadsBulkImport(w http.ResponseWriter, r *http.Request) {
	var req bulkImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Leads == nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid data format, expected array of leads")
		return
	}
	result := a.importLeads(r.Context(), req.Leads)
	a.json(w, http.StatusOK, result)
}

// LeadsBulkDelete removes the given leads by id.
func (a *App) LeadsBulkDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDs == nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid data format, expected array of ids")
		return
	}
	deleted, err := a.Leads.DeleteMany(r.Context(), req.IDs)
	if err != nil {
		a.Logger.Error().Err(err).Msg("bulk delete failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete leads")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "deleted_count": deleted})
}

// LeadsBulkUpdate sets the status on the given leads.
func (a *App) LeadsBulkUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs    []string           `json:"ids"`
		Status *domain.LeadStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDs == nil || req.Status == nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid data format, expected ids and status")
		return
	}
	if !domain.ValidLeadStatus(*req.Status) {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid status")
		return
	}
	updated, err := a.Leads.UpdateStatusMany(r.Context(), req.IDs, *req.Status)
	if err != nil {
		a.Logger.Error().Err(err).Msg("bulk update failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update leads")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "updated_count": updated})
}

// csvImportColumns is the accepted header set for CSV imports. employee_count
// is optional; when present and company_size is empty, the size label is
// derived from it.
var csvImportColumns = []string{"name", "role", "company", "linkedin_url", "industry", "company_size", "email", "location", "notes", "employee_count"}

// LeadsImportCSV parses a CSV body and imports its rows as leads. The first
// record must be a header naming a subset of the known columns.
func (a *App) LeadsImportCSV(w http.ResponseWriter, r *http.Request) {
	reader := csv.NewReader(r.Body)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid csv: missing header")
		return
	}
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for col := range index {
		if !contains(csvImportColumns, col) {
			a.error(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("invalid csv: unknown column %q", col))
			return
		}
	}

	var leads []domain.CreateLeadData
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "invalid csv: malformed row")
			return
		}
		field := func(name string) string {
			if i, ok := index[name]; ok && i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}
		lead := domain.CreateLeadData{
			Name:        field("name"),
			Role:        field("role"),
			Company:     field("company"),
			LinkedInURL: field("linkedin_url"),
			Industry:    field("industry"),
			CompanySize: field("company_size"),
			Email:       field("email"),
			Location:    field("location"),
			Notes:       field("notes"),
		}
		if lead.CompanySize == "" {
			if count, err := strconv.Atoi(field("employee_count")); err == nil {
				if size := outreach.CompanySizeCategory(count); size != "unknown" {
					lead.CompanySize = size
				}
			}
		}
		leads = append(leads, lead)
	}

	result := a.importLeads(r.Context(), leads)
	a.json(w, http.StatusOK, result)
}

func (a *App) importLeads(ctx context.Context, leads []domain.CreateLeadData) domain.BulkImportResult {
	result := domain.BulkImportResult{Errors: []string{}}
	for i, data := range leads {
		if err := a.Validate.Struct(data); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing required fields", i+1))
			continue
		}
		exists, err := a.Leads.ExistsByNameCompany(ctx, data.Name, data.Company)
		if err != nil {
			a.Logger.Error().Err(err).Int("row", i+1).Msg("lead import duplicate check failed")
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: could not save lead", i+1))
			continue
		}
		if exists {
			result.Duplicates++
			continue
		}
		if _, err := a.Leads.Create(ctx, data); err != nil {
			a.Logger.Error().Err(err).Int("row", i+1).Msg("lead import insert failed")
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: could not save lead", i+1))
			continue
		}
		result.Success++
	}
	return result
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
