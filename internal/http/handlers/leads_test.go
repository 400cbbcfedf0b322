package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadreach/internal/domain"
)

func TestLeadsList(t *testing.T) {
	var captured domain.LeadFilter
	app := newTestApp()
	app.Leads = &fakeLeadRepo{
		list: func(_ context.Context, filter domain.LeadFilter) ([]domain.Lead, int, error) {
			captured = filter
			return []domain.Lead{{ID: "l1", Name: "Jane"}}, 1, nil
		},
	}

	rec := doRequest(app.LeadsList, httptest.NewRequest(http.MethodGet, "/v1/leads?status=Draft&page=2&limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.LeadFilter{Status: domain.LeadStatusDraft, Page: 2, Limit: 5}, captured)

	var resp leadListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Len(t, resp.Leads, 1)
}

func TestLeadsListRejectsUnknownStatus(t *testing.T) {
	app := newTestApp()
	rec := doRequest(app.LeadsList, httptest.NewRequest(http.MethodGet, "/v1/leads?status=Bogus", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadsListEmptyPageIsNotNull(t *testing.T) {
	app := newTestApp()
	app.Leads = &fakeLeadRepo{
		list: func(context.Context, domain.LeadFilter) ([]domain.Lead, int, error) {
			return nil, 0, nil
		},
	}
	rec := doRequest(app.LeadsList, httptest.NewRequest(http.MethodGet, "/v1/leads", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"leads":[]`)
}

func TestLeadsCreate(t *testing.T) {
	app := newTestApp()
	app.Leads = &fakeLeadRepo{
		create: func(_ context.Context, data domain.CreateLeadData) (*domain.Lead, error) {
			return &domain.Lead{ID: "l1", Name: data.Name, Status: domain.LeadStatusDraft}, nil
		},
	}

	body := `{"name":"Jane","role":"CTO","company":"Acme","email":"jane@acme.io"}`
	rec := doRequest(app.LeadsCreate, httptest.NewRequest(http.MethodPost, "/v1/leads", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"id":"l1"`)
}

func TestLeadsCreateValidation(t *testing.T) {
	app := newTestApp()
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"role":"CTO","company":"Acme"}`},
		{"bad email", `{"name":"Jane","role":"CTO","company":"Acme","email":"not-an-email"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(app.LeadsCreate, httptest.NewRequest(http.MethodPost, "/v1/leads", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLeadsGetNotFound(t *testing.T) {
	app := newTestApp()
	app.Leads = &fakeLeadRepo{
		getByID: func(context.Context, string) (*domain.Lead, error) {
			return nil, domain.ErrNotFound
		},
	}
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/v1/leads/nope", nil), "id", "nope")
	rec := doRequest(app.LeadsGet, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadsUpdate(t *testing.T) {
	var capturedID string
	var captured domain.UpdateLeadData
	app := newTestApp()
	app.Leads = &fakeLeadRepo{
		update: func(_ context.Context, id string, data domain.UpdateLeadData) (*domain.Lead, error) {
			capturedID, captured = id, data
			return &domain.Lead{ID: id, Status: *data.Status}, nil
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodPut, "/v1/leads/l1", strings.NewReader(`{"status":"Approved"}`)), "id", "l1")
	rec := doRequest(app.LeadsUpdate, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "l1", capturedID)
	require.NotNil(t, captured.Status)
	assert.Equal(t, domain.LeadStatusApproved, *captured.Status)
}

func TestLeadsUpdateRejectsUnknownStatus(t *testing.T) {
	app := newTestApp()
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/v1/leads/l1", strings.NewReader(`{"status":"Archived"}`)), "id", "l1")
	rec := doRequest(app.LeadsUpdate, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadsDelete(t *testing.T) {
	app := newTestApp()
	app.Leads = &fakeLeadRepo{
		delete: func(_ context.Context, id string) error {
			if id != "l1" {
				return domain.ErrNotFound
			}
			return nil
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/v1/leads/l1", nil), "id", "l1")
	assert.Equal(t, http.StatusOK, doRequest(app.LeadsDelete, req).Code)

	req = withURLParam(httptest.NewRequest(http.MethodDelete, "/v1/leads/other", nil), "id", "other")
	assert.Equal(t, http.StatusNotFound, doRequest(app.LeadsDelete, req).Code)
}

func TestLeadsBulkImport(t *testing.T) {
	created := 0
	app := newTestApp()
	app.Leads = &fakeLeadRepo{
		exists: func(_ context.Context, name, _ string) (bool, error) {
			return name == "Dupe", nil
		},
		create: func(_ context.Context, data domain.CreateLeadData) (*domain.Lead, error) {
			created++
			return &domain.Lead{ID: "new", Name: data.Name}, nil
		},
	}

	body := `{"leads":[
		{"name":"Jane","role":"CTO","company":"Acme"},
		{"name":"Dupe","role":"CEO","company":"Acme"},
		{"name":"","role":"CFO","company":"Acme"}
	]}`
	rec := doRequest(app.LeadsBulkImport, httptest.NewRequest(http.MethodPost, "/v1/leads/bulk", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var result domain.BulkImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 1, result.Duplicates)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, 1, created)
}

func TestLeadsBulkImportHidesRepositoryErrors(t *testing.T) {
	app := newTestApp()
	app.Leads = &fakeLeadRepo{
		exists: func(context.Context, string, string) (bool, error) { return false, nil },
		create: func(context.Context, domain.CreateLeadData) (*domain.Lead, error) {
			return nil, errors.New(`pq: relation "leads" does not exist`)
		},
	}

	body := `{"leads":[{"name":"Jane","role":"CTO","company":"Acme"}]}`
	rec := doRequest(app.LeadsBulkImport, httptest.NewRequest(http.MethodPost, "/v1/leads/bulk", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var result domain.BulkImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "row 1: could not save lead", result.Errors[0])
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestLeadsBulkDelete(t *testing.T) {
	app := newTestApp()
	app.Leads = &fakeLeadRepo{
		deleteMany: func(_ context.Context, ids []string) (int, error) {
			return len(ids), nil
		},
	}

	rec := doRequest(app.LeadsBulkDelete, httptest.NewRequest(http.MethodDelete, "/v1/leads/bulk", strings.NewReader(`{"ids":["a","b"]}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deleted_count":2`)

	rec = doRequest(app.LeadsBulkDelete, httptest.NewRequest(http.MethodDelete, "/v1/leads/bulk", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadsBulkUpdate(t *testing.T) {
	app := newTestApp()
	app.Leads = &fakeLeadRepo{
		updateStatusMany: func(_ context.Context, ids []string, status domain.LeadStatus) (int, error) {
			require.Equal(t, domain.LeadStatusSent, status)
			return len(ids), nil
		},
	}

	rec := doRequest(app.LeadsBulkUpdate, httptest.NewRequest(http.MethodPatch, "/v1/leads/bulk", strings.NewReader(`{"ids":["a"],"status":"Sent"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated_count":1`)

	rec = doRequest(app.LeadsBulkUpdate, httptest.NewRequest(http.MethodPatch, "/v1/leads/bulk", strings.NewReader(`{"ids":["a"],"status":"Bogus"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadsImportCSV(t *testing.T) {
	var created []domain.CreateLeadData
	app := newTestApp()
	app.Leads = &fakeLeadRepo{
		exists: func(context.Context, string, string) (bool, error) { return false, nil },
		create: func(_ context.Context, data domain.CreateLeadData) (*domain.Lead, error) {
			created = append(created, data)
			return &domain.Lead{ID: "new"}, nil
		},
	}

	csvBody := "name,role,company,employee_count\n" +
		"Jane,CTO,Acme,8\n" +
		"Bob,CEO,Bigcorp,5000\n"
	rec := doRequest(app.LeadsImportCSV, httptest.NewRequest(http.MethodPost, "/v1/leads/import", strings.NewReader(csvBody)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, created, 2)
	// company_size is derived from employee_count when absent.
	assert.Equal(t, "startup", created[0].CompanySize)
	assert.Equal(t, "enterprise", created[1].CompanySize)
}

func TestLeadsImportCSVUnknownColumn(t *testing.T) {
	app := newTestApp()
	rec := doRequest(app.LeadsImportCSV, httptest.NewRequest(http.MethodPost, "/v1/leads/import", strings.NewReader("name,favorite_color\nJane,blue\n")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "favorite_color")
}
