package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadreach/internal/domain"
)

func TestMessagesList(t *testing.T) {
	var captured domain.MessageFilter
	app := newTestApp()
	app.Messages = &fakeMessageRepo{
		list: func(_ context.Context, filter domain.MessageFilter) ([]domain.Message, int, error) {
			captured = filter
			return []domain.Message{{ID: "m1", LeadID: "l1"}}, 1, nil
		},
	}

	rec := doRequest(app.MessagesList, httptest.NewRequest(http.MethodGet, "/v1/messages?lead_id=l1&status=Sent&page=2&limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.MessageFilter{LeadID: "l1", Status: domain.MessageStatusSent, Page: 2, Limit: 5}, captured)

	var resp messageListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Len(t, resp.Messages, 1)
}

func TestMessagesListRejectsUnknownStatus(t *testing.T) {
	called := false
	app := newTestApp()
	app.Messages = &fakeMessageRepo{
		list: func(context.Context, domain.MessageFilter) ([]domain.Message, int, error) {
			called = true
			return nil, 0, nil
		},
	}

	rec := doRequest(app.MessagesList, httptest.NewRequest(http.MethodGet, "/v1/messages?status=Bogus", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called, "repository reached with invalid status filter")
}

func TestMessagesCreate(t *testing.T) {
	app := newTestApp()
	app.Messages = &fakeMessageRepo{
		create: func(_ context.Context, data domain.CreateMessageData) (*domain.Message, error) {
			return &domain.Message{ID: "m1", LeadID: data.LeadID, Content: data.Content, Status: domain.MessageStatusDraft}, nil
		},
	}

	body := `{"lead_id":"l1","content":"Hi Jane!"}`
	rec := doRequest(app.MessagesCreate, httptest.NewRequest(http.MethodPost, "/v1/messages", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"id":"m1"`)
}

func TestMessagesCreateValidation(t *testing.T) {
	app := newTestApp()
	rec := doRequest(app.MessagesCreate, httptest.NewRequest(http.MethodPost, "/v1/messages", strings.NewReader(`{"content":"no lead"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMessagesUpdate(t *testing.T) {
	var captured domain.UpdateMessageData
	app := newTestApp()
	app.Messages = &fakeMessageRepo{
		update: func(_ context.Context, id string, data domain.UpdateMessageData) (*domain.Message, error) {
			captured = data
			return &domain.Message{ID: id, Status: *data.Status}, nil
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodPut, "/v1/messages/m1", strings.NewReader(`{"status":"Approved"}`)), "id", "m1")
	rec := doRequest(app.MessagesUpdate, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured.Status)
	assert.Equal(t, domain.MessageStatusApproved, *captured.Status)
}

func TestMessagesUpdateRejectsUnknownStatus(t *testing.T) {
	called := false
	app := newTestApp()
	app.Messages = &fakeMessageRepo{
		update: func(context.Context, string, domain.UpdateMessageData) (*domain.Message, error) {
			called = true
			return nil, nil
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodPut, "/v1/messages/m1", strings.NewReader(`{"status":"Bogus"}`)), "id", "m1")
	rec := doRequest(app.MessagesUpdate, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called, "repository reached with invalid status")
}

func TestMessagesGetNotFound(t *testing.T) {
	app := newTestApp()
	app.Messages = &fakeMessageRepo{
		getByID: func(context.Context, string) (*domain.Message, error) {
			return nil, domain.ErrNotFound
		},
	}
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/v1/messages/nope", nil), "id", "nope")
	assert.Equal(t, http.StatusNotFound, doRequest(app.MessagesGet, req).Code)
}

func TestMessagesDelete(t *testing.T) {
	app := newTestApp()
	app.Messages = &fakeMessageRepo{
		delete: func(_ context.Context, id string) error {
			if id != "m1" {
				return domain.ErrNotFound
			}
			return nil
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/v1/messages/m1", nil), "id", "m1")
	assert.Equal(t, http.StatusOK, doRequest(app.MessagesDelete, req).Code)

	req = withURLParam(httptest.NewRequest(http.MethodDelete, "/v1/messages/other", nil), "id", "other")
	assert.Equal(t, http.StatusNotFound, doRequest(app.MessagesDelete, req).Code)
}
