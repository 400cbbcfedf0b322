package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"leadreach/internal/domain"
)

type fakeLeadRepo struct {
	create           func(context.Context, domain.CreateLeadData) (*domain.Lead, error)
	getByID          func(context.Context, string) (*domain.Lead, error)
	list             func(context.Context, domain.LeadFilter) ([]domain.Lead, int, error)
	update           func(context.Context, string, domain.UpdateLeadData) (*domain.Lead, error)
	delete           func(context.Context, string) error
	exists           func(context.Context, string, string) (bool, error)
	deleteMany       func(context.Context, []string) (int, error)
	updateStatusMany func(context.Context, []string, domain.LeadStatus) (int, error)
}

func (f *fakeLeadRepo) Create(ctx context.Context, data domain.CreateLeadData) (*domain.Lead, error) {
	return f.create(ctx, data)
}

func (f *fakeLeadRepo) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	return f.getByID(ctx, id)
}

func (f *fakeLeadRepo) List(ctx context.Context, filter domain.LeadFilter) ([]domain.Lead, int, error) {
	return f.list(ctx, filter)
}

func (f *fakeLeadRepo) Update(ctx context.Context, id string, data domain.UpdateLeadData) (*domain.Lead, error) {
	return f.update(ctx, id, data)
}

func (f *fakeLeadRepo) Delete(ctx context.Context, id string) error {
	return f.delete(ctx, id)
}

func (f *fakeLeadRepo) ExistsByNameCompany(ctx context.Context, name, company string) (bool, error) {
	return f.exists(ctx, name, company)
}

func (f *fakeLeadRepo) DeleteMany(ctx context.Context, ids []string) (int, error) {
	return f.deleteMany(ctx, ids)
}

func (f *fakeLeadRepo) UpdateStatusMany(ctx context.Context, ids []string, status domain.LeadStatus) (int, error) {
	return f.updateStatusMany(ctx, ids, status)
}

type fakeMessageRepo struct {
	create  func(context.Context, domain.CreateMessageData) (*domain.Message, error)
	getByID func(context.Context, string) (*domain.Message, error)
	list    func(context.Context, domain.MessageFilter) ([]domain.Message, int, error)
	update  func(context.Context, string, domain.UpdateMessageData) (*domain.Message, error)
	delete  func(context.Context, string) error
}

func (f *fakeMessageRepo) Create(ctx context.Context, data domain.CreateMessageData) (*domain.Message, error) {
	return f.create(ctx, data)
}

func (f *fakeMessageRepo) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	return f.getByID(ctx, id)
}

func (f *fakeMessageRepo) List(ctx context.Context, filter domain.MessageFilter) ([]domain.Message, int, error) {
	return f.list(ctx, filter)
}

func (f *fakeMessageRepo) Update(ctx context.Context, id string, data domain.UpdateMessageData) (*domain.Message, error) {
	return f.update(ctx, id, data)
}

func (f *fakeMessageRepo) Delete(ctx context.Context, id string) error {
	return f.delete(ctx, id)
}

type fakeStatsRepo struct {
	summary func(context.Context) (*domain.StatsSummary, error)
}

func (f *fakeStatsRepo) Summary(ctx context.Context) (*domain.StatsSummary, error) {
	return f.summary(ctx)
}

type fakeMessageGenerator struct {
	calls  int
	result *domain.GeneratedMessage
	err    error
}

func (f *fakeMessageGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GeneratedMessage, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeMessageGenerator) Model() string { return "test-model" }

func newTestApp() *App {
	return &App{
		Logger:   zerolog.Nop(),
		Validate: validator.New(),
	}
}

// withURLParam injects a chi route parameter so handlers can be exercised
// without a full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func doRequest(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, r)
	return rec
}
