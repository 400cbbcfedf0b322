package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadreach/internal/domain"
)

const leadColumns = "id, name, role, company, linkedin_url, industry, company_size, email, location, notes, status, created_at, updated_at"

// LeadRepositoryPG implements domain.LeadRepository backed by PostgreSQL.
type LeadRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewLeadRepository creates a new LeadRepositoryPG.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepositoryPG {
	return &LeadRepositoryPG{pool: pool}
}

// Create inserts a new lead with Draft status.
func (r *LeadRepositoryPG) Create(ctx context.Context, data domain.CreateLeadData) (*domain.Lead, error) {
	query := `
INSERT INTO leads (id, name, role, company, linkedin_url, industry, company_size, email, location, notes, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + leadColumns + `;
`
	row := r.pool.QueryRow(ctx, query,
		uuid.NewString(),
		data.Name,
		data.Role,
		data.Company,
		data.LinkedInURL,
		data.Industry,
		data.CompanySize,
		data.Email,
		data.Location,
		data.Notes,
		domain.LeadStatusDraft,
	)
	return scanLead(row)
}

// GetByID fetches a lead by UUID.
func (r *LeadRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	return scanLead(row)
}

// List returns a page of leads, newest first, with the total row count.
func (r *LeadRepositoryPG) List(ctx context.Context, filter domain.LeadFilter) ([]domain.Lead, int, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	where := ""
	args := []any{limit, offset}
	if filter.Status != "" {
		where = "WHERE status = $3"
		args = append(args, filter.Status)
	}

	query := fmt.Sprintf(`
SELECT %s, COUNT(*) OVER() AS total
FROM leads
%s
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;
`, leadColumns, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var leads []domain.Lead
	var total int
	for rows.Next() {
		var l domain.Lead
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Role, &l.Company, &l.LinkedInURL, &l.Industry, &l.CompanySize,
			&l.Email, &l.Location, &l.Notes, &l.Status, &l.CreatedAt, &l.UpdatedAt, &total,
		); err != nil {
			return nil, 0, err
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

// Update applies the non-nil fields and bumps updated_at.
func (r *LeadRepositoryPG) Update(ctx context.Context, id string, data domain.UpdateLeadData) (*domain.Lead, error) {
	query := `
UPDATE leads
SET name = COALESCE($2, name),
    role = COALESCE($3, role),
    company = COALESCE($4, company),
    linkedin_url = COALESCE($5, linkedin_url),
    industry = COALESCE($6, industry),
    company_size = COALESCE($7, company_size),
    email = COALESCE($8, email),
    location = COALESCE($9, location),
    notes = COALESCE($10, notes),
    status = COALESCE($11, status),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + leadColumns + `;
`
	row := r.pool.QueryRow(ctx, query,
		id,
		data.Name,
		data.Role,
		data.Company,
		data.LinkedInURL,
		data.Industry,
		data.CompanySize,
		data.Email,
		data.Location,
		data.Notes,
		data.Status,
	)
	return scanLead(row)
}

// Delete removes a lead and its messages (messages cascade via FK).
func (r *LeadRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExistsByNameCompany reports whether a lead with the same name and company
// already exists. Matching is case-insensitive; used for import deduplication.
func (r *LeadRepositoryPG) ExistsByNameCompany(ctx context.Context, name, company string) (bool, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM leads WHERE LOWER(name) = LOWER($1) AND LOWER(company) = LOWER($2))`,
		strings.TrimSpace(name), strings.TrimSpace(company),
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// DeleteMany removes the given leads and returns how many were deleted.
func (r *LeadRepositoryPG) DeleteMany(ctx context.Context, ids []string) (int, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// UpdateStatusMany sets the status on the given leads and returns how many
// rows changed.
func (r *LeadRepositoryPG) UpdateStatusMany(ctx context.Context, ids []string, status domain.LeadStatus) (int, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE leads SET status = $2, updated_at = NOW() WHERE id = ANY($1)`, ids, status)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func scanLead(row pgx.Row) (*domain.Lead, error) {
	var l domain.Lead
	if err := row.Scan(
		&l.ID, &l.Name, &l.Role, &l.Company, &l.LinkedInURL, &l.Industry, &l.CompanySize,
		&l.Email, &l.Location, &l.Notes, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

var _ domain.LeadRepository = (*LeadRepositoryPG)(nil)
