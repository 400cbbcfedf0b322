package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadreach/internal/domain"
)

const messageColumns = `m.id, m.lead_id, m.content, m.status, m.template_used, m.ai_model, m.character_count, m.generated_at, m.updated_at,
       l.id, l.name, l.role, l.company`

// MessageRepositoryPG implements domain.MessageRepository backed by
// PostgreSQL. Listings join the owning lead for display.
type MessageRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepositoryPG.
func NewMessageRepository(pool *pgxpool.Pool) *MessageRepositoryPG {
	return &MessageRepositoryPG{pool: pool}
}

// Create inserts a message for a lead with Draft status.
func (r *MessageRepositoryPG) Create(ctx context.Context, data domain.CreateMessageData) (*domain.Message, error) {
	query := `
WITH inserted AS (
    INSERT INTO messages (id, lead_id, content, status, template_used, ai_model, character_count)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING *
)
SELECT ` + messageColumns + `
FROM inserted m
JOIN leads l ON l.id = m.lead_id;
`
	row := r.pool.QueryRow(ctx, query,
		uuid.NewString(),
		data.LeadID,
		data.Content,
		domain.MessageStatusDraft,
		data.TemplateUsed,
		data.AIModel,
		data.CharacterCount,
	)
	return scanMessage(row)
}

// GetByID fetches a message with its lead summary.
func (r *MessageRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages m JOIN leads l ON l.id = m.lead_id WHERE m.id = $1`
	return scanMessage(r.pool.QueryRow(ctx, query, id))
}

// List returns a page of messages, newest first, optionally filtered by lead
// and status, with the total row count.
func (r *MessageRepositoryPG) List(ctx context.Context, filter domain.MessageFilter) ([]domain.Message, int, error) {
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
	switch {
	case filter.LeadID != "" && filter.Status != "":
		where = "WHERE m.lead_id = $3 AND m.status = $4"
		args = append(args, filter.LeadID, filter.Status)
	case filter.LeadID != "":
		where = "WHERE m.lead_id = $3"
		args = append(args, filter.LeadID)
	case filter.Status != "":
		where = "WHERE m.status = $3"
		args = append(args, filter.Status)
	}

	query := fmt.Sprintf(`
SELECT %s, COUNT(*) OVER() AS total
FROM messages m
JOIN leads l ON l.id = m.lead_id
%s
ORDER BY m.generated_at DESC
LIMIT $1 OFFSET $2;
`, messageColumns, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []domain.Message
	var total int
	for rows.Next() {
		var m domain.Message
		var lead domain.LeadSummary
		if err := rows.Scan(
			&m.ID, &m.LeadID, &m.Content, &m.Status, &m.TemplateUsed, &m.AIModel, &m.CharacterCount,
			&m.GeneratedAt, &m.UpdatedAt,
			&lead.ID, &lead.Name, &lead.Role, &lead.Company,
			&total,
		); err != nil {
			return nil, 0, err
		}
		m.Lead = &lead
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// Update applies the non-nil fields and bumps updated_at.
func (r *MessageRepositoryPG) Update(ctx context.Context, id string, data domain.UpdateMessageData) (*domain.Message, error) {
	query := `
WITH updated AS (
    UPDATE messages
    SET content = COALESCE($2, content),
        status = COALESCE($3, status),
        character_count = COALESCE(LENGTH($2), character_count),
        updated_at = NOW()
    WHERE id = $1
    RETURNING *
)
SELECT ` + messageColumns + `
FROM updated m
JOIN leads l ON l.id = m.lead_id;
`
	row := r.pool.QueryRow(ctx, query, id, data.Content, data.Status)
	return scanMessage(row)
}

// Delete removes a message.
func (r *MessageRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message
	var lead domain.LeadSummary
	if err := row.Scan(
		&m.ID, &m.LeadID, &m.Content, &m.Status, &m.TemplateUsed, &m.AIModel, &m.CharacterCount,
		&m.GeneratedAt, &m.UpdatedAt,
		&lead.ID, &lead.Name, &lead.Role, &lead.Company,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	m.Lead = &lead
	return &m, nil
}

var _ domain.MessageRepository = (*MessageRepositoryPG)(nil)
