package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"leadreach/internal/domain"
)

// StatsRepositoryPG computes dashboard counters in a single round trip.
type StatsRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepositoryPG.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepositoryPG {
	return &StatsRepositoryPG{pool: pool}
}

// Summary returns lead and message counts by status plus messages generated
// in the last 24 hours.
func (r *StatsRepositoryPG) Summary(ctx context.Context) (*domain.StatsSummary, error) {
	query := `
SELECT
  (SELECT COUNT(*) FROM leads),
  (SELECT COUNT(*) FROM leads WHERE status = 'Draft'),
  (SELECT COUNT(*) FROM leads WHERE status = 'Approved'),
  (SELECT COUNT(*) FROM leads WHERE status = 'Sent'),
  (SELECT COUNT(*) FROM messages),
  (SELECT COUNT(*) FROM messages WHERE status = 'Draft'),
  (SELECT COUNT(*) FROM messages WHERE status = 'Approved'),
  (SELECT COUNT(*) FROM messages WHERE status = 'Sent'),
  (SELECT COUNT(*) FROM messages WHERE generated_at >= NOW() - INTERVAL '24 hours');
`
	var s domain.StatsSummary
	row := r.pool.QueryRow(ctx, query)
	if err := row.Scan(
		&s.TotalLeads, &s.LeadsDraft, &s.LeadsApproved, &s.LeadsSent,
		&s.TotalMessages, &s.MessagesDraft, &s.MessagesApproved, &s.MessagesSent,
		&s.MessagesLast24h,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

var _ domain.StatsRepository = (*StatsRepositoryPG)(nil)
