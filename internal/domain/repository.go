package domain

import "context"

// LeadRepository defines persistence for leads.
type LeadRepository interface {
	Create(ctx context.Context, data CreateLeadData) (*Lead, error)
	GetByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]Lead, int, error)
	Update(ctx context.Context, id string, data UpdateLeadData) (*Lead, error)
	Delete(ctx context.Context, id string) error
	ExistsByNameCompany(ctx context.Context, name, company string) (bool, error)
	DeleteMany(ctx context.Context, ids []string) (int, error)
	UpdateStatusMany(ctx context.Context, ids []string, status LeadStatus) (int, error)
}

// MessageRepository defines persistence for outreach messages.
type MessageRepository interface {
	Create(ctx context.Context, data CreateMessageData) (*Message, error)
	GetByID(ctx context.Context, id string) (*Message, error)
	List(ctx context.Context, filter MessageFilter) ([]Message, int, error)
	Update(ctx context.Context, id string, data UpdateMessageData) (*Message, error)
	Delete(ctx context.Context, id string) error
}

// StatsRepository aggregates dashboard counters.
type StatsRepository interface {
	Summary(ctx context.Context) (*StatsSummary, error)
}

// StatsSummary holds dashboard counters computed in a single round trip.
type StatsSummary struct {
	TotalLeads       int64 `json:"total_leads"`
	LeadsDraft       int64 `json:"leads_draft"`
	LeadsApproved    int64 `json:"leads_approved"`
	LeadsSent        int64 `json:"leads_sent"`
	TotalMessages    int64 `json:"total_messages"`
	MessagesDraft    int64 `json:"messages_draft"`
	MessagesApproved int64 `json:"messages_approved"`
	MessagesSent     int64 `json:"messages_sent"`
	MessagesLast24h  int64 `json:"messages_last_24h"`
}
