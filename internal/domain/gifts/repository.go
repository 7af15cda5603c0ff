package gifts

import "context"

type Repository interface {
	// ListEntries returns entries by received_at, newest first.
	ListEntries(ctx context.Context, filter ListFilter) ([]Entry, error)
	GetEntryByID(ctx context.Context, id string) (*Entry, error)
	CreateEntry(ctx context.Context, entry *Entry) error
	UpdateEntry(ctx context.Context, entry *Entry) error
	DeleteEntry(ctx context.Context, id string) (bool, error)
	SummaryRows(ctx context.Context) ([]SummaryRow, error)
}
