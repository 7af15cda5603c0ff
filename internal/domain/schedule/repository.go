package schedule

import "context"

type Repository interface {
	ListEvents(ctx context.Context) ([]Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, event *Event) error
	DeleteEvent(ctx context.Context, id string) (bool, error)
	CountEvents(ctx context.Context) (int64, error)
}
