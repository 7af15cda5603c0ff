package rsvp

import "context"

type Repository interface {
	// ListRsvps returns responses newest first.
	ListRsvps(ctx context.Context, filter ListFilter) ([]Rsvp, error)
	GetRsvpByID(ctx context.Context, id string) (*Rsvp, error)
	CreateRsvp(ctx context.Context, rsvp *Rsvp) error
	UpdateRsvp(ctx context.Context, rsvp *Rsvp) error
	DeleteRsvp(ctx context.Context, id string) (bool, error)
}
