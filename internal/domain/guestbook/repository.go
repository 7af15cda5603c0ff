package guestbook

import (
	"context"
	"time"
)

type Repository interface {
	ListMessages(ctx context.Context, filter ListFilter) ([]Message, error)
	GetMessageByID(ctx context.Context, id string) (*Message, error)
	CreateMessage(ctx context.Context, message *Message) error
	SetApproval(ctx context.Context, id string, approved bool, updatedAt time.Time) (bool, error)
	DeleteMessage(ctx context.Context, id string) (bool, error)
	CountMessages(ctx context.Context) (Counts, error)
}
