package party

import "context"

type Repository interface {
	ListMembers(ctx context.Context) ([]Member, error)
	GetMemberByID(ctx context.Context, id string) (*Member, error)
	CreateMember(ctx context.Context, member *Member) error
	UpdateMember(ctx context.Context, member *Member) error
	DeleteMember(ctx context.Context, id string) (bool, error)
	CountMembers(ctx context.Context) (int64, error)
}
