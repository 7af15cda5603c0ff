package party

import (
	"context"
	"errors"
	"testing"

	"wedding-site-go/internal/media"
	"wedding-site-go/internal/validation"
)

type fakeRepo struct {
	members map[string]Member
}

func (r *fakeRepo) ListMembers(ctx context.Context) ([]Member, error) {
	result := make([]Member, 0, len(r.members))
	for _, member := range r.members {
		result = append(result, member)
	}
	return result, nil
}

func (r *fakeRepo) GetMemberByID(ctx context.Context, id string) (*Member, error) {
	member, ok := r.members[id]
	if !ok {
		return nil, ErrMemberNotFound
	}
	return &member, nil
}

func (r *fakeRepo) CreateMember(ctx context.Context, member *Member) error {
	r.members[member.ID] = *member
	return nil
}

func (r *fakeRepo) UpdateMember(ctx context.Context, member *Member) error {
	r.members[member.ID] = *member
	return nil
}

func (r *fakeRepo) DeleteMember(ctx context.Context, id string) (bool, error) {
	if _, ok := r.members[id]; !ok {
		return false, nil
	}
	delete(r.members, id)
	return true, nil
}

func (r *fakeRepo) CountMembers(ctx context.Context) (int64, error) {
	return int64(len(r.members)), nil
}

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{members: make(map[string]Member)}
	return NewService(repo, media.NewChecker(0)), repo
}

func TestCreateMember(t *testing.T) {
	svc, repo := newTestService()

	member, err := svc.CreateMember(context.Background(), CreateMemberInput{
		Name:  "Thu",
		Role:  "Maid of honor",
		Side:  "Bride",
		Photo: "https://cdn.example.com/thu.jpg",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if member.Side != SideBride {
		t.Fatalf("expected side %q, got %q", SideBride, member.Side)
	}
	if _, ok := repo.members[member.ID]; !ok {
		t.Fatalf("expected member to be stored")
	}
}

func TestCreateMemberValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateMember(context.Background(), CreateMemberInput{Side: "both", Photo: "ftp://x"})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"name", "role", "side", "photo"} {
		if verr.Fields[field] == "" {
			t.Fatalf("expected %s error, got %v", field, verr.Fields)
		}
	}
}

func TestUpdateAndDeleteMember(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	member, _ := svc.CreateMember(ctx, CreateMemberInput{Name: "Huy", Role: "Best man", Side: "groom"})

	order := 3
	updated, err := svc.UpdateMember(ctx, UpdateMemberInput{ID: member.ID, DisplayOrder: &order})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.DisplayOrder != 3 || updated.Name != "Huy" {
		t.Fatalf("unexpected member: %+v", updated)
	}

	if _, err := svc.UpdateMember(ctx, UpdateMemberInput{ID: "missing"}); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
	if err := svc.DeleteMember(ctx, "missing"); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
	if err := svc.DeleteMember(ctx, member.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
