package schedule

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"wedding-site-go/internal/validation"
)

type fakeRepo struct {
	events map[string]Event
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: make(map[string]Event)}
}

func (r *fakeRepo) ListEvents(ctx context.Context) ([]Event, error) {
	result := make([]Event, 0, len(r.events))
	for _, event := range r.events {
		result = append(result, event)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DisplayOrder != result[j].DisplayOrder {
			return result[i].DisplayOrder < result[j].DisplayOrder
		}
		return result[i].EventTime.Before(result[j].EventTime)
	})
	return result, nil
}

func (r *fakeRepo) GetEventByID(ctx context.Context, id string) (*Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	return &event, nil
}

func (r *fakeRepo) CreateEvent(ctx context.Context, event *Event) error {
	r.events[event.ID] = *event
	return nil
}

func (r *fakeRepo) UpdateEvent(ctx context.Context, event *Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return ErrEventNotFound
	}
	r.events[event.ID] = *event
	return nil
}

func (r *fakeRepo) DeleteEvent(ctx context.Context, id string) (bool, error) {
	if _, ok := r.events[id]; !ok {
		return false, nil
	}
	delete(r.events, id)
	return true, nil
}

func (r *fakeRepo) CountEvents(ctx context.Context) (int64, error) {
	return int64(len(r.events)), nil
}

var ceremony = time.Date(2026, 12, 20, 9, 0, 0, 0, time.UTC)

func TestCreateEventRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	before := time.Now().UTC()

	created, err := svc.CreateEvent(context.Background(), CreateEventInput{
		Title:        " Ceremony ",
		EventTime:    ceremony,
		Location:     "Rose Garden",
		Icon:         "rings",
		DisplayOrder: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if created.CreatedAt.Before(before) {
		t.Fatalf("expected created_at at or after %v, got %v", before, created.CreatedAt)
	}

	got, err := svc.GetEvent(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Ceremony" || !got.EventTime.Equal(ceremony) || got.Location != "Rose Garden" || got.Icon != "rings" || got.DisplayOrder != 1 {
		t.Fatalf("unexpected event: %+v", got)
	}
}

func TestCreateEventValidation(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.CreateEvent(context.Background(), CreateEventInput{})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields["title"] == "" || verr.Fields["event_time"] == "" {
		t.Fatalf("expected title and event_time errors, got %v", verr.Fields)
	}
}

func TestUpdateEventKeepsCreatedAt(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, _ := svc.CreateEvent(ctx, CreateEventInput{Title: "Reception", EventTime: ceremony})
	later := created.CreatedAt.Add(time.Hour)
	svc.now = func() time.Time { return later }

	title := "Dinner reception"
	updated, err := svc.UpdateEvent(ctx, UpdateEventInput{ID: created.ID, Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("expected %q, got %q", title, updated.Title)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) || !updated.UpdatedAt.Equal(later) {
		t.Fatalf("unexpected timestamps: %+v", updated)
	}

	if _, err := svc.UpdateEvent(ctx, UpdateEventInput{ID: "missing", Title: &title}); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestDeleteMissingEventLeavesOthers(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	kept, _ := svc.CreateEvent(ctx, CreateEventInput{Title: "Tea ceremony", EventTime: ceremony})

	if err := svc.DeleteEvent(ctx, "missing"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}

	events, err := svc.ListEvents(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 1 || events[0].ID != kept.ID {
		t.Fatalf("expected the other event untouched, got %+v", events)
	}

	if err := svc.DeleteEvent(ctx, kept.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
