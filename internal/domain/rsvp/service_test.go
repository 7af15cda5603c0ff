package rsvp

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"wedding-site-go/internal/validation"
)

type fakeRepo struct {
	rsvps []Rsvp
}

func (r *fakeRepo) ListRsvps(ctx context.Context, filter ListFilter) ([]Rsvp, error) {
	result := make([]Rsvp, 0, len(r.rsvps))
	for i := len(r.rsvps) - 1; i >= 0; i-- {
		rsvp := r.rsvps[i]
		if filter.Attending != nil && rsvp.Attending != *filter.Attending {
			continue
		}
		result = append(result, rsvp)
	}
	return result, nil
}

func (r *fakeRepo) GetRsvpByID(ctx context.Context, id string) (*Rsvp, error) {
	for _, rsvp := range r.rsvps {
		if rsvp.ID == id {
			copied := rsvp
			return &copied, nil
		}
	}
	return nil, ErrRsvpNotFound
}

func (r *fakeRepo) CreateRsvp(ctx context.Context, rsvp *Rsvp) error {
	r.rsvps = append(r.rsvps, *rsvp)
	return nil
}

func (r *fakeRepo) UpdateRsvp(ctx context.Context, rsvp *Rsvp) error {
	for i := range r.rsvps {
		if r.rsvps[i].ID == rsvp.ID {
			r.rsvps[i] = *rsvp
			return nil
		}
	}
	return ErrRsvpNotFound
}

func (r *fakeRepo) DeleteRsvp(ctx context.Context, id string) (bool, error) {
	for i := range r.rsvps {
		if r.rsvps[i].ID == id {
			r.rsvps = append(r.rsvps[:i], r.rsvps[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestCreateRsvpAddsAttendingGuests(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	before, _ := svc.Stats(ctx)

	rsvp, err := svc.CreateRsvp(ctx, CreateInput{
		GuestName:  "Nguyen Van A",
		Email:      "a@example.com",
		Attending:  boolPtr(true),
		GuestCount: intPtr(3),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !rsvp.Attending || rsvp.GuestCount != 3 {
		t.Fatalf("unexpected rsvp: %+v", rsvp)
	}

	after, _ := svc.Stats(ctx)
	if after.AttendingGuests-before.AttendingGuests != 3 {
		t.Fatalf("expected attending guests to grow by 3, got %d -> %d", before.AttendingGuests, after.AttendingGuests)
	}
}

func TestStatsIgnoreDeclinedGuestCount(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	_, _ = svc.CreateRsvp(ctx, CreateInput{GuestName: "A", Email: "a@example.com", Attending: boolPtr(true), GuestCount: intPtr(2)})
	_, _ = svc.CreateRsvp(ctx, CreateInput{GuestName: "B", Email: "b@example.com", Attending: boolPtr(false), GuestCount: intPtr(5)})
	_, _ = svc.CreateRsvp(ctx, CreateInput{GuestName: "C", Email: "c@example.com", Attending: boolPtr(true)})

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := Stats{TotalResponses: 3, AttendingResponses: 2, DeclinedResponses: 1, AttendingGuests: 3}
	if stats != want {
		t.Fatalf("expected %+v, got %+v", want, stats)
	}
}

func TestCreateRsvpValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.CreateRsvp(context.Background(), CreateInput{GuestName: "A", Email: "bad", GuestCount: intPtr(0)})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"email", "attending", "guest_count"} {
		if verr.Fields[field] == "" {
			t.Fatalf("expected %s error, got %v", field, verr.Fields)
		}
	}

	_, err = svc.CreateRsvp(context.Background(), CreateInput{GuestName: "A", Email: "a@example.com", Attending: boolPtr(true), GuestCount: intPtr(MaxGuestCount + 1)})
	if !errors.As(err, &verr) || verr.Fields["guest_count"] == "" {
		t.Fatalf("expected guest_count error, got %v", err)
	}
}

func TestEmailStoredAsTyped(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	rsvp, err := svc.CreateRsvp(ctx, CreateInput{GuestName: "A", Email: "  Mai.Tran@Example.com ", Attending: boolPtr(true)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rsvp.Email != "Mai.Tran@Example.com" {
		t.Fatalf("expected trimmed email with case kept, got %q", rsvp.Email)
	}

	email := " Nam.Le@Example.com"
	updated, err := svc.UpdateRsvp(ctx, UpdateInput{ID: rsvp.ID, Email: &email})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Email != "Nam.Le@Example.com" {
		t.Fatalf("expected trimmed email with case kept, got %q", updated.Email)
	}
}

func TestUpdateAndDeleteRsvp(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	rsvp, _ := svc.CreateRsvp(ctx, CreateInput{GuestName: "A", Email: "a@example.com", Attending: boolPtr(true)})

	updated, err := svc.UpdateRsvp(ctx, UpdateInput{ID: rsvp.ID, Attending: boolPtr(false)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Attending || updated.GuestName != "A" {
		t.Fatalf("unexpected rsvp: %+v", updated)
	}

	if _, err := svc.UpdateRsvp(ctx, UpdateInput{ID: "missing"}); !errors.Is(err, ErrRsvpNotFound) {
		t.Fatalf("expected ErrRsvpNotFound, got %v", err)
	}
	if err := svc.DeleteRsvp(ctx, "missing"); !errors.Is(err, ErrRsvpNotFound) {
		t.Fatalf("expected ErrRsvpNotFound, got %v", err)
	}
	if err := svc.DeleteRsvp(ctx, rsvp.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestWriteCSV(t *testing.T) {
	created := time.Date(2026, 11, 1, 8, 30, 0, 0, time.UTC)
	rsvps := []Rsvp{
		{GuestName: "Trần Thị B", Email: "b@example.com", Attending: true, GuestCount: 2, CreatedAt: created},
		{GuestName: "=HYPERLINK(\"x\")", Email: "c@example.com", Attending: false, GuestCount: 1, CreatedAt: created},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rsvps); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, utf8BOM) {
		t.Fatalf("expected BOM prefix")
	}

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, utf8BOM))).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(records))
	}
	if records[0][0] != "guest_name" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][0] != "Trần Thị B" || records[1][3] != "true" || records[1][4] != "2" || records[1][7] != "2026-11-01T08:30:00Z" {
		t.Fatalf("unexpected row: %v", records[1])
	}
	if !strings.HasPrefix(records[2][0], "'=") {
		t.Fatalf("expected formula to be neutralized, got %q", records[2][0])
	}
}
