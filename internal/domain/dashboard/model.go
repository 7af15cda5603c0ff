package dashboard

import (
	"time"

	"wedding-site-go/internal/domain/gifts"
	"wedding-site-go/internal/domain/rsvp"
)

type ModerationCounts struct {
	Pending  int64
	Approved int64
}

type Overview struct {
	Rsvps          rsvp.Stats
	Messages       ModerationCounts
	GuestPhotos    ModerationCounts
	Photos         int64
	ScheduleEvents int64
	PartyMembers   int64
	MusicTracks    int64
	Gifts          gifts.Summary
	GeneratedAt    time.Time
}
