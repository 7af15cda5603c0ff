package dashboard

import (
	"context"

	"wedding-site-go/internal/domain/gallery"
	"wedding-site-go/internal/domain/gifts"
	"wedding-site-go/internal/domain/guestbook"
	"wedding-site-go/internal/domain/rsvp"
)

type RsvpStats interface {
	Stats(ctx context.Context) (rsvp.Stats, error)
}

type MessageCounter interface {
	CountMessages(ctx context.Context) (guestbook.Counts, error)
}

type GalleryCounter interface {
	CountPhotos(ctx context.Context) (int64, error)
	CountGuestPhotos(ctx context.Context) (gallery.GuestPhotoCounts, error)
}

type EventCounter interface {
	CountEvents(ctx context.Context) (int64, error)
}

type MemberCounter interface {
	CountMembers(ctx context.Context) (int64, error)
}

type TrackCounter interface {
	CountTracks(ctx context.Context) (int64, error)
}

type GiftSummary interface {
	Summary(ctx context.Context) (gifts.Summary, error)
}

// Sources are usually the domain services themselves.
type Sources struct {
	Rsvps    RsvpStats
	Messages MessageCounter
	Gallery  GalleryCounter
	Schedule EventCounter
	Party    MemberCounter
	Music    TrackCounter
	Gifts    GiftSummary
}
