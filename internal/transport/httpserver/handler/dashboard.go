package handler

import (
	"net/http"

	dashboarddomain "wedding-site-go/internal/domain/dashboard"
)

type moderationResponse struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
}

type dashboardResponse struct {
	Rsvps          rsvpStatsResponse   `json:"rsvps"`
	Messages       moderationResponse  `json:"messages"`
	GuestPhotos    moderationResponse  `json:"guest_photos"`
	Photos         int64               `json:"photos"`
	ScheduleEvents int64               `json:"schedule_events"`
	PartyMembers   int64               `json:"party_members"`
	MusicTracks    int64               `json:"music_tracks"`
	Gifts          giftSummaryResponse `json:"gifts"`
	GeneratedAt    string              `json:"generated_at"`
}

func (h *Handlers) DashboardOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Dashboard.Overview(r.Context())
	if err != nil {
		h.fail(w, "dashboard.overview", err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(overview))
}

func toDashboardResponse(o dashboarddomain.Overview) dashboardResponse {
	return dashboardResponse{
		Rsvps:          toRsvpStatsResponse(o.Rsvps),
		Messages:       moderationResponse{Pending: o.Messages.Pending, Approved: o.Messages.Approved},
		GuestPhotos:    moderationResponse{Pending: o.GuestPhotos.Pending, Approved: o.GuestPhotos.Approved},
		Photos:         o.Photos,
		ScheduleEvents: o.ScheduleEvents,
		PartyMembers:   o.PartyMembers,
		MusicTracks:    o.MusicTracks,
		Gifts:          toGiftSummaryResponse(o.Gifts),
		GeneratedAt:    formatTime(o.GeneratedAt),
	}
}
