package handler

import (
	"net/http"
	"time"

	rsvpdomain "wedding-site-go/internal/domain/rsvp"
	"wedding-site-go/internal/metrics"
)

type createRsvpRequest struct {
	GuestName           string `json:"guest_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Attending           *bool  `json:"attending"`
	GuestCount          *int   `json:"guest_count"`
	MealPreference      string `json:"meal_preference"`
	SpecialRequirements string `json:"special_requirements"`
}

type updateRsvpRequest struct {
	GuestName           *string `json:"guest_name"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	Attending           *bool   `json:"attending"`
	GuestCount          *int    `json:"guest_count"`
	MealPreference      *string `json:"meal_preference"`
	SpecialRequirements *string `json:"special_requirements"`
}

type rsvpResponse struct {
	ID                  string `json:"id"`
	GuestName           string `json:"guest_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Attending           bool   `json:"attending"`
	GuestCount          int    `json:"guest_count"`
	MealPreference      string `json:"meal_preference"`
	SpecialRequirements string `json:"special_requirements"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}

// submittedRsvpResponse confirms a public submission without echoing
// contact details.
type submittedRsvpResponse struct {
	ID         string `json:"id"`
	GuestName  string `json:"guest_name"`
	Attending  bool   `json:"attending"`
	GuestCount int    `json:"guest_count"`
	CreatedAt  string `json:"created_at"`
}

type rsvpStatsResponse struct {
	TotalResponses     int64 `json:"total_responses"`
	AttendingResponses int64 `json:"attending_responses"`
	DeclinedResponses  int64 `json:"declined_responses"`
	AttendingGuests    int64 `json:"attending_guests"`
}

func (h *Handlers) SubmitRsvp(w http.ResponseWriter, r *http.Request) {
	var req createRsvpRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "rsvps.submit", err)
		return
	}

	rsvp, err := h.Rsvps.CreateRsvp(r.Context(), rsvpdomain.CreateInput{
		GuestName:           req.GuestName,
		Email:               req.Email,
		Phone:               req.Phone,
		Attending:           req.Attending,
		GuestCount:          req.GuestCount,
		MealPreference:      req.MealPreference,
		SpecialRequirements: req.SpecialRequirements,
	})
	if err != nil {
		h.fail(w, "rsvps.submit", err)
		return
	}
	h.recordSubmission(metrics.SubmissionRsvp)
	writeJSON(w, http.StatusCreated, submittedRsvpResponse{
		ID:         rsvp.ID,
		GuestName:  rsvp.GuestName,
		Attending:  rsvp.Attending,
		GuestCount: rsvp.GuestCount,
		CreatedAt:  formatTime(rsvp.CreatedAt),
	})
}

func (h *Handlers) RsvpStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Rsvps.Stats(r.Context())
	if err != nil {
		h.fail(w, "rsvps.stats", err)
		return
	}
	writeJSON(w, http.StatusOK, toRsvpStatsResponse(stats))
}

func (h *Handlers) ListRsvps(w http.ResponseWriter, r *http.Request) {
	filter, ok := rsvpFilter(w, r)
	if !ok {
		return
	}

	rsvps, err := h.Rsvps.ListRsvps(r.Context(), filter)
	if err != nil {
		h.fail(w, "rsvps.list", err)
		return
	}
	writeList(w, rsvps, toRsvpResponse)
}

func (h *Handlers) ExportRsvps(w http.ResponseWriter, r *http.Request) {
	filter, ok := rsvpFilter(w, r)
	if !ok {
		return
	}

	rsvps, err := h.Rsvps.ListRsvps(r.Context(), filter)
	if err != nil {
		h.fail(w, "rsvps.export", err)
		return
	}

	filename := "rsvps-" + time.Now().UTC().Format("20060102") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if err := rsvpdomain.WriteCSV(w, rsvps); err != nil {
		h.log.InternalError("rsvps.export: write csv failed", err, "rows", len(rsvps))
	}
}

func (h *Handlers) GetRsvp(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "rsvp_not_found", "rsvp not found")
		return
	}

	rsvp, err := h.Rsvps.GetRsvp(r.Context(), id)
	if err != nil {
		h.fail(w, "rsvps.get", err, "rsvp_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toRsvpResponse(*rsvp))
}

func (h *Handlers) UpdateRsvp(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "rsvp_not_found", "rsvp not found")
		return
	}

	var req updateRsvpRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "rsvps.update", err)
		return
	}

	rsvp, err := h.Rsvps.UpdateRsvp(r.Context(), rsvpdomain.UpdateInput{
		ID:                  id,
		GuestName:           req.GuestName,
		Email:               req.Email,
		Phone:               req.Phone,
		Attending:           req.Attending,
		GuestCount:          req.GuestCount,
		MealPreference:      req.MealPreference,
		SpecialRequirements: req.SpecialRequirements,
	})
	if err != nil {
		h.fail(w, "rsvps.update", err, "rsvp_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toRsvpResponse(*rsvp))
}

func (h *Handlers) DeleteRsvp(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "rsvp_not_found", "rsvp not found")
		return
	}

	if err := h.Rsvps.DeleteRsvp(r.Context(), id); err != nil {
		h.fail(w, "rsvps.delete", err, "rsvp_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func rsvpFilter(w http.ResponseWriter, r *http.Request) (rsvpdomain.ListFilter, bool) {
	attending, err := parseBoolParam(r.URL.Query().Get("attending"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid attending filter")
		return rsvpdomain.ListFilter{}, false
	}
	return rsvpdomain.ListFilter{Attending: attending}, true
}

func toRsvpResponse(rsvp rsvpdomain.Rsvp) rsvpResponse {
	return rsvpResponse{
		ID:                  rsvp.ID,
		GuestName:           rsvp.GuestName,
		Email:               rsvp.Email,
		Phone:               rsvp.Phone,
		Attending:           rsvp.Attending,
		GuestCount:          rsvp.GuestCount,
		MealPreference:      rsvp.MealPreference,
		SpecialRequirements: rsvp.SpecialRequirements,
		CreatedAt:           formatTime(rsvp.CreatedAt),
		UpdatedAt:           formatTime(rsvp.UpdatedAt),
	}
}

func toRsvpStatsResponse(stats rsvpdomain.Stats) rsvpStatsResponse {
	return rsvpStatsResponse{
		TotalResponses:     stats.TotalResponses,
		AttendingResponses: stats.AttendingResponses,
		DeclinedResponses:  stats.DeclinedResponses,
		AttendingGuests:    stats.AttendingGuests,
	}
}
