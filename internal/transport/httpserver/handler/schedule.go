package handler

import (
	"net/http"
	"time"

	scheduledomain "wedding-site-go/internal/domain/schedule"
)

type createEventRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	EventTime    *string `json:"event_time"`
	Location     string  `json:"location"`
	Icon         string  `json:"icon"`
	DisplayOrder int     `json:"display_order"`
}

type updateEventRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	EventTime    *string `json:"event_time"`
	Location     *string `json:"location"`
	Icon         *string `json:"icon"`
	DisplayOrder *int    `json:"display_order"`
}

type eventResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	EventTime    string `json:"event_time"`
	Location     string `json:"location"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Schedule.ListEvents(r.Context())
	if err != nil {
		h.fail(w, "schedule.list", err)
		return
	}
	writeList(w, events, toEventResponse)
}

func (h *Handlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "event_not_found", "schedule event not found")
		return
	}

	event, err := h.Schedule.GetEvent(r.Context(), id)
	if err != nil {
		h.fail(w, "schedule.get", err, "event_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(*event))
}

func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "schedule.create", err)
		return
	}

	eventTime, err := parseTimeParam("event_time", req.EventTime)
	if err != nil {
		h.fail(w, "schedule.create", err)
		return
	}
	input := scheduledomain.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
	}
	if eventTime != nil {
		input.EventTime = *eventTime
	}

	event, err := h.Schedule.CreateEvent(r.Context(), input)
	if err != nil {
		h.fail(w, "schedule.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(*event))
}

func (h *Handlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "event_not_found", "schedule event not found")
		return
	}

	var req updateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "schedule.update", err)
		return
	}

	var eventTime *time.Time
	if req.EventTime != nil {
		parsed, err := parseTime("event_time", *req.EventTime)
		if err != nil {
			h.fail(w, "schedule.update", err, "event_id", id)
			return
		}
		eventTime = &parsed
	}

	event, err := h.Schedule.UpdateEvent(r.Context(), scheduledomain.UpdateEventInput{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		EventTime:    eventTime,
		Location:     req.Location,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		h.fail(w, "schedule.update", err, "event_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(*event))
}

func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "event_not_found", "schedule event not found")
		return
	}

	if err := h.Schedule.DeleteEvent(r.Context(), id); err != nil {
		h.fail(w, "schedule.delete", err, "event_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toEventResponse(event scheduledomain.Event) eventResponse {
	return eventResponse{
		ID:           event.ID,
		Title:        event.Title,
		Description:  event.Description,
		EventTime:    formatTime(event.EventTime),
		Location:     event.Location,
		Icon:         event.Icon,
		DisplayOrder: event.DisplayOrder,
		CreatedAt:    formatTime(event.CreatedAt),
		UpdatedAt:    formatTime(event.UpdatedAt),
	}
}
