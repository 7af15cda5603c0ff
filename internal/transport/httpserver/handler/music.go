package handler

import (
	"net/http"

	musicdomain "wedding-site-go/internal/domain/music"
)

type createTrackRequest struct {
	Title           string `json:"title"`
	Filename        string `json:"filename"`
	Artist          string `json:"artist"`
	DurationSeconds int    `json:"duration_seconds"`
	DisplayOrder    int    `json:"display_order"`
	Active          *bool  `json:"active"`
}

type updateTrackRequest struct {
	Title           *string `json:"title"`
	Filename        *string `json:"filename"`
	Artist          *string `json:"artist"`
	DurationSeconds *int    `json:"duration_seconds"`
	DisplayOrder    *int    `json:"display_order"`
	Active          *bool   `json:"active"`
}

type trackResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Filename        string `json:"filename"`
	Artist          string `json:"artist"`
	DurationSeconds int    `json:"duration_seconds"`
	DisplayOrder    int    `json:"display_order"`
	Active          bool   `json:"active"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func (h *Handlers) ListActiveTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.Music.ListTracks(r.Context(), musicdomain.ListFilter{ActiveOnly: true})
	if err != nil {
		h.fail(w, "music.public_list", err)
		return
	}
	writeList(w, tracks, toTrackResponse)
}

func (h *Handlers) ListTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.Music.ListTracks(r.Context(), musicdomain.ListFilter{})
	if err != nil {
		h.fail(w, "music.list", err)
		return
	}
	writeList(w, tracks, toTrackResponse)
}

func (h *Handlers) GetTrack(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "track_not_found", "music track not found")
		return
	}

	track, err := h.Music.GetTrack(r.Context(), id)
	if err != nil {
		h.fail(w, "music.get", err, "track_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toTrackResponse(*track))
}

func (h *Handlers) CreateTrack(w http.ResponseWriter, r *http.Request) {
	var req createTrackRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "music.create", err)
		return
	}

	track, err := h.Music.CreateTrack(r.Context(), musicdomain.CreateTrackInput{
		Title:           req.Title,
		Filename:        req.Filename,
		Artist:          req.Artist,
		DurationSeconds: req.DurationSeconds,
		DisplayOrder:    req.DisplayOrder,
		Active:          req.Active,
	})
	if err != nil {
		h.fail(w, "music.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toTrackResponse(*track))
}

func (h *Handlers) UpdateTrack(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "track_not_found", "music track not found")
		return
	}

	var req updateTrackRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "music.update", err)
		return
	}

	track, err := h.Music.UpdateTrack(r.Context(), musicdomain.UpdateTrackInput{
		ID:              id,
		Title:           req.Title,
		Filename:        req.Filename,
		Artist:          req.Artist,
		DurationSeconds: req.DurationSeconds,
		DisplayOrder:    req.DisplayOrder,
		Active:          req.Active,
	})
	if err != nil {
		h.fail(w, "music.update", err, "track_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toTrackResponse(*track))
}

func (h *Handlers) DeleteTrack(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "track_not_found", "music track not found")
		return
	}

	if err := h.Music.DeleteTrack(r.Context(), id); err != nil {
		h.fail(w, "music.delete", err, "track_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toTrackResponse(track musicdomain.Track) trackResponse {
	return trackResponse{
		ID:              track.ID,
		Title:           track.Title,
		Filename:        track.Filename,
		Artist:          track.Artist,
		DurationSeconds: track.DurationSeconds,
		DisplayOrder:    track.DisplayOrder,
		Active:          track.Active,
		CreatedAt:       formatTime(track.CreatedAt),
		UpdatedAt:       formatTime(track.UpdatedAt),
	}
}
