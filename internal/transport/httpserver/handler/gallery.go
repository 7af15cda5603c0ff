package handler

import (
	"net/http"
	"strings"

	gallerydomain "wedding-site-go/internal/domain/gallery"
	"wedding-site-go/internal/metrics"
)

type createPhotoRequest struct {
	URL          string `json:"url"`
	Caption      string `json:"caption"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"display_order"`
}

type updatePhotoRequest struct {
	URL          *string `json:"url"`
	Caption      *string `json:"caption"`
	Category     *string `json:"category"`
	DisplayOrder *int    `json:"display_order"`
}

type photoResponse struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	Caption      string `json:"caption"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type submitGuestPhotoRequest struct {
	URL       string `json:"url"`
	Caption   string `json:"caption"`
	GuestName string `json:"guest_name"`
}

type guestPhotoResponse struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Caption   string `json:"caption"`
	GuestName string `json:"guest_name"`
	Approved  bool   `json:"approved"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (h *Handlers) ListPhotos(w http.ResponseWriter, r *http.Request) {
	filter := gallerydomain.PhotoFilter{Category: strings.TrimSpace(r.URL.Query().Get("category"))}
	photos, err := h.Gallery.ListPhotos(r.Context(), filter)
	if err != nil {
		h.fail(w, "photos.list", err, "category", filter.Category)
		return
	}
	writeList(w, photos, toPhotoResponse)
}

func (h *Handlers) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "photo_not_found", "photo not found")
		return
	}

	photo, err := h.Gallery.GetPhoto(r.Context(), id)
	if err != nil {
		h.fail(w, "photos.get", err, "photo_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toPhotoResponse(*photo))
}

func (h *Handlers) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	var req createPhotoRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "photos.create", err)
		return
	}

	photo, err := h.Gallery.CreatePhoto(r.Context(), gallerydomain.CreatePhotoInput{
		URL:          req.URL,
		Caption:      req.Caption,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		h.fail(w, "photos.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPhotoResponse(*photo))
}

func (h *Handlers) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "photo_not_found", "photo not found")
		return
	}

	var req updatePhotoRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "photos.update", err)
		return
	}

	photo, err := h.Gallery.UpdatePhoto(r.Context(), gallerydomain.UpdatePhotoInput{
		ID:           id,
		URL:          req.URL,
		Caption:      req.Caption,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		h.fail(w, "photos.update", err, "photo_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toPhotoResponse(*photo))
}

func (h *Handlers) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "photo_not_found", "photo not found")
		return
	}

	if err := h.Gallery.DeletePhoto(r.Context(), id); err != nil {
		h.fail(w, "photos.delete", err, "photo_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListApprovedGuestPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.Gallery.ListApprovedGuestPhotos(r.Context())
	if err != nil {
		h.fail(w, "guest_photos.public_list", err)
		return
	}
	writeList(w, photos, toGuestPhotoResponse)
}

func (h *Handlers) SubmitGuestPhoto(w http.ResponseWriter, r *http.Request) {
	var req submitGuestPhotoRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "guest_photos.submit", err)
		return
	}

	photo, err := h.Gallery.SubmitGuestPhoto(r.Context(), gallerydomain.SubmitGuestPhotoInput{
		URL:       req.URL,
		Caption:   req.Caption,
		GuestName: req.GuestName,
	})
	if err != nil {
		h.fail(w, "guest_photos.submit", err)
		return
	}
	h.recordSubmission(metrics.SubmissionGuestPhoto)
	writeJSON(w, http.StatusCreated, toGuestPhotoResponse(*photo))
}

func (h *Handlers) ListGuestPhotos(w http.ResponseWriter, r *http.Request) {
	approved, err := parseBoolParam(r.URL.Query().Get("approved"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid approved filter")
		return
	}

	photos, err := h.Gallery.ListGuestPhotos(r.Context(), gallerydomain.GuestPhotoFilter{Approved: approved})
	if err != nil {
		h.fail(w, "guest_photos.list", err)
		return
	}
	writeList(w, photos, toGuestPhotoResponse)
}

func (h *Handlers) SetGuestPhotoApproval(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "guest_photo_not_found", "guest photo not found")
		return
	}

	var req approvalRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "guest_photos.approval", err)
		return
	}
	if req.Approved == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "approved is required")
		return
	}

	photo, err := h.Gallery.SetGuestPhotoApproval(r.Context(), id, *req.Approved)
	if err != nil {
		h.fail(w, "guest_photos.approval", err, "guest_photo_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toGuestPhotoResponse(*photo))
}

func (h *Handlers) DeleteGuestPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "guest_photo_not_found", "guest photo not found")
		return
	}

	if err := h.Gallery.DeleteGuestPhoto(r.Context(), id); err != nil {
		h.fail(w, "guest_photos.delete", err, "guest_photo_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toPhotoResponse(photo gallerydomain.Photo) photoResponse {
	return photoResponse{
		ID:           photo.ID,
		URL:          photo.URL,
		Caption:      photo.Caption,
		Category:     photo.Category,
		DisplayOrder: photo.DisplayOrder,
		CreatedAt:    formatTime(photo.CreatedAt),
		UpdatedAt:    formatTime(photo.UpdatedAt),
	}
}

func toGuestPhotoResponse(photo gallerydomain.GuestPhoto) guestPhotoResponse {
	return guestPhotoResponse{
		ID:        photo.ID,
		URL:       photo.URL,
		Caption:   photo.Caption,
		GuestName: photo.GuestName,
		Approved:  photo.Approved,
		CreatedAt: formatTime(photo.CreatedAt),
		UpdatedAt: formatTime(photo.UpdatedAt),
	}
}
