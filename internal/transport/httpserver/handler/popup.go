package handler

import (
	"net/http"

	popupdomain "wedding-site-go/internal/domain/popup"
)

type createPopupRequest struct {
	Type        string `json:"type"`
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

type updatePopupRequest struct {
	Type        *string `json:"type"`
	Image       *string `json:"image"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

type popupResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (h *Handlers) ListActivePopups(w http.ResponseWriter, r *http.Request) {
	popups, err := h.Popups.ListPopups(r.Context(), popupdomain.ListFilter{ActiveOnly: true})
	if err != nil {
		h.fail(w, "popups.public_list", err)
		return
	}
	writeList(w, popups, toPopupResponse)
}

func (h *Handlers) ListPopups(w http.ResponseWriter, r *http.Request) {
	popups, err := h.Popups.ListPopups(r.Context(), popupdomain.ListFilter{})
	if err != nil {
		h.fail(w, "popups.list", err)
		return
	}
	writeList(w, popups, toPopupResponse)
}

func (h *Handlers) GetPopup(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "popup_not_found", "popup not found")
		return
	}

	popup, err := h.Popups.GetPopup(r.Context(), id)
	if err != nil {
		h.fail(w, "popups.get", err, "popup_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toPopupResponse(*popup))
}

func (h *Handlers) CreatePopup(w http.ResponseWriter, r *http.Request) {
	var req createPopupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "popups.create", err)
		return
	}

	popup, err := h.Popups.CreatePopup(r.Context(), popupdomain.CreatePopupInput{
		Type:        req.Type,
		Image:       req.Image,
		Title:       req.Title,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		h.fail(w, "popups.create", err, "type", req.Type)
		return
	}
	writeJSON(w, http.StatusCreated, toPopupResponse(*popup))
}

func (h *Handlers) UpdatePopup(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "popup_not_found", "popup not found")
		return
	}

	var req updatePopupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "popups.update", err)
		return
	}

	popup, err := h.Popups.UpdatePopup(r.Context(), popupdomain.UpdatePopupInput{
		ID:          id,
		Type:        req.Type,
		Image:       req.Image,
		Title:       req.Title,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		h.fail(w, "popups.update", err, "popup_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toPopupResponse(*popup))
}

func (h *Handlers) DeletePopup(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "popup_not_found", "popup not found")
		return
	}

	if err := h.Popups.DeletePopup(r.Context(), id); err != nil {
		h.fail(w, "popups.delete", err, "popup_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toPopupResponse(popup popupdomain.Popup) popupResponse {
	return popupResponse{
		ID:          popup.ID,
		Type:        popup.Type,
		Image:       popup.Image,
		Title:       popup.Title,
		Description: popup.Description,
		Active:      popup.Active,
		CreatedAt:   formatTime(popup.CreatedAt),
		UpdatedAt:   formatTime(popup.UpdatedAt),
	}
}
