package handler

import (
	"net/http"

	guestbookdomain "wedding-site-go/internal/domain/guestbook"
	"wedding-site-go/internal/metrics"
)

type submitMessageRequest struct {
	GuestName string `json:"guest_name"`
	Message   string `json:"message"`
}

type approvalRequest struct {
	Approved *bool `json:"approved"`
}

type messageResponse struct {
	ID        string `json:"id"`
	GuestName string `json:"guest_name"`
	Message   string `json:"message"`
	Approved  bool   `json:"approved"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// publicMessageResponse leaves out moderation fields.
type publicMessageResponse struct {
	ID        string `json:"id"`
	GuestName string `json:"guest_name"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func (h *Handlers) ListApprovedMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Guestbook.ListApproved(r.Context())
	if err != nil {
		h.fail(w, "messages.public_list", err)
		return
	}
	writeList(w, messages, toPublicMessageResponse)
}

func (h *Handlers) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req submitMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "messages.submit", err)
		return
	}

	message, err := h.Guestbook.Submit(r.Context(), guestbookdomain.SubmitInput{
		GuestName: req.GuestName,
		Message:   req.Message,
	})
	if err != nil {
		h.fail(w, "messages.submit", err)
		return
	}
	h.recordSubmission(metrics.SubmissionMessage)
	writeJSON(w, http.StatusCreated, toMessageResponse(*message))
}

func (h *Handlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	approved, err := parseBoolParam(r.URL.Query().Get("approved"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid approved filter")
		return
	}

	messages, err := h.Guestbook.ListMessages(r.Context(), guestbookdomain.ListFilter{Approved: approved})
	if err != nil {
		h.fail(w, "messages.list", err)
		return
	}
	writeList(w, messages, toMessageResponse)
}

func (h *Handlers) SetMessageApproval(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "message_not_found", "message not found")
		return
	}

	var req approvalRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "messages.approval", err)
		return
	}
	if req.Approved == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "approved is required")
		return
	}

	message, err := h.Guestbook.SetApproval(r.Context(), id, *req.Approved)
	if err != nil {
		h.fail(w, "messages.approval", err, "message_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toMessageResponse(*message))
}

func (h *Handlers) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "message_not_found", "message not found")
		return
	}

	if err := h.Guestbook.DeleteMessage(r.Context(), id); err != nil {
		h.fail(w, "messages.delete", err, "message_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toMessageResponse(message guestbookdomain.Message) messageResponse {
	return messageResponse{
		ID:        message.ID,
		GuestName: message.GuestName,
		Message:   message.Message,
		Approved:  message.Approved,
		CreatedAt: formatTime(message.CreatedAt),
		UpdatedAt: formatTime(message.UpdatedAt),
	}
}

func toPublicMessageResponse(message guestbookdomain.Message) publicMessageResponse {
	return publicMessageResponse{
		ID:        message.ID,
		GuestName: message.GuestName,
		Message:   message.Message,
		CreatedAt: formatTime(message.CreatedAt),
	}
}
