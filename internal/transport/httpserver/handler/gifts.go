package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	giftsdomain "wedding-site-go/internal/domain/gifts"
	"wedding-site-go/internal/validation"
)

// Amounts are JSON numbers or numeric strings, parsed from the literal.
type createGiftRequest struct {
	GuestName  string      `json:"guest_name"`
	Amount     json.Number `json:"amount"`
	Currency   string      `json:"currency"`
	Method     string      `json:"method"`
	Side       string      `json:"side"`
	Note       string      `json:"note"`
	ReceivedAt *string     `json:"received_at"`
}

type updateGiftRequest struct {
	GuestName  *string      `json:"guest_name"`
	Amount     *json.Number `json:"amount"`
	Currency   *string      `json:"currency"`
	Method     *string      `json:"method"`
	Side       *string      `json:"side"`
	Note       *string      `json:"note"`
	ReceivedAt *string      `json:"received_at"`
}

type giftResponse struct {
	ID         string             `json:"id"`
	GuestName  string             `json:"guest_name"`
	Amount     giftsdomain.Amount `json:"amount"`
	Currency   string             `json:"currency"`
	Method     string             `json:"method"`
	Side       string             `json:"side"`
	Note       string             `json:"note"`
	ReceivedAt string             `json:"received_at"`
	CreatedAt  string             `json:"created_at"`
	UpdatedAt  string             `json:"updated_at"`
}

type currencyTotalResponse struct {
	Currency string             `json:"currency"`
	Total    giftsdomain.Amount `json:"total"`
	Count    int64              `json:"count"`
}

type sideTotalResponse struct {
	Side     string             `json:"side"`
	Currency string             `json:"currency"`
	Total    giftsdomain.Amount `json:"total"`
	Count    int64              `json:"count"`
}

type giftSummaryResponse struct {
	Count      int64                   `json:"count"`
	ByCurrency []currencyTotalResponse `json:"by_currency"`
	BySide     []sideTotalResponse     `json:"by_side"`
}

func (h *Handlers) ListGifts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := giftsdomain.ListFilter{
		Side:   strings.TrimSpace(query.Get("side")),
		Method: strings.TrimSpace(query.Get("method")),
	}

	entries, err := h.Gifts.ListEntries(r.Context(), filter)
	if err != nil {
		h.fail(w, "gifts.list", err, "side", filter.Side, "method", filter.Method)
		return
	}
	writeList(w, entries, toGiftResponse)
}

func (h *Handlers) GiftSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Gifts.Summary(r.Context())
	if err != nil {
		h.fail(w, "gifts.summary", err)
		return
	}
	writeJSON(w, http.StatusOK, toGiftSummaryResponse(summary))
}

func (h *Handlers) GetGift(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "gift_not_found", "gift entry not found")
		return
	}

	entry, err := h.Gifts.GetEntry(r.Context(), id)
	if err != nil {
		h.fail(w, "gifts.get", err, "gift_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toGiftResponse(*entry))
}

func (h *Handlers) CreateGift(w http.ResponseWriter, r *http.Request) {
	var req createGiftRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "gifts.create", err)
		return
	}

	receivedAt, err := parseTimeParam("received_at", req.ReceivedAt)
	if err != nil {
		h.fail(w, "gifts.create", err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		h.fail(w, "gifts.create", err)
		return
	}

	entry, err := h.Gifts.CreateEntry(r.Context(), giftsdomain.CreateEntryInput{
		GuestName:  req.GuestName,
		Amount:     amount,
		Currency:   req.Currency,
		Method:     req.Method,
		Side:       req.Side,
		Note:       req.Note,
		ReceivedAt: receivedAt,
	})
	if err != nil {
		h.fail(w, "gifts.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toGiftResponse(*entry))
}

func (h *Handlers) UpdateGift(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "gift_not_found", "gift entry not found")
		return
	}

	var req updateGiftRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "gifts.update", err)
		return
	}

	input := giftsdomain.UpdateEntryInput{
		ID:        id,
		GuestName: req.GuestName,
		Currency:  req.Currency,
		Method:    req.Method,
		Side:      req.Side,
		Note:      req.Note,
	}
	if req.Amount != nil {
		amount, err := parseAmount(*req.Amount)
		if err != nil {
			h.fail(w, "gifts.update", err, "gift_id", id)
			return
		}
		input.Amount = &amount
	}
	if req.ReceivedAt != nil {
		parsed, err := parseTime("received_at", *req.ReceivedAt)
		if err != nil {
			h.fail(w, "gifts.update", err, "gift_id", id)
			return
		}
		input.ReceivedAt = &parsed
	}

	entry, err := h.Gifts.UpdateEntry(r.Context(), input)
	if err != nil {
		h.fail(w, "gifts.update", err, "gift_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toGiftResponse(*entry))
}

func (h *Handlers) DeleteGift(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "gift_not_found", "gift entry not found")
		return
	}

	if err := h.Gifts.DeleteEntry(r.Context(), id); err != nil {
		h.fail(w, "gifts.delete", err, "gift_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseAmount treats a missing amount as zero.
func parseAmount(value json.Number) (giftsdomain.Amount, error) {
	if value == "" {
		return 0, nil
	}
	amount, err := giftsdomain.ParseAmount(value.String())
	if err != nil {
		return 0, validation.Wrap(err, "amount", "must be a decimal with at most 2 fraction digits")
	}
	return amount, nil
}

func toGiftResponse(entry giftsdomain.Entry) giftResponse {
	return giftResponse{
		ID:         entry.ID,
		GuestName:  entry.GuestName,
		Amount:     entry.Amount,
		Currency:   entry.Currency,
		Method:     entry.Method,
		Side:       entry.Side,
		Note:       entry.Note,
		ReceivedAt: formatTime(entry.ReceivedAt),
		CreatedAt:  formatTime(entry.CreatedAt),
		UpdatedAt:  formatTime(entry.UpdatedAt),
	}
}

func toGiftSummaryResponse(summary giftsdomain.Summary) giftSummaryResponse {
	response := giftSummaryResponse{
		Count:      summary.Count,
		ByCurrency: make([]currencyTotalResponse, 0, len(summary.ByCurrency)),
		BySide:     make([]sideTotalResponse, 0, len(summary.BySide)),
	}
	for _, total := range summary.ByCurrency {
		response.ByCurrency = append(response.ByCurrency, currencyTotalResponse{
			Currency: total.Currency,
			Total:    total.Total,
			Count:    total.Count,
		})
	}
	for _, total := range summary.BySide {
		response.BySide = append(response.BySide, sideTotalResponse{
			Side:     total.Side,
			Currency: total.Currency,
			Total:    total.Total,
			Count:    total.Count,
		})
	}
	return response
}

