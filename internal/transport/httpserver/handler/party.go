package handler

import (
	"net/http"

	partydomain "wedding-site-go/internal/domain/party"
)

type createMemberRequest struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Description  string `json:"description"`
	Photo        string `json:"photo"`
	Side         string `json:"side"`
	DisplayOrder int    `json:"display_order"`
}

type updateMemberRequest struct {
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	Description  *string `json:"description"`
	Photo        *string `json:"photo"`
	Side         *string `json:"side"`
	DisplayOrder *int    `json:"display_order"`
}

type memberResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Description  string `json:"description"`
	Photo        string `json:"photo"`
	Side         string `json:"side"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.Party.ListMembers(r.Context())
	if err != nil {
		h.fail(w, "party.list", err)
		return
	}
	writeList(w, members, toMemberResponse)
}

func (h *Handlers) GetMember(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "member_not_found", "wedding party member not found")
		return
	}

	member, err := h.Party.GetMember(r.Context(), id)
	if err != nil {
		h.fail(w, "party.get", err, "member_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponse(*member))
}

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "party.create", err)
		return
	}

	member, err := h.Party.CreateMember(r.Context(), partydomain.CreateMemberInput{
		Name:         req.Name,
		Role:         req.Role,
		Description:  req.Description,
		Photo:        req.Photo,
		Side:         req.Side,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		h.fail(w, "party.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toMemberResponse(*member))
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "member_not_found", "wedding party member not found")
		return
	}

	var req updateMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "party.update", err)
		return
	}

	member, err := h.Party.UpdateMember(r.Context(), partydomain.UpdateMemberInput{
		ID:           id,
		Name:         req.Name,
		Role:         req.Role,
		Description:  req.Description,
		Photo:        req.Photo,
		Side:         req.Side,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		h.fail(w, "party.update", err, "member_id", id)
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponse(*member))
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		notFound(w, "member_not_found", "wedding party member not found")
		return
	}

	if err := h.Party.DeleteMember(r.Context(), id); err != nil {
		h.fail(w, "party.delete", err, "member_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toMemberResponse(member partydomain.Member) memberResponse {
	return memberResponse{
		ID:           member.ID,
		Name:         member.Name,
		Role:         member.Role,
		Description:  member.Description,
		Photo:        member.Photo,
		Side:         member.Side,
		DisplayOrder: member.DisplayOrder,
		CreatedAt:    formatTime(member.CreatedAt),
		UpdatedAt:    formatTime(member.UpdatedAt),
	}
}
