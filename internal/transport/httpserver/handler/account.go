package handler

import (
	"net/http"
	"time"

	accountdomain "wedding-site-go/internal/domain/account"
	"wedding-site-go/internal/transport/httpserver/middleware"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      userResponse `json:"user"`
}

type userResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type updateAccountRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "auth.login", err)
		return
	}

	result, err := h.Accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(w, "auth.login", err, "username", req.Username)
		return
	}

	http.SetCookie(w, h.sessionCookie(result.Token, result.ExpiresAt))
	writeJSON(w, http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: formatTime(result.ExpiresAt),
		User:      toUserResponse(result.User),
	})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r, h.cookie.Name)
	if err := h.Accounts.Logout(r.Context(), token); err != nil {
		h.fail(w, "auth.logout", err)
		return
	}

	http.SetCookie(w, h.sessionCookie("", time.Unix(0, 0)))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *Handlers) GetAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	current, err := h.Accounts.GetUser(r.Context(), user.ID)
	if err != nil {
		h.fail(w, "account.get", err, "user_id", user.ID)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*current))
}

func (h *Handlers) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req updateAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "account.update", err)
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	updated, err := h.Accounts.UpdateProfile(r.Context(), accountdomain.UpdateProfileInput{
		UserID:   user.ID,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		h.fail(w, "account.update", err, "user_id", user.ID)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*updated))
}

func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "account.password", err)
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	err := h.Accounts.ChangePassword(r.Context(), accountdomain.ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		KeepToken:       middleware.TokenFromContext(r.Context()),
	})
	if err != nil {
		h.fail(w, "account.password", err, "user_id", user.ID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) sessionCookie(token string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/api",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	}
	return cookie
}

func toUserResponse(user accountdomain.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: formatTime(user.CreatedAt),
		UpdatedAt: formatTime(user.UpdatedAt),
	}
}
