package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	accountdomain "wedding-site-go/internal/domain/account"
	"wedding-site-go/pkg/logger"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*accountdomain.User, error)
}

// SessionAuth resolves the admin session from the session cookie or an
// Authorization bearer header, in that order.
type SessionAuth struct {
	auth       Authenticator
	cookieName string
	log        logger.Logger
}

type contextKey int

const (
	userKey contextKey = iota
	tokenKey
)

func NewSessionAuth(auth Authenticator, cookieName string, log logger.Logger) *SessionAuth {
	return &SessionAuth{auth: auth, cookieName: cookieName, log: log}
}

func (a *SessionAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := SessionToken(r, a.cookieName)
		if token == "" {
			unauthorized(w)
			return
		}

		user, err := a.auth.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, accountdomain.ErrUnauthorized) {
				unauthorized(w)
				return
			}
			a.log.InternalError("auth.session: authenticate failed", err, "path", r.URL.Path)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}

		ctx := WithUser(r.Context(), *user)
		ctx = context.WithValue(ctx, tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionToken returns the raw session token carried by the request, or "".
func SessionToken(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if token, ok := bearerToken(r.Header.Get("Authorization")); ok {
		return token
	}
	return ""
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
}

func WithUser(ctx context.Context, user accountdomain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (accountdomain.User, bool) {
	user, ok := ctx.Value(userKey).(accountdomain.User)
	if !ok || user.ID == "" {
		return accountdomain.User{}, false
	}
	return user, true
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
