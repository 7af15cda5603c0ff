package handler

import (
	"errors"
	"net/http"

	accountdomain "wedding-site-go/internal/domain/account"
	dashboarddomain "wedding-site-go/internal/domain/dashboard"
	gallerydomain "wedding-site-go/internal/domain/gallery"
	giftsdomain "wedding-site-go/internal/domain/gifts"
	guestbookdomain "wedding-site-go/internal/domain/guestbook"
	musicdomain "wedding-site-go/internal/domain/music"
	partydomain "wedding-site-go/internal/domain/party"
	popupdomain "wedding-site-go/internal/domain/popup"
	rsvpdomain "wedding-site-go/internal/domain/rsvp"
	scheduledomain "wedding-site-go/internal/domain/schedule"
	sitedomain "wedding-site-go/internal/domain/site"
	"wedding-site-go/internal/metrics"
	"wedding-site-go/internal/validation"
	"wedding-site-go/pkg/logger"
)

type Services struct {
	Accounts  *accountdomain.Service
	Site      *sitedomain.Service
	Schedule  *scheduledomain.Service
	Gallery   *gallerydomain.Service
	Guestbook *guestbookdomain.Service
	Rsvps     *rsvpdomain.Service
	Party     *partydomain.Service
	Popups    *popupdomain.Service
	Music     *musicdomain.Service
	Gifts     *giftsdomain.Service
	Dashboard *dashboarddomain.Service
}

type CookieConfig struct {
	Name   string
	Secure bool
}

type Handlers struct {
	Services
	cookie  CookieConfig
	metrics *metrics.Metrics
	log     logger.Logger
}

func New(services Services, cookie CookieConfig, m *metrics.Metrics, log logger.Logger) *Handlers {
	return &Handlers{
		Services: services,
		cookie:   cookie,
		metrics:  m,
		log:      log,
	}
}

type notFoundMapping struct {
	err     error
	code    string
	message string
}

var notFoundErrors = []notFoundMapping{
	{sitedomain.ErrNotConfigured, "not_configured", "not configured yet"},
	{scheduledomain.ErrEventNotFound, "event_not_found", "schedule event not found"},
	{gallerydomain.ErrPhotoNotFound, "photo_not_found", "photo not found"},
	{gallerydomain.ErrGuestPhotoNotFound, "guest_photo_not_found", "guest photo not found"},
	{guestbookdomain.ErrMessageNotFound, "message_not_found", "message not found"},
	{rsvpdomain.ErrRsvpNotFound, "rsvp_not_found", "rsvp not found"},
	{partydomain.ErrMemberNotFound, "member_not_found", "wedding party member not found"},
	{popupdomain.ErrPopupNotFound, "popup_not_found", "popup not found"},
	{musicdomain.ErrTrackNotFound, "track_not_found", "music track not found"},
	{giftsdomain.ErrEntryNotFound, "gift_not_found", "gift entry not found"},
	{accountdomain.ErrUserNotFound, "user_not_found", "user not found"},
}

// fail maps a service error onto the error envelope and logs it. Expected
// failures log as business errors, everything else as internal.
func (h *Handlers) fail(w http.ResponseWriter, op string, err error, args ...any) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		h.log.BusinessError(op+": validation failed", err, args...)
		writeValidation(w, verr)
		return
	}

	for _, m := range notFoundErrors {
		if errors.Is(err, m.err) {
			h.log.BusinessError(op+": not found", err, args...)
			writeError(w, http.StatusNotFound, m.code, m.message)
			return
		}
	}

	switch {
	case errors.Is(err, accountdomain.ErrInvalidCredentials):
		h.log.BusinessError(op+": invalid credentials", err, args...)
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password")
	case errors.Is(err, accountdomain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
	default:
		h.log.InternalError(op+": failed", err, args...)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func (h *Handlers) invalidJSON(w http.ResponseWriter, op string, err error) {
	h.log.BusinessError(op+": invalid json", err)
	writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
}

// notFound answers for path ids that cannot exist.
func notFound(w http.ResponseWriter, code, message string) {
	writeError(w, http.StatusNotFound, code, message)
}

func (h *Handlers) recordSubmission(kind string) {
	if h.metrics != nil {
		h.metrics.RecordSubmission(kind)
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
