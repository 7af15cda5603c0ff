package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"wedding-site-go/internal/config"
	"wedding-site-go/internal/metrics"
	"wedding-site-go/internal/transport/httpserver/handler"
	"wedding-site-go/internal/transport/httpserver/middleware"
	"wedding-site-go/pkg/logger"
)

// maxBodyBytes leaves room for two base64 images plus the JSON around them.
func maxBodyBytes(cfg config.UploadsConfig) int64 {
	limit := int64(cfg.MaxImageBytes)
	if limit <= 0 {
		limit = 5 << 20
	}
	return limit*3 + 1<<20
}

// Deps carries what the router needs beyond the handlers.
type Deps struct {
	Auth        middleware.Authenticator
	Metrics     *metrics.Metrics
	RateLimiter *middleware.RateLimiter
}

func NewRouter(cfg config.Config, handlers *handler.Handlers, deps Deps, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.InstrumentHandler)
	}
	if cfg.HTTP.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.HTTP.RequestTimeout))
	}
	r.Use(chimw.RequestSize(maxBodyBytes(cfg.Uploads)))
	r.Use(middleware.NewCORS(cfg.HTTP.Origins()))

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	submissions := func(next http.Handler) http.Handler { return next }
	if deps.RateLimiter != nil {
		submissions = deps.RateLimiter.Handler
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/couple", handlers.GetCouple)
		r.Get("/settings", handlers.GetSettings)
		r.Get("/livestream", handlers.GetLivestream)
		r.Get("/schedule", handlers.ListEvents)
		r.Get("/photos", handlers.ListPhotos)
		r.Get("/messages", handlers.ListApprovedMessages)
		r.Get("/guest-photos", handlers.ListApprovedGuestPhotos)
		r.Get("/rsvps/stats", handlers.RsvpStats)
		r.Get("/wedding-party", handlers.ListMembers)
		r.Get("/popups", handlers.ListActivePopups)
		r.Get("/music", handlers.ListActiveTracks)

		r.Group(func(r chi.Router) {
			r.Use(submissions)

			r.Post("/messages", handlers.SubmitMessage)
			r.Post("/guest-photos", handlers.SubmitGuestPhoto)
			r.Post("/rsvps", handlers.SubmitRsvp)
			r.Post("/auth/login", handlers.Login)
		})
		r.Post("/auth/logout", handlers.Logout)

		auth := middleware.NewSessionAuth(deps.Auth, cfg.Session.CookieName, log)
		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/dashboard", handlers.DashboardOverview)
			r.Get("/auth/me", handlers.AuthMe)
			r.Get("/account", handlers.GetAccount)
			r.Patch("/account", handlers.UpdateAccount)
			r.Put("/account/password", handlers.ChangePassword)

			r.Put("/couple", handlers.UpsertCouple)
			r.Put("/settings", handlers.UpsertSettings)
			r.Put("/livestream", handlers.UpsertLivestream)

			r.Get("/schedule", handlers.ListEvents)
			r.Post("/schedule", handlers.CreateEvent)
			r.Get("/schedule/{id}", handlers.GetEvent)
			r.Patch("/schedule/{id}", handlers.UpdateEvent)
			r.Delete("/schedule/{id}", handlers.DeleteEvent)

			r.Get("/photos", handlers.ListPhotos)
			r.Post("/photos", handlers.CreatePhoto)
			r.Get("/photos/{id}", handlers.GetPhoto)
			r.Patch("/photos/{id}", handlers.UpdatePhoto)
			r.Delete("/photos/{id}", handlers.DeletePhoto)

			r.Get("/wedding-party", handlers.ListMembers)
			r.Post("/wedding-party", handlers.CreateMember)
			r.Get("/wedding-party/{id}", handlers.GetMember)
			r.Patch("/wedding-party/{id}", handlers.UpdateMember)
			r.Delete("/wedding-party/{id}", handlers.DeleteMember)

			r.Get("/popups", handlers.ListPopups)
			r.Post("/popups", handlers.CreatePopup)
			r.Get("/popups/{id}", handlers.GetPopup)
			r.Patch("/popups/{id}", handlers.UpdatePopup)
			r.Delete("/popups/{id}", handlers.DeletePopup)

			r.Get("/music", handlers.ListTracks)
			r.Post("/music", handlers.CreateTrack)
			r.Get("/music/{id}", handlers.GetTrack)
			r.Patch("/music/{id}", handlers.UpdateTrack)
			r.Delete("/music/{id}", handlers.DeleteTrack)

			r.Get("/gifts", handlers.ListGifts)
			r.Post("/gifts", handlers.CreateGift)
			r.Get("/gifts/summary", handlers.GiftSummary)
			r.Get("/gifts/{id}", handlers.GetGift)
			r.Patch("/gifts/{id}", handlers.UpdateGift)
			r.Delete("/gifts/{id}", handlers.DeleteGift)

			r.Get("/messages", handlers.ListMessages)
			r.Put("/messages/{id}/approval", handlers.SetMessageApproval)
			r.Delete("/messages/{id}", handlers.DeleteMessage)

			r.Get("/guest-photos", handlers.ListGuestPhotos)
			r.Put("/guest-photos/{id}/approval", handlers.SetGuestPhotoApproval)
			r.Delete("/guest-photos/{id}", handlers.DeleteGuestPhoto)

			r.Get("/rsvps", handlers.ListRsvps)
			r.Get("/rsvps/stats", handlers.RsvpStats)
			r.Get("/rsvps/export.csv", handlers.ExportRsvps)
			r.Get("/rsvps/{id}", handlers.GetRsvp)
			r.Patch("/rsvps/{id}", handlers.UpdateRsvp)
			r.Delete("/rsvps/{id}", handlers.DeleteRsvp)
		})
	})

	return r
}
