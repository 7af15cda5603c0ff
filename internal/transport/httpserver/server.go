package httpserver

import (
	"net/http"
	"time"

	"wedding-site-go/internal/config"
)

func New(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		// Image data URLs make request bodies large; the read timeout stays
		// generous.
		ReadTimeout: 60 * time.Second,
		IdleTimeout: 120 * time.Second,
	}
}
