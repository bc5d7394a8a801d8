package router

import (
	"net/http"
	"time"

	"github.com/growwitup/backend/internal/auth"
	"github.com/growwitup/backend/internal/handler"
	"github.com/growwitup/backend/internal/middleware"
)

// New creates and configures the HTTP router
func New(h *handler.Handler, mw *middleware.Middleware, tokenSvc *auth.TokenService) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoints (no auth required)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	mux.HandleFunc("GET /{$}", h.Welcome)

	// Login is rate limited per client IP
	loginRateLimit := mw.RateLimit(middleware.RateLimitConfig{
		Limit:  5,
		Window: 15 * time.Minute,
		KeyFn:  middleware.IPKey,
	})
	mux.Handle("POST /api/login", loginRateLimit(http.HandlerFunc(h.Login)))
	mux.HandleFunc("POST /api/logout", h.Logout)

	// Subscriber list
	mux.HandleFunc("POST /api/subscribe", h.Subscribe)
	mux.HandleFunc("POST /api/unsubscribe", h.Unsubscribe)
	mux.HandleFunc("GET /api/subscribers", h.ListSubscribers)
	mux.HandleFunc("GET /api/count", h.Count)

	// Contact form
	mux.HandleFunc("POST /api/contact-us", h.ContactUs)
	mux.HandleFunc("GET /api/contacted", h.ListContacted)

	// Broadcast requires a valid credential
	authMw := mw.Auth(tokenSvc)
	mux.Handle("POST /api/send-email", authMw(http.HandlerFunc(h.SendEmail)))

	mux.HandleFunc("POST /api/send-date", h.SendDate)

	// Apply middleware stack
	var hdl http.Handler = mux

	hdl = mw.CORS([]string{"*"})(hdl)
	hdl = mw.SecurityHeaders(hdl)
	hdl = mw.Logger(hdl)
	hdl = mw.RequestID(hdl)
	hdl = mw.Recover(hdl)

	return hdl
}
