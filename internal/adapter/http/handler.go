package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"crowdfund/internal/auth"
	"crowdfund/internal/core/port"
)

// Services are the use cases served over HTTP.
type Services struct {
	Campaigns     port.CampaignUseCase
	Contributions port.ContributionUseCase
	Accounts      port.AccountUseCase
	Launches      port.LaunchUseCase
}

// Handler is the inbound HTTP adapter. Routes that act on behalf of a
// wallet sit behind the session token middleware.
type Handler struct {
	svc    Services
	logger *slog.Logger
	router chi.Router
}

// NewHandler registers every route on a new chi router.
func NewHandler(svc Services, verifier *auth.Verifier, cookie string, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	requireWallet := auth.Middleware(verifier, cookie, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)

		r.Group(func(r chi.Router) {
			r.Use(requireWallet)
			r.Post("/campaigns", h.handleLaunchCampaign)
			r.Post("/campaigns/{id}/contributions", h.handleContribute)
			r.Get("/contributions/{id}", h.handleGetContribution)
			r.Get("/dashboard/supporters", h.handleSupporters)
			r.Get("/dashboard/stats", h.handleDashboardStats)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.Get("/get-user", h.handleGetUser)

		r.Group(func(r chi.Router) {
			r.Use(requireWallet)
			r.Post("/update-profile", h.handleUpdateProfile)
			r.Get("/campaigns", h.handleListDrafts)
			r.Post("/campaigns", h.handleCreateDraft)
		})
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
