package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/investledger/docs"
	adminhandlers "github.com/GlebRadaev/investledger/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/investledger/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/investledger/internal/handlers/balance"
	requesthandlers "github.com/GlebRadaev/investledger/internal/handlers/requests"
	"github.com/GlebRadaev/investledger/internal/service"
	"github.com/GlebRadaev/investledger/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type RequestHandler interface {
	SubmitDeposit(w http.ResponseWriter, r *http.Request)
	SubmitWithdrawal(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
	ListAdjustments(w http.ResponseWriter, r *http.Request)
	SetAccountStatus(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	BalanceHandler BalanceHandler
	RequestHandler RequestHandler
	AdminHandler   AdminHandler

	Authenticate func(http.Handler) http.Handler
	Metrics      http.Handler
}

func New(s *service.Services, mw *auth.Middleware, metrics http.Handler) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		BalanceHandler: balancehandlers.New(s.BalanceService),
		RequestHandler: requesthandlers.New(s.LedgerService, s.BalanceService),
		AdminHandler:   adminhandlers.New(s.LedgerService, s.BalanceService),
		Authenticate:   mw.Authenticate,
		Metrics:        metrics,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics)
	}

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate)
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Get("/summary", h.BalanceHandler.GetSummary)
			})
			r.Route("/requests", func(r chi.Router) {
				r.Get("/", h.RequestHandler.ListRequests)
				r.Post("/deposit", h.RequestHandler.SubmitDeposit)
				r.Post("/withdrawal", h.RequestHandler.SubmitWithdrawal)
			})
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(h.Authenticate, auth.AdminOnly)
		r.Get("/requests", h.AdminHandler.ListRequests)
		r.Get("/requests/{id}", h.AdminHandler.GetRequest)
		r.Post("/requests/{id}/approve", h.AdminHandler.Approve)
		r.Post("/requests/{id}/reject", h.AdminHandler.Reject)
		r.Get("/accounts/{id}/adjustments", h.AdminHandler.ListAdjustments)
		r.Post("/accounts/{id}/adjustments", h.AdminHandler.Adjust)
		r.Put("/accounts/{id}/status", h.AdminHandler.SetAccountStatus)
	})

	return r
}
