package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rekberhub/settlement/docs"
	ledgerhandlers "github.com/rekberhub/settlement/internal/handlers/ledger"
	ordershandlers "github.com/rekberhub/settlement/internal/handlers/orders"
	reportshandlers "github.com/rekberhub/settlement/internal/handlers/reports"
	settlementhandlers "github.com/rekberhub/settlement/internal/handlers/settlement"
	"github.com/rekberhub/settlement/internal/service"
	"github.com/rekberhub/settlement/pkg/auth"
)

type OrderHandler interface {
	GetOrder(w http.ResponseWriter, r *http.Request)
	SubmitProof(w http.ResponseWriter, r *http.Request)
	ApprovePayment(w http.ResponseWriter, r *http.Request)
	RejectPayment(w http.ResponseWriter, r *http.Request)
	Ship(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type SettlementHandler interface {
	SettleSingle(w http.ResponseWriter, r *http.Request)
	SettleBulk(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type ReportsHandler interface {
	Leaderboard(w http.ResponseWriter, r *http.Request)
	RewardCandidates(w http.ResponseWriter, r *http.Request)
	SettlementReport(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler      OrderHandler
	LedgerHandler     LedgerHandler
	SettlementHandler SettlementHandler
	ReportsHandler    ReportsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		OrderHandler:      ordershandlers.New(s.OrderService),
		LedgerHandler:     ledgerhandlers.New(s.LedgerService),
		SettlementHandler: settlementhandlers.New(s.SettlementService),
		ReportsHandler:    reportshandlers.New(s.ScoringService, s.ReportService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/api/orders/{orderID}", func(r chi.Router) {
			r.Get("/", h.OrderHandler.GetOrder)
			r.Post("/proof", h.OrderHandler.SubmitProof)
			r.Post("/complete", h.OrderHandler.Complete)
			r.Post("/cancel", h.OrderHandler.Cancel)
		})

		r.Route("/api/sellers/{sellerID}", func(r chi.Router) {
			r.Get("/balance", h.LedgerHandler.GetBalance)
			r.Get("/withdrawals", h.SettlementHandler.GetWithdrawals)
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(auth.RequireAdmin)

			r.Route("/orders/{orderID}", func(r chi.Router) {
				r.Post("/approve", h.OrderHandler.ApprovePayment)
				r.Post("/reject", h.OrderHandler.RejectPayment)
				r.Post("/ship", h.OrderHandler.Ship)
			})
			r.Route("/settlements", func(r chi.Router) {
				r.Post("/single", h.SettlementHandler.SettleSingle)
				r.Post("/bulk", h.SettlementHandler.SettleBulk)
			})
			r.Get("/leaderboard", h.ReportsHandler.Leaderboard)
			r.Get("/reward-candidates", h.ReportsHandler.RewardCandidates)
			r.Get("/reports/settlements.csv", h.ReportsHandler.SettlementReport)
		})
	})

	return r
}
