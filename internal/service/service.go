package service

import (
	ledgerhandlers "github.com/rekberhub/settlement/internal/handlers/ledger"
	ordershandlers "github.com/rekberhub/settlement/internal/handlers/orders"
	reportshandlers "github.com/rekberhub/settlement/internal/handlers/reports"
	settlementhandlers "github.com/rekberhub/settlement/internal/handlers/settlement"

	"github.com/rekberhub/settlement/internal/config"
	"github.com/rekberhub/settlement/internal/metrics"
	"github.com/rekberhub/settlement/internal/pg"
	"github.com/rekberhub/settlement/internal/repo"
	ledgerservice "github.com/rekberhub/settlement/internal/service/ledgerservice"
	orderservice "github.com/rekberhub/settlement/internal/service/orderservice"
	reportservice "github.com/rekberhub/settlement/internal/service/reportservice"
	scoringservice "github.com/rekberhub/settlement/internal/service/scoringservice"
	settlementservice "github.com/rekberhub/settlement/internal/service/settlementservice"
	"github.com/rekberhub/settlement/pkg/clients"
)

type Services struct {
	OrderService      ordershandlers.Service
	LedgerService     ledgerhandlers.Service
	SettlementService settlementhandlers.Service
	ScoringService    reportshandlers.ScoringService
	ReportService     reportshandlers.ReportService

	// Scoring is the concrete aggregator, exposed so the application can
	// start its background refresher.
	Scoring *scoringservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, m *metrics.SettlementMetrics) *Services {
	orderService := orderservice.New(repo.OrderRepo, repo.NotificationRepo, m)
	ledgerService := ledgerservice.New(repo.OrderRepo, repo.SellerRepo, repo.PolicyRepo)
	settlementService := settlementservice.New(
		repo.OrderRepo, repo.SellerRepo, repo.WithdrawalRepo, repo.PolicyRepo,
		txManager, clients.NewHTTPClient(), cfg.VerifyProofURLs, m)
	scoringService := scoringservice.New(repo.OrderRepo, repo.SellerRepo, repo.PolicyRepo)
	reportService := reportservice.New(repo.OrderRepo, repo.SellerRepo, repo.PolicyRepo)

	return &Services{
		OrderService:      orderService,
		LedgerService:     ledgerService,
		SettlementService: settlementService,
		ScoringService:    scoringService,
		ReportService:     reportService,
		Scoring:           scoringService,
	}
}
