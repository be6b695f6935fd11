package service

import (
	"testing"

	"github.com/rekberhub/settlement/internal/config"
	"github.com/rekberhub/settlement/internal/metrics"
	"github.com/rekberhub/settlement/internal/pg"
	"github.com/rekberhub/settlement/internal/repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	mockTxManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockDB, mockTxManager)

	cfg := &config.Config{VerifyProofURLs: true}
	services := New(cfg, repos, mockTxManager, metrics.NewSettlementMetrics())

	assert.NotNil(t, services.OrderService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.SettlementService)
	assert.NotNil(t, services.ScoringService)
	assert.NotNil(t, services.ReportService)
	assert.NotNil(t, services.Scoring)
	assert.Same(t, services.ScoringService, services.Scoring)

	if err := mockDB.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
