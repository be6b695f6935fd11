package orderrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rekberhub/settlement/internal/domain"
	"github.com/rekberhub/settlement/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockTxManager := pg.NewMockTXManager(ctrl)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	repo := New(mockDB, mockTxManager)
	return repo, mockDB, mockTxManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

var orderColumnNames = []string{
	"id", "buyer_id", "total_price", "items", "voucher", "status", "proof_url",
	"paid_at", "verified_at", "shipped_at", "resi", "rejection_reason",
	"payout_completed", "payout_proof_url", "payout_at", "completed_by", "created_at",
}

func orderRow(id string, status domain.OrderStatus, createdAt time.Time) []any {
	items := []byte(`[{"productId":"p1","sellerId":"s1","storeName":"Toko Makmur","price":50000,"quantity":1}]`)
	return []any{
		id, "buyer-1", int64(50000), items, []byte(nil), status, "",
		nil, nil, nil, "", "",
		false, "", nil, "", createdAt,
	}
}

func TestRepository_FindByID(t *testing.T) {
	createdAt := time.Now()

	tests := []struct {
		name      string
		orderID   string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		found     bool
	}{
		{
			name:    "order exists",
			orderID: "ord-1",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(orderColumnNames).AddRow(orderRow("ord-1", domain.StatusProcessed, createdAt)...)
				mock.ExpectQuery(`SELECT (.+) FROM orders\s+WHERE id = \$1`).
					WithArgs("ord-1").
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name:    "order does not exist",
			orderID: "missing",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM orders\s+WHERE id = \$1`).
					WithArgs("missing").
					WillReturnRows(pgxmock.NewRows(orderColumnNames))
			},
		},
		{
			name:    "database error",
			orderID: "ord-1",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM orders\s+WHERE id = \$1`).
					WithArgs("ord-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := NewMock(t)
			tt.mockSetup(mock)

			order, err := repo.FindByID(context.Background(), tt.orderID)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if !tt.found {
				assert.Nil(t, order)
				return
			}
			assert.Equal(t, "ord-1", order.ID)
			assert.Equal(t, domain.StatusProcessed, order.Status)
			assert.Len(t, order.Items, 1)
			assert.Equal(t, "s1", order.Items[0].SellerID)
			assert.Nil(t, order.Voucher)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	passthroughTx(txManager)

	order := &domain.Order{
		ID:         "ord-1",
		BuyerID:    "buyer-1",
		TotalPrice: 50000,
		Status:     domain.StatusWaitingPayment,
		Items: []domain.OrderItem{
			{ProductID: "p1", SellerID: "s1", Price: 50000, Quantity: 1},
		},
		CreatedAt: time.Now(),
	}
	mock.ExpectExec(`INSERT INTO orders`).
		WithArgs(order.ID, order.BuyerID, order.TotalPrice, pgxmock.AnyArg(), pgxmock.AnyArg(),
			order.Status, order.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Save(context.Background(), order)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		passthroughTx(txManager)

		order := &domain.Order{ID: "ord-1", Status: domain.StatusShipped, Resi: "RKB2908261234567"}
		mock.ExpectExec(`UPDATE orders\s+SET status = \$1`).
			WithArgs(order.Status, order.ProofURL, order.PaidAt, order.VerifiedAt,
				order.ShippedAt, order.Resi, order.RejectionReason, order.CompletedBy, order.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Update(context.Background(), order)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		passthroughTx(txManager)

		mock.ExpectExec(`UPDATE orders\s+SET status = \$1`).
			WillReturnError(errors.New("database error"))

		err := repo.Update(context.Background(), &domain.Order{ID: "ord-1"})
		assert.Error(t, err)
	})
}

func TestRepository_MarkPayoutCompleted(t *testing.T) {
	at := time.Now()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		want      bool
		expectErr bool
	}{
		{
			name: "wins the compare-and-set",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE orders\s+SET payout_completed = TRUE`).
					WithArgs("proof.jpg", at, "admin-1", "ord-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			want: true,
		},
		{
			name: "loses to an earlier settlement",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE orders\s+SET payout_completed = TRUE`).
					WithArgs("proof.jpg", at, "admin-1", "ord-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			want: false,
		},
		{
			name: "database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE orders\s+SET payout_completed = TRUE`).
					WithArgs("proof.jpg", at, "admin-1", "ord-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := NewMock(t)
			tt.mockSetup(mock)

			won, err := repo.MarkPayoutCompleted(context.Background(), "ord-1", "proof.jpg", at, "admin-1")

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, won)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindActiveBySeller(t *testing.T) {
	repo, mock, _ := NewMock(t)
	createdAt := time.Now()

	rows := pgxmock.NewRows(orderColumnNames).
		AddRow(orderRow("ord-1", domain.StatusProcessed, createdAt)...).
		AddRow(orderRow("ord-2", domain.StatusShipped, createdAt)...)
	mock.ExpectQuery(`SELECT (.+) FROM orders\s+WHERE status IN \('processed', 'shipped'\)`).
		WithArgs([]byte(`[{"sellerId":"s1"}]`)).
		WillReturnRows(rows)

	orders, err := repo.FindActiveBySeller(context.Background(), "s1")

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, "ord-1", orders[0].ID)
	assert.Equal(t, "ord-2", orders[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindInWindow(t *testing.T) {
	repo, mock, _ := NewMock(t)
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(orderColumnNames).
		AddRow(orderRow("ord-1", domain.StatusCompleted, start.Add(24*time.Hour))...)
	mock.ExpectQuery(`SELECT (.+) FROM orders\s+WHERE created_at >= \$1 AND created_at <= \$2`).
		WithArgs(start, end).
		WillReturnRows(rows)

	orders, err := repo.FindInWindow(context.Background(), start, end)

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindSettled(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, _ := NewMock(t)
		rows := pgxmock.NewRows(orderColumnNames).
			AddRow(orderRow("ord-1", domain.StatusCompleted, time.Now())...)
		mock.ExpectQuery(`SELECT (.+) FROM orders\s+WHERE payout_completed = TRUE`).
			WillReturnRows(rows)

		orders, err := repo.FindSettled(context.Background())

		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, _ := NewMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM orders\s+WHERE payout_completed = TRUE`).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindSettled(context.Background())
		assert.Error(t, err)
	})
}
