package sellerrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/rekberhub/settlement/internal/domain"
	"github.com/rekberhub/settlement/internal/pg"
	"go.uber.org/zap"
)

const sellerColumns = `id, seller_id, store_name, is_competitor, balance,
        competition_revenue, competition_qty, points_event, points_loyalty,
        payment_details, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanSeller(row pgx.Row) (*domain.SellerAccount, error) {
	var acc domain.SellerAccount
	err := row.Scan(
		&acc.ID, &acc.SellerID, &acc.StoreName, &acc.IsCompetitor, &acc.Balance,
		&acc.CompetitionRevenue, &acc.CompetitionQty, &acc.PointsEvent,
		&acc.PointsLoyalty, &acc.PaymentDetails, &acc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *Repository) GetBySellerID(ctx context.Context, sellerID string) (*domain.SellerAccount, error) {
	query := `
        SELECT ` + sellerColumns + `
        FROM seller_accounts
        WHERE seller_id = $1
    `
	acc, err := scanSeller(r.db.QueryRow(ctx, query, sellerID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get seller account", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) Create(ctx context.Context, acc *domain.SellerAccount) (*domain.SellerAccount, error) {
	query := `
        INSERT INTO seller_accounts (seller_id, store_name, is_competitor, payment_details)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + sellerColumns + `
    `
	created, err := scanSeller(r.db.QueryRow(ctx, query,
		acc.SellerID, acc.StoreName, acc.IsCompetitor, acc.PaymentDetails))
	if err != nil {
		zap.L().Error("failed to create seller account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.SellerAccount, error) {
	query := `
        SELECT ` + sellerColumns + `
        FROM seller_accounts
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list seller accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.SellerAccount
	for rows.Next() {
		acc, err := scanSeller(rows)
		if err != nil {
			zap.L().Error("failed to scan seller row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *acc)
	}
	return accounts, nil
}

// DebitBalance subtracts amount from the seller's available balance,
// clamped at zero, and returns the new balance. The single UPDATE keeps
// concurrent debits serialized on the row lock.
func (r *Repository) DebitBalance(ctx context.Context, sellerID string, amount int64) (int64, error) {
	var newBalance int64
	query := `
        UPDATE seller_accounts
        SET balance = GREATEST(balance - $1, 0)
        WHERE seller_id = $2
        RETURNING balance
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, amount, sellerID)
		if err := row.Scan(&newBalance); err != nil {
			zap.L().Error("failed to debit seller balance", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// UpdateCompetitionStats persists the aggregator's per-seller counters.
func (r *Repository) UpdateCompetitionStats(ctx context.Context, sellerID string, revenue, qty, pointsEvent int64) error {
	query := `
        UPDATE seller_accounts
        SET competition_revenue = $1, competition_qty = $2, points_event = $3
        WHERE seller_id = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, revenue, qty, pointsEvent, sellerID)
		if err != nil {
			zap.L().Error("failed to update competition stats", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
