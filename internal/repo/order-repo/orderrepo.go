package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rekberhub/settlement/internal/domain"
	"github.com/rekberhub/settlement/internal/pg"
	"go.uber.org/zap"
)

const orderColumns = `id, buyer_id, total_price, items, voucher, status, proof_url,
        paid_at, verified_at, shipped_at, resi, rejection_reason,
        payout_completed, payout_proof_url, payout_at, completed_by, created_at`

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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order      domain.Order
		itemsRaw   []byte
		voucherRaw []byte
	)
	err := row.Scan(
		&order.ID, &order.BuyerID, &order.TotalPrice, &itemsRaw, &voucherRaw,
		&order.Status, &order.ProofURL, &order.PaidAt, &order.VerifiedAt,
		&order.ShippedAt, &order.Resi, &order.RejectionReason,
		&order.PayoutCompleted, &order.PayoutProofURL, &order.PayoutAt,
		&order.CompletedBy, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsRaw, &order.Items); err != nil {
		return nil, err
	}
	if len(voucherRaw) > 0 {
		var voucher domain.AppliedVoucher
		if err := json.Unmarshal(voucherRaw, &voucher); err != nil {
			return nil, err
		}
		order.Voucher = &voucher
	}
	return &order, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	itemsRaw, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}
	var voucherRaw []byte
	if order.Voucher != nil {
		if voucherRaw, err = json.Marshal(order.Voucher); err != nil {
			return err
		}
	}
	query := `
        INSERT INTO orders (id, buyer_id, total_price, items, voucher, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	err = r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			order.ID, order.BuyerID, order.TotalPrice, itemsRaw, voucherRaw,
			order.Status, order.CreatedAt)
		if err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// Update persists the fields owned by status transitions. Items, voucher
// and payout flags are never touched here.
func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	query := `
        UPDATE orders
        SET status = $1, proof_url = $2, paid_at = $3, verified_at = $4,
            shipped_at = $5, resi = $6, rejection_reason = $7, completed_by = $8
        WHERE id = $9
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			order.Status, order.ProofURL, order.PaidAt, order.VerifiedAt,
			order.ShippedAt, order.Resi, order.RejectionReason,
			order.CompletedBy, order.ID)
		if err != nil {
			zap.L().Error("failed to update order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// MarkPayoutCompleted flips the payout flag for a completed order.
// The WHERE clause is the compare-and-set guard: when another settlement
// already won, zero rows match and false is returned with a nil error.
func (r *Repository) MarkPayoutCompleted(ctx context.Context, orderID, proofURL string, at time.Time, adminID string) (bool, error) {
	query := `
        UPDATE orders
        SET payout_completed = TRUE, payout_proof_url = $1, payout_at = $2, completed_by = $3
        WHERE id = $4 AND status = 'completed' AND payout_completed = FALSE
    `
	tag, err := r.db.Exec(ctx, query, proofURL, at, adminID, orderID)
	if err != nil {
		zap.L().Error("can't mark order payout", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// FindActiveBySeller returns the in-flight orders (processed or shipped)
// that contain at least one line item of the seller.
func (r *Repository) FindActiveBySeller(ctx context.Context, sellerID string) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE status IN ('processed', 'shipped')
          AND items @> $1
        ORDER BY created_at ASC
    `
	match, err := json.Marshal([]map[string]string{{"sellerId": sellerID}})
	if err != nil {
		return nil, err
	}
	return r.queryOrders(ctx, query, match)
}

// FindInWindow returns orders created inside [start, end] whose status
// counts toward competition scoring.
func (r *Repository) FindInWindow(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE created_at >= $1 AND created_at <= $2
          AND status IN ('processed', 'shipped', 'completed')
        ORDER BY created_at ASC
    `
	return r.queryOrders(ctx, query, start, end)
}

// FindSettled returns paid-out orders, oldest payout first, for the
// settlement report.
func (r *Repository) FindSettled(ctx context.Context) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE payout_completed = TRUE
        ORDER BY payout_at ASC
    `
	return r.queryOrders(ctx, query)
}

func (r *Repository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}
