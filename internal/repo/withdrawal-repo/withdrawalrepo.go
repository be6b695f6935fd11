package withdrawalrepo

import (
	"context"

	"github.com/rekberhub/settlement/internal/domain"
	"github.com/rekberhub/settlement/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create appends a withdrawal record. The table is append-only: there is
// deliberately no update or delete method.
func (r *Repository) Create(ctx context.Context, record *domain.WithdrawalRecord) (*domain.WithdrawalRecord, error) {
	query := `
        INSERT INTO withdrawals (id, seller_id, amount, proof_url, status, order_ids, type, note, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		record.ID, record.SellerID, record.Amount, record.ProofURL,
		record.Status, record.OrderIDs, record.Type, record.Note,
		record.CreatedAt).Scan(&record.ID)
	if err != nil {
		zap.L().Error("can't save withdrawal record", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (r *Repository) ListBySeller(ctx context.Context, sellerID string) ([]domain.WithdrawalRecord, error) {
	query := `
        SELECT id, seller_id, amount, proof_url, status, order_ids, type, note, created_at
        FROM withdrawals
        WHERE seller_id = $1
        ORDER BY created_at DESC
    `
	return r.queryRecords(ctx, query, sellerID)
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.WithdrawalRecord, error) {
	query := `
        SELECT id, seller_id, amount, proof_url, status, order_ids, type, note, created_at
        FROM withdrawals
        ORDER BY created_at ASC
    `
	return r.queryRecords(ctx, query)
}

func (r *Repository) queryRecords(ctx context.Context, query string, args ...any) ([]domain.WithdrawalRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.WithdrawalRecord
	for rows.Next() {
		var rec domain.WithdrawalRecord
		err := rows.Scan(&rec.ID, &rec.SellerID, &rec.Amount, &rec.ProofURL,
			&rec.Status, &rec.OrderIDs, &rec.Type, &rec.Note, &rec.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
