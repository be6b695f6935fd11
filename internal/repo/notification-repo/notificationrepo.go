package notificationrepo

import (
	"context"

	"github.com/rekberhub/settlement/internal/domain"
	"github.com/rekberhub/settlement/internal/pg"
	"go.uber.org/zap"
)

// Repository is the write-only notification sink. Delivery and read
// tracking belong to the UI layer.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
        INSERT INTO notifications (user_id, title, message, type, target_view, target_tab, order_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		n.UserID, n.Title, n.Message, n.Type,
		n.TargetView, n.TargetTab, n.OrderID, n.CreatedAt)
	if err != nil {
		zap.L().Error("can't save notification", zap.Error(err))
		return err
	}
	return nil
}
