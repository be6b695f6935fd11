package repo

import (
	"github.com/rekberhub/settlement/internal/pg"
	notificationrepo "github.com/rekberhub/settlement/internal/repo/notification-repo"
	orderrepo "github.com/rekberhub/settlement/internal/repo/order-repo"
	policyrepo "github.com/rekberhub/settlement/internal/repo/policy-repo"
	sellerrepo "github.com/rekberhub/settlement/internal/repo/seller-repo"
	withdrawalrepo "github.com/rekberhub/settlement/internal/repo/withdrawal-repo"
)

type Repositories struct {
	OrderRepo        *orderrepo.Repository
	SellerRepo       *sellerrepo.Repository
	WithdrawalRepo   *withdrawalrepo.Repository
	NotificationRepo *notificationrepo.Repository
	PolicyRepo       *policyrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		OrderRepo:        orderrepo.New(conn, txManager),
		SellerRepo:       sellerrepo.New(conn, txManager),
		WithdrawalRepo:   withdrawalrepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
		PolicyRepo:       policyrepo.New(conn),
	}
}
