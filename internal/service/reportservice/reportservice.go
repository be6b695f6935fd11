package reportservice

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rekberhub/settlement/internal/domain"
	"github.com/rekberhub/settlement/internal/fees"
	"go.uber.org/zap"
)

//go:generate mockgen -source=reportservice.go -destination=reportservice_mock.go -package=reportservice

type OrderRepo interface {
	FindSettled(ctx context.Context) ([]domain.Order, error)
}

type SellerRepo interface {
	ListAll(ctx context.Context) ([]domain.SellerAccount, error)
}

type PolicyRepo interface {
	MarketplacePolicy(ctx context.Context) (fees.MarketplacePolicy, error)
}

// Row is one settled order/seller pair. The column set is a stable
// contract for downstream reporting tooling.
type Row struct {
	Date      string
	OrderID   string
	SellerID  string
	StoreName string
	Gross     int64
	Voucher   int64
	Net       int64
	Fee       int64
	Payout    int64
}

const dateLayout = "2006-01-02"

var csvHeader = []string{"date", "order_id", "seller_id", "store", "gross", "voucher", "net", "fee", "payout"}

type Service struct {
	orderRepo  OrderRepo
	sellerRepo SellerRepo
	policyRepo PolicyRepo
}

func New(orderRepo OrderRepo, sellerRepo SellerRepo, policyRepo PolicyRepo) *Service {
	return &Service{
		orderRepo:  orderRepo,
		sellerRepo: sellerRepo,
		policyRepo: policyRepo,
	}
}

// SettlementRows builds one row per settled order per involved seller,
// oldest payout first.
func (s *Service) SettlementRows(ctx context.Context) ([]Row, error) {
	policy, err := s.policyRepo.MarketplacePolicy(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindSettled(ctx)
	if err != nil {
		zap.L().Error("failed to fetch settled orders", zap.Error(err))
		return nil, err
	}
	accounts, err := s.sellerRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch seller accounts", zap.Error(err))
		return nil, err
	}
	competitor := make(map[string]bool, len(accounts))
	storeName := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		competitor[acc.SellerID] = acc.IsCompetitor
		storeName[acc.SellerID] = acc.StoreName
	}

	var rows []Row
	for i := range orders {
		order := &orders[i]
		date := order.CreatedAt.Format(dateLayout)
		if order.PayoutAt != nil {
			date = order.PayoutAt.Format(dateLayout)
		}
		for _, sellerID := range order.SellerIDs() {
			b := fees.Split(order, sellerID, competitor[sellerID], policy)
			rows = append(rows, Row{
				Date:      date,
				OrderID:   order.ID,
				SellerID:  sellerID,
				StoreName: storeName[sellerID],
				Gross:     b.Gross,
				Voucher:   b.VoucherDeduction,
				Net:       b.Net,
				Fee:       b.Fee,
				Payout:    b.Payout,
			})
		}
	}
	return rows, nil
}

// WriteCSV streams the settlement report.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.SettlementRows(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Date,
			row.OrderID,
			row.SellerID,
			row.StoreName,
			strconv.FormatInt(row.Gross, 10),
			strconv.FormatInt(row.Voucher, 10),
			strconv.FormatInt(row.Net, 10),
			strconv.FormatInt(row.Fee, 10),
			strconv.FormatInt(row.Payout, 10),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
