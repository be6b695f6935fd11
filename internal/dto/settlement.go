package dto

import "time"

type SettleSingleRequestDTO struct {
	OrderID  string `json:"orderId" example:"ord-1042"`
	ProofURL string `json:"proofUrl" example:"https://storage.example.com/payouts/wd-881.jpg"`
}

type SettleBulkRequestDTO struct {
	SellerID string   `json:"sellerId" example:"seller-12"`
	OrderIDs []string `json:"orderIds"`
	Amount   int64    `json:"amount" example:"250000"`
	ProofURL string   `json:"proofUrl" example:"https://storage.example.com/payouts/wd-882.jpg"`
	Note     string   `json:"note,omitempty" example:"rekonsiliasi minggu 35"`
}

type WithdrawalResponseDTO struct {
	ID        string    `json:"id"`
	SellerID  string    `json:"sellerId" example:"seller-12"`
	Amount    int64     `json:"amount" example:"48000"`
	ProofURL  string    `json:"proofUrl"`
	Status    string    `json:"status" example:"completed"`
	OrderIDs  []string  `json:"orderIds"`
	Type      string    `json:"type" example:"single"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type BalanceResponseDTO struct {
	SellerID  string `json:"sellerId" example:"seller-12"`
	StoreName string `json:"storeName" example:"Toko Makmur"`
	Held      int64  `json:"held" example:"120000"`
	Available int64  `json:"available" example:"48000"`
}

type SellerScoreResponseDTO struct {
	SellerID  string `json:"sellerId" example:"seller-12"`
	StoreName string `json:"storeName" example:"Toko Makmur"`
	Revenue   int64  `json:"revenue" example:"600000"`
	Qty       int64  `json:"qty" example:"40"`
	Sales     int64  `json:"sales" example:"12"`
	Score     int64  `json:"score" example:"260"`
	Eligible  bool   `json:"eligible"`
}
