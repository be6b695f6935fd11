package dto

import "time"

type SubmitProofRequestDTO struct {
	ProofURL string `json:"proofUrl" example:"https://storage.example.com/proofs/inv-1042.jpg"`
}

type RejectPaymentRequestDTO struct {
	Reason string `json:"reason" example:"nominal transfer tidak sesuai"`
}

type OrderResponseDTO struct {
	ID              string     `json:"id" example:"ord-1042"`
	BuyerID         string     `json:"buyerId" example:"buyer-77"`
	TotalPrice      int64      `json:"totalPrice" example:"150000"`
	Status          string     `json:"status" example:"processed"`
	ProofURL        string     `json:"proofUrl,omitempty"`
	Resi            string     `json:"resi,omitempty" example:"RKB2908261234567"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	PayoutCompleted bool       `json:"payoutCompleted"`
	PaidAt          *time.Time `json:"paidAt,omitempty"`
	VerifiedAt      *time.Time `json:"verifiedAt,omitempty"`
	ShippedAt       *time.Time `json:"shippedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
