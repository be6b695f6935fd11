package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rekberhub/settlement/internal/domain"
	"github.com/rekberhub/settlement/internal/dto"
	settlementservice "github.com/rekberhub/settlement/internal/service/settlementservice"
	"github.com/rekberhub/settlement/pkg/auth"
	"github.com/rekberhub/settlement/pkg/utils"
)

type Service interface {
	SettleSingle(ctx context.Context, orderID, proofURL, adminID string) (*domain.WithdrawalRecord, error)
	SettleBulk(ctx context.Context, sellerID string, orderIDs []string, requestedAmount int64, proofURL, adminID, note string) (*domain.WithdrawalRecord, error)
	GetWithdrawals(ctx context.Context, sellerID string) ([]domain.WithdrawalRecord, error)
}

type SettlementHandler struct {
	settlementService Service
}

func New(settlementService Service) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
	}
}

func toWithdrawalDTO(record *domain.WithdrawalRecord) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		ID:        record.ID,
		SellerID:  record.SellerID,
		Amount:    record.Amount,
		ProofURL:  record.ProofURL,
		Status:    record.Status,
		OrderIDs:  record.OrderIDs,
		Type:      string(record.Type),
		Note:      record.Note,
		CreatedAt: record.CreatedAt,
	}
}

func respondSettlementError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, settlementservice.ErrAlreadySettled):
		// A lost race is a benign outcome, not a failure.
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: err.Error()})
	case errors.Is(err, settlementservice.ErrOrderNotFound),
		errors.Is(err, settlementservice.ErrSellerNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, settlementservice.ErrOrderNotCompleted):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, settlementservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, settlementservice.ErrMissingProof),
		errors.Is(err, settlementservice.ErrProofUnavailable),
		errors.Is(err, settlementservice.ErrNoPaymentDetails),
		errors.Is(err, settlementservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// SettleSingle godoc
//
//	@Summary		Settle one order
//	@Description	Pays out a completed order to its seller: debits the ledger and appends a withdrawal record.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SettleSingleRequestDTO	true	"Settlement payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO	"Withdrawal record"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		404		{object}	utils.Response				"Order or seller not found"
//	@Failure		409		{object}	utils.Response				"Order not completed"
//	@Failure		422		{object}	utils.Response				"Missing precondition"
//	@Router			/api/admin/settlements/single [post]
func (h *SettlementHandler) SettleSingle(w http.ResponseWriter, r *http.Request) {
	adminID, _ := r.Context().Value(auth.UserIDKey).(string)

	var req dto.SettleSingleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.settlementService.SettleSingle(r.Context(), req.OrderID, req.ProofURL, adminID)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(record))
}

// SettleBulk godoc
//
//	@Summary		Settle a batch of orders
//	@Description	Marks every order paid out and debits the admin-supplied reconciliation amount in one transaction.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SettleBulkRequestDTO	true	"Bulk settlement payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO	"Withdrawal record"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		404		{object}	utils.Response				"Seller not found"
//	@Failure		422		{object}	utils.Response				"Missing precondition"
//	@Router			/api/admin/settlements/bulk [post]
func (h *SettlementHandler) SettleBulk(w http.ResponseWriter, r *http.Request) {
	adminID, _ := r.Context().Value(auth.UserIDKey).(string)

	var req dto.SettleBulkRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.OrderIDs) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "orderIds must not be empty")
		return
	}

	record, err := h.settlementService.SettleBulk(r.Context(),
		req.SellerID, req.OrderIDs, req.Amount, req.ProofURL, adminID, req.Note)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(record))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawal history
//	@Description	Append-only audit trail of cash transferred to the seller, newest first.
//	@Tags			Sellers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			sellerID	path		string						true	"Seller id"
//	@Success		200			{array}		dto.WithdrawalResponseDTO	"Withdrawal history"
//	@Success		204			{object}	utils.Response				"No withdrawals"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/sellers/{sellerID}/withdrawals [get]
func (h *SettlementHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "sellerID")

	records, err := h.settlementService.GetWithdrawals(r.Context(), sellerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	if len(records) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(records))
	for i := range records {
		response[i] = toWithdrawalDTO(&records[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
