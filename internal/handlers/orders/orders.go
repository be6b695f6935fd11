package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rekberhub/settlement/internal/domain"
	"github.com/rekberhub/settlement/internal/dto"
	orderservice "github.com/rekberhub/settlement/internal/service/orderservice"
	"github.com/rekberhub/settlement/pkg/utils"
)

type Service interface {
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	SubmitProof(ctx context.Context, orderID, proofURL string) (*domain.Order, error)
	ApprovePayment(ctx context.Context, orderID string) (*domain.Order, error)
	RejectPayment(ctx context.Context, orderID, reason string) (*domain.Order, error)
	Ship(ctx context.Context, orderID string) (*domain.Order, error)
	Complete(ctx context.Context, orderID string) (*domain.Order, error)
	Cancel(ctx context.Context, orderID string) (*domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func toOrderDTO(order *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:              order.ID,
		BuyerID:         order.BuyerID,
		TotalPrice:      order.TotalPrice,
		Status:          string(order.Status),
		ProofURL:        order.ProofURL,
		Resi:            order.Resi,
		RejectionReason: order.RejectionReason,
		PayoutCompleted: order.PayoutCompleted,
		PaidAt:          order.PaidAt,
		VerifiedAt:      order.VerifiedAt,
		ShippedAt:       order.ShippedAt,
		CreatedAt:       order.CreatedAt,
	}
}

func (h *OrderHandler) respondTransition(w http.ResponseWriter, order *domain.Order, err error) {
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, orderservice.ErrMissingProof):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// GetOrder godoc
//
//	@Summary		Get one order
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		string					true	"Order id"
//	@Success		200		{object}	dto.OrderResponseDTO	"Order"
//	@Failure		404		{object}	utils.Response			"Order not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/orders/{orderID} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	order, err := h.orderService.GetOrder(r.Context(), orderID)
	h.respondTransition(w, order, err)
}

// SubmitProof godoc
//
//	@Summary		Submit payment proof
//	@Description	Attach the buyer's transfer proof and move the order to verification.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		string						true	"Order id"
//	@Param			request	body		dto.SubmitProofRequestDTO	true	"Proof artifact URL"
//	@Success		200		{object}	dto.OrderResponseDTO		"Order moved to verification"
//	@Failure		409		{object}	utils.Response				"Transition not allowed"
//	@Failure		422		{object}	utils.Response				"Missing proof"
//	@Router			/api/orders/{orderID}/proof [post]
func (h *OrderHandler) SubmitProof(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var req dto.SubmitProofRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.SubmitProof(r.Context(), orderID, req.ProofURL)
	h.respondTransition(w, order, err)
}

// ApprovePayment godoc
//
//	@Summary		Approve payment proof
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		string					true	"Order id"
//	@Success		200		{object}	dto.OrderResponseDTO	"Order released to seller"
//	@Failure		409		{object}	utils.Response			"Transition not allowed"
//	@Router			/api/admin/orders/{orderID}/approve [post]
func (h *OrderHandler) ApprovePayment(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	order, err := h.orderService.ApprovePayment(r.Context(), orderID)
	h.respondTransition(w, order, err)
}

// RejectPayment godoc
//
//	@Summary		Reject payment proof
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		string						true	"Order id"
//	@Param			request	body		dto.RejectPaymentRequestDTO	true	"Rejection reason"
//	@Success		200		{object}	dto.OrderResponseDTO		"Order sent back to payment"
//	@Failure		409		{object}	utils.Response				"Transition not allowed"
//	@Router			/api/admin/orders/{orderID}/reject [post]
func (h *OrderHandler) RejectPayment(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var req dto.RejectPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.RejectPayment(r.Context(), orderID, req.Reason)
	h.respondTransition(w, order, err)
}

// Ship godoc
//
//	@Summary		Mark order shipped
//	@Description	Generates the internal tracking reference for physical goods.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		string					true	"Order id"
//	@Success		200		{object}	dto.OrderResponseDTO	"Order shipped"
//	@Failure		409		{object}	utils.Response			"Transition not allowed"
//	@Router			/api/admin/orders/{orderID}/ship [post]
func (h *OrderHandler) Ship(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	order, err := h.orderService.Ship(r.Context(), orderID)
	h.respondTransition(w, order, err)
}

// Complete godoc
//
//	@Summary		Confirm delivery
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		string					true	"Order id"
//	@Success		200		{object}	dto.OrderResponseDTO	"Order completed"
//	@Failure		409		{object}	utils.Response			"Transition not allowed"
//	@Router			/api/orders/{orderID}/complete [post]
func (h *OrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	order, err := h.orderService.Complete(r.Context(), orderID)
	h.respondTransition(w, order, err)
}

// Cancel godoc
//
//	@Summary		Cancel order
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		string					true	"Order id"
//	@Success		200		{object}	dto.OrderResponseDTO	"Order cancelled"
//	@Failure		409		{object}	utils.Response			"Transition not allowed"
//	@Router			/api/orders/{orderID}/cancel [post]
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	order, err := h.orderService.Cancel(r.Context(), orderID)
	h.respondTransition(w, order, err)
}
