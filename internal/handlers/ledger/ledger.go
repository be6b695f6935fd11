package ledger

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rekberhub/settlement/internal/dto"
	ledgerservice "github.com/rekberhub/settlement/internal/service/ledgerservice"
	"github.com/rekberhub/settlement/pkg/utils"
)

type Service interface {
	Balances(ctx context.Context, sellerID string) (*ledgerservice.LedgerView, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get seller balances
//	@Description	Held funds are a live projection of in-flight orders; available funds are the ledger balance the seller may withdraw.
//	@Tags			Sellers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			sellerID	path		string					true	"Seller id"
//	@Success		200			{object}	dto.BalanceResponseDTO	"Held and available balances"
//	@Failure		404			{object}	utils.Response			"Seller not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/sellers/{sellerID}/balance [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "sellerID")

	view, err := h.ledgerService.Balances(r.Context(), sellerID)
	if err != nil {
		if errors.Is(err, ledgerservice.ErrSellerNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		SellerID:  view.SellerID,
		StoreName: view.StoreName,
		Held:      view.Held,
		Available: view.Available,
	})
}
