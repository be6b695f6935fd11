package reports

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/rekberhub/settlement/internal/dto"
	scoringservice "github.com/rekberhub/settlement/internal/service/scoringservice"
	"github.com/rekberhub/settlement/pkg/utils"
)

type ScoringService interface {
	Leaderboard(ctx context.Context) ([]scoringservice.SellerScore, error)
	RewardCandidates(ctx context.Context) ([]scoringservice.SellerScore, error)
}

type ReportService interface {
	WriteCSV(ctx context.Context, w io.Writer) error
}

type ReportsHandler struct {
	scoringService ScoringService
	reportService  ReportService
}

func New(scoringService ScoringService, reportService ReportService) *ReportsHandler {
	return &ReportsHandler{
		scoringService: scoringService,
		reportService:  reportService,
	}
}

func toScoreDTOs(scores []scoringservice.SellerScore) []dto.SellerScoreResponseDTO {
	response := make([]dto.SellerScoreResponseDTO, len(scores))
	for i, score := range scores {
		response[i] = dto.SellerScoreResponseDTO{
			SellerID:  score.SellerID,
			StoreName: score.StoreName,
			Revenue:   score.Revenue,
			Qty:       score.Qty,
			Sales:     score.Sales,
			Score:     score.Score,
			Eligible:  score.Eligible,
		}
	}
	return response
}

// Leaderboard godoc
//
//	@Summary		Competition leaderboard
//	@Description	Top eligible competitor sellers by score for the active reward window.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SellerScoreResponseDTO	"Leaderboard"
//	@Failure		409	{object}	utils.Response				"No active reward window"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/leaderboard [get]
func (h *ReportsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	scores, err := h.scoringService.Leaderboard(r.Context())
	if err != nil {
		if errors.Is(err, scoringservice.ErrWindowInactive) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toScoreDTOs(scores))
}

// RewardCandidates godoc
//
//	@Summary		Reward candidates
//	@Description	Every competitor seller meeting the reward bar for the active window.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SellerScoreResponseDTO	"Candidates"
//	@Failure		409	{object}	utils.Response				"No active reward window"
//	@Router			/api/admin/reward-candidates [get]
func (h *ReportsHandler) RewardCandidates(w http.ResponseWriter, r *http.Request) {
	scores, err := h.scoringService.RewardCandidates(r.Context())
	if err != nil {
		if errors.Is(err, scoringservice.ErrWindowInactive) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toScoreDTOs(scores))
}

// SettlementReport godoc
//
//	@Summary		Settlement report (CSV)
//	@Description	Settled orders with per-seller gross, voucher, net, fee and payout columns.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		text/csv
//	@Success		200	{string}	string			"CSV report"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/reports/settlements.csv [get]
func (h *ReportsHandler) SettlementReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="settlements.csv"`)
	if err := h.reportService.WriteCSV(r.Context(), w); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to build report")
	}
}
