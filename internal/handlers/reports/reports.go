package reports

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/icopoint/icopoint/internal/domain"
	"github.com/icopoint/icopoint/internal/dto"
	"github.com/icopoint/icopoint/internal/period"
	"github.com/icopoint/icopoint/internal/ranking"
	"github.com/icopoint/icopoint/internal/service/reportservice"
	"github.com/icopoint/icopoint/pkg/auth"
	"github.com/icopoint/icopoint/pkg/utils"
)

type Service interface {
	GetDashboard(ctx context.Context, userID int, isAdmin bool, month time.Month, year int) (*reportservice.Dashboard, error)
	GetHistory(ctx context.Context, userID int, month time.Month, year int) ([]domain.Order, period.Period, error)
	GetRanking(ctx context.Context, limit int, p *period.Period) ([]ranking.Entry, error)
}

// DefaultRankingLimit mirrors the classic top-10 leaderboard.
const DefaultRankingLimit = 10

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// periodParams reads the optional month/year navigation query. month = 0
// means "the current period".
func periodParams(r *http.Request) (time.Month, int) {
	m, errM := strconv.Atoi(r.URL.Query().Get("month"))
	y, errY := strconv.Atoi(r.URL.Query().Get("year"))
	if errM != nil || errY != nil || m < 1 || m > 12 {
		return 0, 0
	}
	return time.Month(m), y
}

func ordersToResponse(orders []domain.Order) []dto.OrderResponseDTO {
	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.OrderResponseDTO{
			ID:                 o.ID,
			UserID:             o.UserID,
			InstallationNumber: o.InstallationNumber,
			Date:               o.Date.Format(dto.DateLayout),
			Type:               string(o.Type),
			Subtypes:           o.Subtypes,
			Points:             o.Points,
		})
	}
	return response
}

// GetDashboard godoc
//
//	@Summary		Quota dashboard for a billing period
//	@Description	Orders of the current (or navigated) 21st-to-20th period with the user's total and progress toward the 225-point objective. Admins see every user's orders.
//	@Tags			Reports
//	@Produce		json
//	@Param			month	query	int	false	"Period start month (1-12)"
//	@Param			year	query	int	false	"Period start year"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard [get]
func (h *ReportHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	isAdmin, _ := r.Context().Value(auth.IsAdminKey).(bool)
	month, year := periodParams(r)

	dashboard, err := h.reportService.GetDashboard(r.Context(), userID, isAdmin, month, year)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		PeriodStart: dashboard.Period.Start.Format(dto.DateLayout),
		PeriodEnd:   dashboard.Period.End.Format(dto.DateLayout),
		Orders:      ordersToResponse(dashboard.Orders),
		TotalPoints: dashboard.TotalPoints,
		Progress:    dashboard.Progress,
		Objective:   ranking.Objective,
	})
}

// GetHistory godoc
//
//	@Summary		Order history for a billing period
//	@Description	The user's own orders inside the current (or navigated) period
//	@Tags			Reports
//	@Produce		json
//	@Param			month	query	int	false	"Period start month (1-12)"
//	@Param			year	query	int	false	"Period start year"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.HistoryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/history [get]
func (h *ReportHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	month, year := periodParams(r)

	orders, p, err := h.reportService.GetHistory(r.Context(), userID, month, year)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.HistoryResponseDTO{
		PeriodStart: p.Start.Format(dto.DateLayout),
		PeriodEnd:   p.End.Format(dto.DateLayout),
		Orders:      ordersToResponse(orders),
	})
}

// GetRanking godoc
//
//	@Summary		Point leaderboard
//	@Description	Non-admin users ranked by total points, descending; limit=0 disables truncation. With month/year the totals cover only that billing period.
//	@Tags			Reports
//	@Produce		json
//	@Param			limit	query	int	false	"Number of rows (default 10, 0 = all)"
//	@Param			month	query	int	false	"Period start month (1-12)"
//	@Param			year	query	int	false	"Period start year"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.RankingEntryDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ranking [get]
func (h *ReportHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	limit := DefaultRankingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	var p *period.Period
	if month, year := periodParams(r); month != 0 {
		resolved := period.For(month, year)
		p = &resolved
	}

	entries, err := h.reportService.GetRanking(r.Context(), limit, p)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RankingEntryDTO, 0, len(entries))
	for _, e := range entries {
		response = append(response, dto.RankingEntryDTO{Username: e.Username, Points: e.Points})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
