package dto

type DashboardResponseDTO struct {
	PeriodStart string             `json:"period_start" example:"2025-02-21"`
	PeriodEnd   string             `json:"period_end" example:"2025-03-20"`
	Orders      []OrderResponseDTO `json:"orders"`
	TotalPoints float64            `json:"total_points" example:"112.5"`
	Progress    float64            `json:"progress" example:"50"`
	Objective   float64            `json:"objective" example:"225"`
}

type HistoryResponseDTO struct {
	PeriodStart string             `json:"period_start" example:"2025-02-21"`
	PeriodEnd   string             `json:"period_end" example:"2025-03-20"`
	Orders      []OrderResponseDTO `json:"orders"`
}

type RankingEntryDTO struct {
	Username string  `json:"username" example:"jlopez"`
	Points   float64 `json:"points" example:"87.3"`
}
