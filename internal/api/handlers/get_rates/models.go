package get_rates

import "github.com/peterjohnpitcher/anchor-parking/internal/domain"

// RatesResponse the rate card shown on the wizard's first step
type RatesResponse struct {
	HourlyRate  float64 `json:"hourly_rate"`
	DailyRate   float64 `json:"daily_rate"`
	WeeklyRate  float64 `json:"weekly_rate"`
	MonthlyRate float64 `json:"monthly_rate"`
}

func fromDomain(card *domain.RateCard) *RatesResponse {
	return &RatesResponse{
		HourlyRate:  card.HourlyRate,
		DailyRate:   card.DailyRate,
		WeeklyRate:  card.WeeklyRate,
		MonthlyRate: card.MonthlyRate,
	}
}
