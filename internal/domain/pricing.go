package domain

import (
	"math"
	"time"
)

// EstimateCost computes the cheapest way to bill the stay [startAt, endAt)
// against the rate card.
//
// Rate cards are not guaranteed to nest cleanly: 31 daily charges can
// exceed a monthly charge, and a monthly rate need not equal four weekly
// ones, so a greedy largest-unit-first decomposition can overcharge.
// Instead every combination of whole months, weeks and days is
// enumerated (months-major), the residual is rounded up to whole hours
// and billed at the hourly rate, and the cheapest total wins. On a tie
// the first enumerated combination is kept.
//
// Units with a zero rate are never billed. Returns nil when rates are
// absent or the window is empty or inverted.
func EstimateCost(rates *RateCard, startAt, endAt time.Time) *Estimate {
	if rates == nil || !endAt.After(startAt) {
		return nil
	}

	totalHours := endAt.Sub(startAt).Hours()

	hasMonthly := rates.MonthlyRate > 0
	hasWeekly := rates.WeeklyRate > 0
	hasDaily := rates.DailyRate > 0

	maxMonths := 0
	if hasMonthly {
		maxMonths = int(math.Ceil(totalHours / HoursInMonth))
	}
	maxWeeks := 0
	if hasWeekly {
		maxWeeks = int(math.Ceil(totalHours / HoursInWeek))
	}
	maxDays := 0
	if hasDaily {
		maxDays = int(math.Ceil(totalHours / HoursInDay))
	}

	// The all-zeros iteration below always enumerates the pure-hourly
	// combination, so a best is always found.
	var (
		bestAmount = math.Inf(1)
		bestMonths int
		bestWeeks  int
		bestDays   int
		bestHours  int
	)

	for months := 0; months <= maxMonths; months++ {
		afterMonths := math.Max(totalHours-float64(months)*HoursInMonth, 0)

		for weeks := 0; weeks <= maxWeeks; weeks++ {
			afterWeeks := math.Max(afterMonths-float64(weeks)*HoursInWeek, 0)

			for days := 0; days <= maxDays; days++ {
				afterDays := math.Max(afterWeeks-float64(days)*HoursInDay, 0)

				// The customer is never undercharged for a partial hour
				hours := int(math.Ceil(afterDays))

				amount := float64(months)*rates.MonthlyRate +
					float64(weeks)*rates.WeeklyRate +
					float64(days)*rates.DailyRate +
					float64(hours)*rates.HourlyRate

				// Strict comparison keeps the first enumerated combination on ties
				if amount < bestAmount {
					bestAmount = amount
					bestMonths, bestWeeks, bestDays, bestHours = months, weeks, days, hours
				}
			}
		}
	}

	breakdown := make([]BreakdownItem, 0, 4)
	if bestMonths > 0 {
		breakdown = append(breakdown, BreakdownItem{
			Unit:     UnitMonth,
			Quantity: bestMonths,
			Rate:     rates.MonthlyRate,
			Subtotal: float64(bestMonths) * rates.MonthlyRate,
		})
	}
	if bestWeeks > 0 {
		breakdown = append(breakdown, BreakdownItem{
			Unit:     UnitWeek,
			Quantity: bestWeeks,
			Rate:     rates.WeeklyRate,
			Subtotal: float64(bestWeeks) * rates.WeeklyRate,
		})
	}
	if bestDays > 0 {
		breakdown = append(breakdown, BreakdownItem{
			Unit:     UnitDay,
			Quantity: bestDays,
			Rate:     rates.DailyRate,
			Subtotal: float64(bestDays) * rates.DailyRate,
		})
	}
	if bestHours > 0 {
		breakdown = append(breakdown, BreakdownItem{
			Unit:     UnitHour,
			Quantity: bestHours,
			Rate:     rates.HourlyRate,
			Subtotal: float64(bestHours) * rates.HourlyRate,
		})
	}

	return &Estimate{Amount: bestAmount, Breakdown: breakdown}
}
