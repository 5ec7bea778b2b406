package domain

import "time"

// RateCard is the price list for the car park by billing unit.
// A zero rate means that unit is not offered.
type RateCard struct {
	HourlyRate  float64
	DailyRate   float64
	WeeklyRate  float64
	MonthlyRate float64

	EffectiveFrom time.Time
}

// Unit is a billing unit of the rate card
type Unit string

const (
	UnitHour  Unit = "hour"
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
)

// BreakdownItem is one line of a stay's decomposition into billing units
type BreakdownItem struct {
	Unit     Unit
	Quantity int
	Rate     float64
	Subtotal float64
}

// Estimate is the quoted cost of a stay with its unit breakdown.
// Amount always equals the exact sum of the breakdown subtotals.
type Estimate struct {
	Amount    float64
	Breakdown []BreakdownItem
}
