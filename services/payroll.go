package services

import (
	"math"
	"time"

	"resto/errors"
	"resto/models"
)

// Rate basis for attendance adjustments: a fixed 30-day month and an
// 8-hour expected workday. The daily rate is baseSalary/30, the minute
// rate is the daily rate spread over 480 minutes.
const (
	DaysPerMonth   = 30
	WorkdayMinutes = 480
)

// DefaultTolerance is the allowed drift between a stored and a recomputed
// payroll total before the recomputed value becomes authoritative.
const DefaultTolerance = 1.0

// Adjustments are the attendance-derived monetary deltas for one period.
// Both values are non-negative.
type Adjustments struct {
	Deductions float64 `json:"deductions"`
	Additions  float64 `json:"additions"`
}

// FinalSalary is the output of the payroll calculator. Clamped is set when
// deductions would have pushed the hand salary below zero.
type FinalSalary struct {
	FinalHandSalary float64 `json:"finalHandSalary"`
	TotalSalary     float64 `json:"totalSalary"`
	Clamped         bool    `json:"clamped"`
}

// Round2 rounds to currency precision, 2 decimals half-up.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// ComputeAdjustments derives deductions and additions from one month of
// attendance records and the employee's base salary:
//   - an unexcused absence costs one daily rate
//   - late and early-departure minutes cost the minute rate each
//   - an attended holiday earns one daily rate as premium pay
func ComputeAdjustments(records []models.AttendanceRecord, baseSalary float64) (Adjustments, error) {
	if baseSalary < 0 {
		return Adjustments{}, errors.NewAppError(errors.ErrCodeInvalidInput, "base salary cannot be negative", nil)
	}
	for _, r := range records {
		if r.Date.Year() < 2000 || r.Date.Year() > 2100 {
			return Adjustments{}, errors.NewAppError(errors.ErrCodeInvalidInput, "attendance record date out of range", nil)
		}
	}

	dailyRate := baseSalary / DaysPerMonth
	minuteRate := dailyRate / WorkdayMinutes

	var deductions, additions float64
	for _, r := range records {
		if r.IsAbsent {
			if !r.IsJustified {
				deductions += dailyRate
			}
			continue
		}

		deductions += float64(r.LateMinutes+r.EarlyDepartureMinutes) * minuteRate

		if r.IsHoliday && r.Attended() {
			additions += dailyRate
		}
	}

	return Adjustments{
		Deductions: Round2(deductions),
		Additions:  Round2(additions),
	}, nil
}

// ComputeFinalSalary combines the period's salary snapshot with the
// attendance adjustments. The hand salary is clamped at zero, a payroll
// can never go negative.
func ComputeFinalSalary(components models.SalaryComponents, adj Adjustments) FinalSalary {
	finalHand := components.HandSalary - adj.Deductions + adj.Additions

	clamped := false
	if finalHand < 0 {
		finalHand = 0
		clamped = true
	}

	total := components.BankSalary + finalHand
	if components.BonusEligible {
		total += components.AttendanceBonus
	}

	return FinalSalary{
		FinalHandSalary: Round2(finalHand),
		TotalSalary:     Round2(total),
		Clamped:         clamped,
	}
}

// RecalculatePayroll rederives the attendance-driven fields of an existing
// row from that row's own salary snapshot. The snapshot never moves after
// generation, so a later salary change cannot leave deductions computed at
// one rate next to amounts from another.
func RecalculatePayroll(p models.Payroll, records []models.AttendanceRecord) (models.Payroll, error) {
	adj, err := ComputeAdjustments(records, p.BankSalary)
	if err != nil {
		return models.Payroll{}, err
	}

	final := ComputeFinalSalary(p.Components(), adj)
	p.Deductions = adj.Deductions
	p.Additions = adj.Additions
	p.FinalHandSalary = final.FinalHandSalary
	p.TotalSalary = final.TotalSalary
	return p, nil
}

// RecomputeTotal rederives the total salary of a stored payroll row from
// its own snapshot and adjustments.
func RecomputeTotal(p models.Payroll) float64 {
	return ComputeFinalSalary(p.Components(), Adjustments{
		Deductions: p.Deductions,
		Additions:  p.Additions,
	}).TotalSalary
}

// ReconcileTotal is the read-side consistency check: when the stored total
// drifts from the recomputed one by more than the tolerance, the recomputed
// value is authoritative. Returns the display value and whether the
// tolerance was exceeded. Repairing the persisted row is the caller's
// concern, never done inline on a read.
func ReconcileTotal(storedTotal, recomputedTotal, tolerance float64) (float64, bool) {
	if math.Abs(storedTotal-recomputedTotal) > tolerance {
		return recomputedTotal, true
	}
	return storedTotal, false
}

// MonthWindow returns the first day of the month and the first day of the
// next month, the half-open range payroll queries use.
func MonthWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
