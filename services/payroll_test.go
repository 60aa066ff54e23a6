package services

import (
	"testing"
	"time"

	"resto/errors"
	"resto/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func attendedRecord(date time.Time, late, early int) models.AttendanceRecord {
	checkIn := date.Add(9 * time.Hour)
	checkOut := date.Add(17 * time.Hour)
	return models.AttendanceRecord{
		Date:                  date,
		CheckIn:               &checkIn,
		CheckOut:              &checkOut,
		LateMinutes:           late,
		EarlyDepartureMinutes: early,
	}
}

func TestComputeAdjustmentsEmptyRecords(t *testing.T) {
	adj, err := ComputeAdjustments(nil, 300000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adj.Deductions != 0 || adj.Additions != 0 {
		t.Errorf("expected zero adjustments, got %+v", adj)
	}
}

func TestComputeAdjustmentsUnjustifiedAbsence(t *testing.T) {
	records := []models.AttendanceRecord{
		{Date: day(2024, time.March, 4), IsAbsent: true},
	}

	adj, err := ComputeAdjustments(records, 300000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One daily rate: 300000 / 30
	if adj.Deductions != 10000 {
		t.Errorf("expected deduction 10000, got %v", adj.Deductions)
	}
	if adj.Additions != 0 {
		t.Errorf("expected no additions, got %v", adj.Additions)
	}
}

func TestComputeAdjustmentsJustifiedAbsenceIsFree(t *testing.T) {
	records := []models.AttendanceRecord{
		{Date: day(2024, time.March, 4), IsAbsent: true, IsJustified: true},
	}

	adj, err := ComputeAdjustments(records, 300000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adj.Deductions != 0 {
		t.Errorf("justified absence must not deduct, got %v", adj.Deductions)
	}
}

func TestComputeAdjustmentsLateAndEarlyMinutes(t *testing.T) {
	records := []models.AttendanceRecord{
		attendedRecord(day(2024, time.March, 5), 30, 18),
	}

	adj, err := ComputeAdjustments(records, 144000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// minute rate = 144000 / 30 / 480 = 10, 48 minutes in total
	if adj.Deductions != 480 {
		t.Errorf("expected deduction 480, got %v", adj.Deductions)
	}
}

func TestComputeAdjustmentsHolidayPremium(t *testing.T) {
	record := attendedRecord(day(2024, time.May, 1), 0, 0)
	record.IsHoliday = true

	adj, err := ComputeAdjustments([]models.AttendanceRecord{record}, 300000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adj.Additions != 10000 {
		t.Errorf("expected holiday addition 10000, got %v", adj.Additions)
	}
}

func TestComputeAdjustmentsAbsentHolidayEarnsNothing(t *testing.T) {
	records := []models.AttendanceRecord{
		{Date: day(2024, time.May, 1), IsAbsent: true, IsJustified: true, IsHoliday: true},
	}

	adj, err := ComputeAdjustments(records, 300000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adj.Additions != 0 {
		t.Errorf("absent holiday must not add premium, got %v", adj.Additions)
	}
}

func TestComputeAdjustmentsNonNegative(t *testing.T) {
	records := []models.AttendanceRecord{
		attendedRecord(day(2024, time.March, 5), 125, 0),
		{Date: day(2024, time.March, 6), IsAbsent: true},
		attendedRecord(day(2024, time.March, 7), 0, 45),
	}

	adj, err := ComputeAdjustments(records, 250000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adj.Deductions < 0 || adj.Additions < 0 {
		t.Errorf("adjustments must be non-negative, got %+v", adj)
	}
}

func TestComputeAdjustmentsRejectsNegativeBase(t *testing.T) {
	_, err := ComputeAdjustments(nil, -1)
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestComputeAdjustmentsRejectsDateOutOfRange(t *testing.T) {
	records := []models.AttendanceRecord{
		{Date: day(1999, time.December, 31)},
	}
	if _, err := ComputeAdjustments(records, 1000); !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestComputeAdjustmentsIsReferentiallyTransparent(t *testing.T) {
	records := []models.AttendanceRecord{
		attendedRecord(day(2024, time.March, 5), 30, 18),
		{Date: day(2024, time.March, 6), IsAbsent: true},
	}

	first, err := ComputeAdjustments(records, 250000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeAdjustments(records, 250000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("same input produced different adjustments: %+v vs %+v", first, second)
	}
}

func TestComputeFinalSalary(t *testing.T) {
	components := models.SalaryComponents{
		BankSalary:      100000,
		HandSalary:      50000,
		AttendanceBonus: 5000,
		BonusEligible:   true,
	}
	adj := Adjustments{Deductions: 10000, Additions: 2000}

	final := ComputeFinalSalary(components, adj)

	if final.FinalHandSalary != 42000 {
		t.Errorf("expected final hand 42000, got %v", final.FinalHandSalary)
	}
	if final.TotalSalary != 147000 {
		t.Errorf("expected total 147000, got %v", final.TotalSalary)
	}
	if final.Clamped {
		t.Error("salary should not be clamped")
	}
}

func TestComputeFinalSalaryClampsAtZero(t *testing.T) {
	components := models.SalaryComponents{
		BankSalary: 100000,
		HandSalary: 5000,
	}
	adj := Adjustments{Deductions: 20000}

	final := ComputeFinalSalary(components, adj)

	if final.FinalHandSalary != 0 {
		t.Errorf("hand salary must clamp at zero, got %v", final.FinalHandSalary)
	}
	if !final.Clamped {
		t.Error("expected clamped flag")
	}
	if final.TotalSalary != 100000 {
		t.Errorf("expected total 100000, got %v", final.TotalSalary)
	}
}

func TestComputeFinalSalaryBonusRequiresEligibility(t *testing.T) {
	components := models.SalaryComponents{
		BankSalary:      100000,
		HandSalary:      50000,
		AttendanceBonus: 5000,
		BonusEligible:   false,
	}

	final := ComputeFinalSalary(components, Adjustments{})
	if final.TotalSalary != 150000 {
		t.Errorf("bonus must be excluded when not eligible, got %v", final.TotalSalary)
	}
}

func TestReconcileTotalWithinTolerance(t *testing.T) {
	display, drifted := ReconcileTotal(1000, 1000.50, DefaultTolerance)
	if drifted {
		t.Error("0.50 drift is within tolerance")
	}
	if display != 1000 {
		t.Errorf("stored value must stay authoritative, got %v", display)
	}
}

func TestReconcileTotalBeyondTolerance(t *testing.T) {
	display, drifted := ReconcileTotal(1000, 1002, DefaultTolerance)
	if !drifted {
		t.Error("2.00 drift must exceed tolerance")
	}
	if display != 1002 {
		t.Errorf("recomputed value must win on drift, got %v", display)
	}
}

func TestRecalculatePayrollUsesStoredSnapshot(t *testing.T) {
	// Period generated while the employee earned 300000 bank salary.
	stored := models.Payroll{
		BankSalary: 300000,
		HandSalary: 50000,
	}
	records := []models.AttendanceRecord{
		{Date: day(2024, time.March, 4), IsAbsent: true},
	}

	recalculated, err := RecalculatePayroll(stored, records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Daily rate from the snapshot (300000/30), not from whatever the
	// employee record says at recalculation time.
	if recalculated.Deductions != 10000 {
		t.Errorf("expected deduction 10000 at the snapshot rate, got %v", recalculated.Deductions)
	}
	if recalculated.FinalHandSalary != 40000 {
		t.Errorf("expected final hand 40000, got %v", recalculated.FinalHandSalary)
	}
	if recalculated.TotalSalary != 340000 {
		t.Errorf("expected total 340000, got %v", recalculated.TotalSalary)
	}

	// A recalculated row must reconcile against itself with no drift.
	if _, drifted := ReconcileTotal(recalculated.TotalSalary, RecomputeTotal(recalculated), DefaultTolerance); drifted {
		t.Error("recalculated row must be internally consistent")
	}
}

func TestRecomputeTotalMatchesCalculator(t *testing.T) {
	payroll := models.Payroll{
		BankSalary:      100000,
		HandSalary:      50000,
		AttendanceBonus: 5000,
		BonusEligible:   true,
		Deductions:      10000,
		Additions:       2000,
	}

	if got := RecomputeTotal(payroll); got != 147000 {
		t.Errorf("expected 147000, got %v", got)
	}
}

func TestRound2HalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{10.125, 10.13},
		{1.004, 1.0},
		{3.14159, 3.14},
		{250, 250},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(2024, 12)
	if !start.Equal(day(2024, time.December, 1)) {
		t.Errorf("unexpected start %v", start)
	}
	if !end.Equal(day(2025, time.January, 1)) {
		t.Errorf("unexpected end %v", end)
	}
}
