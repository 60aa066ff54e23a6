package services

import (
	"testing"
	"time"

	"resto/errors"
	"resto/models"
)

var testSalary = models.SalaryComponents{
	BankSalary: 100000,
	HandSalary: 50000,
}

func TestComputeLiquidationRejectsInvertedRange(t *testing.T) {
	hire := day(2024, time.March, 10)
	term := day(2024, time.March, 1)

	_, err := ComputeLiquidation(hire, term, testSalary, day(2024, time.June, 1))
	if !errors.HasCode(err, errors.ErrCodeInvalidDateRange) {
		t.Errorf("expected INVALID_DATE_RANGE, got %v", err)
	}
}

func TestComputeLiquidationSameDayHireAndTermination(t *testing.T) {
	date := day(2024, time.March, 10)

	liq, err := ComputeLiquidation(date, date, testSalary, day(2024, time.June, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if liq.WorkedDays != 0 || liq.WorkedMonths != 0 {
		t.Errorf("expected zero tenure, got days=%d months=%d", liq.WorkedDays, liq.WorkedMonths)
	}
	if liq.TotalAmount != 0 {
		t.Errorf("expected zero settlement outside termination month, got %v", liq.TotalAmount)
	}
}

func TestComputeLiquidationShortTenureGetsBaseOnly(t *testing.T) {
	hire := day(2024, time.January, 1)
	term := day(2024, time.April, 10) // 100 days, 3 months

	liq, err := ComputeLiquidation(hire, term, testSalary, day(2024, time.June, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if liq.WorkedDays != 100 {
		t.Errorf("expected 100 worked days, got %d", liq.WorkedDays)
	}
	if liq.WorkedMonths != 3 {
		t.Errorf("expected 3 worked months, got %d", liq.WorkedMonths)
	}
	if liq.ProportionalBonus != 0 || liq.ProportionalVacation != 0 || liq.Compensation != 0 {
		t.Errorf("short tenure must earn base only, got %+v", liq)
	}
}

func TestComputeLiquidationMidTenureAddsBonusAndVacation(t *testing.T) {
	hire := day(2024, time.January, 1)
	term := day(2024, time.July, 10) // 191 days, 6 months

	liq, err := ComputeLiquidation(hire, term, testSalary, day(2024, time.September, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if liq.WorkedMonths != 6 {
		t.Fatalf("expected 6 worked months, got %d", liq.WorkedMonths)
	}

	// monthly 150000: bonus = 150000/12*6, vacation = 5000 * (191/20)
	if liq.ProportionalBonus != 75000 {
		t.Errorf("expected bonus 75000, got %v", liq.ProportionalBonus)
	}
	if liq.ProportionalVacation != 45000 {
		t.Errorf("expected vacation 45000, got %v", liq.ProportionalVacation)
	}
	if liq.Compensation != 0 {
		t.Errorf("no compensation under 12 months, got %v", liq.Compensation)
	}
}

func TestComputeLiquidationTwelveMonthBoundary(t *testing.T) {
	hire := day(2023, time.January, 1)
	term := day(2023, time.December, 27) // 360 days, exactly 12 months

	liq, err := ComputeLiquidation(hire, term, testSalary, day(2024, time.March, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if liq.WorkedMonths != 12 {
		t.Fatalf("expected 12 worked months, got %d", liq.WorkedMonths)
	}
	if liq.Compensation != 150000 {
		t.Errorf("expected one monthly salary of compensation, got %v", liq.Compensation)
	}
	if liq.ProportionalBonus != 0 {
		t.Errorf("bonus covers months beyond full years only, got %v", liq.ProportionalBonus)
	}
	if liq.ProportionalVacation != 90000 {
		t.Errorf("expected vacation 90000, got %v", liq.ProportionalVacation)
	}
}

func TestComputeLiquidationLongTenure(t *testing.T) {
	hire := day(2023, time.January, 1)
	term := day(2024, time.January, 15) // 379 days, 12 months

	liq, err := ComputeLiquidation(hire, term, testSalary, day(2024, time.June, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if liq.WorkedDays != 379 {
		t.Errorf("expected 379 worked days, got %d", liq.WorkedDays)
	}
	if liq.WorkedMonths != 12 {
		t.Errorf("expected 12 worked months, got %d", liq.WorkedMonths)
	}
	if liq.BaseSalary != 0 {
		t.Errorf("base portion only applies in the termination month, got %v", liq.BaseSalary)
	}
	if liq.ProportionalBonus != 0 {
		t.Errorf("expected bonus 0, got %v", liq.ProportionalBonus)
	}
	if liq.ProportionalVacation != 90000 {
		t.Errorf("expected vacation 90000, got %v", liq.ProportionalVacation)
	}
	if liq.Compensation != 150000 {
		t.Errorf("expected compensation 150000, got %v", liq.Compensation)
	}
	if liq.TotalAmount != 240000 {
		t.Errorf("expected total 240000, got %v", liq.TotalAmount)
	}
}

func TestComputeLiquidationPartialMonthInCurrentMonth(t *testing.T) {
	hire := day(2023, time.January, 1)
	term := day(2024, time.January, 15)

	liq, err := ComputeLiquidation(hire, term, testSalary, day(2024, time.January, 20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// daily 5000 over 15 days of the termination month
	if liq.BaseSalary != 75000 {
		t.Errorf("expected base 75000, got %v", liq.BaseSalary)
	}
	if liq.TotalAmount != 315000 {
		t.Errorf("expected total 315000, got %v", liq.TotalAmount)
	}
}

func TestLiquidationForEmployeeRequiresTerminationDate(t *testing.T) {
	employee := models.Employee{
		ID:         7,
		HireDate:   day(2023, time.January, 1),
		BankSalary: 100000,
	}

	_, err := LiquidationForEmployee(employee, day(2024, time.June, 1))
	if !errors.HasCode(err, errors.ErrCodeMissingTerminationDate) {
		t.Errorf("expected MISSING_TERMINATION_DATE, got %v", err)
	}
}

func TestGenerateLiquidationsBatch(t *testing.T) {
	term := day(2024, time.January, 15)
	employees := []models.Employee{
		{ID: 1, HireDate: day(2023, time.January, 1), TerminationDate: &term, BankSalary: 100000, HandSalary: 50000},
		{ID: 2, HireDate: day(2023, time.June, 1), TerminationDate: &term, BankSalary: 80000},
		{ID: 3, HireDate: day(2023, time.June, 1), BankSalary: 80000}, // never terminated
	}

	exists := func(employeeID uint) (bool, error) {
		return employeeID == 2, nil // already settled
	}

	generated, failed := GenerateLiquidations(employees, exists, day(2024, time.June, 1))

	if len(generated) != 1 {
		t.Fatalf("expected 1 generated settlement, got %d", len(generated))
	}
	if generated[0].EmployeeID != 1 {
		t.Errorf("expected settlement for employee 1, got %d", generated[0].EmployeeID)
	}

	if len(failed) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failed))
	}
	if failed[0].EmployeeID != 3 {
		t.Errorf("expected failure for employee 3, got %d", failed[0].EmployeeID)
	}
}

func TestGenerateLiquidationsNeverAborts(t *testing.T) {
	term := day(2024, time.January, 15)
	badTerm := day(2022, time.January, 1)
	employees := []models.Employee{
		{ID: 1, HireDate: day(2023, time.January, 1), TerminationDate: &badTerm, BankSalary: 100000},
		{ID: 2, HireDate: day(2023, time.January, 1), TerminationDate: &term, BankSalary: 100000},
	}

	exists := func(uint) (bool, error) { return false, nil }

	generated, failed := GenerateLiquidations(employees, exists, day(2024, time.June, 1))

	if len(generated) != 1 || generated[0].EmployeeID != 2 {
		t.Errorf("valid employee must still be settled, got %+v", generated)
	}
	if len(failed) != 1 || failed[0].EmployeeID != 1 {
		t.Errorf("invalid employee must be reported, got %+v", failed)
	}
}
