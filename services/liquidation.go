package services

import (
	"time"

	"resto/errors"
	"resto/models"
)

// Worked-time convention for settlements: a month is always 30 days and one
// vacation day is earned per 20 worked days. These are policy constants,
// not calendar-accurate month counts.
const (
	liquidationDaysPerMonth = 30
	vacationDaysDivisor     = 20
)

// ComputeLiquidation builds the settlement for an employment relationship
// ending at terminationDate. Dates are normalized to midnight before
// differencing. The partial-month salary portion is only included when the
// termination date falls in the calendar month of `now`, which callers pass
// as time.Now() in production and pin in tests.
//
// Tenure bands:
//
//	< 6 months   settlement is the partial-month salary only
//	6-12 months  adds proportional bonus and proportional vacation
//	>= 12 months adds one monthly salary of compensation per full year
func ComputeLiquidation(hireDate, terminationDate time.Time, salary models.SalaryComponents, now time.Time) (models.Liquidation, error) {
	hire := normalizeDate(hireDate)
	term := normalizeDate(terminationDate)

	if term.Before(hire) {
		return models.Liquidation{}, errors.NewAppError(errors.ErrCodeInvalidDateRange, "termination date precedes hire date", errors.ErrInvalidDateRange)
	}

	workedDays := int(term.Sub(hire).Hours() / 24)
	workedMonths := workedDays / liquidationDaysPerMonth

	monthlySalary := salary.BankSalary + salary.HandSalary
	dailySalary := monthlySalary / liquidationDaysPerMonth

	var baseSalary float64
	if term.Year() == now.Year() && term.Month() == now.Month() {
		baseSalary = dailySalary * float64(term.Day())
	}

	var bonus, vacation, compensation float64
	switch {
	case workedMonths >= 12:
		bonus = monthlySalary / 12 * float64(workedMonths%12)
		vacation = dailySalary * float64(workedDays/vacationDaysDivisor)
		compensation = monthlySalary * float64(workedMonths/12)
	case workedMonths >= 6:
		bonus = monthlySalary / 12 * float64(workedMonths)
		vacation = dailySalary * float64(workedDays/vacationDaysDivisor)
	}

	baseSalary = Round2(baseSalary)
	bonus = Round2(bonus)
	vacation = Round2(vacation)
	compensation = Round2(compensation)

	return models.Liquidation{
		HireDate:             hire,
		TerminationDate:      term,
		WorkedDays:           workedDays,
		WorkedMonths:         workedMonths,
		BaseSalary:           baseSalary,
		ProportionalBonus:    bonus,
		ProportionalVacation: vacation,
		Compensation:         compensation,
		TotalAmount:          Round2(baseSalary + bonus + vacation + compensation),
	}, nil
}

// LiquidationForEmployee computes the settlement for one employee record.
func LiquidationForEmployee(employee models.Employee, now time.Time) (models.Liquidation, error) {
	if employee.TerminationDate == nil {
		return models.Liquidation{}, errors.NewAppError(errors.ErrCodeMissingTerminationDate, "employee has no termination date", errors.ErrMissingTerminationDate)
	}

	liquidation, err := ComputeLiquidation(employee.HireDate, *employee.TerminationDate, employee.SalaryComponents(), now)
	if err != nil {
		return models.Liquidation{}, err
	}

	liquidation.EmployeeID = employee.ID
	liquidation.RestaurantID = employee.RestaurantID
	return liquidation, nil
}

// LiquidationExistsFunc is injected by the caller so generation stays
// idempotent without the calculator touching storage.
type LiquidationExistsFunc func(employeeID uint) (bool, error)

// LiquidationError is one failed item of a batch generation run.
type LiquidationError struct {
	EmployeeID uint   `json:"employeeId"`
	Message    string `json:"message"`
}

// GenerateLiquidations runs settlement generation over a batch of
// terminated employees. Employees that already have a settlement are
// skipped, per-employee failures are collected and never abort the batch.
func GenerateLiquidations(employees []models.Employee, exists LiquidationExistsFunc, now time.Time) ([]models.Liquidation, []LiquidationError) {
	generated := make([]models.Liquidation, 0, len(employees))
	var failed []LiquidationError

	for _, employee := range employees {
		ok, err := exists(employee.ID)
		if err != nil {
			failed = append(failed, LiquidationError{EmployeeID: employee.ID, Message: err.Error()})
			continue
		}
		if ok {
			// Already settled, the idempotency guard treats this as success.
			continue
		}

		liquidation, err := LiquidationForEmployee(employee, now)
		if err != nil {
			failed = append(failed, LiquidationError{EmployeeID: employee.ID, Message: err.Error()})
			continue
		}

		generated = append(generated, liquidation)
	}

	return generated, failed
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
