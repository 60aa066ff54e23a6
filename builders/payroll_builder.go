package builders

import (
	"resto/models"
	"resto/services"
)

// PayrollBuilder assembles a payroll row step by step
type PayrollBuilder struct {
	payroll *models.Payroll
}

// NewPayrollBuilder creates a new PayrollBuilder
func NewPayrollBuilder() *PayrollBuilder {
	return &PayrollBuilder{
		payroll: &models.Payroll{},
	}
}

// WithEmployee sets the employee and the salary snapshot taken from it
func (b *PayrollBuilder) WithEmployee(employee models.Employee) *PayrollBuilder {
	b.payroll.EmployeeID = employee.ID
	b.payroll.RestaurantID = employee.RestaurantID
	b.payroll.BankSalary = employee.BankSalary
	b.payroll.HandSalary = employee.HandSalary
	b.payroll.AttendanceBonus = employee.AttendanceBonus
	b.payroll.BonusEligible = employee.BonusEligible
	return b
}

// WithPeriod sets the pay period
func (b *PayrollBuilder) WithPeriod(month, year int) *PayrollBuilder {
	b.payroll.Month = month
	b.payroll.Year = year
	return b
}

// WithAdjustments sets the attendance-derived deltas
func (b *PayrollBuilder) WithAdjustments(adj services.Adjustments) *PayrollBuilder {
	b.payroll.Deductions = adj.Deductions
	b.payroll.Additions = adj.Additions
	return b
}

// WithFinalSalary sets the computed totals
func (b *PayrollBuilder) WithFinalSalary(final services.FinalSalary) *PayrollBuilder {
	b.payroll.FinalHandSalary = final.FinalHandSalary
	b.payroll.TotalSalary = final.TotalSalary
	return b
}

// Build returns the assembled payroll row
func (b *PayrollBuilder) Build() *models.Payroll {
	return b.payroll
}
