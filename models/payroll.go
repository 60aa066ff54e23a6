package models

import "time"

// SalaryComponents is the per-period salary snapshot the calculators consume.
type SalaryComponents struct {
	BankSalary      float64 `json:"bankSalary"`
	HandSalary      float64 `json:"handSalary"`
	AttendanceBonus float64 `json:"attendanceBonus"`
	BonusEligible   bool    `json:"bonusEligible"`
}

// Payroll is one employee's pay period (month + year). Created once per
// calendar month, mutated by recalculation and payment-status updates,
// never deleted.
type Payroll struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	EmployeeID   uint     `json:"employeeId" gorm:"not null;uniqueIndex:idx_payroll_period"`
	Employee     Employee `json:"employee" gorm:"foreignKey:EmployeeID"`
	RestaurantID uint     `json:"restaurantId" gorm:"index;not null"`
	Month        int      `json:"month" gorm:"not null;uniqueIndex:idx_payroll_period"`
	Year         int      `json:"year" gorm:"not null;uniqueIndex:idx_payroll_period"`

	// Salary snapshot at generation time
	BankSalary      float64 `json:"bankSalary"`
	HandSalary      float64 `json:"handSalary"`
	AttendanceBonus float64 `json:"attendanceBonus"`
	BonusEligible   bool    `json:"bonusEligible"`

	// Computed fields
	Deductions      float64 `json:"deductions"`
	Additions       float64 `json:"additions"`
	FinalHandSalary float64 `json:"finalHandSalary"`
	TotalSalary     float64 `json:"totalSalary"`

	// Payment status per disbursement channel
	HandPaid bool `json:"handPaid" gorm:"default:false"`
	BankPaid bool `json:"bankPaid" gorm:"default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Components rebuilds the salary snapshot stored on the row.
func (p Payroll) Components() SalaryComponents {
	return SalaryComponents{
		BankSalary:      p.BankSalary,
		HandSalary:      p.HandSalary,
		AttendanceBonus: p.AttendanceBonus,
		BonusEligible:   p.BonusEligible,
	}
}
