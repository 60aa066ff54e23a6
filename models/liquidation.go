package models

import "time"

// Liquidation is the final settlement for a terminated employee.
// At most one row exists per employee.
type Liquidation struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	EmployeeID   uint     `json:"employeeId" gorm:"uniqueIndex;not null"`
	Employee     Employee `json:"employee" gorm:"foreignKey:EmployeeID"`
	RestaurantID uint     `json:"restaurantId" gorm:"index;not null"`

	HireDate        time.Time `json:"hireDate"`
	TerminationDate time.Time `json:"terminationDate"`
	WorkedDays      int       `json:"workedDays"`
	WorkedMonths    int       `json:"workedMonths"`

	BaseSalary           float64 `json:"baseSalary"`
	ProportionalVacation float64 `json:"proportionalVacation"`
	ProportionalBonus    float64 `json:"proportionalBonus"`
	Compensation         float64 `json:"compensation"`
	TotalAmount          float64 `json:"totalAmount"`

	Paid          bool       `json:"paid" gorm:"default:false"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	PaymentMethod int        `json:"paymentMethod"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
