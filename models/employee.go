package models

import "time"

type Employee struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	RestaurantID uint       `json:"restaurantId" gorm:"index;not null"`
	Restaurant   Restaurant `json:"restaurant" gorm:"foreignKey:RestaurantID"`
	Name         string     `json:"name" gorm:"not null"`
	Document     string     `json:"document"`
	PhoneNumber  string     `json:"phoneNumber"`
	Position     string     `json:"position"`
	Avatar       string     `json:"avatar"`
	Status       int        `json:"status" gorm:"default:1"`

	HireDate        time.Time  `json:"hireDate" gorm:"not null"`
	TerminationDate *time.Time `json:"terminationDate,omitempty"`

	// Declared ("bank") salary vs informal cash complement ("hand")
	BankSalary      float64 `json:"bankSalary" gorm:"default:0"`
	HandSalary      float64 `json:"handSalary" gorm:"default:0"`
	AttendanceBonus float64 `json:"attendanceBonus" gorm:"default:0"`
	BonusEligible   bool    `json:"bonusEligible" gorm:"default:false"`

	// Expected workday window, "15:04" wall-clock
	ExpectedCheckIn  string `json:"expectedCheckIn" gorm:"default:'09:00'"`
	ExpectedCheckOut string `json:"expectedCheckOut" gorm:"default:'17:00'"`
}

// SalaryComponents snapshots the salary fields the payroll core reads.
func (e Employee) SalaryComponents() SalaryComponents {
	return SalaryComponents{
		BankSalary:      e.BankSalary,
		HandSalary:      e.HandSalary,
		AttendanceBonus: e.AttendanceBonus,
		BonusEligible:   e.BonusEligible,
	}
}
