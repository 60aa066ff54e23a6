package dto

import (
	"time"

	"resto/models"
)

type EmployeeRequest struct {
	RestaurantID     uint    `json:"restaurantId" binding:"required"`
	Name             string  `json:"name" binding:"required"`
	Document         string  `json:"document"`
	PhoneNumber      string  `json:"phoneNumber"`
	Position         string  `json:"position"`
	HireDate         string  `json:"hireDate" binding:"required"` // "2006-01-02"
	BankSalary       float64 `json:"bankSalary" binding:"min=0"`
	HandSalary       float64 `json:"handSalary" binding:"min=0"`
	AttendanceBonus  float64 `json:"attendanceBonus" binding:"min=0"`
	BonusEligible    bool    `json:"bonusEligible"`
	ExpectedCheckIn  string  `json:"expectedCheckIn"`
	ExpectedCheckOut string  `json:"expectedCheckOut"`
}

type TerminateEmployeeRequest struct {
	EmployeeID      uint   `json:"employeeId" binding:"required"`
	TerminationDate string `json:"terminationDate" binding:"required"` // "2006-01-02"
}

type EmployeeResponse struct {
	ID               uint       `json:"id"`
	RestaurantID     uint       `json:"restaurantId"`
	Name             string     `json:"name"`
	Document         string     `json:"document"`
	PhoneNumber      string     `json:"phoneNumber"`
	Position         string     `json:"position"`
	Avatar           string     `json:"avatar"`
	Status           int        `json:"status"`
	HireDate         time.Time  `json:"hireDate"`
	TerminationDate  *time.Time `json:"terminationDate,omitempty"`
	BankSalary       float64    `json:"bankSalary"`
	HandSalary       float64    `json:"handSalary"`
	AttendanceBonus  float64    `json:"attendanceBonus"`
	BonusEligible    bool       `json:"bonusEligible"`
	ExpectedCheckIn  string     `json:"expectedCheckIn"`
	ExpectedCheckOut string     `json:"expectedCheckOut"`
}

// ScoredEmployee carries a fuzzy-search relevance score
type ScoredEmployee struct {
	Employee models.Employee `json:"employee"`
	Score    int             `json:"score"`
}
