package dto

import (
	"time"

	"resto/services"
	"resto/types"
)

type GenerateLiquidationRequest struct {
	EmployeeID uint `json:"employeeId" binding:"required"`
}

type LiquidationPaidRequest struct {
	LiquidationID uint `json:"liquidationId" binding:"required"`
	PaymentMethod int  `json:"paymentMethod"`
}

type LiquidationResponse struct {
	ID                   uint              `json:"id"`
	Employee             types.EmployeeRef `json:"employee"`
	HireDate             time.Time         `json:"hireDate"`
	TerminationDate      time.Time         `json:"terminationDate"`
	WorkedDays           int               `json:"workedDays"`
	WorkedMonths         int               `json:"workedMonths"`
	BaseSalary           float64           `json:"baseSalary"`
	ProportionalVacation float64           `json:"proportionalVacation"`
	ProportionalBonus    float64           `json:"proportionalBonus"`
	Compensation         float64           `json:"compensation"`
	TotalAmount          float64           `json:"totalAmount"`
	Paid                 bool              `json:"paid"`
	PaidAt               *time.Time        `json:"paidAt,omitempty"`
	PaymentMethod        int               `json:"paymentMethod"`
}

// BatchLiquidationResponse reports a batch generation run; per-employee
// failures never abort the batch.
type BatchLiquidationResponse struct {
	Generated int                         `json:"generated"`
	Failed    []services.LiquidationError `json:"failed,omitempty"`
}
