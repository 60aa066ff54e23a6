package controllers

import (
	"strconv"
	"time"

	"resto/config"
	"resto/dto"
	"resto/models"
	"resto/response"
	"resto/services"
	"resto/services/notification"
	"resto/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GenerateLiquidation creates the settlement for one terminated employee.
// Calling it again for the same employee returns the existing settlement.
func GenerateLiquidation(c *gin.Context) {
	var req dto.GenerateLiquidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, req.EmployeeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var existing models.Liquidation
	if err := config.DB.Where("employee_id = ?", employee.ID).First(&existing).Error; err == nil {
		response.Success(c, existing)
		return
	}

	liquidation, err := services.LiquidationForEmployee(employee, time.Now())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&liquidation).Error; err != nil {
		response.ServerError(c)
		return
	}

	notify(notification.LiquidationMessage(liquidation.EmployeeID, liquidation.TotalAmount))

	response.Success(c, liquidation)
}

// GenerateAllLiquidations runs settlement generation over every terminated
// employee of a restaurant. Per-employee failures are reported alongside the
// successes instead of aborting the batch.
func GenerateAllLiquidations(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Query("restaurantId"))
	if err != nil || restaurantID <= 0 {
		response.BadRequest(c, "Missing or invalid restaurantId")
		return
	}

	var employees []models.Employee
	if err := config.DB.
		Where("restaurant_id = ? AND termination_date IS NOT NULL", restaurantID).
		Find(&employees).Error; err != nil {
		response.ServerError(c)
		return
	}

	exists := func(employeeID uint) (bool, error) {
		var count int64
		err := config.DB.Model(&models.Liquidation{}).
			Where("employee_id = ?", employeeID).
			Count(&count).Error
		return count > 0, err
	}

	generated, failed := services.GenerateLiquidations(employees, exists, time.Now())

	saved := 0
	for i := range generated {
		if err := config.DB.Create(&generated[i]).Error; err != nil {
			failed = append(failed, services.LiquidationError{
				EmployeeID: generated[i].EmployeeID,
				Message:    err.Error(),
			})
			continue
		}
		notify(notification.LiquidationMessage(generated[i].EmployeeID, generated[i].TotalAmount))
		saved++
	}

	response.Success(c, dto.BatchLiquidationResponse{
		Generated: saved,
		Failed:    failed,
	})
}

// GetLiquidations lists settlements, optionally filtered by restaurant and
// payment state.
func GetLiquidations(c *gin.Context) {
	query := config.DB.Model(&models.Liquidation{}).Preload("Employee")

	if restaurantID, err := strconv.Atoi(c.Query("restaurantId")); err == nil && restaurantID > 0 {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if paidStr := c.Query("paid"); paidStr != "" {
		paid, err := strconv.ParseBool(paidStr)
		if err == nil {
			query = query.Where("paid = ?", paid)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	page, limit := parsePagination(c)

	var liquidations []models.Liquidation
	if err := query.
		Order("created_at desc").
		Offset(page * limit).
		Limit(limit).
		Find(&liquidations).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.LiquidationResponse, 0, len(liquidations))
	for _, liq := range liquidations {
		results = append(results, buildLiquidationResponse(liq))
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// GetLiquidationByEmployee returns one employee's settlement if it exists.
func GetLiquidationByEmployee(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("employeeId"))
	if err != nil || employeeID <= 0 {
		response.BadRequest(c, "Invalid employeeId")
		return
	}

	var liquidation models.Liquidation
	if err := config.DB.Preload("Employee").
		Where("employee_id = ?", employeeID).
		First(&liquidation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, buildLiquidationResponse(liquidation))
}

// MarkLiquidationPaid records the payout of a settlement.
func MarkLiquidationPaid(c *gin.Context) {
	var req dto.LiquidationPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var liquidation models.Liquidation
	if err := config.DB.First(&liquidation, req.LiquidationID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if liquidation.Paid {
		response.Conflict(c, "Liquidation is already paid")
		return
	}

	now := time.Now()
	liquidation.Paid = true
	liquidation.PaidAt = &now
	liquidation.PaymentMethod = req.PaymentMethod

	if err := config.DB.Save(&liquidation).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, liquidation)
}

func buildLiquidationResponse(liq models.Liquidation) dto.LiquidationResponse {
	return dto.LiquidationResponse{
		ID: liq.ID,
		Employee: types.EmployeeRef{
			ID:          liq.Employee.ID,
			Name:        liq.Employee.Name,
			Position:    liq.Employee.Position,
			PhoneNumber: liq.Employee.PhoneNumber,
		},
		HireDate:             liq.HireDate,
		TerminationDate:      liq.TerminationDate,
		WorkedDays:           liq.WorkedDays,
		WorkedMonths:         liq.WorkedMonths,
		BaseSalary:           liq.BaseSalary,
		ProportionalVacation: liq.ProportionalVacation,
		ProportionalBonus:    liq.ProportionalBonus,
		Compensation:         liq.Compensation,
		TotalAmount:          liq.TotalAmount,
		Paid:                 liq.Paid,
		PaidAt:               liq.PaidAt,
		PaymentMethod:        liq.PaymentMethod,
	}
}
