package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"resto/builders"
	"resto/config"
	"resto/dto"
	"resto/models"
	"resto/response"
	"resto/services"
	"resto/services/notification"

	"github.com/gin-gonic/gin"
)

// Notifier broadcasts payroll and liquidation events over the websocket.
// Set once at startup by the route setup.
var Notifier notification.Service

func notify(message string) {
	if Notifier == nil {
		return
	}
	if err := Notifier.SendMessage(message); err != nil {
		log.Printf("Failed to broadcast notification: %v", err)
	}
}

func payrollSummaryCacheKey(restaurantID uint, month, year int) string {
	return fmt.Sprintf("payrollSummary:%d:%d-%d", restaurantID, year, month)
}

func invalidatePayrollSummary(restaurantID uint, month, year int) {
	if config.RedisClient == nil {
		return
	}
	key := payrollSummaryCacheKey(restaurantID, month, year)
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, key); err != nil {
		log.Printf("Failed to invalidate payroll summary cache: %v", err)
	}
}

// GeneratePayroll computes one employee's pay period from that month's
// attendance. Rerunning the same period recalculates the existing row
// instead of creating a second one.
func GeneratePayroll(c *gin.Context) {
	var req dto.GeneratePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, req.EmployeeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	payroll, err := generatePayrollForEmployee(employee, req.Month, req.Year)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, buildPayrollResponse(*payroll, employee.Name, false))
}

// generatePayrollForEmployee is shared between the HTTP handler and the
// monthly cron bootstrap.
func generatePayrollForEmployee(employee models.Employee, month, year int) (*models.Payroll, error) {
	records, err := GetMonthAttendance(employee.ID, month, year)
	if err != nil {
		return nil, err
	}

	var existing models.Payroll
	lookupErr := config.DB.
		Where("employee_id = ? AND month = ? AND year = ?", employee.ID, month, year).
		First(&existing).Error

	if lookupErr == nil {
		// Recalculation works entirely off the period's stored snapshot;
		// only the attendance-derived fields move.
		recalculated, err := services.RecalculatePayroll(existing, records)
		if err != nil {
			return nil, err
		}
		if err := config.DB.Save(&recalculated).Error; err != nil {
			return nil, err
		}
		invalidatePayrollSummary(recalculated.RestaurantID, month, year)
		return &recalculated, nil
	}

	adj, err := services.ComputeAdjustments(records, employee.BankSalary)
	if err != nil {
		return nil, err
	}

	final := services.ComputeFinalSalary(employee.SalaryComponents(), adj)

	payroll := builders.NewPayrollBuilder().
		WithEmployee(employee).
		WithPeriod(month, year).
		WithAdjustments(adj).
		WithFinalSalary(final).
		Build()

	if err := config.DB.Create(payroll).Error; err != nil {
		return nil, err
	}
	invalidatePayrollSummary(payroll.RestaurantID, month, year)
	return payroll, nil
}

// GetPayrolls lists pay periods, optionally filtered by restaurant, employee
// and period. Each row's total is reconciled against a recomputation; a
// drifted row is displayed with the recomputed total and flagged, the stored
// row is repaired out of band.
func GetPayrolls(c *gin.Context) {
	query := config.DB.Model(&models.Payroll{}).Preload("Employee")

	if restaurantID, err := strconv.Atoi(c.Query("restaurantId")); err == nil && restaurantID > 0 {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if employeeID, err := strconv.Atoi(c.Query("employeeId")); err == nil && employeeID > 0 {
		query = query.Where("employee_id = ?", employeeID)
	}
	if month, err := strconv.Atoi(c.Query("month")); err == nil && month >= 1 && month <= 12 {
		query = query.Where("month = ?", month)
	}
	if year, err := strconv.Atoi(c.Query("year")); err == nil && year >= 2000 {
		query = query.Where("year = ?", year)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	page, limit := parsePagination(c)

	var payrolls []models.Payroll
	if err := query.
		Order("year desc, month desc").
		Offset(page * limit).
		Limit(limit).
		Find(&payrolls).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		recomputed := services.RecomputeTotal(p)
		display, drifted := services.ReconcileTotal(p.TotalSalary, recomputed, services.DefaultTolerance)
		if drifted {
			log.Printf("Payroll %d total drifted: stored %.2f, recomputed %.2f", p.ID, p.TotalSalary, recomputed)
			notify(notification.DriftMessage(p.ID, p.TotalSalary, recomputed))
		}

		resp := buildPayrollResponse(p, p.Employee.Name, drifted)
		resp.TotalSalary = display
		results = append(results, resp)
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// UpdatePayrollStatus marks one disbursement channel paid or unpaid. The two
// channels move independently.
func UpdatePayrollStatus(c *gin.Context) {
	var req dto.PayrollStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var payroll models.Payroll
	if err := config.DB.First(&payroll, req.PayrollID).Error; err != nil {
		response.NotFound(c)
		return
	}

	switch req.Channel {
	case "hand":
		payroll.HandPaid = req.Paid
	case "bank":
		payroll.BankPaid = req.Paid
	default:
		response.BadRequest(c, "Unknown payment channel")
		return
	}

	if err := config.DB.Save(&payroll).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePayrollSummary(payroll.RestaurantID, payroll.Month, payroll.Year)

	response.Success(c, gin.H{
		"payrollId": payroll.ID,
		"handPaid":  payroll.HandPaid,
		"bankPaid":  payroll.BankPaid,
	})
}

// GetPayrollSummary aggregates a restaurant's payroll cost for one period.
func GetPayrollSummary(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Query("restaurantId"))
	if err != nil || restaurantID <= 0 {
		response.BadRequest(c, "Missing or invalid restaurantId")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(c, "Missing or invalid month")
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		response.BadRequest(c, "Missing or invalid year")
		return
	}

	cacheKey := payrollSummaryCacheKey(uint(restaurantID), month, year)

	var summary dto.PayrollSummaryResponse
	if cached, err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &summary); err == nil && cached {
		response.Success(c, summary)
		return
	}

	var payrolls []models.Payroll
	if err := config.DB.
		Where("restaurant_id = ? AND month = ? AND year = ?", restaurantID, month, year).
		Find(&payrolls).Error; err != nil {
		response.ServerError(c)
		return
	}

	var totalCost, totalBank, totalHand, totalDeductions float64
	pendingHand := 0
	pendingBank := 0
	for _, p := range payrolls {
		totalCost += p.TotalSalary
		totalBank += p.BankSalary
		totalHand += p.FinalHandSalary
		totalDeductions += p.Deductions
		if !p.HandPaid {
			pendingHand++
		}
		if !p.BankPaid {
			pendingBank++
		}
	}

	summary = dto.PayrollSummaryResponse{
		RestaurantID:    restaurantID,
		Month:           month,
		Year:            year,
		EmployeeCount:   len(payrolls),
		TotalCost:       services.Round2(totalCost),
		TotalBank:       services.Round2(totalBank),
		TotalHand:       services.Round2(totalHand),
		TotalDeductions: services.Round2(totalDeductions),
		PendingHand:     pendingHand,
		PendingBank:     pendingBank,
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, summary, 10*time.Minute); err != nil {
		log.Printf("Failed to cache payroll summary: %v", err)
	}

	response.Success(c, summary)
}

func buildPayrollResponse(p models.Payroll, employeeName string, drifted bool) dto.PayrollResponse {
	return dto.PayrollResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		EmployeeName:    employeeName,
		Month:           p.Month,
		Year:            p.Year,
		BankSalary:      p.BankSalary,
		HandSalary:      p.HandSalary,
		Deductions:      p.Deductions,
		Additions:       p.Additions,
		FinalHandSalary: p.FinalHandSalary,
		TotalSalary:     p.TotalSalary,
		HandPaid:        p.HandPaid,
		BankPaid:        p.BankPaid,
		Drifted:         drifted,
	}
}
