package controllers

import (
	"strconv"
	"time"

	"resto/config"
	"resto/dto"
	"resto/models"
	"resto/response"
	"resto/services"
	"resto/validator"

	"github.com/gin-gonic/gin"
)

// CloseDailySales records one restaurant's sales close for a day. Only one
// close exists per restaurant and day; a rerun overwrites the amounts.
func CloseDailySales(c *gin.Context) {
	var req dto.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date format")
		return
	}

	var closedBy uint
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(uint); ok {
			closedBy = id
		}
	}

	sale := models.Sale{
		RestaurantID: req.RestaurantID,
		Date:         date,
		CashAmount:   req.CashAmount,
		CardAmount:   req.CardAmount,
		TotalAmount:  services.Round2(req.CashAmount + req.CardAmount),
		TicketCount:  req.TicketCount,
		Note:         req.Note,
		ClosedBy:     closedBy,
	}

	if err := validator.ValidateSale(&sale); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.Sale
	if err := config.DB.Where("restaurant_id = ? AND date = ?", req.RestaurantID, date).First(&existing).Error; err == nil {
		existing.CashAmount = sale.CashAmount
		existing.CardAmount = sale.CardAmount
		existing.TotalAmount = sale.TotalAmount
		existing.TicketCount = sale.TicketCount
		existing.Note = sale.Note
		existing.ClosedBy = closedBy
		if err := config.DB.Save(&existing).Error; err != nil {
			response.ServerError(c)
			return
		}
		response.Success(c, existing)
		return
	}

	if err := config.DB.Create(&sale).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, sale)
}

// GetSales lists daily closes inside a date range.
func GetSales(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Query("restaurantId"))
	if err != nil || restaurantID <= 0 {
		response.BadRequest(c, "Missing or invalid restaurantId")
		return
	}

	query := config.DB.Model(&models.Sale{}).Where("restaurant_id = ?", restaurantID)

	if from := c.Query("from"); from != "" {
		if fromDate, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("date >= ?", fromDate)
		}
	}
	if to := c.Query("to"); to != "" {
		if toDate, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("date <= ?", toDate)
		}
	}

	var sales []models.Sale
	if err := query.Order("date desc").Find(&sales).Error; err != nil {
		response.ServerError(c)
		return
	}

	var totalCash, totalCard float64
	tickets := 0
	for _, s := range sales {
		totalCash += s.CashAmount
		totalCard += s.CardAmount
		tickets += s.TicketCount
	}

	response.Success(c, gin.H{
		"sales":       sales,
		"totalCash":   services.Round2(totalCash),
		"totalCard":   services.Round2(totalCard),
		"totalAmount": services.Round2(totalCash + totalCard),
		"tickets":     tickets,
	})
}

// GetMonthlyRevenue aggregates a month of closes against that month's
// payroll cost.
func GetMonthlyRevenue(c *gin.Context) {
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

	start, end := services.MonthWindow(year, month)

	var sales []models.Sale
	if err := config.DB.
		Where("restaurant_id = ? AND date >= ? AND date < ?", restaurantID, start, end).
		Find(&sales).Error; err != nil {
		response.ServerError(c)
		return
	}

	var revenue float64
	for _, s := range sales {
		revenue += s.TotalAmount
	}

	var payrollCost float64
	if err := config.DB.Model(&models.Payroll{}).
		Where("restaurant_id = ? AND month = ? AND year = ?", restaurantID, month, year).
		Select("COALESCE(SUM(total_salary), 0)").
		Scan(&payrollCost).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"restaurantId": restaurantID,
		"month":        month,
		"year":         year,
		"revenue":      services.Round2(revenue),
		"payrollCost":  services.Round2(payrollCost),
		"margin":       services.Round2(revenue - payrollCost),
		"daysClosed":   len(sales),
	})
}
