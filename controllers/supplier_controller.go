package controllers

import (
	"strconv"
	"time"

	"resto/config"
	"resto/dto"
	"resto/models"
	"resto/response"
	"resto/validator"

	"github.com/gin-gonic/gin"
)

func GetSuppliers(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Query("restaurantId"))
	if err != nil || restaurantID <= 0 {
		response.BadRequest(c, "Missing or invalid restaurantId")
		return
	}

	query := config.DB.Model(&models.Supplier{}).Where("restaurant_id = ?", restaurantID)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	page, limit := parsePagination(c)

	var suppliers []models.Supplier
	if err := query.
		Order("name asc").
		Offset(page * limit).
		Limit(limit).
		Find(&suppliers).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, suppliers, page, limit, int(total))
}

func CreateSupplier(c *gin.Context) {
	var req dto.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	supplier := models.Supplier{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		TaxID:        req.TaxID,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		Category:     req.Category,
	}

	if err := config.DB.Create(&supplier).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, supplier)
}

func UpdateSupplier(c *gin.Context) {
	var req struct {
		SupplierID uint `json:"supplierId" binding:"required"`
		dto.SupplierRequest
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, req.SupplierID).Error; err != nil {
		response.NotFound(c)
		return
	}

	supplier.Name = req.Name
	supplier.TaxID = req.TaxID
	supplier.PhoneNumber = req.PhoneNumber
	supplier.Email = req.Email
	supplier.Category = req.Category

	if err := config.DB.Save(&supplier).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, supplier)
}

// RecordSupplierPayment registers an outgoing payment to a supplier.
func RecordSupplierPayment(c *gin.Context) {
	var req dto.SupplierPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, req.SupplierID).Error; err != nil {
		response.NotFound(c)
		return
	}

	paymentDate := time.Now()
	if req.PaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			response.BadRequest(c, "Invalid payment date format")
			return
		}
		paymentDate = parsed
	}

	payment := models.SupplierPayment{
		SupplierID:    supplier.ID,
		RestaurantID:  supplier.RestaurantID,
		Amount:        req.Amount,
		Description:   req.Description,
		InvoiceNumber: req.InvoiceNumber,
		PaymentDate:   paymentDate,
		Method:        req.Method,
		Paid:          true,
	}

	if err := validator.ValidateSupplierPayment(&payment); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, payment)
}

// GetSupplierPayments lists a supplier's payments inside an optional date
// range.
func GetSupplierPayments(c *gin.Context) {
	supplierID, err := strconv.Atoi(c.Query("supplierId"))
	if err != nil || supplierID <= 0 {
		response.BadRequest(c, "Missing or invalid supplierId")
		return
	}

	query := config.DB.Model(&models.SupplierPayment{}).Where("supplier_id = ?", supplierID)

	if from := c.Query("from"); from != "" {
		if fromDate, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("payment_date >= ?", fromDate)
		}
	}
	if to := c.Query("to"); to != "" {
		if toDate, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("payment_date <= ?", toDate)
		}
	}

	var payments []models.SupplierPayment
	if err := query.Order("payment_date desc").Find(&payments).Error; err != nil {
		response.ServerError(c)
		return
	}

	var totalPaid float64
	for _, p := range payments {
		totalPaid += p.Amount
	}

	response.Success(c, gin.H{
		"payments":  payments,
		"totalPaid": totalPaid,
	})
}
