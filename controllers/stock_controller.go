package controllers

import (
	"strconv"

	"resto/config"
	"resto/constants"
	"resto/dto"
	"resto/models"
	"resto/response"

	"github.com/gin-gonic/gin"
)

func GetStockItems(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Query("restaurantId"))
	if err != nil || restaurantID <= 0 {
		response.BadRequest(c, "Missing or invalid restaurantId")
		return
	}

	query := config.DB.Model(&models.StockItem{}).Where("restaurant_id = ?", restaurantID)

	if c.Query("belowMin") == "true" {
		query = query.Where("quantity < min_quantity")
	}

	var items []models.StockItem
	if err := query.Order("name asc").Find(&items).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, items, len(items))
}

func CreateStockItem(c *gin.Context) {
	var req dto.StockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	item := models.StockItem{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Unit:         req.Unit,
		Quantity:     req.Quantity,
		MinQuantity:  req.MinQuantity,
		CostPrice:    req.CostPrice,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, item)
}

// RecordStockMovement applies a movement to an item's quantity inside one
// transaction. Outbound movements cannot take the quantity negative.
func RecordStockMovement(c *gin.Context) {
	var req dto.StockMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var item models.StockItem
	if err := config.DB.First(&item, req.StockItemID).Error; err != nil {
		response.NotFound(c)
		return
	}

	switch req.Type {
	case constants.StockMovementIn:
		item.Quantity += req.Quantity
	case constants.StockMovementOut:
		if item.Quantity < req.Quantity {
			response.BadRequest(c, "Insufficient stock")
			return
		}
		item.Quantity -= req.Quantity
	case constants.StockMovementAdjust:
		item.Quantity = req.Quantity
	default:
		response.BadRequest(c, "Unknown movement type")
		return
	}

	movement := models.StockMovement{
		StockItemID:  item.ID,
		RestaurantID: item.RestaurantID,
		Type:         req.Type,
		Quantity:     req.Quantity,
		Note:         req.Note,
	}

	tx := config.DB.Begin()
	if err := tx.Save(&item).Error; err != nil {
		tx.Rollback()
		response.ServerError(c)
		return
	}
	if err := tx.Create(&movement).Error; err != nil {
		tx.Rollback()
		response.ServerError(c)
		return
	}
	if err := tx.Commit().Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"item":     item,
		"movement": movement,
	})
}

func GetStockMovements(c *gin.Context) {
	stockItemID, err := strconv.Atoi(c.Query("stockItemId"))
	if err != nil || stockItemID <= 0 {
		response.BadRequest(c, "Missing or invalid stockItemId")
		return
	}

	var movements []models.StockMovement
	if err := config.DB.
		Where("stock_item_id = ?", stockItemID).
		Order("created_at desc").
		Find(&movements).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, movements, len(movements))
}
