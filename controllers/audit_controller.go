package controllers

import (
	"strconv"
	"time"

	"resto/config"
	"resto/models"
	"resto/response"

	"github.com/gin-gonic/gin"
)

// GetAuditLogs lists audit trail entries, newest first. The trail is
// append-only; there is no update or delete endpoint.
func GetAuditLogs(c *gin.Context) {
	query := config.DB.Model(&models.AuditLog{})

	if userID, err := strconv.Atoi(c.Query("userId")); err == nil && userID > 0 {
		query = query.Where("user_id = ?", userID)
	}
	if entity := c.Query("entity"); entity != "" {
		query = query.Where("entity = ?", entity)
	}
	if from := c.Query("from"); from != "" {
		if fromDate, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("created_at >= ?", fromDate)
		}
	}
	if to := c.Query("to"); to != "" {
		if toDate, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("created_at < ?", toDate.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	page, limit := parsePagination(c)

	var logs []models.AuditLog
	if err := query.
		Order("created_at desc").
		Offset(page * limit).
		Limit(limit).
		Find(&logs).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, logs, page, limit, int(total))
}
