package middleware

import (
	"log"
	"net/http"

	"resto/config"
	"resto/models"

	"github.com/gin-gonic/gin"
)

// AuditTrail records mutating requests in the audit log after the handler
// ran. Reads are not recorded.
func AuditTrail(entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		var userID uint
		if v, exists := c.Get("userID"); exists {
			if id, ok := v.(uint); ok {
				userID = id
			}
		}

		entry := models.AuditLog{
			UserID: userID,
			Action: c.Request.Method,
			Entity: entity,
			Detail: c.FullPath(),
		}

		if err := config.DB.Create(&entry).Error; err != nil {
			log.Printf("Failed to write audit log: %v", err)
		}
	}
}
