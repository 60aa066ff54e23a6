package routes

import (
	"context"
	"log"
	"net/http"

	"resto/config"
	"resto/controllers"
	middlewares "resto/middleware"
	"resto/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	controllers.Notifier = notification.NewMelodyService(m)

	employeeController := controllers.NewEmployeeController(db, redisCli)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/profile", controllers.GetProfile)

	v1.GET("/restaurants", middlewares.AuthMiddleware(0, 1, 2), controllers.GetRestaurants)
	v1.POST("/restaurants", middlewares.AuthMiddleware(0, 1), middlewares.AuditTrail("restaurant"), controllers.CreateRestaurant)
	v1.PUT("/restaurants/:id", middlewares.AuthMiddleware(0, 1), middlewares.AuditTrail("restaurant"), controllers.UpdateRestaurant)
	v1.GET("/restaurants/:id/staff", middlewares.AuthMiddleware(0, 1), controllers.GetRestaurantStaff)
	v1.PUT("/assignRestaurants", middlewares.AuthMiddleware(0, 1), middlewares.AuditTrail("user"), controllers.AssignRestaurants)

	v1.GET("/employees", middlewares.AuthMiddleware(0, 1, 2), employeeController.GetEmployees)
	v1.GET("/employees/:id", middlewares.AuthMiddleware(0, 1, 2), employeeController.GetEmployeeByID)
	v1.POST("/employees", middlewares.AuthMiddleware(0, 1, 2), middlewares.AuditTrail("employee"), employeeController.CreateEmployee)
	v1.PUT("/employees", middlewares.AuthMiddleware(0, 1, 2), middlewares.AuditTrail("employee"), employeeController.UpdateEmployee)
	v1.PUT("/employeeStatus", middlewares.AuthMiddleware(0, 1, 2), middlewares.AuditTrail("employee"), employeeController.ChangeEmployeeStatus)
	v1.PUT("/employeeTerminate", middlewares.AuthMiddleware(0, 1), middlewares.AuditTrail("employee"), employeeController.TerminateEmployee)
	v1.GET("/employeeSearch", middlewares.AuthMiddleware(0, 1, 2), employeeController.SearchEmployees)

	v1.POST("/clockIn", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.ClockIn)
	v1.POST("/clockOut", middlewares.AuthMiddleware(0, 1, 2, 3), controllers.ClockOut)
	v1.POST("/absence", middlewares.AuthMiddleware(0, 1, 2), middlewares.AuditTrail("attendance"), controllers.MarkAbsence)
	v1.PUT("/absenceJustify", middlewares.AuthMiddleware(0, 1, 2), middlewares.AuditTrail("attendance"), controllers.JustifyAbsence)
	v1.GET("/attendanceCalendar", middlewares.AuthMiddleware(0, 1, 2), controllers.GetAttendanceCalendar)

	v1.POST("/payrollGenerate", middlewares.AuthMiddleware(0, 1, 2), middlewares.AuditTrail("payroll"), controllers.GeneratePayroll)
	v1.GET("/payrolls", middlewares.AuthMiddleware(0, 1, 2), controllers.GetPayrolls)
	v1.PUT("/payrollStatus", middlewares.AuthMiddleware(0, 1), middlewares.AuditTrail("payroll"), controllers.UpdatePayrollStatus)
	v1.GET("/payrollSummary", middlewares.AuthMiddleware(0, 1), controllers.GetPayrollSummary)

	v1.POST("/liquidationGenerate", middlewares.AuthMiddleware(0, 1), middlewares.AuditTrail("liquidation"), controllers.GenerateLiquidation)
	v1.POST("/liquidationGenerateAll", middlewares.AuthMiddleware(0, 1), middlewares.AuditTrail("liquidation"), controllers.GenerateAllLiquidations)
	v1.GET("/liquidations", middlewares.AuthMiddleware(0, 1), controllers.GetLiquidations)
	v1.GET("/liquidations/:employeeId", middlewares.AuthMiddleware(0, 1), controllers.GetLiquidationByEmployee)
	v1.PUT("/liquidationPaid", middlewares.AuthMiddleware(0, 1), middlewares.AuditTrail("liquidation"), controllers.MarkLiquidationPaid)

	v1.GET("/suppliers", middlewares.AuthMiddleware(0, 1, 2), controllers.GetSuppliers)
	v1.POST("/suppliers", middlewares.AuthMiddleware(0, 1, 2), middlewares.AuditTrail("supplier"), controllers.CreateSupplier)
	v1.PUT("/suppliers", middlewares.AuthMiddleware(0, 1, 2), middlewares.AuditTrail("supplier"), controllers.UpdateSupplier)
	v1.POST("/supplierPayments", middlewares.AuthMiddleware(0, 1, 2), middlewares.AuditTrail("supplierPayment"), controllers.RecordSupplierPayment)
	v1.GET("/supplierPayments", middlewares.AuthMiddleware(0, 1, 2), controllers.GetSupplierPayments)

	v1.GET("/stock", middlewares.AuthMiddleware(0, 1, 2), controllers.GetStockItems)
	v1.POST("/stock", middlewares.AuthMiddleware(0, 1, 2), middlewares.AuditTrail("stock"), controllers.CreateStockItem)
	v1.POST("/stockMovements", middlewares.AuthMiddleware(0, 1, 2, 3), middlewares.AuditTrail("stock"), controllers.RecordStockMovement)
	v1.GET("/stockMovements", middlewares.AuthMiddleware(0, 1, 2), controllers.GetStockMovements)

	v1.POST("/salesClose", middlewares.AuthMiddleware(0, 1, 2), middlewares.AuditTrail("sale"), controllers.CloseDailySales)
	v1.GET("/sales", middlewares.AuthMiddleware(0, 1, 2), controllers.GetSales)
	v1.GET("/monthlyRevenue", middlewares.AuthMiddleware(0, 1), controllers.GetMonthlyRevenue)

	v1.GET("/auditLogs", middlewares.AuthMiddleware(0, 1), controllers.GetAuditLogs)

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(0, 1, 2), func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", middlewares.AuthMiddleware(0, 1, 2), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Avatar upload successful",
			"url":     resp.SecureURL,
		})
	})

	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Backend notification: new message!")
		log.Println("Broadcasting message:", string(message))
		if err := m.Broadcast(message); err != nil {
			log.Println("Error broadcasting message:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Broadcast failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Notification sent"})
	})
}
