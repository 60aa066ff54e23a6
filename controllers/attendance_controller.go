package controllers

import (
	"strconv"
	"time"

	"resto/config"
	"resto/dto"
	"resto/models"
	"resto/response"
	"resto/services"

	"github.com/gin-gonic/gin"
)

// expectedTimesFor anchors the employee's expected wall-clock times on the
// given date.
func expectedTimesFor(employee models.Employee, date time.Time) (time.Time, time.Time) {
	in, err := time.Parse("15:04", employee.ExpectedCheckIn)
	if err != nil {
		in, _ = time.Parse("15:04", "09:00")
	}
	out, err := time.Parse("15:04", employee.ExpectedCheckOut)
	if err != nil {
		out, _ = time.Parse("15:04", "17:00")
	}

	expectedIn := time.Date(date.Year(), date.Month(), date.Day(), in.Hour(), in.Minute(), 0, 0, date.Location())
	expectedOut := time.Date(date.Year(), date.Month(), date.Day(), out.Hour(), out.Minute(), 0, 0, date.Location())
	return expectedIn, expectedOut
}

// startOfDay keys a timestamp to its calendar date as midnight UTC, the
// single convention every attendance lookup and insert uses. Dates parsed
// from "2006-01-02" request fields land on the same instant.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ClockIn opens today's attendance record for an employee. Arriving after the
// expected check-in accrues late minutes.
func ClockIn(c *gin.Context) {
	var req dto.ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, req.EmployeeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	now := time.Now()
	today := startOfDay(now)
	// Expected times stay in the clock-in's own zone so the minute
	// comparison against now is meaningful.
	expectedIn, expectedOut := expectedTimesFor(employee, now)

	var record models.AttendanceRecord
	err := config.DB.Where("employee_id = ? AND date = ?", employee.ID, today).First(&record).Error
	if err == nil && record.CheckIn != nil {
		response.Conflict(c, "Employee already clocked in today")
		return
	}

	lateMinutes := 0
	if now.After(expectedIn) {
		lateMinutes = int(now.Sub(expectedIn).Minutes())
	}

	if err != nil {
		record = models.AttendanceRecord{
			EmployeeID:   employee.ID,
			RestaurantID: employee.RestaurantID,
			Date:         today,
		}
	}

	record.CheckIn = &now
	record.ExpectedCheckIn = expectedIn
	record.ExpectedCheckOut = expectedOut
	record.LateMinutes = lateMinutes
	record.IsAbsent = false
	record.IsHoliday = req.Holiday

	if err := config.DB.Save(&record).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, record)
}

// ClockOut closes today's attendance record. Leaving before the expected
// check-out accrues early-departure minutes.
func ClockOut(c *gin.Context) {
	var req dto.ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	now := time.Now()
	today := startOfDay(now)

	var record models.AttendanceRecord
	if err := config.DB.Where("employee_id = ? AND date = ?", req.EmployeeID, today).First(&record).Error; err != nil {
		response.BadRequest(c, "No clock-in found for today")
		return
	}

	if record.CheckIn == nil {
		response.BadRequest(c, "Employee has not clocked in today")
		return
	}
	if record.CheckOut != nil {
		response.Conflict(c, "Employee already clocked out today")
		return
	}

	earlyMinutes := 0
	if now.Before(record.ExpectedCheckOut) {
		earlyMinutes = int(record.ExpectedCheckOut.Sub(now).Minutes())
	}

	record.CheckOut = &now
	record.EarlyDepartureMinutes = earlyMinutes

	if err := config.DB.Save(&record).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, record)
}

// MarkAbsence records an absence for a given day. An absence record carries
// no timestamps and no minute counters.
func MarkAbsence(c *gin.Context) {
	var req dto.AbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	parsed, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date format")
		return
	}
	date := startOfDay(parsed)

	var employee models.Employee
	if err := config.DB.First(&employee, req.EmployeeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var existing models.AttendanceRecord
	if err := config.DB.Where("employee_id = ? AND date = ?", employee.ID, date).First(&existing).Error; err == nil {
		response.Conflict(c, "An attendance record already exists for this day")
		return
	}

	expectedIn, expectedOut := expectedTimesFor(employee, date)

	record := models.AttendanceRecord{
		EmployeeID:       employee.ID,
		RestaurantID:     employee.RestaurantID,
		Date:             date,
		ExpectedCheckIn:  expectedIn,
		ExpectedCheckOut: expectedOut,
		IsAbsent:         true,
		IsJustified:      req.Justified,
	}

	if err := config.DB.Create(&record).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, record)
}

// JustifyAbsence flips the justified flag on an absence after the fact, for
// example when a medical certificate arrives late.
func JustifyAbsence(c *gin.Context) {
	var req dto.JustifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var record models.AttendanceRecord
	if err := config.DB.First(&record, req.RecordID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if !record.IsAbsent {
		response.BadRequest(c, "Record is not an absence")
		return
	}

	record.IsJustified = req.Justified
	if err := config.DB.Save(&record).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, record)
}

// GetMonthAttendance returns one employee's records inside a calendar month.
func GetMonthAttendance(employeeID uint, month, year int) ([]models.AttendanceRecord, error) {
	start, end := services.MonthWindow(year, month)

	var records []models.AttendanceRecord
	err := config.DB.
		Where("employee_id = ? AND date >= ? AND date < ?", employeeID, start, end).
		Order("date asc").
		Find(&records).Error
	return records, err
}

// GetAttendanceCalendar lists an employee's attendance for a month.
func GetAttendanceCalendar(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Query("employeeId"))
	if err != nil || employeeID <= 0 {
		response.BadRequest(c, "Missing or invalid employeeId")
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

	records, err := GetMonthAttendance(uint(employeeID), month, year)
	if err != nil {
		response.ServerError(c)
		return
	}

	attended := 0
	absences := 0
	unjustified := 0
	for _, record := range records {
		if record.IsAbsent {
			absences++
			if !record.IsJustified {
				unjustified++
			}
		} else if record.Attended() {
			attended++
		}
	}

	response.Success(c, gin.H{
		"records": records,
		"summary": gin.H{
			"attendedDays":        attended,
			"absences":            absences,
			"unjustifiedAbsences": unjustified,
		},
	})
}
