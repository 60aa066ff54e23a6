package controllers

import (
	"time"

	"resto/config"
	"resto/models"
	"resto/services/logger"

	"github.com/olahol/melody"
)

// PayrollJobRunner backs the scheduled payroll bootstrap.
type PayrollJobRunner struct {
	log logger.Logger
}

func NewPayrollJobRunner(log logger.Logger) *PayrollJobRunner {
	return &PayrollJobRunner{log: log}
}

// GenerateMonthlyPayrolls creates or recalculates the pay period for every
// active employee. Per-employee failures are logged and skipped.
func (r *PayrollJobRunner) GenerateMonthlyPayrolls(month, year int, m *melody.Melody) error {
	var employees []models.Employee
	if err := config.DB.
		Where("status = ? AND termination_date IS NULL", 1).
		Find(&employees).Error; err != nil {
		return err
	}

	generated := 0
	for _, employee := range employees {
		if _, err := generatePayrollForEmployee(employee, month, year); err != nil {
			r.log.Error("Payroll bootstrap failed for employee %d: %v", employee.ID, err)
			continue
		}
		generated++
	}

	r.log.Info("Payroll bootstrap done: %d/%d employees for %d-%02d", generated, len(employees), year, month)
	return nil
}

// AbsenceSweepRunner backs the nightly absence sweep.
type AbsenceSweepRunner struct {
	log logger.Logger
}

func NewAbsenceSweepRunner(log logger.Logger) *AbsenceSweepRunner {
	return &AbsenceSweepRunner{log: log}
}

// SweepAbsences creates an unjustified absence record for every active
// employee with no attendance record on the given day.
func (r *AbsenceSweepRunner) SweepAbsences(day time.Time) error {
	date := startOfDay(day)

	var employees []models.Employee
	if err := config.DB.
		Where("status = ? AND termination_date IS NULL", 1).
		Find(&employees).Error; err != nil {
		return err
	}

	swept := 0
	for _, employee := range employees {
		var count int64
		if err := config.DB.Model(&models.AttendanceRecord{}).
			Where("employee_id = ? AND date = ?", employee.ID, date).
			Count(&count).Error; err != nil {
			r.log.Error("Absence sweep lookup failed for employee %d: %v", employee.ID, err)
			continue
		}
		if count > 0 {
			continue
		}

		expectedIn, expectedOut := expectedTimesFor(employee, day)
		record := models.AttendanceRecord{
			EmployeeID:       employee.ID,
			RestaurantID:     employee.RestaurantID,
			Date:             date,
			ExpectedCheckIn:  expectedIn,
			ExpectedCheckOut: expectedOut,
			IsAbsent:         true,
		}
		if err := config.DB.Create(&record).Error; err != nil {
			r.log.Error("Absence sweep insert failed for employee %d: %v", employee.ID, err)
			continue
		}
		swept++
	}

	r.log.Info("Absence sweep done: %d absences recorded for %s", swept, date.Format("2006-01-02"))
	return nil
}
