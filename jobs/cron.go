package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// PayrollGenerator runs the monthly payroll bootstrap for every active
// employee of a period.
type PayrollGenerator interface {
	GenerateMonthlyPayrolls(month, year int, m *melody.Melody) error
}

// AbsenceSweeper fills in absence records for employees with no attendance
// record on a given day.
type AbsenceSweeper interface {
	SweepAbsences(day time.Time) error
}

var payrollGenerator PayrollGenerator
var absenceSweeper AbsenceSweeper

// SetPayrollGenerator installs the PayrollGenerator implementation.
func SetPayrollGenerator(generator PayrollGenerator) {
	payrollGenerator = generator
}

// SetAbsenceSweeper installs the AbsenceSweeper implementation.
func SetAbsenceSweeper(sweeper AbsenceSweeper) {
	absenceSweeper = sweeper
}

// InitCronJobs registers and starts the scheduled jobs.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// First of every month at 02:00: generate the previous month's payrolls.
	_, err := c.AddFunc("0 2 1 * *", func() {
		previous := time.Now().AddDate(0, -1, 0)
		log.Printf("Running monthly payroll bootstrap for %d-%02d", previous.Year(), previous.Month())
		if payrollGenerator == nil {
			log.Println("Payroll generator is not configured")
			return
		}
		if err := payrollGenerator.GenerateMonthlyPayrolls(int(previous.Month()), previous.Year(), m); err != nil {
			log.Printf("Monthly payroll bootstrap failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	// Every day at 23:30: mark employees with no record for the day absent.
	_, err = c.AddFunc("30 23 * * *", func() {
		today := time.Now()
		log.Printf("Running absence sweep for %s", today.Format("2006-01-02"))
		if absenceSweeper == nil {
			log.Println("Absence sweeper is not configured")
			return
		}
		if err := absenceSweeper.SweepAbsences(today); err != nil {
			log.Printf("Absence sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
