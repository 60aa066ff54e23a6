package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// DriftMessage announces a payroll total drifting past the reconciliation
// tolerance on a read.
func DriftMessage(payrollID uint, stored, recomputed float64) string {
	return fmt.Sprintf("Payroll %d drifted: stored %.2f, recomputed %.2f", payrollID, stored, recomputed)
}

// LiquidationMessage announces a generated settlement.
func LiquidationMessage(employeeID uint, total float64) string {
	return fmt.Sprintf("Liquidation generated for employee %d: %.2f", employeeID, total)
}
