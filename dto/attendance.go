package dto

type ClockRequest struct {
	EmployeeID uint `json:"employeeId" binding:"required"`
	Holiday    bool `json:"holiday"`
}

type AbsenceRequest struct {
	EmployeeID uint   `json:"employeeId" binding:"required"`
	Date       string `json:"date" binding:"required"` // "2006-01-02"
	Justified  bool   `json:"justified"`
}

type JustifyRequest struct {
	RecordID  uint `json:"recordId" binding:"required"`
	Justified bool `json:"justified"`
}
