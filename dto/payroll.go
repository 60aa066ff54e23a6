package dto

type GeneratePayrollRequest struct {
	EmployeeID uint `json:"employeeId" binding:"required"`
	Month      int  `json:"month" binding:"required,min=1,max=12"`
	Year       int  `json:"year" binding:"required,min=2000"`
}

type PayrollStatusRequest struct {
	PayrollID uint   `json:"payrollId" binding:"required"`
	Channel   string `json:"channel" binding:"required,oneof=hand bank"`
	Paid      bool   `json:"paid"`
}

type PayrollSummaryResponse struct {
	RestaurantID    int     `json:"restaurantId"`
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	EmployeeCount   int     `json:"employeeCount"`
	TotalCost       float64 `json:"totalCost"`
	TotalBank       float64 `json:"totalBank"`
	TotalHand       float64 `json:"totalHand"`
	TotalDeductions float64 `json:"totalDeductions"`
	PendingHand     int     `json:"pendingHand"`
	PendingBank     int     `json:"pendingBank"`
}

type PayrollResponse struct {
	ID              uint    `json:"id"`
	EmployeeID      uint    `json:"employeeId"`
	EmployeeName    string  `json:"employeeName"`
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	BankSalary      float64 `json:"bankSalary"`
	HandSalary      float64 `json:"handSalary"`
	Deductions      float64 `json:"deductions"`
	Additions       float64 `json:"additions"`
	FinalHandSalary float64 `json:"finalHandSalary"`
	TotalSalary     float64 `json:"totalSalary"`
	HandPaid        bool    `json:"handPaid"`
	BankPaid        bool    `json:"bankPaid"`
	Drifted         bool    `json:"drifted,omitempty"`
}
