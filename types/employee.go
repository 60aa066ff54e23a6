package types

// EmployeeRef is the compact employee shape embedded in liquidation
// responses
type EmployeeRef struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	PhoneNumber string `json:"phoneNumber"`
}
