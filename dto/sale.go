package dto

type SaleRequest struct {
	RestaurantID uint    `json:"restaurantId" binding:"required"`
	Date         string  `json:"date" binding:"required"` // "2006-01-02"
	CashAmount   float64 `json:"cashAmount" binding:"min=0"`
	CardAmount   float64 `json:"cardAmount" binding:"min=0"`
	TicketCount  int     `json:"ticketCount" binding:"min=0"`
	Note         string  `json:"note"`
}
