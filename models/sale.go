package models

import "time"

// Sale is one restaurant's daily sales close.
type Sale struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurantId" gorm:"index;not null"`
	Date         time.Time `json:"date" gorm:"not null"`
	CashAmount   float64   `json:"cashAmount"`
	CardAmount   float64   `json:"cardAmount"`
	TotalAmount  float64   `json:"totalAmount"`
	TicketCount  int       `json:"ticketCount"`
	Note         string    `json:"note"`
	ClosedBy     uint      `json:"closedBy"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
