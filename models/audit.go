package models

import "time"

// AuditLog is an append-only action trail row.
type AuditLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurantId" gorm:"index"`
	UserID       uint      `json:"userId" gorm:"index"`
	Action       string    `json:"action"`
	Entity       string    `json:"entity"`
	EntityID     uint      `json:"entityId"`
	Detail       string    `json:"detail"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
