package models

import "time"

type StockItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurantId" gorm:"index;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Unit         string    `json:"unit"`
	Quantity     float64   `json:"quantity" gorm:"default:0"`
	MinQuantity  float64   `json:"minQuantity" gorm:"default:0"`
	CostPrice    float64   `json:"costPrice" gorm:"default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type StockMovement struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	StockItemID  uint      `json:"stockItemId" gorm:"index;not null"`
	StockItem    StockItem `json:"stockItem" gorm:"foreignKey:StockItemID"`
	RestaurantID uint      `json:"restaurantId" gorm:"index;not null"`
	Type         int       `json:"type"`
	Quantity     float64   `json:"quantity"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
