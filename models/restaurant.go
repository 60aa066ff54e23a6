package models

import "time"

type Restaurant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	OwnerID   uint      `json:"ownerId" gorm:"index;not null"`
	Owner     User      `json:"owner" gorm:"foreignKey:OwnerID"`
	Status    int       `json:"status" gorm:"default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
