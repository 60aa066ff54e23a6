package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string        `gorm:"default:New User" json:"name"`
	Email         string        `gorm:"unique" json:"email"`
	Password      string        `json:"password"`
	PhoneNumber   string        `gorm:"unique;type:varchar(11)" json:"phoneNumber"`
	Avatar        string        `json:"avatar"`
	Role          int           `gorm:"default:3" json:"role"`
	Status        int           `gorm:"default:1" json:"status"`
	AdminId       *uint         `json:"adminId,omitempty"`
	Children      []User        `gorm:"foreignKey:AdminId" json:"children,omitempty"`
	RestaurantIDs pq.Int64Array `gorm:"type:integer[]" json:"restaurantIds"`
}
