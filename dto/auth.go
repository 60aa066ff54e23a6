package dto

import "time"

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type GoogleUser struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Picture       string `json:"picture"`
}

type UserLoginResponse struct {
	UserID        uint      `json:"userId"`
	UserName      string    `json:"userName"`
	UserEmail     string    `json:"userEmail"`
	UserPhone     string    `json:"userPhone"`
	UserRole      int       `json:"userRole"`
	UserAvatar    string    `json:"userAvatar"`
	RestaurantIDs []int64   `json:"restaurantIds"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
