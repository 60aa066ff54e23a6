package dto

type RestaurantRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type AssignRestaurantsRequest struct {
	UserID        uint    `json:"userId" binding:"required"`
	RestaurantIDs []int64 `json:"restaurantIds" binding:"required"`
}
