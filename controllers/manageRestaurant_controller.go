package controllers

import (
	"strconv"
	"strings"

	"resto/config"
	"resto/constants"
	"resto/dto"
	"resto/models"
	"resto/response"
	"resto/services"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// CreateRestaurant registers a restaurant owned by the calling user.
func CreateRestaurant(c *gin.Context) {
	var req dto.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	ownerID, err := currentUserID(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	restaurant := models.Restaurant{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		OwnerID: ownerID,
	}

	if err := config.DB.Create(&restaurant).Error; err != nil {
		response.ServerError(c)
		return
	}

	// The owner sees their own restaurant immediately.
	var owner models.User
	if err := config.DB.First(&owner, ownerID).Error; err == nil {
		owner.RestaurantIDs = append(owner.RestaurantIDs, int64(restaurant.ID))
		if err := config.DB.Save(&owner).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, restaurant)
}

// GetRestaurants lists the restaurants visible to the calling user. A
// superadmin sees everything, everyone else only their assigned set.
func GetRestaurants(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var restaurants []models.Restaurant
	query := config.DB.Model(&models.Restaurant{})
	if user.Role != constants.RoleSuperAdmin {
		if len(user.RestaurantIDs) == 0 {
			response.SuccessWithTotal(c, []models.Restaurant{}, 0)
			return
		}
		query = query.Where("id = ANY(?)", pq.Int64Array(user.RestaurantIDs))
	}

	if err := query.Order("name asc").Find(&restaurants).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, restaurants, len(restaurants))
}

func UpdateRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid restaurant id")
		return
	}

	var req dto.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	restaurant.Name = req.Name
	restaurant.Address = req.Address
	restaurant.Phone = req.Phone

	if err := config.DB.Save(&restaurant).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, restaurant)
}

// AssignRestaurants replaces a user's restaurant assignment set. Only
// restaurants that actually exist are assignable.
func AssignRestaurants(c *gin.Context) {
	var req dto.AssignRestaurantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.UserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var count int64
	if err := config.DB.Model(&models.Restaurant{}).
		Where("id = ANY(?)", pq.Int64Array(req.RestaurantIDs)).
		Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if int(count) != len(req.RestaurantIDs) {
		response.BadRequest(c, "One or more restaurants do not exist")
		return
	}

	user.RestaurantIDs = req.RestaurantIDs
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"userId":        user.ID,
		"restaurantIds": user.RestaurantIDs,
	})
}

// GetRestaurantStaff lists the users assigned to a restaurant.
func GetRestaurantStaff(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("id"))
	if err != nil || restaurantID <= 0 {
		response.BadRequest(c, "Invalid restaurant id")
		return
	}

	var users []models.User
	if err := config.DB.
		Where("? = ANY(restaurant_ids)", restaurantID).
		Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	for i := range users {
		users[i].Password = ""
	}

	response.SuccessWithTotal(c, users, len(users))
}

func currentUserID(c *gin.Context) (uint, error) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	return services.GetIDFromToken(tokenString)
}
