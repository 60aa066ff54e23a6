package controllers

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"resto/config"
	"resto/dto"
	"resto/models"
	"resto/response"
	"resto/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"user_info":   buildLoginResponse(user),
		"accessToken": accessToken,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.CreateUser(models.User{
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, user)
}

func GetProfile(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, err := services.GetIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, buildLoginResponse(user))
}

// AuthGoogle signs a user in with a Google ID token
func AuthGoogle(c *gin.Context) {
	var token struct {
		TokenId string `json:"tokenId"`
	}

	if err := c.ShouldBindJSON(&token); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := verifyGoogleIDToken(token.TokenId)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	googleUser := dto.GoogleUser{
		Name:          payload.Claims["name"].(string),
		Email:         payload.Claims["email"].(string),
		VerifiedEmail: payload.Claims["email_verified"].(bool),
		Picture:       payload.Claims["picture"].(string),
	}

	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email has not been verified")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", googleUser.Email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user, err = services.CreateGoogleUser(googleUser.Name, googleUser.Email, googleUser.Picture)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 15, true)
	if err != nil {
		log.Println("Error generating access token:", err)
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"user_info":   buildLoginResponse(user),
		"accessToken": accessToken,
	})
}

func buildLoginResponse(user models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:        user.ID,
		UserName:      user.Name,
		UserEmail:     user.Email,
		UserPhone:     user.PhoneNumber,
		UserRole:      user.Role,
		UserAvatar:    user.Avatar,
		RestaurantIDs: user.RestaurantIDs,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
