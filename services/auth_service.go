package services

import (
	"errors"
	"fmt"
	"time"

	"resto/config"
	"resto/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

// GenerateToken signs a JWT carrying the user info
func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("no user found for email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// CreateUser registers a new account with a hashed password
func CreateUser(input models.User) (models.User, error) {
	var existing models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Email, input.PhoneNumber).First(&existing).Error; err == nil {
		return models.User{}, fmt.Errorf("email or phone number already registered")
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}
	input.Password = hashedPassword

	if err := config.DB.Create(&input).Error; err != nil {
		return models.User{}, err
	}

	input.Password = ""
	return input, nil
}

// CreateGoogleUser registers an account from a verified Google profile
func CreateGoogleUser(name, email, avatar string) (models.User, error) {
	user := models.User{
		Name:   name,
		Email:  email,
		Avatar: avatar,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}
