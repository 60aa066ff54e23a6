package services

import (
	"encoding/json"
	"strings"

	"resto/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserIDFromToken extracts the userID and role from a token payload
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "malformed token", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "cannot decode token payload", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "cannot parse token payload", err)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "userinfo missing from token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "user ID missing from token", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "role missing from token", nil)
	}

	return uint(userID), int(role), nil
}

// GetIDFromToken extracts just the userID from a token payload
func GetIDFromToken(tokenString string) (uint, error) {
	userID, _, err := GetUserIDFromToken(tokenString)
	return userID, err
}
