package session

import (
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/credittransfer/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload issued by the login endpoint.
type Claims struct {
	jwt.RegisteredClaims
	UserID    json.Number `json:"user_id,omitempty"`
	Username  string      `json:"username"`
	IsStaff   bool        `json:"is_staff"`
	IsFaculty bool        `json:"is_faculty,omitempty"`
}

var errEmptyToken = errors.New("empty token")

// Decode reads the Identity from an access token without verifying its
// signature. The server remains the only authority on token validity.
func Decode(access string) (models.Identity, error) {
	if access == "" {
		return models.Identity{}, &AuthDecodeError{Err: errEmptyToken}
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return models.Identity{}, &AuthDecodeError{Err: err}
	}

	ident := models.Identity{
		Username:  claims.Username,
		IsStaff:   claims.IsStaff,
		IsFaculty: claims.IsFaculty,
	}
	if claims.UserID != "" {
		id, err := claims.UserID.Int64()
		if err != nil {
			return models.Identity{}, &AuthDecodeError{Err: err}
		}
		ident.UserID = int(id)
	}
	return ident, nil
}
