package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadWasif123/hotel-backend/domain"
)

// APIResponse is the envelope every endpoint returns. Errors carry the same
// shape with Success=false and no Data.
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

func respondOK(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, APIResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{
		StatusCode: status,
		Message:    message,
		Success:    false,
	})
}

// UserResponse is the public projection of a user. Password hash, refresh
// token, and OTP state never leave the service.
type UserResponse struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	AvatarURL         string    `json:"avatar,omitempty"`
	IsAccountVerified bool      `json:"isAccountVerified"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		Phone:             user.Phone,
		AvatarURL:         user.AvatarURL,
		IsAccountVerified: user.IsAccountVerified,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}
