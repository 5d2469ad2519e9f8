package http

import (
	"time"

	galleryHttp "github.com/kuafor-app/salon-booking-backend/internal/gallery/http"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/request"
	"github.com/kuafor-app/salon-booking-backend/internal/user"
)

// RegisterRequest defines the payload for account creation. Registration
// always produces a customer; staff accounts are provisioned out of band.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	FullName    string `json:"full_name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
}

// LoginRequest defines the payload for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the shape of account data returned by the API.
type UserResponse struct {
	ID                string     `json:"id"`
	Username          string     `json:"username"`
	Role              string     `json:"role"`
	FullName          string     `json:"full_name"`
	PhoneNumber       *string    `json:"phone_number"`
	Bio               *string    `json:"bio,omitempty"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	LastLoginAt       *time.Time `json:"last_login_at"`
}

// NewUserResponse converts a domain user to the API shape.
func NewUserResponse(u *user.User) UserResponse {
	var pictureURL *string
	if u.ProfilePicture != nil {
		url := AvatarURL(u.ID)
		pictureURL = &url
	}

	return UserResponse{
		ID:                u.ID,
		Username:          u.Username,
		Role:              u.Role,
		FullName:          u.FullName,
		PhoneNumber:       u.PhoneNumber,
		Bio:               u.Bio,
		ProfilePictureURL: pictureURL,
		CreatedAt:         u.CreatedAt,
		LastLoginAt:       u.LastLoginAt,
	}
}

// AvatarURL returns the public URL for a staff member's profile picture.
func AvatarURL(staffID string) string {
	return "/v1/stylists/" + staffID + "/avatar"
}

// LoginResponse returns the token and user info.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// MeResponse returns the current user info.
type MeResponse struct {
	User UserResponse `json:"user"`
}

// StylistResponse is a staff member's public profile with gallery images.
type StylistResponse struct {
	UserResponse
	Gallery []galleryHttp.ImageResponse `json:"gallery"`
}

// ListCustomersRequest defines query parameters for the customer list.
type ListCustomersRequest struct {
	request.ListParams
	Username string `form:"username"`
}
