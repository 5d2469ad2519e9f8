package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound            = errors.New("user not found")
	ErrUsernameAlreadyUsed = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUsernameRequired    = errors.New("username is required")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrNotStaff            = errors.New("user is not a staff member")
)

// Roles a user can hold. Customers book appointments; staff manage the salon.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
)

// User represents an account in the system, customer or staff alike.
type User struct {
	ID             string // UUID
	Username       string
	PasswordHash   string
	Role           string
	FullName       string
	PhoneNumber    *string
	Bio            *string // staff only
	ProfilePicture *string // storage path, staff only
	CreatedAt      time.Time
	LastLoginAt    *time.Time
}

// Filter defines options for listing users of a role.
type Filter struct {
	Role     string
	Username string // substring match

	Page     int
	PageSize int
}
