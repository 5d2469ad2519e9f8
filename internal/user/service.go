package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kuafor-app/salon-booking-backend/internal/auth"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/storage"
)

// Service defines business logic related to accounts and staff profiles.
type Service interface {
	Register(ctx context.Context, username, password, fullName, phoneNumber string) (*User, error)
	Login(ctx context.Context, username, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	ListStaff(ctx context.Context) ([]*User, error)
	GetStaffProfile(ctx context.Context, id string) (*User, error)
	ListCustomers(ctx context.Context, filter Filter) ([]*User, int, error)
	UpdateProfile(ctx context.Context, staffID string, bio *string, picture *multipart.FileHeader) (*User, error)
	OpenProfilePicture(ctx context.Context, staffID string) (io.ReadCloser, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
	store  storage.Storage

	minPasswordLength int
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher, store storage.Storage) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		store:             store,
		minPasswordLength: 8,
	}
}

func (s *service) Register(ctx context.Context, username, password, fullName, phoneNumber string) (*User, error) {
	cleanUsername := normalizeUsername(username)
	if cleanUsername == "" {
		return nil, ErrUsernameRequired
	}

	if len(password) < s.minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	// Check if the username is already used.
	_, err := s.repo.GetByUsername(ctx, cleanUsername)
	if err == nil {
		return nil, ErrUsernameAlreadyUsed
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var phonePtr *string
	if strings.TrimSpace(phoneNumber) != "" {
		p := strings.TrimSpace(phoneNumber)
		phonePtr = &p
	}

	u := &User{
		Username:     cleanUsername,
		PasswordHash: hash,
		Role:         RoleCustomer, // registration always creates customers
		FullName:     strings.TrimSpace(fullName),
		PhoneNumber:  phonePtr,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*User, error) {
	cleanUsername := normalizeUsername(username)
	if cleanUsername == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByUsername(ctx, cleanUsername)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by username: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best effort; a failed timestamp update must not fail the login.
	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, u.ID, now); err != nil {
		log.Printf("warning: failed to update last login for user %s: %v", u.ID, err)
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListStaff(ctx context.Context) ([]*User, error) {
	staff, _, err := s.repo.List(ctx, Filter{Role: RoleStaff, PageSize: 100})
	return staff, err
}

// GetStaffProfile returns a staff member's public profile. Requesting a
// customer account by id behaves as if the user does not exist.
func (s *service) GetStaffProfile(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role != RoleStaff {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *service) ListCustomers(ctx context.Context, filter Filter) ([]*User, int, error) {
	filter.Role = RoleCustomer
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateProfile(ctx context.Context, staffID string, bio *string, picture *multipart.FileHeader) (*User, error) {
	u, err := s.repo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if u.Role != RoleStaff {
		return nil, ErrNotStaff
	}

	if bio != nil {
		trimmed := strings.TrimSpace(*bio)
		u.Bio = &trimmed
	}

	oldPicture := u.ProfilePicture
	if picture != nil {
		path, err := s.savePicture(ctx, staffID, picture)
		if err != nil {
			return nil, err
		}
		u.ProfilePicture = &path
	}

	if err := s.repo.UpdateProfile(ctx, u); err != nil {
		return nil, err
	}

	// Replaced pictures are cleaned up best effort.
	if picture != nil && oldPicture != nil {
		if err := s.store.Delete(ctx, *oldPicture); err != nil {
			log.Printf("warning: failed to delete old profile picture %s: %v", *oldPicture, err)
		}
	}

	return u, nil
}

func (s *service) OpenProfilePicture(ctx context.Context, staffID string) (io.ReadCloser, error) {
	u, err := s.GetStaffProfile(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if u.ProfilePicture == nil {
		return nil, ErrNotFound
	}
	return s.store.Get(ctx, *u.ProfilePicture)
}

func (s *service) savePicture(ctx context.Context, staffID string, header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	fileID := uuid.New().String()
	path := fmt.Sprintf("profile/%s/%s%s", fileID[:2], fileID, ext)

	if err := s.store.Save(ctx, path, src); err != nil {
		return "", fmt.Errorf("failed to save profile picture: %w", err)
	}

	return path, nil
}

// normalizeUsername trims spaces and lowercases the username.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
