package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kuafor-app/salon-booking-backend/internal/auth"
	"github.com/kuafor-app/salon-booking-backend/internal/gallery"
	galleryHttp "github.com/kuafor-app/salon-booking-backend/internal/gallery/http"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/request"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/response"
	"github.com/kuafor-app/salon-booking-backend/internal/user"
)

type UserHandler struct {
	userService    user.Service
	galleryService gallery.Service
	jwtManager     *auth.JWTManager
}

func NewUserHandler(userService user.Service, galleryService gallery.Service, jwtManager *auth.JWTManager) *UserHandler {
	return &UserHandler{
		userService:    userService,
		galleryService: galleryService,
		jwtManager:     jwtManager,
	}
}

// Register handles customer account creation.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	u, err := h.userService.Register(c.Request.Context(), req.Username, req.Password, req.FullName, req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameAlreadyUsed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, user.ErrUsernameRequired), errors.Is(err, user.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, MeResponse{User: NewUserResponse(u)})
}

// Login authenticates a user and returns a JWT access token.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	u, err := h.userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidCredentials), errors.Is(err, user.ErrNotFound):
			// Do not reveal which condition failed
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(u.ID, u.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		User:        NewUserResponse(u),
	})
}

// Me retrieves the profile of the currently authenticated user.
func (h *UserHandler) Me(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{User: NewUserResponse(u)})
}

// ListStylists returns the public staff directory.
func (h *UserHandler) ListStylists(c *gin.Context) {
	staff, err := h.userService.ListStaff(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list stylists"})
		return
	}

	items := make([]UserResponse, len(staff))
	for i, u := range staff {
		items[i] = NewUserResponse(u)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetStylist returns a staff member's public profile including gallery.
func (h *UserHandler) GetStylist(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()

	u, err := h.userService.GetStaffProfile(ctx, req.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stylist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stylist"})
		return
	}

	images, err := h.galleryService.ListByStaff(ctx, u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load gallery"})
		return
	}

	c.JSON(http.StatusOK, StylistResponse{
		UserResponse: NewUserResponse(u),
		Gallery:      galleryHttp.NewImageResponses(images),
	})
}

// Avatar streams a staff member's profile picture.
func (h *UserHandler) Avatar(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	stream, err := h.userService.OpenProfilePicture(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile picture not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile picture"})
		return
	}
	defer stream.Close()

	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", stream, nil)
}

// UpdateProfile lets a staff member update bio and profile picture.
// Accepts multipart form: "bio" field and optional "profile_picture" file.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	staffID := auth.GetUserID(c)

	var bio *string
	if v, ok := c.GetPostForm("bio"); ok {
		bio = &v
	}

	picture, err := c.FormFile("profile_picture")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		picture = nil
	}

	u, err := h.userService.UpdateProfile(c.Request.Context(), staffID, bio, picture)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, user.ErrNotStaff):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, MeResponse{User: NewUserResponse(u)})
}

// ListCustomers returns the customer list. Staff only.
func (h *UserHandler) ListCustomers(c *gin.Context) {
	var req ListCustomersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := user.Filter{
		Username: req.Username,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	customers, total, err := h.userService.ListCustomers(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers"})
		return
	}

	items := make([]UserResponse, len(customers))
	for i, u := range customers {
		items[i] = NewUserResponse(u)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}
