// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"taskboard/internal/delivery/http/response"
	"taskboard/internal/domain/entity"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" form:"email" validate:"required,email,max=255"`
	Password string `json:"password" form:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" form:"role" validate:"omitempty,oneof=admin staff"`
}

type loginRequest struct {
	Identifier string `json:"identifier" form:"identifier" validate:"required"`
	Password   string `json:"password" form:"password" validate:"required"`
}

// userResponse is the public view of a user. The password hash never
// leaves the service.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role.String(),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		User:        toUserResponse(output.User),
	}, "Login successful")
}

// GetProfile handles the request to get the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile retrieved successfully")
}

// ListUsers handles the admin-only request to list all users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	offset, limit := paginationParams(c)

	users, err := h.uc.ListUsers(c.Request().Context(), &usecase.ListUsersInput{
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]userResponse, 0, len(users))
	for _, user := range users {
		items = append(items, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, items, "Users retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
