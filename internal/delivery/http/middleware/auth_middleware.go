package middleware

import (
	"strings"

	"taskboard/internal/delivery/http/response"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and resolves the acting user.
// Every failure mode answers with the same 401 so the response leaks
// nothing about whether a token was malformed, expired, or orphaned.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return unauthorized(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return unauthorized(c)
		}

		// The token may outlive the account. Resolve the user so handlers
		// never act for a deleted or deactivated account.
		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil || !user.IsActive {
			return unauthorized(c)
		}

		c.Set("userID", user.ID)
		c.Set("user", user)
		c.Set("role", user.Role.String())

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or missing credentials")
}
