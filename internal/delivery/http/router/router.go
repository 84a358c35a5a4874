// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taskboard/internal/delivery/http/middleware"
	"taskboard/internal/delivery/http/router/handler"
	"taskboard/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	TaskHandler    *handler.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	taskHandler    *handler.TaskHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		taskHandler:    params.TaskHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// User routes. Registration and login are public; the listing is
	// restricted to administrators.
	userGroup := e.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("/me", r.userHandler.GetProfile, r.authMiddleware.Authenticate)
		userGroup.GET("", r.userHandler.ListUsers,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin.String()),
		)
	}

	// Task routes all require authentication.
	taskGroup := e.Group("/tasks")
	taskGroup.Use(r.authMiddleware.Authenticate)
	{
		taskGroup.POST("", r.taskHandler.CreateTask)
		taskGroup.GET("", r.taskHandler.ListTasks)
		taskGroup.GET("/:id", r.taskHandler.GetTask)
		taskGroup.PUT("/:id", r.taskHandler.UpdateTask)
		taskGroup.DELETE("/:id", r.taskHandler.DeleteTask)
	}
}
