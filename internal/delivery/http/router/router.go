// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lounas/internal/delivery/http/middleware"
	"lounas/internal/delivery/http/router/handler"
	"lounas/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	MenuHandler         *handler.MenuHandler
	OrderHandler        *handler.OrderHandler
	AnnouncementHandler *handler.AnnouncementHandler
	InfoHandler         *handler.InfoHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	menuHandler         *handler.MenuHandler
	orderHandler        *handler.OrderHandler
	announcementHandler *handler.AnnouncementHandler
	infoHandler         *handler.InfoHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		menuHandler:         params.MenuHandler,
		orderHandler:        params.OrderHandler,
		announcementHandler: params.AnnouncementHandler,
		infoHandler:         params.InfoHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account and session routes. Logout stays public so a client holding
	// an expired token can still clear its cookie.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/admin/login", r.authHandler.AdminLogin)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Public restaurant information
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/menu/week", r.menuHandler.GetWeek)
		apiGroup.GET("/menu/today", r.menuHandler.GetToday)
		apiGroup.GET("/menu/:date", r.menuHandler.GetDay)
		apiGroup.GET("/announcements", r.announcementHandler.ListActive)
		apiGroup.GET("/transport-info", r.infoHandler.TransportInfo)
	}

	// Customer routes that require authentication
	orderGroup := e.Group("/api/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("/my", r.orderHandler.ListMine)
	}

	// Admin routes that require authentication and the admin role
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.POST("/menu", r.menuHandler.UpsertDay)
		adminGroup.DELETE("/menu/:id", r.menuHandler.DeleteDay)
		adminGroup.GET("/orders", r.orderHandler.ListAll)
		adminGroup.PATCH("/orders/:id", r.orderHandler.UpdateStatus)
		adminGroup.GET("/announcements", r.announcementHandler.ListAll)
		adminGroup.POST("/announcements", r.announcementHandler.Create)
		adminGroup.POST("/announcements/:id/toggle", r.announcementHandler.Toggle)
	}
}
