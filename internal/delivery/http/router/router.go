// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"interviewlog/internal/delivery/http/middleware"
	"interviewlog/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	InterviewHandler *handler.InterviewHandler
	CommentHandler   *handler.CommentHandler
	FavoriteHandler  *handler.FavoriteHandler
	PageHandler      *handler.PageHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	interviewHandler *handler.InterviewHandler
	commentHandler   *handler.CommentHandler
	favoriteHandler  *handler.FavoriteHandler
	pageHandler      *handler.PageHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		interviewHandler: params.InterviewHandler,
		commentHandler:   params.CommentHandler,
		favoriteHandler:  params.FavoriteHandler,
		pageHandler:      params.PageHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Interview records: listing and detail are public, mutations need a session.
	interviewGroup := e.Group("/interviews")
	{
		interviewGroup.GET("", r.interviewHandler.List, r.authMiddleware.OptionalAuth)
		interviewGroup.POST("", r.interviewHandler.Create, r.authMiddleware.RequireAuth)
		interviewGroup.GET("/:id", r.interviewHandler.Detail, r.authMiddleware.OptionalAuth)
		interviewGroup.POST("/:id", r.interviewHandler.Update, r.authMiddleware.RequireAuth)
		interviewGroup.GET("/:id/edit", r.interviewHandler.EditForm, r.authMiddleware.RequireAuth)
		interviewGroup.POST("/:id/edit", r.interviewHandler.Update, r.authMiddleware.RequireAuth)
		interviewGroup.POST("/:id/delete", r.interviewHandler.Delete, r.authMiddleware.RequireAuth)
		interviewGroup.POST("/:id/comment", r.commentHandler.Add, r.authMiddleware.RequireAuth)
		interviewGroup.POST("/:id/favorite", r.favoriteHandler.Toggle, r.authMiddleware.RequireAuth)
	}

	// Identity and session routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.GET("/sign_in", r.userHandler.SignInForm)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.POST("/logout", r.userHandler.Logout, r.authMiddleware.RequireAuth)
	}

	// Premium purchase pages
	pageGroup := e.Group("/pages", r.authMiddleware.RequireAuth)
	{
		pageGroup.GET("/payment", r.pageHandler.Payment)
		pageGroup.POST("/paid", r.pageHandler.Paid)
	}
}
