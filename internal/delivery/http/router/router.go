// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookz/config"
	"bookz/internal/delivery/http/middleware"
	"bookz/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	UserHandler         *handler.UserHandler
	AuthorHandler       *handler.AuthorHandler
	BookHandler         *handler.BookHandler
	SubscriptionHandler *handler.SubscriptionHandler
	NotificationHandler *handler.NotificationHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	userHandler         *handler.UserHandler
	authorHandler       *handler.AuthorHandler
	bookHandler         *handler.BookHandler
	subscriptionHandler *handler.SubscriptionHandler
	notificationHandler *handler.NotificationHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		userHandler:         params.UserHandler,
		authorHandler:       params.AuthorHandler,
		bookHandler:         params.BookHandler,
		subscriptionHandler: params.SubscriptionHandler,
		notificationHandler: params.NotificationHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/phone", r.userHandler.UpdatePhone)
		userGroup.GET("/subscriptions", r.subscriptionHandler.ListMine)
	}

	// Author catalog. Reads are public; writes require an account, deletion
	// is admin-only because it cascades subscriptions.
	authorGroup := e.Group("/authors")
	{
		authorGroup.GET("", r.authorHandler.List)
		authorGroup.GET("/top", r.authorHandler.TopByYear)
		authorGroup.GET("/:id", r.authorHandler.Get)
		authorGroup.POST("", r.authorHandler.Create, r.authMiddleware.Authenticate)
		authorGroup.PUT("/:id", r.authorHandler.Update, r.authMiddleware.Authenticate)
		authorGroup.DELETE("/:id", r.authorHandler.Delete, r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin())

		// Subscription endpoints hang off the author they target. Subscribe
		// and status work for both guests and account holders.
		authorGroup.POST("/:id/subscribe", r.subscriptionHandler.Subscribe, r.authMiddleware.AuthenticateOptional)
		authorGroup.GET("/:id/subscription-status", r.subscriptionHandler.Status, r.authMiddleware.AuthenticateOptional)
		authorGroup.GET("/:id/subscription-qr", r.subscriptionHandler.GenerateQR)
	}

	// Book catalog. Reads are public; creation requires an account and
	// triggers the subscriber notification fan-out.
	bookGroup := e.Group("/books")
	{
		bookGroup.GET("", r.bookHandler.List)
		bookGroup.GET("/:id", r.bookHandler.Get)
		bookGroup.POST("", r.bookHandler.Create, r.authMiddleware.Authenticate)
		bookGroup.PUT("/:id", r.bookHandler.Update, r.authMiddleware.Authenticate)
		bookGroup.DELETE("/:id", r.bookHandler.Delete, r.authMiddleware.Authenticate)
	}

	// Subscription management
	subscriptionGroup := e.Group("/subscriptions")
	subscriptionGroup.Use(r.authMiddleware.Authenticate)
	{
		subscriptionGroup.POST("/qr", r.subscriptionHandler.SubscribeFromQR)
		subscriptionGroup.DELETE("/:id", r.subscriptionHandler.Unsubscribe)
	}

	// Admin notification operations
	adminGroup := e.Group("/admin/notifications")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin())
	{
		adminGroup.POST("/books/:id", r.notificationHandler.NotifyBook)
		adminGroup.POST("/recent", r.notificationHandler.NotifyRecent)
		adminGroup.POST("/test", r.notificationHandler.SendTest)
		adminGroup.GET("/balance", r.notificationHandler.Balance)
		adminGroup.GET("/info", r.notificationHandler.AccountInfo)
	}

	// Test routes for middleware validation, disabled outside development
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
