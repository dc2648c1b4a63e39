// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/moneydiary/backend/internal/integration/entrypoint/controller"
	"github.com/moneydiary/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	categoryController    *controller.CategoryController
	accountTypeController *controller.AccountTypeController
	accountController     *controller.AccountController
	transactionController *controller.TransactionController
	transferController    *controller.TransferController
	reportController      *controller.ReportController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	accountTypeController *controller.AccountTypeController,
	accountController *controller.AccountController,
	transactionController *controller.TransactionController,
	transferController *controller.TransferController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		categoryController:    categoryController,
		accountTypeController: accountTypeController,
		accountController:     accountController,
		transactionController: transactionController,
		transferController:    transferController,
		reportController:      reportController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		if r.accountTypeController != nil && r.authMiddleware != nil {
			accountTypes := v1.Group("/account-types")
			accountTypes.Use(r.authMiddleware.Authenticate())
			{
				accountTypes.GET("", r.accountTypeController.List)
				accountTypes.POST("", r.accountTypeController.Create)
				accountTypes.DELETE("/:id", r.accountTypeController.Delete)
			}
		}

		if r.accountController != nil && r.authMiddleware != nil {
			accounts := v1.Group("/accounts")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
				accounts.PATCH("/:id", r.accountController.Update)
				accounts.DELETE("/:id", r.accountController.Delete)
			}
		}

		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/export", r.transactionController.Export)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.transferController != nil && r.authMiddleware != nil {
			transfers := v1.Group("/transfers")
			transfers.Use(r.authMiddleware.Authenticate())
			{
				transfers.POST("", r.transferController.Create)
			}
		}

		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/summary", r.reportController.Summary)
				reports.GET("/net-worth", r.reportController.NetWorth)
				reports.GET("/trends", r.reportController.Trends)
				reports.GET("/insights", r.reportController.Insights)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
