// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/moneydiary/backend/config"
	"github.com/moneydiary/backend/internal/application/adapter"
	"github.com/moneydiary/backend/internal/application/usecase/account"
	"github.com/moneydiary/backend/internal/application/usecase/accounttype"
	"github.com/moneydiary/backend/internal/application/usecase/auth"
	"github.com/moneydiary/backend/internal/application/usecase/category"
	"github.com/moneydiary/backend/internal/application/usecase/report"
	"github.com/moneydiary/backend/internal/application/usecase/transaction"
	"github.com/moneydiary/backend/internal/application/usecase/transfer"
	"github.com/moneydiary/backend/internal/infra/server/router"
	"github.com/moneydiary/backend/internal/integration/adapters"
	"github.com/moneydiary/backend/internal/integration/email"
	"github.com/moneydiary/backend/internal/integration/email/templates"
	"github.com/moneydiary/backend/internal/integration/entrypoint/controller"
	"github.com/moneydiary/backend/internal/integration/entrypoint/middleware"
	"github.com/moneydiary/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	accountTypeRepo := persistence.NewAccountTypeRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	emailService := email.NewService(emailQueueRepo)

	// Email delivery falls back to the in-memory mock when no API key is set
	// so development environments queue mail without sending anything.
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		emailSender = email.NewMockEmailSender()
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating email renderer: %w", err)
	}

	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)

	// Create account type use cases
	listAccountTypesUseCase := accounttype.NewListAccountTypesUseCase(accountTypeRepo)
	createAccountTypeUseCase := accounttype.NewCreateAccountTypeUseCase(accountTypeRepo)
	deleteAccountTypeUseCase := accounttype.NewDeleteAccountTypeUseCase(accountTypeRepo, accountRepo)

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo, accountTypeRepo, userRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, accountRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, accountRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, accountRepo)
	exportTransactionsUseCase := transaction.NewExportTransactionsUseCase(transactionRepo)

	// Create transfer use case
	createTransferUseCase := transfer.NewCreateTransferUseCase(transactionRepo, accountRepo, categoryRepo)

	// Create report use cases
	getSummaryUseCase := report.NewGetSummaryUseCase(transactionRepo)
	getNetWorthUseCase := report.NewGetNetWorthUseCase(accountRepo)
	getTrendsUseCase := report.NewGetTrendsUseCase(transactionRepo)
	getInsightsUseCase := report.NewGetInsightsUseCase(transactionRepo, accountRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	accountTypeController := controller.NewAccountTypeController(
		listAccountTypesUseCase,
		createAccountTypeUseCase,
		deleteAccountTypeUseCase,
	)

	accountController := controller.NewAccountController(
		listAccountsUseCase,
		createAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		exportTransactionsUseCase,
	)

	transferController := controller.NewTransferController(createTransferUseCase)

	reportController := controller.NewReportController(
		getSummaryUseCase,
		getNetWorthUseCase,
		getTrendsUseCase,
		getInsightsUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		accountTypeController,
		accountController,
		transactionController,
		transferController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
