// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

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
	"github.com/moneydiary/backend/internal/integration/entrypoint/controller"
	"github.com/moneydiary/backend/internal/integration/entrypoint/middleware"
	"github.com/moneydiary/backend/internal/integration/persistence"
	"github.com/moneydiary/backend/internal/integration/persistence/model"
	"github.com/moneydiary/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	accessToken       string
	refreshToken      string
	resetToken        string
	expiredToken      string
	currentUserID     uuid.UUID
	currentCategoryID uuid.UUID
	currentAccountID  uuid.UUID
	secondAccountID   uuid.UUID
	accountTypeID     uuid.UUID
	lastTransactionID uuid.UUID
}

type response struct {
	status  int
	body    any
	rawBody string
	headers http.Header
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("moneydiary", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"categories":            &model.CategoryModel{},
			"account_types":         &model.AccountTypeModel{},
			"accounts":              &model.AccountModel{},
			"transactions":          &model.TransactionModel{},
			"email_queue":           &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Finance setup steps
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^the system account type "([^"]*)" is selected$`, test.theSystemAccountTypeIsSelected)
	ctx.Given(`^an account exists with name "([^"]*)" and balance "([^"]*)"$`, test.anAccountExistsWithNameAndBalance)
	ctx.Given(`^a second account exists with name "([^"]*)" and balance "([^"]*)"$`, test.aSecondAccountExistsWithNameAndBalance)
	ctx.Given(`^a transaction exists with description "([^"]*)" type "([^"]*)" and amount "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^a transaction exists with description "([^"]*)" type "([^"]*)" amount "([^"]*)" and date "([^"]*)"$`, test.aTransactionExistsOnDate)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response body should contain the text "([^"]*)"$`, test.theResponseBodyShouldContainTheText)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.currentUserID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.currentAccountID = uuid.Nil
	t.secondAccountID = uuid.Nil
	t.accountTypeID = uuid.Nil
	t.lastTransactionID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
		// Default categories and system account types come back after every reset.
		_ = persistence.Seed(t.db.DbConn)
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			accountTypeRepo := persistence.NewAccountTypeRepository(testDB.DbConn)
			accountRepo := persistence.NewAccountRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute, 7*24*time.Hour, tokenRepo)
			resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
			emailService := email.NewService(emailQueueRepo)

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, "http://localhost:5173")
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
				return testDB != nil && testDB.DbConn != nil
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
			loginRateLimiter := middleware.NewRateLimiter(mock.NewRedis())
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
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		Currency:     "INR",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	accessTokenString, err := t.signToken("access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshTokenString, err := t.signToken("refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) signToken(tokenType string, now time.Time, validity time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(validity)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "moneydiary",
		"sub":        t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

// aCategoryExistsWithNameAndType creates a user-owned category.
func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		UserID:    t.currentUserID,
		Name:      name,
		Type:      categoryType,
		Color:     "#6366F1",
		IsDefault: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(categoryModel)
	return result.Error
}

func (t *testContext) theSystemAccountTypeIsSelected(name string) error {
	var accountType model.AccountTypeModel
	if err := t.db.DbConn.Where("name = ? AND is_system = ?", name, true).First(&accountType).Error; err != nil {
		return fmt.Errorf("seeded account type %q not found: %w", name, err)
	}
	t.accountTypeID = accountType.ID
	return nil
}

// anAccountExistsWithNameAndBalance creates an account backed by the seeded
// Savings Account system type.
func (t *testContext) anAccountExistsWithNameAndBalance(name, balance string) error {
	accountID, err := t.createAccount(name, balance)
	if err != nil {
		return err
	}
	t.currentAccountID = accountID
	return nil
}

func (t *testContext) aSecondAccountExistsWithNameAndBalance(name, balance string) error {
	accountID, err := t.createAccount(name, balance)
	if err != nil {
		return err
	}
	t.secondAccountID = accountID
	return nil
}

func (t *testContext) createAccount(name, balance string) (uuid.UUID, error) {
	var accountType model.AccountTypeModel
	if err := t.db.DbConn.Where("name = ? AND is_system = ?", "Savings Account", true).First(&accountType).Error; err != nil {
		return uuid.Nil, fmt.Errorf("seeded account type not found: %w", err)
	}

	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid balance %q: %w", balance, err)
	}

	accountID := uuid.New()
	now := time.Now().UTC()
	accountModel := &model.AccountModel{
		ID:             accountID,
		UserID:         t.currentUserID,
		AccountTypeID:  accountType.ID,
		Name:           name,
		Balance:        amount,
		InitialBalance: amount,
		Currency:       "INR",
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := t.db.DbConn.Create(accountModel).Error; err != nil {
		return uuid.Nil, err
	}
	return accountID, nil
}

func (t *testContext) aTransactionExists(description, transactionType, amount string) error {
	return t.aTransactionExistsOnDate(description, transactionType, amount, time.Now().UTC().Format("2006-01-02"))
}

func (t *testContext) aTransactionExistsOnDate(description, transactionType, amount, date string) error {
	if t.currentCategoryID == uuid.Nil {
		if err := t.aCategoryExistsWithNameAndType("Misc "+transactionType, transactionType); err != nil {
			return err
		}
	}
	if t.currentAccountID == uuid.Nil {
		if err := t.anAccountExistsWithNameAndBalance("Main Account", "1000.00"); err != nil {
			return err
		}
	}

	var categoryModel model.CategoryModel
	if err := t.db.DbConn.Where("id = ?", t.currentCategoryID).First(&categoryModel).Error; err != nil {
		return fmt.Errorf("category not found: %w", err)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	transactionID := uuid.New()
	t.lastTransactionID = transactionID

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:           transactionID,
		UserID:       t.currentUserID,
		AccountID:    t.currentAccountID,
		CategoryID:   categoryModel.ID,
		CategoryName: categoryModel.Name,
		Type:         transactionType,
		Description:  description,
		Amount:       value,
		Date:         day,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := t.db.DbConn.Create(transactionModel)
	return result.Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{account_id}}", t.currentAccountID.String())
	content = strings.ReplaceAll(content, "{{second_account_id}}", t.secondAccountID.String())
	content = strings.ReplaceAll(content, "{{account_type_id}}", t.accountTypeID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		rawBody: string(bodyBytes),
		headers: resp.Header,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture IDs from create responses for later placeholder use
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				if _, hasAmount := responseBody["amount"]; hasAmount {
					t.lastTransactionID = id
				} else if _, hasBalance := responseBody["balance"]; hasBalance {
					t.currentAccountID = id
				} else if _, hasColor := responseBody["color"]; hasColor {
					t.currentCategoryID = id
				} else if _, hasRole := responseBody["role"]; hasRole {
					t.accountTypeID = id
				}
			}
		}

		// Transfer responses expose the out leg under a nested key.
		if out, ok := responseBody["out_transaction"].(map[string]any); ok {
			if idStr, ok := out["id"].(string); ok {
				if id, err := uuid.Parse(idStr); err == nil {
					t.lastTransactionID = id
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseBodyShouldContainTheText(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(t.response.rawBody, expected) {
		return fmt.Errorf("response body does not contain %q: %s", expected, t.response.rawBody)
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	value := t.response.headers.Get(header)
	if !strings.Contains(value, expected) {
		return fmt.Errorf("header %q is %q, expected it to contain %q", header, value, expected)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
