package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/moneydiary/backend/internal/domain/entity"
	"github.com/moneydiary/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.CategoryModel{},
		&model.AccountTypeModel{},
		&model.AccountModel{},
		&model.TransactionModel{},
		&model.EmailQueueModel{},
	)
	if err != nil {
		t.Fatalf("migrating schema: %v", err)
	}
	return db
}

func seedTestAccountType(t *testing.T, db *gorm.DB, name string, category entity.AccountTypeCategory) *entity.AccountType {
	t.Helper()
	at := entity.NewAccountType(uuid.Nil, name, category, entity.AccountTypeRoleGeneral, true)
	at.IsSystem = true
	if err := NewAccountTypeRepository(db).Create(context.Background(), at); err != nil {
		t.Fatalf("seeding account type: %v", err)
	}
	return at
}

func testTransaction(userID, accountID uuid.UUID, txnType entity.TransactionType, amount float64, date time.Time) *entity.Transaction {
	now := time.Now().UTC()
	return &entity.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		AccountID:    accountID,
		CategoryID:   uuid.New(),
		CategoryName: "Groceries",
		Type:         txnType,
		Description:  "test",
		Amount:       decimal.NewFromFloat(amount),
		Date:         date,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	t.Run("create and find round trip", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		txn := testTransaction(userID, accountID, entity.TransactionTypeExpense, 85.40, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))

		if err := repo.Create(ctx, txn); err != nil {
			t.Fatalf("create: %v", err)
		}
		found, err := repo.FindByID(ctx, txn.ID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if !found.Amount.Equal(txn.Amount) || found.Type != txn.Type || found.CategoryName != txn.CategoryName {
			t.Errorf("round trip mismatch: got %+v", found)
		}
	})

	t.Run("find by user orders date desc then created desc", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		older := testTransaction(userID, accountID, entity.TransactionTypeExpense, 10, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
		newer := testTransaction(userID, accountID, entity.TransactionTypeExpense, 20, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))
		foreign := testTransaction(uuid.New(), accountID, entity.TransactionTypeExpense, 30, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC))
		for _, txn := range []*entity.Transaction{older, newer, foreign} {
			if err := repo.Create(ctx, txn); err != nil {
				t.Fatalf("create: %v", err)
			}
		}

		found, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("find by user: %v", err)
		}
		if len(found) != 2 {
			t.Fatalf("transactions = %d, want 2", len(found))
		}
		if found[0].ID != newer.ID || found[1].ID != older.ID {
			t.Error("transactions not ordered by date descending")
		}
	})

	t.Run("create pair persists both legs", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		groupID := uuid.New()

		out := testTransaction(userID, accountID, entity.TransactionTypeExpense, 300, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
		out.TransferGroupID = &groupID
		in := testTransaction(userID, uuid.New(), entity.TransactionTypeIncome, 300, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
		in.TransferGroupID = &groupID

		if err := repo.CreatePair(ctx, out, in); err != nil {
			t.Fatalf("create pair: %v", err)
		}
		found, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("find by user: %v", err)
		}
		if len(found) != 2 {
			t.Errorf("transactions = %d, want 2", len(found))
		}
	})

	t.Run("create pair rolls back when a leg fails", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		first := testTransaction(userID, accountID, entity.TransactionTypeExpense, 300, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
		second := testTransaction(userID, accountID, entity.TransactionTypeIncome, 300, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
		second.ID = first.ID // primary key collision

		if err := repo.CreatePair(ctx, first, second); err == nil {
			t.Fatal("expected pair insert to fail")
		}
		found, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("find by user: %v", err)
		}
		if len(found) != 0 {
			t.Errorf("transactions = %d, want 0 after rollback", len(found))
		}
	})

	t.Run("counts by category and account", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))
		txn := testTransaction(userID, accountID, entity.TransactionTypeExpense, 50, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
		if err := repo.Create(ctx, txn); err != nil {
			t.Fatalf("create: %v", err)
		}

		byCategory, err := repo.CountByCategory(ctx, txn.CategoryID)
		if err != nil || byCategory != 1 {
			t.Errorf("count by category = %d (%v), want 1", byCategory, err)
		}
		byAccount, err := repo.CountByAccount(ctx, accountID)
		if err != nil || byAccount != 1 {
			t.Errorf("count by account = %d (%v), want 1", byAccount, err)
		}
		if err := repo.Delete(ctx, txn.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		byAccount, _ = repo.CountByAccount(ctx, accountID)
		if byAccount != 0 {
			t.Errorf("count by account = %d after delete, want 0", byAccount)
		}
	})
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("visible set is defaults plus the user's own, defaults first", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))

		def := entity.NewCategory(uuid.Nil, "Groceries", entity.CategoryTypeExpense, "#F59E0B")
		def.IsDefault = true
		mine := entity.NewCategory(userID, "Board Games", entity.CategoryTypeExpense, "#6366F1")
		foreign := entity.NewCategory(uuid.New(), "Yachts", entity.CategoryTypeExpense, "#6366F1")
		for _, c := range []*entity.Category{mine, def, foreign} {
			if err := repo.Create(ctx, c); err != nil {
				t.Fatalf("create: %v", err)
			}
		}

		visible, err := repo.FindVisibleToUser(ctx, userID)
		if err != nil {
			t.Fatalf("find visible: %v", err)
		}
		if len(visible) != 2 {
			t.Fatalf("visible = %d, want 2", len(visible))
		}
		if !visible[0].IsDefault {
			t.Error("defaults should sort first")
		}
	})

	t.Run("name existence is case-insensitive and per type", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))
		if err := repo.Create(ctx, entity.NewCategory(userID, "Side Gig", entity.CategoryTypeIncome, "#22C55E")); err != nil {
			t.Fatalf("create: %v", err)
		}

		exists, err := repo.ExistsByNameForUser(ctx, userID, "side gig", entity.CategoryTypeIncome)
		if err != nil || !exists {
			t.Errorf("exists = %v (%v), want true for case-insensitive match", exists, err)
		}
		exists, err = repo.ExistsByNameForUser(ctx, userID, "Side Gig", entity.CategoryTypeExpense)
		if err != nil || exists {
			t.Errorf("exists = %v (%v), want false for other type", exists, err)
		}
	})
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("find resolves the account type", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAccountRepository(db)
		savings := seedTestAccountType(t, db, "Savings Account", entity.AccountTypeCategoryAsset)

		account := entity.NewAccount(userID, savings.ID, "Bank", decimal.NewFromInt(1000), "INR")
		if err := repo.Create(ctx, account); err != nil {
			t.Fatalf("create: %v", err)
		}

		found, err := repo.FindByID(ctx, account.ID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if found.AccountType == nil || found.AccountType.Name != "Savings Account" {
			t.Error("account type not preloaded")
		}
		if !found.Balance.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("balance = %s, want 1000", found.Balance)
		}
	})

	t.Run("deactivation hides the account from active listings", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAccountRepository(db)
		savings := seedTestAccountType(t, db, "Savings Account", entity.AccountTypeCategoryAsset)

		account := entity.NewAccount(userID, savings.ID, "Bank", decimal.NewFromInt(1000), "INR")
		if err := repo.Create(ctx, account); err != nil {
			t.Fatalf("create: %v", err)
		}

		if err := repo.Deactivate(ctx, account.ID); err != nil {
			t.Fatalf("deactivate: %v", err)
		}
		active, err := repo.FindActiveByUser(ctx, userID)
		if err != nil {
			t.Fatalf("find active: %v", err)
		}
		if len(active) != 0 {
			t.Errorf("active accounts = %d, want 0", len(active))
		}

		// The row itself survives for historical reports
		found, err := repo.FindByID(ctx, account.ID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if found.IsActive {
			t.Error("account should be inactive")
		}

		// Inactive accounts still hold their type reference
		count, err := repo.CountByAccountType(ctx, savings.ID)
		if err != nil || count != 1 {
			t.Errorf("count by type = %d (%v), want 1", count, err)
		}
	})
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	var categories, accountTypes int64
	db.Model(&model.CategoryModel{}).Count(&categories)
	db.Model(&model.AccountTypeModel{}).Count(&accountTypes)
	if categories == 0 || accountTypes == 0 {
		t.Fatalf("seed produced %d categories / %d account types", categories, accountTypes)
	}

	if err := Seed(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var categoriesAgain, accountTypesAgain int64
	db.Model(&model.CategoryModel{}).Count(&categoriesAgain)
	db.Model(&model.AccountTypeModel{}).Count(&accountTypesAgain)
	if categoriesAgain != categories || accountTypesAgain != accountTypes {
		t.Errorf("reseeding changed counts: %d->%d categories, %d->%d account types",
			categories, categoriesAgain, accountTypes, accountTypesAgain)
	}

	var transferOut int64
	db.Model(&model.CategoryModel{}).Where("name = ?", entity.TransferOutCategoryName).Count(&transferOut)
	if transferOut != 1 {
		t.Errorf("transfer out categories = %d, want exactly 1", transferOut)
	}
}
