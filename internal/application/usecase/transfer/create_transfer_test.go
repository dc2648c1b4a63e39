// Package transfer contains the account to account transfer use case.
package transfer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/domain/entity"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
	pairErr      error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.transactions[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) CreatePair(_ context.Context, first, second *entity.Transaction) error {
	if r.pairErr != nil {
		return r.pairErr
	}
	r.transactions[first.ID] = first
	r.transactions[second.ID] = second
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return t, nil
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, t *entity.Transaction) error {
	r.transactions[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) CountByCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, t := range r.transactions {
		if t.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *fakeTransactionRepo) CountByAccount(_ context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	for _, t := range r.transactions {
		if t.AccountID == accountID {
			count++
		}
	}
	return count, nil
}

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
}

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
	for _, a := range accounts {
		r.accounts[a.ID] = a
	}
	return r
}

func (r *fakeAccountRepo) Create(_ context.Context, a *entity.Account) error {
	r.accounts[a.ID] = a
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return a, nil
}

func (r *fakeAccountRepo) FindActiveByUser(_ context.Context, userID uuid.UUID) ([]entity.Account, error) {
	var out []entity.Account
	for _, a := range r.accounts {
		if a.UserID == userID && a.IsActive {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) Update(_ context.Context, a *entity.Account) error {
	r.accounts[a.ID] = a
	return nil
}

func (r *fakeAccountRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	if a, ok := r.accounts[id]; ok {
		a.IsActive = false
	}
	return nil
}

func (r *fakeAccountRepo) CountByAccountType(_ context.Context, accountTypeID uuid.UUID) (int64, error) {
	var count int64
	for _, a := range r.accounts {
		if a.AccountTypeID == accountTypeID {
			count++
		}
	}
	return count, nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.categories = append(r.categories, c)
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeCategoryRepo) FindVisibleToUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.VisibleTo(userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) ExistsByNameForUser(_ context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType) (bool, error) {
	for _, c := range r.categories {
		if c.VisibleTo(userID) && c.Name == name && c.Type == categoryType {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	for i, existing := range r.categories {
		if existing.ID == c.ID {
			r.categories[i] = c
		}
	}
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func defaultCategory(name string, categoryType entity.CategoryType) *entity.Category {
	c := entity.NewCategory(uuid.Nil, name, categoryType, entity.DefaultCategoryColor)
	c.IsDefault = true
	return c
}

func seedTransferCategories() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: []*entity.Category{
		defaultCategory(entity.TransferOutCategoryName, entity.CategoryTypeExpense),
		defaultCategory(entity.TransferInCategoryName, entity.CategoryTypeIncome),
	}}
}

func TestCreateTransferUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	newAccounts := func() (*entity.Account, *entity.Account) {
		from := entity.NewAccount(userID, uuid.New(), "Checking", decimal.NewFromInt(1000), "INR")
		to := entity.NewAccount(userID, uuid.New(), "Savings", decimal.NewFromInt(5000), "INR")
		return from, to
	}

	t.Run("creates both legs and updates both balances", func(t *testing.T) {
		from, to := newAccounts()
		transactionRepo := newFakeTransactionRepo()
		useCase := NewCreateTransferUseCase(transactionRepo, newFakeAccountRepo(from, to), seedTransferCategories())

		output, err := useCase.Execute(context.Background(), CreateTransferInput{
			UserID:        userID,
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(300),
			Description:   "Monthly savings",
			Date:          date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(transactionRepo.transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(transactionRepo.transactions))
		}
		if output.OutLeg.Type != entity.TransactionTypeExpense {
			t.Errorf("expected out leg type expense, got %s", output.OutLeg.Type)
		}
		if output.InLeg.Type != entity.TransactionTypeIncome {
			t.Errorf("expected in leg type income, got %s", output.InLeg.Type)
		}
		if !from.Balance.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected source balance 700, got %s", from.Balance)
		}
		if !to.Balance.Equal(decimal.NewFromInt(5300)) {
			t.Errorf("expected destination balance 5300, got %s", to.Balance)
		}
	})

	t.Run("both legs share a transfer group id", func(t *testing.T) {
		from, to := newAccounts()
		useCase := NewCreateTransferUseCase(newFakeTransactionRepo(), newFakeAccountRepo(from, to), seedTransferCategories())

		output, err := useCase.Execute(context.Background(), CreateTransferInput{
			UserID:        userID,
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(50),
			Date:          date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.OutLeg.TransferGroupID == nil || output.InLeg.TransferGroupID == nil {
			t.Fatal("expected both legs to carry a transfer group id")
		}
		if *output.OutLeg.TransferGroupID != *output.InLeg.TransferGroupID {
			t.Error("expected both legs to share the same transfer group id")
		}
		if *output.OutLeg.TransferGroupID != output.TransferGroupID {
			t.Error("expected output group id to match the legs")
		}
	})

	t.Run("defaults the description when blank", func(t *testing.T) {
		from, to := newAccounts()
		useCase := NewCreateTransferUseCase(newFakeTransactionRepo(), newFakeAccountRepo(from, to), seedTransferCategories())

		output, err := useCase.Execute(context.Background(), CreateTransferInput{
			UserID:        userID,
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(10),
			Date:          date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := "Transfer from Checking to Savings"
		if output.OutLeg.Description != expected {
			t.Errorf("expected description %q, got %q", expected, output.OutLeg.Description)
		}
	})

	t.Run("rejects a transfer to the same account", func(t *testing.T) {
		from, to := newAccounts()
		useCase := NewCreateTransferUseCase(newFakeTransactionRepo(), newFakeAccountRepo(from, to), seedTransferCategories())

		_, err := useCase.Execute(context.Background(), CreateTransferInput{
			UserID:        userID,
			FromAccountID: from.ID,
			ToAccountID:   from.ID,
			Amount:        decimal.NewFromInt(100),
			Date:          date,
		})

		var accountErr *domainerror.AccountError
		if !errors.As(err, &accountErr) {
			t.Fatalf("expected AccountError, got %v", err)
		}
		if accountErr.Code != domainerror.ErrCodeSameTransferAccounts {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeSameTransferAccounts, accountErr.Code)
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		from, to := newAccounts()
		useCase := NewCreateTransferUseCase(newFakeTransactionRepo(), newFakeAccountRepo(from, to), seedTransferCategories())

		_, err := useCase.Execute(context.Background(), CreateTransferInput{
			UserID:        userID,
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.Zero,
			Date:          date,
		})

		var accountErr *domainerror.AccountError
		if !errors.As(err, &accountErr) {
			t.Fatalf("expected AccountError, got %v", err)
		}
		if accountErr.Code != domainerror.ErrCodeInvalidTransferAmount {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTransferAmount, accountErr.Code)
		}
	})

	t.Run("rejects an unknown source account", func(t *testing.T) {
		from, to := newAccounts()
		useCase := NewCreateTransferUseCase(newFakeTransactionRepo(), newFakeAccountRepo(to), seedTransferCategories())

		_, err := useCase.Execute(context.Background(), CreateTransferInput{
			UserID:        userID,
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(100),
			Date:          date,
		})

		var accountErr *domainerror.AccountError
		if !errors.As(err, &accountErr) {
			t.Fatalf("expected AccountError, got %v", err)
		}
		if accountErr.Code != domainerror.ErrCodeAccountNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeAccountNotFound, accountErr.Code)
		}
	})

	t.Run("rejects an account owned by another user", func(t *testing.T) {
		from, to := newAccounts()
		from.UserID = uuid.New()
		useCase := NewCreateTransferUseCase(newFakeTransactionRepo(), newFakeAccountRepo(from, to), seedTransferCategories())

		_, err := useCase.Execute(context.Background(), CreateTransferInput{
			UserID:        userID,
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(100),
			Date:          date,
		})

		var accountErr *domainerror.AccountError
		if !errors.As(err, &accountErr) {
			t.Fatalf("expected AccountError, got %v", err)
		}
		if accountErr.Code != domainerror.ErrCodeNotAuthorizedAccount {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNotAuthorizedAccount, accountErr.Code)
		}
	})

	t.Run("rejects an inactive destination account", func(t *testing.T) {
		from, to := newAccounts()
		to.IsActive = false
		useCase := NewCreateTransferUseCase(newFakeTransactionRepo(), newFakeAccountRepo(from, to), seedTransferCategories())

		_, err := useCase.Execute(context.Background(), CreateTransferInput{
			UserID:        userID,
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(100),
			Date:          date,
		})

		var accountErr *domainerror.AccountError
		if !errors.As(err, &accountErr) {
			t.Fatalf("expected AccountError, got %v", err)
		}
		if accountErr.Code != domainerror.ErrCodeAccountInactive {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeAccountInactive, accountErr.Code)
		}
	})

	t.Run("fails when the transfer categories are missing", func(t *testing.T) {
		from, to := newAccounts()
		useCase := NewCreateTransferUseCase(newFakeTransactionRepo(), newFakeAccountRepo(from, to), &fakeCategoryRepo{})

		_, err := useCase.Execute(context.Background(), CreateTransferInput{
			UserID:        userID,
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(100),
			Date:          date,
		})
		if err == nil {
			t.Fatal("expected an error when transfer categories are not seeded")
		}
	})

	t.Run("does not touch balances when persisting the pair fails", func(t *testing.T) {
		from, to := newAccounts()
		transactionRepo := newFakeTransactionRepo()
		transactionRepo.pairErr = errors.New("db down")
		useCase := NewCreateTransferUseCase(transactionRepo, newFakeAccountRepo(from, to), seedTransferCategories())

		_, err := useCase.Execute(context.Background(), CreateTransferInput{
			UserID:        userID,
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        decimal.NewFromInt(100),
			Date:          date,
		})
		if err == nil {
			t.Fatal("expected an error when the pair cannot be persisted")
		}
		if !from.Balance.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected source balance untouched, got %s", from.Balance)
		}
	})
}
