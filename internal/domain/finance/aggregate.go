// Package finance implements pure financial aggregation, filtering and
// insight generation over in-memory snapshots of a user's transactions and
// accounts. Functions in this package never mutate their inputs, never
// perform I/O, and tolerate empty collections by returning zero-valued
// results. Accounts whose account type failed to resolve are treated as
// non-contributing rather than as errors.
package finance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/domain/entity"
)

// Balance returns the net balance of the snapshot: income minus expenses.
// Transfer legs move money between the user's own accounts and are not
// income or spending, so they are skipped here and in every aggregate below;
// they affect stored account balances only.
func Balance(transactions []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for i := range transactions {
		if transactions[i].IsTransferLeg() {
			continue
		}
		total = total.Add(transactions[i].SignedAmount())
	}
	return total
}

// Income returns the sum of income transaction amounts, excluding transfer
// legs.
func Income(transactions []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for i := range transactions {
		if transactions[i].IsTransferLeg() {
			continue
		}
		if transactions[i].Type == entity.TransactionTypeIncome {
			total = total.Add(transactions[i].Amount)
		}
	}
	return total
}

// Expenses returns the sum of expense transaction amounts, excluding
// transfer legs.
func Expenses(transactions []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for i := range transactions {
		if transactions[i].IsTransferLeg() {
			continue
		}
		if transactions[i].Type == entity.TransactionTypeExpense {
			total = total.Add(transactions[i].Amount)
		}
	}
	return total
}

// CategoryTotals returns expense amounts summed per category name. Income
// transactions and transfer legs are excluded. The sum of all values equals
// Expenses.
func CategoryTotals(transactions []entity.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for i := range transactions {
		t := &transactions[i]
		if t.IsTransferLeg() || t.Type != entity.TransactionTypeExpense {
			continue
		}
		totals[t.CategoryName] = totals[t.CategoryName].Add(t.Amount)
	}
	return totals
}

// CategoryTotal is one entry of a category spending breakdown.
type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
}

// SortedCategoryTotals returns the expense breakdown sorted by amount
// descending. Ties keep the order in which categories first appear in the
// snapshot.
func SortedCategoryTotals(transactions []entity.Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for i := range transactions {
		t := &transactions[i]
		if t.IsTransferLeg() || t.Type != entity.TransactionTypeExpense {
			continue
		}
		if _, seen := totals[t.CategoryName]; !seen {
			order = append(order, t.CategoryName)
		}
		totals[t.CategoryName] = totals[t.CategoryName].Add(t.Amount)
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		result = append(result, CategoryTotal{Name: name, Total: totals[name]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total.GreaterThan(result[j].Total)
	})
	return result
}

// NetWorth returns the sum of balances over accounts whose type contributes
// to net worth: assets add, liabilities subtract, equity and unresolved types
// are skipped.
func NetWorth(accounts []entity.Account) decimal.Decimal {
	total := decimal.Zero
	for i := range accounts {
		a := &accounts[i]
		if a.AccountType == nil || !a.AccountType.AffectsNetWorth {
			continue
		}
		switch a.AccountType.Category {
		case entity.AccountTypeCategoryAsset:
			total = total.Add(a.Balance)
		case entity.AccountTypeCategoryLiability:
			total = total.Sub(a.Balance)
		}
	}
	return total
}

// TotalAssets returns the sum of balances of asset-type accounts, regardless
// of whether their type contributes to net worth.
func TotalAssets(accounts []entity.Account) decimal.Decimal {
	return totalByCategory(accounts, entity.AccountTypeCategoryAsset)
}

// TotalLiabilities returns the sum of balances of liability-type accounts,
// regardless of whether their type contributes to net worth.
func TotalLiabilities(accounts []entity.Account) decimal.Decimal {
	return totalByCategory(accounts, entity.AccountTypeCategoryLiability)
}

func totalByCategory(accounts []entity.Account, category entity.AccountTypeCategory) decimal.Decimal {
	total := decimal.Zero
	for i := range accounts {
		a := &accounts[i]
		if a.AccountType == nil || a.AccountType.Category != category {
			continue
		}
		total = total.Add(a.Balance)
	}
	return total
}

// EmergencyFundBalance returns the sum of balances of liquid accounts, i.e.
// accounts whose type role is cash or emergency_fund.
func EmergencyFundBalance(accounts []entity.Account) decimal.Decimal {
	total := decimal.Zero
	for i := range accounts {
		a := &accounts[i]
		if a.AccountType == nil || !a.AccountType.IsLiquid() {
			continue
		}
		total = total.Add(a.Balance)
	}
	return total
}

// InvestmentBalance returns the sum of balances of accounts whose type role
// is investment.
func InvestmentBalance(accounts []entity.Account) decimal.Decimal {
	total := decimal.Zero
	for i := range accounts {
		a := &accounts[i]
		if a.AccountType == nil || a.AccountType.Role != entity.AccountTypeRoleInvestment {
			continue
		}
		total = total.Add(a.Balance)
	}
	return total
}

// DistinctAccountTypes counts the distinct resolved account types present in
// the snapshot.
func DistinctAccountTypes(accounts []entity.Account) int {
	seen := make(map[string]struct{})
	for i := range accounts {
		a := &accounts[i]
		if a.AccountType == nil {
			continue
		}
		seen[a.AccountTypeID.String()] = struct{}{}
	}
	return len(seen)
}
