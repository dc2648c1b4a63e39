package finance

import (
	"strings"
	"time"

	"github.com/moneydiary/backend/internal/domain/entity"
)

// TypeFilter selects transactions by type.
type TypeFilter string

const (
	TypeFilterAll     TypeFilter = "all"
	TypeFilterIncome  TypeFilter = "income"
	TypeFilterExpense TypeFilter = "expense"
)

// DefaultPageSize is used when a caller does not specify a page size.
const DefaultPageSize = 10

// Filter describes the three independent transaction filters. All zero
// values are no-ops: an empty search matches everything, an empty or "all"
// type filter matches everything, and nil date bounds never exclude.
type Filter struct {
	Search string
	Type   TypeFilter
	From   *time.Time
	To     *time.Time
}

// Matches reports whether a transaction passes all three filters. Search
// matches case-insensitively against the description OR the category name;
// the three filters combine conjunctively.
func (f Filter) Matches(t *entity.Transaction) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Description), needle) &&
			!strings.Contains(strings.ToLower(t.CategoryName), needle) {
			return false
		}
	}

	switch f.Type {
	case "", TypeFilterAll:
	case TypeFilterIncome:
		if t.Type != entity.TransactionTypeIncome {
			return false
		}
	case TypeFilterExpense:
		if t.Type != entity.TransactionTypeExpense {
			return false
		}
	default:
		return false
	}

	if f.From != nil && dateOnly(t.Date).Before(dateOnly(*f.From)) {
		return false
	}
	if f.To != nil && dateOnly(t.Date).After(dateOnly(*f.To)) {
		return false
	}

	return true
}

// FilterTransactions returns the transactions passing the filter, preserving
// input order.
func FilterTransactions(transactions []entity.Transaction, f Filter) []entity.Transaction {
	result := make([]entity.Transaction, 0, len(transactions))
	for i := range transactions {
		if f.Matches(&transactions[i]) {
			result = append(result, transactions[i])
		}
	}
	return result
}

// ExcludeTransferLegs returns the snapshot without transfer legs, preserving
// input order. Callers that report income and spending activity use this so
// transfer pairs do not show up as both an expense and an income.
func ExcludeTransferLegs(transactions []entity.Transaction) []entity.Transaction {
	result := make([]entity.Transaction, 0, len(transactions))
	for i := range transactions {
		if transactions[i].IsTransferLeg() {
			continue
		}
		result = append(result, transactions[i])
	}
	return result
}

// Page is one page of a transaction list.
type Page struct {
	Items      []entity.Transaction
	PageNumber int
	TotalCount int
	TotalPages int
}

// Paginate slices the list into the requested page. The page number is
// clamped to [1, totalPages]; an empty list yields a single empty page. A
// non-positive pageSize falls back to DefaultPageSize.
func Paginate(transactions []entity.Transaction, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(transactions)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      transactions[start:end],
		PageNumber: page,
		TotalCount: total,
		TotalPages: totalPages,
	}
}

// DateGroup is a set of transactions sharing a calendar date.
type DateGroup struct {
	Date         time.Time
	Transactions []entity.Transaction
}

// GroupByDate groups transactions by calendar date for display. Dates appear
// in the order they are first encountered, and transactions within a group
// keep their relative input order.
func GroupByDate(transactions []entity.Transaction) []DateGroup {
	indexByDate := make(map[time.Time]int)
	groups := make([]DateGroup, 0)

	for i := range transactions {
		day := dateOnly(transactions[i].Date)
		idx, ok := indexByDate[day]
		if !ok {
			idx = len(groups)
			indexByDate[day] = idx
			groups = append(groups, DateGroup{Date: day})
		}
		groups[idx].Transactions = append(groups[idx].Transactions, transactions[i])
	}

	return groups
}

// dateOnly strips the time component, keeping the calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
