package finance

import (
	"testing"
	"time"

	"github.com/moneydiary/backend/internal/domain/entity"
)

func sampleTransactions() []entity.Transaction {
	return []entity.Transaction{
		txn(1200, entity.TransactionTypeExpense, "Rent", "monthly rent", "2024-03-05"),
		txn(250, entity.TransactionTypeExpense, "Food", "Coffee with friends", "2024-03-04"),
		txn(5000, entity.TransactionTypeIncome, "Salary", "march salary", "2024-03-01"),
		txn(80, entity.TransactionTypeExpense, "Food", "groceries", "2024-02-20"),
	}
}

func TestFilterTransactions(t *testing.T) {
	ts := sampleTransactions()

	t.Run("empty filter returns all in order", func(t *testing.T) {
		got := FilterTransactions(ts, Filter{Search: "", Type: TypeFilterAll})
		if len(got) != len(ts) {
			t.Fatalf("expected %d transactions, got %d", len(ts), len(got))
		}
		for i := range got {
			if got[i].ID != ts[i].ID {
				t.Errorf("order changed at index %d", i)
			}
		}
	})

	t.Run("search is case-insensitive on description", func(t *testing.T) {
		got := FilterTransactions(ts, Filter{Search: "coffee"})
		if len(got) != 1 || got[0].Description != "Coffee with friends" {
			t.Errorf("expected the coffee transaction, got %v", got)
		}
	})

	t.Run("search matches category name", func(t *testing.T) {
		got := FilterTransactions(ts, Filter{Search: "food"})
		if len(got) != 2 {
			t.Errorf("expected 2 Food transactions, got %d", len(got))
		}
	})

	t.Run("filters combine conjunctively", func(t *testing.T) {
		// "food" matches two transactions by category, but the income filter
		// excludes both.
		got := FilterTransactions(ts, Filter{Search: "food", Type: TypeFilterIncome})
		if len(got) != 0 {
			t.Errorf("expected no matches, got %d", len(got))
		}
	})

	t.Run("type filter", func(t *testing.T) {
		got := FilterTransactions(ts, Filter{Type: TypeFilterIncome})
		if len(got) != 1 || got[0].Type != entity.TransactionTypeIncome {
			t.Errorf("expected only the income transaction, got %v", got)
		}
	})

	t.Run("date range bounds are inclusive", func(t *testing.T) {
		from, _ := time.Parse("2006-01-02", "2024-03-01")
		to, _ := time.Parse("2006-01-02", "2024-03-04")
		got := FilterTransactions(ts, Filter{From: &from, To: &to})
		if len(got) != 2 {
			t.Fatalf("expected 2 transactions in range, got %d", len(got))
		}
	})

	t.Run("unset bounds never exclude", func(t *testing.T) {
		from, _ := time.Parse("2006-01-02", "2024-03-01")
		got := FilterTransactions(ts, Filter{From: &from})
		if len(got) != 3 {
			t.Errorf("expected 3 transactions on or after 2024-03-01, got %d", len(got))
		}
	})

	t.Run("result never exceeds input", func(t *testing.T) {
		got := FilterTransactions(ts, Filter{Search: "coffee"})
		if len(got) > len(ts) {
			t.Errorf("filter grew the list: %d > %d", len(got), len(ts))
		}
	})
}

func TestExcludeTransferLegs(t *testing.T) {
	ts := sampleTransactions()
	out, in := transferPair(1000, "2024-03-02")
	mixed := []entity.Transaction{ts[0], out, ts[1], in, ts[2]}

	got := ExcludeTransferLegs(mixed)

	if len(got) != 3 {
		t.Fatalf("expected 3 transactions after exclusion, got %d", len(got))
	}
	for _, tx := range got {
		if tx.IsTransferLeg() {
			t.Fatalf("transfer leg %s survived exclusion", tx.ID)
		}
	}
	// Surviving transactions keep their relative order.
	if got[0].ID != ts[0].ID || got[1].ID != ts[1].ID || got[2].ID != ts[2].ID {
		t.Errorf("order changed: %v", got)
	}
}

func TestPaginate(t *testing.T) {
	ts := make([]entity.Transaction, 0, 25)
	for i := 0; i < 25; i++ {
		ts = append(ts, txn(int64(i+1), entity.TransactionTypeExpense, "Food", "item", "2024-01-01"))
	}

	t.Run("first page holds min(size, total)", func(t *testing.T) {
		page := Paginate(ts, 1, 10)
		if len(page.Items) != 10 {
			t.Errorf("expected 10 items, got %d", len(page.Items))
		}
		if page.TotalCount != 25 || page.TotalPages != 3 {
			t.Errorf("expected total 25 over 3 pages, got %d over %d", page.TotalCount, page.TotalPages)
		}
	})

	t.Run("short list fits one page", func(t *testing.T) {
		page := Paginate(ts[:4], 1, 10)
		if len(page.Items) != 4 {
			t.Errorf("expected 4 items, got %d", len(page.Items))
		}
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		page := Paginate(ts, 3, 10)
		if len(page.Items) != 5 {
			t.Errorf("expected 5 items on last page, got %d", len(page.Items))
		}
	})

	t.Run("page beyond total clamps to last page", func(t *testing.T) {
		page := Paginate(ts, 99, 10)
		if page.PageNumber != 3 {
			t.Errorf("expected clamp to page 3, got %d", page.PageNumber)
		}
		if len(page.Items) != 5 {
			t.Errorf("expected last page items, got %d", len(page.Items))
		}
	})

	t.Run("page below one clamps to first page", func(t *testing.T) {
		page := Paginate(ts, 0, 10)
		if page.PageNumber != 1 {
			t.Errorf("expected clamp to page 1, got %d", page.PageNumber)
		}
	})

	t.Run("empty list yields one empty page", func(t *testing.T) {
		page := Paginate(nil, 1, 10)
		if len(page.Items) != 0 || page.TotalPages != 1 || page.TotalCount != 0 {
			t.Errorf("unexpected empty page: %+v", page)
		}
	})

	t.Run("order is preserved", func(t *testing.T) {
		page := Paginate(ts, 2, 10)
		for i, item := range page.Items {
			if item.ID != ts[10+i].ID {
				t.Fatalf("order changed at offset %d", i)
			}
		}
	})
}

func TestGroupByDate(t *testing.T) {
	ts := []entity.Transaction{
		txn(100, entity.TransactionTypeExpense, "Food", "dinner", "2024-03-05"),
		txn(200, entity.TransactionTypeExpense, "Food", "lunch", "2024-03-05"),
		txn(300, entity.TransactionTypeExpense, "Transport", "fuel", "2024-03-04"),
		txn(400, entity.TransactionTypeExpense, "Food", "snack", "2024-03-05"),
	}

	groups := GroupByDate(ts)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// Dates keep first-encounter order.
	if !groups[0].Date.After(groups[1].Date) {
		t.Errorf("expected 2024-03-05 group first, got %s", groups[0].Date)
	}
	if len(groups[0].Transactions) != 3 {
		t.Errorf("expected 3 transactions on 2024-03-05, got %d", len(groups[0].Transactions))
	}
	// Relative order within a group is preserved.
	if groups[0].Transactions[0].Description != "dinner" || groups[0].Transactions[2].Description != "snack" {
		t.Errorf("group order changed: %v", groups[0].Transactions)
	}
}
