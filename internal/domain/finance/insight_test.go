package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/domain/entity"
)

var insightNow = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func TestSavingsRateInsightBands(t *testing.T) {
	tests := []struct {
		rate int64
		want Severity
	}{
		{25, SeveritySuccess},
		{20, SeveritySuccess},
		{15, SeverityWarning},
		{10, SeverityWarning},
		{5, SeverityError},
		{0, SeverityError},
	}

	for _, tt := range tests {
		m := Metrics{SavingsRate: decimal.NewFromInt(tt.rate)}
		report := GenerateInsights(m, nil, insightNow)
		if got := report.Insights[0].Severity; got != tt.want {
			t.Errorf("savings rate %d: expected %s, got %s", tt.rate, tt.want, got)
		}
	}
}

func TestInsightOrderIsFixed(t *testing.T) {
	report := GenerateInsights(Metrics{}, nil, insightNow)

	wantTitles := []string{
		"Savings Rate",
		"Emergency Fund",
		"Debt Load",
		"Investment Allocation",
		"Diversification",
		"Net Worth",
	}

	if len(report.Insights) != len(wantTitles) {
		t.Fatalf("expected %d insights, got %d", len(wantTitles), len(report.Insights))
	}
	for i, want := range wantTitles {
		if report.Insights[i].Title != want {
			t.Errorf("position %d: expected %q, got %q", i, want, report.Insights[i].Title)
		}
	}
}

func TestDebtInsightPolarityInverted(t *testing.T) {
	tests := []struct {
		ratio int64
		want  Severity
	}{
		{10, SeveritySuccess},
		{30, SeveritySuccess},
		{45, SeverityWarning},
		{50, SeverityWarning},
		{70, SeverityError},
	}

	for _, tt := range tests {
		m := Metrics{DebtToAssetRatio: decimal.NewFromInt(tt.ratio)}
		report := GenerateInsights(m, nil, insightNow)
		if got := report.Insights[2].Severity; got != tt.want {
			t.Errorf("debt ratio %d: expected %s, got %s", tt.ratio, tt.want, got)
		}
	}
}

func TestInvestmentAndDiversificationBottomBandIsInfo(t *testing.T) {
	report := GenerateInsights(Metrics{}, nil, insightNow)

	if got := report.Insights[3].Severity; got != SeverityInfo {
		t.Errorf("expected investment bottom band info, got %s", got)
	}
	if got := report.Insights[4].Severity; got != SeverityInfo {
		t.Errorf("expected diversification bottom band info, got %s", got)
	}
}

func TestNetWorthInsightBands(t *testing.T) {
	tests := []struct {
		netWorth int64
		want     Severity
	}{
		{150000, SeveritySuccess},
		{100000, SeveritySuccess},
		{500, SeverityWarning},
		{0, SeverityWarning},
		{-100, SeverityError},
	}

	for _, tt := range tests {
		m := Metrics{NetWorth: decimal.NewFromInt(tt.netWorth)}
		report := GenerateInsights(m, nil, insightNow)
		last := report.Insights[len(report.Insights)-1]
		if last.Severity != tt.want {
			t.Errorf("net worth %d: expected %s, got %s", tt.netWorth, tt.want, last.Severity)
		}
	}
}

func TestLargeTransactionAlert(t *testing.T) {
	bigExpense := func(date string) entity.Transaction {
		return txn(6000, entity.TransactionTypeExpense, "Shopping", "big purchase", date)
	}

	t.Run("absent at or below the count threshold", func(t *testing.T) {
		ts := []entity.Transaction{
			bigExpense("2024-06-01"), bigExpense("2024-06-02"), bigExpense("2024-06-03"),
			bigExpense("2024-06-04"), bigExpense("2024-06-05"),
		}
		report := GenerateInsights(Metrics{}, ts, insightNow)
		for _, insight := range report.Insights {
			if insight.Title == "Large Transactions" {
				t.Fatal("expected no large-transaction alert with 5 matches")
			}
		}
	})

	t.Run("present above the count threshold", func(t *testing.T) {
		ts := []entity.Transaction{
			bigExpense("2024-06-01"), bigExpense("2024-06-02"), bigExpense("2024-06-03"),
			bigExpense("2024-06-04"), bigExpense("2024-06-05"), bigExpense("2024-06-06"),
		}
		report := GenerateInsights(Metrics{}, ts, insightNow)

		// Alert sits between diversification and net worth.
		alert := report.Insights[len(report.Insights)-2]
		if alert.Title != "Large Transactions" || alert.Severity != SeverityWarning {
			t.Fatalf("expected large-transaction warning, got %+v", alert)
		}
		if !alert.Metric.Equal(decimal.NewFromInt(6)) {
			t.Errorf("expected metric 6, got %s", alert.Metric)
		}
	})

	t.Run("transactions outside the trailing window are ignored", func(t *testing.T) {
		ts := []entity.Transaction{
			bigExpense("2024-04-01"), bigExpense("2024-04-02"), bigExpense("2024-04-03"),
			bigExpense("2024-04-04"), bigExpense("2024-04-05"), bigExpense("2024-04-06"),
		}
		report := GenerateInsights(Metrics{}, ts, insightNow)
		for _, insight := range report.Insights {
			if insight.Title == "Large Transactions" {
				t.Fatal("expected old transactions to be excluded")
			}
		}
	})

	t.Run("transfer legs do not count", func(t *testing.T) {
		ts := make([]entity.Transaction, 0, 12)
		for _, date := range []string{"2024-06-01", "2024-06-02", "2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06"} {
			out, in := transferPair(6000, date)
			ts = append(ts, out, in)
		}
		report := GenerateInsights(Metrics{}, ts, insightNow)
		for _, insight := range report.Insights {
			if insight.Title == "Large Transactions" {
				t.Fatal("expected transfer legs to be excluded from the alert")
			}
		}
	})

	t.Run("amounts at the threshold do not count", func(t *testing.T) {
		ts := make([]entity.Transaction, 0, 6)
		for i := 0; i < 6; i++ {
			ts = append(ts, txn(5000, entity.TransactionTypeExpense, "Shopping", "exact", "2024-06-10"))
		}
		report := GenerateInsights(Metrics{}, ts, insightNow)
		for _, insight := range report.Insights {
			if insight.Title == "Large Transactions" {
				t.Fatal("expected amounts equal to the threshold to be excluded")
			}
		}
	})
}

func TestHealthScore(t *testing.T) {
	t.Run("all lowest bands score zero", func(t *testing.T) {
		report := GenerateInsights(Metrics{}, nil, insightNow)
		if report.HealthScore != 0 {
			t.Errorf("expected health score 0, got %d", report.HealthScore)
		}
	})

	t.Run("score is rounded share of successes", func(t *testing.T) {
		m := Metrics{
			SavingsRate:          decimal.NewFromInt(25),  // success
			EmergencyFundRatio:   decimal.NewFromInt(120), // success
			DebtToAssetRatio:     decimal.NewFromInt(10),  // success
			InvestmentRatio:      decimal.NewFromInt(10),  // info
			DistinctAccountTypes: 1,                       // info
			NetWorth:             decimal.NewFromInt(50),  // warning
		}
		report := GenerateInsights(m, nil, insightNow)
		// 3 successes out of 6 insights.
		if report.HealthScore != 50 {
			t.Errorf("expected health score 50, got %d", report.HealthScore)
		}
	})
}

func TestGenerateInsightsNeverFails(t *testing.T) {
	// Zero metrics, nil transactions: must still produce the full fixed list.
	report := GenerateInsights(Metrics{}, nil, time.Time{})
	if len(report.Insights) != 6 {
		t.Fatalf("expected 6 insights for zero input, got %d", len(report.Insights))
	}
	for i, insight := range report.Insights {
		if insight.Severity == "" {
			t.Errorf("insight %d has no severity", i)
		}
		if insight.Recommendation == "" {
			t.Errorf("insight %d has no recommendation", i)
		}
	}
}
