package finance

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/domain/entity"
)

// Severity bands an insight for display.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Insight is a single categorized recommendation derived from the metrics.
type Insight struct {
	Title          string
	Description    string
	Recommendation string
	Severity       Severity
	Metric         decimal.Decimal
}

// Report is the full ordered insight list plus the derived health score.
type Report struct {
	Insights    []Insight
	HealthScore int
}

// Thresholds for the insight bands.
var (
	savingsRateGood         = decimal.NewFromInt(20)
	savingsRateOK           = decimal.NewFromInt(10)
	emergencyFundGood       = decimal.NewFromInt(100)
	emergencyFundOK         = decimal.NewFromInt(50)
	debtRatioGood           = decimal.NewFromInt(30)
	debtRatioOK             = decimal.NewFromInt(50)
	investmentRatioGood     = decimal.NewFromInt(60)
	investmentRatioOK       = decimal.NewFromInt(30)
	netWorthGood            = decimal.NewFromInt(100000)
	largeTransactionAmount  = decimal.NewFromInt(5000)
)

const (
	diversificationTypesGood = 5
	diversificationTypesOK   = 3

	largeTransactionWindow   = 30 * 24 * time.Hour
	largeTransactionMinCount = 5
)

// GenerateInsights converts the metrics into a fixed, ordered insight list.
// The order is stable regardless of values: savings rate, emergency fund,
// debt, investment allocation, diversification, the conditional
// large-transaction alert, and net worth. The large-transaction alert is
// present only when more than largeTransactionMinCount expenses above
// largeTransactionAmount fall in the trailing 30 days relative to now. The
// function is total: absent or zero inputs produce the lowest band.
func GenerateInsights(m Metrics, transactions []entity.Transaction, now time.Time) Report {
	insights := []Insight{
		savingsRateInsight(m.SavingsRate),
		emergencyFundInsight(m.EmergencyFundRatio),
		debtInsight(m.DebtToAssetRatio),
		investmentInsight(m.InvestmentRatio),
		diversificationInsight(m.DistinctAccountTypes, m.DiversificationScore),
	}

	if alert, ok := largeTransactionInsight(transactions, now); ok {
		insights = append(insights, alert)
	}

	insights = append(insights, netWorthInsight(m.NetWorth))

	return Report{
		Insights:    insights,
		HealthScore: healthScore(insights),
	}
}

func savingsRateInsight(rate decimal.Decimal) Insight {
	insight := Insight{
		Title:       "Savings Rate",
		Description: fmt.Sprintf("You are saving %s%% of your income.", rate.Round(1)),
		Metric:      rate,
	}

	switch {
	case rate.GreaterThanOrEqual(savingsRateGood):
		insight.Severity = SeveritySuccess
		insight.Recommendation = "Great job! Keep saving at this rate to build long-term wealth."
	case rate.GreaterThanOrEqual(savingsRateOK):
		insight.Severity = SeverityWarning
		insight.Recommendation = "Try to push your savings rate above 20% by trimming discretionary spending."
	default:
		insight.Severity = SeverityError
		insight.Recommendation = "Your savings rate is low. Review recurring expenses and set a monthly savings target."
	}
	return insight
}

func emergencyFundInsight(ratio decimal.Decimal) Insight {
	insight := Insight{
		Title:       "Emergency Fund",
		Description: fmt.Sprintf("Your liquid savings cover %s%% of a six-month expense buffer.", ratio.Round(1)),
		Metric:      ratio,
	}

	switch {
	case ratio.GreaterThanOrEqual(emergencyFundGood):
		insight.Severity = SeveritySuccess
		insight.Recommendation = "Your emergency fund is fully stocked. Consider investing the surplus."
	case ratio.GreaterThanOrEqual(emergencyFundOK):
		insight.Severity = SeverityWarning
		insight.Recommendation = "You are halfway there. Keep adding to your emergency fund each month."
	default:
		insight.Severity = SeverityError
		insight.Recommendation = "Build an emergency fund covering six months of expenses before other goals."
	}
	return insight
}

func debtInsight(ratio decimal.Decimal) Insight {
	insight := Insight{
		Title:       "Debt Load",
		Description: fmt.Sprintf("Your liabilities are %s%% of your assets.", ratio.Round(1)),
		Metric:      ratio,
	}

	// Polarity inverted: lower is better.
	switch {
	case ratio.LessThanOrEqual(debtRatioGood):
		insight.Severity = SeveritySuccess
		insight.Recommendation = "Your debt level is healthy and well under control."
	case ratio.LessThanOrEqual(debtRatioOK):
		insight.Severity = SeverityWarning
		insight.Recommendation = "Your debt is creeping up. Prioritize paying down high-interest balances."
	default:
		insight.Severity = SeverityError
		insight.Recommendation = "Your debt exceeds half your assets. Make a repayment plan before taking on more."
	}
	return insight
}

func investmentInsight(ratio decimal.Decimal) Insight {
	insight := Insight{
		Title:       "Investment Allocation",
		Description: fmt.Sprintf("%s%% of your assets are invested.", ratio.Round(1)),
		Metric:      ratio,
	}

	switch {
	case ratio.GreaterThanOrEqual(investmentRatioGood):
		insight.Severity = SeveritySuccess
		insight.Recommendation = "A strong share of your assets is working for you."
	case ratio.GreaterThanOrEqual(investmentRatioOK):
		insight.Severity = SeverityWarning
		insight.Recommendation = "Consider moving more idle cash into investments once your emergency fund is set."
	default:
		insight.Severity = SeverityInfo
		insight.Recommendation = "Start investing regularly, even small amounts compound over time."
	}
	return insight
}

func diversificationInsight(distinctTypes, score int) Insight {
	insight := Insight{
		Title:       "Diversification",
		Description: fmt.Sprintf("Your money is spread across %d account types.", distinctTypes),
		Metric:      decimal.NewFromInt(int64(score)),
	}

	switch {
	case distinctTypes >= diversificationTypesGood:
		insight.Severity = SeveritySuccess
		insight.Recommendation = "Your accounts are well diversified."
	case distinctTypes >= diversificationTypesOK:
		insight.Severity = SeverityWarning
		insight.Recommendation = "Add one or two more account types to spread your risk."
	default:
		insight.Severity = SeverityInfo
		insight.Recommendation = "Consider opening savings or investment accounts to diversify."
	}
	return insight
}

// largeTransactionInsight returns an alert only when more than
// largeTransactionMinCount expenses above largeTransactionAmount occurred in
// the trailing 30 days. When the condition does not hold the insight is
// absent from the report, not zero-valued.
func largeTransactionInsight(transactions []entity.Transaction, now time.Time) (Insight, bool) {
	since := now.Add(-largeTransactionWindow)

	count := 0
	for i := range transactions {
		t := &transactions[i]
		if t.IsTransferLeg() || t.Type != entity.TransactionTypeExpense {
			continue
		}
		if t.Date.Before(since) || t.Date.After(now) {
			continue
		}
		if t.Amount.GreaterThan(largeTransactionAmount) {
			count++
		}
	}

	if count <= largeTransactionMinCount {
		return Insight{}, false
	}

	return Insight{
		Title:          "Large Transactions",
		Description:    fmt.Sprintf("You made %d expenses above %s in the last 30 days.", count, largeTransactionAmount),
		Recommendation: "Review these large expenses and check they match your budget.",
		Severity:       SeverityWarning,
		Metric:         decimal.NewFromInt(int64(count)),
	}, true
}

func netWorthInsight(netWorth decimal.Decimal) Insight {
	insight := Insight{
		Title:       "Net Worth",
		Description: fmt.Sprintf("Your net worth is %s.", netWorth.Round(2)),
		Metric:      netWorth,
	}

	switch {
	case netWorth.GreaterThanOrEqual(netWorthGood):
		insight.Severity = SeveritySuccess
		insight.Recommendation = "Your net worth has passed a significant milestone. Keep it growing."
	case netWorth.GreaterThanOrEqual(decimal.Zero):
		insight.Severity = SeverityWarning
		insight.Recommendation = "Your net worth is positive. Grow it by saving and investing consistently."
	default:
		insight.Severity = SeverityError
		insight.Recommendation = "Your liabilities outweigh your assets. Focus on reducing debt."
	}
	return insight
}

// healthScore is the share of success insights, rounded to the nearest
// integer percentage.
func healthScore(insights []Insight) int {
	if len(insights) == 0 {
		return 0
	}

	successes := 0
	for i := range insights {
		if insights[i].Severity == SeveritySuccess {
			successes++
		}
	}

	return int(math.Round(float64(successes) / float64(len(insights)) * 100))
}
