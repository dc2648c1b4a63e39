package finance

import (
	"github.com/shopspring/decimal"

	"github.com/moneydiary/backend/internal/domain/entity"
)

var (
	hundred             = decimal.NewFromInt(100)
	emergencyFundMonths = decimal.NewFromInt(6)
)

// MaxDiversificationScore caps the diversification score.
const MaxDiversificationScore = 100

// Metrics holds the scalar figures derived from a snapshot. It is the input
// of the insight generator and the payload of the reports API.
type Metrics struct {
	Income               decimal.Decimal
	Expenses             decimal.Decimal
	Balance              decimal.Decimal
	NetWorth             decimal.Decimal
	TotalAssets          decimal.Decimal
	TotalLiabilities     decimal.Decimal
	EmergencyFundBalance decimal.Decimal
	InvestmentBalance    decimal.Decimal
	SavingsRate          decimal.Decimal
	DebtToAssetRatio     decimal.Decimal
	EmergencyFundRatio   decimal.Decimal
	InvestmentRatio      decimal.Decimal
	DistinctAccountTypes int
	DiversificationScore int
}

// ComputeMetrics derives all scalar metrics from a transaction and account
// snapshot.
func ComputeMetrics(transactions []entity.Transaction, accounts []entity.Account) Metrics {
	income := Income(transactions)
	expenses := Expenses(transactions)
	assets := TotalAssets(accounts)
	liabilities := TotalLiabilities(accounts)
	emergency := EmergencyFundBalance(accounts)
	invested := InvestmentBalance(accounts)
	distinctTypes := DistinctAccountTypes(accounts)

	return Metrics{
		Income:               income,
		Expenses:             expenses,
		Balance:              income.Sub(expenses),
		NetWorth:             NetWorth(accounts),
		TotalAssets:          assets,
		TotalLiabilities:     liabilities,
		EmergencyFundBalance: emergency,
		InvestmentBalance:    invested,
		SavingsRate:          SavingsRate(income, expenses),
		DebtToAssetRatio:     DebtToAssetRatio(liabilities, assets),
		EmergencyFundRatio:   EmergencyFundRatio(emergency, expenses),
		InvestmentRatio:      InvestmentRatio(invested, assets),
		DistinctAccountTypes: distinctTypes,
		DiversificationScore: DiversificationScore(distinctTypes),
	}
}

// SavingsRate returns the proportion of income not spent, as a percentage.
// Returns 0 when income is zero or negative.
func SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income).Mul(hundred)
}

// DebtToAssetRatio returns liabilities as a percentage of assets. Returns 0
// when assets are zero or negative.
func DebtToAssetRatio(liabilities, assets decimal.Decimal) decimal.Decimal {
	if assets.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return liabilities.Div(assets).Mul(hundred)
}

// EmergencyFundRatio returns the liquid balance as a percentage of a
// six-month expense target. Returns 0 when expenses are zero or negative.
func EmergencyFundRatio(liquidBalance, expenses decimal.Decimal) decimal.Decimal {
	target := expenses.Mul(emergencyFundMonths)
	if target.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return liquidBalance.Div(target).Mul(hundred)
}

// InvestmentRatio returns the invested balance as a percentage of total
// assets. Returns 0 when assets are zero or negative.
func InvestmentRatio(investmentBalance, assets decimal.Decimal) decimal.Decimal {
	if assets.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return investmentBalance.Div(assets).Mul(hundred)
}

// DiversificationScore maps the distinct account-type count to a 0-100 score:
// 20 points per distinct type, capped at 100.
func DiversificationScore(distinctAccountTypes int) int {
	score := distinctAccountTypes * 20
	if score > MaxDiversificationScore {
		return MaxDiversificationScore
	}
	return score
}
