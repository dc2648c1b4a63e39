package dto

import (
	"github.com/moneydiary/backend/internal/application/usecase/report"
	"github.com/moneydiary/backend/internal/domain/finance"
)

// CategoryTotalResponse represents a per-category expense total.
type CategoryTotalResponse struct {
	Name  string `json:"name"`
	Total string `json:"total"`
}

// SummaryResponse represents the response for the summary report.
type SummaryResponse struct {
	Balance          string                  `json:"balance"`
	Income           string                  `json:"income"`
	Expenses         string                  `json:"expenses"`
	TransactionCount int                     `json:"transaction_count"`
	CategoryTotals   []CategoryTotalResponse `json:"category_totals"`
}

// AccountContributionResponse represents one account's share of net worth.
type AccountContributionResponse struct {
	AccountID       string `json:"account_id"`
	AccountName     string `json:"account_name"`
	AccountTypeName string `json:"account_type_name"`
	Category        string `json:"category"`
	Balance         string `json:"balance"`
	Contribution    string `json:"contribution"`
}

// NetWorthResponse represents the response for the net worth report.
type NetWorthResponse struct {
	NetWorth         string                        `json:"net_worth"`
	TotalAssets      string                        `json:"total_assets"`
	TotalLiabilities string                        `json:"total_liabilities"`
	Accounts         []AccountContributionResponse `json:"accounts"`
}

// TrendPointResponse represents a single point in the trends series.
type TrendPointResponse struct {
	Date             string `json:"date"`
	PeriodLabel      string `json:"period_label"`
	Income           string `json:"income"`
	Expenses         string `json:"expenses"`
	Balance          string `json:"balance"`
	TransactionCount int    `json:"transaction_count"`
}

// TrendsResponse represents the response for the trends report.
type TrendsResponse struct {
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Granularity string               `json:"granularity"`
	Trends      []TrendPointResponse `json:"trends"`
}

// MetricsResponse represents computed financial health metrics.
type MetricsResponse struct {
	Income               string `json:"income"`
	Expenses             string `json:"expenses"`
	Balance              string `json:"balance"`
	NetWorth             string `json:"net_worth"`
	TotalAssets          string `json:"total_assets"`
	TotalLiabilities     string `json:"total_liabilities"`
	EmergencyFundBalance string `json:"emergency_fund_balance"`
	InvestmentBalance    string `json:"investment_balance"`
	SavingsRate          string `json:"savings_rate"`
	DebtToAssetRatio     string `json:"debt_to_asset_ratio"`
	EmergencyFundRatio   string `json:"emergency_fund_ratio"`
	InvestmentRatio      string `json:"investment_ratio"`
	DiversificationScore int    `json:"diversification_score"`
}

// InsightResponse represents a single generated insight.
type InsightResponse struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	Severity       string `json:"severity"`
	Metric         string `json:"metric"`
}

// InsightsResponse represents the response for the insights report.
type InsightsResponse struct {
	Metrics     MetricsResponse   `json:"metrics"`
	Insights    []InsightResponse `json:"insights"`
	HealthScore int               `json:"health_score"`
}

// ToSummaryResponse converts a summary use case output to a SummaryResponse DTO.
func ToSummaryResponse(output *report.GetSummaryOutput) SummaryResponse {
	totals := make([]CategoryTotalResponse, 0, len(output.CategoryTotals))
	for _, total := range output.CategoryTotals {
		totals = append(totals, CategoryTotalResponse{
			Name:  total.Name,
			Total: total.Total.StringFixed(2),
		})
	}
	return SummaryResponse{
		Balance:          output.Balance.StringFixed(2),
		Income:           output.Income.StringFixed(2),
		Expenses:         output.Expenses.StringFixed(2),
		TransactionCount: output.TransactionCount,
		CategoryTotals:   totals,
	}
}

// ToNetWorthResponse converts a net worth use case output to a NetWorthResponse DTO.
func ToNetWorthResponse(output *report.GetNetWorthOutput) NetWorthResponse {
	accounts := make([]AccountContributionResponse, 0, len(output.Accounts))
	for _, contribution := range output.Accounts {
		accounts = append(accounts, AccountContributionResponse{
			AccountID:       contribution.AccountID.String(),
			AccountName:     contribution.AccountName,
			AccountTypeName: contribution.AccountTypeName,
			Category:        string(contribution.Category),
			Balance:         contribution.Balance.StringFixed(2),
			Contribution:    contribution.Contribution.StringFixed(2),
		})
	}
	return NetWorthResponse{
		NetWorth:         output.NetWorth.StringFixed(2),
		TotalAssets:      output.TotalAssets.StringFixed(2),
		TotalLiabilities: output.TotalLiabilities.StringFixed(2),
		Accounts:         accounts,
	}
}

// ToTrendsResponse converts a trends use case output to a TrendsResponse DTO.
func ToTrendsResponse(output *report.GetTrendsOutput) TrendsResponse {
	trends := make([]TrendPointResponse, 0, len(output.Trends))
	for _, point := range output.Trends {
		trends = append(trends, TrendPointResponse{
			Date:             point.Date.Format("2006-01-02"),
			PeriodLabel:      point.PeriodLabel,
			Income:           point.Income.StringFixed(2),
			Expenses:         point.Expenses.StringFixed(2),
			Balance:          point.Balance.StringFixed(2),
			TransactionCount: point.TransactionCount,
		})
	}
	return TrendsResponse{
		StartDate:   output.StartDate.Format("2006-01-02"),
		EndDate:     output.EndDate.Format("2006-01-02"),
		Granularity: string(output.Granularity),
		Trends:      trends,
	}
}

// ToInsightsResponse converts an insights use case output to an InsightsResponse DTO.
func ToInsightsResponse(output *report.GetInsightsOutput) InsightsResponse {
	insights := make([]InsightResponse, 0, len(output.Report.Insights))
	for _, insight := range output.Report.Insights {
		insights = append(insights, InsightResponse{
			Title:          insight.Title,
			Description:    insight.Description,
			Recommendation: insight.Recommendation,
			Severity:       string(insight.Severity),
			Metric:         insight.Metric.StringFixed(2),
		})
	}
	return InsightsResponse{
		Metrics:     toMetricsResponse(output.Metrics),
		Insights:    insights,
		HealthScore: output.Report.HealthScore,
	}
}

func toMetricsResponse(metrics finance.Metrics) MetricsResponse {
	return MetricsResponse{
		Income:               metrics.Income.StringFixed(2),
		Expenses:             metrics.Expenses.StringFixed(2),
		Balance:              metrics.Balance.StringFixed(2),
		NetWorth:             metrics.NetWorth.StringFixed(2),
		TotalAssets:          metrics.TotalAssets.StringFixed(2),
		TotalLiabilities:     metrics.TotalLiabilities.StringFixed(2),
		EmergencyFundBalance: metrics.EmergencyFundBalance.StringFixed(2),
		InvestmentBalance:    metrics.InvestmentBalance.StringFixed(2),
		SavingsRate:          metrics.SavingsRate.StringFixed(2),
		DebtToAssetRatio:     metrics.DebtToAssetRatio.StringFixed(2),
		EmergencyFundRatio:   metrics.EmergencyFundRatio.StringFixed(2),
		InvestmentRatio:      metrics.InvestmentRatio.StringFixed(2),
		DiversificationScore: metrics.DiversificationScore,
	}
}
