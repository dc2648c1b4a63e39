package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moneydiary/backend/internal/application/usecase/report"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
	"github.com/moneydiary/backend/internal/integration/entrypoint/dto"
	"github.com/moneydiary/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles reporting and analytics endpoints.
type ReportController struct {
	summaryUseCase  *report.GetSummaryUseCase
	netWorthUseCase *report.GetNetWorthUseCase
	trendsUseCase   *report.GetTrendsUseCase
	insightsUseCase *report.GetInsightsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summaryUseCase *report.GetSummaryUseCase,
	netWorthUseCase *report.GetNetWorthUseCase,
	trendsUseCase *report.GetTrendsUseCase,
	insightsUseCase *report.GetInsightsUseCase,
) *ReportController {
	return &ReportController{
		summaryUseCase:  summaryUseCase,
		netWorthUseCase: netWorthUseCase,
		trendsUseCase:   trendsUseCase,
		insightsUseCase: insightsUseCase,
	}
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := report.GetSummaryInput{
		UserID: userID,
	}

	startDate, endDate, err := parseDateRange(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}
	input.StartDate = startDate
	input.EndDate = endDate

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// NetWorth handles GET /reports/net-worth requests.
func (c *ReportController) NetWorth(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.netWorthUseCase.Execute(ctx.Request.Context(), report.GetNetWorthInput{
		UserID: userID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNetWorthResponse(output))
}

// Trends handles GET /reports/trends requests.
func (c *ReportController) Trends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", ctx.Query("start_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date is required in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	endDate, err := time.Parse("2006-01-02", ctx.Query("end_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date is required in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	granularity := report.Granularity(ctx.DefaultQuery("granularity", string(report.GranularityMonthly)))

	input := report.GetTrendsInput{
		UserID:      userID,
		StartDate:   startDate,
		EndDate:     endDate,
		Granularity: granularity,
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// Insights handles GET /reports/insights requests.
func (c *ReportController) Insights(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), report.GetInsightsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightsResponse(output))
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		statusCode := http.StatusBadRequest
		if rptErr.Code == domainerror.ErrCodeReportInternalError {
			statusCode = http.StatusInternalServerError
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
