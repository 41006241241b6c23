package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nkeidar/babytrack/internal/analytics"
	apperrors "github.com/nkeidar/babytrack/internal/errors"
	"github.com/nkeidar/babytrack/internal/monitoring"
)

// daysParam parses the trailing-window size from the query string.
func daysParam(c *gin.Context, fallback int) (int, *apperrors.AppError) {
	raw := c.DefaultQuery("days", strconv.Itoa(fallback))
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 0, apperrors.NewValidationError("days must be a positive integer", raw)
	}
	return days, nil
}

func categoryCorrelationHandler(analyzer *analytics.Analyzer, metrics *monitoring.Metrics, logger *monitoring.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, appErr := daysParam(c, analytics.DefaultWindowDays)
		if appErr != nil {
			abortWithError(c, appErr)
			return
		}

		start := time.Now()
		entries, err := analyzer.CategoryCorrelation(c.Request.Context(), days)
		if err != nil {
			abortWithError(c, apperrors.NewDatabaseError("failed to compute category correlation", err))
			return
		}

		metrics.IncrementAnalyticsQuery("category-correlation")
		logger.AnalyticsLogger("category-correlation", days, len(entries), time.Since(start))
		c.JSON(http.StatusOK, entries)
	}
}

func foodAnalysisHandler(analyzer *analytics.Analyzer, metrics *monitoring.Metrics, logger *monitoring.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, appErr := daysParam(c, analytics.DefaultWindowDays)
		if appErr != nil {
			abortWithError(c, appErr)
			return
		}

		start := time.Now()
		entries, err := analyzer.FoodAnalysis(c.Request.Context(), days)
		if err != nil {
			abortWithError(c, apperrors.NewDatabaseError("failed to compute food analysis", err))
			return
		}

		metrics.IncrementAnalyticsQuery("food-analysis")
		logger.AnalyticsLogger("food-analysis", days, len(entries), time.Since(start))
		c.JSON(http.StatusOK, entries)
	}
}

func timeAnalysisHandler(analyzer *analytics.Analyzer, metrics *monitoring.Metrics, logger *monitoring.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, appErr := daysParam(c, analytics.DefaultWindowDays)
		if appErr != nil {
			abortWithError(c, appErr)
			return
		}

		start := time.Now()
		result, err := analyzer.TimeAnalysis(c.Request.Context(), days)
		if err != nil {
			abortWithError(c, apperrors.NewDatabaseError("failed to compute time analysis", err))
			return
		}

		metrics.IncrementAnalyticsQuery("time-analysis")
		logger.AnalyticsLogger("time-analysis", days, result.TotalVomitsAnalyzed, time.Since(start))
		c.JSON(http.StatusOK, result)
	}
}

func hourlyPatternHandler(analyzer *analytics.Analyzer, metrics *monitoring.Metrics, logger *monitoring.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, appErr := daysParam(c, analytics.DefaultWindowDays)
		if appErr != nil {
			abortWithError(c, appErr)
			return
		}

		start := time.Now()
		buckets, err := analyzer.HourlyPattern(c.Request.Context(), days)
		if err != nil {
			abortWithError(c, apperrors.NewDatabaseError("failed to compute hourly pattern", err))
			return
		}

		metrics.IncrementAnalyticsQuery("hourly-pattern")
		logger.AnalyticsLogger("hourly-pattern", days, len(buckets), time.Since(start))
		c.JSON(http.StatusOK, buckets)
	}
}

func dailySummaryHandler(analyzer *analytics.Analyzer, metrics *monitoring.Metrics, logger *monitoring.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, appErr := daysParam(c, analytics.DefaultTimelineDays)
		if appErr != nil {
			abortWithError(c, appErr)
			return
		}

		start := time.Now()
		events, err := analyzer.DailySummary(c.Request.Context(), days)
		if err != nil {
			abortWithError(c, apperrors.NewDatabaseError("failed to build daily summary", err))
			return
		}

		metrics.IncrementAnalyticsQuery("daily-summary")
		logger.AnalyticsLogger("daily-summary", days, len(events), time.Since(start))
		c.JSON(http.StatusOK, events)
	}
}

func overviewHandler(analyzer *analytics.Analyzer, metrics *monitoring.Metrics, logger *monitoring.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, appErr := daysParam(c, analytics.DefaultWindowDays)
		if appErr != nil {
			abortWithError(c, appErr)
			return
		}

		start := time.Now()
		overview, err := analyzer.FullOverview(c.Request.Context(), days)
		if err != nil {
			abortWithError(c, apperrors.NewDatabaseError("failed to compute analytics overview", err))
			return
		}

		metrics.IncrementAnalyticsQuery("overview")
		logger.AnalyticsLogger("overview", days, len(overview.Timeline), time.Since(start))
		c.JSON(http.StatusOK, overview)
	}
}
