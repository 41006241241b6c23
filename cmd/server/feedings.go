package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nkeidar/babytrack/internal/database"
	apperrors "github.com/nkeidar/babytrack/internal/errors"
	"github.com/nkeidar/babytrack/internal/types"
)

// feedingRequest is the write payload for feeding records
type feedingRequest struct {
	Date        string   `json:"date" binding:"required"`
	Time        string   `json:"time" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Categories  []string `json:"categories"`
	Amount      string   `json:"amount"`
	Notes       string   `json:"notes"`
}

// parseCategories normalizes raw tags; unknown tags are kept as-is so record
// validation reports them by name.
func parseCategories(raw []string) []types.Category {
	categories := make([]types.Category, 0, len(raw))
	for _, r := range raw {
		if c, ok := types.ParseCategory(r); ok {
			categories = append(categories, c)
		} else {
			categories = append(categories, types.Category(r))
		}
	}
	return categories
}

func listFeedingsHandler(repo *database.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		feedings, err := repo.ListFeedings(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
		if err != nil {
			abortWithError(c, apperrors.NewDatabaseError("failed to list feedings", err))
			return
		}
		c.JSON(http.StatusOK, feedings)
	}
}

func getFeedingHandler(repo *database.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		feeding, err := repo.GetFeeding(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortWithError(c, apperrors.NewNotFoundError("Feeding", id))
				return
			}
			abortWithError(c, apperrors.NewDatabaseError("failed to get feeding", err))
			return
		}
		c.JSON(http.StatusOK, feeding)
	}
}

func createFeedingHandler(repo *database.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req feedingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
			return
		}

		feeding := database.NewFeeding(req.Date, req.Time, req.Description, parseCategories(req.Categories), req.Amount, req.Notes)
		if problems := feeding.Validate(); len(problems) > 0 {
			abortWithError(c, apperrors.NewValidationErrorWithMap(problems))
			return
		}

		if err := repo.CreateFeeding(c.Request.Context(), feeding); err != nil {
			abortWithError(c, apperrors.NewDatabaseError("failed to create feeding", err))
			return
		}

		c.JSON(http.StatusCreated, feeding)
	}
}

func updateFeedingHandler(repo *database.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req feedingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
			return
		}

		feeding := &types.Feeding{
			Date:        req.Date,
			Time:        req.Time,
			Description: req.Description,
			Categories:  parseCategories(req.Categories),
			Amount:      req.Amount,
			Notes:       req.Notes,
		}
		if feeding.Categories == nil {
			feeding.Categories = []types.Category{}
		}
		if problems := feeding.Validate(); len(problems) > 0 {
			abortWithError(c, apperrors.NewValidationErrorWithMap(problems))
			return
		}

		updated, err := repo.UpdateFeeding(c.Request.Context(), id, feeding)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortWithError(c, apperrors.NewNotFoundError("Feeding", id))
				return
			}
			abortWithError(c, apperrors.NewDatabaseError("failed to update feeding", err))
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func deleteFeedingHandler(repo *database.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := repo.DeleteFeeding(c.Request.Context(), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortWithError(c, apperrors.NewNotFoundError("Feeding", id))
				return
			}
			abortWithError(c, apperrors.NewDatabaseError("failed to delete feeding", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Feeding deleted"})
	}
}
