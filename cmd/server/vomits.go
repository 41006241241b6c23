package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nkeidar/babytrack/internal/database"
	apperrors "github.com/nkeidar/babytrack/internal/errors"
	"github.com/nkeidar/babytrack/internal/types"
)

// vomitRequest is the write payload for vomit records. Severity defaults to
// moderate when omitted.
type vomitRequest struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Severity string `json:"severity"`
	Notes    string `json:"notes"`
}

func parseSeverity(raw string) types.Severity {
	if raw == "" {
		return types.DefaultSeverity
	}
	if s, ok := types.ParseSeverity(raw); ok {
		return s
	}
	// Keep the unknown value so record validation reports it by name.
	return types.Severity(raw)
}

func listVomitsHandler(repo *database.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		vomits, err := repo.ListVomits(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
		if err != nil {
			abortWithError(c, apperrors.NewDatabaseError("failed to list vomit records", err))
			return
		}
		c.JSON(http.StatusOK, vomits)
	}
}

func getVomitHandler(repo *database.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		vomit, err := repo.GetVomit(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortWithError(c, apperrors.NewNotFoundError("Vomit record", id))
				return
			}
			abortWithError(c, apperrors.NewDatabaseError("failed to get vomit record", err))
			return
		}
		c.JSON(http.StatusOK, vomit)
	}
}

func createVomitHandler(repo *database.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req vomitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
			return
		}

		vomit := database.NewVomit(req.Date, req.Time, parseSeverity(req.Severity), req.Notes)
		if problems := vomit.Validate(); len(problems) > 0 {
			abortWithError(c, apperrors.NewValidationErrorWithMap(problems))
			return
		}

		if err := repo.CreateVomit(c.Request.Context(), vomit); err != nil {
			abortWithError(c, apperrors.NewDatabaseError("failed to create vomit record", err))
			return
		}

		c.JSON(http.StatusCreated, vomit)
	}
}

func updateVomitHandler(repo *database.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req vomitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
			return
		}

		vomit := &types.Vomit{
			Date:     req.Date,
			Time:     req.Time,
			Severity: parseSeverity(req.Severity),
			Notes:    req.Notes,
		}
		if problems := vomit.Validate(); len(problems) > 0 {
			abortWithError(c, apperrors.NewValidationErrorWithMap(problems))
			return
		}

		updated, err := repo.UpdateVomit(c.Request.Context(), id, vomit)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortWithError(c, apperrors.NewNotFoundError("Vomit record", id))
				return
			}
			abortWithError(c, apperrors.NewDatabaseError("failed to update vomit record", err))
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func deleteVomitHandler(repo *database.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := repo.DeleteVomit(c.Request.Context(), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				abortWithError(c, apperrors.NewNotFoundError("Vomit record", id))
				return
			}
			abortWithError(c, apperrors.NewDatabaseError("failed to delete vomit record", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Vomit record deleted"})
	}
}
