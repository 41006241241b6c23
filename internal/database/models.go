package database

import (
	"time"

	"github.com/google/uuid"

	"github.com/nkeidar/babytrack/internal/types"
)

// NewFeeding builds a feeding record with a generated ID and timestamps.
// Input validation is the caller's job; by the time a record is created here
// it is assumed well-formed.
func NewFeeding(date, timeOfDay, description string, categories []types.Category, amount, notes string) *types.Feeding {
	now := time.Now()
	if categories == nil {
		categories = []types.Category{}
	}
	return &types.Feeding{
		ID:          uuid.New().String(),
		Date:        date,
		Time:        timeOfDay,
		Description: description,
		Categories:  categories,
		Amount:      amount,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewVomit builds a vomit record with a generated ID and timestamps. An
// empty severity falls back to the default.
func NewVomit(date, timeOfDay string, severity types.Severity, notes string) *types.Vomit {
	now := time.Now()
	if severity == "" {
		severity = types.DefaultSeverity
	}
	return &types.Vomit{
		ID:        uuid.New().String(),
		Date:      date,
		Time:      timeOfDay,
		Severity:  severity,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
