package analytics

import (
	"github.com/nkeidar/babytrack/internal/types"
)

func feeding(date, timeOfDay, description string, categories ...types.Category) types.Feeding {
	if categories == nil {
		categories = []types.Category{}
	}
	return types.Feeding{
		ID:          "feeding-" + date + "-" + timeOfDay,
		Date:        date,
		Time:        timeOfDay,
		Description: description,
		Categories:  categories,
	}
}

func vomit(date, timeOfDay string, severity types.Severity) types.Vomit {
	return types.Vomit{
		ID:       "vomit-" + date + "-" + timeOfDay,
		Date:     date,
		Time:     timeOfDay,
		Severity: severity,
	}
}
