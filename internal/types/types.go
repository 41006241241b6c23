package types

import (
	"fmt"
	"strings"
	"time"
)

// Category is a food category tag attached to a feeding. The enumeration is
// declared once here and shared by validation, the correlators, and the
// UI-facing label lookup.
type Category string

const (
	CategoryProtein    Category = "protein"
	CategoryCarbs      Category = "carbs"
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryDairy      Category = "dairy"
	CategoryFormula    Category = "formula"
	CategoryFats       Category = "fats"
	CategoryOther      Category = "other"
)

// Categories returns the full enumeration in its canonical order.
func Categories() []Category {
	return []Category{
		CategoryProtein,
		CategoryCarbs,
		CategoryVegetables,
		CategoryFruits,
		CategoryDairy,
		CategoryFormula,
		CategoryFats,
		CategoryOther,
	}
}

var categoryLabels = map[Category]string{
	CategoryProtein:    "Protein",
	CategoryCarbs:      "Carbs",
	CategoryVegetables: "Vegetables",
	CategoryFruits:     "Fruits",
	CategoryDairy:      "Dairy",
	CategoryFormula:    "Formula",
	CategoryFats:       "Fats",
	CategoryOther:      "Other",
}

// Valid reports whether c is a member of the enumeration.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display name for the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// ParseCategory parses a category tag, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

// Severity describes how severe a vomit event was.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// DefaultSeverity is assumed when a vomit record omits the field.
const DefaultSeverity = SeverityModerate

// Valid reports whether s is a member of the enumeration.
func (s Severity) Valid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

// ParseSeverity parses a severity value, case-insensitively.
func ParseSeverity(v string) (Severity, bool) {
	s := Severity(strings.ToLower(strings.TrimSpace(v)))
	return s, s.Valid()
}

const (
	// DateLayout is the stored calendar date format.
	DateLayout = "2006-01-02"
	// TimeLayout is the stored wall-clock time format (24h, no zone).
	TimeLayout = "15:04"
)

// Feeding is a single feeding event.
type Feeding struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Description string     `json:"description"`
	Categories  []Category `json:"categories"`
	Amount      string     `json:"amount,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Vomit is a single vomit event.
type Vomit struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Severity  Severity  `json:"severity"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CombineDateTime builds the instant for a stored date and HH:MM time.
// Instants are naive wall-clock values: both components are interpreted in a
// fixed zone and compared arithmetically, never converted across zones or
// DST boundaries.
func CombineDateTime(date, hhmm string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	t, err := time.ParseInLocation(TimeLayout, hhmm, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

// HourOf returns the hour-of-day bucket (0-23) for a stored HH:MM time.
func HourOf(hhmm string) (int, error) {
	t, err := time.ParseInLocation(TimeLayout, hhmm, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return t.Hour(), nil
}

// At returns the feeding's instant.
func (f *Feeding) At() (time.Time, error) {
	return CombineDateTime(f.Date, f.Time)
}

// At returns the vomit's instant.
func (v *Vomit) At() (time.Time, error) {
	return CombineDateTime(v.Date, v.Time)
}

// Validate checks a feeding at write time. It returns a map of field name to
// problem, empty when the record is well-formed. Records that fail here are
// rejected before they can reach storage or analytics.
func (f *Feeding) Validate() map[string]string {
	problems := map[string]string{}
	validateDate(problems, f.Date)
	validateTime(problems, f.Time)
	if strings.TrimSpace(f.Description) == "" {
		problems["description"] = "description is required"
	}
	for _, c := range f.Categories {
		if !c.Valid() {
			problems["categories"] = fmt.Sprintf("unknown category %q", c)
			break
		}
	}
	return problems
}

// Validate checks a vomit record at write time.
func (v *Vomit) Validate() map[string]string {
	problems := map[string]string{}
	validateDate(problems, v.Date)
	validateTime(problems, v.Time)
	if v.Severity != "" && !v.Severity.Valid() {
		problems["severity"] = fmt.Sprintf("unknown severity %q", v.Severity)
	}
	return problems
}

func validateDate(problems map[string]string, date string) {
	if date == "" {
		problems["date"] = "date is required"
		return
	}
	if _, err := time.ParseInLocation(DateLayout, date, time.UTC); err != nil {
		problems["date"] = "date must be formatted as YYYY-MM-DD"
	}
}

func validateTime(problems map[string]string, hhmm string) {
	if hhmm == "" {
		problems["time"] = "time is required"
		return
	}
	if _, err := time.ParseInLocation(TimeLayout, hhmm, time.UTC); err != nil {
		problems["time"] = "time must be formatted as HH:MM (24h)"
	}
}
