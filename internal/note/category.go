package note

import "fmt"

// Category classifies a note. The set is closed: internally constructed notes
// always carry one of the five values below, and external input is validated
// through ParseCategory at the boundary.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryFinance  Category = "finance"
	CategoryFood     Category = "food"
)

// DefaultActivityColor is the fallback color used when a note carries an
// unrecognized category (contract violation by the upstream store).
const DefaultActivityColor = "#6366f1"

// CategoryDef is the static display metadata for a category.
type CategoryDef struct {
	ID    Category `json:"id"`
	Name  string   `json:"name"`
	Emoji string   `json:"emoji"`
	Color string   `json:"color"`
}

// categoryDefs is the fixed reference table. Order is significant: category
// statistics are reported in this order, not in note order.
var categoryDefs = []CategoryDef{
	{ID: CategoryWork, Name: "Work", Emoji: "💼", Color: "#7C3AED"},
	{ID: CategoryPersonal, Name: "Personal", Emoji: "🏠", Color: "#F59E42"},
	{ID: CategoryHealth, Name: "Health", Emoji: "💪", Color: "#10B981"},
	{ID: CategoryFinance, Name: "Finance", Emoji: "💰", Color: "#FBBF24"},
	{ID: CategoryFood, Name: "Food", Emoji: "🍔", Color: "#EF4444"},
}

// Categories returns the static category definitions in display order.
// The returned slice is a copy; callers may not mutate reference data.
func Categories() []CategoryDef {
	defs := make([]CategoryDef, len(categoryDefs))
	copy(defs, categoryDefs)
	return defs
}

// LookupCategory returns the definition for a category value.
// The second return is false for unrecognized values.
func LookupCategory(c Category) (CategoryDef, bool) {
	for _, def := range categoryDefs {
		if def.ID == c {
			return def, true
		}
	}
	return CategoryDef{}, false
}

// ParseCategory validates an external category string.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := LookupCategory(c); !ok {
		return "", fmt.Errorf("unknown category %q (valid: work, personal, health, finance, food)", s)
	}
	return c, nil
}

// Valid reports whether the category is one of the five defined values.
func (c Category) Valid() bool {
	_, ok := LookupCategory(c)
	return ok
}
