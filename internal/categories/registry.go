// Package categories holds the fixed category registry. Each habit
// references exactly one category by name; the display color is
// denormalized onto the habit when it is created or edited.
package categories

import (
	"fmt"

	"github.com/Jyoti0525/habitflow/internal/models"
)

type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"` // hex string, e.g. "#EC4899"
}

// registry is read-only at runtime. Order is the display order.
var registry = []Category{
	{Name: "Fitness", Color: "#EC4899"},
	{Name: "Wellness", Color: "#8B5CF6"},
	{Name: "Learning", Color: "#3B82F6"},
	{Name: "Health", Color: "#10B981"},
	{Name: "Hobby", Color: "#F59E0B"},
	{Name: "Work", Color: "#6366F1"},
}

// ColorOf returns the registered display color for a category name.
func ColorOf(name string) (string, error) {
	for _, c := range registry {
		if c.Name == name {
			return c.Color, nil
		}
	}
	return "", fmt.Errorf("%w: %s", models.ErrUnknownCategory, name)
}

// All returns every registered category in display order.
func All() []Category {
	out := make([]Category, len(registry))
	copy(out, registry)
	return out
}
