// Package suggestions holds the curated starter-habit catalog.
package suggestions

// Suggestion is a curated habit idea the user can adopt with one action.
type Suggestion struct {
	Name        string
	Category    string
	Description string
	Benefit     string
}

var catalog = []Suggestion{
	{
		Name:        "Meditation",
		Category:    "Wellness",
		Description: "Start your day with 10 minutes of mindfulness",
		Benefit:     "Reduces stress and improves focus",
	},
	{
		Name:        "Drink Water",
		Category:    "Health",
		Description: "Stay hydrated with 8 glasses daily",
		Benefit:     "Boosts energy and supports overall health",
	},
	{
		Name:        "Read a Book",
		Category:    "Learning",
		Description: "Read for at least 20 minutes",
		Benefit:     "Expands knowledge and improves vocabulary",
	},
	{
		Name:        "Daily Walk",
		Category:    "Fitness",
		Description: "Take a 30-minute walk outside",
		Benefit:     "Improves cardiovascular health and mood",
	},
	{
		Name:        "Gratitude Journal",
		Category:    "Wellness",
		Description: "Write down 3 things you're grateful for",
		Benefit:     "Increases positivity and life satisfaction",
	},
	{
		Name:        "Stretch Routine",
		Category:    "Fitness",
		Description: "Do 15 minutes of stretching exercises",
		Benefit:     "Improves flexibility and prevents injury",
	},
}

// All returns the catalog in display order.
func All() []Suggestion {
	out := make([]Suggestion, len(catalog))
	copy(out, catalog)
	return out
}

// ByName looks up a suggestion by its display name.
func ByName(name string) (Suggestion, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Suggestion{}, false
}
