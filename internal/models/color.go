package models

// ColorID is an enumerated tag from the fixed habit color palette.
type ColorID string

// HabitColor is a palette entry available for habit tagging.
type HabitColor struct {
	ID   ColorID
	Name string
	Hex  string
}

// HabitColors is the fixed palette users pick habit colors from.
var HabitColors = []HabitColor{
	{ID: "blue", Name: "Ocean", Hex: "#5B8DEF"},
	{ID: "purple", Name: "Lavender", Hex: "#8B7EF5"},
	{ID: "green", Name: "Mint", Hex: "#5FD4A0"},
	{ID: "orange", Name: "Sunset", Hex: "#F5A962"},
	{ID: "pink", Name: "Rose", Hex: "#F572A0"},
	{ID: "cyan", Name: "Sky", Hex: "#5FD4D4"},
	{ID: "yellow", Name: "Gold", Hex: "#F5D962"},
	{ID: "red", Name: "Ruby", Hex: "#F57272"},
}

// DefaultColor is used when no color is chosen at creation.
const DefaultColor ColorID = "blue"

// ColorByID looks up a palette entry by id.
func ColorByID(id ColorID) (HabitColor, bool) {
	for _, c := range HabitColors {
		if c.ID == id {
			return c, true
		}
	}
	return HabitColor{}, false
}

// ValidColor reports whether id names a palette entry.
func ValidColor(id ColorID) bool {
	_, ok := ColorByID(id)
	return ok
}
