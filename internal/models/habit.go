package models

import "time"

// Weekday is a three-letter weekday tag used in habit frequencies.
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// AllWeekdays lists every weekday tag in Mon-first order.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf returns the weekday tag for a point in time.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday().String()[:3])
}

// ValidWeekday reports whether tag is one of the seven weekday tags.
func ValidWeekday(tag Weekday) bool {
	for _, wd := range AllWeekdays {
		if wd == tag {
			return true
		}
	}
	return false
}

// CompletionRecord is a single day's completion state for a habit. A habit
// holds at most one record per calendar date.
type CompletionRecord struct {
	Date        string     `json:"date"` // YYYY-MM-DD
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Habit is a trigger/action routine scheduled on specific weekdays.
type Habit struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Trigger           string             `json:"trigger"` // "After I..."
	Action            string             `json:"action"`  // "I will..."
	Color             ColorID            `json:"color"`
	Frequency         []Weekday          `json:"frequency"`
	CreatedAt         time.Time          `json:"created_at"`
	IsStarred         bool               `json:"is_starred"`
	CompletionHistory []CompletionRecord `json:"completion_history"`
	ReminderTime      string             `json:"reminder_time,omitempty"` // HH:MM
	Notes             string             `json:"notes,omitempty"`
}

// ActiveOn reports whether the habit is scheduled on the given weekday.
func (h Habit) ActiveOn(tag Weekday) bool {
	for _, wd := range h.Frequency {
		if wd == tag {
			return true
		}
	}
	return false
}

// RecordFor returns a pointer to the completion record for the given day, or
// nil if no record exists.
func (h *Habit) RecordFor(day string) *CompletionRecord {
	for i := range h.CompletionHistory {
		if h.CompletionHistory[i].Date == day {
			return &h.CompletionHistory[i]
		}
	}
	return nil
}
