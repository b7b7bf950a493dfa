package models

// CreateHabitInput is the payload for creating a new habit. Validation tags
// are enforced by the registry; the calling layer should validate first and
// re-prompt on failure.
type CreateHabitInput struct {
	Name         string    `json:"name" validate:"required"`
	Trigger      string    `json:"trigger" validate:"required"`
	Action       string    `json:"action" validate:"required"`
	Color        ColorID   `json:"color"`
	Frequency    []Weekday `json:"frequency" validate:"required,min=1"`
	ReminderTime string    `json:"reminder_time,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

// UpdateHabitInput carries a partial habit update. Nil fields are left
// untouched.
type UpdateHabitInput struct {
	Name         *string    `json:"name,omitempty"`
	Trigger      *string    `json:"trigger,omitempty"`
	Action       *string    `json:"action,omitempty"`
	Color        *ColorID   `json:"color,omitempty"`
	Frequency    *[]Weekday `json:"frequency,omitempty"`
	ReminderTime *string    `json:"reminder_time,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}
