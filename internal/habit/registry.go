// Package habit owns the habit collection and applies all CRUD and
// completion-toggle mutations.
package habit

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ewhitmore/habitkit/internal/constants"
	"github.com/ewhitmore/habitkit/internal/errs"
	"github.com/ewhitmore/habitkit/internal/kv"
	"github.com/ewhitmore/habitkit/internal/models"
	"github.com/ewhitmore/habitkit/internal/streak"
)

// Registry owns the habit collection. Construct one at application start and
// share the handle. Mutations are serialized by an internal lock so two
// overlapping toggles cannot lose an update; each mutation persists the whole
// collection.
type Registry struct {
	mu       sync.Mutex
	store    kv.Store
	habits   []models.Habit
	validate *validator.Validate
}

func New(store kv.Store) *Registry {
	return &Registry{
		store:    store,
		validate: validator.New(),
	}
}

// Load reads the habit collection from storage. A missing key yields an
// empty collection.
func (r *Registry) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, ok, err := r.store.Get(ctx, constants.KeyHabits)
	if err != nil {
		return err
	}
	if !ok {
		r.habits = nil
		return nil
	}

	var habits []models.Habit
	if err := json.Unmarshal(data, &habits); err != nil {
		return &errs.StorageError{Op: "parse", Key: constants.KeyHabits, Err: err}
	}
	r.habits = habits
	return nil
}

// All returns a copy of the habit collection.
func (r *Registry) All() []models.Habit {
	r.mu.Lock()
	defer r.mu.Unlock()

	habits := make([]models.Habit, len(r.habits))
	copy(habits, r.habits)
	return habits
}

// Get returns the habit with the given id.
func (r *Registry) Get(id string) (models.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, &errs.NotFoundError{Kind: "habit", ID: id}
}

func validateInput(v *validator.Validate, input models.CreateHabitInput) error {
	// Struct tags cover presence; re-check with trimming so whitespace-only
	// fields are rejected too.
	if err := v.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &errs.ValidationError{Field: strings.ToLower(verrs[0].Field()), Reason: "required"}
		}
		return &errs.ValidationError{Reason: err.Error()}
	}
	if strings.TrimSpace(input.Name) == "" {
		return &errs.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(input.Trigger) == "" {
		return &errs.ValidationError{Field: "trigger", Reason: "must not be empty"}
	}
	if strings.TrimSpace(input.Action) == "" {
		return &errs.ValidationError{Field: "action", Reason: "must not be empty"}
	}
	if len(input.Frequency) == 0 {
		return &errs.ValidationError{Field: "frequency", Reason: "select at least one weekday"}
	}
	for _, wd := range input.Frequency {
		if !models.ValidWeekday(wd) {
			return &errs.ValidationError{Field: "frequency", Reason: "unknown weekday " + string(wd)}
		}
	}
	if input.Color != "" && !models.ValidColor(input.Color) {
		return &errs.ValidationError{Field: "color", Reason: "unknown color " + string(input.Color)}
	}
	return nil
}

// Create validates input, assigns a fresh id and creation time, appends the
// habit, and persists the collection.
func (r *Registry) Create(ctx context.Context, input models.CreateHabitInput) (models.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := validateInput(r.validate, input); err != nil {
		return models.Habit{}, err
	}

	color := input.Color
	if color == "" {
		color = models.DefaultColor
	}

	h := models.Habit{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Trigger:      input.Trigger,
		Action:       input.Action,
		Color:        color,
		Frequency:    input.Frequency,
		CreatedAt:    time.Now(),
		ReminderTime: input.ReminderTime,
		Notes:        input.Notes,
	}

	r.habits = append(r.habits, h)
	if err := r.persist(ctx); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

// Update merges the patch into the matching habit and persists.
func (r *Registry) Update(ctx context.Context, id string, patch models.UpdateHabitInput) (models.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.find(id)
	if h == nil {
		return models.Habit{}, &errs.NotFoundError{Kind: "habit", ID: id}
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return models.Habit{}, &errs.ValidationError{Field: "name", Reason: "must not be empty"}
		}
		h.Name = *patch.Name
	}
	if patch.Trigger != nil {
		if strings.TrimSpace(*patch.Trigger) == "" {
			return models.Habit{}, &errs.ValidationError{Field: "trigger", Reason: "must not be empty"}
		}
		h.Trigger = *patch.Trigger
	}
	if patch.Action != nil {
		if strings.TrimSpace(*patch.Action) == "" {
			return models.Habit{}, &errs.ValidationError{Field: "action", Reason: "must not be empty"}
		}
		h.Action = *patch.Action
	}
	if patch.Color != nil {
		if !models.ValidColor(*patch.Color) {
			return models.Habit{}, &errs.ValidationError{Field: "color", Reason: "unknown color " + string(*patch.Color)}
		}
		h.Color = *patch.Color
	}
	if patch.Frequency != nil {
		if len(*patch.Frequency) == 0 {
			return models.Habit{}, &errs.ValidationError{Field: "frequency", Reason: "select at least one weekday"}
		}
		h.Frequency = *patch.Frequency
	}
	if patch.ReminderTime != nil {
		h.ReminderTime = *patch.ReminderTime
	}
	if patch.Notes != nil {
		h.Notes = *patch.Notes
	}

	if err := r.persist(ctx); err != nil {
		return models.Habit{}, err
	}
	return *h, nil
}

// Delete removes the habit and its history. Deleting a missing id is a
// no-op.
func (r *Registry) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.habits {
		if h.ID == id {
			r.habits = append(r.habits[:i], r.habits[i+1:]...)
			return r.persist(ctx)
		}
	}
	return nil
}

// ToggleCompletion flips today's completion record for the habit, creating a
// completed record when none exists. Exactly one record per date is
// maintained. The second result reports the resulting completed state so the
// caller can grant or revoke experience.
func (r *Registry) ToggleCompletion(ctx context.Context, id string, today time.Time) (models.Habit, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.find(id)
	if h == nil {
		return models.Habit{}, false, &errs.NotFoundError{Kind: "habit", ID: id}
	}

	day := today.Format(constants.DayFormat)
	rec := h.RecordFor(day)
	if rec == nil {
		now := time.Now()
		h.CompletionHistory = append(h.CompletionHistory, models.CompletionRecord{
			Date:        day,
			Completed:   true,
			CompletedAt: &now,
		})
	} else {
		rec.Completed = !rec.Completed
		if rec.Completed {
			now := time.Now()
			rec.CompletedAt = &now
		} else {
			rec.CompletedAt = nil
		}
	}

	if err := r.persist(ctx); err != nil {
		return models.Habit{}, false, err
	}
	return *h, h.RecordFor(day).Completed, nil
}

// ToggleStar flips the habit's starred flag.
func (r *Registry) ToggleStar(ctx context.Context, id string) (models.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.find(id)
	if h == nil {
		return models.Habit{}, &errs.NotFoundError{Kind: "habit", ID: id}
	}

	h.IsStarred = !h.IsStarred
	if err := r.persist(ctx); err != nil {
		return models.Habit{}, err
	}
	return *h, nil
}

// Replace swaps in a full habit collection verbatim, used by backup restore.
func (r *Registry) Replace(ctx context.Context, habits []models.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.habits = habits
	return r.persist(ctx)
}

// TodayHabits returns habits scheduled on today's weekday.
func (r *Registry) TodayHabits(today time.Time) []models.Habit {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Habit
	for _, h := range r.habits {
		if streak.IsActiveToday(h, today) {
			out = append(out, h)
		}
	}
	return out
}

// Starred returns habits with the starred flag set.
func (r *Registry) Starred() []models.Habit {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Habit
	for _, h := range r.habits {
		if h.IsStarred {
			out = append(out, h)
		}
	}
	return out
}

// CompletedTodayCount counts habits that are both scheduled and completed
// today.
func (r *Registry) CompletedTodayCount(today time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, h := range r.habits {
		if streak.IsActiveToday(h, today) && streak.IsCompletedToday(h, today) {
			count++
		}
	}
	return count
}

// ActiveTodayCount counts habits scheduled on today's weekday.
func (r *Registry) ActiveTodayCount(today time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, h := range r.habits {
		if streak.IsActiveToday(h, today) {
			count++
		}
	}
	return count
}

func (r *Registry) find(id string) *models.Habit {
	for i := range r.habits {
		if r.habits[i].ID == id {
			return &r.habits[i]
		}
	}
	return nil
}

func (r *Registry) persist(ctx context.Context) error {
	habits := r.habits
	if habits == nil {
		habits = []models.Habit{}
	}
	data, err := json.Marshal(habits)
	if err != nil {
		return &errs.StorageError{Op: "serialize", Key: constants.KeyHabits, Err: err}
	}
	return r.store.Set(ctx, constants.KeyHabits, data)
}
