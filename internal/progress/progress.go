// Package progress owns the user profile and converts completion events into
// experience and level changes.
package progress

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ewhitmore/habitkit/internal/constants"
	"github.com/ewhitmore/habitkit/internal/errs"
	"github.com/ewhitmore/habitkit/internal/kv"
	"github.com/ewhitmore/habitkit/internal/models"
)

// Engine holds the single user profile and persists it after every mutation.
// Construct one at application start and share the handle.
type Engine struct {
	mu      sync.Mutex
	store   kv.Store
	profile models.UserProfile
	loaded  bool
}

func New(store kv.Store) *Engine {
	return &Engine{store: store}
}

// DefaultProfile is the profile created on first load.
func DefaultProfile(now time.Time) models.UserProfile {
	return models.UserProfile{
		Name:        "Habit Warrior",
		AvatarEmoji: "👤",
		XP:          0,
		Level:       1,
		JoinedDate:  now,
	}
}

// levelFor derives the level from XP using floor division, so negative XP
// yields levels below 1 rather than truncating toward zero.
func levelFor(xp int) int {
	q := xp / constants.XPPerLevel
	if xp%constants.XPPerLevel < 0 {
		q--
	}
	return q + 1
}

// Load reads the profile from storage, creating the default profile on first
// run.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, ok, err := e.store.Get(ctx, constants.KeyUserProfile)
	if err != nil {
		return err
	}
	if !ok {
		e.profile = DefaultProfile(time.Now())
		e.loaded = true
		return e.persist(ctx)
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return &errs.StorageError{Op: "parse", Key: constants.KeyUserProfile, Err: err}
	}
	e.profile = profile
	e.loaded = true
	return nil
}

// Profile returns a copy of the current profile.
func (e *Engine) Profile() models.UserProfile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile
}

// AddXP adjusts XP by amount (negative to revoke) and recomputes the level.
func (e *Engine) AddXP(ctx context.Context, amount int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.profile.XP += amount
	e.profile.Level = levelFor(e.profile.XP)
	return e.persist(ctx)
}

// IncrementTotalCompletions bumps the lifetime completion counter. There is
// no decrement: the counter is a lifetime high-water mark, not a live tally.
func (e *Engine) IncrementTotalCompletions(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.profile.TotalHabitsCompleted++
	return e.persist(ctx)
}

// UpdateStreak records the current streak and raises the best streak when
// exceeded.
func (e *Engine) UpdateStreak(ctx context.Context, current int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.profile.CurrentStreak = current
	if current > e.profile.BestStreak {
		e.profile.BestStreak = current
	}
	return e.persist(ctx)
}

// RequiredXP returns the XP total at which the next level is reached.
func (e *Engine) RequiredXP() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile.Level * constants.XPPerLevel
}

// ProgressWithinLevel returns XP accumulated past the current level's floor.
func (e *Engine) ProgressWithinLevel() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile.XP - (e.profile.Level-1)*constants.XPPerLevel
}

// ProfilePatch is a partial profile update. Nil fields are left untouched.
type ProfilePatch struct {
	Name          *string
	AvatarEmoji   *string
	CurrentStreak *int
	BestStreak    *int
}

// UpdateProfile merges the patch into the profile and persists it.
func (e *Engine) UpdateProfile(ctx context.Context, patch ProfilePatch) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if patch.Name != nil {
		e.profile.Name = *patch.Name
	}
	if patch.AvatarEmoji != nil {
		e.profile.AvatarEmoji = *patch.AvatarEmoji
	}
	if patch.CurrentStreak != nil {
		e.profile.CurrentStreak = *patch.CurrentStreak
	}
	if patch.BestStreak != nil {
		e.profile.BestStreak = *patch.BestStreak
	}
	return e.persist(ctx)
}

// Replace swaps in a full profile verbatim, used by backup restore.
func (e *Engine) Replace(ctx context.Context, profile models.UserProfile) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.profile = profile
	return e.persist(ctx)
}

// Reset restores the default profile. The profile is never deleted.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.profile = DefaultProfile(time.Now())
	return e.persist(ctx)
}

func (e *Engine) persist(ctx context.Context) error {
	data, err := json.Marshal(e.profile)
	if err != nil {
		return &errs.StorageError{Op: "serialize", Key: constants.KeyUserProfile, Err: err}
	}
	return e.store.Set(ctx, constants.KeyUserProfile, data)
}
