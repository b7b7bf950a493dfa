package models

import "time"

// UserProfile holds the single user's display metadata and gamification
// state. Level is always derived from XP, never set independently.
type UserProfile struct {
	Name                 string    `json:"name"`
	AvatarEmoji          string    `json:"avatar_emoji"`
	XP                   int       `json:"xp"`
	Level                int       `json:"level"`
	CurrentStreak        int       `json:"current_streak"`
	BestStreak           int       `json:"best_streak"`
	TotalHabitsCompleted int       `json:"total_habits_completed"`
	JoinedDate           time.Time `json:"joined_date"`
}
