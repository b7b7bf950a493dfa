// Package streak computes completion and streak statistics for habits.
//
// All functions are pure: they read a habit's completion history against a
// reference day and never mutate anything.
//
// Streaks are record-based, not calendar-based: CurrentStreak stops at the
// first day without a completed record, whether or not that day was a
// scheduled day, and BestStreak scans only existing records, so dates with no
// record at all do not break a run. Only an explicit completed=false record
// resets it.
package streak

import (
	"math"
	"sort"
	"time"

	"github.com/ewhitmore/habitkit/internal/constants"
	"github.com/ewhitmore/habitkit/internal/models"
)

// IsActiveToday reports whether the habit is scheduled on today's weekday.
func IsActiveToday(h models.Habit, today time.Time) bool {
	return h.ActiveOn(models.WeekdayOf(today))
}

// IsCompletedToday reports whether a completed record exists for today.
func IsCompletedToday(h models.Habit, today time.Time) bool {
	rec := h.RecordFor(today.Format(constants.DayFormat))
	return rec != nil && rec.Completed
}

// CurrentStreak counts consecutive completed-record days ending at today,
// walking backward one calendar day at a time.
func CurrentStreak(h models.Habit, today time.Time) int {
	completed := make(map[string]bool, len(h.CompletionHistory))
	for _, rec := range h.CompletionHistory {
		completed[rec.Date] = rec.Completed
	}

	count := 0
	day := today
	for completed[day.Format(constants.DayFormat)] {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

// BestStreak returns the longest run of completed records in date order. A
// completed=false record resets the run; a missing date does not.
func BestStreak(h models.Habit) int {
	if len(h.CompletionHistory) == 0 {
		return 0
	}

	records := make([]models.CompletionRecord, len(h.CompletionHistory))
	copy(records, h.CompletionHistory)
	// YYYY-MM-DD sorts correctly as a string.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})

	best := 0
	run := 0
	for _, rec := range records {
		if rec.Completed {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

// CompletionRate returns the percentage of completed records among records
// within windowDays of today, rounded to the nearest integer. It returns 0
// when no records fall in the window.
func CompletionRate(h models.Habit, windowDays int, today time.Time) int {
	total := 0
	done := 0
	for _, rec := range h.CompletionHistory {
		recDay, err := time.Parse(constants.DayFormat, rec.Date)
		if err != nil {
			continue
		}
		daysDiff := int(math.Floor(today.Sub(recDay).Hours() / 24))
		if daysDiff >= windowDays {
			continue
		}
		total++
		if rec.Completed {
			done++
		}
	}

	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// TotalCompletions counts records with completed=true over the habit's whole
// history.
func TotalCompletions(h models.Habit) int {
	count := 0
	for _, rec := range h.CompletionHistory {
		if rec.Completed {
			count++
		}
	}
	return count
}
