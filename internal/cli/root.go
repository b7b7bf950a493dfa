package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ewhitmore/habitkit/internal/backup"
	"github.com/ewhitmore/habitkit/internal/habit"
	"github.com/ewhitmore/habitkit/internal/kv"
	"github.com/ewhitmore/habitkit/internal/models"
	"github.com/ewhitmore/habitkit/internal/progress"
	"github.com/ewhitmore/habitkit/internal/quote"
)

type Context struct {
	Store   kv.Store
	Habits  *habit.Registry
	Profile *progress.Engine
	Backup  *backup.Serializer
	Quotes  *quote.Client
}

// Load opens storage and loads both domain services.
func (c *Context) Load(ctx context.Context) error {
	if err := c.Store.Load(ctx); err != nil {
		return err
	}
	if err := c.Habits.Load(ctx); err != nil {
		return err
	}
	return c.Profile.Load(ctx)
}

var dayMap = map[string]models.Weekday{
	"mon": models.Monday, "monday": models.Monday,
	"tue": models.Tuesday, "tuesday": models.Tuesday,
	"wed": models.Wednesday, "wednesday": models.Wednesday,
	"thu": models.Thursday, "thursday": models.Thursday,
	"fri": models.Friday, "friday": models.Friday,
	"sat": models.Saturday, "saturday": models.Saturday,
	"sun": models.Sunday, "sunday": models.Sunday,
}

func parseWeekdays(s string) ([]models.Weekday, error) {
	if strings.TrimSpace(strings.ToLower(s)) == "daily" {
		return append([]models.Weekday(nil), models.AllWeekdays...), nil
	}

	parts := strings.Split(s, ",")
	var weekdays []models.Weekday
	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		wd, ok := dayMap[part]
		if !ok {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		weekdays = append(weekdays, wd)
	}
	return weekdays, nil
}

func formatFrequency(frequency []models.Weekday) string {
	if len(frequency) == 7 {
		return "daily"
	}
	var days []string
	for _, wd := range frequency {
		days = append(days, string(wd))
	}
	return strings.Join(days, ",")
}

func greeting(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return "Good Morning"
	case hour >= 12 && hour < 17:
		return "Good Afternoon"
	case hour >= 17 && hour < 22:
		return "Good Evening"
	default:
		return "Good Night"
	}
}
