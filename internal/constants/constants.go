package constants

const (
	// XPPerLevel is the amount of experience needed to advance one level.
	XPPerLevel = 1000
	// XPPerHabit is the experience granted for completing a habit,
	// and revoked when a completion is undone.
	XPPerHabit = 50

	// SnapshotVersion is the backup document schema version.
	SnapshotVersion = "1.0.0"
	// AppTag identifies backup documents produced by this app. Import
	// rejects documents carrying any other tag.
	AppTag = "HabitTracker"

	// DayFormat is the calendar-day identifier layout used throughout
	// completion history and statistics.
	DayFormat = "2006-01-02"
)

// Storage keys used with the persistence gateway.
const (
	KeyHabits          = "habits"
	KeyUserProfile     = "user_profile"
	KeyLastBackupTime  = "last_backup_time"
	KeyLastRestoreTime = "last_restore_time"
)
