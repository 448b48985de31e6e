package constants

const (
	// Habits partition
	KeyHabits        = "habits_json"
	KeyHabitLastDate = "habits_last_date"

	// Habit history partition; full key is HabitHistoryKeyPrefix + YYYY-MM-DD
	HabitHistoryKeyPrefix = "habit_hist_"

	// Hydration state lives in the settings partition
	KeyHydrationDailyTarget = "hydration_daily_target"
	KeyHydrationIntake      = "hydration_intake"
	KeyHydrationLastDate    = "hydration_last_date"

	// Hydration amounts in millilitres
	DefaultHydrationTargetMl = 1600
	MinHydrationTargetMl     = 200
	GlassMl                  = 200
	DoubleGlassMl            = 400
)
