package payroll

// Stress level bounds.
const (
	MinStressLevel = 1
	MaxStressLevel = 10
)

// StressLevel derives the severity score from reported monthly overtime
// hours: one level per full ten hours, starting at 1, capped at 10.
// Integer division floors: 0-9h -> 1, 10-19h -> 2, ..., 90h and up -> 10.
func StressLevel(overtimeHours int) int {
	level := overtimeHours/10 + 1
	if level > MaxStressLevel {
		return MaxStressLevel
	}
	if level < MinStressLevel {
		return MinStressLevel
	}
	return level
}
