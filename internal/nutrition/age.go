package nutrition

import "time"

// AgeInMonths returns the dog's age in whole months and whether it is known.
//
// Only the calendar year and month fields are compared; the day of month is ignored,
// so a dog born on the 31st is one month old on the 1st of the next month. The
// result is clamped at zero when now is before the birth date.
func AgeInMonths(birthDate *time.Time, now time.Time) (int, bool) {
	if birthDate == nil {
		return 0, false
	}
	months := (now.Year()-birthDate.Year())*12 + int(now.Month()) - int(birthDate.Month())
	if months < 0 {
		months = 0
	}
	return months, true
}
