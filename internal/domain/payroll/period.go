package payroll

import (
	"time"

	"github.com/wellpay/wellpay-backend-go/internal/pkg/validator"
)

// PeriodBounds returns the first and last calendar day of a (month, year)
// payroll period. Month lengths follow the Gregorian calendar, so February
// resolves to 28 or 29 days depending on the year.
func PeriodBounds(month, year int) (start, end time.Time, err error) {
	if !validator.IsValidPeriod(month, year) {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}

	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end, nil
}
