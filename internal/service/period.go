package service

import (
	"time"

	"mytime/pkg/apperrors"
	"mytime/pkg/constants"
)

// MonthRange returns the epoch-second window [from, to) covering the calendar
// month in loc: from is its first second, to is the first second of the next month.
func MonthRange(year, month int, loc *time.Location) (from, to int64, err error) {
	if month < 1 || month > 12 {
		return 0, 0, apperrors.NewValidationError(constants.MsgInvalidMonth)
	}
	if year < 1000 || year > 9999 {
		return 0, 0, apperrors.NewValidationError(constants.MsgInvalidYear)
	}
	if loc == nil {
		loc = time.UTC
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return start.Unix(), start.AddDate(0, 1, 0).Unix(), nil
}
