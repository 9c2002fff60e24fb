package model

import (
	"fmt"
	"time"
)

// BirthdayLayout is the only accepted input and display format of a birthday.
const BirthdayLayout = "02.01.2006"

// Birthday is a calendar date without a time of day. It is stored as midnight UTC.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw strictly as DD.MM.YYYY. Day and month need their leading zeros and the
// date has to exist in the calendar, so "1.1.2020" and "31.02.2024" are both rejected.
func NewBirthday(raw string) (Birthday, error) {
	date, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return Birthday{date: date}, nil
}

// BirthdayFromTime keeps the calendar date of t and drops everything else.
func BirthdayFromTime(t time.Time) Birthday {
	return Birthday{date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Month returns the month of the birthday.
func (b Birthday) Month() time.Month {
	return b.date.Month()
}

// Day returns the day of the month of the birthday.
func (b Birthday) Day() int {
	return b.date.Day()
}

// Time returns the birthday as midnight UTC.
func (b Birthday) Time() time.Time {
	return b.date
}

func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}
