package addressbook

import (
	"time"

	"gitlab.com/dirk.krummacker/contacts-assistant/internal/model"
)

// UpcomingWindowDays is the number of days after today that are still considered upcoming.
const UpcomingWindowDays = 7

// CongratulationLayout is the display format of a congratulation date.
const CongratulationLayout = "2006.01.02"

// Greeting tells on which day a contact should be congratulated.
type Greeting struct {
	Name               string
	Date               time.Time
	CongratulationDate string
}

// UpcomingBirthdays is the method form of UpcomingBirthdays.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []Greeting {
	return UpcomingBirthdays(b, today)
}

// UpcomingBirthdays lists every contact whose next birthday is at most UpcomingWindowDays after
// today, today included. Birthdays on a weekend are congratulated on the following Monday. The
// result follows the order of the address book.
//
// A birthday on 29 February is celebrated on 28 February in years without that day.
func UpcomingBirthdays(book *AddressBook, today time.Time) []Greeting {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	greetings := []Greeting{}
	for _, record := range book.All() {
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}
		next := anniversary(birthday, start.Year())
		if next.Before(start) {
			next = anniversary(birthday, start.Year()+1)
		}
		days := int(next.Sub(start).Hours() / 24)
		if days < 0 || days > UpcomingWindowDays {
			continue
		}
		date := moveOffWeekend(next)
		greetings = append(greetings, Greeting{
			Name:               record.Name(),
			Date:               date,
			CongratulationDate: date.Format(CongratulationLayout),
		})
	}
	return greetings
}

// anniversary returns the birthday in the given year.
func anniversary(birthday model.Birthday, year int) time.Time {
	day := birthday.Day()
	if birthday.Month() == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, birthday.Month(), day, 0, 0, 0, 0, time.UTC)
}

// moveOffWeekend moves a Saturday or Sunday to the next Monday.
func moveOffWeekend(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	}
	return date
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
