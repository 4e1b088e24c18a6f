package domain

import (
	"fmt"
	"time"
)

// Age is a calendar-aware age: whole years and months elapsed, where a
// month only counts once the day-of-month has been reached.
type Age struct {
	Years  int
	Months int
}

// CalculateAge computes the age at now for a YYYY-MM-DD date of birth.
// An unparseable dob yields a zero Age.
func CalculateAge(dob string, now time.Time) Age {
	birth, err := time.Parse(dateLayout, dob)
	if err != nil {
		return Age{}
	}

	years := now.Year() - birth.Year()
	months := int(now.Month()) - int(birth.Month())

	if months < 0 {
		years--
		months += 12
	}

	if now.Day() < birth.Day() {
		months--
		if months < 0 {
			months = 11
			years--
		}
	}

	return Age{Years: years, Months: months}
}

// FormatAge renders an age for display, omitting zero components and
// pluralising correctly.
func FormatAge(dob string, now time.Time) string {
	age := CalculateAge(dob, now)

	if age.Years == 0 && age.Months == 0 {
		return "Less than 1 month"
	}
	if age.Years == 0 {
		return fmt.Sprintf("%d %s", age.Months, plural(age.Months, "month"))
	}
	if age.Months == 0 {
		return fmt.Sprintf("%d %s", age.Years, plural(age.Years, "year"))
	}
	return fmt.Sprintf("%d %s %d %s",
		age.Years, plural(age.Years, "year"),
		age.Months, plural(age.Months, "month"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
