// Package period implements the 21st-to-20th monthly billing cycle used for
// quota tracking. A period is named after the calendar month its start day
// falls in: the March period runs 21 March through 20 April.
package period

import "time"

const startDay = 21

// Period is a closed [Start, End] window of calendar dates.
type Period struct {
	Start time.Time
	End   time.Time
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// For returns the billing period that starts on the 21st of the given month.
func For(month time.Month, year int) Period {
	endMonth, endYear := month+1, year
	if month == time.December {
		endMonth, endYear = time.January, year+1
	}
	return Period{
		Start: date(year, month, startDay),
		End:   date(endYear, endMonth, startDay-1),
	}
}

// Current returns the billing period containing today. On or after the 21st
// the window opens this month; before the 21st it opened the previous month.
func Current(today time.Time) Period {
	if today.Day() >= startDay {
		return For(today.Month(), today.Year())
	}
	month, year := today.Month()-1, today.Year()
	if today.Month() == time.January {
		month, year = time.December, today.Year()-1
	}
	return For(month, year)
}

// Previous returns the adjacent earlier period.
func (p Period) Previous() Period {
	month, year := p.Start.Month()-1, p.Start.Year()
	if p.Start.Month() == time.January {
		month, year = time.December, p.Start.Year()-1
	}
	return For(month, year)
}

// Next returns the adjacent later period.
func (p Period) Next() Period {
	month, year := p.Start.Month()+1, p.Start.Year()
	if p.Start.Month() == time.December {
		month, year = time.January, p.Start.Year()+1
	}
	return For(month, year)
}

// Contains reports whether d falls inside the period, inclusive on both ends.
func (p Period) Contains(d time.Time) bool {
	d = date(d.Year(), d.Month(), d.Day())
	return !d.Before(p.Start) && !d.After(p.End)
}
