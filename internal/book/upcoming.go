package book

import (
	"sort"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Greeting pairs a contact name with the date congratulations are due.
type Greeting struct {
	Name string
	Date time.Time
}

// DateString renders the congratulation date as DD.MM.YYYY.
func (g Greeting) DateString() string {
	return g.Date.Format(config.DateFormatBirthday)
}

// Upcoming returns the contacts whose birthdays fall within the half-open
// window [today, today+7). The window test uses the unshifted occurrence
// date; the returned date is shifted off weekends to the following Monday,
// so a reported date may land outside the window itself. Results are sorted
// by congratulation date, then by name. Each call recomputes from scratch.
func (ab *AddressBook) Upcoming(today time.Time) []Greeting {
	today = DateOnly(today)

	var result []Greeting
	for _, rec := range ab.Records() {
		b, ok := rec.Birthday()
		if !ok {
			continue
		}

		occ := nextOccurrence(today, b.Date())
		delta := daysBetween(today, occ)
		if delta < 0 || delta >= config.UpcomingWindowDays {
			continue
		}

		result = append(result, Greeting{
			Name: rec.Name(),
			Date: shiftWeekend(occ),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// nextOccurrence computes the birthday's date in today's year, or the next
// year if it has already passed. A Feb 29 birthday rolls forward to Mar 1 in
// non-leap target years via time.Date normalization.
func nextOccurrence(today, birth time.Time) time.Time {
	occ := time.Date(today.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	if occ.Before(today) {
		occ = time.Date(today.Year()+1, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	}
	return occ
}

// daysBetween returns the whole days from one midnight-UTC date to another.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// shiftWeekend moves Saturday two days and Sunday one day forward, both onto
// the following Monday.
func shiftWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}
