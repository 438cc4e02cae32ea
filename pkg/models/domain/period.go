package domain

import "time"

// Period is a half-open time window [Start, End).
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// Label renders the month for menus and filenames, e.g. "2026-08".
func (m Month) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// Period returns the month as a half-open window in loc: the first instant of
// the month up to the first instant of the following month.
func (m Month) Period(loc *time.Location) Period {
	start := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
	return Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// RecentMonths lists the n calendar months up to and including the one
// containing now, most recent first.
func RecentMonths(now time.Time, n int) []Month {
	months := make([]Month, 0, n)
	cursor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < n; i++ {
		months = append(months, Month{Year: cursor.Year(), Month: cursor.Month()})
		cursor = cursor.AddDate(0, -1, 0)
	}
	return months
}
