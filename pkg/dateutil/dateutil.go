package dateutil

import "time"

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// Parse reads a YYYY-MM-DD string into a UTC midnight time.Time.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func Format(t time.Time) string { return t.UTC().Format(Layout) }

// Normalize truncates to UTC midnight so dates compare at day granularity.
func Normalize(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func Today() time.Time { return Normalize(time.Now()) }

// DaysInclusive counts days in [from, to], both ends included.
func DaysInclusive(from, to time.Time) int {
	from, to = Normalize(from), Normalize(to)
	return int(to.Sub(from).Hours()/24) + 1
}

// YearBounds returns [Jan 1 of year, Jan 1 of year+1) as UTC midnights.
func YearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}
