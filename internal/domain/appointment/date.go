package appointment

import "time"

const DateLayout = "2006-01-02"

// IsFutureDate reports whether dateStr (YYYY-MM-DD) falls on a calendar day strictly after now's.
func IsFutureDate(dateStr string, now time.Time) bool {
	d, err := time.ParseInLocation(DateLayout, dateStr, now.Location())
	if err != nil {
		return false
	}
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, now.Location())
	return d.After(today)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
