package model

import "time"

const localDayLayout = "2006-01-02"

// SameLocalDay reports whether a and b fall on the same calendar day in the
// server's local time zone. Day filtering is deliberately coarse: clients in
// other time zones see day boundaries as the server observes them.
func SameLocalDay(a, b time.Time) bool {
	return a.Local().Format(localDayLayout) == b.Local().Format(localDayLayout)
}
