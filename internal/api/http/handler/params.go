package handler

import (
	"net/http"
	"strconv"
	"time"
)

// queryInt parses an integer query parameter. Absent or malformed values
// yield 0, which the stores treat as "use the default limit".
func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// queryDate parses an optional date query parameter, accepting RFC 3339 or
// a plain calendar date. Returns nil when the parameter is absent.
func queryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, &time.ParseError{Layout: time.RFC3339, Value: raw}
}
