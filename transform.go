package eventbrite

import (
	"strings"
	"time"
)

// TimestampLayout is the date format the API reads and writes.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp encodes a time.Time as TimestampLayout.
// The time is formatted in its own location; callers convert beforehand if needed.
func FormatTimestamp(v any) string {
	return v.(time.Time).Format(TimestampLayout)
}

// ParseTimestamp parses a timestamp found in an API response.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}

// CommaJoined encodes a []string as a comma separated list.
func CommaJoined(v any) string {
	return strings.Join(v.([]string), ",")
}

// BoolOneZero encodes a bool as "1" or "0".
func BoolOneZero(v any) string {
	if v.(bool) {
		return "1"
	}
	return "0"
}

// BoolTrueFalse encodes a bool as "true" or "false".
func BoolTrueFalse(v any) string {
	if v.(bool) {
		return "true"
	}
	return "false"
}
