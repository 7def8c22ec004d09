package heartbeat

import (
	"fmt"
	"time"
)

// FormatTimestamp renders t in UTC as yyyy-MM-ddTHH:mm:sssZ, where the
// last field is the second of the minute padded to three digits,
// e.g. 2026-10-14T09:05:007Z. Consumers parse this exact shape.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s%03dZ", t.Format("2006-01-02T15:04:"), t.Second())
}
