package filter

import (
	"strings"
	"time"
)

// windows - поддерживаемые относительные окна для параметра since
var windows = map[string]time.Duration{
	"1h":  time.Hour,
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
}

// Since переводит метку окна (1h, 24h, 7d) в абсолютную нижнюю границу created_after.
// Неизвестная метка означает отсутствие границы.
func Since(label string, now time.Time) (time.Time, bool) {
	d, ok := windows[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return time.Time{}, false
	}
	return now.Add(-d).UTC(), true
}
