package uuid

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// V7 returns a new UUIDv7 as a string.
func V7() string {
	return uuid.Must(uuid.NewV7()).String()
}

// V7AtTime returns a UUIDv7 with the underlying time of t.
func V7AtTime(t time.Time) string {
	return uuid.Must(uuid.NewV7AtTime(t)).String()
}

// V7At returns count UUIDv7 in sorted order, the first one at time t.
func V7At(t time.Time, count int) []string {
	ids := make([]string, count)
	for i := range count {
		ids[i] = V7AtTime(t.Add(time.Duration(i) * time.Millisecond))
	}

	return ids
}
