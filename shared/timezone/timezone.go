package timezone

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	mu          sync.RWMutex
	appLocation = time.UTC
)

// Init sets the application timezone. Unknown or empty names fall back to UTC.
func Init(name string) {
	loc := time.UTC

	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
	} else if l, err := time.LoadLocation(name); err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Use IANA names like 'Asia/Kolkata' or 'UTC'")
	} else {
		loc = l
	}

	mu.Lock()
	appLocation = loc
	mu.Unlock()

	log.Info().Str("location", loc.String()).Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(Location())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(Location())
}

func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()

	return appLocation
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
