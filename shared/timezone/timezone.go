// Package timezone pins every calendar computation to the property's
// configured IANA zone (APP_TIMEZONE). Check-in and check-out days are
// hotel-local days, so "today", parsing, and formatting must all agree
// on one location regardless of where the service runs.
package timezone

import (
	"time"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
)

var appLocation *time.Location

func init() {
	cfg := config.Get()

	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Use IANA names like 'Asia/Jakarta' or 'America/New_York'")

		appLocation = time.UTC

		return
	}

	appLocation = loc

	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now is the current time in the application zone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime shifts t into the application zone.
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation never returns nil; UTC stands in when init failed.
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Parse reads value as a local time in the application zone, so a bare
// date like "2024-06-10" lands on the hotel's midnight.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format renders t in the application zone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
