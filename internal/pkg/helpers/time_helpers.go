package helpers

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns the default on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses a YYYY-MM-DD value.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// ParseDatePtr parses an optional YYYY-MM-DD value, returning nil for nil or
// empty input.
func ParseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Round2 rounds a value to two decimal places, the precision used by every
// reported rate and monetary figure.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
