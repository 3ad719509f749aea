package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns the default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// CoalesceString returns the override value when present, otherwise the current one.
// Partial updates rely on this so omitted fields are left untouched.
func CoalesceString(override *string, current string) string {
	if override != nil {
		return *override
	}
	return current
}

// CoalesceStringPtr returns the override pointer when present, otherwise the current one.
func CoalesceStringPtr(override, current *string) *string {
	if override != nil {
		return override
	}
	return current
}

// CoalesceInt returns the override value when present, otherwise the current one.
func CoalesceInt(override *int, current int) int {
	if override != nil {
		return *override
	}
	return current
}

// CoalesceBool returns the override value when present, otherwise the current one.
func CoalesceBool(override *bool, current bool) bool {
	if override != nil {
		return *override
	}
	return current
}
