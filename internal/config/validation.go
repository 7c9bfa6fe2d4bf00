package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate checks configuration values.
// Returns sentinel errors checkable with errors.Is().
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}

	if c.ModelName == "" {
		return fmt.Errorf("%w: model_name cannot be empty", ErrInvalidModelName)
	}

	if c.Temperature < 0.0 || c.Temperature > 2.0 {
		return fmt.Errorf("%w: must be between 0.0 and 2.0, got %.2f", ErrInvalidTemperature, c.Temperature)
	}

	if c.TopP <= 0.0 || c.TopP > 1.0 {
		return fmt.Errorf("%w: must be in (0.0, 1.0], got %.2f", ErrInvalidTopP, c.TopP)
	}

	if c.FrequencyPenalty < -2.0 || c.FrequencyPenalty > 2.0 {
		return fmt.Errorf("%w: frequency_penalty must be between -2.0 and 2.0, got %.2f", ErrInvalidPenalty, c.FrequencyPenalty)
	}

	if c.PresencePenalty < -2.0 || c.PresencePenalty > 2.0 {
		return fmt.Errorf("%w: presence_penalty must be between -2.0 and 2.0, got %.2f", ErrInvalidPenalty, c.PresencePenalty)
	}

	if c.MaxTokens < 1 || c.MaxTokens > 2097152 {
		return fmt.Errorf("%w: must be between 1 and 2,097,152, got %d", ErrInvalidMaxTokens, c.MaxTokens)
	}

	if c.MaxMessageLength < 1 {
		return fmt.Errorf("%w: must be positive, got %d", ErrInvalidMessageLength, c.MaxMessageLength)
	}

	if c.MaxContextTurns < 1 {
		return fmt.Errorf("%w: must be positive, got %d", ErrInvalidContextTurns, c.MaxContextTurns)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: must be between 1 and 65535, got %d", ErrInvalidPort, c.Port)
	}

	if _, _, err := ParseQuota(c.RateLimit); err != nil {
		return err
	}

	return nil
}

// ParseQuota parses a "count/window" rate-limit expression such as
// "30/minute" into a request count and the window duration in seconds.
// Supported windows: second, minute, hour.
func ParseQuota(quota string) (count int, windowSeconds int, err error) {
	countStr, window, ok := strings.Cut(quota, "/")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q is not count/window", ErrInvalidRateLimitQuota, quota)
	}

	count, err = strconv.Atoi(strings.TrimSpace(countStr))
	if err != nil || count < 1 {
		return 0, 0, fmt.Errorf("%w: count in %q must be a positive integer", ErrInvalidRateLimitQuota, quota)
	}

	switch strings.TrimSpace(strings.ToLower(window)) {
	case "second":
		windowSeconds = 1
	case "minute":
		windowSeconds = 60
	case "hour":
		windowSeconds = 3600
	default:
		return 0, 0, fmt.Errorf("%w: unknown window in %q (want second, minute, or hour)", ErrInvalidRateLimitQuota, quota)
	}

	return count, windowSeconds, nil
}
