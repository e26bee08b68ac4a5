package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrGenerationUnavailable is returned when the AI provider fails for any
// reason other than rate limiting: auth, network, or an unusable reply after
// all parse attempts.
var ErrGenerationUnavailable = errors.New("recipe generation is temporarily unavailable")

// RateLimitError is returned when the provider (and, if enabled, the
// fallback provider) rejected the request for rate limiting. RetryAfter is a
// hint for the caller; zero means the provider gave none.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("provider %s rate limited, retry after %s", e.Provider, e.RetryAfter)
	}
	return fmt.Sprintf("provider %s rate limited", e.Provider)
}

// IsRateLimited reports whether err is (or wraps) a RateLimitError.
func IsRateLimited(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}
