package service

import (
	"time"

	"github.com/blaisecz/step-tracker/internal/domain"
)

// Clock returns the current instant. Services default to time.Now.
type Clock func() time.Time

func (c Clock) orDefault() Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// localNow is the current instant in the user's time zone; calendar days and
// periods of that user are derived from it.
func localNow(clock Clock, user *domain.User) time.Time {
	return clock().In(user.Location())
}
