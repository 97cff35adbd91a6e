package domain

import (
	"errors"
	"fmt"
)

var ErrScheduleNotFound = errors.New("no operating hours configured for weekday")

// DayHours is one weekday's operating window.
type DayHours struct {
	Opening Clock `json:"opening"`
	Closing Clock `json:"closing"`
}

// Clamp forces t into the operating window: max(opening, min(t, closing)).
// Idempotent, and total over any Clock value including instants past
// midnight produced by the tracking generator.
func (h DayHours) Clamp(t Clock) Clock {
	if t < h.Opening {
		return h.Opening
	}
	if t > h.Closing {
		return h.Closing
	}
	return t
}

// Contains reports whether t falls inside [opening, closing).
func (h DayHours) Contains(t Clock) bool {
	return t >= h.Opening && t < h.Closing
}

// GymConfig is the persisted gym_config.json document.
type GymConfig struct {
	Schedule map[string]DayHours `json:"schedule"`
}

func (c *GymConfig) Hours(weekday string) (DayHours, error) {
	hours, ok := c.Schedule[weekday]
	if !ok {
		return DayHours{}, fmt.Errorf("%w: %s", ErrScheduleNotFound, weekday)
	}
	return hours, nil
}
