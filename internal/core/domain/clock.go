package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidTime = errors.New("invalid time (expected HH:MM or HH:MM:SS)")
	ErrInvalidDate = errors.New("invalid date (expected YYYY-MM-DD)")
)

const dateLayout = "2006-01-02"

// Clock is a time of day with minute precision, stored as minutes since
// midnight. Seconds in the source text are discarded on parse, so
// "09:41:27" and "09:41:59" parse to the same value.
type Clock int

func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ClockFromSeconds truncates a seconds-since-midnight instant to the
// minute. The result may fall outside a single day; the tracking
// generator clamps it against gym hours before it is serialized.
func ClockFromSeconds(sec int) Clock {
	return Clock(sec / 60)
}

// ParseClock reads the "HH:MM" prefix of text. Anything after the first
// five characters (a seconds suffix, usually) is ignored.
func ParseClock(text string) (Clock, error) {
	if len(text) < 5 || text[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, text)
	}
	hour, ok := twoDigits(text[0:2])
	if !ok || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, text)
	}
	minute, ok := twoDigits(text[3:5])
	if !ok || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, text)
	}
	return NewClock(hour, minute), nil
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// String renders the full "HH:MM:SS" form used in tracking documents.
// The seconds component is always zero.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:00", c.Hour(), c.Minute())
}

// Slot renders the "HH:MM" form used as a key in processed load documents.
func (c Clock) Slot() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTime, data)
	}
	parsed, err := ParseClock(text)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func ParseDate(text string) (time.Time, error) {
	date, err := time.Parse(dateLayout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	return date, nil
}

func FormatDate(date time.Time) string {
	return date.Format(dateLayout)
}

// WeekdayName returns the lowercase English weekday used as a schedule key.
func WeekdayName(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}
