package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day at minute resolution.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "HH:MM". Malformed strings are rejected so a bad
// schedule never replaces a previously installed valid one.
func ParseClockTime(raw string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, raw)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, raw)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, raw)
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

// ClockTimeOf truncates t to its time-of-day.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

func (t ClockTime) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ClockRange is a daily recurring interval. When Start > End the range wraps
// past midnight, e.g. ["22:00","02:00"] contains 23:30 and 01:00 but not
// 10:00.
type ClockRange struct {
	Start ClockTime
	End   ClockTime
}

func (r ClockRange) Contains(t ClockTime) bool {
	start, end, at := r.Start.Minutes(), r.End.Minutes(), t.Minutes()
	if start <= end {
		return at >= start && at <= end
	}

	return at >= start || at <= end
}

// RangeConfig configures window polling and the retry policy. Retry counts
// and intervals are read-only to the schedule engine.
type RangeConfig struct {
	Window               ClockRange
	RetryEnabled         bool
	RetryIntervalMinutes int
	MaxRetries           int
	InfiniteRetry        bool
}

func (c RangeConfig) Validate() error {
	if !c.RetryEnabled {
		return nil
	}
	if c.RetryIntervalMinutes <= 0 {
		return fmt.Errorf("%w: retry interval must be positive", ErrInvalidSchedule)
	}
	if !c.InfiniteRetry && c.MaxRetries <= 0 {
		return fmt.Errorf("%w: max retries must be positive", ErrInvalidSchedule)
	}

	return nil
}

// ScheduleConfig holds zero-or-one fixed daily trigger and an optional
// polling window. A nil Range means window polling is disabled, which is how
// configs from before the range feature are read.
type ScheduleConfig struct {
	FixedTime *ClockTime
	Range     *RangeConfig
}

func (c ScheduleConfig) Validate() error {
	if c.Range == nil {
		return nil
	}

	return c.Range.Validate()
}
