package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    ClockTime
		wantErr bool
	}{
		{name: "plain", raw: "08:30", want: ClockTime{Hour: 8, Minute: 30}},
		{name: "midnight", raw: "00:00", want: ClockTime{}},
		{name: "last minute", raw: "23:59", want: ClockTime{Hour: 23, Minute: 59}},
		{name: "surrounding whitespace", raw: " 09:05 ", want: ClockTime{Hour: 9, Minute: 5}},
		{name: "hour out of range", raw: "24:00", wantErr: true},
		{name: "minute out of range", raw: "10:60", wantErr: true},
		{name: "missing separator", raw: "1030", wantErr: true},
		{name: "not numeric", raw: "ab:cd", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockTime(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidClockTime)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockRangeContains(t *testing.T) {
	mustClock := func(raw string) ClockTime {
		t.Helper()
		parsed, err := ParseClockTime(raw)
		require.NoError(t, err)
		return parsed
	}

	tests := []struct {
		name  string
		start string
		end   string
		at    string
		want  bool
	}{
		{name: "inside plain range", start: "08:00", end: "18:00", at: "10:00", want: true},
		{name: "at range start", start: "08:00", end: "18:00", at: "08:00", want: true},
		{name: "at range end", start: "08:00", end: "18:00", at: "18:00", want: true},
		{name: "outside plain range", start: "08:00", end: "18:00", at: "19:00", want: false},
		{name: "wrapped before midnight", start: "22:00", end: "02:00", at: "23:30", want: true},
		{name: "wrapped after midnight", start: "22:00", end: "02:00", at: "01:00", want: true},
		{name: "outside wrapped range early morning", start: "22:00", end: "02:00", at: "03:00", want: false},
		{name: "outside wrapped range daytime", start: "22:00", end: "02:00", at: "10:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := ClockRange{Start: mustClock(tt.start), End: mustClock(tt.end)}
			assert.Equal(t, tt.want, rng.Contains(mustClock(tt.at)))
		})
	}
}

func TestRangeConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RangeConfig
		wantErr bool
	}{
		{name: "retry disabled ignores retry fields", cfg: RangeConfig{}},
		{name: "bounded retry", cfg: RangeConfig{RetryEnabled: true, RetryIntervalMinutes: 5, MaxRetries: 3}},
		{name: "infinite retry without max", cfg: RangeConfig{RetryEnabled: true, RetryIntervalMinutes: 5, InfiniteRetry: true}},
		{name: "zero interval rejected", cfg: RangeConfig{RetryEnabled: true, MaxRetries: 3}, wantErr: true},
		{name: "zero max retries rejected", cfg: RangeConfig{RetryEnabled: true, RetryIntervalMinutes: 5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSchedule)
				return
			}

			require.NoError(t, err)
		})
	}
}
