package toml

import (
	"fmt"

	"github.com/bnema/cubesign/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Sessions []sessionSchema `toml:"sessions"`
	Target   targetSchema    `toml:"target"`
	Schedule scheduleSchema  `toml:"schedule"`
	Remote   remoteSchema    `toml:"remote"`
	Push     pushSchema      `toml:"push"`
	Notify   notifySchema    `toml:"notify"`
	Debug    bool            `toml:"debug,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	Name   string `toml:"name"`
	Cookie string `toml:"cookie"`
}

type targetSchema struct {
	ClassID   string  `toml:"class_id"`
	Longitude float64 `toml:"longitude"`
	Latitude  float64 `toml:"latitude"`
	Accuracy  string  `toml:"accuracy,omitempty"`
}

type scheduleSchema struct {
	// FixedTime is "HH:MM"; empty disables the fixed daily trigger.
	FixedTime string       `toml:"fixed_time,omitempty"`
	Range     *rangeSchema `toml:"range,omitempty"`
}

// rangeSchema is absent entirely in configs written before window polling
// existed; a nil Range keeps those configs loading unchanged.
type rangeSchema struct {
	Start                string `toml:"start"`
	End                  string `toml:"end"`
	Retry                bool   `toml:"retry"`
	RetryIntervalMinutes int    `toml:"retry_interval_minutes,omitempty"`
	MaxRetries           int    `toml:"max_retries,omitempty"`
	InfiniteRetry        bool   `toml:"infinite_retry,omitempty"`
}

type remoteSchema struct {
	BaseURL string `toml:"base_url,omitempty"`
}

type pushSchema struct {
	Token string `toml:"token,omitempty"`
}

type notifySchema struct {
	System bool `toml:"system"`
}

func fromSchema(file fileSchema) (domain.Config, error) {
	cfg := domain.Config{
		RemoteBaseURL: file.Remote.BaseURL,
		PushToken:     file.Push.Token,
		SystemNotify:  file.Notify.System,
		Debug:         file.Debug,
	}

	for _, entry := range file.Sessions {
		cfg.Sessions = append(cfg.Sessions, domain.Session{
			DisplayName: entry.Name,
			Cookie:      entry.Cookie,
		})
	}

	cfg.Target = domain.CheckInTarget{
		ClassID:   file.Target.ClassID,
		Longitude: file.Target.Longitude,
		Latitude:  file.Target.Latitude,
		Accuracy:  file.Target.Accuracy,
	}

	if file.Schedule.FixedTime != "" {
		fixed, err := domain.ParseClockTime(file.Schedule.FixedTime)
		if err != nil {
			return domain.Config{}, fmt.Errorf("schedule fixed_time: %w", err)
		}
		cfg.Schedule.FixedTime = &fixed
	}

	if window := file.Schedule.Range; window != nil {
		start, err := domain.ParseClockTime(window.Start)
		if err != nil {
			return domain.Config{}, fmt.Errorf("schedule range start: %w", err)
		}
		end, err := domain.ParseClockTime(window.End)
		if err != nil {
			return domain.Config{}, fmt.Errorf("schedule range end: %w", err)
		}

		cfg.Schedule.Range = &domain.RangeConfig{
			Window:               domain.ClockRange{Start: start, End: end},
			RetryEnabled:         window.Retry,
			RetryIntervalMinutes: window.RetryIntervalMinutes,
			MaxRetries:           window.MaxRetries,
			InfiniteRetry:        window.InfiniteRetry,
		}
	}

	return cfg, nil
}

func toSchema(cfg domain.Config) fileSchema {
	file := fileSchema{
		Version: currentSchemaVersion,
		Target: targetSchema{
			ClassID:   cfg.Target.ClassID,
			Longitude: cfg.Target.Longitude,
			Latitude:  cfg.Target.Latitude,
			Accuracy:  cfg.Target.Accuracy,
		},
		Remote: remoteSchema{BaseURL: cfg.RemoteBaseURL},
		Push:   pushSchema{Token: cfg.PushToken},
		Notify: notifySchema{System: cfg.SystemNotify},
		Debug:  cfg.Debug,
	}

	for _, session := range cfg.Sessions {
		file.Sessions = append(file.Sessions, sessionSchema{
			Name:   session.DisplayName,
			Cookie: session.Cookie,
		})
	}

	if cfg.Schedule.FixedTime != nil {
		file.Schedule.FixedTime = cfg.Schedule.FixedTime.String()
	}

	if window := cfg.Schedule.Range; window != nil {
		file.Schedule.Range = &rangeSchema{
			Start:                window.Window.Start.String(),
			End:                  window.Window.End.String(),
			Retry:                window.RetryEnabled,
			RetryIntervalMinutes: window.RetryIntervalMinutes,
			MaxRetries:           window.MaxRetries,
			InfiniteRetry:        window.InfiniteRetry,
		}
	}

	return file
}
