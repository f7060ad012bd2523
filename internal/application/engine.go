package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/cubesign/internal/domain"
	"github.com/bnema/cubesign/internal/ports"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const dayKeyLayout = "2006-01-02"

type dayPhase string

const (
	phaseIdle          dayPhase = "idle"
	phaseAwaitingRetry dayPhase = "awaiting_retry"
	phaseExhausted     dayPhase = "exhausted_retries"
	phaseSucceeded     dayPhase = "succeeded_today"
)

type triggerKind string

const (
	triggerFixed  triggerKind = "fixed"
	triggerWindow triggerKind = "window"
	triggerRetry  triggerKind = "retry"
	triggerManual triggerKind = "manual"
)

// Engine decides when a check-in attempt runs. It owns the per-day success
// registry and retry counters; both are process-local and forgotten on
// restart. All day bookkeeping uses the engine's location.
//
// At most one attempt is in flight at a time: a trigger firing while an
// attempt runs is dropped, never queued, so check-ins are never
// double-submitted. A hung remote call therefore blocks the gate until the
// transport gives up.
type Engine struct {
	runner   CheckInRunner
	notifier ports.Notifier
	push     ports.PushGateway
	clock    ports.Clock
	logger   *slog.Logger
	location *time.Location

	mu              sync.Mutex
	cfg             domain.Config
	fixedSchedule   cron.Schedule
	nextFixed       time.Time
	nextRetryAt     time.Time
	dayKey          string
	phase           dayPhase
	dailySuccess    map[string]bool
	retryCount      map[string]int
	attemptInFlight bool

	running  atomic.Bool
	stopChan chan struct{}
}

func NewEngine(runner CheckInRunner, notifier ports.Notifier, push ports.PushGateway, clock ports.Clock, logger *slog.Logger, location *time.Location) *Engine {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if location == nil {
		location = time.Local
	}

	return &Engine{
		runner:       runner,
		notifier:     notifier,
		push:         push,
		clock:        clock,
		logger:       logger,
		location:     location,
		phase:        phaseIdle,
		dailySuccess: map[string]bool{},
		retryCount:   map[string]int{},
		stopChan:     make(chan struct{}),
	}
}

// Reconfigure installs a new schedule. Any pending retry re-entry and the
// previously computed fixed fire are cancelled first, so stale triggers
// never fire after reconfiguration. A malformed schedule is rejected and the
// previously installed one keeps running.
func (e *Engine) Reconfigure(cfg domain.Config) error {
	if err := cfg.Schedule.Validate(); err != nil {
		return err
	}

	var fixedSchedule cron.Schedule
	if fixed := cfg.Schedule.FixedTime; fixed != nil {
		parsed, err := cron.ParseStandard(fmt.Sprintf("%d %d * * *", fixed.Minute, fixed.Hour))
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidSchedule, err)
		}
		fixedSchedule = parsed
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now().In(e.location)

	e.cfg = cfg
	e.fixedSchedule = fixedSchedule
	e.nextFixed = time.Time{}
	if fixedSchedule != nil {
		e.nextFixed = fixedSchedule.Next(now)
	}
	e.nextRetryAt = time.Time{}
	e.dayKey = now.Format(dayKeyLayout)
	e.phase = phaseIdle
	if e.dailySuccess[e.dayKey] {
		e.phase = phaseSucceeded
	}

	e.logger.Info("schedule configured",
		"fixed", clockString(cfg.Schedule.FixedTime),
		"window", windowString(cfg.Schedule.Range),
		"sessions", len(cfg.Sessions),
	)

	return nil
}

// Start runs the minute-resolution trigger loop until Stop is called or the
// context is cancelled.
func (e *Engine) Start(ctx context.Context) {
	if !e.running.CompareAndSwap(false, true) {
		return
	}

	defer e.running.Store(false)

	e.mu.Lock()
	e.stopChan = make(chan struct{})
	stop := e.stopChan
	e.mu.Unlock()

	timer := time.NewTimer(0)
	defer timer.Stop()

	e.logger.Info("schedule engine started")

	for {
		select {
		case <-timer.C:
			e.tick(ctx, e.clock.Now())
			next := e.clock.Now().In(e.location).Add(time.Minute).Truncate(time.Minute)
			timer.Reset(next.Sub(e.clock.Now()))

		case <-stop:
			return

		case <-ctx.Done():
			return
		}
	}
}

// Stop halts the trigger loop. The engine can be started again afterwards;
// Start installs a fresh stop channel on every call.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}

	e.mu.Lock()
	close(e.stopChan)
	e.mu.Unlock()

	e.logger.Info("schedule engine stopped")
}

// RunNow is the manual trigger. It bypasses the daily-success gating but
// still records the outcome, so a user can force a re-check even after the
// day already succeeded.
func (e *Engine) RunNow(ctx context.Context) (domain.AggregateResult, error) {
	e.mu.Lock()
	if e.attemptInFlight {
		e.mu.Unlock()
		return domain.AggregateResult{}, domain.ErrAttemptInFlight
	}
	e.attemptInFlight = true
	cfg := e.cfg
	e.mu.Unlock()

	return e.runAttempt(ctx, triggerManual, cfg)
}

// TodaySucceeded reports whether a success has been recorded for the current
// calendar day. Absence of an entry means false.
func (e *Engine) TodaySucceeded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := e.clock.Now().In(e.location).Format(dayKeyLayout)
	return e.dailySuccess[key]
}

// ResetToday clears the success mark for the current day so scheduled
// triggers fire again.
func (e *Engine) ResetToday() {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := e.clock.Now().In(e.location).Format(dayKeyLayout)
	delete(e.dailySuccess, key)
	if e.phase == phaseSucceeded {
		e.phase = phaseIdle
	}

	e.logger.Info("today's success state reset", "day", key)
}

func (e *Engine) tick(ctx context.Context, now time.Time) {
	now = now.In(e.location)

	e.mu.Lock()
	e.rolloverLocked(now)

	if e.attemptInFlight {
		e.mu.Unlock()
		return
	}

	trigger, due := e.dueTriggerLocked(now)
	if !due {
		e.mu.Unlock()
		return
	}

	switch trigger {
	case triggerFixed:
		e.nextFixed = e.fixedSchedule.Next(now)
	case triggerRetry:
		// A retry deadline grants exactly one re-entry.
		e.nextRetryAt = time.Time{}
	}

	e.attemptInFlight = true
	cfg := e.cfg
	e.mu.Unlock()

	_, _ = e.runAttempt(ctx, trigger, cfg)
}

// rolloverLocked resets the day state when the calendar day changes.
// SucceededToday and ExhaustedRetries are terminal only until midnight.
func (e *Engine) rolloverLocked(now time.Time) {
	key := now.Format(dayKeyLayout)
	if key == e.dayKey {
		return
	}

	e.dayKey = key
	e.nextRetryAt = time.Time{}
	// A fixed fire suppressed by a terminal phase leaves a past deadline
	// behind; recompute so the new day fires at the configured time, not at
	// the first tick after midnight.
	if e.fixedSchedule != nil {
		e.nextFixed = e.fixedSchedule.Next(now)
	}
	e.phase = phaseIdle
	if e.dailySuccess[key] {
		e.phase = phaseSucceeded
	}
}

func (e *Engine) dueTriggerLocked(now time.Time) (triggerKind, bool) {
	switch e.phase {
	case phaseSucceeded, phaseExhausted:
		return "", false

	case phaseAwaitingRetry:
		if !e.nextRetryAt.IsZero() && !now.Before(e.nextRetryAt) {
			return triggerRetry, true
		}
		return "", false
	}

	if e.fixedSchedule != nil && !e.nextFixed.IsZero() && !now.Before(e.nextFixed) {
		return triggerFixed, true
	}

	if window := e.cfg.Schedule.Range; window != nil && window.Window.Contains(domain.ClockTimeOf(now)) {
		return triggerWindow, true
	}

	return "", false
}

func (e *Engine) runAttempt(ctx context.Context, trigger triggerKind, cfg domain.Config) (domain.AggregateResult, error) {
	defer func() {
		e.mu.Lock()
		e.attemptInFlight = false
		e.mu.Unlock()
	}()

	attemptID := uuid.NewString()[:8]
	log := e.logger.With("attempt", attemptID, "trigger", string(trigger))

	if len(cfg.Sessions) == 0 {
		log.Error("no sessions configured, attempt suppressed")
		e.notifier.Notify(ctx, domain.Notification{
			Title:    notificationTitle,
			Body:     "No sessions are configured; check-in was not attempted.",
			Severity: domain.SeverityError,
		})
		return domain.AggregateResult{}, domain.ErrNoSessions
	}

	log.Info("check-in attempt starting", "sessions", len(cfg.Sessions))

	result := e.runner.RunCheckIn(ctx, cfg.Sessions, cfg.Target)

	e.mu.Lock()
	e.applyOutcomeLocked(e.clock.Now().In(e.location), cfg, result)
	phase := e.phase
	e.mu.Unlock()

	log.Info("check-in attempt finished",
		"overall_success", result.OverallSuccess,
		"invalid_sessions", len(result.InvalidSessions),
		"phase", string(phase),
	)

	summary := summarize(result)
	e.notifier.Notify(ctx, summary)

	// State is already committed; the push result only gets logged.
	if cfg.PushToken != "" {
		if err := e.push.SendPush(ctx, cfg.PushToken, summary.Title, summary.Body); err != nil {
			log.Warn("push notification failed", "err", err)
		}
	}

	return result, nil
}

// applyOutcomeLocked is the only writer of the success registry and retry
// counters.
func (e *Engine) applyOutcomeLocked(now time.Time, cfg domain.Config, result domain.AggregateResult) {
	key := now.Format(dayKeyLayout)
	e.dayKey = key

	switch {
	case result.OverallSuccess || result.AllAlreadySigned():
		e.dailySuccess[key] = true
		delete(e.retryCount, key)
		e.nextRetryAt = time.Time{}
		e.phase = phaseSucceeded

	case result.AllNoTask():
		// No work existed: neither success nor failure, no retry.
		e.phase = phaseIdle

	default:
		window := cfg.Schedule.Range
		if window == nil || !window.RetryEnabled {
			e.phase = phaseIdle
			return
		}

		if window.InfiniteRetry || e.retryCount[key] < window.MaxRetries {
			e.retryCount[key]++
			e.nextRetryAt = now.Add(time.Duration(window.RetryIntervalMinutes) * time.Minute)
			e.phase = phaseAwaitingRetry
			return
		}

		e.phase = phaseExhausted
	}
}

func clockString(t *domain.ClockTime) string {
	if t == nil {
		return "off"
	}

	return t.String()
}

func windowString(window *domain.RangeConfig) string {
	if window == nil {
		return "off"
	}

	return window.Window.Start.String() + "-" + window.Window.End.String()
}
