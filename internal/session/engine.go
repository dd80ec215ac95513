// Package session implements the work session engine: login, the logout
// projection, break tracking and the break ledger
package session

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/ayoisaiah/clockout/internal/settings"
	"github.com/ayoisaiah/clockout/internal/timeutil"
	"github.com/ayoisaiah/clockout/store"
)

// State is the position of the engine in the session lifecycle.
type State int

const (
	LoggedOut State = iota
	LoggedIn
	OnBreak
)

func (s State) String() string {
	switch s {
	case LoggedIn:
		return "logged in"
	case OnBreak:
		return "on a break"
	default:
		return "logged out"
	}
}

// Event identifies a committed transition.
type Event string

const (
	EventLogin        Event = "login"
	EventBreakStarted Event = "break_started"
	EventBreakStopped Event = "break_stopped"
)

// Listener is notified after each committed transition.
type Listener func(Event, ReadModel)

// ActiveBreak is a break in progress.
type ActiveBreak struct {
	Start   time.Time
	Elapsed time.Duration
}

// ReadModel is a snapshot of the engine state for presentation.
type ReadModel struct {
	LoginTime   time.Time
	LogoutTime  time.Time
	ActiveBreak *ActiveBreak
	Ledger      []BreakRecord
	TotalBreak  time.Duration
	State       State
	// Stale is set when the login happened on an earlier calendar day. The
	// next login archives the session.
	Stale bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source. The system clock is used by default.
func WithClock(c timeutil.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithWeekend sets the days whose logins use the weekend hours.
func WithWeekend(d DaySet) Option {
	return func(e *Engine) {
		e.weekend = d
	}
}

// WithLocation sets the time zone that stored timestamps are read into. It
// decides the calendar day of a reloaded login. The local time zone is used
// by default.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		e.loc = loc
	}
}

// Engine owns the canonical session state. In-memory state is only updated
// after the matching store write succeeds.
type Engine struct {
	kv         store.KV
	settings   settings.Provider
	clock      timeutil.Clock
	loc        *time.Location
	loginTime  time.Time
	breakStart time.Time
	listeners  map[int]Listener
	// breakDone is closed when the active break ends
	breakDone chan struct{}
	done      chan struct{}
	ledger    []BreakRecord
	warnings  []error
	nextID    int
	mu        sync.Mutex
	state     State
	weekend   DaySet
	closed    bool
}

// New returns an engine whose state is reconstructed from kv. Malformed
// stored values are treated as absent and reported by Warnings.
func New(kv store.KV, sp settings.Provider, opts ...Option) (*Engine, error) {
	e := &Engine{
		kv:        kv,
		settings:  sp,
		clock:     timeutil.SystemClock{},
		loc:       time.Local,
		weekend:   DefaultWeekend,
		listeners: make(map[int]Listener),
		done:      make(chan struct{}),
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := e.load(); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Engine) warn(err error) {
	e.warnings = append(e.warnings, err)

	slog.Warn("ignoring stored value", slog.Any("error", err))
}

// getTimestamp reads a timestamp slot. A malformed value is reported as a
// warning and treated as absent.
func (e *Engine) getTimestamp(key string) (time.Time, error) {
	v, ok, err := e.kv.Get(key)
	if err != nil {
		return time.Time{}, ErrStoreUnavailable.Wrap(err)
	}

	if !ok {
		return time.Time{}, nil
	}

	t, err := parseTimestamp(v)
	if err != nil {
		e.warn(ErrMalformedValue.Fmt(key).Wrap(err))
		return time.Time{}, nil
	}

	return t.In(e.loc), nil
}

func (e *Engine) load() error {
	loginTime, err := e.getTimestamp(store.KeyLoginTime)
	if err != nil {
		return err
	}

	breakStart, err := e.getTimestamp(store.KeyBreakStartTime)
	if err != nil {
		return err
	}

	v, ok, err := e.kv.Get(store.KeyBreakRecords)
	if err != nil {
		return ErrStoreUnavailable.Wrap(err)
	}

	var ledger []BreakRecord

	if ok {
		ledger, err = decodeLedger(v)
		if err != nil {
			e.warn(ErrMalformedValue.Fmt(store.KeyBreakRecords).Wrap(err))
			ledger = nil
		}

		for i := range ledger {
			ledger[i].Start = ledger[i].Start.In(e.loc)
			ledger[i].End = ledger[i].End.In(e.loc)
		}
	}

	if c, ok := e.settings.(settings.Checker); ok {
		warnings, err := c.Check()
		if err != nil {
			return ErrStoreUnavailable.Wrap(err)
		}

		for _, w := range warnings {
			e.warn(w)
		}
	}

	_, corrupt, err := e.readHistory()
	if err != nil {
		return err
	}

	if corrupt != "" {
		e.warn(ErrMalformedValue.Fmt(store.KeySessionHistory).Wrap(
			fmt.Errorf("it is moved to %s when the next session is archived", store.KeySessionHistoryBackup),
		))
	}

	if loginTime.IsZero() && !breakStart.IsZero() {
		e.warn(
			ErrMalformedValue.Fmt(store.KeyBreakStartTime).
				Wrap(fmt.Errorf("break started at %s without a login", formatTimestamp(breakStart))),
		)

		breakStart = time.Time{}
	}

	e.loginTime = loginTime
	e.breakStart = breakStart
	e.ledger = ledger

	switch {
	case loginTime.IsZero():
		e.state = LoggedOut
	case breakStart.IsZero():
		e.state = LoggedIn
	default:
		e.state = OnBreak
		e.breakDone = make(chan struct{})
	}

	slog.Debug(
		"session engine loaded",
		slog.String("state", e.state.String()),
		slog.Int("breaks", len(e.ledger)),
	)

	return nil
}

// isStale reports whether loginTime belongs to an earlier calendar day than
// now.
func isStale(loginTime, now time.Time) bool {
	return timeutil.RoundToStart(now).
		After(timeutil.RoundToStart(loginTime.In(now.Location())))
}

// Login starts a new session at the current time. It is rejected while a
// session from the same calendar day exists. A session from an earlier day
// is archived and replaced.
func (e *Engine) Login() error {
	return e.commit(EventLogin, e.login)
}

func (e *Engine) login() error {
	now := e.clock.Now()

	ops := []store.Op{
		store.Put(store.KeyLoginTime, formatTimestamp(now)),
		store.Put(store.KeyBreakRecords, "[]"),
		store.Delete(store.KeyBreakStartTime),
	}

	if e.state != LoggedOut {
		if !isStale(e.loginTime, now) {
			return ErrInvalidTransition.Fmt("log in", e.state)
		}

		archived, err := e.archive(now)
		if err != nil {
			return err
		}

		ops = append(ops, archived...)
	}

	if err := store.Apply(e.kv, ops...); err != nil {
		return ErrStoreUnavailable.Wrap(err)
	}

	e.endBreak()

	e.loginTime = now
	e.ledger = nil
	e.state = LoggedIn

	return nil
}

// archive prepares the writes that append the current session to the
// history. An unreadable history is moved to its backup key instead of
// being dropped.
func (e *Engine) archive(now time.Time) ([]store.Op, error) {
	s, err := e.settings.Settings()
	if err != nil {
		return nil, ErrStoreUnavailable.Wrap(err)
	}

	history, corrupt, err := e.readHistory()
	if err != nil {
		return nil, err
	}

	var ops []store.Op

	if corrupt != "" {
		slog.Warn(
			"backing up unreadable history",
			slog.String("key", store.KeySessionHistoryBackup),
		)

		ops = append(ops, store.Put(store.KeySessionHistoryBackup, corrupt))
	}

	history = append(history, newArchivedSession(
		e.loginTime,
		ProjectLogout(e.loginTime, s, e.weekend),
		now,
		slices.Clone(e.ledger),
		e.breakStart,
	))

	blob, err := encodeHistory(history)
	if err != nil {
		return nil, err
	}

	return append(ops, store.Put(store.KeySessionHistory, blob)), nil
}

// StartBreak begins a break at the current time.
func (e *Engine) StartBreak() error {
	return e.commit(EventBreakStarted, e.startBreak)
}

func (e *Engine) startBreak() error {
	if e.state != LoggedIn {
		return ErrInvalidTransition.Fmt("start a break", e.state)
	}

	now := e.clock.Now()

	last := e.loginTime
	if n := len(e.ledger); n > 0 {
		last = e.ledger[n-1].End
	}

	if now.Before(last) {
		return ErrClockSkew.Fmt(formatTimestamp(now), formatTimestamp(last))
	}

	if err := e.kv.Set(store.KeyBreakStartTime, formatTimestamp(now)); err != nil {
		return ErrStoreUnavailable.Wrap(err)
	}

	e.breakStart = now
	e.breakDone = make(chan struct{})
	e.state = OnBreak

	return nil
}

// StopBreak ends the active break and appends it to the ledger.
func (e *Engine) StopBreak() (BreakRecord, error) {
	var rec BreakRecord

	err := e.commit(EventBreakStopped, func() error {
		var err error

		rec, err = e.stopBreak()

		return err
	})

	return rec, err
}

func (e *Engine) stopBreak() (BreakRecord, error) {
	if e.state != OnBreak {
		return BreakRecord{}, ErrInvalidTransition.Fmt("stop a break", e.state)
	}

	now := e.clock.Now()

	d, err := ComputeDuration(e.breakStart, now)
	if err != nil {
		return BreakRecord{}, err
	}

	rec := BreakRecord{
		Start:    e.breakStart,
		End:      now,
		Duration: d,
	}

	ledger := append(slices.Clone(e.ledger), rec)

	blob, err := encodeLedger(ledger)
	if err != nil {
		return BreakRecord{}, err
	}

	// the new ledger replaces the old one and the break start is cleared in
	// the same write
	err = store.Apply(e.kv,
		store.Put(store.KeyBreakRecords, blob),
		store.Delete(store.KeyBreakStartTime),
	)
	if err != nil {
		return BreakRecord{}, ErrStoreUnavailable.Wrap(err)
	}

	e.ledger = ledger
	e.endBreak()
	e.state = LoggedIn

	return rec, nil
}

// endBreak clears the active break and releases its watchers.
func (e *Engine) endBreak() {
	if e.breakDone != nil {
		close(e.breakDone)
		e.breakDone = nil
	}

	e.breakStart = time.Time{}
}

// commit runs a transition under the lock and, if it succeeds, notifies the
// listeners outside of it.
func (e *Engine) commit(event Event, fn func() error) error {
	e.mu.Lock()

	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}

	if err := fn(); err != nil {
		e.mu.Unlock()

		slog.Debug("transition rejected", slog.String("event", string(event)), slog.Any("error", err))

		return err
	}

	slog.Info("transition committed", slog.String("event", string(event)))

	rm, err := e.snapshot()
	listeners := make([]Listener, 0, len(e.listeners))

	for _, id := range slices.Sorted(maps.Keys(e.listeners)) {
		listeners = append(listeners, e.listeners[id])
	}

	e.mu.Unlock()

	if err != nil {
		slog.Warn("unable to notify listeners", slog.Any("error", err))
		return nil
	}

	for _, l := range listeners {
		l(event, rm)
	}

	return nil
}

// Snapshot returns the current read model. The logout time is projected from
// the settings as they are now.
func (e *Engine) Snapshot() (ReadModel, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshot()
}

func (e *Engine) snapshot() (ReadModel, error) {
	rm := ReadModel{
		State:      e.state,
		Ledger:     slices.Clone(e.ledger),
		TotalBreak: totalBreak(e.ledger),
	}

	if e.state == LoggedOut {
		return rm, nil
	}

	s, err := e.settings.Settings()
	if err != nil {
		return ReadModel{}, ErrStoreUnavailable.Wrap(err)
	}

	now := e.clock.Now()

	rm.LoginTime = e.loginTime
	rm.LogoutTime = ProjectLogout(e.loginTime, s, e.weekend)
	rm.Stale = isStale(e.loginTime, now)

	if e.state == OnBreak {
		rm.ActiveBreak = &ActiveBreak{
			Start:   e.breakStart,
			Elapsed: max(now.Sub(e.breakStart), 0),
		}
	}

	return rm, nil
}

// State returns the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Elapsed returns the running length of the active break, recomputed from
// its stored start time. The boolean is false when there is no active break.
func (e *Engine) Elapsed() (time.Duration, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != OnBreak {
		return 0, false
	}

	return max(e.clock.Now().Sub(e.breakStart), 0), true
}

// Ledger returns a copy of the completed breaks in chronological order.
func (e *Engine) Ledger() []BreakRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Clone(e.ledger)
}

// Warnings returns the problems found in the stored state when the engine
// was created.
func (e *Engine) Warnings() []error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Clone(e.warnings)
}

// History returns the archived sessions, oldest first.
func (e *Engine) History() ([]ArchivedSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.history()
}

func (e *Engine) history() ([]ArchivedSession, error) {
	history, _, err := e.readHistory()

	return history, err
}

// readHistory decodes the stored history. When the value cannot be decoded
// the raw value is returned in corrupt and history is nil.
func (e *Engine) readHistory() (history []ArchivedSession, corrupt string, err error) {
	v, ok, err := e.kv.Get(store.KeySessionHistory)
	if err != nil {
		return nil, "", ErrStoreUnavailable.Wrap(err)
	}

	if !ok {
		return nil, "", nil
	}

	history, err = decodeHistory(v)
	if err != nil {
		slog.Warn(
			"ignoring stored value",
			slog.Any("error", ErrMalformedValue.Fmt(store.KeySessionHistory).Wrap(err)),
		)

		return nil, v, nil
	}

	return history, "", nil
}

// Subscribe registers l to be called after every committed transition. The
// returned function removes it.
func (e *Engine) Subscribe(l Listener) (cancel func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.listeners[id] = l

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		delete(e.listeners, id)
	}
}

// Close stops all break watchers and rejects further transitions. The store
// is left open.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}

	e.closed = true
	close(e.done)

	return nil
}
