// Package timer operates the live clockout dashboard: the projected logout
// countdown and the running break timer
package timer

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/clockout/internal/session"
	"github.com/ayoisaiah/clockout/internal/timeutil"
)

const (
	padding  = 2
	maxWidth = 60

	refreshInterval = time.Second
)

// Engine is the part of the session engine the dashboard drives.
type Engine interface {
	Snapshot() (session.ReadModel, error)
	StartBreak() error
	StopBreak() (session.BreakRecord, error)
	WatchBreak(ctx context.Context, every time.Duration) <-chan time.Duration
}

// Notifier shows a desktop notification.
type Notifier func(title, message string) error

// Options configures the dashboard.
type Options struct {
	Clock          timeutil.Clock
	Notify         Notifier
	TwentyFourHour bool
	DarkTheme      bool
	Notifications  bool
}

// Timer is the bubbletea model for the dashboard.
type Timer struct {
	ctx      context.Context
	engine   Engine
	err      error
	cancel   context.CancelFunc
	elapsed  <-chan time.Duration
	style    style
	opts     Options
	rm       session.ReadModel
	help     help.Model
	progress progress.Model
	// notified is set once the logout notification has been sent
	notified bool
	quitting bool
}

type (
	refreshMsg time.Time

	// elapsedMsg carries a value from the break watcher. ok is false once
	// the watcher has stopped.
	elapsedMsg struct {
		ch      <-chan time.Duration
		elapsed time.Duration
		ok      bool
	}

	errMsg struct{ err error }
)

// New returns a dashboard over engine.
func New(ctx context.Context, engine Engine, opts Options) (*Timer, error) {
	if opts.Clock == nil {
		opts.Clock = timeutil.SystemClock{}
	}

	if opts.Notify == nil {
		opts.Notify = desktopNotify
	}

	rm, err := engine.Snapshot()
	if err != nil {
		return nil, err
	}

	if rm.State == session.LoggedOut {
		return nil, errNotLoggedIn
	}

	ctx, cancel := context.WithCancel(ctx)

	t := &Timer{
		ctx:      ctx,
		cancel:   cancel,
		engine:   engine,
		opts:     opts,
		rm:       rm,
		style:    newStyle(opts.DarkTheme),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}

	// no notification for a logout that had already passed when the
	// dashboard was opened
	t.notified = t.logoutReached()

	return t, nil
}

// Run starts the dashboard and blocks until the user quits.
func (t *Timer) Run() error {
	defer t.cancel()

	_, err := tea.NewProgram(t).Run()

	return err
}

func (t *Timer) Init() tea.Cmd {
	return tea.Batch(refresh(), t.watch())
}

func refresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(ts time.Time) tea.Msg {
		return refreshMsg(ts)
	})
}

// watch subscribes to the active break, if any, and waits for its first
// value.
func (t *Timer) watch() tea.Cmd {
	if t.rm.ActiveBreak == nil {
		t.elapsed = nil
		return nil
	}

	t.elapsed = t.engine.WatchBreak(t.ctx, refreshInterval)

	return waitForElapsed(t.elapsed)
}

func waitForElapsed(ch <-chan time.Duration) tea.Cmd {
	return func() tea.Msg {
		d, ok := <-ch
		return elapsedMsg{ch: ch, elapsed: d, ok: ok}
	}
}

// logoutReached reports whether the projected logout time of the current
// session has passed.
func (t *Timer) logoutReached() bool {
	if t.rm.State == session.LoggedOut || t.rm.Stale {
		return false
	}

	return !t.opts.Clock.Now().Before(t.rm.LogoutTime)
}

func (t *Timer) notifyLogout() tea.Cmd {
	if t.notified || !t.opts.Notifications || !t.logoutReached() {
		return nil
	}

	t.notified = true

	clock := timeutil.ClockFormat(t.opts.TwentyFourHour)
	msg := "Your working hours ended at " + t.rm.LogoutTime.Format(clock)
	notify := t.opts.Notify

	return func() tea.Msg {
		if err := notify("Time to clock out", msg); err != nil {
			return errMsg{err}
		}

		return nil
	}
}

func desktopNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}
