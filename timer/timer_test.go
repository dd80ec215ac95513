package timer

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/clockout/internal/session"
	"github.com/ayoisaiah/clockout/internal/settings"
	"github.com/ayoisaiah/clockout/internal/timeutil"
	"github.com/ayoisaiah/clockout/store"
)

type harness struct {
	now      time.Time
	mu       sync.Mutex
	engine   *session.Engine
	timer    *Timer
	notified []string
}

func (h *harness) clock() timeutil.Clock {
	return timeutil.ClockFunc(func() time.Time {
		h.mu.Lock()
		defer h.mu.Unlock()

		return h.now
	})
}

func (h *harness) advance(d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.now = h.now.Add(d)
}

func newHarness(t *testing.T, login bool) (*harness, error) {
	t.Helper()

	h := &harness{now: time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)}

	kv := store.NewMemory()

	e, err := session.New(kv, &settings.StoreProvider{KV: kv}, session.WithClock(h.clock()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = e.Close()
	})

	h.engine = e

	if login {
		require.NoError(t, e.Login())
	}

	h.timer, err = New(context.Background(), e, Options{
		Clock:          h.clock(),
		TwentyFourHour: true,
		Notifications:  true,
		Notify: func(title, msg string) error {
			h.notified = append(h.notified, title+": "+msg)
			return nil
		},
	})

	return h, err
}

func press(t *Timer, k string) tea.Cmd {
	_, cmd := t.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	return cmd
}

func TestNewRequiresLogin(t *testing.T) {
	_, err := newHarness(t, false)
	assert.ErrorIs(t, err, errNotLoggedIn)
}

func TestBreakKeys(t *testing.T) {
	h, err := newHarness(t, true)
	require.NoError(t, err)

	assert.Contains(t, h.timer.View(), "WORKING")
	assert.Contains(t, h.timer.View(), "start break")

	h.advance(time.Hour)

	cmd := press(h.timer, "b")
	assert.NotNil(t, cmd, "starting a break watches it")
	assert.NoError(t, h.timer.err)
	assert.Equal(t, session.OnBreak, h.engine.State())
	assert.Contains(t, h.timer.View(), "ON BREAK")
	assert.Contains(t, h.timer.View(), "stop break")

	h.advance(25 * time.Minute)

	press(h.timer, "s")
	assert.NoError(t, h.timer.err)
	assert.Equal(t, session.LoggedIn, h.engine.State())
	assert.Len(t, h.timer.rm.Ledger, 1)
	assert.Contains(t, h.timer.View(), "1 breaks today, 00:25 in total")

	press(h.timer, "s")
	assert.ErrorIs(t, h.timer.err, session.ErrInvalidTransition)
	assert.Contains(t, h.timer.View(), "cannot stop a break while logged in")
}

func TestQuit(t *testing.T) {
	h, err := newHarness(t, true)
	require.NoError(t, err)

	cmd := press(h.timer, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, h.timer.View())
	assert.Error(t, h.timer.ctx.Err())
}

func TestElapsedFromWatcher(t *testing.T) {
	h, err := newHarness(t, true)
	require.NoError(t, err)

	press(h.timer, "b")

	current := h.timer.elapsed
	require.NotNil(t, current)

	_, cmd := h.timer.Update(elapsedMsg{ch: current, elapsed: 3 * time.Second, ok: true})
	assert.NotNil(t, cmd)
	assert.Equal(t, 3*time.Second, h.timer.rm.ActiveBreak.Elapsed)

	stale := make(chan time.Duration)

	_, cmd = h.timer.Update(elapsedMsg{ch: stale, elapsed: time.Hour, ok: true})
	assert.Nil(t, cmd)
	assert.Equal(t, 3*time.Second, h.timer.rm.ActiveBreak.Elapsed)

	_, cmd = h.timer.Update(elapsedMsg{ch: current, ok: false})
	assert.Nil(t, cmd)
}

func TestRefreshRecomputesElapsed(t *testing.T) {
	h, err := newHarness(t, true)
	require.NoError(t, err)

	press(h.timer, "b")

	// the terminal was suspended for 40 minutes
	h.advance(40 * time.Minute)

	h.timer.Update(refreshMsg{})

	require.NotNil(t, h.timer.rm.ActiveBreak)
	assert.Equal(t, 40*time.Minute, h.timer.rm.ActiveBreak.Elapsed)
	assert.Contains(t, h.timer.View(), "00:40:00")
}

func TestLogoutNotification(t *testing.T) {
	h, err := newHarness(t, true)
	require.NoError(t, err)

	assert.Nil(t, h.timer.notifyLogout())

	h.advance(8 * time.Hour)
	h.timer.reload()

	cmd := h.timer.notifyLogout()
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.Equal(t, []string{"Time to clock out: Your working hours ended at 17:00:00"}, h.notified)

	assert.Nil(t, h.timer.notifyLogout(), "the notification is sent once")
	assert.Contains(t, h.timer.View(), "of overtime")
}

func TestDayProgress(t *testing.T) {
	h, err := newHarness(t, true)
	require.NoError(t, err)

	login := h.timer.rm.LoginTime

	assert.InDelta(t, 0, h.timer.dayProgress(login.Add(-time.Hour)), 0.0001)
	assert.InDelta(t, 0.5, h.timer.dayProgress(login.Add(4*time.Hour)), 0.0001)
	assert.InDelta(t, 1, h.timer.dayProgress(login.Add(10*time.Hour)), 0.0001)
}
