package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

// reload replaces the read model with a fresh snapshot. Elapsed break time
// is recomputed from the stored start, so a suspended terminal catches up
// on the next refresh.
func (t *Timer) reload() {
	rm, err := t.engine.Snapshot()
	if err != nil {
		t.err = err
		return
	}

	t.rm = rm
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.startBreak):
		err := t.engine.StartBreak()
		t.reload()
		t.err = err

		if err != nil {
			return t, nil
		}

		return t, t.watch()

	case key.Matches(msg, defaultKeymap.stopBreak):
		_, err := t.engine.StopBreak()
		t.reload()
		t.err = err

		return t, nil

	case key.Matches(msg, defaultKeymap.quit):
		t.quitting = true
		t.cancel()

		return t, tea.Quit
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		t.reload()

		return t, tea.Batch(refresh(), t.notifyLogout())

	case elapsedMsg:
		// values from a watcher that has since been replaced are dropped
		if !msg.ok || msg.ch != t.elapsed {
			return t, nil
		}

		if t.rm.ActiveBreak != nil {
			t.rm.ActiveBreak.Elapsed = msg.elapsed
		}

		return t, waitForElapsed(t.elapsed)

	case errMsg:
		slog.Warn("dashboard error", slog.Any("error", msg.err))
		t.err = msg.err

		return t, nil

	case tea.KeyMsg:
		slog.Debug("dashboard key", slog.String("msg", spew.Sdump(msg)))

		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return t, nil

	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}

// dayProgress returns the share of the working day that has passed.
func (t *Timer) dayProgress(now time.Time) float64 {
	total := t.rm.LogoutTime.Sub(t.rm.LoginTime)
	if total <= 0 {
		return 1
	}

	return min(max(float64(now.Sub(t.rm.LoginTime))/float64(total), 0), 1)
}
