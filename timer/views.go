package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/clockout/internal/session"
	"github.com/ayoisaiah/clockout/internal/timeutil"
	"github.com/ayoisaiah/clockout/internal/ui"
)

func (t *Timer) stateView() string {
	if t.rm.State == session.OnBreak {
		return t.style.onBreak.Render("ON BREAK")
	}

	return t.style.loggedIn.Render("WORKING")
}

func (t *Timer) countdownView() string {
	now := t.opts.Clock.Now()
	left := t.rm.LogoutTime.Sub(now)

	if left > 0 {
		return t.style.main.Render(ui.FormatElapsed(left)) +
			t.style.hint.Render(" until clock out")
	}

	return t.style.warning.Render(ui.FormatElapsed(-left)) +
		t.style.hint.Render(" of overtime")
}

func (t *Timer) breakView() string {
	clock := timeutil.ClockFormat(t.opts.TwentyFourHour)

	var s strings.Builder

	if b := t.rm.ActiveBreak; b != nil {
		s.WriteString(t.style.secondary.Render("On break for "))
		s.WriteString(t.style.main.Render(ui.FormatElapsed(b.Elapsed)))
		s.WriteString(t.style.hint.Render(" since " + b.Start.Format(clock)))
		s.WriteString("\n")
	}

	s.WriteString(t.style.hint.Render(fmt.Sprintf(
		"%d breaks today, %s in total",
		len(t.rm.Ledger),
		ui.FormatDuration(t.rm.TotalBreak),
	)))

	return s.String()
}

func (t *Timer) helpView() string {
	binding := defaultKeymap.startBreak
	if t.rm.State == session.OnBreak {
		binding = defaultKeymap.stopBreak
	}

	return t.help.ShortHelpView([]key.Binding{binding, defaultKeymap.quit})
}

func (t *Timer) View() string {
	if t.quitting {
		return ""
	}

	clock := timeutil.ClockFormat(t.opts.TwentyFourHour)

	var s strings.Builder

	s.WriteString(t.style.title.Render("clockout"))
	s.WriteString(t.stateView())
	s.WriteString("\n\n")
	s.WriteString(t.style.hint.Render(fmt.Sprintf(
		"Logged in at %s, clock out at %s",
		t.rm.LoginTime.Format(clock),
		t.rm.LogoutTime.Format(clock),
	)))
	s.WriteString("\n\n")
	s.WriteString(t.countdownView())
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.dayProgress(t.opts.Clock.Now())))
	s.WriteString("\n\n")
	s.WriteString(t.breakView())

	if t.rm.Stale {
		s.WriteString("\n\n")
		s.WriteString(t.style.warning.Render(
			"This session started on an earlier day. Run 'clockout login' to start today's",
		))
	}

	if t.err != nil {
		s.WriteString("\n\n")
		s.WriteString(t.style.err.Render(t.err.Error()))
	}

	s.WriteString("\n\n")
	s.WriteString(t.helpView())

	return t.style.base.Render(s.String())
}
