package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ayoisaiah/clockout/internal/session"
	"github.com/ayoisaiah/clockout/internal/timeutil"
)

// PrintStatus prints a summary of the read model as of now.
func PrintStatus(w io.Writer, rm session.ReadModel, now time.Time, twentyFourHour bool) error {
	if rm.State == session.LoggedOut {
		_, err := fmt.Fprintln(w, "You are not logged in. Run 'clockout login' to start the day")
		return err
	}

	clock := timeutil.ClockFormat(twentyFourHour)

	var b strings.Builder

	row := func(label, value string) {
		fmt.Fprintf(&b, "%-12s %s\n", label+":", value)
	}

	row("State", Highlight(rm.State))
	row("Logged in", rm.LoginTime.Format(clock+" ("+dayFormat+")"))
	row("Logout at", Green(rm.LogoutTime.Format(clock)))

	if left := rm.LogoutTime.Sub(now); left > 0 {
		row("Time left", FormatDuration(left))
	} else {
		row("Overtime", Red(FormatDuration(-left)))
	}

	if rm.ActiveBreak != nil {
		row("On break", fmt.Sprintf(
			"%s since %s",
			Yellow(FormatElapsed(rm.ActiveBreak.Elapsed)),
			rm.ActiveBreak.Start.Format(clock),
		))
	}

	row("Breaks", fmt.Sprintf("%d (%s total)", len(rm.Ledger), FormatDuration(rm.TotalBreak)))

	if rm.Stale {
		fmt.Fprintln(&b, Yellow("This session started on an earlier day. Log in again to start today's session"))
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// BreakView is the JSON form of a completed break.
type BreakView struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration string    `json:"duration"`
}

// ActiveBreakView is the JSON form of the break in progress.
type ActiveBreakView struct {
	Start          time.Time `json:"start"`
	ElapsedSeconds int64     `json:"elapsed_seconds"`
}

// StatusView is the JSON form of the read model.
type StatusView struct {
	LoginTime         *time.Time       `json:"login_time,omitempty"`
	LogoutTime        *time.Time       `json:"logout_time,omitempty"`
	ActiveBreak       *ActiveBreakView `json:"active_break,omitempty"`
	State             string           `json:"state"`
	Breaks            []BreakView      `json:"breaks"`
	TotalBreakMinutes int64            `json:"total_break_minutes"`
	Stale             bool             `json:"stale"`
}

// NewBreakViews converts ledger records to their JSON form.
func NewBreakViews(ledger []session.BreakRecord) []BreakView {
	views := make([]BreakView, len(ledger))

	for i, rec := range ledger {
		views[i] = BreakView{
			Start:    rec.Start,
			End:      rec.End,
			Duration: rec.Duration.String(),
		}
	}

	return views
}

// NewStatusView converts a read model to its JSON form.
func NewStatusView(rm session.ReadModel) StatusView {
	v := StatusView{
		State:             rm.State.String(),
		Breaks:            NewBreakViews(rm.Ledger),
		TotalBreakMinutes: int64(rm.TotalBreak / time.Minute),
		Stale:             rm.Stale,
	}

	if rm.State == session.LoggedOut {
		return v
	}

	v.LoginTime = &rm.LoginTime
	v.LogoutTime = &rm.LogoutTime

	if rm.ActiveBreak != nil {
		v.ActiveBreak = &ActiveBreakView{
			Start:          rm.ActiveBreak.Start,
			ElapsedSeconds: int64(rm.ActiveBreak.Elapsed / time.Second),
		}
	}

	return v
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}
