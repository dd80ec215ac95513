package ui

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/clockout/internal/session"
	"github.com/ayoisaiah/clockout/internal/timeutil"
)

const (
	noBreaksMsg  = "No breaks have been taken in this session"
	noHistoryMsg = "No archived sessions found"
	dayFormat    = "Mon, Jan 02 2006"
)

// PrintTable renders data as a boxed table whose first row is the header.
func PrintTable(data [][]string, w io.Writer) error {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	_, err = fmt.Fprintln(w, str)

	return err
}

// PrintLedger prints the completed breaks of the current session.
func PrintLedger(w io.Writer, ledger []session.BreakRecord, twentyFourHour bool) error {
	if len(ledger) == 0 {
		_, err := fmt.Fprintln(w, noBreaksMsg)
		return err
	}

	clock := timeutil.ClockFormat(twentyFourHour)

	data := [][]string{{"#", "START", "END", "DURATION"}}

	var total time.Duration

	for i, rec := range ledger {
		total += rec.Duration.Total()

		data = append(data, []string{
			strconv.Itoa(i + 1),
			rec.Start.Format(clock),
			rec.End.Format(clock),
			rec.Duration.String(),
		})
	}

	data = append(data, []string{"", "", Highlight("TOTAL"), Highlight(FormatDuration(total))})

	return PrintTable(data, w)
}

// PrintHistory prints the archived sessions, newest first.
func PrintHistory(w io.Writer, history []session.ArchivedSession, twentyFourHour bool) error {
	if len(history) == 0 {
		_, err := fmt.Fprintln(w, noHistoryMsg)
		return err
	}

	clock := timeutil.ClockFormat(twentyFourHour)

	data := [][]string{{"#", "DATE", "LOGIN", "LOGOUT", "BREAKS", "BREAK TIME"}}

	for i := len(history) - 1; i >= 0; i-- {
		s := history[i]

		breaks := strconv.Itoa(len(s.Breaks))
		if s.OpenBreak != nil {
			breaks += " " + Yellow("(+1 unfinished)")
		}

		data = append(data, []string{
			strconv.Itoa(len(history) - i),
			s.LoginTime.Format(dayFormat),
			s.LoginTime.Format(clock),
			s.LogoutTime.Format(clock),
			breaks,
			FormatDuration(s.TotalBreak()),
		})
	}

	return PrintTable(data, w)
}

// FormatDuration formats d as HH:MM.
func FormatDuration(d time.Duration) string {
	hrs, mins, _ := timeutil.SplitDuration(d)

	return fmt.Sprintf("%02d:%02d", hrs, mins)
}

// FormatElapsed formats d as HH:MM:SS.
func FormatElapsed(d time.Duration) string {
	hrs, mins, secs := timeutil.SplitDuration(d)

	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}
