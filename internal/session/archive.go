package session

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ArchivedSession is a previous day's session, saved when the next day's
// first login replaces it.
type ArchivedSession struct {
	LoginTime  time.Time     `json:"login_time"`
	LogoutTime time.Time     `json:"logout_time"`
	ArchivedAt time.Time     `json:"archived_at"`
	OpenBreak  *time.Time    `json:"open_break,omitempty"`
	ID         string        `json:"id"`
	Breaks     []BreakRecord `json:"breaks"`
}

// TotalBreak returns the combined length of the completed breaks.
func (a *ArchivedSession) TotalBreak() time.Duration {
	return totalBreak(a.Breaks)
}

func newArchivedSession(
	loginTime, logoutTime, now time.Time,
	ledger []BreakRecord,
	openBreak time.Time,
) ArchivedSession {
	a := ArchivedSession{
		ID:         uuid.NewString(),
		LoginTime:  loginTime,
		LogoutTime: logoutTime,
		ArchivedAt: now,
		Breaks:     ledger,
	}

	if a.Breaks == nil {
		a.Breaks = []BreakRecord{}
	}

	if !openBreak.IsZero() {
		a.OpenBreak = &openBreak
	}

	return a
}

func encodeHistory(history []ArchivedSession) (string, error) {
	b, err := json.Marshal(history)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func decodeHistory(s string) ([]ArchivedSession, error) {
	var history []ArchivedSession

	err := json.Unmarshal([]byte(s), &history)
	if err != nil {
		return nil, err
	}

	return history, nil
}

func totalBreak(records []BreakRecord) time.Duration {
	var total time.Duration
	for _, r := range records {
		total += r.Duration.Total()
	}

	return total
}
