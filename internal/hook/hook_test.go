package hook

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/clockout/internal/config"
	"github.com/ayoisaiah/clockout/internal/session"
)

type call struct {
	name string
	args []string
	env  []string
}

func recorder(calls *[]call, err error) Exec {
	return func(_ context.Context, env []string, name string, args ...string) error {
		*calls = append(*calls, call{name: name, args: args, env: env})
		return err
	}
}

func TestRun(t *testing.T) {
	var calls []call

	r := New(config.HooksConfig{
		Login:     `notify-send "Logged in" 'have a good day'`,
		BreakStop: "   ",
	})
	r.exec = recorder(&calls, nil)

	login := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	rm := session.ReadModel{
		LoginTime:  login,
		LogoutTime: login.Add(8 * time.Hour),
		TotalBreak: 90 * time.Minute,
		State:      session.LoggedIn,
	}

	require.NoError(t, r.Run(context.Background(), session.EventLogin, rm))
	require.NoError(t, r.Run(context.Background(), session.EventBreakStarted, rm))
	require.NoError(t, r.Run(context.Background(), session.EventBreakStopped, rm))

	require.Len(t, calls, 1)
	assert.Equal(t, "notify-send", calls[0].name)
	assert.Equal(t, []string{"Logged in", "have a good day"}, calls[0].args)
	assert.Equal(t, []string{
		"CLOCKOUT_EVENT=login",
		"CLOCKOUT_LOGIN_TIME=2024-01-08T09:00:00Z",
		"CLOCKOUT_LOGOUT_TIME=2024-01-08T17:00:00Z",
		"CLOCKOUT_TOTAL_BREAK=1h30m0s",
	}, calls[0].env)
}

func TestRunInvalidCommand(t *testing.T) {
	var calls []call

	r := New(config.HooksConfig{BreakStart: `echo "unterminated`})
	r.exec = recorder(&calls, nil)

	err := r.Run(context.Background(), session.EventBreakStarted, session.ReadModel{})
	assert.Error(t, err)
	assert.Empty(t, calls)
}

func TestListenerSwallowsFailures(t *testing.T) {
	var calls []call

	r := New(config.HooksConfig{BreakStart: "false"})
	r.exec = recorder(&calls, errors.New("exit status 1"))

	assert.NotPanics(t, func() {
		r.Listener(context.Background())(session.EventBreakStarted, session.ReadModel{})
	})

	r.Wait()
	assert.Len(t, calls, 1)
}

func TestListenerDoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	finished := make(chan struct{})

	r := New(config.HooksConfig{BreakStop: "sleep 30"})
	r.exec = func(_ context.Context, _ []string, _ string, _ ...string) error {
		<-release
		close(finished)

		return nil
	}

	r.Listener(context.Background())(session.EventBreakStopped, session.ReadModel{})

	select {
	case <-finished:
		t.Fatal("the hook finished before it was released")
	default:
	}

	close(release)
	r.Wait()

	select {
	case <-finished:
	default:
		t.Fatal("Wait returned before the hook finished")
	}
}
