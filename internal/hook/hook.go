// Package hook runs user-configured commands after session transitions
package hook

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/clockout/internal/config"
	"github.com/ayoisaiah/clockout/internal/session"
)

const defaultTimeout = 30 * time.Second

// Environment variables passed to every hook command.
const (
	EnvEvent      = "CLOCKOUT_EVENT"
	EnvLoginTime  = "CLOCKOUT_LOGIN_TIME"
	EnvLogoutTime = "CLOCKOUT_LOGOUT_TIME"
	EnvTotalBreak = "CLOCKOUT_TOTAL_BREAK"
)

// Exec runs a parsed command with extra environment variables.
type Exec func(ctx context.Context, env []string, name string, args ...string) error

// Runner maps session events to shell commands.
type Runner struct {
	cmds    map[session.Event]string
	exec    Exec
	timeout time.Duration
	wg      sync.WaitGroup
}

// New returns a Runner for the configured hooks.
func New(h config.HooksConfig) *Runner {
	return &Runner{
		cmds: map[session.Event]string{
			session.EventLogin:        h.Login,
			session.EventBreakStarted: h.BreakStart,
			session.EventBreakStopped: h.BreakStop,
		},
		exec:    execCommand,
		timeout: defaultTimeout,
	}
}

func execCommand(ctx context.Context, env []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)

	return cmd.Run()
}

// Run executes the command configured for event, if any.
func (r *Runner) Run(ctx context.Context, event session.Event, rm session.ReadModel) error {
	line := r.cmds[event]
	if line == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(line)
	if err != nil {
		return fmt.Errorf("unable to parse %s hook: %w", event, err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	env := []string{
		EnvEvent + "=" + string(event),
		EnvLoginTime + "=" + rm.LoginTime.Format(time.RFC3339),
		EnvLogoutTime + "=" + rm.LogoutTime.Format(time.RFC3339),
		EnvTotalBreak + "=" + rm.TotalBreak.String(),
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.exec(ctx, env, cmdSlice[0], cmdSlice[1:]...)
}

// Listener adapts the runner to the engine's notifications. Each hook runs
// in its own goroutine and Wait blocks until they are done. Failures are logged and do not affect the committed
// transition.
func (r *Runner) Listener(ctx context.Context) session.Listener {
	return func(event session.Event, rm session.ReadModel) {
		r.wg.Add(1)

		go func() {
			defer r.wg.Done()

			err := r.Run(ctx, event, rm)
			if err != nil {
				slog.WarnContext(
					ctx,
					"hook failed",
					slog.String("event", string(event)),
					slog.Any("error", err),
				)
			}
		}()
	}
}

// Wait blocks until every hook started by a Listener has exited.
func (r *Runner) Wait() {
	r.wg.Wait()
}
