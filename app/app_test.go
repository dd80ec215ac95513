package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/clockout/internal/config"
	"github.com/ayoisaiah/clockout/internal/pathutil"
	"github.com/ayoisaiah/clockout/internal/session"
	"github.com/ayoisaiah/clockout/internal/settings"
	"github.com/ayoisaiah/clockout/internal/ui"
	"github.com/ayoisaiah/clockout/store"
)

func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", "clockout-app-test")
	if err != nil {
		panic(err)
	}

	_ = os.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	_ = os.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	_ = os.Setenv(envNoColor, "1")

	xdg.Reload()

	if err := pathutil.Initialize(); err != nil {
		panic(err)
	}

	code := m.Run()

	_ = os.RemoveAll(home)

	os.Exit(code)
}

type cliRunner struct {
	t      *testing.T
	driver string
	dbPath string
}

func newRunner(t *testing.T, driver string) *cliRunner {
	t.Helper()

	return &cliRunner{
		t:      t,
		driver: driver,
		dbPath: filepath.Join(t.TempDir(), "clockout."+driver),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	r.t.Helper()

	var buf bytes.Buffer

	config.Stdout = &buf
	r.t.Cleanup(func() {
		config.Stdout = os.Stdout
	})

	argv := append(
		[]string{"clockout", "--db-driver", r.driver, "--db-path", r.dbPath},
		args...,
	)

	err := Get().Run(argv)

	return buf.String(), err
}

func (r *cliRunner) status() ui.StatusView {
	r.t.Helper()

	out, err := r.run("status", "--json")
	require.NoError(r.t, err)

	var v ui.StatusView

	require.NoError(r.t, json.Unmarshal([]byte(out), &v))

	return v
}

func TestSessionCommands(t *testing.T) {
	for _, driver := range []string{"bolt", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			r := newRunner(t, driver)

			assert.Equal(t, session.LoggedOut.String(), r.status().State)

			_, err := r.run("break", "start")
			assert.ErrorIs(t, err, session.ErrInvalidTransition)

			out, err := r.run("login")
			require.NoError(t, err)
			assert.Contains(t, out, "You can clock out at")

			v := r.status()
			assert.Equal(t, session.LoggedIn.String(), v.State)
			require.NotNil(t, v.LoginTime)
			require.NotNil(t, v.LogoutTime)
			assert.True(t, v.LogoutTime.After(*v.LoginTime))

			_, err = r.run("login")
			assert.ErrorIs(t, err, session.ErrInvalidTransition)

			out, err = r.run("break", "start")
			require.NoError(t, err)
			assert.Contains(t, out, "Break started")

			v = r.status()
			assert.Equal(t, session.OnBreak.String(), v.State)
			assert.NotNil(t, v.ActiveBreak)

			out, err = r.run("break", "stop")
			require.NoError(t, err)
			assert.Contains(t, out, "recorded")

			_, err = r.run("break", "stop")
			assert.ErrorIs(t, err, session.ErrInvalidTransition)

			out, err = r.run("breaks", "--json")
			require.NoError(t, err)

			var breaks []ui.BreakView

			require.NoError(t, json.Unmarshal([]byte(out), &breaks))
			assert.Len(t, breaks, 1)

			out, err = r.run("breaks")
			require.NoError(t, err)
			assert.Contains(t, out, "TOTAL")

			out, err = r.run("history", "--json")
			require.NoError(t, err)
			assert.JSONEq(t, "[]", out)
		})
	}
}

func TestLoginAt(t *testing.T) {
	r := newRunner(t, "bolt")

	_, err := r.run("login", "--at", "3 days ago")
	assert.ErrorIs(t, err, errAtNotToday)

	_, err = r.run("login", "--at", "2999-01-01 09:00")
	assert.Error(t, err)

	assert.Equal(t, session.LoggedOut.String(), r.status().State)
}

func TestSettingsCommand(t *testing.T) {
	r := newRunner(t, "bolt")

	out, err := r.run("settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Weekday hours")
	assert.Contains(t, out, "light")
	assert.NotContains(t, out, "Settings saved")

	out, err = r.run("settings", "--weekday-hours", "6", "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings saved")
	assert.Contains(t, out, "dark")

	_, err = r.run("settings", "--weekend-hours", "30")
	assert.Error(t, err)

	_, err = r.run("settings", "--theme", "sepia")
	assert.Error(t, err)

	_, err = r.run("login")
	require.NoError(t, err)

	v := r.status()
	require.NotNil(t, v.LoginTime)
	require.NotNil(t, v.LogoutTime)

	hours := v.LogoutTime.Sub(*v.LoginTime).Hours()
	assert.Contains(
		t,
		[]float64{6, settings.DefaultWeekendHours},
		hours,
		"a weekday login uses the new weekday hours",
	)
}

func TestMalformedSettingIsPrinted(t *testing.T) {
	r := newRunner(t, "sqlite")

	kv, err := store.Open(store.DriverSQLite, r.dbPath)
	require.NoError(t, err)
	require.NoError(t, kv.Set(store.KeyWeekdayHours, "eight"))
	require.NoError(t, kv.Close())

	var stderr bytes.Buffer

	config.Stderr = &stderr
	t.Cleanup(func() {
		config.Stderr = os.Stderr
	})

	_, err = r.run("status")
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), store.KeyWeekdayHours)
	assert.Contains(t, stderr.String(), "eight")
}

func TestUnknownDriver(t *testing.T) {
	r := newRunner(t, "postgres")

	_, err := r.run("status")
	assert.Error(t, err)
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Empty(t, firstNonEmptyString("", ""))
}

func TestHelpText(t *testing.T) {
	text := helpText()

	assert.Contains(t, text, "{{.HelpName}}")
	assert.Contains(t, text, "CLOCKOUT_EVENT")
	assert.Contains(t, text, string(session.EventBreakStopped))
	assert.Contains(t, text, "clockout break start")
}
