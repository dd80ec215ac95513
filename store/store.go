// Package store connects to the key-value data store that holds the work
// session, the active break and the break ledger
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/clockout/internal/apperr"
	"github.com/ayoisaiah/clockout/internal/osutil"
)

const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

var (
	errClockoutRunning = errors.New(
		"is clockout already running? Only one instance can be active at a time",
	)

	errUnknownDriver = &apperr.Error{
		Message: "unknown store driver %q (must be bolt, sqlite, or memory)",
	}
)

// Open returns a connection to the store of the given driver at path.
func Open(driver, path string) (KV, error) {
	switch driver {
	case DriverBolt, "":
		if err := ensureDir(path); err != nil {
			return nil, err
		}

		return NewBoltClient(path)
	case DriverSQLite:
		if err := ensureDir(path); err != nil {
			return nil, err
		}

		return NewSQLiteClient(path)
	case DriverMemory:
		return NewMemory(), nil
	}

	return nil, errUnknownDriver.Fmt(driver)
}

func ensureDir(path string) error {
	if path == ":memory:" {
		return nil
	}

	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return fmt.Errorf("creating db directory: %w", err)
	}

	return nil
}
