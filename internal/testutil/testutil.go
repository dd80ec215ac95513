// Package testutil holds helpers shared by package tests
package testutil

import (
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/clockout/internal/osutil"
)

// GoldenTest produces output to compare against testdata/<name>.golden.
type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output. Run the tests with -update to regenerate.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	out, name := tc.Output()

	g.Assert(t, name, out)
}

// Golden is a GoldenTest for a single output.
type Golden struct {
	File     string
	Snapshot []byte
}

// Output implements GoldenTest.
func (g Golden) Output() ([]byte, string) {
	return g.Snapshot, g.File
}
