package pathutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	t.Setenv(envName, "test")

	require.NoError(t, Initialize())

	assert.Equal(t, "clockout", Dir())
	assert.Equal(t, "config_test.yml", filepath.Base(ConfigFilePath()))
	assert.Equal(t, "clockout_test.db", filepath.Base(DBFilePath("bolt")))
	assert.Equal(t, "clockout_test.sqlite", filepath.Base(DBFilePath("sqlite")))
	assert.True(t, strings.HasSuffix(LogFilePath(), filepath.Join("log", "clockout_test.log")))
}

func TestStripExtension(t *testing.T) {
	assert.Equal(t, "clockout", StripExtension("clockout.db"))
	assert.Equal(t, "archive.tar", StripExtension("archive.tar.gz"))
	assert.Equal(t, "noext", StripExtension("noext"))
}
