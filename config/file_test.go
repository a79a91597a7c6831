package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), f)
	assert.NoError(t, f.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
endpoints:
  - http://127.0.0.1:8080/lookup
backoff: 250ms
log_level: debug
include_salt: false
`), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://127.0.0.1:8080/lookup"}, f.Endpoints)
	assert.Equal(t, 250*time.Millisecond, f.Backoff)
	assert.Equal(t, "debug", f.LogLevel)
	assert.False(t, f.IncludeSalt)
	assert.Equal(t, 3, f.RetryBudget)
	assert.Equal(t, DefaultRecipientAddress, f.RecipientAddress)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"empty endpoints": "endpoints: []\n",
		"bad url":         "endpoints: [\"not a url\"]\n",
		"bad address":     "recipient_address: XCH1\n",
		"bad level":       "log_level: loud\n",
		"zero budget":     "retry_budget: 0\n",
		"not yaml":        "endpoints: [\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		_, err := Load(path)
		assert.Error(t, err, name)
	}
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := Default()
	want.SenderProgram = "/usr/local/bin/chia"
	want.Timeout = 5 * time.Second
	require.NoError(t, want.Write(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDefaultPathHonoursEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/namesdao.yaml")
	assert.Equal(t, "/etc/namesdao.yaml", DefaultPath())

	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, filepath.Join(".namesdao", "config.yaml"), filepath.Join(filepath.Base(filepath.Dir(DefaultPath())), "config.yaml"))
}

func TestRecipientKey(t *testing.T) {
	f := Default()
	key, err := f.RecipientKey()
	require.NoError(t, err)
	assert.Nil(t, key)

	f.RecipientKeyFile = filepath.Join(t.TempDir(), "key.asc")
	require.NoError(t, os.WriteFile(f.RecipientKeyFile, []byte("armored"), 0o600))
	key, err = f.RecipientKey()
	require.NoError(t, err)
	assert.Equal(t, []byte("armored"), key)
}
