package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, BackendFile, c.CredentialBackend)
	assert.Equal(t, BackendFile, c.ArchiveBackend)
	assert.Equal(t, "bcrypt", c.HashAlgorithm)
	assert.Equal(t, 12, c.BcryptCost)
	assert.Equal(t, 30*time.Second, c.ExtractTimeout)
	assert.Equal(t, int64(10<<20), c.MaxResumeBytes)
}

func TestResolve_DerivesPathsFromDataDir(t *testing.T) {
	c := Config{DataDir: "/srv/career", ReportDir: "/tmp/reports"}
	c.Resolve()

	assert.Equal(t, filepath.Join("/srv/career", "users.json"), c.CredentialFile)
	assert.Equal(t, filepath.Join("/srv/career", "users.db"), c.CredentialDB)
	assert.Equal(t, filepath.Join("/srv/career", "responses"), c.ArchiveDir)
	assert.Equal(t, "/tmp/reports", c.ReportDir, "explicit path must be kept")
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"data_dir":        "from-json",
		"log_level":       "debug",
		"extract_timeout": "5s",
	})
	t.Setenv("CAREER_LOG_LEVEL", "warn")
	t.Setenv("CAREER_ARCHIVE_BACKEND", "s3")

	os.Args = []string{"careercli", "-c", path, "-a", "file"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "from-json", cfg.DataDir)
	assert.Equal(t, "warn", cfg.LogLevel, "env overrides json")
	assert.Equal(t, BackendFile, cfg.ArchiveBackend, "flag overrides env")
	assert.Equal(t, 5*time.Second, cfg.ExtractTimeout)
	assert.Equal(t, filepath.Join("from-json", "users.json"), cfg.CredentialFile)
}

func TestLoadConfig_SubSecondTimeoutWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		env  string
		args []string
		want time.Duration
	}{
		{name: "sub-second env kept", env: "500ms", args: []string{"careercli"}, want: 500 * time.Millisecond},
		{name: "fractional env kept", env: "1500ms", args: []string{"careercli"}, want: 1500 * time.Millisecond},
		{name: "explicit flag wins", env: "500ms", args: []string{"careercli", "-t", "2"}, want: 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CAREER_EXTRACT_TIMEOUT", tt.env)
			os.Args = tt.args

			cfg := LoadConfig()
			require.NotNil(t, cfg)
			assert.Equal(t, tt.want, cfg.ExtractTimeout)
		})
	}
}
