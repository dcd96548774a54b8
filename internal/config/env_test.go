package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {
	t.Setenv("CAREER_DATA_DIR", "/var/lib/career")
	t.Setenv("CAREER_BCRYPT_COST", "10")
	t.Setenv("CAREER_EXTRACT_TIMEOUT", "1m")
	t.Setenv("CAREER_MAX_RESUME_BYTES", "not-a-number")
	t.Setenv("CAREER_S3_ENDPOINT", "http://127.0.0.1:9000")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "/var/lib/career", cfg.DataDir)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, time.Minute, cfg.ExtractTimeout)
	assert.Equal(t, int64(10<<20), cfg.MaxResumeBytes, "malformed value keeps current")
	assert.Equal(t, "http://127.0.0.1:9000", cfg.S3Endpoint)
	assert.Equal(t, "info", cfg.LogLevel, "unset variable keeps current")
}
