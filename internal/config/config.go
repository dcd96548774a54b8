package config

import (
	"path/filepath"
	"time"
)

// Credential and archive backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendS3     = "s3"
)

// Config holds runtime settings for the career guidance CLI.
//
// Paths left empty after loading are derived from DataDir by Resolve.
type Config struct {
	DataDir string

	CredentialBackend string
	CredentialFile    string
	CredentialDB      string
	HashAlgorithm     string
	BcryptCost        int

	ArchiveBackend string
	ArchiveDir     string
	ReportDir      string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Prefix    string

	ExtractTimeout time.Duration
	MaxResumeBytes int64

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.CredentialBackend = BackendFile
	c.HashAlgorithm = "bcrypt"
	c.BcryptCost = 12
	c.ArchiveBackend = BackendFile
	c.S3Region = "us-east-1"
	c.S3Prefix = "responses"
	c.ExtractTimeout = 30 * time.Second
	c.MaxResumeBytes = 10 << 20
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Resolve fills the per-component paths that were not set explicitly.
func (c *Config) Resolve() {
	if c.CredentialFile == "" {
		c.CredentialFile = filepath.Join(c.DataDir, "users.json")
	}
	if c.CredentialDB == "" {
		c.CredentialDB = filepath.Join(c.DataDir, "users.db")
	}
	if c.ArchiveDir == "" {
		c.ArchiveDir = filepath.Join(c.DataDir, "responses")
	}
	if c.ReportDir == "" {
		c.ReportDir = filepath.Join(c.DataDir, "reports")
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	cfg.Resolve()
	return cfg
}
