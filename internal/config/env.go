package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "CAREER_"

// parseEnv overlays cfg with CAREER_* environment variables. A .env file in
// the working directory is loaded first; variables already set in the real
// environment win over it. Malformed numbers keep the current value.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.DataDir = getEnvString("DATA_DIR", cfg.DataDir)
	cfg.CredentialBackend = getEnvString("CREDENTIAL_BACKEND", cfg.CredentialBackend)
	cfg.CredentialFile = getEnvString("CREDENTIAL_FILE", cfg.CredentialFile)
	cfg.CredentialDB = getEnvString("CREDENTIAL_DB", cfg.CredentialDB)
	cfg.HashAlgorithm = getEnvString("HASH_ALGORITHM", cfg.HashAlgorithm)
	cfg.BcryptCost = getEnvInt("BCRYPT_COST", cfg.BcryptCost)
	cfg.ArchiveBackend = getEnvString("ARCHIVE_BACKEND", cfg.ArchiveBackend)
	cfg.ArchiveDir = getEnvString("ARCHIVE_DIR", cfg.ArchiveDir)
	cfg.ReportDir = getEnvString("REPORT_DIR", cfg.ReportDir)
	cfg.S3Bucket = getEnvString("S3_BUCKET", cfg.S3Bucket)
	cfg.S3Region = getEnvString("S3_REGION", cfg.S3Region)
	cfg.S3Endpoint = getEnvString("S3_ENDPOINT", cfg.S3Endpoint)
	cfg.S3AccessKey = getEnvString("S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = getEnvString("S3_SECRET_KEY", cfg.S3SecretKey)
	cfg.S3Prefix = getEnvString("S3_PREFIX", cfg.S3Prefix)
	cfg.ExtractTimeout = getEnvDuration("EXTRACT_TIMEOUT", cfg.ExtractTimeout)
	cfg.MaxResumeBytes = getEnvInt64("MAX_RESUME_BYTES", cfg.MaxResumeBytes)
	cfg.LogLevel = getEnvString("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvString("LOG_FORMAT", cfg.LogFormat)
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvInt64(key string, defaultVal int64) int64 {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
