package config

import (
	"encoding/json"
	"os"

	"github.com/UDAY704467/ai-career-guidance/internal/flagx"
	"github.com/UDAY704467/ai-career-guidance/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so the file can say "30s" or give integer nanoseconds.
type JsonConfig struct {
	DataDir           string         `json:"data_dir"`
	CredentialBackend string         `json:"credential_backend"`
	CredentialFile    string         `json:"credential_file"`
	CredentialDB      string         `json:"credential_db"`
	HashAlgorithm     string         `json:"hash_algorithm"`
	BcryptCost        int            `json:"bcrypt_cost"`
	ArchiveBackend    string         `json:"archive_backend"`
	ArchiveDir        string         `json:"archive_dir"`
	ReportDir         string         `json:"report_dir"`
	S3Bucket          string         `json:"s3_bucket"`
	S3Region          string         `json:"s3_region"`
	S3Endpoint        string         `json:"s3_endpoint"`
	S3AccessKey       string         `json:"s3_access_key"`
	S3SecretKey       string         `json:"s3_secret_key"`
	S3Prefix          string         `json:"s3_prefix"`
	ExtractTimeout    timex.Duration `json:"extract_timeout"`
	MaxResumeBytes    int64          `json:"max_resume_bytes"`
	LogLevel          string         `json:"log_level"`
	LogFormat         string         `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c or -config.
// Fields missing from the file keep their current value. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.CredentialBackend, jc.CredentialBackend)
	setString(&cfg.CredentialFile, jc.CredentialFile)
	setString(&cfg.CredentialDB, jc.CredentialDB)
	setString(&cfg.HashAlgorithm, jc.HashAlgorithm)
	setString(&cfg.ArchiveBackend, jc.ArchiveBackend)
	setString(&cfg.ArchiveDir, jc.ArchiveDir)
	setString(&cfg.ReportDir, jc.ReportDir)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.S3Prefix, jc.S3Prefix)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)

	if jc.BcryptCost != 0 {
		cfg.BcryptCost = jc.BcryptCost
	}
	if jc.ExtractTimeout.Duration != 0 {
		cfg.ExtractTimeout = jc.ExtractTimeout.Duration
	}
	if jc.MaxResumeBytes != 0 {
		cfg.MaxResumeBytes = jc.MaxResumeBytes
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
