// Package config loads runtime configuration for the career guidance CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. CAREER_* environment variables, with a .env file in the working
//     directory loaded beforehand.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   data directory
//	-b string   credential backend (file|sqlite)
//	-a string   archive backend (file|s3)
//	-l string   log level
//	-t int      resume extraction timeout (seconds)
//
// # JSON schema
//
//	{
//	  "data_dir": "data",
//	  "credential_backend": "file",
//	  "hash_algorithm": "bcrypt",
//	  "bcrypt_cost": 12,
//	  "archive_backend": "s3",
//	  "s3_bucket": "career-responses",
//	  "s3_endpoint": "http://127.0.0.1:9000",
//	  "extract_timeout": "30s",
//	  "log_format": "json"
//	}
//
// Paths not given explicitly are derived from the data directory once all
// sources are applied (see (*Config).Resolve).
package config
