package config

import (
	"flag"
	"os"
	"time"

	"github.com/UDAY704467/ai-career-guidance/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   data directory
//	-b string   credential backend (file|sqlite)
//	-a string   archive backend (file|s3)
//	-l string   log level
//	-t int      resume extraction timeout (seconds)
//
// os.Args is filtered with flagx.FilterArgs so -c/-config and unknown flags
// do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], "d", "b", "a", "l", "t")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.CredentialBackend, "b", cfg.CredentialBackend, "credential backend (file|sqlite)")
	fs.StringVar(&cfg.ArchiveBackend, "a", cfg.ArchiveBackend, "archive backend (file|s3)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	extractTimeout := fs.Int("t", int(cfg.ExtractTimeout.Seconds()), "resume extraction timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only an explicit -t replaces a sub-second value from JSON or env.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.ExtractTimeout = time.Duration(*extractTimeout) * time.Second
		}
	})
}
