package config

import (
	"flag"
	"os"
)

// ParseFlags parses all configuration flags from the command line.
//
// Flags:
//
//	-d database DSN (file path for SQLite, postgres:// URI for PostgreSQL)
//	-c/-config json file path with configs
//	-log-level log level (debug, info, warn, error)
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var logLevel string

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// flag.CommandLine uses ExitOnError, so a parse failure terminates the
	// process with a usage message.
	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
