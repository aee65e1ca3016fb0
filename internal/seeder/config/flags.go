package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/homeseed/internal/flagx"
)

var knownFlags = []string{
	"-d", "-timeout", "-reset", "-dry-run", "-seed", "-log", "-log-level", "-cost",
	"-users", "-min-residences", "-max-residences", "-min-scans", "-max-scans",
	"-max-objects", "-max-history", "-min-catalog", "-max-catalog", "-window",
	"-report-dir", "-u", "-p", "-b", "-g", "-e", "-push",
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-d string          PostgreSQL DSN
//	-timeout duration  connect timeout (e.g. "5s")
//	-reset             empty all tables before seeding
//	-dry-run           seed into memory, leave the database untouched
//	-seed uint         random seed, 0 for time-based
//	-log string        logger backend: slog or zap
//	-log-level string  debug, info, warn or error
//	-cost int          bcrypt cost
//	-users int, -min-residences/-max-residences, -min-scans/-max-scans,
//	-max-objects, -max-history, -min-catalog/-max-catalog int
//	-window duration   history window before now
//	-report-dir string JSON report directory
//	-u/-p/-b/-g/-e     S3 user, password, bucket, region, endpoint
//	-push string       Pushgateway URL
//
// Boolean flags should be written as -reset or -reset=true; a bare value
// after them would be read as a positional argument.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.DurationVar(&config.ConnectTimeout, "timeout", config.ConnectTimeout, "database connect timeout")
	fs.BoolVar(&config.Reset, "reset", config.Reset, "empty all tables before seeding")
	fs.BoolVar(&config.DryRun, "dry-run", config.DryRun, "seed into memory only")
	fs.Uint64Var(&config.Seed, "seed", config.Seed, "random seed (0 = time based)")
	fs.StringVar(&config.LogBackend, "log", config.LogBackend, "logger backend (slog|zap)")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	fs.IntVar(&config.PasswordCost, "cost", config.PasswordCost, "bcrypt cost")

	fs.IntVar(&config.Users, "users", config.Users, "number of users")
	fs.IntVar(&config.MinResidences, "min-residences", config.MinResidences, "min residences per user")
	fs.IntVar(&config.MaxResidences, "max-residences", config.MaxResidences, "max residences per user")
	fs.IntVar(&config.MinScans, "min-scans", config.MinScans, "min scans per residence")
	fs.IntVar(&config.MaxScans, "max-scans", config.MaxScans, "max scans per residence")
	fs.IntVar(&config.MaxObjectsPerScan, "max-objects", config.MaxObjectsPerScan, "max detections per scan")
	fs.IntVar(&config.MaxHistoryPerObject, "max-history", config.MaxHistoryPerObject, "max history entries per object")
	fs.IntVar(&config.MinCatalog, "min-catalog", config.MinCatalog, "min catalog objects per residence")
	fs.IntVar(&config.MaxCatalog, "max-catalog", config.MaxCatalog, "max catalog objects per residence")
	fs.DurationVar(&config.HistoryWindow, "window", config.HistoryWindow, "history window before now")
	fs.StringVar(&config.ReportDir, "report-dir", config.ReportDir, "report directory")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 report bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.PushgatewayURL, "push", config.PushgatewayURL, "Pushgateway URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
