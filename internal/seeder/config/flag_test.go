package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-d", "db", "-timeout", "3s", "-reset", "-dry-run=true", "-seed", "7",
			"-log", "zap", "-log-level", "debug", "-cost", "4",
			"-users", "2", "-min-residences", "1", "-max-residences", "2",
			"-min-scans", "3", "-max-scans", "4", "-max-objects", "5", "-max-history", "6",
			"-min-catalog", "1", "-max-catalog", "2", "-window", "24h", "-report-dir", "out",
			"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
			"-push", "http://push",
		}, expected: &Config{
			DatabaseDSN:         "db",
			ConnectTimeout:      3 * time.Second,
			Reset:               true,
			DryRun:              true,
			Seed:                7,
			LogBackend:          "zap",
			LogLevel:            "debug",
			PasswordCost:        4,
			Users:               2,
			MinResidences:       1,
			MaxResidences:       2,
			MinScans:            3,
			MaxScans:            4,
			MaxObjectsPerScan:   5,
			MaxHistoryPerObject: 6,
			MinCatalog:          1,
			MaxCatalog:          2,
			HistoryWindow:       24 * time.Hour,
			ReportDir:           "out",
			S3RootUser:          "user",
			S3RootPassword:      "password",
			S3Bucket:            "bucket",
			S3Region:            "us-west-1",
			S3BaseEndpoint:      "http://endpoint",
			PushgatewayURL:      "http://push",
		}},
		{name: "foreign flags ignored", args: []string{"cmd", "-c", "cfg.json", "-users", "3", "-verbose"},
			expected: &Config{Users: 3}},
		{name: "bad seed", args: []string{"cmd", "-seed", "minus"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
