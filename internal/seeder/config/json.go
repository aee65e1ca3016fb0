package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/homeseed/internal/flagx"
	"github.com/dmitrijs2005/homeseed/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "5s" and integer nanoseconds are accepted.
// Pointers distinguish "absent" from an explicit zero or false.
type JsonConfig struct {
	DatabaseDSN         string         `json:"database_dsn"`
	ConnectTimeout      timex.Duration `json:"connect_timeout"`
	Reset               *bool          `json:"reset"`
	DryRun              *bool          `json:"dry_run"`
	Seed                *uint64        `json:"seed"`
	LogBackend          string         `json:"log_backend"`
	LogLevel            string         `json:"log_level"`
	PasswordCost        *int           `json:"password_cost"`
	Users               *int           `json:"users"`
	MinResidences       *int           `json:"min_residences"`
	MaxResidences       *int           `json:"max_residences"`
	MinScans            *int           `json:"min_scans"`
	MaxScans            *int           `json:"max_scans"`
	MaxObjectsPerScan   *int           `json:"max_objects_per_scan"`
	MaxHistoryPerObject *int           `json:"max_history_per_object"`
	MinCatalog          *int           `json:"min_catalog"`
	MaxCatalog          *int           `json:"max_catalog"`
	HistoryWindow       timex.Duration `json:"history_window"`
	ReportDir           string         `json:"report_dir"`
	S3RootUser          string         `json:"s3_root_user"`
	S3RootPassword      string         `json:"s3_root_password"`
	S3Bucket            string         `json:"s3_bucket"`
	S3Region            string         `json:"s3_region"`
	S3BaseEndpoint      string         `json:"s3_base_endpoint"`
	PushgatewayURL      string         `json:"pushgateway_url"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setPtr[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// parseJson loads values from the file named by -c/-config into config.
// Keys missing from the file keep their current values. Nothing happens
// when no file is given; an unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.DatabaseDSN, c.DatabaseDSN)
	if c.ConnectTimeout.Duration != 0 {
		config.ConnectTimeout = c.ConnectTimeout.Duration
	}
	setPtr(&config.Reset, c.Reset)
	setPtr(&config.DryRun, c.DryRun)
	setPtr(&config.Seed, c.Seed)
	setString(&config.LogBackend, c.LogBackend)
	setString(&config.LogLevel, c.LogLevel)
	setPtr(&config.PasswordCost, c.PasswordCost)
	setPtr(&config.Users, c.Users)
	setPtr(&config.MinResidences, c.MinResidences)
	setPtr(&config.MaxResidences, c.MaxResidences)
	setPtr(&config.MinScans, c.MinScans)
	setPtr(&config.MaxScans, c.MaxScans)
	setPtr(&config.MaxObjectsPerScan, c.MaxObjectsPerScan)
	setPtr(&config.MaxHistoryPerObject, c.MaxHistoryPerObject)
	setPtr(&config.MinCatalog, c.MinCatalog)
	setPtr(&config.MaxCatalog, c.MaxCatalog)
	if c.HistoryWindow.Duration != 0 {
		config.HistoryWindow = c.HistoryWindow.Duration
	}
	setString(&config.ReportDir, c.ReportDir)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.PushgatewayURL, c.PushgatewayURL)
}
