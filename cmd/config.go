package cmd

import (
	"github.com/spf13/viper"
)

// OutputConfig holds the output paths of a profiling run, resolved with
// precedence flag > config file > default.
type OutputConfig struct {
	Report string `mapstructure:"report"`
	DDL    string `mapstructure:"ddl"`
}

// GetOutputConfig resolves the report/DDL paths from the config file,
// falling back to defaults next to the working directory.
func GetOutputConfig() (*OutputConfig, error) {
	config := &OutputConfig{
		Report: "out/schema_report.csv",
		DDL:    "out/create_table.sql",
	}
	if err := viper.UnmarshalKey("output", config); err != nil {
		return nil, err
	}
	if config.Report == "" {
		config.Report = "out/schema_report.csv"
	}
	if config.DDL == "" {
		config.DDL = "out/create_table.sql"
	}
	return config, nil
}
