package detect

import (
	"fmt"

	"github.com/spf13/viper"
)

// KeywordConfig carries the keyword lists and tuning values consumed by the
// conversion steps. Build it once via DefaultKeywordConfig or
// LoadKeywordConfig; it is read-only afterwards and safe to share across
// concurrent pipeline runs.
type KeywordConfig struct {
	TextKeywords []string `mapstructure:"text_keywords"`
	// FloatKeywords is recognized in the config file but consumed by no
	// step. Reserved.
	FloatKeywords []string `mapstructure:"float_keywords"`
	// DateFormats are extra Go time layouts tried before the built-in
	// ones. Advisory: the date step works without them.
	DateFormats          []string `mapstructure:"date_formats"`
	BooleanTrueValues    []string `mapstructure:"boolean_true_values"`
	BooleanFalseValues   []string `mapstructure:"boolean_false_values"`
	CardinalityThreshold float64  `mapstructure:"cardinality_threshold"`
	UniqueCountLimit     int      `mapstructure:"unique_count_limit"`
}

func DefaultKeywordConfig() KeywordConfig {
	return KeywordConfig{
		BooleanTrueValues:    []string{"true", "yes", "si"},
		BooleanFalseValues:   []string{"false", "no"},
		CardinalityThreshold: 0.05,
		UniqueCountLimit:     100,
	}
}

// LoadKeywordConfig reads a keyword YAML file. On a missing or malformed
// file it returns the default config together with the error, so callers
// can surface a diagnostic and proceed degraded instead of aborting.
func LoadKeywordConfig(path string) (KeywordConfig, error) {
	cfg := DefaultKeywordConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("cardinality_threshold", cfg.CardinalityThreshold)
	v.SetDefault("unique_count_limit", cfg.UniqueCountLimit)
	v.SetDefault("boolean_true_values", cfg.BooleanTrueValues)
	v.SetDefault("boolean_false_values", cfg.BooleanFalseValues)

	if err := v.ReadInConfig(); err != nil {
		return DefaultKeywordConfig(), fmt.Errorf("failed to read keyword config %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return DefaultKeywordConfig(), fmt.Errorf("failed to parse keyword config %s: %w", path, err)
	}
	return cfg, nil
}
