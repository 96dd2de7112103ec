package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for the annotator.
type Config struct {
	// Notation selects the manual override bracket style:
	// curly, square or none. Unknown values behave as none.
	Notation string `mapstructure:"notation"`
	// Dictionary selects the kagome system dictionary: ipa or uni.
	Dictionary string `mapstructure:"dictionary"`
	// BuildTimeout bounds how long a caller waits for the tokenizer
	// to finish building.
	BuildTimeout time.Duration `mapstructure:"build_timeout"`
	// LogLevel is a logrus level name.
	LogLevel string `mapstructure:"log_level"`
	// LogJSON switches the logger to JSON output.
	LogJSON bool `mapstructure:"log_json"`
	// LogDir is where per-document JSON artifacts are written.
	LogDir string `mapstructure:"log_dir"`
}

// Load reads configuration from autofurigana.yaml in the working
// directory (if present), AUTOFURIGANA_* environment variables, and
// built-in defaults, in increasing order of precedence for env over
// file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("autofurigana")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("notation", "curly")
	v.SetDefault("dictionary", "ipa")
	v.SetDefault("build_timeout", 30*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
	v.SetDefault("log_dir", "logs")

	v.SetEnvPrefix("AUTOFURIGANA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
