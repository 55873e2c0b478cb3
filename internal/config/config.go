// Package config loads application configuration from an optional YAML file
// and REVQ_* environment variables, with built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the immutable application configuration. Values are loaded
// once at startup and injected; nothing reads viper after Load returns.
type Config struct {
	Env             string   `mapstructure:"env"`              // local, dev, prod
	QuestionsDir    string   `mapstructure:"questions_dir"`    // directory with <Level>_<Subject>.json banks
	PerformancePath string   `mapstructure:"performance_path"` // JSON performance store
	Levels          []string `mapstructure:"levels"`           // qualification levels offered in the menu
	Subjects        []string `mapstructure:"subjects"`         // subjects offered in the menu
	FuzzyThreshold  float64  `mapstructure:"fuzzy_threshold"`  // minimum 0-100 similarity for fuzzy acceptance
	NumericEpsilon  float64  `mapstructure:"numeric_epsilon"`  // tolerance for numeric answer equality
}

// Load reads configuration from the given file, or from config.yaml in the
// working dir or ./config when file is empty, plus the environment. A missing
// default config file is fine; a malformed or missing explicit one is an error.
func Load(file string) (*Config, error) {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("env", "local")
	v.SetDefault("questions_dir", "questions")
	v.SetDefault("performance_path", "performance.json")
	v.SetDefault("levels", []string{"GCSE", "ALevel"})
	v.SetDefault("subjects", []string{
		"Maths",
		"Further_Maths",
		"Physics",
		"Biology",
		"Chemistry",
		"Computer_Science",
	})
	v.SetDefault("fuzzy_threshold", 88.0)
	v.SetDefault("numeric_epsilon", 1e-9)

	v.SetEnvPrefix("revq")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(cfg.Levels) == 0 || len(cfg.Subjects) == 0 {
		return nil, errors.New("config must define at least one level and one subject")
	}
	if cfg.FuzzyThreshold < 0 || cfg.FuzzyThreshold > 100 {
		return nil, fmt.Errorf("fuzzy_threshold %v out of range 0-100", cfg.FuzzyThreshold)
	}

	return &cfg, nil
}
