package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"replacement-metrics-service/internal/replacements/core/pipeline"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr    string `yaml:"http_addr" validate:"required"`
	PostgresDSN string `yaml:"postgres_dsn" validate:"required"`

	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db" validate:"gte=0"`
	CacheTTL      time.Duration `yaml:"cache_ttl" validate:"gt=0"`

	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=json console"`

	CSVHeaderLines    *int   `yaml:"csv_header_lines" validate:"omitempty,gte=0"`
	IssuePolicy       string `yaml:"issue_policy" validate:"oneof=omit other"`
	FaultCodes        string `yaml:"fault_codes" validate:"oneof=individual grouped"`
	EngineerLimit     *int   `yaml:"engineer_limit" validate:"omitempty,gte=0"`
	TrendFallbackYear int    `yaml:"trend_fallback_year" validate:"gte=2000,lte=2099"`
	TrendDayFirst     *bool  `yaml:"trend_day_first"`
	DisplayTimezone   string `yaml:"display_timezone" validate:"required"`

	Location *time.Location `yaml:"-"` // computed from DisplayTimezone
}

// HeaderLines is the number of title lines skipped in CSV exports.
func (c Config) HeaderLines() int {
	if c.CSVHeaderLines == nil {
		return pipeline.DefaultHeaderLines
	}
	return *c.CSVHeaderLines
}

// Engineers is the size of the engineer view; 0 lists every engineer.
func (c Config) Engineers() int {
	if c.EngineerLimit == nil {
		return pipeline.DefaultEngineerLimit
	}
	return *c.EngineerLimit
}

// DayFirst reports whether trend dates are read as DD/MM. Defaults to true.
func (c Config) DayFirst() bool {
	return c.TrendDayFirst == nil || *c.TrendDayFirst
}

// Load reads CONFIG_PATH (default config.yaml) when present, applies
// environment overrides and defaults, then validates.
func Load() (Config, error) {
	var cfg Config

	path := "config.yaml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		path = p
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	var errs []error
	envOverride(&cfg.HTTPAddr, "HTTP_ADDR")
	envOverride(&cfg.PostgresDSN, "POSTGRES_DSN")
	envOverride(&cfg.RedisAddr, "REDIS_ADDR")
	envOverride(&cfg.RedisPassword, "REDIS_PASSWORD")
	errs = append(errs,
		envOverrideInt(&cfg.RedisDB, "REDIS_DB"),
		envOverrideDuration(&cfg.CacheTTL, "CACHE_TTL"),
	)
	envOverride(&cfg.LogLevel, "LOG_LEVEL")
	envOverride(&cfg.LogFormat, "LOG_FORMAT")
	errs = append(errs, envOverrideIntPtr(&cfg.CSVHeaderLines, "CSV_HEADER_LINES"))
	envOverride(&cfg.IssuePolicy, "ISSUE_POLICY")
	envOverride(&cfg.FaultCodes, "FAULT_CODES")
	errs = append(errs,
		envOverrideIntPtr(&cfg.EngineerLimit, "ENGINEER_LIMIT"),
		envOverrideInt(&cfg.TrendFallbackYear, "TREND_FALLBACK_YEAR"),
		envOverrideBool(&cfg.TrendDayFirst, "TREND_DAY_FIRST"),
	)
	envOverride(&cfg.DisplayTimezone, "DISPLAY_TIMEZONE")
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	applyDefaults(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return Config{}, fmt.Errorf("invalid display_timezone %q: %w", cfg.DisplayTimezone, err)
	}
	cfg.Location = loc

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
	if cfg.IssuePolicy == "" {
		cfg.IssuePolicy = "omit"
	}
	if cfg.FaultCodes == "" {
		cfg.FaultCodes = "individual"
	}
	if cfg.TrendFallbackYear == 0 {
		cfg.TrendFallbackYear = pipeline.DefaultFallbackYear
	}
	if cfg.DisplayTimezone == "" {
		cfg.DisplayTimezone = "UTC"
	}
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = strings.TrimSpace(v)
	}
}

func envOverrideInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envOverrideIntPtr(dst **int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = &n
	return nil
}

func envOverrideBool(dst **bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = &b
	return nil
}

func envOverrideDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
