package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	defaultBaseURL       = "https://adventofcode.com"
	defaultYear          = 2021
	defaultUA            = "aoc2021-runner (+https://adventofcode.com)"
	defaultTimeout       = 30
	defaultRetryAttempts = 3
)

// appConfig holds the application configuration.
type appConfig struct {
	BaseURL        string `json:"base_url" validate:"required,url"`
	Year           int    `json:"year" validate:"gte=2015"`
	UserAgent      string `json:"user_agent"`
	Token          string `json:"token"`
	TimeoutSeconds int    `json:"timeout_seconds" validate:"gt=0"`
	RetryAttempts  int    `json:"retry_attempts" validate:"gte=1,lte=10"`
}

func defaultConfig() appConfig {
	return appConfig{
		BaseURL:        defaultBaseURL,
		Year:           defaultYear,
		UserAgent:      defaultUA,
		TimeoutSeconds: defaultTimeout,
		RetryAttempts:  defaultRetryAttempts,
	}
}

var validate = validator.New()

// loadConfig loads configuration from the specified path. A missing file
// yields the defaults.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return appConfig{}, fmt.Errorf("stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Token = strings.TrimSpace(cfg.Token)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if strings.TrimSpace(cfg.UserAgent) == "" {
		cfg.UserAgent = defaultUA
	}
	if err := validate.Struct(cfg); err != nil {
		return appConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolveToken picks the session token: the explicit argument first, then
// the TOKEN environment variable, then the config file.
func resolveToken(arg string, cfg appConfig) (string, error) {
	for _, t := range []string{arg, os.Getenv("TOKEN"), cfg.Token} {
		if t = strings.TrimSpace(t); t != "" {
			return t, nil
		}
	}
	return "", errMissingToken
}
