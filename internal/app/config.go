package app

import "errors"

// Config holds everything an App needs to run one verification.
type Config struct {
	AppPath string // hcl application description: file or directory

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.AppPath == "" {
		return nil, errors.New("AppPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
