package config

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	validator "gopkg.in/go-playground/validator.v8"
)

// LoadConfig reads, decodes and validates the toml configuration found at the
// given path
func LoadConfig(filePath string) (*Config, error) {
	buff, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read config file")
	}

	cfg := &Config{}
	err = toml.Unmarshal(buff, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode config file")
	}

	validate := validator.New(&validator.Config{TagName: "validate"})
	err = validate.Struct(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}
