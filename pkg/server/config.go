package server

import (
	"errors"
	"io"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Config is read from the server configuration file.
type Config struct {
	ListenAddress  string `yaml:"listenAddress"`
	MetricsAddress string `yaml:"metricsAddress"`
	// Timeouts are in seconds.
	ReadTimeoutSeconds  int `yaml:"readTimeoutSeconds"`
	WriteTimeoutSeconds int `yaml:"writeTimeoutSeconds"`
}

func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

func ReadConfig(configReader io.Reader) (Config, error) {
	if configReader == nil {
		return Config{}, errors.New("server config is missing")
	}
	configBytes, err := io.ReadAll(configReader)
	if err != nil {
		return Config{}, err
	}
	config := Config{}
	err = yaml.Unmarshal(configBytes, &config)
	if err != nil {
		return Config{}, err
	}
	if config.ListenAddress == "" {
		config.ListenAddress = ":9876"
	}
	if config.ReadTimeoutSeconds <= 0 {
		config.ReadTimeoutSeconds = 30
	}
	if config.WriteTimeoutSeconds <= 0 {
		config.WriteTimeoutSeconds = 30
	}
	return config, nil
}
