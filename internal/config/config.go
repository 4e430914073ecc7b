package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys shared by the config file, IMAGEBOOST_* environment
// variables, and command line flags.
const (
	KeyAPIURL            = "api_url"
	KeyLogLevel          = "log_level"
	KeyHTTPTimeout       = "http_timeout"
	KeyImageWorkers      = "image_workers"
	KeyImageMaxDimension = "image_max_dimension"

	EnvPrefix = "IMAGEBOOST"
)

// Default values
const (
	DefaultAPIURL            = "http://localhost:8000"
	DefaultLogLevel          = "info"
	DefaultHTTPTimeout       = time.Duration(0) // no client-side timeout
	DefaultImageWorkers      = 4
	DefaultImageMaxDimension = 600
)

// flagKeys maps command line flag names to configuration keys
var flagKeys = map[string]string{
	"api-url":   KeyAPIURL,
	"log-level": KeyLogLevel,
}

// Config holds process-wide configuration
type Config struct {
	APIURL            string        `mapstructure:"api_url"`
	LogLevel          string        `mapstructure:"log_level"`
	HTTPTimeout       time.Duration `mapstructure:"http_timeout"`
	ImageWorkers      int           `mapstructure:"image_workers"`
	ImageMaxDimension int           `mapstructure:"image_max_dimension"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		APIURL:            DefaultAPIURL,
		LogLevel:          DefaultLogLevel,
		HTTPTimeout:       DefaultHTTPTimeout,
		ImageWorkers:      DefaultImageWorkers,
		ImageMaxDimension: DefaultImageMaxDimension,
	}
}

// Load reads configuration from defaults, an optional YAML file, the
// environment, and the given flag set (may be nil), in increasing priority.
// An empty path looks for config.yaml in ./config and the working directory.
func Load(path string, flags *pflag.FlagSet) (config Config, err error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault(KeyAPIURL, defaults.APIURL)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyHTTPTimeout, defaults.HTTPTimeout)
	v.SetDefault(KeyImageWorkers, defaults.ImageWorkers)
	v.SetDefault(KeyImageMaxDimension, defaults.ImageMaxDimension)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err = v.BindPFlag(key, flag); err != nil {
					return config, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return config, fmt.Errorf("failed to read config: %w", err)
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("failed to decode config: %w", err)
	}

	config.APIURL = strings.TrimRight(strings.TrimSpace(config.APIURL), "/")
	if err = ValidateAPIURL(config.APIURL); err != nil {
		return config, err
	}
	if config.ImageWorkers < 1 {
		config.ImageWorkers = 1
	}
	if config.ImageMaxDimension < 1 {
		config.ImageMaxDimension = DefaultImageMaxDimension
	}

	return config, nil
}

// ValidateAPIURL checks that the backend base URL is an absolute http(s) URL
func ValidateAPIURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("API URL must not be empty")
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return fmt.Errorf("invalid API URL: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("API URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("API URL must include a host")
	}

	return nil
}
