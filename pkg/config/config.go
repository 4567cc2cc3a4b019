// Package config provides configuration management for the gosplit application.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sgaunet/gosplit/pkg/constants"
	"github.com/sgaunet/gosplit/pkg/hooks"
	"gopkg.in/yaml.v3"
)

// S3Config holds the configuration for the S3 publish backend.
type S3Config struct {
	Endpoint   string `env:"S3ENDPOINT"            env-default:""   yaml:"endpoint"`
	BucketName string `env:"S3BUCKETNAME"          env-default:""   yaml:"bucketName"`
	BucketPath string `env:"S3BUCKETPATH"          env-default:""   yaml:"bucketPath"`
	Region     string `env:"S3REGION"              env-default:""   yaml:"region"`
	AccessKey  string `env:"AWS_ACCESS_KEY_ID"     yaml:"accessKey"`
	SecretKey  string `env:"AWS_SECRET_ACCESS_KEY" yaml:"secretKey"`
}

// PublishConfig holds the configuration of the copy of completed chunks to a storage.
type PublishConfig struct {
	LocalPath   string   `env:"PUBLISH_LOCALPATH"    env-default:""  yaml:"localpath"`
	Concurrency int      `env:"PUBLISH_CONCURRENCY"  env-default:"1" yaml:"concurrency"`
	RatePerSec  float64  `env:"PUBLISH_RATE_PER_SEC" env-default:"0" yaml:"ratePerSec"`
	S3cfg       S3Config `yaml:"s3cfg"`
}

// Config holds the application configuration.
type Config struct {
	Input        string        `env:"SPLIT_INPUT"         env-default:"-"     yaml:"input"`
	BaseName     string        `env:"SPLIT_BASENAME"      env-default:"x"     yaml:"basename"`
	SuffixLength int           `env:"SPLIT_SUFFIX_LENGTH" env-default:"2"     yaml:"suffixLength"`
	Lines        uint64        `env:"SPLIT_LINES"         env-default:"0"     yaml:"lines"`
	Bytes        string        `env:"SPLIT_BYTES"         env-default:""      yaml:"bytes"`
	OutputDir    string        `env:"SPLIT_OUTPUT_DIR"    env-default:""      yaml:"outputDir"`
	Hooks        hooks.Hooks   `yaml:"hooks"`
	Publish      PublishConfig `yaml:"publish"`
	NoLogTime    bool          `env:"NOLOGTIME"           env-default:"false" yaml:"noLogTime"`
}

// NewDefaultConfig returns a Config holding the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Input:        constants.StdinPath,
		BaseName:     constants.DefaultBaseName,
		SuffixLength: constants.DefaultSuffixLength,
		Publish: PublishConfig{
			Concurrency: constants.DefaultPublishConcurrency,
		},
	}
}

// NewConfigFromFile returns a new Config struct from the given YAML file.
// Environment variables and defaults fill the settings the file leaves out.
// A chunk size given in the file replaces the one of the environment.
func NewConfigFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: user-provided config path
	if err != nil {
		return nil, fmt.Errorf("failed to read config from file %s: %w", filePath, err)
	}
	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filePath, err)
	}

	cfg, err := NewConfigFromEnv()
	if err != nil {
		return nil, err
	}
	_, hasLines := keys["lines"]
	_, hasBytes := keys["bytes"]
	if hasLines || hasBytes {
		cfg.Lines = 0
		cfg.Bytes = ""
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filePath, err)
	}
	return cfg, nil
}

// NewConfigFromEnv returns a new Config struct from the environment variables.
func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &cfg, nil
}

// ByteLimit returns the scaled byte count of a chunk, 0 in line mode.
func (c *Config) ByteLimit() (uint64, error) {
	if c.Bytes == "" {
		return 0, nil
	}
	return ParseByteCount(c.Bytes)
}

// SetLines selects line mode, clearing any byte count.
func (c *Config) SetLines(n uint64) {
	c.Lines = n
	c.Bytes = ""
}

// SetBytes selects byte mode, clearing any line count. s is kept unscaled.
func (c *Config) SetBytes(s string) {
	c.Bytes = s
	c.Lines = 0
}

// IsS3ConfigValid returns true if the S3 publish config is complete.
func (c *Config) IsS3ConfigValid() bool {
	return len(c.Publish.S3cfg.BucketName) > 0 && len(c.Publish.S3cfg.Region) > 0
}

// IsLocalPublishValid returns true if chunks are to be copied to a local directory.
func (c *Config) IsLocalPublishValid() bool {
	return len(c.Publish.LocalPath) > 0
}

// HasPublish returns true if a publish backend is configured.
func (c *Config) HasPublish() bool {
	return c.IsS3ConfigValid() || c.IsLocalPublishValid()
}

func (c *Config) String() string {
	cyaml, err := yaml.Marshal(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return string(cyaml)
}

// Redacted returns a YAML representation of the config with sensitive fields redacted.
func (c *Config) Redacted() string {
	redacted := *c
	if redacted.Publish.S3cfg.AccessKey != "" {
		redacted.Publish.S3cfg.AccessKey = constants.RedactedValue
	}
	if redacted.Publish.S3cfg.SecretKey != "" {
		redacted.Publish.S3cfg.SecretKey = constants.RedactedValue
	}
	cyaml, err := yaml.Marshal(redacted)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return string(cyaml)
}

// Usage prints the usage of the config.
func (c *Config) Usage() {
	f := cleanenv.Usage(c, nil)
	f()
}
