package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sgaunet/gosplit/pkg/constants"
)

var (
	// ErrInvalidSuffixLength is returned for a suffix length out of range.
	ErrInvalidSuffixLength = errors.New("invalid suffix length")
	// ErrConflictingLimits is returned when both a line and a byte count are set.
	ErrConflictingLimits = errors.New("line count and byte count are mutually exclusive")
	// ErrInvalidBaseName is returned for a base name that is not a plain file name.
	ErrInvalidBaseName = errors.New("invalid base name")
	// ErrInvalidPublish is returned for an inconsistent publish configuration.
	ErrInvalidPublish = errors.New("invalid publish configuration")
)

// Validate checks the configuration after all overrides were applied.
func (c *Config) Validate() error {
	if c.SuffixLength < 0 || c.SuffixLength > constants.MaxSuffixLength {
		return fmt.Errorf("%w: %d (must be between 0 and %d)",
			ErrInvalidSuffixLength, c.SuffixLength, constants.MaxSuffixLength)
	}

	if c.Lines != 0 && c.Bytes != "" {
		return ErrConflictingLimits
	}
	if _, err := c.ByteLimit(); err != nil {
		return err
	}

	if err := validateBaseName(c.BaseName); err != nil {
		return err
	}

	return c.validatePublish()
}

func validateBaseName(name string) error {
	if name == "" {
		return nil
	}
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return fmt.Errorf("%w: %q must not contain a path separator, use the output directory", ErrInvalidBaseName, name)
	}
	return nil
}

func (c *Config) validatePublish() error {
	p := c.Publish
	if p.Concurrency < 1 || p.Concurrency > constants.MaxPublishConcurrency {
		return fmt.Errorf("%w: concurrency %d (must be between 1 and %d)",
			ErrInvalidPublish, p.Concurrency, constants.MaxPublishConcurrency)
	}
	if p.RatePerSec < 0 {
		return fmt.Errorf("%w: rate %v must not be negative", ErrInvalidPublish, p.RatePerSec)
	}
	if c.IsS3ConfigValid() && c.IsLocalPublishValid() {
		return fmt.Errorf("%w: choose either a local path or an S3 bucket", ErrInvalidPublish)
	}
	if !c.IsS3ConfigValid() {
		return nil
	}

	s3 := p.S3cfg
	if n := len(s3.BucketName); n < constants.S3BucketNameMinLength || n > constants.S3BucketNameMaxLength {
		return fmt.Errorf("%w: bucket name length %d (must be between %d and %d)", ErrInvalidPublish, n,
			constants.S3BucketNameMinLength, constants.S3BucketNameMaxLength)
	}
	if n := len(s3.Region); n < constants.S3RegionMinLength || n > constants.S3RegionMaxLength {
		return fmt.Errorf("%w: region length %d (must be between %d and %d)", ErrInvalidPublish, n,
			constants.S3RegionMinLength, constants.S3RegionMaxLength)
	}
	if strings.Contains(s3.BucketPath, "..") {
		return fmt.Errorf("%w: bucket path %q must not contain '..'", ErrInvalidPublish, s3.BucketPath)
	}
	return nil
}
