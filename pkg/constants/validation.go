package constants

// Suffix Limits.
const (
	// MaxSuffixLength caps the suffix length accepted from configuration.
	// 26^13 is the largest power of 26 that still fits in a uint64 chunk counter.
	MaxSuffixLength = 13
)

// Publish Limits.
const (
	// DefaultPublishConcurrency is the number of chunk uploads in flight (1 = sequential).
	DefaultPublishConcurrency = 1

	// MaxPublishConcurrency bounds the number of parallel chunk uploads.
	MaxPublishConcurrency = 16
)

// AWS S3 Validation Constants
//
// These limits are defined by AWS S3 bucket naming rules.
// Reference: https://docs.aws.amazon.com/AmazonS3/latest/userguide/bucketnamingrules.html
const (
	// S3BucketNameMinLength is the minimum allowed S3 bucket name length.
	S3BucketNameMinLength = 3

	// S3BucketNameMaxLength is the maximum allowed S3 bucket name length.
	S3BucketNameMaxLength = 63

	// S3RegionMinLength is the minimum allowed AWS region string length.
	S3RegionMinLength = 2

	// S3RegionMaxLength is the maximum allowed AWS region string length.
	// Longest region is ~20 characters (e.g., "ap-southeast-3").
	S3RegionMaxLength = 20
)
