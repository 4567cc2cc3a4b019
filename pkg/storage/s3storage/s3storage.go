// Package s3storage provides an S3 compatible storage implementation.
package s3storage

import (
	"context"
	"crypto/md5" //nolint:gosec // G501: MD5 is required by the S3 Content-MD5 integrity header
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage publishes chunk files to an S3 bucket.
type S3Storage struct {
	client *s3.Client
	bucket string
	path   string
}

// Credentials holds a static access key pair.
type Credentials struct {
	AccessKey string
	SecretKey string
}

// NewS3Storage creates an S3Storage. Static credentials are used when both
// keys of creds are set, otherwise the default AWS credential chain applies.
// A non-empty endpoint selects an S3 compatible service (MinIO, ...)
// addressed in path style.
func NewS3Storage(ctx context.Context, region string, endpoint string, bucket string, bucketPath string,
	creds Credentials,
) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if accessKey, secretKey := creds.AccessKey, creds.SecretKey; accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client: client,
		bucket: bucket,
		path:   bucketPath,
	}, nil
}

// CreateBucket creates the configured bucket.
func (s *S3Storage) CreateBucket(ctx context.Context) error {
	_, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Key returns the object key of dstFilename.
func (s *S3Storage) Key(dstFilename string) string {
	if s.path == "" {
		return dstFilename
	}
	return path.Join(s.path, dstFilename)
}

// SaveFile uploads the chunk file. The file is opened once: its MD5 is
// computed, then it is rewound and streamed to PutObject.
func (s *S3Storage) SaveFile(ctx context.Context, srcFilePath string, dstFilename string) error {
	f, err := os.Open(srcFilePath) //nolint:gosec // G304: chunk path comes from the split run
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", srcFilePath, err)
	}
	defer func() { _ = f.Close() }()

	h := md5.New() //nolint:gosec // G401: see import
	size, err := io.Copy(h, f)
	if err != nil {
		return fmt.Errorf("failed to compute checksum of %s: %w", srcFilePath, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind %s: %w", srcFilePath, err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.Key(dstFilename)),
		Body:          f,
		ContentLength: aws.Int64(size),
		ContentMD5:    aws.String(base64.StdEncoding.EncodeToString(h.Sum(nil))),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to s3://%s/%s: %w", srcFilePath, s.bucket, s.Key(dstFilename), err)
	}
	return nil
}
