// Package audiostore keeps transient synthesized audio in an S3-compatible bucket
// and hands out time-limited URLs the call-media platform can fetch.
package audiostore

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"voiceorder-server/internal/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	Prefix          string
	URLTTL          time.Duration
	AccessKeyID     string
	SecretAccessKey string
}

type Store struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	prefix    string
	ttl       time.Duration
	logger    *observability.Logger
}

func New(ctx context.Context, cfg Config, logger *observability.Logger) (*Store, error) {
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("audio bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	loadOptions := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOptions = append(loadOptions, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			// S3-compatible stores want path-style addressing and reject the newer default checksums.
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
			o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		}
	})

	ttl := cfg.URLTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &Store{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		prefix:    strings.Trim(cfg.Prefix, "/"),
		ttl:       ttl,
		logger:    logger,
	}, nil
}

func (s *Store) objectKey(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// Upload writes the object, replacing any previous object of the same name, and
// returns a presigned GET URL for it.
func (s *Store) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	key := s.objectKey(name)
	ctx = observability.WithFields(ctx, observability.Field{Key: "audio_key", Value: key})

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		s.logger.Error(ctx, "failed to upload audio", err)
		return "", fmt.Errorf("s3 put object: %w", err)
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		s.logger.Error(ctx, "failed to presign audio url", err)
		return "", fmt.Errorf("s3 presign get object: %w", err)
	}
	return req.URL, nil
}

// Delete removes the object. Deleting a missing object succeeds.
func (s *Store) Delete(ctx context.Context, name string) error {
	key := s.objectKey(name)
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("s3 delete object: %w", err)
	}
	return nil
}
