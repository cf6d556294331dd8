package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ikkim/winecraft-backend/pkg/logger"
)

// S3Storage serves catalog images from a private bucket through
// short-lived presigned GET URLs.
type S3Storage struct {
	presigner *s3.PresignClient
	bucket    string
	prefix    string
	expiry    time.Duration
}

func NewS3Storage(region, bucket, accessKeyID, secretAccessKey, prefix string, expiry time.Duration) *S3Storage {
	var cfg aws.Config
	var err error

	// Static credentials win; otherwise fall back to the default chain
	// (environment, shared config, instance role).
	if accessKeyID != "" && secretAccessKey != "" {
		cfg = aws.Config{
			Region: region,
			Credentials: credentials.NewStaticCredentialsProvider(
				accessKeyID,
				secretAccessKey,
				"",
			),
		}
	} else {
		cfg, err = config.LoadDefaultConfig(context.Background(),
			config.WithRegion(region),
		)
		if err != nil {
			logger.Warn("Falling back to region-only AWS config", map[string]interface{}{
				"region": region,
				"error":  err.Error(),
			})
			cfg = aws.Config{
				Region: region,
			}
		}
	}

	if expiry <= 0 {
		expiry = time.Hour
	}

	return &S3Storage{
		presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		bucket:    bucket,
		prefix:    strings.Trim(prefix, "/"),
		expiry:    expiry,
	}
}

func (s *S3Storage) objectKey(asset string) string {
	asset = strings.TrimLeft(asset, "/")
	if s.prefix == "" {
		return asset
	}
	return s.prefix + "/" + asset
}

// URL presigns a GET for the asset.
func (s *S3Storage) URL(ctx context.Context, asset string) (string, error) {
	if asset == "" {
		return "", nil
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(asset)),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign asset %q: %w", asset, err)
	}
	return req.URL, nil
}
