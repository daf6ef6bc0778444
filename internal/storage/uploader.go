package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"referral-backend/internal/config"
	"referral-backend/internal/timeutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader stores report photos in an S3-compatible bucket (R2)
type Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewUploader builds the S3 client from the storage config. Returns nil when
// storage is not configured; photo uploads are then disabled.
func NewUploader(ctx context.Context, cfg *config.Config) (*Uploader, error) {
	if cfg.Storage.Endpoint == "" || cfg.Storage.Bucket == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKey, cfg.Storage.SecretKey, "",
		)),
		awsconfig.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
	})

	return &Uploader{
		client:        client,
		bucket:        cfg.Storage.Bucket,
		publicBaseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
	}, nil
}

// UploadReportPhoto stores a photo for a job report and returns its public URL.
// Keys are namespaced per job and timestamped so re-uploads never collide.
func (u *Uploader) UploadReportPhoto(ctx context.Context, jobID int, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("reports/%d/%d%s",
		jobID, timeutil.Now().UnixMilli(), sanitizeExt(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return u.publicBaseURL + "/" + key, nil
}

func sanitizeExt(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".heic":
		return ext
	default:
		return ".jpg"
	}
}
