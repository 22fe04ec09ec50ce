package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"kanban-board-api/internal/config"
	"kanban-board-api/internal/metrics"
)

// internalMinIOHost is the in-cluster MinIO address that presigned URLs are
// rewritten away from when a public endpoint is configured
const internalMinIOHost = "minio:9000"

// S3Client stores board exports in S3 or an S3-compatible endpoint (MinIO)
type S3Client struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	region        string
	endpoint      string
	metrics       *metrics.Metrics
}

// NewS3Client creates a new S3 client
func NewS3Client(ctx context.Context, cfg config.S3Config, m *metrics.Metrics) (*S3Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	} else if cfg.Endpoint != "" {
		return nil, fmt.Errorf("access key and secret key are required for a custom S3 endpoint")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Client{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		endpoint:      cfg.Endpoint,
		metrics:       m,
	}, nil
}

// Bucket returns the bucket exports are written to
func (c *S3Client) Bucket() string {
	return c.bucket
}

// UploadFile uploads body under key
func (c *S3Client) UploadFile(ctx context.Context, key string, body io.Reader, contentType string) error {
	start := time.Now()
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	c.record(key, "PUT", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return nil
}

// PresignDownloadURL returns a GET URL for key valid for expiry
func (c *S3Client) PresignDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	req, err := c.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return c.publicURL(req.URL), nil
}

// DeleteFile deletes key. It is used to roll back an upload whose record could not be saved.
func (c *S3Client) DeleteFile(ctx context.Context, key string) error {
	start := time.Now()
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	c.record(key, "DELETE", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

// publicURL swaps the in-cluster MinIO host for the configured endpoint host
func (c *S3Client) publicURL(url string) string {
	if c.endpoint == "" {
		return url
	}
	externalHost := strings.TrimPrefix(strings.TrimPrefix(c.endpoint, "http://"), "https://")
	return strings.Replace(url, internalMinIOHost, externalHost, 1)
}

func (c *S3Client) record(key, method string, duration time.Duration, err error) {
	status := 200
	if err != nil {
		status = 0
	}
	c.metrics.RecordExternalAPICall("s3://"+c.bucket+"/"+keyPrefix(key), method, status, duration, err)
}

// keyPrefix drops the last path segment so object names do not become label values
func keyPrefix(key string) string {
	if i := strings.LastIndex(key, "/"); i >= 0 {
		return key[:i]
	}
	return key
}
