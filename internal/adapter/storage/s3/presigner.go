// Package s3 issues presigned upload URLs for profile photos on any
// S3-compatible object store.
package s3

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/heartmarshall/daybook-backend/internal/config"
)

// Presigner signs PUT requests so clients upload straight to the bucket.
type Presigner struct {
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
	baseURL string
	now     func() time.Time
}

// NewPresigner builds a presigner from cfg. Signing happens locally, so no
// request reaches the store until a client uses the URL.
func NewPresigner(ctx context.Context, cfg config.StorageConfig) (*Presigner, error) {
	if !cfg.Enabled() {
		return nil, errors.New("s3.NewPresigner: bucket is not configured")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3.NewPresigner: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Presigner{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		ttl:     cfg.PresignTTL,
		baseURL: publicBase(cfg),
		now:     time.Now,
	}, nil
}

// PresignUpload returns a URL accepting a single PUT of key with the given
// content type, and the instant it stops being valid.
func (p *Presigner) PresignUpload(ctx context.Context, key, contentType string) (string, time.Time, error) {
	expires := p.now().Add(p.ttl)

	req, err := p.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("s3.PresignUpload: %w", err)
	}

	return req.URL, expires, nil
}

// PublicURL returns the address the object at key is served from once uploaded.
func (p *Presigner) PublicURL(key string) string {
	return p.baseURL + "/" + escapeKey(key)
}

func publicBase(cfg config.StorageConfig) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
