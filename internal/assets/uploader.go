// Package assets uploads admin-supplied images to S3-compatible object
// storage and hands back the public URL the platform API stores.
package assets

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config selects the bucket that receives uploads. An empty Bucket
// disables uploads entirely. Endpoint is for S3-compatible stores
// (MinIO, R2); leave it empty for AWS proper.
type Config struct {
	Bucket        string
	Region        string
	Endpoint      string
	PublicBaseURL string
}

// Uploader stores files in a bucket under uploads/<random>.<ext>.
type Uploader struct {
	cfg    Config
	up     *manager.Uploader
	logger *slog.Logger
}

// NewUploader builds an uploader from the ambient AWS credential chain
// (env vars, shared config, instance role).
func NewUploader(ctx context.Context, cfg Config, logger *slog.Logger) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("assets: bucket not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("assets: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Uploader{
		cfg:    cfg,
		up:     manager.NewUploader(client),
		logger: logger.With("component", "assets"),
	}, nil
}

// Upload streams the file to the bucket and returns its public URL.
// The stored key keeps the original extension but replaces the name
// with a random hex string, so admins cannot clobber each other's
// uploads.
func (u *Uploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	key, err := objectKey(filename)
	if err != nil {
		return "", err
	}

	_, err = u.up.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType(filename)),
	})
	if err != nil {
		return "", fmt.Errorf("assets: upload %s: %w", filename, err)
	}

	url := u.publicURL(key)
	u.logger.Info("asset uploaded", "key", key, "url", url)
	return url, nil
}

func (u *Uploader) publicURL(key string) string {
	if u.cfg.PublicBaseURL != "" {
		return strings.TrimSuffix(u.cfg.PublicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, key)
}

// objectKey generates uploads/<16 random hex bytes><ext>.
func objectKey(filename string) (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("assets: generate key: %w", err)
	}
	ext := strings.ToLower(path.Ext(filename))
	return "uploads/" + hex.EncodeToString(b) + ext, nil
}

func contentType(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
