// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package publish uploads generated files to an S3-compatible bucket.
package publish

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pdiddy/doksofort/pkg/types"
)

// contentTypes maps output extensions to upload content types.
var contentTypes = map[string]string{
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".pdf":  "application/pdf",
}

// putter is the part of *minio.Client the publisher needs.
type putter interface {
	FPutObject(ctx context.Context, bucket, object, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Publisher uploads files under a key prefix in one bucket.
type Publisher struct {
	api    putter
	bucket string
	prefix string
	w      io.Writer
}

// New connects a publisher for cfg. Progress lines go to w.
func New(cfg types.PublishConfig, w io.Writer) (*Publisher, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("publish.bucket is not set")
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("publish.bucket %q is set but publish.endpoint is empty", cfg.Bucket)
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", cfg.Endpoint, err)
	}
	return newPublisher(client, cfg, w), nil
}

func newPublisher(api putter, cfg types.PublishConfig, w io.Writer) *Publisher {
	if w == nil {
		w = io.Discard
	}
	return &Publisher{api: api, bucket: cfg.Bucket, prefix: strings.Trim(cfg.Prefix, "/"), w: w}
}

// Key returns the object key for a local file: prefix/basename.
func (p *Publisher) Key(file string) string {
	base := filepath.Base(file)
	if p.prefix == "" {
		return base
	}
	return path.Join(p.prefix, base)
}

// Publish uploads the document and, when set, its export. It returns the
// object keys written.
func (p *Publisher) Publish(ctx context.Context, r types.Result) ([]string, error) {
	files := []string{r.DocumentPath}
	if r.ExportPath != "" {
		files = append(files, r.ExportPath)
	}

	var keys []string
	for _, f := range files {
		key := p.Key(f)
		opts := minio.PutObjectOptions{ContentType: contentTypes[strings.ToLower(filepath.Ext(f))]}
		info, err := p.api.FPutObject(ctx, p.bucket, key, f, opts)
		if err != nil {
			return keys, fmt.Errorf("uploading %s to %s: %w", filepath.Base(f), p.bucket, err)
		}
		fmt.Fprintf(p.w, "published: s3://%s/%s (%d bytes)\n", p.bucket, key, info.Size)
		keys = append(keys, key)
	}
	return keys, nil
}
