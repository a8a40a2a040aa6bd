// Package publish uploads run artifacts (model file, exchange file, results)
// to object storage. Publishing happens after the model is saved and never
// invalidates it; failures are logged and returned to the caller.
package publish

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
)

// putObjectAPI is the part of the S3 client the publisher needs.
type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 uploads files to s3://Bucket/Prefix/<basename>.
type S3 struct {
	client putObjectAPI
	bucket string
	prefix string
}

// Options configures NewS3. Region and Endpoint are optional; the default AWS
// credential chain is used.
type Options struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string
}

// NewS3 builds a publisher from the default AWS configuration.
func NewS3(ctx context.Context, opts Options) (*S3, error) {
	if opts.Bucket == "" {
		return nil, errors.New("publish bucket is required")
	}
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3(client, opts.Bucket, opts.Prefix), nil
}

func newS3(client putObjectAPI, bucket, prefix string) *S3 {
	return &S3{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// Key is the object key a local file is uploaded under.
func (p *S3) Key(file string) string {
	return path.Join(p.prefix, filepath.Base(file))
}

// Publish uploads every file that exists and returns the s3:// URIs written.
// Missing files are skipped; the first upload error stops the run.
func (p *S3) Publish(ctx context.Context, files ...string) ([]string, error) {
	logger := ctxlog.FromContext(ctx).With("bucket", p.bucket)
	var uploaded []string
	for _, file := range files {
		if file == "" {
			continue
		}
		uri, err := p.upload(ctx, file)
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("Artifact does not exist; skipping.", "path", file)
			continue
		}
		if err != nil {
			logger.Error("Artifact upload failed.", "path", file, "error", err)
			return uploaded, err
		}
		uploaded = append(uploaded, uri)
	}
	logger.Info("Artifacts published.", "count", len(uploaded))
	return uploaded, nil
}

func (p *S3) upload(ctx context.Context, file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to get file stats for '%s': %w", file, err)
	}

	key := p.Key(file)
	contentType := ContentType(file)
	ctxlog.FromContext(ctx).Info("Uploading artifact.", "source", file, "key", key, "size", stat.Size(), "contentType", contentType)

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(stat.Size()),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload '%s' to s3://%s/%s: %w", file, p.bucket, key, err)
	}
	return fmt.Sprintf("s3://%s/%s", p.bucket, key), nil
}

// ContentType derives a MIME type from the file extension.
func ContentType(file string) string {
	ext := strings.ToLower(filepath.Ext(file))
	switch ext {
	case ".idf", ".osm", ".err", ".ddy", ".epw":
		return "text/plain; charset=utf-8"
	case ".csv":
		return "text/csv; charset=utf-8"
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
