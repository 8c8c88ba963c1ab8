package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const minioProvider = "MinIO"

// MinioOptions configures a MinioStorage.
type MinioOptions struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	Prefix     string // optional key prefix, the "folder" inside the bucket
	PublicBase string // browser-accessible base URL for the bucket
	UseSSL     bool
}

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
type MinioStorage struct {
	client     *minio.Client
	bucket     string
	prefix     string
	publicBase string
}

// NewMinioStorage creates a MinIO client, ensures the bucket exists and returns
// a ready-to-use MinioStorage.
func NewMinioStorage(ctx context.Context, opts MinioOptions, log logrus.FieldLogger) (*MinioStorage, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, wrapMinioError("bucket exists", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, wrapMinioError("make bucket", err)
		}
		log.WithField("bucket", opts.Bucket).Info("storage: created bucket")
	}

	return &MinioStorage{
		client:     client,
		bucket:     opts.Bucket,
		prefix:     strings.Trim(opts.Prefix, "/"),
		publicBase: strings.TrimRight(opts.PublicBase, "/"),
	}, nil
}

// Upload streams reader to MinIO under prefix/name. size must be the exact
// byte count (pass -1 only if the size is genuinely unknown, MinIO will buffer it).
func (s *MinioStorage) Upload(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (*Object, error) {
	key := s.key(name)
	info, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, wrapMinioError("put object", err)
	}

	return &Object{
		ID:          info.Key,
		Name:        name,
		Size:        info.Size,
		ContentType: contentType,
		WebViewLink: s.PublicURL(info.Key),
	}, nil
}

// PublicURL returns the browser-accessible URL for the given key.
// For local MinIO: "http://localhost:9000/uploads/1700000000_report.pdf"
func (s *MinioStorage) PublicURL(key string) string {
	if s.publicBase == "" {
		return ""
	}
	return s.publicBase + "/" + key
}

func (s *MinioStorage) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// wrapMinioError turns S3 error responses into BackendErrors and leaves
// transport failures as plain wrapped errors.
func wrapMinioError(op string, err error) error {
	if resp := minio.ToErrorResponse(err); resp.Code != "" {
		return &BackendError{Provider: minioProvider, Op: op, Err: err}
	}
	return fmt.Errorf("minio %s: %w", op, err)
}
