package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"docboard/internal/config"
	"docboard/internal/model"
)

// minioStore implements BlobStore on an S3-compatible backend (MinIO, AWS S3).
// Object key = blob id; the bucket plays the role of the flat directory.
// It is safe for concurrent use by multiple goroutines.
type minioStore struct {
	client *minio.Client
	bucket string
}

// NewMinIO creates an S3-backed BlobStore. It validates connectivity and
// ensures the bucket exists (creates it if missing).
func NewMinIO(cfg config.MinIOConfig) (BlobStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ms := &minioStore{client: cli, bucket: cfg.Bucket}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return ms, nil
}

var _ BlobStore = (*minioStore)(nil)

func documentFromObject(id string, size int64, modified time.Time) model.Document {
	name, ext := SplitID(id)
	return model.Document{
		ID:        id,
		Name:      name,
		Ext:       ext,
		Size:      size,
		CreatedAt: modified,
		UpdatedAt: modified,
	}
}

// translateMinioErr maps missing-object responses to ErrNotFound.
func translateMinioErr(err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
		return ErrNotFound
	}
	return err
}

func (s *minioStore) List(ctx context.Context) ([]model.Document, error) {
	docs := make([]model.Document, 0)
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		docs = append(docs, documentFromObject(obj.Key, obj.Size, obj.LastModified))
	}
	return docs, nil
}

func (s *minioStore) Stat(ctx context.Context, id string) (*model.Document, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	st, err := s.client.StatObject(ctx, s.bucket, id, minio.StatObjectOptions{})
	if err != nil {
		return nil, translateMinioErr(err)
	}
	doc := documentFromObject(id, st.Size, st.LastModified)
	return &doc, nil
}

func (s *minioStore) Get(ctx context.Context, id string) (*model.Document, []byte, error) {
	doc, err := s.Stat(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	obj, err := s.client.GetObject(ctx, s.bucket, id, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, translateMinioErr(err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, nil, translateMinioErr(err)
	}
	return doc, data, nil
}

func (s *minioStore) put(ctx context.Context, id string, data []byte) (*model.Document, error) {
	_, ext := SplitID(id)
	_, err := s.client.PutObject(ctx, s.bucket, id, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: ContentTypeForExt(ext)})
	if err != nil {
		return nil, err
	}
	return s.Stat(ctx, id)
}

func (s *minioStore) Create(ctx context.Context, name, ext string, data []byte) (*model.Document, error) {
	id := ComposeID(name, ext)
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	return s.put(ctx, id, data)
}

func (s *minioStore) Update(ctx context.Context, id string, data []byte) (*model.Document, error) {
	if _, err := s.Stat(ctx, id); err != nil {
		return nil, err
	}
	return s.put(ctx, id, data)
}

func (s *minioStore) Delete(ctx context.Context, id string) error {
	if _, err := s.Stat(ctx, id); err != nil {
		return err
	}
	return s.client.RemoveObject(ctx, s.bucket, id, minio.RemoveObjectOptions{})
}
