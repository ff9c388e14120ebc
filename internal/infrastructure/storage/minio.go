package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/smart-voice-assistant/pkg/config"
)

const transcriptPrefix = "transcripts/"

// ObjectPutter is the subset of the MinIO client the archive writes through
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// TranscriptArchive keeps a copy of every voice transcription in object storage
type TranscriptArchive struct {
	client ObjectPutter
	bucket string
}

// NewMinIOArchive connects to MinIO and makes sure the bucket exists
func NewMinIOArchive(ctx context.Context, cfg *config.StorageConfig) (*TranscriptArchive, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	if err := ensureBucket(ctx, minioClient, cfg.BucketName); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return NewTranscriptArchive(minioClient, cfg.BucketName), nil
}

// NewTranscriptArchive writes transcripts into bucket through client
func NewTranscriptArchive(client ObjectPutter, bucket string) *TranscriptArchive {
	return &TranscriptArchive{client: client, bucket: bucket}
}

func ensureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// TranscriptKey returns the object name a transcript is stored under
func TranscriptKey(id uuid.UUID) string {
	return transcriptPrefix + id.String() + ".txt"
}

// ArchiveTranscript uploads text as a plain-text object and returns its key
func (a *TranscriptArchive) ArchiveTranscript(ctx context.Context, id uuid.UUID, text string) (string, error) {
	key := TranscriptKey(id)
	content := []byte(text)

	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload transcript: %w", err)
	}
	return key, nil
}
