package blobstorage

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

type GCS struct {
	client *storage.Client
	bucket string
}

func NewGCS(ctx context.Context, bucket string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	return &GCS{
		client: client,
		bucket: bucket,
	}, nil
}

func (g *GCS) Store(ctx context.Context, filename string, data []byte) (string, error) {
	writer := g.client.Bucket(g.bucket).Object(filename).NewWriter(ctx)

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("write object %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close object writer %s: %w", filename, err)
	}

	return filename, nil
}

func (g *GCS) Close() error {
	return g.client.Close()
}
