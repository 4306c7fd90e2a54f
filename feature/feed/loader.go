package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"bundle-importer/core/storage"
	"bundle-importer/feature/bundle/models"

	"github.com/minio/minio-go/v7"
)

// LoadFile reads a candidate feed from a local JSON file.
func LoadFile(path string) ([]*models.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed file: %w", err)
	}
	defer f.Close()

	return parse(f)
}

// LoadObject reads a candidate feed from object storage.
func LoadObject(ctx context.Context, client storage.Client, bucket, objectName string) ([]*models.Product, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check feed bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("feed bucket %q does not exist", bucket)
	}

	reader, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get feed object: %w", err)
	}
	defer reader.Close()

	return parse(reader)
}

func parse(r io.Reader) ([]*models.Product, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	var records []ProductRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse feed JSON: %w", err)
	}

	return Convert(records)
}
