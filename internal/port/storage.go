package port

import "context"

// ObjectStorage abstracts the bucket holding the extracted catalog document.
type ObjectStorage interface {
	Download(ctx context.Context, bucket, key string) ([]byte, error)
}
