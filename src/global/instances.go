package global

import (
	"context"
	"io"
)

type Instances struct {
	AwsS3 AwsS3
	Rmq   Rmq
}

// AwsS3 is nil unless an aws region is configured.
type AwsS3 interface {
	UploadFile(ctx context.Context, bucket, key string, data io.Reader, contentType, acl, cacheControl *string) error
}

// Rmq is nil unless an rmq server url is configured.
type Rmq interface {
	Publish(queue string, contentType string, deliveryMode uint8, msg []byte) error
	Shutdown()
}
