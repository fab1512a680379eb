package contracts

import "context"

type Storage interface {
	// UploadBase64Image stores decoded image bytes and returns the object
	// name inside the bucket.
	UploadBase64Image(ctx context.Context, imageData []byte, bucketName, objectName, fileExtension string) (string, error)
}
