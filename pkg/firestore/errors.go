package firestore

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsNotFound reports whether the error is the store's missing-document error.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
