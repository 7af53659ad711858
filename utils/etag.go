package utils

import (
	"crypto/sha1"
	"fmt"
)

// GenerateETag derives a weak validator from a document id and its
// creation timestamp. Events are immutable, so id+created_at uniquely
// identifies the representation.
func GenerateETag(id, createdAt string) string {
	sum := sha1.Sum([]byte(id + "|" + createdAt))
	return fmt.Sprintf(`"%x"`, sum[:8])
}
