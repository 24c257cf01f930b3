package memory

import (
	"context"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

// store implements domain.BlobStore in process memory. Used by tests and as
// the default backend when no database path is configured.
type store struct {
	blobs map[string][]byte
}

// NewStore creates an empty in-memory blob store
func NewStore() domain.BlobStore {
	return &store{blobs: make(map[string][]byte)}
}

func compositeKey(userID, key string) string {
	return userID + "/" + key
}

// Load retrieves the blob stored under (userID, key).
// A missing blob returns (nil, nil).
func (s *store) Load(_ context.Context, userID, key string) ([]byte, error) {
	blob, ok := s.blobs[compositeKey(userID, key)]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

// Save stores the blob under (userID, key), replacing any previous value
func (s *store) Save(_ context.Context, userID, key string, blob []byte) error {
	stored := make([]byte, len(blob))
	copy(stored, blob)
	s.blobs[compositeKey(userID, key)] = stored
	return nil
}
