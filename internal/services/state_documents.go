package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/contentply/contentply/internal/domain"
	"github.com/contentply/contentply/internal/ports"
)

// errCorruptDocument marks a stored document that is not valid JSON for its type
var errCorruptDocument = errors.New("corrupt state document")

// loadDocument decodes the JSON document under key into dst.
// Returns false when the key has never been written.
func loadDocument(ctx context.Context, store ports.StateStore, key string, dst any) (bool, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrStateNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("%w %s: %v", errCorruptDocument, key, err)
	}
	return true, nil
}

// saveDocument encodes v as JSON and stores it under key
func saveDocument(ctx context.Context, store ports.StateStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
