package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/sakif/snipvault/internal/apperror"
	"github.com/sakif/snipvault/internal/model"
)

// COMPILE-TIME INTERFACE CHECK:
// `var _ Store = (*JSONStore)(nil)` makes the compiler verify that
// *JSONStore implements Store. If a method is missing or has the wrong
// signature, the build fails here instead of at some distant call site.
var _ Store = (*JSONStore)(nil)

// JSONStore persists the collection as one pretty-printed JSON object
// mapping snippet name → {content, created_at}. The file is the entire
// store: Save truncates and rewrites it, Load reads it whole.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store backed by the file at path.
// Construction cannot fail — the file is only touched on Load/Save,
// so a bad path surfaces there.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads and deserializes the whole file.
//
// A nonexistent file is the first-run case and yields an empty collection.
// Anything else that goes wrong — unreadable file, malformed JSON, a
// created_at that doesn't parse as a timestamp — is a read error: the
// store exists but cannot be trusted, so nothing is returned.
func (s *JSONStore) Load(_ context.Context) (model.Collection, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Collection{}, nil
		}
		return nil, apperror.StorageRead(s.path, err)
	}

	var c model.Collection
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, apperror.StorageRead(s.path, err)
	}
	if c == nil {
		// The file contained JSON `null`. Treat it like an empty store so
		// callers never see a nil map.
		c = model.Collection{}
	}
	return c, nil
}

// Save serializes the full collection and overwrites the file in place.
//
// Truncate-and-write is NOT crash-atomic: a crash mid-write can leave a
// torn file. Accepted for this tool's single-shot, single-user scope.
func (s *JSONStore) Save(_ context.Context, c model.Collection) error {
	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return apperror.StorageWrite(s.path, err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return apperror.StorageWrite(s.path, err)
	}
	return nil
}
