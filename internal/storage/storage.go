// Package storage defines the persistence contract for snippet collections
// and its two concrete backends: a single JSON file and a SQLite table.
//
// THE CONTRACT:
// Both backends move the WHOLE collection in one call. Load returns every
// stored snippet; Save replaces everything previously stored. There is no
// per-record read or write — the collection is the unit of persistence.
// That keeps the two structurally different media (a serialized map on
// disk vs. rows in a table) behind one interface with identical semantics.
//
// Callers program to the Store interface and never know which backend
// they got — the same dependency-injection pattern the service layer uses.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/sakif/snipvault/internal/apperror"
	"github.com/sakif/snipvault/internal/model"
)

// Store is the capability set every backend provides.
//
// Load must return an empty (non-nil) collection, not an error, when the
// underlying store has never been populated — a missing JSON file or a
// freshly created table is the normal first-run state. A store that exists
// but cannot be deserialized is a read error.
//
// Save persists the entire given collection, replacing whatever was stored
// before. After a successful Save the persisted representation exactly
// reflects the in-memory collection — no stale records survive.
type Store interface {
	Load(ctx context.Context) (model.Collection, error)
	Save(ctx context.Context, c model.Collection) error
}

// Backend kind tags accepted by Open.
const (
	KindJSON   = "JSON"
	KindSQLite = "SQLITE"
)

// Open resolves a storage spec of the form KIND:location into a backend.
//
// The spec comes straight from SNIPPETS_APP_STORAGE. A missing separator
// or an unknown kind tag is a configuration error; a well-formed SQLITE
// spec can still fail at construction time (e.g. unwritable path), which
// surfaces as a storage init error from NewSQLiteStore.
//
// The location is everything after the FIRST colon, so Windows-style or
// otherwise colon-bearing paths stay intact.
func Open(spec string) (Store, error) {
	kind, location, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, apperror.Config(fmt.Sprintf(
			"storage spec %q must be %s:<path> or %s:<path>", spec, KindJSON, KindSQLite))
	}

	switch kind {
	case KindJSON:
		return NewJSONStore(location), nil
	case KindSQLite:
		return NewSQLiteStore(location)
	default:
		return nil, apperror.Config(fmt.Sprintf("unknown storage provider %q", kind))
	}
}
