// Package service contains the command dispatch logic: the three intents
// (create, read, delete) a single invocation can carry, executed against
// a storage backend.
//
// THE DEPENDENCY CHAIN:
//
//	main.go creates:  Store → Fetcher → SnippetService
//	At runtime:       CLI calls Service, Service calls Store/Fetcher
//
// The service takes a storage.Store and a fetch.Fetcher (interfaces), not
// concrete types — tests pass hand-written mocks, main passes the real
// backends. The service itself knows nothing about flags, env vars, or
// which backend it is talking to.
//
// Every mutating operation follows the same shape: load the whole
// collection, change the in-memory map, save the whole collection back.
// The collection is the unit of persistence; there are no partial writes.
package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/sakif/snipvault/internal/apperror"
	"github.com/sakif/snipvault/internal/fetch"
	"github.com/sakif/snipvault/internal/model"
	"github.com/sakif/snipvault/internal/storage"
)

// SnippetService executes snippet commands against a storage backend.
type SnippetService struct {
	store   storage.Store
	fetcher fetch.Fetcher
	stdin   io.Reader
	logger  *slog.Logger
}

// NewSnippetService wires the service's collaborators. stdin is the reader
// consumed for snippet content when no download URL is given — os.Stdin in
// production, a bytes.Reader in tests.
func NewSnippetService(store storage.Store, fetcher fetch.Fetcher, stdin io.Reader, logger *slog.Logger) *SnippetService {
	return &SnippetService{
		store:   store,
		fetcher: fetcher,
		stdin:   stdin,
		logger:  logger,
	}
}

// Create stores new snippet content under name and returns the stored
// snippet.
//
// Content comes from downloadURL when one is given, otherwise from stdin
// read to EOF. The snippet is stamped with the current time and inserted
// into the loaded collection — a plain map insert, so an existing name is
// fully replaced, timestamp included. The whole collection is then saved.
func (s *SnippetService) Create(ctx context.Context, name, downloadURL string) (*model.Snippet, error) {
	collection, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var content string
	if downloadURL != "" {
		s.logger.Info("downloading snippet", slog.String("url", downloadURL))
		content, err = s.fetcher.Fetch(ctx, downloadURL)
		if err != nil {
			return nil, err
		}
	} else {
		raw, err := io.ReadAll(s.stdin)
		if err != nil {
			return nil, apperror.Stdin(err)
		}
		content = string(raw)
	}

	snippet := model.Snippet{
		Content:   content,
		CreatedAt: time.Now(),
	}
	collection[name] = snippet

	if err := s.store.Save(ctx, collection); err != nil {
		s.logger.Error("failed to save snippet",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("snippet saved",
		slog.String("name", name),
		slog.Int("size", len(content)),
	)
	return &snippet, nil
}

// Read looks up name in the stored collection. A missing name is a normal
// outcome, reported through the bool — not an error.
func (s *SnippetService) Read(ctx context.Context, name string) (*model.Snippet, bool, error) {
	collection, err := s.store.Load(ctx)
	if err != nil {
		return nil, false, err
	}

	snippet, ok := collection[name]
	if !ok {
		return nil, false, nil
	}
	return &snippet, true, nil
}

// Delete removes name from the collection. Save runs only when the name
// was actually present — a miss leaves the persisted store untouched.
func (s *SnippetService) Delete(ctx context.Context, name string) (bool, error) {
	collection, err := s.store.Load(ctx)
	if err != nil {
		return false, err
	}

	if _, ok := collection[name]; !ok {
		return false, nil
	}
	delete(collection, name)

	if err := s.store.Save(ctx, collection); err != nil {
		s.logger.Error("failed to save after delete",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return false, err
	}

	s.logger.Info("snippet deleted", slog.String("name", name))
	return true, nil
}
