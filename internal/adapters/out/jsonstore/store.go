package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"
)

// Store keeps every table aggregate in memory and mirrors the whole set
// into one JSON file. Reads are served from memory; each mutation runs
// against a deep clone and is committed only after the file write succeeds,
// so a crash or a full disk never leaves the store half-updated.
//
// Mutations of the same table are serialized by a per-table lock; the file
// flush itself is serialized globally but held only for the write.
type Store struct {
	path   string
	logger *slog.Logger

	mu     sync.RWMutex
	tables map[string]*table.Table

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	flushMu sync.Mutex
}

// NewStore opens the store at path, loading the existing file if present.
// A missing file is an empty store; a corrupt file is an error, not silent
// data loss.
func NewStore(path string, logger *slog.Logger) (*Store, error) {
	s := &Store{
		path:   path,
		logger: logger,
		tables: make(map[string]*table.Table),
		locks:  make(map[string]*sync.Mutex),
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Seed adds the given tables to the store if their ids are not present yet
// and flushes. Existing tables keep their persisted state untouched, so a
// restart never resets seated clients.
func (s *Store) Seed(ctx context.Context, tables []*table.Table) error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.mu.Lock()
	added := false
	for _, t := range tables {
		if _, ok := s.tables[t.ID()]; ok {
			continue
		}
		s.tables[t.ID()] = t.Clone()
		added = true
	}
	s.mu.Unlock()

	if !added {
		return nil
	}
	return s.flush(ctx)
}

// Get retrieves a deep-cloned snapshot of the table with the given id.
func (s *Store) Get(_ context.Context, id string) (*table.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("tableId", id)
	}
	return t.Clone(), nil
}

// FindByAccessToken retrieves a snapshot of the table whose access token
// matches.
func (s *Store) FindByAccessToken(_ context.Context, token string) (*table.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tables {
		if t.AccessToken() == token {
			return t.Clone(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("accessToken", token)
}

// All retrieves snapshots of every table, ordered by id.
func (s *Store) All(_ context.Context) ([]*table.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.tables))
	for id := range s.tables {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	snapshots := make([]*table.Table, 0, len(ids))
	for _, id := range ids {
		snapshots = append(snapshots, s.tables[id].Clone())
	}
	return snapshots, nil
}

// WithTable runs fn against a clone of the table and commits the clone if
// both fn and the durable write succeed. On any failure the previous state
// stays current, in memory and on disk.
func (s *Store) WithTable(ctx context.Context, id string, fn func(t *table.Table) error) error {
	lock := s.tableLock(id)
	lock.Lock()
	defer lock.Unlock()

	s.mu.RLock()
	current, ok := s.tables[id]
	s.mu.RUnlock()
	if !ok {
		return errs.NewObjectNotFoundError("tableId", id)
	}

	candidate := current.Clone()
	if err := fn(candidate); err != nil {
		return err
	}

	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.mu.Lock()
	s.tables[id] = candidate
	s.mu.Unlock()

	if err := s.flush(ctx); err != nil {
		s.mu.Lock()
		s.tables[id] = current
		s.mu.Unlock()
		return err
	}
	return nil
}

// tableLock returns the mutation lock for a table id, creating it on first
// use.
func (s *Store) tableLock(id string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

// load reads the store file into memory. Missing file means empty store.
func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errs.NewPersistenceFailureError(s.path, err)
	}

	var dto storeDTO
	if err = json.Unmarshal(raw, &dto); err != nil {
		return errs.NewPersistenceFailureError(s.path, err)
	}

	for id, td := range dto.Tables {
		t, restoreErr := tableToDomain(td)
		if restoreErr != nil {
			return errs.NewPersistenceFailureError(s.path, restoreErr)
		}
		s.tables[id] = t
	}
	return nil
}

// flush writes the whole store to a temp file in the same directory, fsyncs
// it, renames it over the canonical path, and fsyncs the directory. Callers
// hold flushMu.
func (s *Store) flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	dto := storeDTO{Tables: make(map[string]tableDTO, len(s.tables))}
	for id, t := range s.tables {
		dto.Tables[id] = tableFromDomain(t)
	}
	s.mu.RUnlock()

	raw, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return s.persistenceFailure(err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".tables-*.json")
	if err != nil {
		return s.persistenceFailure(err)
	}
	tmpPath := tmp.Name()

	if _, err = tmp.Write(raw); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return s.persistenceFailure(err)
	}

	if err = os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return s.persistenceFailure(err)
	}

	if err = syncDir(dir); err != nil {
		return s.persistenceFailure(err)
	}
	return nil
}

func (s *Store) persistenceFailure(cause error) error {
	err := errs.NewPersistenceFailureError(s.path, cause)
	s.logger.Error("table store flush failed",
		slog.String("path", s.path),
		slog.Any("error", cause))
	return err
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
