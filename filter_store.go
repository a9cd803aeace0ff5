package gobloom

import (
	"os"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	leveldb_errors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"
)

const (
	FilterKeyPrefix = "filter_"
)

// FilterStore persists named filters in a LevelDB database. Filters are
// stored in the binary record format under FilterKeyPrefix + name.
type FilterStore struct {
	db     *leveldb.DB
	path   string
	mu     sync.Mutex // Serializes read-modify-write cycles in Update.
	logger *zap.Logger
}

// Opens the filter store at path, creating it if needed. A corrupted database
// is recovered. A nil logger disables logging.
func OpenFilterStore(path string, logger *zap.Logger) (*FilterStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Create directory if it doesn't exist.
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, errors.Wrapf(err, "create filter store directory %s", path)
	}

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		if !leveldb_errors.IsCorrupted(err) {
			return nil, errors.Wrapf(err, "open filter store %s", path)
		}
		logger.Warn("recovering corrupted filter store", zap.String("path", path), zap.Error(err))
		db, err = leveldb.RecoverFile(path, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "recover filter store %s", path)
		}
	}

	logger.Debug("opened filter store", zap.String("path", path))
	return &FilterStore{db: db, path: path, logger: logger}, nil
}

func (s *FilterStore) Close() error {
	s.logger.Debug("closing filter store", zap.String("path", s.path))
	return s.db.Close()
}

// Put stores f under name, replacing any existing filter.
func (s *FilterStore) Put(name string, f *Filter) error {
	data, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	if err := s.db.Put(filterKey(name), data, nil); err != nil {
		return errors.Wrapf(err, "put filter %q", name)
	}

	s.logger.Debug("stored filter",
		zap.String("name", name),
		zap.Int("bytes", f.Size()),
		zap.Uint32("hashFuncs", f.nHashFuncs),
		zap.Uint32("level", f.level),
	)
	return nil
}

// Get loads the filter stored under name. Returns ErrFilterNotFound if there
// is none.
func (s *FilterStore) Get(name string) (*Filter, error) {
	data, err := s.db.Get(filterKey(name), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, errors.WithMessagef(ErrFilterNotFound, "filter %q", name)
		}
		return nil, errors.Wrapf(err, "get filter %q", name)
	}

	f, err := FromBinary(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "decode filter %q", name)
	}
	return f, nil
}

// Delete removes the filter stored under name. Deleting a missing filter
// returns ErrFilterNotFound.
func (s *FilterStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := filterKey(name)
	ok, err := s.db.Has(key, nil)
	if err != nil {
		return errors.Wrapf(err, "delete filter %q", name)
	}
	if !ok {
		return errors.WithMessagef(ErrFilterNotFound, "filter %q", name)
	}
	if err := s.db.Delete(key, nil); err != nil {
		return errors.Wrapf(err, "delete filter %q", name)
	}

	s.logger.Debug("deleted filter", zap.String("name", name))
	return nil
}

// Update loads the filter stored under name, applies fn to it and stores the
// result. Nothing is written if fn returns an error.
func (s *FilterStore) Update(name string, fn func(f *Filter) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.Get(name)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		return err
	}
	return s.Put(name, f)
}

// List returns the names of all stored filters in sorted order.
func (s *FilterStore) List() ([]string, error) {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(FilterKeyPrefix)), nil)
	defer iter.Release()

	var names []string
	for iter.Next() {
		names = append(names, string(iter.Key()[len(FilterKeyPrefix):]))
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "list filters")
	}

	sort.Strings(names)
	return names, nil
}

// LoadLevelSet builds a LevelSet from the named filters. A later filter with
// the same level as an earlier one replaces it.
func (s *FilterStore) LoadLevelSet(names ...string) (*LevelSet, error) {
	set := NewLevelSet()
	for _, name := range names {
		f, err := s.Get(name)
		if err != nil {
			return nil, err
		}
		set.Put(f)
	}
	return set, nil
}

func filterKey(name string) []byte {
	return []byte(FilterKeyPrefix + name)
}
