package gobloom

import (
	"sync"

	"github.com/huandu/skiplist"
	"github.com/pkg/errors"
)

// LevelSet holds one filter per level and is safe for concurrent use. Filters
// are kept ordered by level so that queries can check the newest level first.
type LevelSet struct {
	data *skiplist.SkipList // level (uint32) -> *Filter
	mu   sync.RWMutex
}

// Create a new, empty LevelSet.
func NewLevelSet() *LevelSet {
	return &LevelSet{
		data: skiplist.New(skiplist.Uint32),
	}
}

// Put stores a copy of f under f.Level(), replacing any filter already held for
// that level.
func (s *LevelSet) Put(f *Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Set(f.level, f.Copy())
}

// Get returns a copy of the filter held for level, or nil if there is none.
func (s *LevelSet) Get(level uint32) *Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	elem := s.data.Get(level)
	if elem == nil {
		return nil
	}
	return elem.Value.(*Filter).Copy()
}

// Remove drops the filter held for level. Returns false if there was none.
func (s *LevelSet) Remove(level uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.Remove(level) != nil
}

// Insert adds data to the filter held for level.
func (s *LevelSet) Insert(level uint32, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem := s.data.Get(level)
	if elem == nil {
		return errors.WithMessagef(ErrLevelNotFound, "level %d", level)
	}
	elem.Value.(*Filter).Insert(data)
	return nil
}

// Contains checks the filters from the highest level down and returns the
// first level whose filter might contain data.
func (s *LevelSet) Contains(data []byte) (uint32, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filters := s.filters()
	for i := len(filters) - 1; i >= 0; i-- {
		if filters[i].Contains(data) {
			return filters[i].level, true
		}
	}
	return 0, false
}

// Clear resets the bits of every filter. The levels stay registered.
func (s *LevelSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.filters() {
		f.Clear()
	}
}

// Levels returns the registered levels in ascending order.
func (s *LevelSet) Levels() []uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filters := s.filters()
	levels := make([]uint32, 0, len(filters))
	for _, f := range filters {
		levels = append(levels, f.level)
	}
	return levels
}

// Get the number of levels in the set.
func (s *LevelSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.Len()
}

// filters returns the held filters in ascending level order. The caller must
// hold s.mu.
func (s *LevelSet) filters() []*Filter {
	results := make([]*Filter, 0, s.data.Len())
	iter := s.data.Front()
	for iter != nil {
		results = append(results, iter.Value.(*Filter))
		iter = iter.Next()
	}
	return results
}
