// Package config persists string settings in a JSON object on disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/interutils/cli/internal/domain"
	"github.com/interutils/cli/internal/log"
)

// Store is a JSON-backed key-value config. Every mutation is written back
// to disk before it returns.
type Store struct {
	mu     sync.RWMutex
	path   string
	values map[string]string

	reporter domain.Reporter
	quiet    bool
	locked   bool
}

// Option configures a Store.
type Option func(*Store)

// WithReporter sets where the "Recreated config!" caution goes.
func WithReporter(r domain.Reporter) Option {
	return func(s *Store) {
		s.reporter = r
	}
}

// WithQuiet suppresses the recreation caution.
func WithQuiet() Option {
	return func(s *Store) {
		s.quiet = true
	}
}

// WithLock serializes saves across processes through a lock file next to
// the config.
func WithLock() Option {
	return func(s *Store) {
		s.locked = true
	}
}

// Open loads the config at path. A missing file, a file that is not a JSON
// object, or an empty object is replaced with defaults, saved, and reported
// as a caution unless the store is quiet.
func Open(path string, defaults map[string]string, opts ...Option) (*Store, error) {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}

	values, err := load(path)
	if err != nil {
		return nil, err
	}
	if len(values) > 0 {
		s.values = values
		return s, nil
	}

	log.Info("config: recreating %s", path)
	s.values = maps.Clone(defaults)
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if err := s.Save(); err != nil {
		return nil, err
	}
	if !s.quiet && s.reporter != nil {
		s.reporter.Report(domain.SeverityCaution, "Recreated config!")
	}
	return s, nil
}

// load returns nil values (and no error) when the file must be recreated.
func load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn("config: %s is not a JSON object: %v", path, err)
		return nil, nil
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		values[k] = stringify(v)
	}
	return values, nil
}

// stringify flattens a decoded JSON value into its config string.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case bool, float64:
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// Path returns the file the store is persisted to.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// All returns a copy of every key and value.
func (s *Store) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}

// Keys returns the stored keys sorted.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.values))
}

// Set stores value under key and saves.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.saveLocked()
}

// Unset removes key and saves. It reports whether the key was present;
// removing an absent key does not touch the file.
func (s *Store) Unset(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return false, nil
	}
	delete(s.values, key)
	return true, s.saveLocked()
}

// Save writes the current values to disk.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')

	write := func() error { return writeFile(s.path, data) }
	if s.locked {
		err = withLock(s.path, write)
	} else {
		err = write()
	}
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	log.Debug("config: saved %d keys to %s", len(s.values), s.path)
	return nil
}

var _ domain.ConfigProvider = (*Store)(nil)
