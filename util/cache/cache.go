package cache

import (
	"encoding/json"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"sync"
)

var (
	CACHE_PATH string = filepath.Join(getHomeDir(), ".namesdao", "cache.json")

	defaultStore *Store
	defaultOnce  sync.Once
)

func getHomeDir() string {
	usr, err := user.Current()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			return home
		}
		return "."
	}
	return usr.HomeDir
}

type simpleCache struct {
	Data map[string]string `json:"Data"`
}

// Store is a small JSON file of string values, keyed case-insensitively.
// It holds local state the tool may reuse between runs, such as imported
// public keys. It never holds lookup results.
type Store struct {
	mu    sync.Mutex
	path  string
	cache *simpleCache
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Default returns the store at CACHE_PATH.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = NewStore(CACHE_PATH)
	})
	return defaultStore
}

func (s *Store) persist() error {
	jsonData, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, jsonData, 0o644)
}

func (s *Store) load() *simpleCache {
	if s.cache != nil {
		return s.cache
	}
	s.cache = &simpleCache{
		Data: map[string]string{},
	}
	content, err := os.ReadFile(s.path)
	if err != nil {
		// WARNING: swallow error here, a missing file is an empty cache
		return s.cache
	}
	if err := json.Unmarshal(content, s.cache); err != nil || s.cache.Data == nil {
		s.cache.Data = map[string]string{}
	}
	return s.cache
}

func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, found := s.load().Data[strings.ToLower(key)]
	if !found {
		return "", false
	}
	return value, true
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.load()
	c.Data[strings.ToLower(key)] = value
	return s.persist()
}
