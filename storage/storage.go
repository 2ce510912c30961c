package storage

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Store is the small key-value persistence contract the session store,
// ledger and goal register are written against. Values are strings,
// JSON-encoded by callers where structured.
type Store interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
	Delete(key string) error
}

// FileStore persists all keys as a single JSON document on disk. Every Put
// and Delete flushes the whole document before returning, so the file is
// the single source of truth and the in-memory map is only a cache of it.
type FileStore struct {
	mu   sync.RWMutex
	file *os.File
	data map[string]string
}

func Open(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, err
	}
	fs := &FileStore{file: f}
	if err := fs.load(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return fs, nil
}

func (fs *FileStore) Close() error { return fs.file.Close() }

func (fs *FileStore) load() error {
	info, err := fs.file.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		fs.data = map[string]string{}
		return nil
	}
	dec := json.NewDecoder(fs.file)
	var data map[string]string
	if err := dec.Decode(&data); err != nil {
		return err
	}
	fs.data = data
	return nil
}

func (fs *FileStore) flushLocked() error {
	if _, err := fs.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	enc := json.NewEncoder(fs.file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fs.data); err != nil {
		return err
	}
	// truncate in case new content is shorter
	pos, _ := fs.file.Seek(0, io.SeekCurrent)
	if err := fs.file.Truncate(pos); err != nil {
		return err
	}
	return fs.file.Sync()
}

func (fs *FileStore) Get(key string) (string, bool, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	v, ok := fs.data[key]
	return v, ok, nil
}

func (fs *FileStore) Put(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.data[key] = value
	return fs.flushLocked()
}

func (fs *FileStore) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if _, ok := fs.data[key]; !ok {
		return nil
	}
	delete(fs.data, key)
	return fs.flushLocked()
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{data: map[string]string{}}
}

func (ms *MemStore) Get(key string) (string, bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	v, ok := ms.data[key]
	return v, ok, nil
}

func (ms *MemStore) Put(key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.data[key] = value
	return nil
}

func (ms *MemStore) Delete(key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.data, key)
	return nil
}
