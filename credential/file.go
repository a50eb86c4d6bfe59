package credential

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// FileStore persists values as a flat JSON object in a single file.
// Every operation re-reads the file so several processes see each
// other's writes.
type FileStore struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

// NewFileStore creates a FileStore at path on fs. The file is created on
// the first Set.
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: filepath.Clean(path)}
}

// Path returns the backing file path.
func (f *FileStore) Path() string { return f.path }

// Get implements Store.
func (f *FileStore) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// Set implements Store.
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return err
	}
	values[key] = value
	return f.save(values)
}

// Delete implements Store. The file is removed once it holds no values.
func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	if len(values) == 0 {
		if err := f.fs.Remove(f.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("credential: remove %s: %w", f.path, err)
		}
		return nil
	}
	return f.save(values)
}

func (f *FileStore) load() (map[string]string, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("credential: read %s: %w", f.path, err)
	}
	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("credential: decode %s: %w", f.path, err)
	}
	return values, nil
}

func (f *FileStore) save(values map[string]string) error {
	if err := f.fs.MkdirAll(filepath.Dir(f.path), dirMode); err != nil {
		return fmt.Errorf("credential: create directory: %w", err)
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("credential: encode: %w", err)
	}
	if err := afero.WriteFile(f.fs, f.path, data, fileMode); err != nil {
		return fmt.Errorf("credential: write %s: %w", f.path, err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := f.fs.Chmod(f.path, fileMode); err != nil {
		return fmt.Errorf("credential: chmod %s: %w", f.path, err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
