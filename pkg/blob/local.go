package blob

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shashiranjanraj/dukaan/config"
)

// localStore is the local-filesystem driver: one <key>.json file per blob
// under a root directory.
type localStore struct {
	root string // absolute root directory
}

func newLocalStore() *localStore {
	root := config.BlobLocalRoot()
	if !filepath.IsAbs(root) {
		cwd, _ := os.Getwd()
		root = filepath.Join(cwd, root)
	}
	return &localStore{root: root}
}

// NewLocalStore returns a filesystem driver rooted at dir.
// Used by tests to sandbox blobs under t.TempDir().
func NewLocalStore(dir string) Store {
	return &localStore{root: dir}
}

func (s *localStore) path(key string) string {
	return filepath.Join(s.root, key+".json")
}

func (s *localStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, fmt.Errorf("blob/local: get %s: %w", key, err)
	}
	return data, nil
}

func (s *localStore) Put(key string, value []byte) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("blob/local: mkdir: %w", err)
	}
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("blob/local: put %s: %w", key, err)
	}
	return nil
}

func (s *localStore) Exists(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}

func (s *localStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("blob/local: delete %s: %w", key, err)
	}
	return nil
}
