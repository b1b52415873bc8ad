package blob

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/dukaan/config"
)

// ─── Manager ──────────────────────────────────────────────────────────────────

var (
	managerMu     sync.RWMutex
	stores        = map[string]Store{}
	defaultDriver string
)

// Connect boots the blob manager.
// Call once at process startup (e.g. from the CLI root command).
func Connect() error {
	defaultDriver = config.BlobDriver()

	// Always boot the local and memory drivers.
	stores["local"] = newLocalStore()
	stores["memory"] = NewMemoryStore()

	// Backend drivers boot lazily only when selected or configured.
	switch defaultDriver {
	case "redis":
		stores["redis"] = newRedisStore()
	case "database":
		db, err := newDatabaseStore()
		if err != nil {
			return fmt.Errorf("blob: %w", err)
		}
		stores["database"] = db
	case "s3":
		s, err := newS3Store()
		if err != nil {
			return fmt.Errorf("blob: %w", err)
		}
		stores["s3"] = s
	}

	return nil
}

// Use returns the named store. Panics when the driver was never configured;
// a typoed driver name is a programmer error, not a runtime condition.
func Use(name string) Store {
	managerMu.RLock()
	s, ok := stores[name]
	managerMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("blob: driver %q is not configured", name))
	}
	return s
}

// Register lets you plug in a custom Store implementation at boot time.
func Register(name string, s Store) {
	managerMu.Lock()
	stores[name] = s
	managerMu.Unlock()
}

// ─── Default driver helpers ───────────────────────────────────────────────────
// These proxy to the default driver (BLOB_DRIVER config key, default "local").

func defaultS() Store { return Use(defaultDriver) }

// Default returns the configured default store, for callers that want to
// hold a Store value instead of going through the package-level helpers.
func Default() Store { return defaultS() }

// Get returns the blob stored under key on the default driver.
func Get(key string) ([]byte, error) { return defaultS().Get(key) }

// Put stores value under key on the default driver.
func Put(key string, value []byte) error { return defaultS().Put(key, value) }

// Exists reports whether key is present on the default driver.
func Exists(key string) bool { return defaultS().Exists(key) }

// Delete removes key from the default driver.
func Delete(key string) error { return defaultS().Delete(key) }
