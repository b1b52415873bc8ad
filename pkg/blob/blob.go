// Package blob provides the persistence adapter: synchronous get/put of a
// named blob by string key, with interchangeable backends.
//
// Five drivers are available out of the box:
//   - "local"    — one file per key on the local filesystem (default)
//   - "memory"   — in-process map; used for tests and session-scoped state
//   - "redis"    — Redis string values
//   - "database" — a key/value table via GORM (sqlite, postgres, mysql, sqlserver)
//   - "s3"       — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Quick start:
//
//	// boot once at process start:
//	blob.Connect()
//
//	// default driver
//	blob.Put("products", data)
//	data, _ := blob.Get("products")
//
//	// named driver
//	blob.Use("redis").Put("cart", data)
//
// The adapter promises nothing beyond single-key reads and writes: no
// transactions, no atomicity across keys, no concurrency control. A single
// synchronous caller is assumed.
package blob

// Store is the blob driver interface. Every driver must implement this.
type Store interface {
	// Get returns the blob stored under key. An error means the key is
	// absent or unreadable; callers treat both as an empty collection.
	Get(key string) ([]byte, error)

	// Put stores value under key, fully replacing prior contents.
	Put(key string, value []byte) error

	// Exists reports whether a blob is stored under key.
	Exists(key string) bool

	// Delete removes the blob under key. Absent keys are not an error.
	Delete(key string) error
}
