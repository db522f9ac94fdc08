// Package cache keeps lint findings on disk keyed by file content and rule
// configuration, so unchanged files are not parsed again.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// увеличивать при любом изменении Payload
const schemaVersion uint16 = 1

// Key addresses one payload.
type Key [32]byte

// KeyFor mixes the content hash with a fingerprint of the enabled rules.
func KeyFor(contentHash [32]byte, fingerprint string) Key {
	h := sha256.New()
	h.Write(contentHash[:])
	h.Write([]byte{0})
	h.Write([]byte(fingerprint))
	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

func (k Key) String() string { return hex.EncodeToString(k[:]) }

// Edit mirrors fix.TextEdit.
type Edit struct {
	Kind   uint8
	Offset uint32
	Length uint32
	Text   string
}

// Finding is a failure without its file id.
type Finding struct {
	Rule          string
	Message       string
	Severity      uint8
	Start         uint32
	End           uint32
	FixTitle      string
	Applicability uint8
	Edits         []Edit
}

// Payload is what gets stored for one file.
type Payload struct {
	Schema   uint16
	Path     string
	Findings []Finding
}

// Cache is a directory of msgpack payloads. Safe for concurrent use;
// all methods are no-ops on a nil *Cache.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open uses $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDir(filepath.Join(base, app))
}

// OpenDir uses dir as the cache root, creating it if needed.
func OpenDir(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *Cache) pathFor(key Key) string {
	hexKey := key.String()
	// два символа на подкаталог, чтобы не держать тысячи файлов в одном
	return filepath.Join(c.dir, "findings", hexKey[:2], hexKey+".mp")
}

// Put writes payload atomically.
func (c *Cache) Put(key Key, payload *Payload) (err error) {
	if c == nil || payload == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	payload.Schema = schemaVersion
	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close() //nolint:errcheck
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the payload for key. A missing entry or one written with
// another schema is a miss, not an error.
func (c *Cache) Get(key Key, out *Payload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	var p Payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	if p.Schema != schemaVersion {
		return false, nil
	}
	*out = p
	return true, nil
}

// DropAll removes every stored payload.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "findings"))
}
