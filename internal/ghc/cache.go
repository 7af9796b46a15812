package ghc

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"pragmata/internal/pragma"
)

// Bump when the payload layout changes; stale entries are ignored.
const cacheSchemaVersion uint16 = 1

// Cache stores one catalog payload per compiler version under the user
// cache directory.
type Cache struct {
	dir string
}

type cachePayload struct {
	Schema     uint16
	Version    string
	Extensions []string
	Flags      []string
}

// OpenCache initializes the cache at the standard location
// ($XDG_CACHE_HOME/pragmata, falling back to ~/.cache/pragmata).
func OpenCache() (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenCacheAt(filepath.Join(base, "pragmata"))
}

// OpenCacheAt initializes a cache rooted at dir, creating it if needed.
func OpenCacheAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Get returns the cached catalog for a compiler version, if present and
// readable with the current schema.
func (c *Cache) Get(version string) (*pragma.Catalog, bool) {
	data, err := os.ReadFile(c.path(version))
	if err != nil {
		return nil, false
	}
	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion || payload.Version != version {
		return nil, false
	}
	return pragma.NewCatalog(payload.Extensions, payload.Flags), true
}

// Put stores the catalog for a compiler version. The write goes through a
// temp file and rename so readers never see a partial payload.
func (c *Cache) Put(version string, cat *pragma.Catalog) error {
	payload := cachePayload{
		Schema:     cacheSchemaVersion,
		Version:    version,
		Extensions: cat.Extensions(),
		Flags:      cat.Flags(),
	}
	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(c.dir, "catalog-*.tmp")
	if err != nil {
		return err
	}
	path := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(path)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return os.Rename(path, c.path(version))
}

func (c *Cache) path(version string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return '_'
		}
	}, version)
	return filepath.Join(c.dir, "catalog-"+name+".msgpack")
}
