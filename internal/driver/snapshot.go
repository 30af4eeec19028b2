package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"ferro/internal/diag"
	"ferro/internal/source"
)

// Bump when the snapshot format changes; stale entries are ignored.
const snapshotSchemaVersion uint16 = 1

// DiskCache stores lowering snapshots keyed by source content hash.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type snapshotPath struct {
	Span    source.Span
	Display string
}

type snapshotImport struct {
	Span  source.Span
	Path  string
	Glob  bool
	Alias string
}

// snapshot is the on-disk payload for one clean file.
type snapshot struct {
	Schema  uint16
	Paths   []snapshotPath
	Imports []snapshotImport
}

// OpenDiskCache initializes a disk cache under the standard cache location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at dir, as used by tests.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	// A "lower" subdirectory keeps the cache easy to inspect and purge.
	return filepath.Join(c.dir, "lower", hex.EncodeToString(key[:])+".mp")
}

// store caches the result of a clean lowering run. Files with diagnostics
// are not cached: the diagnostics would be lost on restore.
func (c *DiskCache) store(f *source.File, res FileResult) {
	if c == nil || res.Bag == nil || res.Bag.Len() > 0 {
		return
	}

	payload := snapshot{Schema: snapshotSchemaVersion}
	for _, p := range res.Paths {
		payload.Paths = append(payload.Paths, snapshotPath(p))
	}
	for _, imp := range res.Imports {
		payload.Imports = append(payload.Imports, snapshotImport(imp))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(f.Hash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return
	}
	defer os.Remove(tmp.Name())

	if err := msgpack.NewEncoder(tmp).Encode(&payload); err != nil {
		tmp.Close()
		return
	}
	if err := tmp.Close(); err != nil {
		return
	}
	// Atomic swap keeps concurrent readers consistent.
	_ = os.Rename(tmp.Name(), p)
}

// restore looks up a cached snapshot for the file's content hash.
func (c *DiskCache) restore(f *source.File) (FileResult, bool) {
	if c == nil {
		return FileResult{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	fh, err := os.Open(c.pathFor(f.Hash))
	if err != nil {
		return FileResult{}, false
	}
	defer fh.Close()

	var payload snapshot
	if err := msgpack.NewDecoder(fh).Decode(&payload); err != nil {
		return FileResult{}, false
	}
	if payload.Schema != snapshotSchemaVersion {
		return FileResult{}, false
	}

	res := FileResult{
		FileID: f.ID,
		Bag:    diag.NewBag(0),
		Cached: true,
	}
	for _, p := range payload.Paths {
		res.Paths = append(res.Paths, LoweredPath(p))
	}
	for _, imp := range payload.Imports {
		res.Imports = append(res.Imports, Import(imp))
	}
	return res, true
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
