// Package host models the language-server host collaborators the pragma
// handlers consume: document snapshots, parsed-module handles with their
// flags, and live buffer overlays. The real host owns all of this; the Store
// here is the reference implementation the CLI and tests run against.
package host

import (
	"os"
	"path/filepath"

	"pragmata/internal/pragma"
)

// Module is the handle for a successfully parsed module. It only carries
// what the pragma rules need: the resolved flags snapshot.
type Module struct {
	Flags *pragma.FlagSet
}

// DocumentSnapshot is the per-request view of one document. Module is nil
// when the file failed to parse; HasContents is false when no text could be
// read. Handlers degrade to defaults on either absence.
type DocumentSnapshot struct {
	Module      *Module
	Contents    string
	HasContents bool
}

// Flags returns the module's flags snapshot, or nil when there is no module.
func (s DocumentSnapshot) Flags() *pragma.FlagSet {
	if s.Module == nil {
		return nil
	}
	return s.Module.Flags
}

// Store is a document table keyed by normalized absolute path. Live buffers
// opened by an editor shadow the file on disk. The store itself does no
// locking: the host serializes access around its own session cache.
type Store struct {
	overlay map[string]string
	modules map[string]*Module
}

// NewStore returns an empty document store.
func NewStore() *Store {
	return &Store{
		overlay: make(map[string]string),
		modules: make(map[string]*Module),
	}
}

// NormalizePath resolves path to the store's canonical absolute form.
func NormalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// Open installs or replaces the live buffer for path.
func (s *Store) Open(path, text string) {
	s.overlay[NormalizePath(path)] = text
}

// Close drops the live buffer for path; later snapshots fall back to disk.
func (s *Store) Close(path string) {
	delete(s.overlay, NormalizePath(path))
}

// SetModule installs the parsed-module handle for path. A nil module records
// a parse failure.
func (s *Store) SetModule(path string, mod *Module) {
	s.modules[NormalizePath(path)] = mod
}

// Snapshot returns the current view of path: overlay text when the document
// is open, disk contents otherwise. A missing file yields HasContents false.
func (s *Store) Snapshot(path string) DocumentSnapshot {
	key := NormalizePath(path)
	snap := DocumentSnapshot{Module: s.modules[key]}
	if text, ok := s.overlay[key]; ok {
		snap.Contents = text
		snap.HasContents = true
		return snap
	}
	data, err := os.ReadFile(key)
	if err != nil {
		return snap
	}
	snap.Contents = string(data)
	snap.HasContents = true
	return snap
}
