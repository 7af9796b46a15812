// Package ghc resolves the extension and flag catalogs for a concrete GHC
// installation. Results are cached on disk per compiler version so repeated
// CLI runs do not shell out again. The pragma handlers themselves stay
// stateless; only this host-side loader persists anything.
package ghc

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"pragmata/internal/pragma"
)

// DefaultExecutable is used when the host config names no compiler.
const DefaultExecutable = "ghc"

// Load returns the catalog for the given GHC executable, preferring the
// disk cache. The compiler is only queried on a cache miss.
func Load(ctx context.Context, exe string) (*pragma.Catalog, string, error) {
	if exe == "" {
		exe = DefaultExecutable
	}
	version, err := run(ctx, exe, "--numeric-version")
	if err != nil {
		return nil, "", fmt.Errorf("ghc: resolve version: %w", err)
	}
	version = strings.TrimSpace(version)

	cache, err := OpenCache()
	if err == nil {
		if cat, ok := cache.Get(version); ok {
			return cat, version, nil
		}
	}

	cat, err := Query(ctx, exe)
	if err != nil {
		return nil, version, err
	}
	if cache != nil {
		// Best effort; a failed write only costs the next run a re-query.
		_ = cache.Put(version, cat)
	}
	return cat, version, nil
}

// Refresh queries the compiler unconditionally and overwrites the cache
// entry for its version.
func Refresh(ctx context.Context, exe string) (*pragma.Catalog, string, error) {
	if exe == "" {
		exe = DefaultExecutable
	}
	version, err := run(ctx, exe, "--numeric-version")
	if err != nil {
		return nil, "", fmt.Errorf("ghc: resolve version: %w", err)
	}
	version = strings.TrimSpace(version)
	cat, err := Query(ctx, exe)
	if err != nil {
		return nil, version, err
	}
	if cache, cerr := OpenCache(); cerr == nil {
		_ = cache.Put(version, cat)
	}
	return cat, version, nil
}

// Query asks the compiler for its supported extensions and flags without
// touching the cache.
func Query(ctx context.Context, exe string) (*pragma.Catalog, error) {
	if exe == "" {
		exe = DefaultExecutable
	}
	exts, err := run(ctx, exe, "--supported-extensions")
	if err != nil {
		return nil, fmt.Errorf("ghc: list extensions: %w", err)
	}
	flags, err := run(ctx, exe, "--show-options")
	if err != nil {
		return nil, fmt.Errorf("ghc: list options: %w", err)
	}
	return pragma.NewCatalog(splitLines(exts), splitLines(flags)), nil
}

func run(ctx context.Context, exe string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
