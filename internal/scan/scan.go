// Package scan walks a workspace for Haskell sources and fans per-file work
// out over a bounded worker pool.
package scan

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Event reports the outcome for one file.
type Event struct {
	Path string
	// Actions is how many suggestions the file produced.
	Actions int
	Err     error
}

// Files returns every *.hs and *.lhs file under dir, sorted for
// deterministic processing order.
func Files(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".hs") || strings.HasSuffix(path, ".lhs") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Run applies fn to every file with at most jobs workers (0 means
// GOMAXPROCS) and sends one Event per file. The events channel is closed
// before Run returns; the first fn error cancels the remaining work.
func Run(ctx context.Context, files []string, jobs int, fn func(context.Context, string) (int, error), events chan<- Event) error {
	defer close(events)
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, path := range files {
		path := path
		g.Go(func() error {
			actions, err := fn(ctx, path)
			select {
			case events <- Event{Path: path, Actions: actions, Err: err}:
			case <-ctx.Done():
				return ctx.Err()
			}
			return err
		})
	}
	return g.Wait()
}
