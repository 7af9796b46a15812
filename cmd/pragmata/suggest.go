package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pragmata/internal/config"
	"pragmata/internal/diagio"
	"pragmata/internal/ghc"
	"pragmata/internal/host"
	"pragmata/internal/lsp"
	"pragmata/internal/pragma"
	"pragmata/internal/scan"
)

type suggestOptions struct {
	diagnostics string
	apply       bool
	jobs        int
	noUI        bool
}

func newSuggestCmd() *cobra.Command {
	var opts suggestOptions
	cmd := &cobra.Command{
		Use:   "suggest --diagnostics report.json <file.hs | directory>",
		Short: "Suggest missing pragmas for reported diagnostics",
		Long: "Suggest matches a JSON diagnostics report against the pragma rules and\n" +
			"prints one quick fix per missing extension or silenceable warning.\n" +
			"With --apply the pragmas are inserted into the files in place.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.diagnostics, "diagnostics", "", "path to a JSON diagnostics report")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "insert the suggested pragmas into the files")
	cmd.Flags().IntVar(&opts.jobs, "jobs", 0, "parallel workers for directory mode, 0 picks a default")
	cmd.Flags().BoolVar(&opts.noUI, "no-ui", false, "disable the interactive progress view")
	_ = cmd.MarkFlagRequired("diagnostics")
	return cmd
}

func runSuggest(ctx context.Context, target string, opts suggestOptions) error {
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	startDir := target
	if !info.IsDir() {
		startDir = filepath.Dir(target)
	}
	cfg, err := config.Discover(startDir)
	if err != nil {
		return err
	}

	byFile, err := diagio.ReadFile(opts.diagnostics)
	if err != nil {
		return err
	}

	catalog, err := resolveCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	runner := &suggestRunner{
		store:   host.NewStore(),
		catalog: catalog,
		diags:   byFile,
		opts: pragma.Options{
			ExcludeExtensions: cfg.Suggest.ExcludeExtensions,
			SilenceNever:      cfg.Suggest.SilenceNever,
		},
		apply:   opts.apply,
		results: make(map[string][]lsp.CodeAction),
	}

	if !info.IsDir() {
		n, err := runner.processFile(ctx, target)
		if err != nil {
			return err
		}
		runner.printResults()
		if !flagQuiet {
			fmt.Printf("%d suggestion(s)\n", n)
		}
		return nil
	}

	files, err := scan.Files(target)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !flagQuiet {
			fmt.Println("no Haskell sources found")
		}
		return nil
	}

	title := "Suggesting pragmas"
	if opts.apply {
		title = "Applying pragmas"
	}
	if isTerminal(os.Stdout) && !opts.noUI && !flagQuiet {
		err = runScanWithUI(ctx, title, files, opts.jobs, runner.processFile)
	} else {
		err = runScanPlain(ctx, files, opts.jobs, runner.processFile)
	}
	if err != nil {
		return err
	}
	runner.printResults()
	return nil
}

// suggestRunner carries the per-invocation state shared by scan workers.
type suggestRunner struct {
	store   *host.Store
	catalog *pragma.Catalog
	diags   map[string][]lsp.Diagnostic
	opts    pragma.Options
	apply   bool

	mu      sync.Mutex
	results map[string][]lsp.CodeAction
}

func (r *suggestRunner) processFile(_ context.Context, path string) (int, error) {
	key := host.NormalizePath(path)
	diags := r.diags[key]
	if len(diags) == 0 {
		return 0, nil
	}

	snap := r.store.Snapshot(path)
	params := lsp.CodeActionParams{
		TextDocument: lsp.TextDocumentIdentifier{URI: key},
		Context:      lsp.CodeActionContext{Diagnostics: diags},
	}
	actions := lsp.BuildCodeActionsWith(r.catalog, snap, params, r.opts)
	if len(actions) == 0 {
		return 0, nil
	}

	if r.apply && snap.HasContents {
		var edits []lsp.TextEdit
		for _, a := range actions {
			if a.Edit != nil {
				edits = append(edits, a.Edit.Changes[key]...)
			}
		}
		updated := lsp.ApplyEdits(snap.Contents, edits)
		if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
			return 0, err
		}
	}

	r.mu.Lock()
	r.results[path] = actions
	r.mu.Unlock()
	return len(actions), nil
}

func (r *suggestRunner) printResults() {
	r.mu.Lock()
	defer r.mu.Unlock()

	paths := make([]string, 0, len(r.results))
	for p := range r.results {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	fileColor := color.New(color.FgCyan, color.Bold)
	titleColor := color.New(color.FgGreen)
	for _, p := range paths {
		fileColor.Println(p)
		for _, a := range r.results[p] {
			mark := "suggest"
			if r.apply {
				mark = "applied"
			}
			fmt.Printf("  %s %s\n", mark, titleColor.Sprint(a.Title))
		}
	}
}

// resolveCatalog prefers the cached compiler catalog named by the config
// and falls back to the builtin tables.
func resolveCatalog(ctx context.Context, cfg config.Config) (*pragma.Catalog, error) {
	if cfg.Catalog.GHC == "" {
		return pragma.Builtin(), nil
	}
	cat, _, err := ghc.Load(ctx, cfg.Catalog.GHC)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", cfg.Catalog.GHC, err)
	}
	return cat, nil
}
