package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pragmata/internal/config"
	"pragmata/internal/host"
	"pragmata/internal/lsp"
)

type completeOptions struct {
	line   int
	col    int
	format string
	max    int
}

func newCompleteCmd() *cobra.Command {
	var opts completeOptions
	cmd := &cobra.Command{
		Use:   "complete --line N --col N <file.hs>",
		Short: "List pragma completions at a cursor position",
		Long: "Complete reads the file, extracts the pragma context around the cursor\n" +
			"and prints the matching extension names, flag names or pragma snippets.\n" +
			"Line and column are 1-based, the way editors display them.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComplete(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().IntVar(&opts.line, "line", 0, "cursor line, 1-based")
	cmd.Flags().IntVar(&opts.col, "col", 0, "cursor column, 1-based")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text or json")
	cmd.Flags().IntVar(&opts.max, "max-results", 0, "cap the candidate list, overrides the config")
	_ = cmd.MarkFlagRequired("line")
	_ = cmd.MarkFlagRequired("col")
	return cmd
}

func runComplete(ctx context.Context, path string, opts completeOptions) error {
	if opts.line < 1 || opts.col < 1 {
		return fmt.Errorf("--line and --col are 1-based and must be positive")
	}

	cfg, err := config.Discover(filepath.Dir(path))
	if err != nil {
		return err
	}

	snap := host.NewStore().Snapshot(path)
	if !snap.HasContents {
		return fmt.Errorf("read %s: no such file", path)
	}

	catalog, err := resolveCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	pos := lsp.Position{Line: opts.line - 1, Character: opts.col - 1}
	pfx := lsp.ExtractPrefix(snap.Contents, pos)
	items := lsp.BuildCompletions(catalog, pfx)

	max := cfg.Complete.MaxResults
	if opts.max > 0 {
		max = opts.max
	}
	if max > 0 && len(items) > max {
		items = items[:max]
	}

	switch opts.format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "text":
		for _, it := range items {
			if it.Detail != "" {
				fmt.Printf("%s\t%s\n", it.Label, it.Detail)
			} else {
				fmt.Println(it.Label)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}
