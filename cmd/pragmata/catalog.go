package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pragmata/internal/config"
	"pragmata/internal/ghc"
	"pragmata/internal/pragma"
)

func newCatalogCmd() *cobra.Command {
	var (
		refresh bool
		exe     string
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show or refresh the extension and flag catalog",
		Long: "Catalog prints the extension and warning-flag tables used for\n" +
			"suggestions and completions. With --refresh it queries the compiler\n" +
			"and rewrites the on-disk cache for that compiler version.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Discover(".")
			if err != nil {
				return err
			}
			if exe == "" {
				exe = cfg.Catalog.GHC
			}

			var (
				cat     *pragma.Catalog
				version string
			)
			switch {
			case refresh:
				if exe == "" {
					exe = ghc.DefaultExecutable
				}
				cat, version, err = ghc.Refresh(cmd.Context(), exe)
			case exe != "":
				cat, version, err = ghc.Load(cmd.Context(), exe)
			default:
				cat, version = pragma.Builtin(), "builtin"
			}
			if err != nil {
				return err
			}

			head := color.New(color.FgCyan, color.Bold)
			head.Printf("catalog %s\n", version)
			fmt.Printf("  extensions %d\n", len(cat.Extensions()))
			fmt.Printf("  flags      %d\n", len(cat.Flags()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "query the compiler and rewrite the cache")
	cmd.Flags().StringVar(&exe, "ghc", "", "compiler executable, overrides the config")
	return cmd
}
