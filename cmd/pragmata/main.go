package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:           "pragmata",
	Short:         "Pragma quick fixes and completions for Haskell sources",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagColor string
	flagQuiet bool
)

func main() {
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "colorize output: auto, on or off")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress progress output")

	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newVersionCmd())

	cobra.OnInitialize(applyColorMode)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func applyColorMode() {
	switch flagColor {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
