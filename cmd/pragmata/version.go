package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pragmata/internal/version"
)

const versionTagline = "knows which pragma you forgot"

type versionPayload struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func newVersionCmd() *cobra.Command {
	var (
		full   bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the pragmata version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			switch format {
			case "json":
				payload := versionPayload{
					Version:   version.Number,
					GitCommit: version.GitCommit,
					BuildDate: version.BuildDate,
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			case "text":
				renderVersion(full)
				return nil
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "include build metadata and the tagline")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	return cmd
}

func renderVersion(full bool) {
	fmt.Printf("pragmata %s\n", version.Version)
	if !full {
		return
	}
	dim := color.New(color.Faint)
	fmt.Printf("  commit %s\n", valueOrUnknown(version.GitCommit))
	fmt.Printf("  built  %s\n", valueOrUnknown(version.BuildDate))
	dim.Printf("  %s\n", versionTagline)
}

func valueOrUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
