package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pragmata/internal/scan"
	"pragmata/internal/ui"
)

// runScanWithUI drives the worker pool behind the interactive progress view.
// The pool runs on its own goroutine so the terminal program owns the
// foreground until every event has been drawn.
func runScanWithUI(ctx context.Context, title string, files []string, jobs int, fn func(context.Context, string) (int, error)) error {
	events := make(chan scan.Event, 256)
	done := make(chan error, 1)
	go func() {
		done <- scan.Run(ctx, files, jobs, fn, events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		<-done
		return fmt.Errorf("progress view: %w", err)
	}
	return <-done
}

// runScanPlain is the non-interactive fallback for pipes and --no-ui.
func runScanPlain(ctx context.Context, files []string, jobs int, fn func(context.Context, string) (int, error)) error {
	events := make(chan scan.Event, 256)
	done := make(chan error, 1)
	go func() {
		done <- scan.Run(ctx, files, jobs, fn, events)
	}()

	for ev := range events {
		if flagQuiet {
			continue
		}
		switch {
		case ev.Err != nil:
			fmt.Fprintf(os.Stderr, "%s: %v\n", ev.Path, ev.Err)
		case ev.Actions > 0:
			fmt.Printf("%s: %d suggestion(s)\n", ev.Path, ev.Actions)
		}
	}
	return <-done
}
