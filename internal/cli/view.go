package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Haston00/DABO/pkg/pipeline"
	"github.com/Haston00/DABO/pkg/schedule"
	"github.com/Haston00/DABO/pkg/timeline"
)

// newViewCmd creates the view command: a full-screen terminal browser over
// one schedule file. All interactive state (zoom, collapse, cursor) lives
// in the bubbletea model; the file is re-read only on explicit reload.
func newViewCmd() *cobra.Command {
	var scale int
	var collapsedStr string

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a schedule interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(args[0], scale, splitList(collapsedStr, ""))
		},
	}

	cmd.Flags().IntVar(&scale, "scale", pipeline.DefaultScale, "initial pixels per day (clamped to 4-40)")
	cmd.Flags().StringVar(&collapsedStr, "collapse", "", "WBS group code(s) to start collapsed (comma-separated)")

	return cmd
}

func runView(input string, scale int, collapsed []string) error {
	sched, err := schedule.ReadFile(input)
	if err != nil {
		return err
	}

	session := timeline.NewSession(timeline.WithScale(scale))
	if _, err := session.Load(sched); err != nil {
		return err
	}
	for _, code := range collapsed {
		session.ToggleGroup(code)
	}

	model := NewTimelineModel(input, session)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}
	return nil
}
