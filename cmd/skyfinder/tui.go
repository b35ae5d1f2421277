package main

import (
	"time"

	"github.com/Laisky/errors/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/you/skyfinder/internal/providers"
	"github.com/you/skyfinder/internal/service"
	"github.com/you/skyfinder/internal/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive search screen",
		Long: `Open the interactive search screen.

Keyboard shortcuts:
  Tab / Shift+Tab  Move between From, To, Date and Sort
  Enter            Search
  ←/→              Change sort order (when Sort is focused)
  PgUp/PgDn        Scroll results
  Esc              Dismiss an error and try again
  Ctrl+C           Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}
}

// runTUI never logs to the terminal; it would draw over the screen.
func runTUI(cmd *cobra.Command) error {
	cfg, err := setup(cmd, "")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	session := service.NewSession(providers.NewEndpoint(cfg))
	model := tui.NewModel(ctx, session, cfg.Location, time.Now())

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return errors.Wrap(err, "run tui")
}
