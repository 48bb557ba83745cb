package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uzdict/dictadmin/internal/tui"
)

func newDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive catalog dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}

			app := &tui.App{
				Session:   set.session,
				Client:    set.client,
				Service:   set.service,
				Submitter: set.submitter,
				PageSize:  set.config.List.PageSize,
			}
			if err := tui.Run(app); err != nil {
				return fmt.Errorf("tui.Run > %w", err)
			}
			return nil
		},
	}
}
