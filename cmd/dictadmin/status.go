package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStatusCommand() *cobra.Command {
	var maxRetryAttempts uint
	command := &cobra.Command{
		Use:   "status",
		Short: "Check the backend health and the session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}

			fmt.Printf("server: %s\n", set.config.Server.BaseURL)
			if err := set.client.Ping(cmd.Context(), maxRetryAttempts); err != nil {
				color.Red("backend: unreachable (%v)", err)
			} else {
				color.Green("backend: ok")
			}

			if set.session.Authenticated() {
				color.Green("session: authenticated")
			} else {
				color.Yellow("session: not authenticated")
			}
			return nil
		},
	}
	command.Flags().UintVar(&maxRetryAttempts, "max-retry-attempts", 2, "how often to retry the health probe")
	return command
}
