package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newLoginCommand() *cobra.Command {
	var phone, password string
	command := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}

			token, err := set.client.Login(cmd.Context(), phone, password)
			if err != nil {
				return fmt.Errorf("client.Login > %w", err)
			}
			if err := set.session.Store(token); err != nil {
				return fmt.Errorf("session.Store > %w", err)
			}
			color.Green("Logged in")
			return nil
		},
	}
	command.Flags().StringVar(&phone, "phone", "", "phone number")
	command.Flags().StringVar(&password, "password", "", "password")
	_ = command.MarkFlagRequired("phone")
	_ = command.MarkFlagRequired("password")
	return command
}

func newRegisterCommand() *cobra.Command {
	var phone, password string
	command := &cobra.Command{
		Use:   "register",
		Short: "Create an admin account and store a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}

			token, err := set.client.Register(cmd.Context(), phone, password)
			if err != nil {
				return fmt.Errorf("client.Register > %w", err)
			}
			if err := set.session.Store(token); err != nil {
				return fmt.Errorf("session.Store > %w", err)
			}
			color.Green("Registered and logged in")
			return nil
		},
	}
	command.Flags().StringVar(&phone, "phone", "", "phone number")
	command.Flags().StringVar(&password, "password", "", "password")
	_ = command.MarkFlagRequired("phone")
	_ = command.MarkFlagRequired("password")
	return command
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return fmt.Errorf("failed to open session: %w", err)
			}
			if err := sess.Clear(); err != nil {
				return fmt.Errorf("session.Clear > %w", err)
			}
			color.Green("Logged out")
			return nil
		},
	}
}
