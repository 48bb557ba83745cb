package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/uzdict/dictadmin/internal/catalog"
	"github.com/uzdict/dictadmin/internal/forms"
)

func newDepartmentCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "department",
		Short: "Manage departments",
	}
	rootCommand.AddCommand(
		newDepartmentListCommand(),
		newDepartmentAddCommand(),
		newDepartmentEditCommand(),
		newDepartmentDeleteCommand(),
	)
	return &rootCommand
}

func newDepartmentListCommand() *cobra.Command {
	var flags listFlags
	command := &cobra.Command{
		Use:   "list",
		Short: "List departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			items, err := set.service.ListDepartments(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.ListDepartments > %w", err)
			}

			list := buildList(cmd, set, flags, items)
			offset := (list.Page() - 1) * list.PageSize()
			rows := make([][]string, 0, list.PageSize())
			for i, d := range list.Window() {
				rows = append(rows, []string{
					strconv.Itoa(offset + i + 1),
					d.ID,
					d.Name,
					refLabel(d.Dictionary),
					orDash(d.Description),
				})
			}
			printTable([]string{"#", "ID", "Name", "Dictionary", "Description"}, rows)
			printFooter(list)
			return nil
		},
	}
	flags.register(command.Flags())
	return command
}

func newDepartmentAddCommand() *cobra.Command {
	var draft forms.DepartmentDraft
	command := &cobra.Command{
		Use:   "add",
		Short: "Create a department",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			item, err := set.submitter.SubmitDepartment(cmd.Context(), set.service, draft)
			if err != nil {
				return fmt.Errorf("submitter.SubmitDepartment > %w", err)
			}
			color.Green("Created department %s (%s)", item.Name, item.ID)
			return nil
		},
	}
	command.Flags().StringVar(&draft.Name, "name", "", "department name")
	command.Flags().StringVar(&draft.Dictionary, "dictionary", "", "owning dictionary id")
	command.Flags().StringVar(&draft.Description, "description", "", "description")
	command.Flags().StringVar(&draft.ImagePath, "image", "", "image file to upload")
	_ = command.MarkFlagRequired("name")
	_ = command.MarkFlagRequired("dictionary")
	return command
}

func newDepartmentEditCommand() *cobra.Command {
	var name, dictionary, description, imagePath string
	command := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			items, err := set.service.ListDepartments(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.ListDepartments > %w", err)
			}
			var current catalog.Department
			found := false
			for _, d := range items {
				if d.ID == args[0] {
					current = d
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("department not found: %s", args[0])
			}

			draft := forms.EditDepartmentDraft(current)
			if cmd.Flags().Changed("name") {
				draft.Name = name
			}
			if cmd.Flags().Changed("dictionary") {
				draft.Dictionary = dictionary
			}
			if cmd.Flags().Changed("description") {
				draft.Description = description
			}
			if cmd.Flags().Changed("image") {
				draft.ImagePath = imagePath
			}

			item, err := set.submitter.SubmitDepartment(cmd.Context(), set.service, draft)
			if err != nil {
				return fmt.Errorf("submitter.SubmitDepartment > %w", err)
			}
			color.Green("Updated department %s (%s)", item.Name, item.ID)
			return nil
		},
	}
	command.Flags().StringVar(&name, "name", "", "department name")
	command.Flags().StringVar(&dictionary, "dictionary", "", "owning dictionary id")
	command.Flags().StringVar(&description, "description", "", "description")
	command.Flags().StringVar(&imagePath, "image", "", "image file to upload")
	return command
}

func newDepartmentDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			if err := set.service.DeleteDepartment(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("service.DeleteDepartment > %w", err)
			}
			color.Green("Deleted department %s", args[0])
			return nil
		},
	}
}
