package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/uzdict/dictadmin/internal/catalog"
	"github.com/uzdict/dictadmin/internal/forms"
)

func newCategoryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}
	rootCommand.AddCommand(
		newCategoryListCommand(),
		newCategoryAddCommand(),
		newCategoryEditCommand(),
		newCategoryDeleteCommand(),
	)
	return &rootCommand
}

func newCategoryListCommand() *cobra.Command {
	var flags listFlags
	command := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			items, err := set.service.ListCategories(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.ListCategories > %w", err)
			}

			list := buildList(cmd, set, flags, items)
			offset := (list.Page() - 1) * list.PageSize()
			rows := make([][]string, 0, list.PageSize())
			for i, c := range list.Window() {
				rows = append(rows, []string{
					strconv.Itoa(offset + i + 1),
					c.ID,
					c.Name,
					refLabel(c.Department),
					refLabel(c.Dictionary),
				})
			}
			printTable([]string{"#", "ID", "Name", "Department", "Dictionary"}, rows)
			printFooter(list)
			return nil
		},
	}
	flags.register(command.Flags())
	return command
}

func newCategoryAddCommand() *cobra.Command {
	var draft forms.CategoryDraft
	command := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			item, err := set.submitter.SubmitCategory(cmd.Context(), set.service, draft)
			if err != nil {
				return fmt.Errorf("submitter.SubmitCategory > %w", err)
			}
			color.Green("Created category %s (%s)", item.Name, item.ID)
			return nil
		},
	}
	command.Flags().StringVar(&draft.Name, "name", "", "category name")
	command.Flags().StringVar(&draft.Dictionary, "dictionary", "", "owning dictionary id")
	command.Flags().StringVar(&draft.Department, "department", "", "owning department id")
	_ = command.MarkFlagRequired("name")
	_ = command.MarkFlagRequired("dictionary")
	_ = command.MarkFlagRequired("department")
	return command
}

func newCategoryEditCommand() *cobra.Command {
	var name, dictionary, department string
	command := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			items, err := set.service.ListCategories(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.ListCategories > %w", err)
			}
			var current catalog.Category
			found := false
			for _, c := range items {
				if c.ID == args[0] {
					current = c
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("category not found: %s", args[0])
			}

			draft := forms.EditCategoryDraft(current)
			if cmd.Flags().Changed("name") {
				draft.Name = name
			}
			if cmd.Flags().Changed("dictionary") {
				draft.Dictionary = dictionary
			}
			if cmd.Flags().Changed("department") {
				draft.Department = department
			}

			item, err := set.submitter.SubmitCategory(cmd.Context(), set.service, draft)
			if err != nil {
				return fmt.Errorf("submitter.SubmitCategory > %w", err)
			}
			color.Green("Updated category %s (%s)", item.Name, item.ID)
			return nil
		},
	}
	command.Flags().StringVar(&name, "name", "", "category name")
	command.Flags().StringVar(&dictionary, "dictionary", "", "owning dictionary id")
	command.Flags().StringVar(&department, "department", "", "owning department id")
	return command
}

func newCategoryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			if err := set.service.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("service.DeleteCategory > %w", err)
			}
			color.Green("Deleted category %s", args[0])
			return nil
		},
	}
}
