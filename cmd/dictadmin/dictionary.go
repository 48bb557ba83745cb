package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/uzdict/dictadmin/internal/catalog"
	"github.com/uzdict/dictadmin/internal/forms"
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "dictionary",
		Short: "Manage dictionaries",
	}
	rootCommand.AddCommand(
		newDictionaryListCommand(),
		newDictionaryAddCommand(),
		newDictionaryEditCommand(),
		newDictionaryDeleteCommand(),
	)
	return &rootCommand
}

func newDictionaryListCommand() *cobra.Command {
	var flags listFlags
	var dictType DictionaryTypeFlag
	command := &cobra.Command{
		Use:   "list",
		Short: "List dictionaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			items, err := set.service.ListDictionaries(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.ListDictionaries > %w", err)
			}
			if dictType != "" {
				filtered := make([]catalog.Dictionary, 0, len(items))
				for _, d := range items {
					if d.Type == catalog.DictionaryType(dictType) {
						filtered = append(filtered, d)
					}
				}
				items = filtered
			}

			list := buildList(cmd, set, flags, items)
			offset := (list.Page() - 1) * list.PageSize()
			rows := make([][]string, 0, list.PageSize())
			for i, d := range list.Window() {
				rows = append(rows, []string{
					strconv.Itoa(offset + i + 1),
					d.ID,
					d.Name,
					string(d.Type),
					orDash(d.Description),
				})
			}
			printTable([]string{"#", "ID", "Name", "Type", "Description"}, rows)
			printFooter(list)
			return nil
		},
	}
	flags.register(command.Flags())
	command.Flags().Var(&dictType, "type", fmt.Sprintf("Filter by type. Possible values are %v", catalog.AllDictionaryTypes))
	return command
}

func newDictionaryAddCommand() *cobra.Command {
	var draft forms.DictionaryDraft
	var dictType DictionaryTypeFlag
	command := &cobra.Command{
		Use:   "add",
		Short: "Create a dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			existing, err := set.service.ListDictionaries(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.ListDictionaries > %w", err)
			}

			draft.Type = catalog.DictionaryType(dictType)
			item, err := set.submitter.SubmitDictionary(cmd.Context(), set.service, existing, draft)
			if err != nil {
				return fmt.Errorf("submitter.SubmitDictionary > %w", err)
			}
			color.Green("Created dictionary %s (%s)", item.Name, item.ID)
			return nil
		},
	}
	dictType = DictionaryTypeFlag(catalog.DictionaryTypeHistorical)
	command.Flags().StringVar(&draft.Name, "name", "", "dictionary name")
	command.Flags().Var(&dictType, "type", fmt.Sprintf("Dictionary type. Possible values are %v", catalog.AllDictionaryTypes))
	command.Flags().StringVar(&draft.Description, "description", "", "description")
	command.Flags().StringVar(&draft.ImagePath, "image", "", "image file to upload")
	_ = command.MarkFlagRequired("name")
	return command
}

func newDictionaryEditCommand() *cobra.Command {
	var name, description, imagePath string
	var dictType DictionaryTypeFlag
	command := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			existing, err := set.service.ListDictionaries(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.ListDictionaries > %w", err)
			}
			current, ok := findDictionary(existing, args[0])
			if !ok {
				return fmt.Errorf("dictionary not found: %s", args[0])
			}

			draft := forms.EditDictionaryDraft(current)
			if cmd.Flags().Changed("name") {
				draft.Name = name
			}
			if cmd.Flags().Changed("type") {
				draft.Type = catalog.DictionaryType(dictType)
			}
			if cmd.Flags().Changed("description") {
				draft.Description = description
			}
			if cmd.Flags().Changed("image") {
				draft.ImagePath = imagePath
			}

			item, err := set.submitter.SubmitDictionary(cmd.Context(), set.service, existing, draft)
			if err != nil {
				return fmt.Errorf("submitter.SubmitDictionary > %w", err)
			}
			color.Green("Updated dictionary %s (%s)", item.Name, item.ID)
			return nil
		},
	}
	command.Flags().StringVar(&name, "name", "", "dictionary name")
	command.Flags().Var(&dictType, "type", fmt.Sprintf("Dictionary type. Possible values are %v", catalog.AllDictionaryTypes))
	command.Flags().StringVar(&description, "description", "", "description")
	command.Flags().StringVar(&imagePath, "image", "", "image file to upload")
	return command
}

func newDictionaryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			if err := set.service.DeleteDictionary(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("service.DeleteDictionary > %w", err)
			}
			color.Green("Deleted dictionary %s", args[0])
			return nil
		},
	}
}

func findDictionary(items []catalog.Dictionary, id string) (catalog.Dictionary, bool) {
	for _, d := range items {
		if d.ID == id {
			return d, true
		}
	}
	return catalog.Dictionary{}, false
}
