package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/uzdict/dictadmin/internal/catalog"
	"github.com/uzdict/dictadmin/internal/forms"
	"github.com/uzdict/dictadmin/internal/report"
)

func newWordCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "word",
		Short: "Manage words",
	}
	rootCommand.AddCommand(
		newWordListCommand(),
		newWordAddCommand(),
		newWordEditCommand(),
		newWordDeleteCommand(),
		newWordExportCommand(),
	)
	return &rootCommand
}

func newWordListCommand() *cobra.Command {
	var flags listFlags
	var dictionaryID string
	command := &cobra.Command{
		Use:   "list",
		Short: "List words",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			items, err := set.service.ListWords(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.ListWords > %w", err)
			}
			if dictionaryID != "" {
				filtered := make([]catalog.Word, 0, len(items))
				for _, w := range items {
					if w.Dictionary.ID == dictionaryID {
						filtered = append(filtered, w)
					}
				}
				items = filtered
			}

			list := buildList(cmd, set, flags, items)
			offset := (list.Page() - 1) * list.PageSize()
			rows := make([][]string, 0, list.PageSize())
			for i, w := range list.Window() {
				rows = append(rows, []string{
					strconv.Itoa(offset + i + 1),
					w.ID,
					w.Name,
					orDash(w.Meaning),
					refLabel(w.Category),
					refLabel(w.Department),
					refLabel(w.Dictionary),
				})
			}
			printTable([]string{"#", "ID", "Name", "Meaning", "Category", "Department", "Dictionary"}, rows)
			printFooter(list)
			return nil
		},
	}
	flags.register(command.Flags())
	command.Flags().StringVar(&dictionaryID, "dictionary", "", "filter by dictionary id")
	return command
}

func newWordAddCommand() *cobra.Command {
	var draft forms.WordDraft
	command := &cobra.Command{
		Use:   "add",
		Short: "Create a word",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			dictionaries, err := set.service.ListDictionaries(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.ListDictionaries > %w", err)
			}

			item, err := set.submitter.SubmitWord(cmd.Context(), set.service, dictionaries, draft)
			if err != nil {
				return fmt.Errorf("submitter.SubmitWord > %w", err)
			}
			color.Green("Created word %s (%s)", item.Name, item.ID)
			return nil
		},
	}
	command.Flags().StringVar(&draft.Name, "name", "", "word")
	command.Flags().StringVar(&draft.Meaning, "meaning", "", "meaning")
	command.Flags().StringVar(&draft.Dictionary, "dictionary", "", "owning dictionary id")
	command.Flags().StringVar(&draft.Department, "department", "", "owning department id")
	command.Flags().StringVar(&draft.Category, "category", "", "owning category id")
	command.Flags().StringVar(&draft.ImagePath, "image", "", "image file to upload")
	_ = command.MarkFlagRequired("name")
	_ = command.MarkFlagRequired("meaning")
	_ = command.MarkFlagRequired("dictionary")
	_ = command.MarkFlagRequired("department")
	_ = command.MarkFlagRequired("category")
	return command
}

func newWordEditCommand() *cobra.Command {
	var name, meaning, dictionary, department, category, imagePath string
	command := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			items, err := set.service.ListWords(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.ListWords > %w", err)
			}
			var current catalog.Word
			found := false
			for _, w := range items {
				if w.ID == args[0] {
					current = w
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("word not found: %s", args[0])
			}

			draft := forms.EditWordDraft(current)
			if cmd.Flags().Changed("name") {
				draft.Name = name
			}
			if cmd.Flags().Changed("meaning") {
				draft.Meaning = meaning
			}
			if cmd.Flags().Changed("dictionary") {
				draft.Dictionary = dictionary
			}
			if cmd.Flags().Changed("department") {
				draft.Department = department
			}
			if cmd.Flags().Changed("category") {
				draft.Category = category
			}
			if cmd.Flags().Changed("image") {
				draft.ImagePath = imagePath
			}

			dictionaries, err := set.service.ListDictionaries(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.ListDictionaries > %w", err)
			}

			item, err := set.submitter.SubmitWord(cmd.Context(), set.service, dictionaries, draft)
			if err != nil {
				return fmt.Errorf("submitter.SubmitWord > %w", err)
			}
			color.Green("Updated word %s (%s)", item.Name, item.ID)
			return nil
		},
	}
	command.Flags().StringVar(&name, "name", "", "word")
	command.Flags().StringVar(&meaning, "meaning", "", "meaning")
	command.Flags().StringVar(&dictionary, "dictionary", "", "owning dictionary id")
	command.Flags().StringVar(&department, "department", "", "owning department id")
	command.Flags().StringVar(&category, "category", "", "owning category id")
	command.Flags().StringVar(&imagePath, "image", "", "image file to upload")
	return command
}

func newWordDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			if err := set.service.DeleteWord(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("service.DeleteWord > %w", err)
			}
			color.Green("Deleted word %s", args[0])
			return nil
		},
	}
}

func newWordExportCommand() *cobra.Command {
	var output, title, dictionaryID string
	command := &cobra.Command{
		Use:   "export",
		Short: "Export words to a PDF report",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newClientSet()
			if err != nil {
				return err
			}
			if err := requireAuth(set); err != nil {
				return err
			}

			items, err := set.service.ListWords(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.ListWords > %w", err)
			}

			rows := make([]report.Row, 0, len(items))
			for _, w := range items {
				if dictionaryID != "" && w.Dictionary.ID != dictionaryID {
					continue
				}
				rows = append(rows, report.Row{
					Name:       w.Name,
					Meaning:    w.Meaning,
					Dictionary: refLabel(w.Dictionary),
					Department: refLabel(w.Department),
					Category:   refLabel(w.Category),
				})
			}

			path, err := report.Write(title, rows, output)
			if err != nil {
				return fmt.Errorf("report.Write > %w", err)
			}
			color.Green("Exported %d words to %s", len(rows), path)
			return nil
		},
	}
	command.Flags().StringVar(&output, "output", "words.pdf", "output PDF path")
	command.Flags().StringVar(&title, "title", "Words", "report title")
	command.Flags().StringVar(&dictionaryID, "dictionary", "", "filter by dictionary id")
	return command
}
