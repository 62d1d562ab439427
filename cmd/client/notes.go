package main

import (
	"fmt"

	apiv1 "playground-service/pkg/api/v1"

	"github.com/spf13/cobra"
)

var noteContent string

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage notes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, cancel := newClient(cmd)
		defer cancel()

		notes, err := c.ListNotes(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd, notes)
	},
}

var notesGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a note by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, cancel := newClient(cmd)
		defer cancel()

		note, err := c.GetNote(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, note)
	},
}

var notesSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search over note titles and contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, cancel := newClient(cmd)
		defer cancel()

		notes, err := c.SearchNotes(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, notes)
	},
}

var notesCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, cancel := newClient(cmd)
		defer cancel()

		note, err := c.CreateNote(ctx, apiv1.NewNoteRequest(args[0], noteContent))
		if err != nil {
			return err
		}
		return printJSON(cmd, note)
	},
}

var notesUpdateCmd = &cobra.Command{
	Use:   "update [id] [title]",
	Short: "Replace a note's title and content",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, cancel := newClient(cmd)
		defer cancel()

		note, err := c.UpdateNote(ctx, args[0], apiv1.NewNoteRequest(args[1], noteContent))
		if err != nil {
			return err
		}
		return printJSON(cmd, note)
	},
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, cancel := newClient(cmd)
		defer cancel()

		if err := c.DeleteNote(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{notesCreateCmd, notesUpdateCmd} {
		cmd.Flags().StringVarP(&noteContent, "content", "c", "", "note content")
	}

	notesCmd.AddCommand(notesListCmd, notesGetCmd, notesSearchCmd, notesCreateCmd, notesUpdateCmd, notesDeleteCmd)
	rootCmd.AddCommand(notesCmd)
}
