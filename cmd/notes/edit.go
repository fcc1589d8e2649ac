package main

import (
	"fmt"

	"notes-manager/pkg/client"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a note's title and/or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid note id: %w", err)
		}

		var fields client.NoteFields
		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			fields.Title = &title
		}
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			fields.Description = &description
		}
		if fields.Title == nil && fields.Description == nil {
			return fmt.Errorf("provide --title and/or --description")
		}

		if err := ctrl.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to fetch notes: %w", err)
		}

		updated, err := ctrl.Update(cmd.Context(), id, fields)
		if err != nil {
			return fmt.Errorf("failed to update note: %w", err)
		}

		color.Green("Updated note %s", updated.Id)
		return nil
	},
}

func init() {
	editCmd.Flags().StringP("title", "t", "", "new title")
	editCmd.Flags().StringP("description", "d", "", "new description")
	rootCmd.AddCommand(editCmd)
}
