package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid note id: %w", err)
		}

		if err := ctrl.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to fetch notes: %w", err)
		}

		if err := ctrl.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}

		color.Green("Deleted note %s", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
