package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid note id: %w", err)
		}

		note, err := apiClient.GetNote(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch note: %w", err)
		}

		color.New(color.Bold).Println(note.Title)
		if note.Description != "" {
			fmt.Println(note.Description)
		}
		color.New(color.Faint).Printf("created %s · updated %s\n",
			note.CreatedAt.Format("2006-01-02 15:04"),
			note.UpdatedAt.Format("2006-01-02 15:04"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
