package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Create a note",
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		description, _ := cmd.Flags().GetString("description")

		created, err := ctrl.Create(cmd.Context(), title, description)
		if err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}

		color.Green("Created note %s", created.Id)
		return nil
	},
}

func init() {
	addCmd.Flags().StringP("description", "d", "", "note description")
	rootCmd.AddCommand(addCmd)
}
