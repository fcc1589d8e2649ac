package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, most recently touched first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ctrl.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to fetch notes: %w", err)
		}

		notes := ctrl.Snapshot()
		if len(notes) == 0 {
			fmt.Println("No notes yet")
			return nil
		}

		title := color.New(color.Bold)
		meta := color.New(color.Faint)
		for _, n := range notes {
			heading := n.Title
			if heading == "" {
				heading = "(untitled)"
			}
			title.Println(heading)
			if n.Description != "" {
				fmt.Println(n.Description)
			}
			meta.Printf("%s · updated %s\n\n", n.Id, n.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
