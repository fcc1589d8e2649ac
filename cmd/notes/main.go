package main

import (
	"fmt"
	"os"

	"notes-manager/internal/config"
	"notes-manager/pkg/client"
	"notes-manager/pkg/listview"

	"github.com/spf13/cobra"
)

var (
	apiClient *client.Client
	ctrl      *listview.Controller
)

var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "CLI for the Notes Manager API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		apiClient = client.New(cfg.Client.APIBaseURL)
		ctrl = listview.NewController(apiClient)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
