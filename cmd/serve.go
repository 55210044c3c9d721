package cmd

import (
	"github.com/alex-pricope/feedback-arcade/api"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (locally when APP_ENV=local, otherwise as a Lambda)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.NewServer(api.ReadConfig()).Start()
	},
}
