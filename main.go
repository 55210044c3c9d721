// @title Feedback Arcade API
// @version 1.0
// @description Feedback form validation and a memory-matching game with best scores

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
package main

import (
	"os"

	"github.com/alex-pricope/feedback-arcade/cmd"
	_ "github.com/alex-pricope/feedback-arcade/docs"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
