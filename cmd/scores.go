package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alex-pricope/feedback-arcade/api"
	"github.com/alex-pricope/feedback-arcade/game"
	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the stored best score of every difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := api.ReadConfig()
		store, closeStore, err := api.OpenScoreStorage(cmd.Context(), cfg.StorageConfig)
		if err != nil {
			return err
		}
		defer closeStore()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TIER\tBEST\tUPDATED")
		for _, d := range game.Difficulties {
			best, err := store.Get(cmd.Context(), string(d))
			if err != nil {
				return err
			}
			if best == nil {
				fmt.Fprintf(w, "%s\t-\t-\n", d)
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%s\n", d, best.Moves, best.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}
