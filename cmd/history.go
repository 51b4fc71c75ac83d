package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vibe-english-platform/vocabcli/internal/app"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent lookups",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()

		if container.History == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "lookup history is disabled")
			return nil
		}
		limit, _ := cmd.Flags().GetInt("limit")
		lookups, err := container.History.Recent(limit)
		if err != nil {
			return err
		}
		if len(lookups) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no lookups yet")
			return nil
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TERM\tFOUND\tWHEN")
		for _, l := range lookups {
			found := "yes"
			if !l.Found {
				found = "no"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Term, found, l.LookedUpAt.Local().Format("2006-01-02 15:04"))
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 20, "number of lookups to show")
}
