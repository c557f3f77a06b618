package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geodash/internal/notify"
)

var notifiersCmd = &cobra.Command{
	Use:   "notifiers",
	Short: "List score report transports",
	Long: `Shows the transports a final score can be reported through.
Select one with --notify or GEODASH_NOTIFY_KIND.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		for _, k := range notify.List() {
			fmt.Fprintf(out, "  %-10s  %s\n", k.Kind, k.Description)
		}
	},
}
