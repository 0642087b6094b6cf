// Command hyrox-scrape pulls seasons, races, divisions and results from the
// HYROX results site into the database. Each stage reads what the previous
// stage stored, so run them in order:
//
//	hyrox-scrape seasons
//	hyrox-scrape races --season 8
//	hyrox-scrape divisions --season 8
//	hyrox-scrape results --season 8 --race "2025 Berlin" --division "HYROX PRO" --gender women
//
// Every stage commits all of its writes or none of them.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/hyrox-results/internal/app"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

var rootCmd = &cobra.Command{
	Use:           "hyrox-scrape",
	Short:         "Scrape HYROX race results into the database",
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(seasonsCmd, racesCmd, divisionsCmd, resultsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if hint := hintFor(err); hint != "" {
			fmt.Fprintln(os.Stderr, "hint:", hint)
		}
		os.Exit(1)
	}
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrClassificationAmbiguity):
		return "the results site changed how it names events; nothing was written for this race"
	case errors.Is(err, domain.ErrConflict):
		return "pass --season to pick one"
	case errors.Is(err, domain.ErrNotFound):
		return "run the previous scrape stage first"
	case errors.Is(err, domain.ErrTransientSource):
		return "the results site kept failing; try again later"
	}
	return ""
}

func printStats(cmd *cobra.Command, what string, s domain.UpsertStats) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d inserted, %d updated, %d skipped\n",
		what, s.Inserted, s.Updated, s.Skipped)
}
