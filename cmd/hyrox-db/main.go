// Command hyrox-db manages the results database: it applies migrations,
// lists what has been scraped so far and deletes seasons or races together
// with everything below them.
//
// Usage:
//
//	hyrox-db migrate
//	hyrox-db status
//	hyrox-db list-races --season 8
//	hyrox-db list-results --race "2025 Berlin" --division "HYROX PRO" --gender men
//	hyrox-db delete-race --race "2025 Berlin" --season 8 --yes
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/hyrox-results/internal/app"
)

var rootCmd = &cobra.Command{
	Use:           "hyrox-db",
	Short:         "Inspect and maintain the HYROX results database",
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(
		migrateCmd,
		statusCmd,
		listSeasonsCmd,
		listRacesCmd,
		listDivisionsCmd,
		rankDivisionsCmd,
		listResultsCmd,
		deleteSeasonCmd,
		deleteRaceCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func intOrDash(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprint(*n)
}
