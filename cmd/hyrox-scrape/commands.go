package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/hyrox-results/internal/app"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

var flags struct {
	force    bool
	season   int
	all      bool
	race     string
	division string
	gender   string
}

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "Discover seasons from the results-site dropdown",
	Long: `Discover seasons from the results-site dropdown.

Known seasons are left alone unless --force is given, in which case their
name and URL are overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Run(cmd.Context(), func(ctx context.Context, a *app.App) error {
			stats, err := a.Seasons.Scrape(ctx, flags.force)
			if err != nil {
				return err
			}
			printStats(cmd, "seasons", stats)
			return nil
		})
	},
}

var racesCmd = &cobra.Command{
	Use:   "races",
	Short: "Scrape the races (event groups) of one season or of all stored seasons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Run(cmd.Context(), func(ctx context.Context, a *app.App) error {
			var (
				stats domain.UpsertStats
				err   error
			)
			if flags.all {
				stats, err = a.Races.ScrapeAll(ctx)
			} else {
				stats, err = a.Races.Scrape(ctx, flags.season)
			}
			printStats(cmd, "races", stats)
			return err
		})
	},
}

var divisionsCmd = &cobra.Command{
	Use:   "divisions",
	Short: "Scrape the divisions of one race or of every race in a season",
	Long: `Scrape the divisions of one race or of every race in a season.

With --race only that race is scraped; --season narrows the lookup when the
race name exists in several seasons. Without --race every race of --season
is scraped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Run(cmd.Context(), func(ctx context.Context, a *app.App) error {
			var (
				stats domain.UpsertStats
				err   error
			)
			if flags.race != "" {
				stats, err = a.Divisions.Scrape(ctx, flags.season, flags.race)
			} else {
				stats, err = a.Divisions.ScrapeSeason(ctx, flags.season)
			}
			printStats(cmd, "divisions", stats)
			return err
		})
	},
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Scrape the ranking of one division, replacing stored results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, err := domain.ParseDivisionName(flags.division)
		if err != nil {
			return err
		}
		gender, err := domain.ParseGender(flags.gender)
		if err != nil {
			return err
		}

		return app.Run(cmd.Context(), func(ctx context.Context, a *app.App) error {
			stats, err := a.Results.Scrape(ctx, flags.season, flags.race, name, gender)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "results: %d replaced, %d inserted, %d dropped\n",
				stats.Deleted, stats.Inserted, stats.Dropped)
			return nil
		})
	},
}

func init() {
	seasonsCmd.Flags().BoolVar(&flags.force, "force", false, "overwrite name and URL of known seasons")

	racesCmd.Flags().IntVar(&flags.season, "season", 0, "season number")
	racesCmd.Flags().BoolVar(&flags.all, "all", false, "scrape every stored season")
	racesCmd.MarkFlagsMutuallyExclusive("season", "all")
	racesCmd.MarkFlagsOneRequired("season", "all")

	divisionsCmd.Flags().IntVar(&flags.season, "season", 0, "season number")
	divisionsCmd.Flags().StringVar(&flags.race, "race", "", `race name, e.g. "2025 Berlin"`)
	divisionsCmd.MarkFlagsOneRequired("season", "race")

	resultsCmd.Flags().IntVar(&flags.season, "season", 0, "season number (needed when the race name is not unique)")
	resultsCmd.Flags().StringVar(&flags.race, "race", "", `race name, e.g. "2025 Berlin"`)
	resultsCmd.Flags().StringVar(&flags.division, "division", "", `division, e.g. "HYROX PRO"`)
	resultsCmd.Flags().StringVar(&flags.gender, "gender", "", "men, women or mixed")
	for _, name := range []string{"race", "division", "gender"} {
		_ = resultsCmd.MarkFlagRequired(name)
	}
}
