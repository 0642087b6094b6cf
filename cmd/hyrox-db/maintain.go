package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/hyrox-results/internal/adapter/postgres"
	"github.com/heartmarshall/hyrox-results/internal/app"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

var errNotConfirmed = errors.New("refusing to delete without --yes")

var deleteFlags struct {
	season int
	race   string
	yes    bool
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := app.Load()
		if err != nil {
			return err
		}

		applied, err := postgres.Migrate(cmd.Context(), cfg.Database.DSN, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "migrations applied: %d\n", applied)
		return nil
	},
}

var errUnhealthy = errors.New("one or more components are down")

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check database and results-site connectivity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Run(cmd.Context(), func(ctx context.Context, a *app.App) error {
			report := a.Health(ctx)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
			if report.Status != "ok" {
				return errUnhealthy
			}
			return nil
		})
	},
}

var deleteSeasonCmd = &cobra.Command{
	Use:   "delete-season NUMBER",
	Short: "Delete a season with all its races, divisions and results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			return domain.NewValidationError("season", "must be a number")
		}
		if !deleteFlags.yes {
			return errNotConfirmed
		}

		return app.Run(cmd.Context(), func(ctx context.Context, a *app.App) error {
			stats, err := a.Seasons.Delete(ctx, number)
			if err != nil {
				return err
			}
			printDeleted(cmd, stats)
			return nil
		})
	},
}

var deleteRaceCmd = &cobra.Command{
	Use:   "delete-race",
	Short: "Delete a race with all its divisions and results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !deleteFlags.yes {
			return errNotConfirmed
		}

		return app.Run(cmd.Context(), func(ctx context.Context, a *app.App) error {
			stats, err := a.Races.Delete(ctx, deleteFlags.season, deleteFlags.race)
			if err != nil {
				return err
			}
			printDeleted(cmd, stats)
			return nil
		})
	},
}

func printDeleted(cmd *cobra.Command, s domain.DeleteStats) {
	fmt.Fprintf(cmd.OutOrStdout(), "deleted: %d seasons, %d races, %d divisions, %d results\n",
		s.Seasons, s.Races, s.Divisions, s.Results)
}

func init() {
	deleteSeasonCmd.Flags().BoolVar(&deleteFlags.yes, "yes", false, "confirm the delete")

	deleteRaceCmd.Flags().IntVar(&deleteFlags.season, "season", 0, "season number (needed when the race name is not unique)")
	deleteRaceCmd.Flags().StringVar(&deleteFlags.race, "race", "", "race name")
	deleteRaceCmd.Flags().BoolVar(&deleteFlags.yes, "yes", false, "confirm the delete")
	_ = deleteRaceCmd.MarkFlagRequired("race")
}
