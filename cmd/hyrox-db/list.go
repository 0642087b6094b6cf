package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/hyrox-results/internal/app"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

var listFlags struct {
	season   int
	race     string
	division string
	gender   string
}

var listSeasonsCmd = &cobra.Command{
	Use:   "list-seasons",
	Short: "List stored seasons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Run(cmd.Context(), func(ctx context.Context, a *app.App) error {
			seasons, err := a.Seasons.List(ctx)
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "NUMBER\tNAME\tURL\tLAST UPDATED")
			for _, s := range seasons {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
					s.Number, s.Name, s.ResultsURL, s.LastUpdated.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		})
	},
}

var listRacesCmd = &cobra.Command{
	Use:   "list-races",
	Short: "List stored races, optionally of one season",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Run(cmd.Context(), func(ctx context.Context, a *app.App) error {
			races, err := a.Races.List(ctx, listFlags.season)
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "SEASON\tNAME\tCITY\tDATE\tGROUP ID")
			for _, r := range races {
				date := "-"
				if r.DateStart != nil {
					date = r.DateStart.Format("2006-01-02")
					if r.DateIsApproximate {
						date = r.DateStart.Format("2006") + " (approx.)"
					}
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
					r.SeasonNumber, r.Name, orDash(r.City), date, r.SiteGroupID)
			}
			return tw.Flush()
		})
	},
}

var listDivisionsCmd = &cobra.Command{
	Use:   "list-divisions",
	Short: "List the divisions of a race",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Run(cmd.Context(), func(ctx context.Context, a *app.App) error {
			divisions, err := a.Divisions.List(ctx, listFlags.season, listFlags.race)
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "DIVISION\tGENDER\tEVENT ID")
			for _, d := range divisions {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name.Display(), d.Gender.Display(), d.SiteEventID)
			}
			return tw.Flush()
		})
	},
}

var rankDivisionsCmd = &cobra.Command{
	Use:   "rank-divisions",
	Short: "Rank division/gender pairs by the number of races they appear in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Run(cmd.Context(), func(ctx context.Context, a *app.App) error {
			ranked, err := a.Divisions.Rank(ctx)
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "DIVISION\tGENDER\tRACES")
			for _, f := range ranked {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", f.Name.Display(), f.Gender.Display(), f.Races)
			}
			return tw.Flush()
		})
	},
}

var listResultsCmd = &cobra.Command{
	Use:   "list-results",
	Short: "List the stored results of one division",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, err := domain.ParseDivisionName(listFlags.division)
		if err != nil {
			return err
		}
		gender, err := domain.ParseGender(listFlags.gender)
		if err != nil {
			return err
		}

		return app.Run(cmd.Context(), func(ctx context.Context, a *app.App) error {
			div, results, err := a.Results.List(ctx, listFlags.season, listFlags.race, name, gender)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s, %s %s (season %d): %d results\n\n",
				div.Race.Name, div.Name.Display(), div.Gender.Display(), div.Race.SeasonNumber, len(results))

			tw := newTable(out)
			fmt.Fprintln(tw, "RANK\tAG RANK\tNAME\tNAT\tAGE GROUP\tTIME")
			for _, r := range results {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					intOrDash(r.RankOverall), intOrDash(r.RankAgeGroup),
					r.FullName, r.Nationality, r.AgeGroup, r.TotalTime())
			}
			return tw.Flush()
		})
	},
}

func init() {
	listRacesCmd.Flags().IntVar(&listFlags.season, "season", 0, "season number (all seasons when omitted)")

	listDivisionsCmd.Flags().IntVar(&listFlags.season, "season", 0, "season number (needed when the race name is not unique)")
	listDivisionsCmd.Flags().StringVar(&listFlags.race, "race", "", "race name")
	_ = listDivisionsCmd.MarkFlagRequired("race")

	listResultsCmd.Flags().IntVar(&listFlags.season, "season", 0, "season number (needed when the race name is not unique)")
	listResultsCmd.Flags().StringVar(&listFlags.race, "race", "", "race name")
	listResultsCmd.Flags().StringVar(&listFlags.division, "division", "", `division, e.g. "HYROX PRO"`)
	listResultsCmd.Flags().StringVar(&listFlags.gender, "gender", "", "men, women or mixed")
	for _, name := range []string{"race", "division", "gender"} {
		_ = listResultsCmd.MarkFlagRequired(name)
	}
}
