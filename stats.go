package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/leodahal4/portfolio/internal/config"
	"github.com/leodahal4/portfolio/internal/visitors"
)

var statsRecent int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print visitor statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsRecent, "recent", 10, "Number of recent visits to list")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	store, err := visitors.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats(cmd.Context(), time.Now())
	if err != nil {
		return err
	}
	return printStats(cmd.OutOrStdout(), stats, statsRecent)
}

func printStats(out io.Writer, stats *visitors.Stats, recent int) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total visits\t%d\n", stats.TotalVisits)
	fmt.Fprintf(w, "Unique visitors\t%d\n", stats.UniqueVisitors)
	fmt.Fprintf(w, "Visits today\t%d\n", stats.VisitsToday)
	fmt.Fprintf(w, "Visits this week\t%d\n", stats.VisitsThisWeek)

	if len(stats.TopPaths) > 0 {
		fmt.Fprintln(w, "\nTop paths")
		for _, p := range stats.TopPaths {
			fmt.Fprintf(w, "  %s\t%d\n", p.Path, p.Visits)
		}
	}

	if recent > len(stats.RecentVisits) {
		recent = len(stats.RecentVisits)
	}
	if recent > 0 {
		fmt.Fprintln(w, "\nRecent visits")
		for _, v := range stats.RecentVisits[:recent] {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", v.VisitedAt.Format(time.RFC3339), v.HashedIP, v.Path)
		}
	}
	return w.Flush()
}
