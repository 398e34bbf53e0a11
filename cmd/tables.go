package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/edusense/internal/cohort"
	"github.com/abhisek/edusense/internal/report"
	"github.com/abhisek/edusense/internal/session"
	"github.com/abhisek/edusense/internal/signals"
)

// newSession draws the same datasets, in the same order, as the dashboard so a
// seed reproduces what was on screen.
func newSession() *session.Session {
	g, _ := newGenerator()
	return session.New(g, nil)
}

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the confusion timeline",
	Long: `Print the generated confusion timeline as a table.

The timeline holds one reading every 10 seconds; --every thins it out.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		every, _ := cmd.Flags().GetInt("every")
		if every < signals.TimelineStep || every%signals.TimelineStep != 0 {
			return fmt.Errorf("--every must be a positive multiple of %d", signals.TimelineStep)
		}
		return report.Timeline(cmd.OutOrStdout(), newSession().Timeline, every)
	},
}

var peaksCmd = &cobra.Command{
	Use:   "peaks",
	Short: "Print the confusion peaks",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return report.Peaks(cmd.OutOrStdout(), signals.Peaks())
	},
}

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Print the class confusion heatmap",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return report.Heatmap(cmd.OutOrStdout(), newSession().Heatmap, report.BarWidth(report.TermWidth()))
	},
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Print the student engagement roster",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString("sort")
		key, ok := cohort.ParseSortKey(name)
		if !ok {
			return fmt.Errorf("unknown sort key %q (want %s or %s)", name, cohort.ByConfusion, cohort.ByFrequency)
		}
		limit, _ := cmd.Flags().GetInt("limit")
		return report.Roster(cmd.OutOrStdout(), newSession().Roster, key, limit)
	},
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Print the class summary",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return report.Overview(cmd.OutOrStdout(), newSession().Overview)
	},
}

func init() {
	timelineCmd.Flags().Int("every", 60, "Seconds between printed readings")
	rosterCmd.Flags().String("sort", string(cohort.ByConfusion), "Sort key: confusion or frequency")
	rosterCmd.Flags().Int("limit", cohort.VisibleRows, "Rows to print; 0 prints everyone")
}
