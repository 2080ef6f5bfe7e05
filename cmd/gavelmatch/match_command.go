package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gavelmatch/internal/logging"
	"gavelmatch/internal/match"
	"gavelmatch/internal/records"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var videosPath string
	var eventsPath string
	var force bool

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match the video feed against the event feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			videos, videoStats, err := records.LoadVideos(videosPath, logger)
			if err != nil {
				return err
			}
			events, eventStats, err := records.LoadEvents(eventsPath, logger)
			if err != nil {
				return err
			}
			if videoStats.Skipped > 0 || eventStats.Skipped > 0 {
				logger.Warn("defective feed records skipped",
					logging.Int("videos_skipped", videoStats.Skipped),
					logging.Int("events_skipped", eventStats.Skipped))
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := ctx.oracleClient()
			if err != nil {
				return err
			}
			var oracleIface match.Oracle
			if client != nil {
				oracleIface = client
			}

			engine := match.NewEngine(cfg, store, oracleIface, logger)
			summary, err := engine.Run(cmd.Context(), videos, events, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSummary(summary, videoStats, eventStats))
			if summary.Failed() {
				return fmt.Errorf("%d verdicts were not durably saved", summary.StoreFailures)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&videosPath, "videos", "", "Path to the video feed JSON file")
	cmd.Flags().StringVar(&eventsPath, "events", "", "Path to the event feed JSON file")
	cmd.Flags().BoolVar(&force, "force", false, "Recompute every verdict, ignoring stored fingerprints")
	_ = cmd.MarkFlagRequired("videos")
	_ = cmd.MarkFlagRequired("events")
	return cmd
}

func renderSummary(summary match.Summary, videoStats, eventStats records.FeedStats) string {
	rows := [][]string{
		{"Videos", fmt.Sprintf("%d", summary.Videos)},
		{"Matched", fmt.Sprintf("%d", summary.Matched())},
		{"Algorithmic", fmt.Sprintf("%d", summary.Algorithmic)},
		{"Oracle assisted", fmt.Sprintf("%d", summary.OracleAssisted)},
		{"Unmatched", fmt.Sprintf("%d", summary.Unmatched)},
		{"Reused", fmt.Sprintf("%d", summary.Reused)},
		{"Escalated", fmt.Sprintf("%d", summary.Escalated)},
		{"Skipped feed records", fmt.Sprintf("%d", videoStats.Skipped+eventStats.Skipped)},
		{"Store failures", fmt.Sprintf("%d", summary.StoreFailures)},
		{"Elapsed", summary.Elapsed.Round(time.Millisecond).String()},
	}
	return renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
}
