package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gavelmatch/internal/verdicts"
)

func newVerdictsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	verdictsCmd := &cobra.Command{
		Use:   "verdicts",
		Short: "Inspect and manage stored match verdicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerdictsList(ctx, cmd, asJSON, "")
		},
	}
	verdictsCmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")

	verdictsCmd.AddCommand(newVerdictsListCommand(ctx))
	verdictsCmd.AddCommand(newVerdictsShowCommand(ctx))
	verdictsCmd.AddCommand(newVerdictsClearCommand(ctx))
	return verdictsCmd
}

func newVerdictsListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var methodFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored verdicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerdictsList(ctx, cmd, asJSON, methodFilter)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	cmd.Flags().StringVar(&methodFilter, "method", "", "Filter by method (algorithmic, oracle_assisted, unmatched)")
	return cmd
}

func runVerdictsList(ctx *commandContext, cmd *cobra.Command, asJSON bool, methodFilter string) error {
	store, err := ctx.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var methods []verdicts.Method
	if trimmed := strings.TrimSpace(methodFilter); trimmed != "" {
		method := verdicts.Method(trimmed)
		if !method.Valid() {
			return fmt.Errorf("unknown method %q", trimmed)
		}
		methods = append(methods, method)
	}

	stored, err := store.List(cmd.Context(), methods...)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd, verdictViews(stored))
	}

	rows := make([][]string, 0, len(stored))
	for _, verdict := range stored {
		rows = append(rows, []string{
			verdict.VideoID,
			verdict.EventID,
			formatConfidence(verdict.Confidence),
			methodLabel(string(verdict.Method)),
			strings.Join(verdict.Reasons, "; "),
		})
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(
		[]string{"Video", "Event", "Confidence", "Method", "Reasons"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
	))

	stats, err := store.Stats(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d verdicts: %d algorithmic, %d oracle assisted, %d unmatched\n",
		stats.Total, stats.Algorithmic, stats.OracleAssisted, stats.Unmatched)
	return nil
}

func newVerdictsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <video-id>",
		Short: "Show the stored verdict for one video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			verdict, err := store.GetByVideo(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if verdict == nil {
				return fmt.Errorf("no verdict stored for video %q", args[0])
			}
			return writeJSON(cmd, verdictView(verdict))
		},
	}
}

func newVerdictsClearCommand(ctx *commandContext) *cobra.Command {
	var unmatchedOnly bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove stored verdicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			var removed int64
			if unmatchedOnly {
				removed, err = store.ClearUnmatched(cmd.Context())
			} else {
				removed, err = store.Clear(cmd.Context())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d verdicts\n", removed)
			return nil
		},
	}
	cmd.Flags().BoolVar(&unmatchedOnly, "unmatched", false, "Remove only unmatched verdicts so the next run retries them")
	return cmd
}

// verdictJSON is the JSON view of a stored verdict.
type verdictJSON struct {
	VideoID    string   `json:"video_id"`
	EventID    string   `json:"event_id,omitempty"`
	Confidence float64  `json:"confidence"`
	Method     string   `json:"method"`
	Reasons    []string `json:"reasons,omitempty"`
	RunID      string   `json:"run_id,omitempty"`
	UpdatedAt  string   `json:"updated_at,omitempty"`
}

func verdictView(verdict *verdicts.Verdict) verdictJSON {
	view := verdictJSON{
		VideoID:    verdict.VideoID,
		EventID:    verdict.EventID,
		Confidence: verdict.Confidence,
		Method:     string(verdict.Method),
		Reasons:    verdict.Reasons,
		RunID:      verdict.RunID,
	}
	if !verdict.UpdatedAt.IsZero() {
		view.UpdatedAt = verdict.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return view
}

func verdictViews(stored []*verdicts.Verdict) []verdictJSON {
	views := make([]verdictJSON, 0, len(stored))
	for _, verdict := range stored {
		views = append(views, verdictView(verdict))
	}
	return views
}
