package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gavelmatch/internal/report"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outPath string
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the match set for the downstream viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "json" && format != "csv" {
				return fmt.Errorf("unsupported export format %q (want json or csv)", format)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			stored, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			doc := report.Build(stored, time.Now())

			target := strings.TrimSpace(outPath)
			if target == "" {
				target = filepath.Join(cfg.Paths.ExportDir, "matches."+format)
			}
			if dir := filepath.Dir(target); dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create export directory %q: %w", dir, err)
				}
			}
			file, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}

			switch format {
			case "json":
				err = report.WriteJSON(file, doc)
			case "csv":
				err = report.WriteCSV(file, doc)
			}
			if err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("close export file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d verdicts (%d matched) to %s\n",
				doc.Metadata.Total, doc.Metadata.Matched, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Destination file (defaults to the configured export directory)")
	cmd.Flags().StringVar(&format, "format", "json", "Export format: json or csv")
	return cmd
}
