// internal/cli/import_cmd.go
package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"medadmin/internal/config"
	"medadmin/internal/importer"
	"medadmin/internal/report"
)

func newImportCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk-import records from a .csv or .xlsx sheet",
	}

	var showSkips bool
	cmd.PersistentFlags().BoolVar(&showSkips, "show-skips", false, "list every skipped row with its reason")

	runImport := func(cmd *cobra.Command, kind, filePath string, run func() (*importer.Result, error)) error {
		result, err := run()
		if result != nil {
			recordRun(d.logger, kind, filePath, result)
			if showSkips {
				for _, skip := range result.Skipped {
					fmt.Fprintf(cmd.OutOrStdout(), "row %d skipped: %s\n", skip.Line, skip.Reason)
				}
			}
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
		return nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "progress <file>",
		Short: "Import problem progresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			im := importer.NewProgressImporter(d.subjects, d.progresses, d.logger)
			return runImport(cmd, "progress", args[0], func() (*importer.Result, error) {
				return im.Run(cmd.Context(), args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "problems <file>",
		Short: "Import problems with their choices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			im := importer.NewProblemImporter(d.subjects, d.progresses, d.problems, d.logger)
			return runImport(cmd, "problems", args[0], func() (*importer.Result, error) {
				return im.Run(cmd.Context(), args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "memo <file>",
		Short: "Import memorization cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			im := importer.NewMemoImporter(d.memos, d.logger)
			return runImport(cmd, "memo", args[0], func() (*importer.Result, error) {
				return im.Run(cmd.Context(), args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "Show recent import runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := report.OpenHistory(config.Cfg.History.Path, d.logger)
			if err != nil {
				return err
			}
			defer history.Close()

			runs, err := history.Recent(20)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.RanAt.Format("2006-01-02 15:04"), run.Kind, run.FileName,
					strconv.Itoa(run.Total), strconv.Itoa(run.Created), strconv.Itoa(len(run.Skips)),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"When", "Kind", "File", "Rows", "Created", "Skipped"}, rows))
			return nil
		},
	})

	return cmd
}

// recordRun persists the run when history is enabled; a bookkeeping failure
// never fails the import itself.
func recordRun(logger *slog.Logger, kind, filePath string, result *importer.Result) {
	if !config.Cfg.History.Enabled {
		return
	}
	history, err := report.OpenHistory(config.Cfg.History.Path, logger)
	if err != nil {
		logger.Warn("import history unavailable", slog.Any("error", err))
		return
	}
	defer history.Close()
	if _, err := history.Record(kind, filepath.Base(filePath), result); err != nil {
		logger.Warn("failed to record import run", slog.Any("error", err))
	}
}
