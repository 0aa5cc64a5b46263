package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradeview/journal"
	"tradeview/pkg/id"
)

var importCmd = &cobra.Command{
	Use:   "import <trades.csv>",
	Short: "Import a CSV trade log into a local SQLite store",
	Long: `Normalize a CSV trade log and store it in a local SQLite file, so
later runs can read it back without re-parsing the export.

Example:
  tradeview import trades.csv --db trades.sqlite`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importDBPath string

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importDBPath, "db", "d", "./trades.sqlite", "path to SQLite store")
}

func runImport(cmd *cobra.Command, args []string) error {
	s, dropped, err := journal.ReadFile(args[0])
	if err != nil {
		return err
	}

	st, err := journal.OpenStore(importDBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	runID := id.New()
	if err := st.Import(runID, s); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	log.Info("trade log imported",
		zap.String("run_id", runID),
		zap.String("db", importDBPath),
		zap.Int("trades", len(s)),
		zap.Int("dropped", dropped),
	)
	fmt.Printf("imported %d trades into %s (run %s, %d rows dropped)\n",
		len(s), importDBPath, runID, dropped)
	return nil
}
