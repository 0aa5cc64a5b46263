package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradeview/config"
	"tradeview/journal"
)

var rootCmd = &cobra.Command{
	Use:   "tradeview",
	Short: "Analyze a trade log: summaries, time-of-day seasonality, daily stop simulation",
	Long: `Tradeview analyzes a historical log of trading operations.

It provides tools for:
  - Scalar summaries (net balance, profit factor) over any trade subset
  - 15-minute and 1-hour time-of-day seasonality tables with expectancy
  - Per-day stop simulation (loss limit, gain target, consecutive losses)
  - Time-of-day window filtering, alone or combined with the daily stop
  - Month and day-of-month aggregate tables
  - Importing CSV trade logs into a local SQLite store`,
	SilenceUsage: true,
}

var (
	cfgPath string
	verbose bool

	cfg *config.Config
	log *zap.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer func() {
		if log != nil {
			_ = log.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			log, err = zap.NewDevelopment()
		} else {
			log, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		if cfgPath != "" {
			cfg, err = config.LoadFromFile(cfgPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}
		return nil
	}
}

// loadSeries loads the configured trade log (CSV or SQLite), applies the
// configured date range, and returns the series under study.
func loadSeries() (journal.Series, error) {
	start := time.Now()

	var (
		s       journal.Series
		dropped int
		err     error
	)
	switch {
	case cfg.Data.CSVPath != "":
		s, dropped, err = journal.ReadFile(cfg.Data.CSVPath)
		if err != nil {
			return nil, err
		}
	case cfg.Data.DBPath != "":
		st, err := journal.OpenStore(cfg.Data.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		s, err = st.ListAll()
		if err != nil {
			return nil, fmt.Errorf("read store: %w", err)
		}
	default:
		return nil, fmt.Errorf("no trade log configured")
	}

	if from, to, ok := cfg.DateRange(); ok {
		s = journal.FilterDateRange(s, from, to)
	}

	log.Info("trade log loaded",
		zap.Int("trades", len(s)),
		zap.Int("dropped", dropped),
		zap.Duration("took", time.Since(start)),
	)
	return s, nil
}
