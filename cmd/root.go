package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	cfgpkg "github.com/digcul/surveyscope/internal/config"
	"github.com/digcul/surveyscope/internal/dataset"
)

var (
	// Global flags
	cfgFile       string
	debug         bool
	flagDataPath  string
	flagDelimiter string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "surveyscope",
	Short: "surveyscope: explore the digital-culture survey dataset",
	Long: `surveyscope loads the social-media and political-engagement survey CSV
and computes frequency tables, grouped means, correlations and regressions
over it, with markdown and PDF report export.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.surveyscope/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagDataPath, "data", "", "path to the survey CSV (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "", "CSV delimiter (overrides config)")
}

func loadConfig() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load config")
		return
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("data") && flagDataPath != "" {
		cfg.DataPath = flagDataPath
	}
	if f.Changed("delimiter") && flagDelimiter != "" {
		cfg.Delimiter = flagDelimiter
	}
	switch cfg.LogLevel {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// loadDataset opens the configured survey file. A load failure is fatal for
// the command: there is no partial analysis over a broken file.
func loadDataset() (*dataset.Dataset, error) {
	if cfg == nil {
		c, err := cfgpkg.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	log.Debug().Str("path", cfg.DataPath).Msg("loading survey data")
	ds, err := dataset.Load(cfg.DataPath, cfg.DelimiterRune())
	if err != nil {
		log.Error().Err(err).Str("path", cfg.DataPath).Msg("survey data load failed")
		return nil, err
	}
	log.Debug().Int("respondents", len(ds.Records)).Int("columns", ds.Schema.Columns()).Msg("survey data loaded")
	return ds, nil
}
