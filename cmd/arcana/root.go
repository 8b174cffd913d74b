// Root command for the arcana CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dukaforge/arcana/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagSeed      int64
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir string
	configCaps    capsConfig
)

var rootCmd = &cobra.Command{
	Use:     "arcana",
	Short:   "Arcana is a single-user tarot reading ledger",
	Long: `Arcana records simulated tarot readings and journal entries under
named client profiles, persisted to a single JSON file.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configCaps = capsConfig{
			ReadingCap: cfg.GetInt(cfgKeyReadingCap),
			JournalCap: cfg.GetInt(cfgKeyJournalCap),
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory holding clients.json (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "seed for the card draw (0 = time-based)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(spreadsCmd)
	rootCmd.AddCommand(meaningCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(journalCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > ARCANA_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveStorePath returns the clients.json path following the
// precedence: --data-dir flag > config.yaml data_dir > ARCANA_DATA_DIR
// env > default.
func resolveStorePath() (string, error) {
	return paths.StorePath(flagDataDir, configDataDir)
}
