package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sdutta/revq/internal/config"
	"github.com/sdutta/revq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "revq",
	Short: "Terminal revision quiz",
	Long:  "revq — terminal revision tool that quizzes you from subject question banks and tracks per-topic accuracy.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: config.yaml in . or ./config)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides REVQ_DB env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads configuration honoring the persistent --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	return config.Load(file)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then REVQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
