package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sdutta/revq/internal/logging"
	"github.com/sdutta/revq/internal/perf"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print recorded performance without starting the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log, err := logging.New(cfg.Env)
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer log.Sync()

		data := perf.NewStore(cfg.PerformancePath, log).Load()
		if len(data) == 0 {
			cmd.Println("No performance data found.")
			return nil
		}

		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			cmd.Printf("%s\n", key)
			topics := make([]string, 0, len(data[key]))
			for t := range data[key] {
				topics = append(topics, t)
			}
			sort.Strings(topics)
			for _, t := range topics {
				st := data[key][t]
				cmd.Printf("  %-30s %d/%d (%.1f%%)\n", t, st.Correct, st.Attempted, st.Accuracy()*100)
			}
		}
		return nil
	},
}
