package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdutta/revq/internal/perf"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all recorded performance data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if !resetYes {
			cmd.Printf("This clears all performance data in %s. Type YES to confirm: ", cfg.PerformancePath)
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read confirmation: %w", err)
			}
			if strings.TrimSpace(line) != "YES" {
				cmd.Println("Aborted.")
				return nil
			}
		}

		if err := perf.NewStore(cfg.PerformancePath, nil).Clear(); err != nil {
			return fmt.Errorf("clear performance data: %w", err)
		}
		cmd.Println("Performance data cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation prompt")
}
