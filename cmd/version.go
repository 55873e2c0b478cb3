package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdutta/revq/internal/release"
)

// Version is set at build time via -ldflags.
var Version = "(devel)"

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the revq version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Printf("revq %s\n", Version)
		if !versionCheck {
			return nil
		}

		res, err := release.NewChecker("sdutta", "revq").Check(cmd.Context(), Version)
		if errors.Is(err, release.ErrDevBuild) {
			cmd.Println("Development build; skipping release check.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("check latest release: %w", err)
		}

		if res.UpdateAvailable {
			cmd.Printf("A newer release is available: %s\n", res.LatestVersion)
		} else {
			cmd.Println("You are on the latest release.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub for a newer release")
}
