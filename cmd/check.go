// hudbuild check
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hudengine/hudbuild/internal/msg"
	"github.com/hudengine/hudbuild/internal/prereq"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check build prerequisites without building",
	Run: func(cmd *cobra.Command, args []string) {
		if err := prereq.Check(cmd.Context(), resolvePlatform()); err != nil {
			msg.Fatal("%v", err)
		}
	},
}

func init() {
	// hudbuild check subcommand
	rootCmd.AddCommand(checkCmd)
	addTargetFlags(checkCmd)
}
