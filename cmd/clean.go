// hudbuild clean [path]
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hudengine/hudbuild/internal/builder"
	"github.com/hudengine/hudbuild/internal/msg"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [project path]",
	Short: "Remove the build and conan directories",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		b, err := builder.New(dir, builder.ExecRunner{})
		if err != nil {
			msg.Fatal("%v", err)
		}
		if err := b.Clean(); err != nil {
			msg.Fatal("%v", err)
		}
	},
}

func init() {
	// hudbuild clean subcommand
	rootCmd.AddCommand(cleanCmd)
}
