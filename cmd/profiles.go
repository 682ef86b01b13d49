// hudbuild profiles
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hudengine/hudbuild/internal/msg"
	"github.com/hudengine/hudbuild/internal/profiles"
)

func doProfilesUpdate() {
	if err := profiles.Update(); err != nil {
		msg.Fatal("failed to update profile presets: %v", err)
	}
	msg.Info("updated conan profile presets")
}

func doProfilesList() {
	names, err := profiles.List()
	if err != nil {
		msg.Fatal("failed to list profile presets: %v", err)
	}
	if len(names) == 0 {
		msg.Warn("no presets cached, run `hudbuild profiles update` first")
		return
	}
	for i, name := range names {
		fmt.Printf("%d. %s\n", i+1, name)
	}
}

var profilesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch or refresh the cached conan profile presets",
	Run: func(cmd *cobra.Command, args []string) {
		doProfilesUpdate()
	},
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the cached conan profile presets",
	Run: func(cmd *cobra.Command, args []string) {
		doProfilesList()
	},
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage conan profile presets",
}

func init() {
	// hudbuild profiles subcommand
	profilesCmd.AddCommand(profilesUpdateCmd)
	profilesCmd.AddCommand(profilesListCmd)
	rootCmd.AddCommand(profilesCmd)
}
