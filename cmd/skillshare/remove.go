package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getskill/skillshare/pkg/installer"
	"github.com/getskill/skillshare/pkg/presenter"
)

type RemoveConfig struct {
	Target string
	Global bool
	Yes    bool
}

func NewRemoveConfig() *RemoveConfig {
	return &RemoveConfig{
		Target: installer.DefaultTarget,
	}
}

var removeCmd = &cobra.Command{
	Use:   "remove <skill-id>",
	Short: "Remove an installed skill",
	Long: `Remove an installed skill by id from a consuming tool's directory.

Examples:
  skillshare remove commit-messages
  skillshare remove commit-messages --target claude -g`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getRemoveConfigFromFlags(cmd)
		removeSkill(args[0], config)
	},
}

func init() {
	defaults := NewRemoveConfig()
	removeCmd.Flags().StringP("target", "t", defaults.Target, "Consuming tool to remove from")
	removeCmd.Flags().BoolP("global", "g", defaults.Global, "Remove from the tool's user-global directory instead of the project-local one")
	removeCmd.Flags().BoolP("yes", "y", defaults.Yes, "Skip the confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func getRemoveConfigFromFlags(cmd *cobra.Command) *RemoveConfig {
	config := NewRemoveConfig()
	if target, err := cmd.Flags().GetString("target"); err == nil && target != "" {
		config.Target = target
	}
	if global, err := cmd.Flags().GetBool("global"); err == nil {
		config.Global = global
	}
	if yes, err := cmd.Flags().GetBool("yes"); err == nil {
		config.Yes = yes
	}
	return config
}

func removeSkill(id string, config *RemoveConfig) {
	destRoot, err := installer.Dir(config.Target, config.Global)
	if err != nil {
		presenter.Error(err, "Failed to determine install directory")
		os.Exit(1)
	}

	if !config.Yes {
		answer := presenter.Prompt(fmt.Sprintf("Remove skill '%s' from %s?", id, destRoot), "y", "N")
		if !strings.EqualFold(answer, "y") {
			presenter.Info("Aborted")
			return
		}
	}

	if err := installer.Remove(destRoot, id); err != nil {
		presenter.Error(err, fmt.Sprintf("Failed to remove skill '%s'", id))
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("Removed skill '%s' from %s", id, destRoot))
}
