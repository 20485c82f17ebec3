package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/getskill/skillshare/pkg/installer"
	"github.com/getskill/skillshare/pkg/presenter"
)

type InstallConfig struct {
	Target string
	Global bool
	Force  bool
}

func NewInstallConfig() *InstallConfig {
	return &InstallConfig{
		Target: installer.DefaultTarget,
	}
}

var installCmd = &cobra.Command{
	Use:   "install <skill-id>",
	Short: "Install a skill into a consuming tool's directory",
	Long: `Install a skill from the collection into the configuration directory
of a consuming tool. Install paths vary by tool; known targets: ` + fmt.Sprint(installer.TargetNames()) + `.

Examples:
  skillshare install commit-messages
  skillshare install commit-messages --target claude
  skillshare install commit-messages --target claude -g --force`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getInstallConfigFromFlags(cmd)
		installSkill(args[0], config)
	},
}

func init() {
	defaults := NewInstallConfig()
	installCmd.Flags().StringP("target", "t", defaults.Target, "Consuming tool to install for")
	installCmd.Flags().BoolP("global", "g", defaults.Global, "Install to the tool's user-global directory instead of the project-local one")
	installCmd.Flags().Bool("force", defaults.Force, "Replace an existing installation")
	rootCmd.AddCommand(installCmd)
}

func getInstallConfigFromFlags(cmd *cobra.Command) *InstallConfig {
	config := NewInstallConfig()
	if target, err := cmd.Flags().GetString("target"); err == nil && target != "" {
		config.Target = target
	}
	if global, err := cmd.Flags().GetBool("global"); err == nil {
		config.Global = global
	}
	if force, err := cmd.Flags().GetBool("force"); err == nil {
		config.Force = force
	}
	return config
}

func installSkill(id string, config *InstallConfig) {
	d, err := newDiscovery()
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	s, err := d.Get(id)
	if err != nil {
		presenter.Error(err, "Skill not found")
		os.Exit(1)
	}

	destRoot, err := installer.Dir(config.Target, config.Global)
	if err != nil {
		presenter.Error(err, "Failed to determine install directory")
		os.Exit(1)
	}

	destDir, err := installer.Install(s.Dir, destRoot, config.Force)
	if err != nil {
		presenter.Error(err, fmt.Sprintf("Failed to install skill '%s'", id))
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("Installed skill '%s' to %s", id, destDir))
}
