package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getskill/skillshare/pkg/presenter"
)

var showCmd = &cobra.Command{
	Use:   "show <skill-id>",
	Short: "Show a skill's metadata and document",
	Long: `Show a skill's metadata record followed by its SKILL.md content.

Examples:
  skillshare show commit-messages
  skillshare show commit-messages --meta-only`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		metaOnly, _ := cmd.Flags().GetBool("meta-only")
		showSkill(args[0], metaOnly)
	},
}

func init() {
	showCmd.Flags().Bool("meta-only", false, "Show only the metadata record")
	rootCmd.AddCommand(showCmd)
}

func showSkill(id string, metaOnly bool) {
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

	presenter.Section(s.Name)
	fmt.Printf("id:          %s\n", s.ID)
	fmt.Printf("description: %s\n", s.Description)
	if s.Version != "" {
		fmt.Printf("version:     %s\n", s.Version)
	}
	if s.Author != "" {
		fmt.Printf("author:      %s\n", s.Author)
	}
	if len(s.Tags) > 0 {
		fmt.Printf("tags:        %s\n", strings.Join(s.Tags, ", "))
	}
	fmt.Printf("directory:   %s\n", s.Dir)

	if metaOnly {
		return
	}

	presenter.Separator()
	fmt.Println(s.Content)
}
