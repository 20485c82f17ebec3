package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getskill/skillshare/pkg/presenter"
	"github.com/getskill/skillshare/pkg/scaffold"
)

type NewConfig struct {
	Root        string
	Name        string
	Description string
	Author      string
	Tags        []string
}

func NewNewConfig() *NewConfig {
	return &NewConfig{
		Root: "./skills",
	}
}

var newCmd = &cobra.Command{
	Use:   "new <skill-id>",
	Short: "Scaffold a new skill",
	Long: `Scaffold a new skill directory with a SKILL.md containing the
conventional sections and a matching skill.yaml.

Examples:
  skillshare new commit-messages
  skillshare new landing-page --author getskill --tags web,frontend`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getNewConfigFromFlags(cmd)
		newSkill(args[0], config)
	},
}

func init() {
	defaults := NewNewConfig()
	newCmd.Flags().String("name", "", "Display name (defaults to the title-cased id)")
	newCmd.Flags().String("description", "", "One-line description")
	newCmd.Flags().String("author", defaults.Author, "Author recorded in skill.yaml")
	newCmd.Flags().StringSlice("tags", defaults.Tags, "Tags recorded in skill.yaml")
	rootCmd.AddCommand(newCmd)
}

func getNewConfigFromFlags(cmd *cobra.Command) *NewConfig {
	config := NewNewConfig()
	if root := viper.GetString("root"); root != "" {
		config.Root = root
	}
	if name, err := cmd.Flags().GetString("name"); err == nil {
		config.Name = name
	}
	if description, err := cmd.Flags().GetString("description"); err == nil {
		config.Description = description
	}
	if author, err := cmd.Flags().GetString("author"); err == nil {
		config.Author = author
	}
	if tags, err := cmd.Flags().GetStringSlice("tags"); err == nil {
		config.Tags = tags
	}
	return config
}

func newSkill(id string, config *NewConfig) {
	params := scaffold.NewParams(id)
	if config.Name != "" {
		params.Name = config.Name
	}
	if config.Description != "" {
		params.Description = config.Description
	}
	params.Author = config.Author
	params.Tags = config.Tags

	dir, err := scaffold.Create(config.Root, params)
	if err != nil {
		presenter.Error(err, "Failed to scaffold skill")
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("Created skill '%s' at %s", id, dir))
	presenter.Info("Edit SKILL.md to fill in the Trigger, Instructions, and Success Criteria sections")
}
