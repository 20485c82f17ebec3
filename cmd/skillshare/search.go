package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/getskill/skillshare/pkg/presenter"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search skills by text and tags",
	Long: `Search skills by a substring over id, name, description, and tags,
optionally filtered to skills carrying specific tags.

Examples:
  skillshare search landing
  skillshare search --tag git
  skillshare search commit --tag git --tag workflow`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		tags, _ := cmd.Flags().GetStringSlice("tag")
		searchSkills(query, tags)
	},
}

func init() {
	searchCmd.Flags().StringSlice("tag", nil, "Require a tag (repeatable)")
	rootCmd.AddCommand(searchCmd)
}

func searchSkills(query string, tags []string) {
	d, err := newDiscovery()
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	matched, err := d.Search(query, tags)
	if err != nil {
		presenter.Error(err, "Failed to search skills")
		os.Exit(1)
	}

	if len(matched) == 0 {
		presenter.Info("No skills matched")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTAGS\tDESCRIPTION")
	fmt.Fprintln(tw, "--\t----\t-----------")
	for _, s := range matched {
		description := s.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, strings.Join(s.Tags, ","), description)
	}
	tw.Flush()
}
