package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/getskill/skillshare/pkg/presenter"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills",
	Long:  `List all skills with their ids, versions, tags, and descriptions.`,
	Run: func(_ *cobra.Command, _ []string) {
		listSkills()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listSkills() {
	d, err := newDiscovery()
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	all, err := d.Discover()
	if err != nil {
		presenter.Error(err, "Failed to discover skills")
		os.Exit(1)
	}

	if len(all) == 0 {
		presenter.Info("No skills found")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tVERSION\tTAGS\tDESCRIPTION")
	fmt.Fprintln(tw, "--\t-------\t----\t-----------")

	for _, id := range ids {
		s := all[id]
		description := s.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		version := s.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, version, strings.Join(s.Tags, ","), description)
	}
	tw.Flush()
}
