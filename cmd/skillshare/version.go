package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/getskill/skillshare/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version information of skillshare.`,
	Run: func(cmd *cobra.Command, _ []string) {
		info := version.Get()

		if asJSON, err := cmd.Flags().GetBool("json"); err == nil && asJSON {
			out, err := info.JSON()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error formatting version info: %s\n", err)
				os.Exit(1)
			}
			fmt.Println(out)
			return
		}

		fmt.Println(info.String())
	},
}

func init() {
	versionCmd.Flags().Bool("json", false, "Print version information as JSON")
	rootCmd.AddCommand(versionCmd)
}
