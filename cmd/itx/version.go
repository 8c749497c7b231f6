package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var versionCmd = &cobra.Command{
	Use:  "version",
	RunE: runVersion,
}

type versionFlags struct {
	json bool
}

var versionArgs = versionFlags{}

func init() {
	versionCmd.Flags().BoolVarP(&versionArgs.json, "json", "", !term.IsTerminal(int(os.Stdout.Fd())), "Print version information as JSON. Defaults to true when stdout is not a terminal")
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	if versionArgs.json {
		fmt.Fprintf(cmd.OutOrStdout(), `{"version":"%s","sha":"%s","date":"%s"}`+"\n", version, commit, date)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n%s\t%s\n%s\t%s\n",
		"Version:", version,
		"Commit SHA:", commit,
		"Build date:", date,
	)
	return nil
}
