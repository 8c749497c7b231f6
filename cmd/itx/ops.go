package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ib-77/itx/pkg/it/celx"
	"github.com/ib-77/itx/pkg/it/registry"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the operations usable in --step",
	Args:  cobra.NoArgs,
	RunE:  runOps,
}

func init() {
	rootCmd.AddCommand(opsCmd)
}

func runOps(cmd *cobra.Command, args []string) error {
	r := registry.Builtin(registry.WithLogger(logger))
	if err := celx.Register(r); err != nil {
		return err
	}
	return listOps(cmd.OutOrStdout(), r)
}

func listOps(w io.Writer, r *registry.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tARGS\tALIASES\tID")
	for _, e := range r.Entries() {
		aliases := strings.Join(r.AliasesOf(e.Name), ",")
		if aliases == "" {
			aliases = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Arity, aliases, e.ID)
	}
	return tw.Flush()
}
