package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"biped-anim/internal/archetype"
)

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "List registered pose programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TOOL\tABILITY\tSPECIES")
		for _, k := range animator.Table().Keys() {
			ability := k.Ability
			if ability == "" {
				ability = "(default)"
			}
			species, ok := archetype.Owner(k.Ability)
			if !ok {
				species = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", k.Tool, ability, species)
		}
		return w.Flush()
	},
}
