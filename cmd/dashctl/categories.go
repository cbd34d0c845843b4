package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func categoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List filter categories and their keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := a.store.Registry()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			for _, c := range reg.Categories() {
				def, _ := reg.Category(c)
				fmt.Fprintf(w, "%s\t%s\n", def.Name, def.Label)
				for _, kd := range def.Keys {
					fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", kd.Name, kd.Kind, kd.Operator, kd.Label)
				}
			}
			return w.Flush()
		},
	}
}
