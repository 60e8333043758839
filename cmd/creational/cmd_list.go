package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/creational/internal/catalog"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available walkthroughs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range catalog.All(catalog.Options{}) {
				if _, err := fmt.Fprintf(a.stdout, "%-16s %s\n", d.Name, d.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
