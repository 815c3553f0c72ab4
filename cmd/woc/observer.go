package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newObserverCmd(a *app) *cobra.Command {
	var m, k int
	cmd := &cobra.Command{
		Use:   "observer VERTEX",
		Short: "Report whether VERTEX is an (m,k)-observer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			e, err := a.newEngine(g)
			if err != nil {
				return err
			}
			ok, err := e.IsObserver(args[0], m, k)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "%s (m=%d, k=%d): %t\n", args[0], m, k, ok)

			return err
		},
	}
	cmd.Flags().IntVar(&m, "m", 1, "minimum separation between informants (>= 1)")
	cmd.Flags().IntVar(&k, "k", 2, "number of separated informants (>= 2)")

	return cmd
}
