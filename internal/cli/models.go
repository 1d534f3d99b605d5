package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available models and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tPARAMETERS")
			for _, name := range atomicNames() {
				m, err := newAtomic(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", name, strings.Join(m.ParamNames(), ", "))
			}
			fmt.Fprintf(w, "convolve\tresolution params prefixed %s, response params prefixed %s\n",
				resolutionPrefix, responsePrefix)
			return w.Flush()
		},
	}
}
