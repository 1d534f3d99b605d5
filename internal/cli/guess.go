package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-qens/lineshape"
)

func guessCmd(g *globals) *cobra.Command {
	var set map[string]string

	c := &cobra.Command{
		Use:   "guess <delta|lorentzian>",
		Short: "Evaluate a model, then guess its parameters back from the curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := g.setup(cmd)
			if err != nil {
				return err
			}

			m, err := newAtomic(args[0])
			if err != nil {
				return err
			}
			guesser, ok := m.(lineshape.Guesser)
			if !ok {
				return fmt.Errorf("model %s cannot guess parameters", m.Name())
			}
			p, err := parseParams(m, set)
			if err != nil {
				return err
			}

			x := cfg.Domain()
			y, err := m.Eval(x, p)
			if err != nil {
				return err
			}
			guessed, err := guesser.Guess(y, x)
			if err != nil {
				return err
			}
			log.Debug("model.guess", "model", m.Name(), "params", len(guessed))

			names := make([]string, 0, len(guessed))
			for n := range guessed {
				names = append(names, n)
			}
			sort.Strings(names)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "PARAMETER\tINPUT\tGUESS")
			for _, n := range names {
				in := "-"
				if v, ok := p[n]; ok {
					in = fmt.Sprintf("%g", v)
				}
				fmt.Fprintf(tw, "%s\t%s\t%g\n", n, in, guessed[n])
			}
			return tw.Flush()
		},
	}

	c.Flags().StringToStringVar(&set, "set", nil, "parameter value as name=value (repeatable)")
	return c
}
