package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-qens/dsp/conv"
	"github.com/cwbudde/algo-qens/internal/metrics"
	"github.com/cwbudde/algo-qens/internal/plot"
)

type evalFlags struct {
	set         map[string]string
	resolution  string
	response    string
	plotPath    string
	metricsPath string
}

func evalCmd(g *globals) *cobra.Command {
	f := &evalFlags{}

	c := &cobra.Command{
		Use:   "eval <delta|lorentzian|convolve>",
		Short: "Evaluate a model over the configured domain",
		Example: "  lineshape eval delta --set amplitude=2 --set center=0.1 --start -1 --stop 1.01 --step 0.5\n" +
			"  lineshape eval convolve --resolution lorentzian --response delta --set r_sigma=0.01 --plot out.png",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := g.setup(cmd)
			if err != nil {
				return err
			}
			method, err := conv.ParseMethod(cfg.Method)
			if err != nil {
				return err
			}

			m, err := buildModel(modelDef{
				name:       args[0],
				resolution: f.resolution,
				response:   f.response,
				method:     method,
			})
			if err != nil {
				return err
			}
			p, err := parseParams(m, f.set)
			if err != nil {
				return err
			}

			rec := metrics.New()
			im := rec.Instrument(m)

			x := cfg.Domain()
			start := time.Now()
			y, err := im.Eval(x, p)
			if err != nil {
				log.Error("model.eval", "model", m.Name(), "err", err)
				return err
			}
			log.Info("model.eval",
				"model", m.Name(),
				"samples", len(x),
				"output", len(y),
				"elapsed", time.Since(start),
			)

			if err := writeTable(cmd.OutOrStdout(), x, y); err != nil {
				return err
			}

			if f.plotPath != "" {
				err := plot.Save(f.plotPath, x, []plot.Curve{{Name: m.Name(), Y: y}}, plot.Options{
					Title:  m.Name(),
					XLabel: "E (meV)",
					YLabel: "S(E)",
					Width:  cfg.PlotWidth,
					Height: cfg.PlotHeight,
				})
				if err != nil {
					return err
				}
				log.Info("plot.saved", "path", f.plotPath)
			}

			if f.metricsPath != "" {
				if err := rec.WriteTextfile(f.metricsPath); err != nil {
					return err
				}
				log.Debug("metrics.written", "path", f.metricsPath)
			}
			return nil
		},
	}

	c.Flags().StringToStringVar(&f.set, "set", nil, "parameter value as name=value (repeatable)")
	c.Flags().StringVar(&f.resolution, "resolution", "lorentzian", "resolution model for convolve")
	c.Flags().StringVar(&f.response, "response", "delta", "response model for convolve")
	c.Flags().StringVar(&f.plotPath, "plot", "", "render the result to this file (.png, .svg, .pdf)")
	c.Flags().StringVar(&f.metricsPath, "metrics-file", "", "write Prometheus textfile metrics here")
	return c
}

// writeTable prints x and y as two tab-separated columns. A shorter y is
// paired with the leading samples of x.
func writeTable(w io.Writer, x, y []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "x\ty")
	for i, v := range y {
		if i >= len(x) {
			break
		}
		fmt.Fprintf(tw, "%g\t%g\n", x[i], v)
	}
	return tw.Flush()
}
