// Command lineshape evaluates quasi-elastic line-shape models.
//
// Usage:
//
//	lineshape models
//	lineshape eval <model> [flags]
//	lineshape guess <model> [flags]
//
// Examples:
//
//	lineshape eval delta --set amplitude=2 --set center=0.1 --start -1 --stop 1.01 --step 0.5
//	lineshape eval convolve --resolution lorentzian --response delta --set r_sigma=0.01 --plot out.png
//	lineshape guess lorentzian --set sigma=0.025
//
// Settings are read from the YAML file named by --config or LINESHAPE_CONFIG
// and from LINESHAPE_* environment variables.
package main

import "github.com/cwbudde/algo-qens/internal/cli"

func main() {
	cli.Execute()
}
