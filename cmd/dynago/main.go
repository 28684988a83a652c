// dynago is the local command line for the dynamics engine: render a
// plane to PNG, inspect a single orbit, refine preperiodic points, and
// trace external rays or equipotentials.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marben/dynago"
	"github.com/marben/dynago/profiles"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type familyFlags struct {
	family  string
	degree  int
	c       string
	maxIter int
}

func (ff *familyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ff.family, "family", "mandelbrot", "dynamical family: mandelbrot, unicritical or julia")
	cmd.Flags().IntVar(&ff.degree, "degree", 2, "map degree for the unicritical family")
	cmd.Flags().StringVar(&ff.c, "c", "0", "parameter seed for the julia family, e.g. -1 or 0.28+0.53i")
	cmd.Flags().IntVar(&ff.maxIter, "max-iter", 1000, "iteration budget per orbit")
}

func (ff *familyFlags) build() (dynago.Family, error) {
	switch ff.family {
	case "mandelbrot":
		return profiles.NewMandelbrot(ff.maxIter), nil
	case "unicritical":
		return profiles.NewUnicritical(ff.degree, ff.maxIter), nil
	case "julia":
		c, err := parseComplex(ff.c)
		if err != nil {
			return nil, fmt.Errorf("bad --c: %w", err)
		}
		return profiles.NewJuliaSet(profiles.NewMandelbrot(ff.maxIter), c, ff.maxIter), nil
	}
	return nil, fmt.Errorf("unknown family %q", ff.family)
}

func parseComplex(s string) (complex128, error) {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, "i(") {
		re, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		return complex(re, 0), nil
	}
	return strconv.ParseComplex(s, 128)
}

// parseAngle reads a rational angle written as "p/q".
func parseAngle(s string) (dynago.RationalAngle, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return dynago.RationalAngle{}, fmt.Errorf("angle %q is not of the form p/q", s)
	}
	p, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
	if err != nil {
		return dynago.RationalAngle{}, err
	}
	q, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
	if err != nil {
		return dynago.RationalAngle{}, err
	}
	if q == 0 {
		return dynago.RationalAngle{}, fmt.Errorf("angle %q has zero denominator", s)
	}
	return dynago.NewRationalAngle(p, q), nil
}

func profilesRegion(name string) (dynago.Bounds, bool) {
	b, ok := profiles.Regions[name]
	return b, ok
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dynago",
		Short:         "explore discrete complex dynamical systems",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(renderCmd(), orbitCmd(), locateCmd(), rayCmd(), equipotentialCmd())
	return cmd
}
