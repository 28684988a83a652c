package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marben/dynago"
	"github.com/marben/dynago/locate"
	"github.com/marben/dynago/plane"
	"github.com/marben/dynago/render"
	"github.com/marben/dynago/trace"
)

func renderCmd() *cobra.Command {
	var ff familyFlags
	var (
		width  int
		region string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "classify a plane and write it as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			fam, err := ff.build()
			if err != nil {
				return err
			}

			bounds := fam.DefaultBounds()
			if region != "" {
				b, ok := profilesRegion(region)
				if !ok {
					return fmt.Errorf("unknown region %q", region)
				}
				bounds = b
			}

			grid := dynago.NewGridByResX(width, bounds)
			pl := plane.Compute(fam, grid)

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := render.WritePNG(f, pl, render.DefaultPalette()); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%dx%d)\n", out, grid.ResX, grid.ResY)
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().IntVar(&width, "width", 1024, "image width in pixels")
	cmd.Flags().StringVar(&region, "region", "", "named landmark region instead of the family default")
	cmd.Flags().StringVar(&out, "out", "plane.png", "output file")
	return cmd
}

func orbitCmd() *cobra.Command {
	var ff familyFlags
	var point string
	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "iterate one plane point and print its trajectory and classification",
		RunE: func(cmd *cobra.Command, args []string) error {
			fam, err := ff.build()
			if err != nil {
				return err
			}
			pt, err := parseComplex(point)
			if err != nil {
				return fmt.Errorf("bad --point: %w", err)
			}

			traj, info := plane.TracePoint(fam, pt)
			for i, z := range traj {
				fmt.Printf("%4d  %v\n", i, z)
			}
			fmt.Printf("class: %s\n", info.Class)
			switch info.Class {
			case dynago.ClassEscaping, dynago.ClassPeriodicKnownPotential:
				fmt.Printf("potential: %g\n", info.Potential)
			case dynago.ClassPeriodic, dynago.ClassMarkedPoint:
				fmt.Printf("preperiod: %d  period: %d  multiplier: %v  err: %g\n",
					info.Cycle.Preperiod, info.Cycle.Period, info.Cycle.Multiplier, info.Cycle.FinalError)
			}
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVar(&point, "point", "0", "plane coordinate")
	return cmd
}

func locateCmd() *cobra.Command {
	var ff familyFlags
	var (
		point     string
		period    int
		preperiod int
	)
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "refine a guess to an exactly preperiodic parameter",
		RunE: func(cmd *cobra.Command, args []string) error {
			fam, err := ff.build()
			if err != nil {
				return err
			}
			pt, err := parseComplex(point)
			if err != nil {
				return fmt.Errorf("bad --point: %w", err)
			}

			schema := dynago.OrbitSchema{Preperiod: preperiod, Period: period}
			sol, err := locate.Preperiodic(fam, pt, schema)
			if err != nil {
				return fmt.Errorf("locate %v: %w", schema, err)
			}
			fmt.Printf("%v\n", sol)
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVar(&point, "point", "0", "approximate coordinate to refine")
	cmd.Flags().IntVar(&period, "period", 1, "cycle length of the requested orbit")
	cmd.Flags().IntVar(&preperiod, "preperiod", 0, "iterations before the orbit enters its cycle")
	return cmd
}

func rayCmd() *cobra.Command {
	var ff familyFlags
	var (
		angle string
		width int
	)
	cmd := &cobra.Command{
		Use:   "ray",
		Short: "trace the external ray at a rational angle",
		RunE: func(cmd *cobra.Command, args []string) error {
			fam, err := ff.build()
			if err != nil {
				return err
			}
			a, err := parseAngle(angle)
			if err != nil {
				return err
			}

			grid := dynago.NewGridByResX(width, fam.DefaultBounds())
			ray, ok := trace.ExternalRay(fam, grid, a)
			if !ok {
				return fmt.Errorf("family %s does not support external rays", fam.Name())
			}
			for _, z := range ray {
				fmt.Printf("%v\n", z)
			}
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVar(&angle, "angle", "1/3", "external angle as a fraction of a turn")
	cmd.Flags().IntVar(&width, "width", 1024, "pixel resolution that sets the ray's stopping precision")
	return cmd
}

func equipotentialCmd() *cobra.Command {
	var ff familyFlags
	var point string
	cmd := &cobra.Command{
		Use:   "equipotential",
		Short: "trace the constant-potential curve through a point",
		RunE: func(cmd *cobra.Command, args []string) error {
			fam, err := ff.build()
			if err != nil {
				return err
			}
			pt, err := parseComplex(point)
			if err != nil {
				return fmt.Errorf("bad --point: %w", err)
			}

			curve, ok := trace.Equipotential(fam, pt)
			if !ok {
				return fmt.Errorf("point %v does not escape quickly enough for an equipotential", pt)
			}
			for _, z := range curve {
				fmt.Printf("%v\n", z)
			}
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVar(&point, "point", "0.6", "base coordinate of the curve")
	return cmd
}
