package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/go-kit/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/orbitlab/sitnikov/internal/annealing"
	"github.com/orbitlab/sitnikov/internal/harmonics"
	"github.com/orbitlab/sitnikov/internal/storage"
)

// Sphere grid resolution per angle.
const gridSteps = 1000

var (
	outDir string
	lmax   int
	t0     float64
	tMin   float64
	seed   uint64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "harmonics",
		Short: "maximize the modulus of a random spherical-harmonics combination",
		Long: `harmonics draws uniform random coefficients for a degree-lmax
combination of real spherical harmonics and searches the sphere for the
maximum modulus with simulated annealing. The search history and an
evaluation grid are written as binary rows for downstream plotting.`,
		RunE: run,
	}
	rootCmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory")
	rootCmd.Flags().IntVarP(&lmax, "lmax", "l", 4, "maximum degree of the harmonics")
	rootCmd.Flags().Float64Var(&t0, "from", 100000.0, "initial temperature")
	rootCmd.Flags().Float64Var(&tMin, "to", 1.0, "minimum temperature")
	rootCmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if outDir == "" {
		return fmt.Errorf("--output is required")
	}
	if lmax < 0 {
		return fmt.Errorf("lmax must be non-negative, got %d", lmax)
	}
	if t0 <= 0 || tMin <= 0 || tMin >= t0 {
		return fmt.Errorf("temperatures must satisfy 0 < to < from, got %g and %g", t0, tMin)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	logger := log.With(log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout)), "cmd", "harmonics")
	logger.Log("lmax", lmax, "from", t0, "to", tMin, "seed", seed)

	rng := rand.New(rand.NewSource(seed))
	coeffs := harmonics.RandomCoefficients(lmax, rng)
	objective := harmonics.Objective(lmax, coeffs)

	bounds := annealing.Bounds{{Lo: 0, Hi: math.Pi}, {Lo: 0, Hi: 2 * math.Pi}}
	p0 := annealing.Point{
		distuv.Uniform{Min: bounds[0].Lo, Max: bounds[0].Hi, Src: rng}.Rand(),
		distuv.Uniform{Min: bounds[1].Lo, Max: bounds[1].Hi, Src: rng}.Rand(),
	}

	// Search history, sampled every thousand iterations. Objective
	// values flip sign on the way in so the history tracks the maximum.
	var ts, ps, fs, bestPs, bestFs []float64
	search := &annealing.SA{
		F:         func(p annealing.Point) float64 { return objective(p[0], p[1]) },
		P0:        p0,
		T0:        t0,
		TMin:      tMin,
		Bounds:    bounds,
		Criterion: annealing.Metropolis{},
		Neighbour: annealing.Normal{SD: math.Pi / 8},
		Schedule:  annealing.Fast{},
		Status: annealing.StatusFunc(func(k int, t, f float64, p annealing.Point, bestF float64, bestP annealing.Point) {
			if k == 1 || k%1000 == 0 {
				ts = append(ts, t)
				ps = append(ps, p...)
				fs = append(fs, -f)
				bestPs = append(bestPs, bestP...)
				bestFs = append(bestFs, -bestF)
			}
		}),
	}

	start := time.Now()
	minimum, point := search.Minimum(rng)
	maximum := -minimum
	logger.Log("elapsed", time.Since(start), "samples", len(ts))

	fmt.Printf("\nmaximum: %v (%v * 2π)\npoint:   [%v %v] ([%v %v] * 2π)\n\n",
		maximum, maximum/(2*math.Pi),
		point[0], point[1], point[0]/(2*math.Pi), point[1]/(2*math.Pi))

	theta, phi, values := harmonics.Grid(func(theta, phi float64) float64 {
		return -objective(theta, phi)
	}, math.Pi, 2*math.Pi, gridSteps)

	rows := []struct {
		name   string
		values []float64
	}{
		{"maximum.bin", []float64{maximum}},
		{"point.bin", point},
		{"theta.bin", theta},
		{"phi.bin", phi},
		{"obj.bin", values},
		{"ts.bin", ts},
		{"ps.bin", ps},
		{"fs.bin", fs},
		{"best_ps.bin", bestPs},
		{"best_fs.bin", bestFs},
	}
	for _, row := range rows {
		if err := storage.WriteRow(filepath.Join(outDir, row.name), row.values); err != nil {
			return fmt.Errorf("write %s: %w", row.name, err)
		}
	}
	logger.Log("output", outDir, "files", len(rows))
	return nil
}
