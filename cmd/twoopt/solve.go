package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/twoopt/instance"
	"github.com/katalvlaran/twoopt/tsp"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Construct and 2-opt optimize a tour for each instance",
		Long: `
Loads every instance, builds the starting tour, runs 2-opt to a local optimum
and prints one report per file in argument order. Files are processed
concurrently (--jobs); each search itself is single-threaded.

twoopt solve berlin52.tsp --verify --print-tour`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runSolve,
	}

	f := cmd.Flags()
	f.String(keyInit, tsp.InitNearestNeighbor.String(), "starting tour: nn, identity, random")
	f.Int64(keySeed, 0, "seed for --init random (0 = fixed default); derived per file")
	f.Bool(keyDense, false, "precompute the n×n cost table (O(n²) memory)")
	f.Bool(keyVerify, false, "re-run 2-opt after convergence and require zero gain")
	f.Bool(keyPrintTour, false, "include the tour (0-based city ids) in the report")
	f.String(keyProfile, "", "write a profile of the run: cpu, mem")
	f.String(keyProfileDir, ".", "directory for --profile output")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	strategy, err := tsp.ParseInit(a.cfg.Init)
	if err != nil {
		return fmt.Errorf("--%s %q: %w", keyInit, a.cfg.Init, err)
	}

	if a.cfg.Profile != "" {
		defer startProfile(a.cfg.Profile, a.cfg.ProfileDir).Stop()
	}

	var (
		start   = time.Now()
		reports = make([]Report, len(args))
		g       errgroup.Group
	)
	g.SetLimit(a.cfg.Jobs)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			rep, err := a.solveFile(path, strategy, tsp.DeriveSeed(a.cfg.Seed, uint64(i)))
			if err != nil {
				return err
			}
			reports[i] = rep

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		a.log.Error("solve failed", "error", err)
		return err
	}
	a.log.Info("all instances solved", "files", len(args), "elapsed", time.Since(start))

	return writeReports(cmd.OutOrStdout(), a.cfg.Format, reports)
}

// solveFile runs load → construct → optimize (→ verify) for one instance.
func (a *app) solveFile(path string, strategy tsp.Init, seed int64) (Report, error) {
	log := a.log.With("file", path)

	t0 := time.Now()
	in, err := instance.Load(path)
	if err != nil {
		return Report{}, err
	}
	loadTime := time.Since(t0)
	log.Info("instance loaded",
		"name", in.Name(), "dimension", in.Size(), "weight", in.Kind().String(), "elapsed", loadTime)

	opts := []tsp.Option{tsp.WithInit(strategy), tsp.WithSeed(seed)}
	if a.cfg.Dense {
		opts = append(opts, tsp.WithDense())
	}
	if a.cfg.Verify {
		opts = append(opts, tsp.WithVerify())
	}

	t1 := time.Now()
	res, err := tsp.Solve(in, opts...)
	solveTime := time.Since(t1)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Info("2-opt converged",
		"initial", res.InitialLength, "length", res.Length, "gain", res.Stats.Gain,
		"moves", res.Stats.Moves, "outer", res.Stats.OuterPasses, "inner", res.Stats.InnerPasses,
		"skipped", res.Stats.Skipped, "verified", res.Verified, "elapsed", solveTime)

	rep := newReport(path, in, strategy, res)
	rep.LoadTime = loadTime.String()
	rep.SolveTime = solveTime.String()
	if a.cfg.PrintTour {
		rep.Tour = res.Tour
	}

	return rep, nil
}

// startProfile starts a pkg/profile session; callers must Stop it.
func startProfile(mode, dir string) interface{ Stop() } {
	opts := []func(*profile.Profile){profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet}
	if mode == profileMem {
		return profile.Start(append(opts, profile.MemProfile)...)
	}

	return profile.Start(append(opts, profile.CPUProfile)...)
}
