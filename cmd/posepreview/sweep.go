package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"biped-anim/internal/archetype"
	"biped-anim/internal/raster"
	"biped-anim/internal/sweep"
)

var sweepSpecies string

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Render every program at every stage and write manifest.json",
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().StringVar(&sweepSpecies, "species", archetype.Harvester, "Species for default programs with no owning ability")
}

func runSweep(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := archetypes.Lookup(sweepSpecies); err != nil {
		return err
	}

	opt := raster.DefaultOptions()
	opt.Size = cfg.RenderSize
	opt.Supersample = cfg.Supersample

	sc := sweep.Config{
		Animator:   animator,
		Archetypes: archetypes,
		Species:    sweepSpecies,
		OutputDir:  cfg.OutputDir,
		Format:     cfg.Format,
		Render:     opt,
		Frames:     cfg.Frames,
		Workers:    cfg.Workers,
		Logger:     logger,
	}
	jobs := sweep.Jobs(sc)
	logger.Info("starting sweep",
		zap.Int("frames", len(jobs)),
		zap.Int("workers", cfg.Workers),
		zap.String("output", cfg.OutputDir))

	results, runErr := sweep.Run(ctx, sc, jobs)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}

	manifest := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := sweep.WriteManifest(manifest, results); err != nil {
		return err
	}
	logger.Info("wrote manifest", zap.String("path", manifest), zap.Int("failed", failed))

	if runErr != nil {
		return runErr
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d frames failed", failed, len(results))
	}
	return nil
}
