// Package sweep renders every registered pose program across its stage
// sections on a worker pool and records the frames in a manifest.
package sweep

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"biped-anim/internal/archetype"
	"biped-anim/internal/phase"
	"biped-anim/internal/pose"
	"biped-anim/internal/postprocess"
	"biped-anim/internal/raster"
	sk "biped-anim/internal/skeleton"
)

// Config holds all shared resources for a sweep.
type Config struct {
	Animator   *pose.Animator
	Archetypes *archetype.Table
	// Species renders keys whose ability has no owning species.
	Species   string
	OutputDir string
	Format    string
	Render    raster.Options
	Frames    int
	Workers   int
	Logger    *zap.Logger
	// Progress is the interval between progress log lines.
	Progress time.Duration
}

// Job is one frame to render.
type Job struct {
	Key     pose.Key
	Species string
	Stage   phase.Section
	Frame   int
	Time    float64
}

// Result holds the outcome of rendering one job.
type Result struct {
	Job
	Image   string
	Bounds  image.Rectangle
	Success bool
	Error   string
}

// Jobs lists a job per table key, stage section and phase sample. Sample
// times are spread evenly over [0, 1], both ends included.
func Jobs(cfg Config) []Job {
	frames := max(cfg.Frames, 1)
	var jobs []Job
	for _, k := range cfg.Animator.Table().Keys() {
		species, ok := archetype.Owner(k.Ability)
		if !ok {
			species = cfg.Species
		}
		for _, stage := range phase.Sections() {
			for i := 0; i < frames; i++ {
				t := 0.0
				if frames > 1 {
					t = float64(i) / float64(frames-1)
				}
				jobs = append(jobs, Job{Key: k, Species: species, Stage: stage, Frame: i, Time: t})
			}
		}
	}
	return jobs
}

// Path returns the image path of a job relative to the output directory.
func Path(j Job, format string) string {
	ability := j.Key.Ability
	if ability == "" {
		ability = "_default"
	}
	ability = strings.ReplaceAll(ability, "/", "_")
	name := fmt.Sprintf("%s_%02d%s", j.Stage, j.Frame, raster.Ext(format))
	return filepath.Join(j.Key.Tool.String(), ability, name)
}

// Run renders all jobs using a worker pool. Failed frames are reported in
// their Result; only cancellation of ctx aborts the sweep.
func Run(ctx context.Context, cfg Config, jobs []Job) ([]Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := max(cfg.Workers, 1)
	interval := cfg.Progress
	if interval <= 0 {
		interval = 2 * time.Second
	}

	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	reported := make(chan struct{})
	go func() {
		defer close(reported)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Info("sweep progress",
						zap.Int64("done", p),
						zap.Int("total", total),
						zap.Float64("frames_per_sec", rate))
				}
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	queue := make(chan int, workers*2)

	g.Go(func() error {
		defer close(queue)
		for i := range jobs {
			select {
			case queue <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for idx := range queue {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[idx] = render(cfg, jobs[idx])
				if !results[idx].Success {
					logger.Warn("frame failed",
						zap.String("key", jobs[idx].Key.String()),
						zap.Stringer("stage", jobs[idx].Stage),
						zap.Int("frame", jobs[idx].Frame),
						zap.String("error", results[idx].Error))
				}
				processed.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	close(done)
	<-reported

	logger.Info("sweep finished",
		zap.Int64("done", processed.Load()),
		zap.Int("total", total),
		zap.Duration("elapsed", time.Since(start)))
	if err != nil {
		return results, fmt.Errorf("sweep: %w", err)
	}
	return results, nil
}

// Frame computes the pose of one job from its species' rest pose.
func Frame(cfg Config, j Job) (sk.Skeleton, error) {
	attr, err := cfg.Archetypes.Lookup(j.Species)
	if err != nil {
		return sk.Skeleton{}, err
	}
	ctx := pose.Context{
		ActiveTool: j.Key.Tool,
		AbilityID:  j.Key.Ability,
		Stage:      j.Stage,
	}
	next, _ := cfg.Animator.Update(sk.Rest(attr), ctx, j.Time, attr)
	return next, nil
}

func render(cfg Config, j Job) Result {
	res := Result{Job: j, Image: Path(j, cfg.Format)}

	s, err := Frame(cfg, j)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	img := raster.RenderPose(s, cfg.Render)
	res.Bounds = postprocess.AlphaBounds(img)

	if err := raster.WriteFile(filepath.Join(cfg.OutputDir, res.Image), img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}
