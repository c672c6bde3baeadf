package main

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"biped-anim/internal/phase"
	"biped-anim/internal/postprocess"
	"biped-anim/internal/raster"
	sk "biped-anim/internal/skeleton"
)

var (
	renderFrame frameFlags
	renderOut   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one program as a contact sheet",
	Long: `Render one program across its buildup, action and recover sections.
Each section is a row of the sheet; columns are evenly spaced phase samples.`,
	RunE: runRender,
}

func init() {
	renderFrame.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (default: <output>/<tool>_<ability>.<format>)")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx, species, attr, err := renderFrame.resolve()
	if err != nil {
		return err
	}

	opt := raster.DefaultOptions()
	opt.Size = cfg.RenderSize
	opt.Supersample = cfg.Supersample

	times := sampleTimes(cfg.Frames)
	rest := sk.Rest(attr)
	var frames []*image.NRGBA
	for _, stage := range phase.Sections() {
		ctx.Stage = stage
		for _, t := range times {
			next, _ := animator.Update(rest, ctx, t, attr)
			frames = append(frames, raster.RenderPose(next, opt))
		}
	}
	sheet := postprocess.Sheet(frames, len(times), opt.Size/16)

	path := renderOut
	if path == "" {
		name := ctx.AbilityID
		if name == "" {
			name = "default"
		}
		name = strings.ReplaceAll(name, "/", "_")
		path = filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%s%s", ctx.ActiveTool, name, raster.Ext(cfg.Format)))
	}
	if err := raster.WriteFile(path, sheet, cfg.Format); err != nil {
		return err
	}

	logger.Info("rendered sheet",
		zap.String("path", path),
		zap.String("species", species),
		zap.Int("frames", len(frames)))
	return nil
}
