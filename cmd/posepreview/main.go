// Command posepreview inspects and renders the large-biped pose programs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"biped-anim/internal/ability"
	"biped-anim/internal/archetype"
	"biped-anim/internal/config"
	"biped-anim/internal/gait"
	"biped-anim/internal/logging"
	"biped-anim/internal/pose"
)

var (
	// Global flags
	configFile string
	flags      config.Flags
	jsonLogs   bool

	// Set up by the root command before any subcommand runs
	cfg        config.Config
	logger     *zap.Logger
	animator   *pose.Animator
	archetypes *archetype.Table
)

var rootCmd = &cobra.Command{
	Use:   "posepreview",
	Short: "Inspect and render large-biped ability poses",
	Long: `posepreview drives the pose engine outside the game: it lists the
registered pose programs, dumps single frames as JSON and renders stick-figure
previews of every program across its buildup, action and recover sections.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			var err error
			cfg, err = config.Load(configFile)
			if err != nil {
				return err
			}
		}
		cfg.Resolve(flags)
		if err := cfg.Validate(); err != nil {
			return err
		}

		var err error
		logger, err = logging.New(cfg.LogLevel, jsonLogs)
		if err != nil {
			return err
		}

		catalog := ability.Builtin()
		if cfg.AbilityFile != "" {
			catalog, err = ability.LoadFile(cfg.AbilityFile)
			if err != nil {
				return err
			}
			logger.Debug("loaded ability catalog", zap.String("path", cfg.AbilityFile), zap.Int("ids", len(catalog)))
		}

		archetypes, err = archetype.LoadFile(cfg.ArchetypeFile)
		if err != nil {
			return err
		}

		table, err := pose.DefaultTable(catalog)
		if err != nil {
			return err
		}
		animator = pose.NewAnimator(table, gait.DefaultParams())
		logger.Debug("pose table ready", zap.Int("programs", table.Len()), zap.Int("species", len(archetypes.Names())))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Path to config.json file")
	pf.StringVar(&flags.BaseDir, "data", "", "Base directory for data files (default: cwd)")
	pf.StringVar(&flags.ArchetypeFile, "archetypes", "", "YAML archetype overrides (default: archetypes.yaml in data dir)")
	pf.StringVar(&flags.AbilityFile, "abilities", "", "YAML ability list (default: abilities.yaml in data dir)")
	pf.StringVar(&flags.OutputDir, "output", "", "Output directory (default: pose-renders)")
	pf.StringVar(&flags.Format, "format", "", "Image format: webp or tga (default: webp)")
	pf.IntVar(&flags.Size, "size", 0, "Output image size in pixels (default: 256)")
	pf.IntVar(&flags.Frames, "frames", 0, "Phase samples per stage section (default: 8)")
	pf.IntVar(&flags.Workers, "workers", 0, "Number of worker goroutines (default: NumCPU)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&jsonLogs, "json-logs", false, "Emit structured JSON logs")

	rootCmd.AddCommand(programsCmd, dumpCmd, renderCmd, sweepCmd)
}
