package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/san-kum/shapeshift/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFile string
	preset     string
	verbose    bool
	logFile    string

	seed       int64
	points     int
	radius     float64
	morphMs    int
	intervalMs int
	shapeNames []string
	fps        int
	theme      string

	// play
	plain    bool
	playTime float64

	// trace
	traceTime float64
	traceOut  string

	// export
	format   string
	outPath  string
	cols     int
	rows     int
	svgScale float64

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shapeshift",
		Short: "particle shapes that morph into each other",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(isInteractive(cmd))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runPlay,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file (interactive views log nowhere otherwise)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.IntVar(&points, "points", config.DefaultPoints, "particle count")
	pf.Float64Var(&radius, "radius", config.DefaultRadius, "base shape radius")
	pf.IntVar(&morphMs, "morph-ms", config.DefaultMorphMs, "morph duration in milliseconds")
	pf.IntVar(&intervalMs, "interval-ms", config.DefaultIntervalMs, "shape change interval in milliseconds")
	pf.StringSliceVar(&shapeNames, "shapes", nil, "shapes to cycle through (default all)")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "watch the shapes morph",
		RunE:  runPlay,
	}
	playCmd.Flags().BoolVar(&plain, "plain", false, "plain ANSI output instead of the full-screen view")
	playCmd.Flags().Float64Var(&playTime, "time", 0, "stop after this many seconds (plain mode, 0 runs until interrupted)")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run the morph headless on simulated time and plot it",
		RunE:  runTrace,
	}
	traceCmd.Flags().Float64Var(&traceTime, "time", 12, "simulated seconds")
	traceCmd.Flags().StringVar(&traceOut, "json", "", "also write the per-frame samples to this json file")

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "list shapes with point cloud statistics",
		RunE:  listShapes,
	}

	exportCmd := &cobra.Command{
		Use:   "export [shape]",
		Short: "write one generated shape as svg or csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportShape,
	}
	exportCmd.Flags().StringVar(&format, "format", "svg", "svg or csv")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <shape>-<id>.<format>)")
	exportCmd.Flags().IntVar(&cols, "cols", 60, "svg canvas width in cells")
	exportCmd.Flags().IntVar(&rows, "rows", 30, "svg canvas height in cells")
	exportCmd.Flags().Float64Var(&svgScale, "scale", 4, "svg pixels per dot")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(playCmd, traceCmd, shapesCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd.Name() == "shapeshift" || cmd.Name() == "play"
}

// newLogger logs to stderr for batch commands. Interactive views own the
// terminal, so they log only to --log-file.
func newLogger(interactive bool) (*zap.Logger, error) {
	if interactive && logFile == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if logFile != "" {
		cfg.OutputPaths = []string{logFile}
		cfg.ErrorOutputPaths = []string{logFile}
	}
	return cfg.Build()
}

// loadConfig resolves preset, then file, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("points") {
		cfg.Points = points
	}
	if flags.Changed("radius") {
		cfg.Radius = radius
	}
	if flags.Changed("morph-ms") {
		cfg.MorphMs = morphMs
	}
	if flags.Changed("interval-ms") {
		cfg.IntervalMs = intervalMs
	}
	if flags.Changed("shapes") {
		cfg.Shapes = shapeNames
	}
	if flags.Changed("fps") {
		cfg.Render.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.Render.Theme = theme
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
