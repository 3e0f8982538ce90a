package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fireworks/internal/config"
	"github.com/san-kum/fireworks/internal/export"
	"github.com/san-kum/fireworks/internal/fireworks"
	"github.com/san-kum/fireworks/internal/raster"
	"github.com/san-kum/fireworks/internal/sim"
	"github.com/san-kum/fireworks/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logFile    string
	logLevel   string
	seed       int64
	frameRate  int
	scale      int
	theme      string
	noPanel    bool
	width      int
	height     int
	frames     int
	warmup     int
	outPath    string
	format     string
	runs       int
)

// main registers the commands and runs the live show when no subcommand
// is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "fireworks",
		Short:        "particle fireworks in the terminal",
		SilenceUsage: true,
		RunE:         runLive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	addLiveFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the show in the terminal",
		RunE:  runLive,
	}
	addLiveFlags(liveCmd)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the show headless to a gif or svg",
		RunE:  runRender,
	}
	addHeadlessFlags(renderCmd)
	renderCmd.Flags().StringVar(&outPath, "out", config.DefaultOutput, "output file")
	renderCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "output format (gif, svg)")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "run the show headless and report population metrics",
		RunE:  runStats,
	}
	addHeadlessFlags(statsCmd)
	statsCmd.Flags().IntVar(&runs, "runs", 1, "run this many seeds in parallel and summarise them")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFPS\tSIZE\tFRAMES\tOUTPUT")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%dx%d\t%d\t%s\n",
					name, p.FPS, p.Render.Width, p.Render.Height, p.Render.Frames, p.Render.Output)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(liveCmd, renderCmd, statsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addLiveFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&scale, "scale", config.DefaultScale, "surface pixels per braille dot")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "panel theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	cmd.Flags().BoolVar(&noPanel, "no-panel", false, "hide the stats panel")
}

func addHeadlessFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "surface width in pixels")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "surface height in pixels")
	cmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to run")
	cmd.Flags().IntVar(&warmup, "warmup", 0, "frames to run before recording")
}

// resolveConfig layers defaults, the preset, the config file and finally
// any flag the user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", config.ErrUnknownPreset, preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("no-panel") {
		cfg.Panel = !noPanel
	}
	if flags.Changed("log") {
		cfg.Log.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("width") {
		cfg.Render.Width = width
	}
	if flags.Changed("height") {
		cfg.Render.Height = height
	}
	if flags.Changed("frames") {
		cfg.Render.Frames = frames
	}
	if flags.Changed("warmup") {
		cfg.Render.Warmup = warmup
	}
	if flags.Changed("out") {
		cfg.Render.Output = outPath
	}
	if flags.Changed("format") {
		cfg.Render.Format = strings.ToLower(format)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// headlessLogger logs to cfg.File when set, appending, and to fallback
// otherwise.
func headlessLogger(fallback io.Writer, cfg config.LogConfig) (*slog.Logger, func() error, error) {
	if cfg.File == "" {
		return newLogger(fallback, cfg.Level), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return newLogger(f, cfg.Level), f.Close, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// stdout belongs to the TUI
	logger := newLogger(io.Discard, cfg.Log.Level)
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "fireworks")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = newLogger(f, cfg.Log.Level)
	}
	logger.Info("starting live show", "fps", cfg.FPS, "seed", cfg.Seed, "scale", cfg.Scale, "theme", cfg.Theme)

	return viz.Run(viz.Options{
		FPS:    cfg.FPS,
		Scale:  cfg.Scale,
		Seed:   cfg.Seed,
		Panel:  cfg.Panel,
		Theme:  cfg.Theme,
		Logger: logger,
	})
}

func simConfig(cfg *config.Config) sim.Config {
	return sim.Config{
		Width:  cfg.Render.Width,
		Height: cfg.Render.Height,
		Frames: cfg.Render.Frames,
		Warmup: cfg.Render.Warmup,
		Seed:   cfg.Seed,
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	out, err := export.ParseFormat(cfg.Render.Format)
	if err != nil {
		return err
	}
	logger, closeLog, err := headlessLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sink, err := export.Create(cfg.Render.Output, out, cfg.FPS)
	if err != nil {
		return err
	}
	last := cfg.Render.Warmup + cfg.Render.Frames
	capture := func(fb *raster.Framebuffer, c fireworks.Census) error {
		if out == export.FormatGIF || c.Frame == last {
			return sink.Capture(fb.Image())
		}
		return nil
	}

	result, err := sim.New(simConfig(cfg), sim.WithLogger(logger), sim.WithFrameHook(capture)).Run(ctx)
	if err != nil {
		sink.Discard()
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}

	logger.Info("render complete",
		"output", cfg.Render.Output,
		"format", out,
		"frames", sink.Frames(),
		"elapsed", result.Elapsed,
	)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d frames, %dx%d)\n",
		cfg.Render.Output, sink.Frames(), cfg.Render.Width, cfg.Render.Height)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := headlessLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	o := cmd.OutOrStdout()
	if runs > 1 {
		results, err := sim.NewEnsemble(simConfig(cfg), runs, cfg.Seed, logger).Run(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(o, "ran %d shows of %d frames on %dx%d (seeds %d..%d)\n\n",
			runs, cfg.Render.Frames, cfg.Render.Width, cfg.Render.Height, cfg.Seed, cfg.Seed+int64(runs)-1)

		w := tabwriter.NewWriter(o, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "METRIC\tMEAN\tMIN\tMAX")
		for _, s := range sim.Summarize(results) {
			fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n", s.Name, s.Mean, s.Min, s.Max)
		}
		return w.Flush()
	}

	result, err := sim.New(simConfig(cfg), sim.WithLogger(logger)).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(o, "ran %d frames on %dx%d in %v (seed %d)\n\n",
		result.Frames, cfg.Render.Width, cfg.Render.Height, result.Elapsed, result.Seed)

	w := tabwriter.NewWriter(o, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Fprintf(w, "%s\t%.2f\n", name, result.Metrics[name])
	}
	fmt.Fprintf(w, "final_rockets\t%d\n", result.Final.Rockets)
	fmt.Fprintf(w, "final_particles\t%d\n", result.Final.Particles)
	if err := w.Flush(); err != nil {
		return err
	}

	if len(result.History) > 1 {
		graph := asciigraph.Plot(result.History,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("live entities per frame"),
		)
		fmt.Fprintln(o)
		fmt.Fprintln(o, graph)
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
