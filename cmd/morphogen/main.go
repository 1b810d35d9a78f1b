package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avaldr/morphogen/internal/config"
	"github.com/avaldr/morphogen/internal/field"
	"github.com/avaldr/morphogen/internal/reaction"
	"github.com/avaldr/morphogen/internal/snapshot"
	"github.com/avaldr/morphogen/internal/statsview"
	"github.com/avaldr/morphogen/internal/sweep"
	"github.com/avaldr/morphogen/internal/tui"
	"github.com/avaldr/morphogen/internal/visualizer"
)

//go:embed assets
var assets embed.FS

var (
	configFile string
	logLevel   string
	outDir     string
	profile    bool

	width   int
	height  int
	steps   int
	seed    int64
	preset  string
	channel string
	feed    float64
	kill    float64
	density float64
	speed   float64
	// Diffusion rates and timestep have no flags; presets and config files set them.
	diffU = config.DefaultDiffU
	diffV = config.DefaultDiffV
	simDt = config.DefaultDt
	// Window and shader selection
	title     string
	noVsync   bool
	shaderDir string
	vertFile  string
	fragFile  string
	winWidth  = config.DefaultWindowW
	winHeight = config.DefaultWindowH
	// Frame rate for terminal live view
	frameRate int
	// Snapshot output
	frames int
	scale  int
	// Sweep ranges
	feedMin    float64
	feedMax    float64
	killMin    float64
	killMax    float64
	sweepRows  int
	sweepCols  int
	cellSize   int
	sweepSteps int
	sweepSeed  int64
)

func init() {
	// GLFW event processing must stay on the thread that created the window.
	runtime.LockOSThread()
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "morphogen",
		Short: "reaction-diffusion field visualizer",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initLogger(logLevel); err != nil {
				return err
			}
			if profile {
				if statsview.Available() {
					statsview.Launch(os.Stdout)
				} else {
					fmt.Println("statsview not compiled in (rebuild with -tags statsview)")
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the windowed view of the default model.
			return runView(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "out", "output directory")
	rootCmd.PersistentFlags().BoolVar(&profile, "statsview", false, "serve runtime statistics over http")

	viewCmd := &cobra.Command{
		Use:   "view [model]",
		Short: "render the field in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runView,
	}
	viewCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "field width in cells")
	viewCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "field height in cells")
	viewCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "simulation steps per frame")
	viewCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	viewCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	viewCmd.Flags().StringVar(&channel, "channel", "u", "displayed chemical (grayscott)")
	viewCmd.Flags().Float64Var(&feed, "feed", config.DefaultFeed, "feed rate (grayscott)")
	viewCmd.Flags().Float64Var(&kill, "kill", config.DefaultKill, "kill rate (grayscott)")
	viewCmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "seed density (life)")
	viewCmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "clock speed (plasma)")
	viewCmd.Flags().StringVar(&title, "title", "", "window title")
	viewCmd.Flags().BoolVar(&noVsync, "no-vsync", false, "disable vsync")
	viewCmd.Flags().StringVar(&shaderDir, "shader-dir", "", "load shaders from directory instead of embedded")
	viewCmd.Flags().StringVar(&vertFile, "vert", "quad.vert", "vertex shader file")
	viewCmd.Flags().StringVar(&fragFile, "frag", "field.frag", "fragment shader file")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "render the field in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "field width in cells")
	liveCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "field height in cells")
	liveCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "simulation steps per frame")
	liveCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().StringVar(&channel, "channel", "u", "displayed chemical (grayscott)")
	liveCmd.Flags().Float64Var(&feed, "feed", config.DefaultFeed, "feed rate (grayscott)")
	liveCmd.Flags().Float64Var(&kill, "kill", config.DefaultKill, "kill rate (grayscott)")
	liveCmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "seed density (life)")
	liveCmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "clock speed (plasma)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [model]",
		Short: "advance the field off-screen and write a png",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "field width in cells")
	snapshotCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "field height in cells")
	snapshotCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "simulation steps per frame")
	snapshotCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	snapshotCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	snapshotCmd.Flags().StringVar(&channel, "channel", "u", "displayed chemical (grayscott)")
	snapshotCmd.Flags().Float64Var(&feed, "feed", config.DefaultFeed, "feed rate (grayscott)")
	snapshotCmd.Flags().Float64Var(&kill, "kill", config.DefaultKill, "kill rate (grayscott)")
	snapshotCmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "seed density (life)")
	snapshotCmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "clock speed (plasma)")
	snapshotCmd.Flags().IntVar(&frames, "frames", 500, "frames to advance before capturing")
	snapshotCmd.Flags().IntVar(&scale, "scale", 2, "integer upscale factor")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "tile gray-scott runs over a feed/kill grid",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&feedMin, "feed-min", 0.020, "feed range start")
	sweepCmd.Flags().Float64Var(&feedMax, "feed-max", 0.060, "feed range end")
	sweepCmd.Flags().Float64Var(&killMin, "kill-min", 0.050, "kill range start")
	sweepCmd.Flags().Float64Var(&killMax, "kill-max", 0.070, "kill range end")
	sweepCmd.Flags().IntVar(&sweepRows, "rows", 4, "sweep rows (feed)")
	sweepCmd.Flags().IntVar(&sweepCols, "cols", 4, "sweep columns (kill)")
	sweepCmd.Flags().IntVar(&cellSize, "cell-size", 128, "grid edge per cell")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 2000, "simulation steps per cell")
	sweepCmd.Flags().Int64Var(&sweepSeed, "seed", 42, "random seed")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list models, or the presets of one model",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Println("models:")
				for _, name := range reaction.NewRegistry().ListModels() {
					fmt.Printf("  %s\n", name)
				}
				return nil
			}
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "benchmark model throughput off-screen",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}

	rootCmd.AddCommand(viewCmd, liveCmd, snapshotCmd, sweepCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyPresetAndConfig layers settings onto the flag variables: preset
// first, then config file, with explicitly set flags winning over both.
func applyPresetAndConfig(cmd *cobra.Command, model string) error {
	if preset != "" {
		cfg := config.GetPreset(model, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		if cfg.Steps > 0 && !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("feed") {
			feed = cfg.Params.Feed
		}
		if !cmd.Flags().Changed("kill") {
			kill = cfg.Params.Kill
		}
		if !cmd.Flags().Changed("density") {
			density = cfg.Params.Density
		}
		if !cmd.Flags().Changed("speed") {
			speed = cfg.Params.Speed
		}
		if cfg.Params.DiffusionU != 0 {
			diffU = cfg.Params.DiffusionU
		}
		if cfg.Params.DiffusionV != 0 {
			diffV = cfg.Params.DiffusionV
		}
		if cfg.Params.Dt != 0 {
			simDt = cfg.Params.Dt
		}
		if cfg.Params.Channel != "" && !cmd.Flags().Changed("channel") {
			channel = cfg.Params.Channel
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("width") {
			width = cfg.Width
		}
		if !cmd.Flags().Changed("height") {
			height = cfg.Height
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("feed") {
			feed = cfg.Params.Feed
		}
		if !cmd.Flags().Changed("kill") {
			kill = cfg.Params.Kill
		}
		if !cmd.Flags().Changed("density") {
			density = cfg.Params.Density
		}
		if !cmd.Flags().Changed("speed") {
			speed = cfg.Params.Speed
		}
		if !cmd.Flags().Changed("channel") {
			channel = cfg.Params.Channel
		}
		if !cmd.Flags().Changed("title") {
			title = cfg.Window.Title
		}
		if !cmd.Flags().Changed("no-vsync") {
			noVsync = !cfg.Window.VSync
		}
		if !cmd.Flags().Changed("shader-dir") {
			shaderDir = cfg.Shaders.Dir
		}
		if !cmd.Flags().Changed("vert") {
			vertFile = cfg.Shaders.Vertex
		}
		if !cmd.Flags().Changed("frag") {
			fragFile = cfg.Shaders.Fragment
		}
		if !cmd.Flags().Changed("out") {
			outDir = cfg.OutDir
		}
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
		diffU = cfg.Params.DiffusionU
		diffV = cfg.Params.DiffusionV
		simDt = cfg.Params.Dt
		winWidth = cfg.Window.Width
		winHeight = cfg.Window.Height
	}
	return nil
}

// currentConfig assembles the effective configuration from the flag
// variables after preset and config file application.
func currentConfig(model string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Model = model
	cfg.Width = width
	cfg.Height = height
	cfg.Steps = steps
	cfg.Seed = seed
	cfg.Params = config.ModelParams{
		Feed:       feed,
		Kill:       kill,
		DiffusionU: diffU,
		DiffusionV: diffV,
		Dt:         simDt,
		Channel:    channel,
		Density:    density,
		Speed:      speed,
	}
	if title != "" {
		cfg.Window.Title = title
	}
	cfg.Window.Width = winWidth
	cfg.Window.Height = winHeight
	cfg.Window.VSync = !noVsync
	cfg.Shaders.Dir = shaderDir
	if vertFile != "" {
		cfg.Shaders.Vertex = vertFile
	}
	if fragFile != "" {
		cfg.Shaders.Fragment = fragFile
	}
	cfg.OutDir = outDir
	return cfg
}

func makeSource(cfg *config.Config) (field.Source, error) {
	registry := reaction.NewRegistry()
	return registry.GetSource(cfg.Model, reaction.Params{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Seed:          cfg.Seed,
		StepsPerFrame: cfg.Steps,
		Channel:       cfg.Params.Channel,
		Values:        cfg.GetModelParams(),
	})
}

// shaderFS returns the shader provider: the embedded defaults, or a
// directory when one is configured.
func shaderFS(cfg *config.Config) (fs.FS, error) {
	if cfg.Shaders.Dir != "" {
		return os.DirFS(cfg.Shaders.Dir), nil
	}
	return fs.Sub(assets, "assets")
}

func modelArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.DefaultModel
}

func runView(cmd *cobra.Command, args []string) error {
	model := modelArg(args)
	if err := applyPresetAndConfig(cmd, model); err != nil {
		return err
	}
	cfg := currentConfig(model)

	src, err := makeSource(cfg)
	if err != nil {
		return err
	}
	shaders, err := shaderFS(cfg)
	if err != nil {
		return err
	}

	v, err := visualizer.New(visualizer.Config{
		Title:        cfg.Window.Title,
		FieldWidth:   cfg.Width,
		FieldHeight:  cfg.Height,
		Shaders:      shaders,
		VertexPath:   cfg.Shaders.Vertex,
		FragmentPath: cfg.Shaders.Fragment,
		WindowWidth:  cfg.Window.Width,
		WindowHeight: cfg.Window.Height,
		VSync:        cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer v.Close()

	fmt.Printf("rendering %s (%dx%d field), close the window to stop\n", model, cfg.Width, cfg.Height)
	return v.Run(src)
}

func runLive(cmd *cobra.Command, args []string) error {
	model := modelArg(args)
	if err := applyPresetAndConfig(cmd, model); err != nil {
		return err
	}
	cfg := currentConfig(model)

	src, err := makeSource(cfg)
	if err != nil {
		return err
	}

	m := tui.NewModel(src, model, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	model := modelArg(args)
	if err := applyPresetAndConfig(cmd, model); err != nil {
		return err
	}
	cfg := currentConfig(model)

	src, err := makeSource(cfg)
	if err != nil {
		return err
	}

	if frames < 1 {
		frames = 1
	}
	fmt.Printf("advancing %s for %d frames...\n", model, frames)
	start := time.Now()
	var grid *field.Grid
	for i := 0; i < frames; i++ {
		grid = src.Advance()
	}
	elapsed := time.Since(start)

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return err
	}
	stamp := time.Now().Format("20060102-150405")
	base := filepath.Join(cfg.OutDir, fmt.Sprintf("%s-%s", model, stamp))

	if err := snapshot.WritePNG(base+".png", grid, scale); err != nil {
		return err
	}
	meta := snapshot.Meta{
		Model:         model,
		Width:         cfg.Width,
		Height:        cfg.Height,
		Frames:        frames,
		StepsPerFrame: cfg.Steps,
		Channel:       cfg.Params.Channel,
		Seed:          cfg.Seed,
		Params:        cfg.GetModelParams(),
		Stats:         snapshot.NewStatsMeta(grid),
		CreatedAt:     time.Now(),
	}
	if err := snapshot.WriteMeta(base+".json", meta); err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("wrote %s.png\n", base)
	fmt.Printf("wrote %s.json\n", base)

	s := grid.Stats()
	fmt.Println("\nstats:")
	fmt.Printf("  min: %.6f\n", s.Min)
	fmt.Printf("  max: %.6f\n", s.Max)
	fmt.Printf("  mean: %.6f\n", s.Mean)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	s := sweep.New()
	s.FeedMin, s.FeedMax = feedMin, feedMax
	s.KillMin, s.KillMax = killMin, killMax
	s.Rows, s.Cols = sweepRows, sweepCols
	s.CellSize = cellSize
	s.Steps = sweepSteps
	s.Seed = sweepSeed

	fmt.Printf("sweeping feed %.3f..%.3f x kill %.3f..%.3f (%dx%d cells of %d, %d steps each)\n",
		s.FeedMin, s.FeedMax, s.KillMin, s.KillMax, s.Rows, s.Cols, s.CellSize, s.Steps)
	start := time.Now()

	sheet, cells, err := s.Run(cmd.Context())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(outDir, fmt.Sprintf("sweep-%s.png", time.Now().Format("20060102-150405")))
	if err := snapshot.WriteImage(path, sheet); err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", elapsed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROW\tCOL\tFEED\tKILL")
	for _, c := range cells {
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.4f\n", c.Row, c.Col, c.Feed, c.Kill)
	}
	w.Flush()
	fmt.Printf("\nwrote %s\n", path)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	model := modelArg(args)
	registry := reaction.NewRegistry()

	sizes := []int{128, 256, 512}
	frameCounts := []int{100, 500}

	fmt.Printf("benchmarking %s\n\n", model)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tFRAMES\tTIME\tFRAMES/SEC\tMEAN")

	for _, size := range sizes {
		for _, count := range frameCounts {
			src, err := registry.GetSource(model, reaction.Params{
				Width:  size,
				Height: size,
				Seed:   42,
			})
			if err != nil {
				return err
			}

			start := time.Now()
			var grid *field.Grid
			for i := 0; i < count; i++ {
				grid = src.Advance()
			}
			elapsed := time.Since(start)

			s := grid.Stats()
			fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.1f\t%.4f\n",
				size, size, count, elapsed.Round(time.Millisecond),
				float64(count)/elapsed.Seconds(), s.Mean)
		}
	}
	return w.Flush()
}
