package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/timeflow/internal/config"
	"github.com/san-kum/timeflow/internal/export"
	"github.com/san-kum/timeflow/internal/gui"
	"github.com/san-kum/timeflow/internal/logging"
	"github.com/san-kum/timeflow/internal/metrics"
	"github.com/san-kum/timeflow/internal/playback"
	"github.com/san-kum/timeflow/internal/script"
	"github.com/san-kum/timeflow/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	debug      bool
	timeScale  float64
	maxFrames  int
	// live views
	frameRate int
	theme     string
	// headless runs
	ticks      int
	scriptFile string
	jsonOut    string
	csvOut     string
	svgOut     string
	showPlot   bool
	save       bool
	runName    string
	scales     []float64
	// schema
	traceSchema bool
)

// main registers the timeflow commands and flags, launches the terminal view
// when no subcommand is given, and exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "timeflow",
		Short:        "particle sandbox with a scrubbable timeline",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".timeflow", "data directory for saved runs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVar(&debug, "debug", false, "write a debug log")
	pf.Float64Var(&timeScale, "time-scale", config.DefaultTimeScale, "simulation speed multiplier")
	pf.IntVar(&maxFrames, "max-frames", 0, "history cap, 0 keeps every frame")

	rootCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the sandbox in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the sandbox in a desktop window",
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless, optionally from a scenario",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 300, "ticks to run (a scenario's own length when omitted)")
	runCmd.Flags().StringVar(&scriptFile, "script", "", "scenario file (yaml)")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "write the trace as JSON ('-' for stdout)")
	runCmd.Flags().StringVar(&csvOut, "csv", "", "write per-frame rows as CSV")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "render the final frame as SVG")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the recorded history")
	runCmd.Flags().BoolVar(&save, "save", false, "save the run to the data directory")
	runCmd.Flags().StringVar(&runName, "name", "run", "name for a saved run")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "replay a scenario across time scales",
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&ticks, "ticks", 0, "ticks per replay (the scenario's own length when 0)")
	sweepCmd.Flags().StringVar(&scriptFile, "script", "", "scenario file (yaml)")
	sweepCmd.Flags().Float64SliceVar(&scales, "scales", []float64{0.25, 0.5, 1, 2, 4}, "time scales to replay at")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "print the JSON schema of exported frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := export.FrameSchema()
			if traceSchema {
				s = export.TraceSchema()
			}
			out, err := export.MarshalSchema(s)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	schemaCmd.Flags().BoolVar(&traceSchema, "trace", false, "schema of a whole trace instead of one frame")

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, sweepCmd, listCmd, plotCmd, presetsCmd, configCmd, schemaCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers the preset, then the config file, then explicit flags
// over the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if err := cfg.Apply(preset); err != nil {
			return nil, err
		}
	}
	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("time-scale") {
		cfg.TimeScale = playback.QuantizeTimeScale(timeScale)
	}
	if cmd.Flags().Changed("max-frames") && maxFrames >= 0 {
		cfg.MaxFrames = maxFrames
	}
	if cmd.Flags().Changed("fps") && frameRate > 0 {
		cfg.FPS = frameRate
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	return cfg, nil
}

func setup(cmd *cobra.Command) (*config.Config, *logging.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	l, err := logging.Setup(debug, cfg.LogDir)
	if err != nil {
		return nil, nil, err
	}
	l.Debug("config", "preset", preset, "file", configFile, "time_scale", cfg.TimeScale, "fps", cfg.FPS)
	return cfg, l, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup(cmd)
	if err != nil {
		return err
	}
	defer l.Close()

	s := playback.New(cfg.Settings(), playback.WithLogger(l.Logger))
	return viz.Run(s, viz.Options{FPS: cfg.FPS, Theme: cfg.Theme})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup(cmd)
	if err != nil {
		return err
	}
	defer l.Close()

	fps := cfg.FPS
	if cmd.Flags().Changed("fps") {
		fps = frameRate
	} else if fps < 60 {
		fps = 60
	}

	s := playback.New(cfg.Settings(), playback.WithLogger(l.Logger))
	gui.Run(s, gui.Options{FPS: fps, Title: "timeflow"})
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup(cmd)
	if err != nil {
		return err
	}
	defer l.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	progress := playback.ObserverFunc(func(s *playback.Session, tick int, advanced bool) {
		if tick > 0 && tick%100 == 0 {
			s.Logger().Debug("progress", "tick", tick, "frames", s.Timeline().FrameCount())
		}
	})

	var (
		s   *playback.Session
		res *playback.Result
	)
	if scriptFile != "" {
		sc, err := script.Load(scriptFile)
		if err != nil {
			return err
		}
		schedule, err := sc.Schedule()
		if err != nil {
			return err
		}
		n := ticks
		if !cmd.Flags().Changed("ticks") {
			n = sc.Length()
		}
		fmt.Printf("running scenario %s...\n", sc.Name)
		s = playback.New(cfg.Settings(), playback.WithLogger(l.Logger))
		res, err = playback.Run(ctx, s, n, schedule, progress)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	} else {
		fmt.Println("running...")
		s = playback.New(cfg.Settings(), playback.WithLogger(l.Logger))
		res, err = playback.Run(ctx, s, ticks, nil, progress)
		if err != nil {
			return err
		}
	}

	frames := s.Timeline().Frames()
	m := metrics.Evaluate(frames, metrics.Defaults())

	st := res.Status
	fmt.Printf("session: %s\n", s.ID())
	fmt.Printf("ticks: %d (advanced %d, inputs %d)\n", res.Ticks, res.Advanced, res.Inputs)
	fmt.Printf("frames: %d, cursor: %d, mode: %s, speed: %s\n", st.Frames, st.Cursor, st.Mode, st.TimeScaleLabel)
	fmt.Println("\nmetrics:")
	printMetrics(m)

	trace := export.NewTrace(s, m)
	if jsonOut == "-" {
		if err := export.WriteJSON(os.Stdout, trace); err != nil {
			return err
		}
	} else if jsonOut != "" {
		if err := export.SaveJSON(jsonOut, trace); err != nil {
			return err
		}
		fmt.Printf("trace: %s\n", jsonOut)
	}
	if csvOut != "" {
		if err := export.SaveCSV(csvOut, frames); err != nil {
			return err
		}
		fmt.Printf("csv: %s\n", csvOut)
	}
	if svgOut != "" {
		if err := writeSVG(svgOut, s); err != nil {
			return err
		}
		fmt.Printf("svg: %s\n", svgOut)
	}
	if save {
		store := export.NewStore(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		id, err := store.Save(runName, trace)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", id)
	}
	if showPlot {
		fmt.Println()
		series := s.Timeline().Series()
		plotSeries(series.RingCount, "rings per frame")
		plotSeries(series.ParticleY, "particle y")
	}
	return nil
}

func writeSVG(path string, s *playback.Session) error {
	vp := s.Viewport()
	svg := export.NewSVG(vp.Width, vp.Height, s.ID())
	series := s.Timeline().SeriesRange(0, s.Timeline().CurrentIndex()+1)
	s.Render(svg)
	svg.Trail(series.ParticleX, series.ParticleY)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = svg.WriteTo(f)
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	if scriptFile == "" {
		return fmt.Errorf("sweep needs --script")
	}
	cfg, l, err := setup(cmd)
	if err != nil {
		return err
	}
	defer l.Close()

	sc, err := script.Load(scriptFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := script.SweepTimeScales(ctx, sc, cfg.Settings(), ticks, scales, playback.WithLogger(l.Logger))
	if err != nil {
		return err
	}

	fmt.Printf("sweeping %s across %d time scales\n\n", sc.Name, len(scales))
	names := metricNames()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "SCALE\tFRAMES")
	for _, name := range names {
		fmt.Fprintf(w, "\t%s", name)
	}
	fmt.Fprintln(w)
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d", playback.TimeScaleLabel(r.TimeScale), r.Frames)
		for _, name := range names {
			fmt.Fprintf(w, "\t%.3f", r.Metrics[name])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := export.NewStore(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tFRAMES\tSPEED\tPEAK RINGS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%.0f\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			playback.TimeScaleLabel(run.TimeScale),
			run.Metrics["peak_rings"],
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := export.NewStore(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return err
	}
	rows, err := st.LoadRows(id)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d\n\n", len(rows))

	ys := make([]float64, len(rows))
	rings := make([]float64, len(rows))
	radius := make([]float64, len(rows))
	for i, r := range rows {
		ys[i] = r.Y
		rings[i] = float64(r.Rings)
		radius[i] = r.MaxRadius
	}
	plotSeries(ys, "particle y")
	plotSeries(rings, "rings per frame")
	plotSeries(radius, "largest ring radius")
	return nil
}

func plotSeries(data []float64, caption string) {
	if len(data) == 0 {
		return
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	fmt.Println()
}

func metricNames() []string {
	var names []string
	for _, m := range metrics.Defaults() {
		names = append(names, m.Name())
	}
	return names
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}
