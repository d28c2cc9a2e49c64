package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/san-kum/ratiolab/internal/config"
	"github.com/san-kum/ratiolab/internal/export"
	"github.com/san-kum/ratiolab/internal/feedback"
	"github.com/san-kum/ratiolab/internal/geom"
	"github.com/san-kum/ratiolab/internal/gui"
	"github.com/san-kum/ratiolab/internal/logging"
	"github.com/san-kum/ratiolab/internal/panel"
	"github.com/san-kum/ratiolab/internal/render"
	"github.com/san-kum/ratiolab/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	mute       bool
	theme      string
	steps      int
	asJSON     bool
	format     string
	outFile    string
	width      int
	analyze    bool
)

// main registers the ratiolab commands and launches the terminal front end
// when no subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "ratiolab",
		Short:        "√2 and golden ratio proportion lab",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolVar(&mute, "mute", false, "disable sound cues")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal front end",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "windowed front end",
		RunE:  runGUI,
	}

	sequenceCmd := &cobra.Command{
		Use:   "sequence [root2|golden]",
		Short: "print the subdivision sequence of a panel",
		Args:  cobra.ExactArgs(1),
		RunE:  printSequence,
	}
	sequenceCmd.Flags().IntVar(&steps, "steps", -1, "number of steps (default: panel maximum)")
	sequenceCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	exportCmd := &cobra.Command{
		Use:   "export [root2|golden]",
		Short: "export panels as SVG or PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportPanels,
	}
	exportCmd.Flags().IntVar(&steps, "steps", -1, "number of steps (default: panel maximum)")
	exportCmd.Flags().StringVar(&format, "format", config.DefaultExportFormat, "svg or png")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file")
	exportCmd.Flags().IntVar(&width, "width", config.DefaultExportWidth, "panel width in pixels")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare the two ratios",
		Args:  cobra.NoArgs,
		RunE:  compareRatios,
	}

	cueCmd := &cobra.Command{
		Use:   "cue [click|swoosh|pop]",
		Short: "play a feedback cue",
		Args:  cobra.ExactArgs(1),
		RunE:  playCue,
	}
	cueCmd.Flags().BoolVar(&analyze, "analyze", false, "print the cue's dominant frequencies")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			for _, name := range viz.ThemeNames() {
				marker := " "
				if name == cfg.Theme {
					marker = "*"
				}
				fmt.Printf("%s %s\n", marker, name)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, sequenceCmd, exportCmd, compareCmd, cueCmd, themesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, preset, config file and explicit flags, in
// that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
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
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("mute") && mute {
		cfg.Audio.Enabled = false
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	return cfg, nil
}

// newLogger logs to a file under the data directory for full-screen front
// ends and to stderr otherwise.
func newLogger(cfg *config.Config, toFile bool) (*zap.Logger, error) {
	path := ""
	if toFile {
		path = filepath.Join(cfg.DataDir, "ratiolab.log")
	}
	return logging.New(cfg.LogLevel, path)
}

// newNotifier opens the audio device. Without audio every cue is dropped
// silently; the returned func releases the device.
func newNotifier(cfg *config.Config, log *zap.Logger) (panel.Notifier, func()) {
	if !cfg.Audio.Enabled {
		return feedback.Nop{}, func() {}
	}
	dev, err := feedback.OpenDevice()
	if err != nil {
		log.Warn("audio unavailable, cues disabled", zap.Error(err))
		return feedback.Nop{}, func() {}
	}
	player := feedback.NewPlayer(dev, cfg.Audio.Volume, log)
	return player, func() {
		player.Close()
		if err := dev.Close(); err != nil {
			log.Warn("closing audio device", zap.Error(err))
		}
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer log.Sync()

	notify, closeAudio := newNotifier(cfg, log)
	defer closeAudio()

	log.Info("starting tui", zap.String("theme", cfg.Theme), zap.Bool("audio", cfg.Audio.Enabled))
	return viz.Run(viz.Options{
		Theme:     cfg.Theme,
		FPS:       cfg.FPS,
		Viewport:  cfg.Viewport,
		ExportDir: cfg.Export.Dir,
		Notifier:  notify,
		Logger:    log,
	})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer log.Sync()

	notify, closeAudio := newNotifier(cfg, log)
	defer closeAudio()

	log.Info("starting gui", zap.Int("fps", cfg.FPS))
	return gui.Run(gui.Options{
		FPS:       cfg.FPS,
		Viewport:  cfg.Viewport,
		ExportDir: cfg.Export.Dir,
		Notifier:  notify,
		Logger:    log,
	})
}

// advanced returns a panel moved n steps forward. Negative n means the
// panel maximum; steps past the maximum are ignored by the controller.
func advanced(name string, n int) (panel.Panel, error) {
	p, err := panel.NewRegistry().Get(name, nil)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, panel.NewRegistry().Names())
	}
	if n < 0 {
		n = p.Controller().Max()
	}
	for i := 0; i < n; i++ {
		if !p.Controller().Advance() {
			break
		}
	}
	return p, nil
}

type sequenceRow struct {
	Step        int     `json:"step"`
	Orientation string  `json:"orientation,omitempty"`
	Square      float64 `json:"square,omitempty"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Ratio       float64 `json:"ratio"`
}

func printSequence(cmd *cobra.Command, args []string) error {
	p, err := advanced(args[0], steps)
	if err != nil {
		return err
	}
	k := p.Controller().Step()

	var rows []sequenceRow
	switch p.Name() {
	case "root2":
		for _, s := range geom.Subdivide(geom.RootTwoBase, k) {
			rows = append(rows, sequenceRow{Step: s.Level, Width: s.Rect.W, Height: s.Rect.H, Ratio: s.Rect.Ratio()})
		}
	case "golden":
		base := geom.GoldenRect(geom.GoldenBase)
		rows = append(rows, sequenceRow{Width: base.W, Height: base.H, Ratio: base.Ratio()})
		for _, s := range geom.Whirl(geom.GoldenBase, k-1) {
			rows = append(rows, sequenceRow{
				Step:        s.Index + 1,
				Orientation: s.Orientation.String(),
				Square:      s.Size(),
				Width:       s.Remainder.W,
				Height:      s.Remainder.H,
				Ratio:       s.Remainder.Ratio(),
			})
		}
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tCUT\tSQUARE\tWIDTH\tHEIGHT\tRATIO")
	for _, r := range rows {
		cut, sq := "-", "-"
		if r.Orientation != "" {
			cut, sq = r.Orientation, fmt.Sprintf("%.3f", r.Square)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.3f\t%.3f\t%.6f\n", r.Step, cut, sq, r.Width, r.Height, r.Ratio)
	}
	return w.Flush()
}

func exportPanels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	if !cmd.Flags().Changed("format") {
		format = cfg.Export.Format
	}
	if !cmd.Flags().Changed("width") {
		width = cfg.Export.Width
	}

	names := []string{"root2", "golden"}
	if len(args) == 1 {
		names = args
	}

	var scenes []render.Scene
	var at []int
	for _, name := range names {
		p, err := advanced(name, steps)
		if err != nil {
			return err
		}
		scenes = append(scenes, render.ProjectAt(p.Frame(), float64(width)))
		at = append(at, p.Controller().Step())
	}

	path := outFile
	if path == "" {
		path = filepath.Join(cfg.Export.Dir, export.FileName(format, scenes, at))
	}
	if err := export.WriteFile(path, format, scenes); err != nil {
		return err
	}
	log.Info("exported", zap.String("path", path), zap.String("format", format), zap.Ints("steps", at))
	fmt.Printf("wrote %s\n", path)
	return nil
}

func compareRatios(cmd *cobra.Command, args []string) error {
	c := geom.Compare(viz.ComparisonHeight)
	fmt.Println(viz.ComparisonChart(60, 10))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RATIO\tVALUE\tWIDTH AT H=300")
	fmt.Fprintf(w, "1:√2\t%.6f\t%.2f\n", geom.Sqrt2, c.RootTwoWidth)
	fmt.Fprintf(w, "1:φ\t%.6f\t%.2f\n", geom.Phi, c.GoldenWidth)
	fmt.Fprintf(w, "difference\t%.6f\t%.2f\n", geom.Phi-geom.Sqrt2, c.Difference())
	if err := w.Flush(); err != nil {
		return err
	}

	r2, gd := geom.DeriveRootTwo(), geom.DeriveGolden()
	fmt.Printf("\nderived: diagonal of the unit square = %.9f, midpoint construction = %.9f\n", r2.Value, gd.Value)
	return nil
}

func playCue(cmd *cobra.Command, args []string) error {
	c, err := feedback.ParseCue(strings.ToLower(args[0]))
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	samples := feedback.Render(c, feedback.SampleRate, cfg.Audio.Volume)
	length := float64(len(samples)) / feedback.SampleRate

	if analyze {
		const win = 0.02
		head := feedback.Window(samples, feedback.SampleRate, 0, win)
		tail := feedback.Window(samples, feedback.SampleRate, length-win, length)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CUE\tLENGTH\tSAMPLES\tSTART HZ\tEND HZ")
		fmt.Fprintf(w, "%s\t%.0f ms\t%d\t%.0f\t%.0f\n", c, length*1000, len(samples),
			feedback.DominantFrequency(head, feedback.SampleRate),
			feedback.DominantFrequency(tail, feedback.SampleRate))
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if !cfg.Audio.Enabled {
		return nil
	}
	dev, err := feedback.OpenDevice()
	if err != nil {
		log.Warn("audio unavailable", zap.String("cue", c.String()), zap.Error(err))
		return nil
	}
	defer dev.Close()
	if err := dev.Play(samples); err != nil {
		return err
	}
	time.Sleep(time.Duration(length*float64(time.Second)) + 100*time.Millisecond)
	return nil
}
