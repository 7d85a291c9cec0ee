package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/neurospark/internal/config"
	"github.com/san-kum/neurospark/internal/export"
	"github.com/san-kum/neurospark/internal/fleet"
	"github.com/san-kum/neurospark/internal/logging"
	"github.com/san-kum/neurospark/internal/viz"
)

var (
	configFile   string
	fixturesFile string
	presetName   string
	themeName    string
	logLevel     string
	logFormat    string
	// trace and reveal
	duration  time.Duration
	tick      time.Duration
	realtime  bool
	format    string
	frameRate int
	// dashboard
	watch bool
	// fixtures
	validateOnly bool
	// config init
	force bool

	cfg *config.Config
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "neurospark",
		Short:             "solar robot fleet console",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runLanding,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&fixturesFile, "fixtures", "", "fixture file overriding the built-in data")
	pf.StringVar(&presetName, "preset", "", "animation preset")
	pf.StringVar(&themeName, "theme", "", "color theme")
	pf.StringVar(&logLevel, "log-level", "", "debug|info|warn|error")
	pf.StringVar(&logFormat, "log-format", "", "text|json")

	landingCmd := &cobra.Command{
		Use:   "landing",
		Short: "open the landing page",
		Args:  cobra.NoArgs,
		RunE:  runLanding,
	}

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "open the fleet operations dashboard",
		Args:  cobra.NoArgs,
		RunE:  runDashboard,
	}
	dashboardCmd.Flags().BoolVar(&watch, "watch", false, "reload the fixture file when it changes")

	traceCmd := &cobra.Command{
		Use:   "trace [target]",
		Short: "print the values a counter shows on its way to target",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().DurationVar(&duration, "duration", 0, "animation duration (default from config)")
	traceCmd.Flags().DurationVar(&tick, "tick", 0, "tick interval (default from config)")
	traceCmd.Flags().BoolVar(&realtime, "realtime", false, "run on the wall clock instead of simulated time")
	traceCmd.Flags().StringVar(&format, "format", "table", formatHelp())

	revealCmd := &cobra.Command{
		Use:   "reveal",
		Short: "print the landing metrics reveal frame by frame",
		Args:  cobra.NoArgs,
		RunE:  runReveal,
	}
	revealCmd.Flags().DurationVar(&duration, "duration", 0, "reveal duration (default from config)")
	revealCmd.Flags().IntVar(&frameRate, "fps", 0, "frames per second (default from config)")
	revealCmd.Flags().StringVar(&format, "format", "table", formatHelp())

	fixturesCmd := &cobra.Command{
		Use:   "fixtures",
		Short: "print or validate the fixture document",
		Args:  cobra.NoArgs,
		RunE:  runFixtures,
	}
	fixturesCmd.Flags().BoolVar(&validateOnly, "validate", false, "only validate and summarize")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list animation presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range viz.ThemeNames() {
				marker := " "
				if name == cfg.Theme {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(landingCmd, dashboardCmd, traceCmd, revealCmd, fixturesCmd, presetsCmd, themesCmd, configCmd)
	return rootCmd
}

func formatHelp() string {
	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	return "output format: " + strings.Join(names, "|")
}

// setup resolves the effective configuration and installs the logger.
// Flags override the config file, which overrides the defaults.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg = config.DefaultConfig()
	if configFile != "" {
		if cfg, err = config.Load(configFile); err != nil {
			return err
		}
	}
	if presetName != "" {
		if err := cfg.ApplyPreset(presetName); err != nil {
			return fmt.Errorf("%w (available: %v)", err, config.ListPresets())
		}
	}
	if fixturesFile != "" {
		cfg.Fixtures = fixturesFile
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := viz.SetTheme(cfg.Theme); err != nil {
		return fmt.Errorf("%w (available: %v)", err, viz.ThemeNames())
	}

	logging.Init(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	return nil
}

func loadFixtures() (*fleet.Fixtures, error) {
	if cfg.Fixtures == "" {
		return fleet.Default()
	}
	return fleet.Load(cfg.Fixtures)
}

func vizOptions(fx *fleet.Fixtures) viz.Options {
	return viz.Options{
		Fixtures:  fx,
		Animation: cfg.Animation,
		Theme:     viz.GetTheme(cfg.Theme),
	}
}

func runLanding(cmd *cobra.Command, args []string) error {
	fx, err := loadFixtures()
	if err != nil {
		return err
	}
	return runTUI(cmd, viz.NewApp(vizOptions(fx)), "")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	fx, err := loadFixtures()
	if err != nil {
		return err
	}
	watchPath := ""
	if watch {
		if cfg.Fixtures == "" {
			return errors.New("--watch needs a fixture file (--fixtures or config)")
		}
		watchPath = cfg.Fixtures
	}
	return runTUI(cmd, viz.NewDashboardApp(vizOptions(fx)), watchPath)
}

// runTUI owns the terminal until the program exits, so logs go to the
// configured file instead.
func runTUI(cmd *cobra.Command, model tea.Model, watchPath string) error {
	out, err := logging.Output(cfg.Log.File)
	if err != nil {
		return err
	}
	defer out.Close()
	logging.Init(cfg.Log.Level, cfg.Log.Format, out)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	if watchPath != "" {
		go func() {
			err := config.Watch(ctx, watchPath, func(data []byte) error {
				fx, err := fleet.Parse(data)
				if err != nil {
					return err
				}
				p.Send(viz.FixturesMsg{Fixtures: fx})
				return nil
			})
			if err != nil {
				logging.Component("watch").Error("fixture watch stopped", "path", watchPath, "err", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	target, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", args[0], err)
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}

	d, t := cfg.Animation.CounterDuration, cfg.Animation.TickInterval
	if duration > 0 {
		d = duration
	}
	if tick > 0 {
		t = tick
	}
	if t > d {
		return fmt.Errorf("tick %v exceeds duration %v", t, d)
	}

	var tr *export.Trace
	if realtime {
		if tr, err = recordCounterRealtime(cmd.Context(), target, d, t); err != nil {
			return err
		}
	} else {
		tr = recordCounter(target, d, t)
	}

	logging.Component("cli").Debug("trace recorded", "target", target, "steps", tr.Len(), "realtime", realtime)
	return export.Write(cmd.OutOrStdout(), f, tr)
}

func runReveal(cmd *cobra.Command, args []string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	fx, err := loadFixtures()
	if err != nil {
		return err
	}

	anim := cfg.Animation
	if duration > 0 {
		anim.RevealDuration = duration
	}
	if frameRate > 0 {
		anim.FrameRate = frameRate
	}

	tr := recordReveal(fx.Landing.MetricsRegion, fx.Landing.AnimatedMetrics(), anim.RevealDuration, anim.FrameInterval())
	logging.Component("cli").Debug("reveal recorded", "frames", tr.Len(), "fps", anim.FrameRate)
	return export.Write(cmd.OutOrStdout(), f, tr)
}

func runFixtures(cmd *cobra.Command, args []string) error {
	fx, err := loadFixtures()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if validateOnly {
		source := cfg.Fixtures
		if source == "" {
			source = "built-in"
		}
		counts := fx.StatusCounts()
		fmt.Fprintf(out, "ok: %s\n", source)
		fmt.Fprintf(out, "  robots: %d (%d active, %d charging, %d idle), avg battery %.1f%%\n",
			len(fx.Robots), counts[fleet.StatusActive], counts[fleet.StatusCharging], counts[fleet.StatusIdle], fx.AverageBattery())
		fmt.Fprintf(out, "  alerts: %d, kpis: %d, landing metrics: %d\n", len(fx.Alerts), len(fx.KPIs), len(fx.Landing.Metrics))
		return nil
	}

	if cfg.Fixtures == "" {
		_, err = out.Write(fleet.DefaultDocument())
		return err
	}
	data, err := fx.Marshal()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tCOUNTER\tTICK\tREVEAL\tFPS\tSCROLL")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%v\t%v\t%v\t%d\t%d\n",
			name,
			p.CounterDuration,
			p.TickInterval,
			p.RevealDuration,
			p.FrameRate,
			p.ScrollThreshold,
		)
	}

	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
