package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/projsim/internal/atmosphere"
	"github.com/san-kum/projsim/internal/config"
	"github.com/san-kum/projsim/internal/logging"
	"github.com/san-kum/projsim/internal/metrics"
	"github.com/san-kum/projsim/internal/projectile"
	"github.com/san-kum/projsim/internal/tui"
	"github.com/san-kum/projsim/internal/units"
	"github.com/san-kum/projsim/internal/vec"
	"github.com/san-kum/projsim/internal/viz"
)

var (
	configFile  string
	preset      string
	speed       float64
	theta       float64
	phi         float64
	temperature float64
	humidity    float64
	elevation   float64
	endHeight   float64
	maxTime     float64
	maxSteps    int
	dragModel   string
	termination string
	stepper     string
	tetens      string
	params      map[string]string
	// Output
	plot       bool
	plotWidth  int
	plotHeight int
	frameRate  int
	outFile    string

	logger logging.Logger = logging.Noop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "projsim",
		Short:         "projectile flight through a humid atmosphere",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewFromEnv()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "scenario file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a named preset")
	pf.Float64Var(&speed, "speed", config.DefaultSpeed, "launch speed (m/s)")
	pf.Float64Var(&theta, "theta", config.DefaultThetaDeg, "elevation angle (degrees)")
	pf.Float64Var(&phi, "phi", 0, "azimuth from +x toward +y (degrees)")
	pf.Float64Var(&temperature, "temp", config.DefaultTemperatureC, "air temperature (°C)")
	pf.Float64Var(&humidity, "humidity", config.DefaultHumidity, "relative humidity (0..1)")
	pf.Float64Var(&elevation, "elevation", 0, "elevation above sea level (m)")
	pf.StringVar(&tetens, "tetens", atmosphere.TetensCompat.String(), "saturation pressure coefficients: compat or standard")
	pf.Float64Var(&endHeight, "end-height", 0, "landing height (m)")
	pf.Float64Var(&maxTime, "max-time", config.DefaultMaxTime, "time limit (s)")
	pf.IntVar(&maxSteps, "max-steps", 0, "step cap, 0 for none")
	pf.StringVar(&dragModel, "drag-model", projectile.DragPerAxis.String(), "drag model: per-axis or vector")
	pf.StringVar(&termination, "termination", projectile.TerminateCompat.String(), "termination: compat or end-height")
	pf.StringVar(&stepper, "stepper", projectile.StepEuler.String(), "integration scheme: euler or rk4")
	pf.StringToStringVar(&params, "set", nil, "projectile parameter overrides, e.g. --set mass=0.2,drag=0.4")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate a flight and report metrics",
		Args:  cobra.NoArgs,
		RunE:  runFlight,
	}
	runCmd.Flags().BoolVar(&plot, "plot", true, "plot altitude against the vacuum baseline")
	runCmd.Flags().IntVar(&plotWidth, "width", viz.DefaultPlotWidth, "plot width")
	runCmd.Flags().IntVar(&plotHeight, "height", viz.DefaultPlotHeight, "plot height")

	vacuumCmd := &cobra.Command{
		Use:   "vacuum",
		Short: "closed-form flight without air",
		Args:  cobra.NoArgs,
		RunE:  runVacuum,
	}

	atmosphereCmd := &cobra.Command{
		Use:   "atmosphere",
		Short: "show derived air properties",
		Args:  cobra.NoArgs,
		RunE:  showAtmosphere,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "draw the flight while it is integrated",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 20, "frame rate")

	replayCmd := &cobra.Command{
		Use:   "replay",
		Short: "integrate a flight and replay it interactively",
		Args:  cobra.NoArgs,
		RunE:  runReplay,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario",
		Short: "print the resolved scenario as yaml",
		Args:  cobra.NoArgs,
		RunE:  dumpScenario,
	}
	scenarioCmd.Flags().StringVarP(&outFile, "out", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(runCmd, vacuumCmd, atmosphereCmd, liveCmd, replayCmd, presetsCmd, scenarioCmd)
	return rootCmd
}

func runFlight(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	f, err := buildFlight(cmd, logger)
	if err != nil {
		return err
	}

	rec := metrics.Default()
	rec.Add(metrics.NewMechanicalEnergyDrift(units.G))

	start := time.Now()
	traj := f.proj.Trajectory(f.atm, f.cfg.Run.EndHeight, f.cfg.Run.MaxTime, append(f.opts, projectile.WithObserver(rec))...)
	logger.Info(ctx, "flight integrated",
		logging.String("scenario", f.title()),
		logging.Int("samples", len(traj)),
		logging.String("elapsed", time.Since(start).String()),
		logging.Bool("humidity_clamped", f.atm.HumidityClamped()),
		logging.Any("landing", f.proj.Position),
	)

	values := rec.Values()
	if values["validity"] < 1 {
		logger.Warn(ctx, "flight produced non-finite samples", logging.String("scenario", f.title()))
	}

	fmt.Println(viz.Summary(f.title(), rec.Names(), values))
	fmt.Printf("air density %.4f kg/m³   final %s\n", f.atm.AirDensity(), f.proj.Position)

	if !plot {
		return nil
	}

	vac, err := f.fresh()
	if err != nil {
		return err
	}
	baseline := vac.TrajectoryVacuum(f.cfg.Run.EndHeight, f.cfg.Run.MaxTime, f.opts...)
	fmt.Println(viz.Separator(plotWidth))
	fmt.Println(viz.PlotCompare([][]vec.Vector3{traj, baseline}, "altitude (m) per step: flight, vacuum", plotWidth, plotHeight))
	return nil
}

func runVacuum(cmd *cobra.Command, args []string) error {
	f, err := buildFlight(cmd, logger)
	if err != nil {
		return err
	}
	p, end := f.proj, f.cfg.Run.EndHeight

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "scenario\t%s\n", f.title())
	fmt.Fprintf(w, "launch\t%s\n", p)
	fmt.Fprintf(w, "apex time\t%.4f s\n", p.ApexVacuumTime())
	fmt.Fprintf(w, "apex\t%.4f m\n", p.ApexVacuum())
	fmt.Fprintf(w, "landing time\t%.4f s\n", p.RangeVacuumTime(end))
	fmt.Fprintf(w, "range\t%.4f m\n", p.RangeVacuum(end))
	return w.Flush()
}

func showAtmosphere(cmd *cobra.Command, args []string) error {
	cfg, err := resolveScenario(cmd)
	if err != nil {
		return err
	}
	atm := cfg.BuildAtmosphere(logger)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "temperature\t%.2f K (%.2f °C)\n", atm.Temperature(), units.KelvinToCelsius(atm.Temperature()))
	fmt.Fprintf(w, "humidity\t%.3f\n", atm.Humidity())
	fmt.Fprintf(w, "elevation\t%.1f m\n", atm.Elevation())
	fmt.Fprintf(w, "wind\t%s m/s\n", atm.Wind())
	fmt.Fprintf(w, "pressure\t%.2f Pa\n", atm.Pressure())
	fmt.Fprintf(w, "saturation pressure\t%.2f Pa\n", atm.SaturationPressure())
	fmt.Fprintf(w, "vapor pressure\t%.2f Pa\n", atm.VaporPressure())
	fmt.Fprintf(w, "dry air density\t%.5f kg/m³\n", atm.DryAirDensity())
	fmt.Fprintf(w, "air density\t%.5f kg/m³\n", atm.AirDensity())
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	f, err := buildFlight(cmd, logger)
	if err != nil {
		return err
	}

	r := tui.NewLiveRenderer(f.title(), os.Stdout, frameRate)
	r.Start()
	defer r.Stop()

	f.proj.Trajectory(f.atm, f.cfg.Run.EndHeight, f.cfg.Run.MaxTime, append(f.opts, projectile.WithObserver(pacer(cmd.Context(), r)))...)
	r.Flush()
	return nil
}

// pacer slows integration to roughly real time so the live view is
// watchable. It stops pacing once ctx is done.
func pacer(ctx context.Context, next projectile.Observer) projectile.Observer {
	return projectile.ObserverFunc(func(step int, t float64, p *projectile.Projectile) {
		next.OnStep(step, t, p)
		select {
		case <-ctx.Done():
		case <-time.After(time.Duration(projectile.TimeStep * float64(time.Second))):
		}
	})
}

func runReplay(cmd *cobra.Command, args []string) error {
	f, err := buildFlight(cmd, logger)
	if err != nil {
		return err
	}

	rec := tui.NewRecorder()
	f.proj.Trajectory(f.atm, f.cfg.Run.EndHeight, f.cfg.Run.MaxTime, append(f.opts, projectile.WithObserver(rec))...)
	return tui.Run(f.title(), rec.Frames())
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS\tRADIUS\tLAUNCH\tDRAG MODEL\tTERMINATION")
	for _, name := range config.ListPresets() {
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		pc := cfg.Projectile
		launch := fmt.Sprintf("%.0f m/s @ %.0f°", pc.Speed, pc.ThetaDeg)
		if pc.Velocity != nil {
			launch = fmt.Sprintf("v=%s", pc.Velocity.Vector())
		}
		fmt.Fprintf(w, "%s\t%g\t%g\t%s\t%s\t%s\n", name, pc.Mass, pc.Radius, launch, cfg.Run.DragModel, cfg.Run.Termination)
	}
	return w.Flush()
}

func dumpScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveScenario(cmd)
	if err != nil {
		return err
	}
	if outFile != "" {
		if err := config.Save(outFile, cfg); err != nil {
			return err
		}
		logger.Info(cmd.Context(), "scenario written", logging.String("path", outFile))
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
