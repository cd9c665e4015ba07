package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ropesim/internal/analysis"
	"github.com/san-kum/ropesim/internal/config"
	"github.com/san-kum/ropesim/internal/rope"
	"github.com/san-kum/ropesim/internal/solve"
	"github.com/san-kum/ropesim/internal/store"
	"github.com/san-kum/ropesim/internal/trajectory"
	"github.com/san-kum/ropesim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	scenario   string

	span          float64
	rise          float64
	length        float64
	density       float64
	gondolaMass   float64
	counterweight float64
	tensionH      float64

	samples   int
	margin    float64
	tolerance float64
	maxIter   int
	onFailure string

	showGraph bool
	saveRun   bool
	frameRate int
	// Sensitivity sweep bounds
	slackMin float64
	slackMax float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ropesim",
		Short: "catenary ropeway trajectory lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live animation when no command given
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ropesim", "data directory")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "solve the gondola trajectory across the span",
		RunE:  runSweep,
	}
	addScenarioFlags(sweepCmd)
	sweepCmd.Flags().BoolVar(&showGraph, "graph", false, "plot curves in the terminal")
	sweepCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the data directory")

	unloadedCmd := &cobra.Command{
		Use:   "unloaded",
		Short: "solve the empty-rope catenary",
		RunE:  runUnloaded,
	}
	addScenarioFlags(unloadedCmd)
	unloadedCmd.Flags().BoolVar(&showGraph, "graph", false, "plot the rope shape in the terminal")

	counterweightCmd := &cobra.Command{
		Use:   "counterweight",
		Short: "size the counterweight for horizontal departure",
		RunE:  runCounterweight,
	}
	addScenarioFlags(counterweightCmd)

	forcesCmd := &cobra.Command{
		Use:   "forces",
		Short: "traction and tension along the empty rope",
		RunE:  runForces,
	}
	addScenarioFlags(forcesCmd)
	forcesCmd.Flags().BoolVar(&showGraph, "graph", false, "plot profiles in the terminal")

	sensitivityCmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "sag sensitivity to counterweight mass and rope length",
		RunE:  runSensitivity,
	}
	addScenarioFlags(sensitivityCmd)
	sensitivityCmd.Flags().Float64Var(&slackMin, "slack-min", 0.5, "minimum rope slack L-D (m)")
	sensitivityCmd.Flags().Float64Var(&slackMax, "slack-max", 50.0, "maximum rope slack L-D (m)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the sweep in the terminal",
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	chartCmd := &cobra.Command{
		Use:   "chart [file]",
		Short: "render the trajectory chart to a PNG/SVG/PDF file",
		Args:  cobra.ExactArgs(1),
		RunE:  runChart,
	}
	addScenarioFlags(chartCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSPAN\tRISE\tLENGTH\tDENSITY\tGONDOLA")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.0f m\t%.0f m\t%.0f m\t%.1f kg/m\t%.0f kg\n",
					name, p.Span, p.Rise, p.Length, p.Density, p.GondolaMass)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write a default scenario config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(sweepCmd, unloadedCmd, counterweightCmd, forcesCmd,
		sensitivityCmd, liveCmd, chartCmd, listCmd, exportCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// addScenarioFlags registers the shared geometry/solver flags. Every
// solving command accepts the same scenario description, so the flag set
// is defined once.
func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	cmd.Flags().StringVar(&scenario, "name", "ropeway", "scenario name for saved runs")
	cmd.Flags().Float64Var(&span, "span", 500, "horizontal span D (m)")
	cmd.Flags().Float64Var(&rise, "rise", 50, "vertical rise H (m)")
	cmd.Flags().Float64Var(&length, "length", 520, "rope length L (m)")
	cmd.Flags().Float64Var(&density, "density", 2, "rope linear density (kg/m)")
	cmd.Flags().Float64Var(&gondolaMass, "gondola", 500, "gondola mass (kg)")
	cmd.Flags().Float64Var(&counterweight, "counterweight", 0, "counterweight mass (kg)")
	cmd.Flags().Float64Var(&tensionH, "tension", 0, "horizontal tension (N), overrides counterweight")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "trajectory samples")
	cmd.Flags().Float64Var(&margin, "margin", 0, "anchor margin (m), 0 means 2% of span")
	cmd.Flags().Float64Var(&tolerance, "tol", 0, "solver tolerance")
	cmd.Flags().IntVar(&maxIter, "max-iter", 0, "solver iteration limit")
	cmd.Flags().StringVar(&onFailure, "on-failure", "abort", "failure policy: abort or skip")
}

// loadScenario builds the scenario from preset, config file and flags, in
// increasing precedence. Flags only override when explicitly set, so a
// config file still controls everything the command line leaves alone.
func loadScenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("span") {
		cfg.Span = span
	}
	if cmd.Flags().Changed("rise") {
		cfg.Rise = rise
	}
	if cmd.Flags().Changed("length") {
		cfg.Length = length
	}
	if cmd.Flags().Changed("density") {
		cfg.Density = density
	}
	if cmd.Flags().Changed("gondola") {
		cfg.GondolaMass = gondolaMass
	}
	if cmd.Flags().Changed("counterweight") {
		cfg.CounterweightMass = counterweight
	}
	if cmd.Flags().Changed("tension") {
		cfg.TensionH = tensionH
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("margin") {
		cfg.Margin = margin
	}
	if cmd.Flags().Changed("tol") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("max-iter") {
		cfg.MaxIterations = maxIter
	}
	if cmd.Flags().Changed("on-failure") {
		cfg.OnFailure = onFailure
	}
	return cfg, nil
}

func solveSweep(cmd *cobra.Command) (rope.System, *trajectory.Result, error) {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return rope.System{}, nil, err
	}
	sys, err := cfg.System()
	if err != nil {
		return rope.System{}, nil, err
	}
	sc, err := cfg.Sweep()
	if err != nil {
		return rope.System{}, nil, err
	}
	res, err := trajectory.Run(sys, sc)
	if err != nil {
		return rope.System{}, nil, err
	}
	return sys, res, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	sys, res, err := solveSweep(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("span: %.1f m  rise: %.1f m  rope: %.1f m\n", sys.Span, sys.Rise, sys.Length)
	fmt.Printf("horizontal tension: %.1f kN  (counterweight %.0f kg)\n",
		sys.TensionH/1000, sys.TensionH/sys.Gravity)
	fmt.Printf("unloaded shape parameter: %.2f m\n", res.UnloadedArc.A)
	fmt.Printf("converged samples: %d", res.Loaded.Len())
	if len(res.Gaps) > 0 {
		fmt.Printf("  (skipped %d)", len(res.Gaps))
	}
	fmt.Println()

	low := lowestPoint(res.Loaded)
	fmt.Printf("lowest gondola point: %.2f m at x = %.1f m\n\n", res.Loaded.Y[low], res.Loaded.X[low])

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "X\tY\tDROP\tITER\tRESID")
	for _, c := range res.Configs {
		drop := res.UnloadedArc.Y(c.XG) - c.YG
		fmt.Fprintf(w, "%.1f\t%.3f\t%.3f\t%d\t%.2e\n", c.XG, c.YG, drop, c.Iterations, c.Residual)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if showGraph {
		fmt.Println()
		plotCurve(res.Loaded, "gondola trajectory y(x)")
		plotCurve(res.Unloaded, "unloaded rope y(x)")
	}

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(scenario, sys, res)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}
	return nil
}

func runUnloaded(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	sys, err := cfg.System()
	if err != nil {
		return err
	}

	arc, sres, err := sys.SolveUnloaded(solve.Options{Tol: cfg.Tolerance})
	if err != nil {
		return err
	}

	mid := sys.Span / 2
	fmt.Printf("shape parameter: %.3f m  (%d bisection iterations)\n", arc.A, sres.Iterations)
	fmt.Printf("arc length: %.4f m  (rope %.1f m)\n", arc.Length(0, sys.Span), sys.Length)
	fmt.Printf("horizontal tension: %.1f kN\n", arc.HorizontalTension(sys.Density, sys.Gravity)/1000)
	fmt.Printf("midspan height: %.3f m  (chord %.3f m, sag %.3f m)\n",
		arc.Y(mid), sys.Rise/2, sys.Rise/2-arc.Y(mid))
	fmt.Printf("anchor tension: %.1f kN at x=0, %.1f kN at x=%.0f\n",
		arc.Tension(0, sys.Density, sys.Gravity)/1000,
		arc.Tension(sys.Span, sys.Density, sys.Gravity)/1000, sys.Span)

	if showGraph {
		xs, ys := arc.Sample(0, sys.Span, cfg.ShapeSamples)
		fmt.Println()
		plotCurve(trajectory.Curve{Label: trajectory.LabelUnloaded, X: xs, Y: ys}, "unloaded rope y(x)")
	}
	return nil
}

func runCounterweight(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	sys := rope.System{
		Span:        cfg.Span,
		Rise:        cfg.Rise,
		Length:      cfg.Length,
		Density:     cfg.Density,
		Gravity:     cfg.Gravity,
		GondolaMass: cfg.GondolaMass,
	}

	opt := solve.Options{Tol: cfg.Tolerance}
	mEmpty, aEmpty, err := sys.CounterweightUnloaded(opt)
	if err != nil {
		return err
	}
	mLoaded, aLoaded, err := sys.CounterweightLoaded(opt)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CASE\tCOUNTERWEIGHT\tSHAPE PARAM\tTENSION")
	fmt.Fprintf(w, "empty rope\t%.1f kg\t%.2f m\t%.1f kN\n",
		mEmpty, aEmpty, mEmpty*sys.Gravity/1000)
	fmt.Fprintf(w, "gondola at station\t%.1f kg\t%.2f m\t%.1f kN\n",
		mLoaded, aLoaded, mLoaded*sys.Gravity/1000)
	return w.Flush()
}

func runForces(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	sys, err := cfg.System()
	if err != nil {
		return err
	}
	arc, _, err := sys.SolveUnloaded(solve.Options{Tol: cfg.Tolerance})
	if err != nil {
		return err
	}

	prof := analysis.Forces(sys, arc, cfg.ShapeSamples)
	fmt.Printf("max traction: %.1f N (gondola weight %.1f N)\n", prof.MaxTraction(), sys.Weight())
	fmt.Printf("max rope tension: %.1f kN\n", prof.MaxTension()/1000)

	if showGraph {
		fmt.Println()
		plotCurve(prof.Traction, "traction force along the rope (N)")
		plotCurve(prof.Tension, "rope tension along the rope (N)")
		plotCurve(prof.AngleDeg, "rope angle (deg)")
	}
	return nil
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	// The mass sensitivity needs a reference counterweight; fall back to
	// the derived tension when the scenario gives none explicitly.
	cwMass := cfg.CounterweightMass
	if cwMass <= 0 {
		sys, err := cfg.System()
		if err != nil {
			return err
		}
		cwMass = sys.TensionH / sys.Gravity
	}

	mass, err := analysis.MassSensitivity(cfg.Span, cfg.Density, cwMass, 100)
	if err != nil {
		return err
	}
	slack, err := analysis.LengthSensitivity(cfg.Span, slackMin, slackMax, 100)
	if err != nil {
		return err
	}

	mid := mass.Len() / 2
	fmt.Printf("reference counterweight: %.0f kg\n", cwMass)
	fmt.Printf("midspan drop per kg of counterweight: %.5f m/kg\n", mass.Y[mid])
	fmt.Printf("sag change per m of rope at %.1f m slack: %.2f m/m\n", slackMin, slack.Y[0])
	fmt.Println()
	plotCurve(mass, "d(sag)/d(counterweight mass) vs mass (m/kg)")
	plotCurve(slack, "d(sag)/d(length) vs slack (m/m)")
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	sys, res, err := solveSweep(cmd)
	if err != nil {
		return err
	}
	return viz.RunLive(sys, res, frameRate)
}

func runChart(cmd *cobra.Command, args []string) error {
	sys, res, err := solveSweep(cmd)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Gondola trajectory, span %.0f m, rope %.0f m", sys.Span, sys.Length)
	if err := viz.SaveChart(args[0], title, res.Unloaded, res.Loaded, res.Ideal); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tSPAN\tROPE\tCURVES")
	for _, id := range runs {
		data, err := st.Load(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f m\t%.0f m\t%d\n",
			id,
			data.Scenario,
			data.Timestamp.Format("2006-01-02 15:04:05"),
			data.Span,
			data.Length,
			len(data.Curves),
		)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	data, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func plotCurve(c trajectory.Curve, caption string) {
	if c.Len() == 0 {
		return
	}
	graph := asciigraph.Plot(c.Y,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	fmt.Println()
}

func lowestPoint(c trajectory.Curve) int {
	best := 0
	for i := range c.Y {
		if c.Y[i] < c.Y[best] {
			best = i
		}
	}
	return best
}
