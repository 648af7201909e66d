package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-kit/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/orbitlab/sitnikov/internal/analysis"
	"github.com/orbitlab/sitnikov/internal/config"
	"github.com/orbitlab/sitnikov/internal/integrators"
	"github.com/orbitlab/sitnikov/internal/sitnikov"
	"github.com/orbitlab/sitnikov/internal/storage"
	"github.com/orbitlab/sitnikov/internal/survey"
	"github.com/orbitlab/sitnikov/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	eccentricity float64
	tau          float64
	z0           float64
	v0           float64
	step         float64
	periods      int
	method       string
	megno        bool
	seed         uint64

	ascii   bool
	rowName string
	pngPath string
	svgPath string
	csvPath string
	topK    int
	workers int

	surveyEMin, surveyEMax float64
	surveyESteps           int
	surveyZMin, surveyZMax float64
	surveyZSteps           int

	sweepEMin, sweepEMax float64
	sweepESteps          int
	sweepSkip            int

	sectionEvery int
	sectionSkip  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sitnikov",
		Short: "sitnikov problem integration and chaos toolkit",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sitnikov", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate a scenario and store the result",
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().BoolVar(&ascii, "ascii", false, "print an ascii chart of z(t)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored row in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&rowName, "row", "z", "row to plot (z, z_v, megno, mean_megno)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run (metadata, png, svg or csv)",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&pngPath, "png", "", "write a png plot to this path")
	exportCmd.Flags().StringVar(&svgPath, "svg", "", "write an svg plot to this path")
	exportCmd.Flags().StringVar(&csvPath, "csv", "", "write the rows as csv to this path")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare the integration methods on one scenario",
		RunE:  compareMethods,
	}
	addScenarioFlags(compareCmd)

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "power spectrum and dominant periods of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  spectrumRun,
	}
	spectrumCmd.Flags().IntVar(&topK, "top", 3, "number of dominant periods to report")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "step the indicator pipeline with a live terminal view",
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark step throughput of the methods",
		RunE:  benchMethods,
	}
	addScenarioFlags(benchCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		RunE:  listPresets,
	}

	surveyCmd := &cobra.Command{
		Use:   "survey",
		Short: "map the mean megno over an eccentricity-position grid",
		RunE:  runSurvey,
	}
	addScenarioFlags(surveyCmd)
	surveyCmd.Flags().Float64Var(&surveyEMin, "e-min", 0, "lowest eccentricity")
	surveyCmd.Flags().Float64Var(&surveyEMax, "e-max", 0.6, "highest eccentricity")
	surveyCmd.Flags().IntVar(&surveyESteps, "e-steps", 13, "eccentricity grid points")
	surveyCmd.Flags().Float64Var(&surveyZMin, "z-min", 0.5, "lowest launch position")
	surveyCmd.Flags().Float64Var(&surveyZMax, "z-max", 2, "highest launch position")
	surveyCmd.Flags().IntVar(&surveyZSteps, "z-steps", 13, "position grid points")
	surveyCmd.Flags().IntVar(&workers, "workers", 0, "parallel cells (0 = all cpus)")
	surveyCmd.Flags().StringVar(&pngPath, "png", "", "write a heat map to this path")
	surveyCmd.Flags().StringVar(&csvPath, "csv", "", "write the cells as csv to this path")

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation",
		Short: "sweep eccentricity and collect stroboscopic positions",
		RunE:  runBifurcation,
	}
	addScenarioFlags(bifurcationCmd)
	bifurcationCmd.Flags().Float64Var(&sweepEMin, "e-min", 0, "lowest eccentricity")
	bifurcationCmd.Flags().Float64Var(&sweepEMax, "e-max", 0.8, "highest eccentricity")
	bifurcationCmd.Flags().IntVar(&sweepESteps, "e-steps", 81, "eccentricity sweep points")
	bifurcationCmd.Flags().IntVar(&sweepSkip, "skip", 100, "transient periods to discard")
	bifurcationCmd.Flags().IntVar(&workers, "workers", 0, "parallel runs (0 = all cpus)")
	bifurcationCmd.Flags().StringVar(&pngPath, "png", "", "write a scatter plot to this path")

	poincareCmd := &cobra.Command{
		Use:   "poincare [run_id]",
		Short: "surface of section of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  poincareRun,
	}
	poincareCmd.Flags().IntVar(&sectionEvery, "every", 1, "primary periods between samples")
	poincareCmd.Flags().IntVar(&sectionSkip, "skip", 0, "transient periods to discard")
	poincareCmd.Flags().StringVar(&pngPath, "png", "", "write a scatter plot to this path")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov [run_id]",
		Short: "lyapunov exponent fitted to a stored megno run",
		Args:  cobra.ExactArgs(1),
		RunE:  lyapunovRun,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "browse presets and tune scenarios interactively",
		RunE:  runExplore,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, compareCmd, spectrumCmd,
		liveCmd, benchCmd, presetsCmd, surveyCmd, bifurcationCmd, poincareCmd,
		lyapunovCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&eccentricity, "eccentricity", config.DefaultEccentricity, "eccentricity of the primaries")
	cmd.Flags().Float64Var(&tau, "tau", config.DefaultTau, "pericenter passage time (primary periods)")
	cmd.Flags().Float64Var(&z0, "z0", config.DefaultZ0, "initial position")
	cmd.Flags().Float64Var(&v0, "v0", config.DefaultV0, "initial velocity")
	cmd.Flags().Float64Var(&step, "step", config.DefaultStep, "integration step (quarter periods)")
	cmd.Flags().IntVar(&periods, "periods", config.DefaultPeriods, "primary periods to integrate")
	cmd.Flags().StringVar(&method, "method", config.DefaultMethod, "integration method")
	cmd.Flags().BoolVar(&megno, "megno", false, "compute the megno chaos indicator")
	cmd.Flags().Uint64Var(&seed, "seed", config.DefaultSeed, "seed for the shadow trajectory draw")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset scenario (family/name)")
}

func newLogger() log.Logger {
	return log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout))
}

func presetNames() []string {
	var names []string
	for _, family := range config.ListFamilies() {
		for _, name := range config.ListPresets(family) {
			names = append(names, family+"/"+name)
		}
	}
	return names
}

func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	if preset != "" && configFile != "" {
		return nil, fmt.Errorf("--preset and --config are mutually exclusive")
	}

	cfg := config.DefaultConfig()
	switch {
	case preset != "":
		family, name, ok := strings.Cut(preset, "/")
		if !ok {
			return nil, fmt.Errorf("preset must be family/name, one of %v", presetNames())
		}
		p := config.GetPreset(family, name)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, presetNames())
		}
		c := *p
		cfg = &c
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("eccentricity") {
		cfg.Eccentricity = eccentricity
	}
	if flags.Changed("tau") {
		cfg.Tau = tau
	}
	if flags.Changed("z0") {
		cfg.Z0 = z0
	}
	if flags.Changed("v0") {
		cfg.V0 = v0
	}
	if flags.Changed("step") {
		cfg.Step = step
	}
	if flags.Changed("periods") {
		cfg.Periods = periods
	}
	if flags.Changed("method") {
		cfg.Method = method
	}
	if flags.Changed("megno") {
		cfg.MEGNO = megno
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	model, err := sitnikov.New(cfg)
	if err != nil {
		return err
	}

	logger := log.With(newLogger(), "cmd", "run")
	logger.Log("eccentricity", cfg.Eccentricity, "tau", cfg.Tau, "step", cfg.Step,
		"periods", cfg.Periods, "method", cfg.Method, "megno", cfg.MEGNO)

	start := time.Now()
	if err := model.Integrate(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, model.Results)
	if err != nil {
		return err
	}

	n := model.Results.Steps()
	if cfg.MEGNO {
		logger.Log("run_id", runID, "steps", n, "elapsed", elapsed,
			"megno", fmt.Sprintf("%.4f", model.Results.At(4, n)),
			"mean_megno", fmt.Sprintf("%.4f", model.Results.At(5, n)))
	} else {
		logger.Log("run_id", runID, "steps", n, "elapsed", elapsed)
	}

	if ascii {
		fmt.Println(asciigraph.Plot(model.Results.Row(0),
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("z vs time")))
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tE\tTAU\tSTEP\tPERIODS\tMETHOD\tMEGNO")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\t%g\t%d\t%s\t%v\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Eccentricity,
			run.Tau,
			run.Step,
			run.Periods,
			run.Method,
			run.MEGNO,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	found := false
	for _, name := range meta.Rows {
		if name == rowName {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("run %s has no row %q (rows: %v)", runID, rowName, meta.Rows)
	}

	values, err := st.LoadRow(runID, rowName)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("method: %s  e=%.3f  samples: %d\n\n", meta.Method, meta.Eccentricity, len(values))
	fmt.Println(asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(rowName+" vs time")))
	return nil
}

// timeAxis rebuilds the physical times of a stored run. MEGNO rows start
// one quarter-period in, after the primer.
func timeAxis(meta *storage.RunMetadata, n int) []float64 {
	h := meta.Step * math.Pi / 2
	offset := 0.0
	if meta.MEGNO {
		offset = math.Round(1/meta.Step) * h
	}
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = offset + float64(i)*h
	}
	return ts
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	if pngPath == "" && svgPath == "" && csvPath == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}

	rows := make(map[string][]float64, len(meta.Rows))
	n := 0
	for _, name := range meta.Rows {
		values, err := st.LoadRow(runID, name)
		if err != nil {
			return err
		}
		rows[name] = values
		n = len(values)
	}
	times := timeAxis(meta, n)

	for _, path := range []string{pngPath, svgPath} {
		if path == "" {
			continue
		}
		if meta.MEGNO {
			err = viz.SaveSeriesPair(path, "MEGNO "+runID, "t",
				times, "megno", rows["megno"], "mean megno", rows["mean_megno"])
		} else {
			err = viz.SaveSeries(path, "Sitnikov "+runID, "t", "z", times, rows["z"])
		}
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}

	if csvPath != "" {
		file, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer file.Close()

		w := csv.NewWriter(file)
		defer w.Flush()

		header := append([]string{"t"}, meta.Rows...)
		if err := w.Write(header); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			record := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
			for _, name := range meta.Rows {
				record = append(record, strconv.FormatFloat(rows[name][i], 'f', 6, 64))
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
	return nil
}

func compareMethods(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.MEGNO = false

	type result struct {
		name      string
		elapsed   time.Duration
		roundTrip float64
		drift     float64
		final     integrators.State
	}

	run := func(name string) (*result, error) {
		c := *cfg
		if name != "yoshida4-split" {
			c.Method = name
		}
		m, err := sitnikov.New(&c)
		if err != nil {
			return nil, err
		}

		h := m.StepSize()
		n := m.Steps()
		tEnd := m.StartTime() + float64(n)*h

		var forward, back *integrators.Buffer
		start := time.Now()
		if name == "yoshida4-split" {
			forward, err = integrators.Yoshida4Split(m, m.InitialState(), m.StartTime(), h, n)
		} else {
			if err = m.Integrate(); err == nil {
				forward = m.Results
			}
		}
		elapsed := time.Since(start)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		final := forward.State(n)
		if name == "yoshida4-split" {
			back, err = integrators.Yoshida4Split(m, final, tEnd, -h, n)
		} else {
			back, err = m.IntegrateFrom(final, tEnd, -h, n)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		res := &result{
			name:      name,
			elapsed:   elapsed,
			roundTrip: back.State(n).Sub(m.InitialState()).Norm(),
			drift:     math.NaN(),
			final:     final,
		}
		if cfg.Eccentricity == 0 {
			res.drift = analysis.MaxEnergyDrift(forward.Row(0), forward.Row(1))
		}
		return res, nil
	}

	names := append(integrators.Methods(), "yoshida4-split")
	results := make([]*result, 0, len(names))
	var reference *result
	for _, name := range names {
		res, err := run(name)
		if err != nil {
			return err
		}
		if name == integrators.MethodYoshida4 {
			reference = res
		}
		results = append(results, res)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tTIME\tROUNDTRIP\tDRIFT\tVS YOSHIDA4")
	for _, res := range results {
		drift := "-"
		if !math.IsNaN(res.drift) {
			drift = fmt.Sprintf("%.3e", res.drift)
		}
		deviation := "-"
		if res != reference {
			deviation = fmt.Sprintf("%.3e", res.final.Sub(reference.final).Norm())
		}
		fmt.Fprintf(w, "%s\t%v\t%.3e\t%s\t%s\n",
			res.name, res.elapsed, res.roundTrip, drift, deviation)
	}
	return w.Flush()
}

func spectrumRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	values, err := st.LoadRow(runID, "z")
	if err != nil {
		return err
	}

	h := meta.Step * math.Pi / 2
	freqs, power := analysis.PowerSpectrum(values, h)
	if len(power) == 0 {
		return fmt.Errorf("run %s is too short for a spectrum", runID)
	}

	fmt.Printf("run: %s  samples: %d\n\n", meta.ID, len(values))
	fmt.Println(asciigraph.Plot(power[:len(power)/4],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (z)")))
	fmt.Println()

	for i, period := range analysis.DominantPeriods(freqs, power, topK) {
		fmt.Printf("period %d: %.4f (%.4f primary periods)\n", i+1, period, period/(2*math.Pi))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	model, err := sitnikov.New(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewLive(model))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func benchMethods(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tSTEP\tSTEPS\tTIME\tSTEPS/SEC")
	for _, name := range integrators.Methods() {
		for _, s := range []float64{0.1, 0.01, 0.001} {
			c := *cfg
			c.Method = name
			c.Step = s
			c.MEGNO = false

			m, err := sitnikov.New(&c)
			if err != nil {
				return err
			}
			start := time.Now()
			if err := m.Integrate(); err != nil {
				return err
			}
			elapsed := time.Since(start)
			fmt.Fprintf(w, "%s\t%g\t%d\t%v\t%.0f\n",
				name, s, m.Steps(), elapsed, float64(m.Steps())/elapsed.Seconds())
		}
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	for _, family := range config.ListFamilies() {
		fmt.Printf("%s:\n", family)
		for _, name := range config.ListPresets(family) {
			p := config.GetPreset(family, name)
			line := fmt.Sprintf("  %s/%s\te=%.2f tau=%.2f z0=%.2f v0=%.2f step=%g periods=%d method=%s",
				family, name, p.Eccentricity, p.Tau, p.Z0, p.V0, p.Step, p.Periods, p.Method)
			if p.MEGNO {
				line += " megno"
			}
			fmt.Println(line)
		}
	}
	return nil
}

func runSurvey(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	scan := survey.Scan{
		Base:           cfg,
		Eccentricities: survey.Axis{Min: surveyEMin, Max: surveyEMax, Steps: surveyESteps},
		Positions:      survey.Axis{Min: surveyZMin, Max: surveyZMax, Steps: surveyZSteps},
		Workers:        workers,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := log.With(newLogger(), "cmd", "survey")
	logger.Log("cells", surveyESteps*surveyZSteps, "periods", cfg.Periods, "step", cfg.Step)
	start := time.Now()
	m, err := scan.Run(ctx)
	if err != nil {
		return err
	}
	logger.Log("elapsed", time.Since(start))

	// Character map on a fixed 0..4 scale so neighbouring surveys stay
	// comparable; elevated cells mark the chaotic sea.
	ramp := []rune(" .:-=+*#%@")
	cols, rowCount := m.Dims()
	for r := rowCount - 1; r >= 0; r-- {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			idx := int(m.Z(c, r) / 4 * float64(len(ramp)-1))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(ramp) {
				idx = len(ramp) - 1
			}
			b.WriteRune(ramp[idx])
		}
		fmt.Printf("z0=%5.2f |%s|\n", m.Y(r), b.String())
	}
	fmt.Printf("         e: %.2f .. %.2f, scale 0..4\n", m.X(0), m.X(cols-1))

	if pngPath != "" {
		if err := viz.SaveHeatMap(pngPath, "mean MEGNO", "e", "z0", m); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
	}
	if csvPath != "" {
		file, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer file.Close()
		w := csv.NewWriter(file)
		defer w.Flush()
		if err := w.Write([]string{"e", "z0", "mean_megno"}); err != nil {
			return err
		}
		for r := 0; r < rowCount; r++ {
			for c := 0; c < cols; c++ {
				record := []string{
					strconv.FormatFloat(m.X(c), 'f', 6, 64),
					strconv.FormatFloat(m.Y(r), 'f', 6, 64),
					strconv.FormatFloat(m.Z(c, r), 'f', 6, 64),
				}
				if err := w.Write(record); err != nil {
					return err
				}
			}
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
	return nil
}

func runBifurcation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	sweep := survey.Bifurcation{
		Base:           cfg,
		Eccentricities: survey.Axis{Min: sweepEMin, Max: sweepEMax, Steps: sweepESteps},
		Transient:      sweepSkip,
		Workers:        workers,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := log.With(newLogger(), "cmd", "bifurcation")
	logger.Log("sweep_points", sweepESteps, "periods", cfg.Periods, "skip", sweepSkip)
	start := time.Now()
	d, err := sweep.Run(ctx)
	if err != nil {
		return err
	}
	logger.Log("samples", d.Len(), "elapsed", time.Since(start))

	fmt.Print(viz.Scatter(d.E, d.Z, 40, 12))
	fmt.Printf("e: %.2f .. %.2f, z vertical\n", sweepEMin, sweepEMax)

	if pngPath != "" {
		if err := viz.SaveScatter(pngPath, "stroboscopic positions", "e", "z", d.E, d.Z); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
	}
	return nil
}

func poincareRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	z, err := st.LoadRow(runID, "z")
	if err != nil {
		return err
	}
	v, err := st.LoadRow(runID, "z_v")
	if err != nil {
		return err
	}

	perPeriod := int(math.Round(4 / meta.Step))
	section := analysis.Stroboscopic(z, v, sectionEvery*perPeriod, sectionSkip*perPeriod)
	if section.Len() == 0 {
		return fmt.Errorf("run %s leaves no samples after the transient", runID)
	}

	fmt.Printf("run: %s  e=%.3f  samples: %d\n", meta.ID, meta.Eccentricity, section.Len())
	fmt.Print(viz.Scatter(section.Z, section.V, 40, 12))
	fmt.Println("z horizontal, v vertical")

	if pngPath != "" {
		title := fmt.Sprintf("section e=%.3f", meta.Eccentricity)
		if err := viz.SaveScatter(pngPath, title, "z", "v", section.Z, section.V); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", pngPath)
	}
	return nil
}

func lyapunovRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	if !meta.MEGNO {
		return fmt.Errorf("run %s has no megno rows, re-run with --megno", runID)
	}
	mean, err := st.LoadRow(runID, "mean_megno")
	if err != nil {
		return err
	}

	times := timeAxis(meta, len(mean))
	lambda := analysis.Lyapunov(times, mean)
	final := mean[len(mean)-1]

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("final mean megno: %.4f\n", final)
	fmt.Printf("lyapunov exponent: %.6f\n", lambda)
	if final > 2.5 && lambda > 0 {
		fmt.Printf("verdict: chaotic, lyapunov time %.1f (%.1f primary periods)\n",
			1/lambda, 1/(lambda*2*math.Pi))
	} else {
		fmt.Println("verdict: regular")
	}
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	if _, err := tea.NewProgram(viz.NewExplore(), tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
