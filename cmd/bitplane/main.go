package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bitplane/internal/automaton"
	"github.com/san-kum/bitplane/internal/config"
	"github.com/san-kum/bitplane/internal/experiment"
	"github.com/san-kum/bitplane/internal/export"
	"github.com/san-kum/bitplane/internal/plane"
	"github.com/san-kum/bitplane/internal/rule"
	"github.com/san-kum/bitplane/internal/storage"
	"github.com/san-kum/bitplane/internal/tui"
	"github.com/san-kum/bitplane/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir      string
	shapeFlag    string
	generations  int
	seed         int64
	hoodFlag     string
	sliceFlag    string
	configFile   string
	preset       string
	frameRate    int
	watch        bool
	themeName    string
	outputPath   string
	scale        float64
	saveConfigTo string
	benchRuns    int
	benchWorkers int
)

// main registers the commands and runs the root command, exiting 1 on error.
// With no subcommand it opens the live view of Conway's Life.
func main() {
	rootCmd := &cobra.Command{
		Use:   "bitplane",
		Short: "packed-bit cellular automaton lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, []string{config.DefaultRule})
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".bitplane", "data directory")
	pf.StringVar(&shapeFlag, "shape", "32,64", "plane shape, last dimension is the row width")
	pf.IntVar(&generations, "gens", config.DefaultGenerations, "generations to run")
	pf.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	pf.StringVar(&hoodFlag, "hood", config.DefaultNeighborhood, "neighborhood (moore, vonneumann)")
	pf.StringVar(&sliceFlag, "slice", "", "leading coordinates of the 2-d view shown for planes above two dimensions")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&frameRate, "fps", config.DefaultFrameRate, "frames per second for live views")

	runCmd := &cobra.Command{
		Use:   "run [rule]",
		Short: "run an automaton and record its population",
		Args:  cobra.ExactArgs(1),
		RunE:  runAutomaton,
	}
	runCmd.Flags().BoolVar(&watch, "watch", false, "redraw the plane while running")
	runCmd.Flags().StringVar(&saveConfigTo, "save-config", "", "write the resolved configuration to a yaml file")

	liveCmd := &cobra.Command{
		Use:   "live [rule]",
		Short: "step an automaton interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}

	showCmd := &cobra.Command{
		Use:   "show [rule]",
		Short: "print one generation",
		Args:  cobra.ExactArgs(1),
		RunE:  showGeneration,
	}
	showCmd.Flags().StringVar(&themeName, "theme", "retro", "color theme (retro, cyberpunk, minimal)")

	svgCmd := &cobra.Command{
		Use:   "svg [rule]",
		Short: "write one generation as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&outputPath, "output", "o", "plane.svg", "output file")
	svgCmd.Flags().Float64Var(&scale, "scale", 8, "pixels per cell")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the population of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "list named rules and presets",
		RunE:  listRules,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [rule]",
		Short: "run many seeds in parallel and summarize",
		Args:  cobra.ExactArgs(1),
		RunE:  benchRule,
	}
	benchCmd.Flags().IntVar(&benchRuns, "runs", 8, "number of seeds")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", runtime.NumCPU(), "parallel runs")

	rootCmd.AddCommand(runCmd, liveCmd, showCmd, svgCmd, listCmd, plotCmd, exportCmd, rulesCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file and flags. Flags set on the
// command line win over the file, which wins over the preset.
func resolveConfig(cmd *cobra.Command, ruleName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Rule = ruleName

	if preset != "" {
		p := config.GetPreset(ruleName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(ruleName))
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
		cfg.Rule = ruleName
	}

	flags := cmd.Flags()
	if flags.Changed("shape") || (preset == "" && configFile == "") {
		shape, err := plane.ParseShape(shapeFlag)
		if err != nil {
			return nil, err
		}
		cfg.Shape = shape
	}
	if flags.Changed("gens") {
		cfg.Generations = generations
	}
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if flags.Changed("hood") {
		cfg.Neighborhood = hoodFlag
	}
	if flags.Changed("slice") {
		slice, err := parseInts(sliceFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid slice: %w", err)
		}
		cfg.Slice = slice
	}
	if flags.Changed("fps") {
		cfg.FrameRate = frameRate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseInts(text string) ([]int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	parts := strings.Split(text, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func buildAutomaton(cfg *config.Config) (*automaton.Automaton, *rule.Rule, error) {
	a, err := experiment.NewRegistry().Build(cfg)
	if err != nil {
		return nil, nil, err
	}
	return a, a.Rule(), nil
}

func runAutomaton(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if saveConfigTo != "" {
		if err := config.Save(saveConfigTo, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
	}

	a, r, err := buildAutomaton(cfg)
	if err != nil {
		return err
	}

	if watch {
		lr := tui.NewLiveRenderer(os.Stdout, a.Plane(), cfg.Slice, cfg.FrameRate)
		defer lr.Close()
		a.AddObserver(lr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %s (%s) on %v for %d generations, seed %d\n",
		r.Name, r.String(), plane.Shape(cfg.Shape), cfg.Generations, cfg.Seed)

	start := time.Now()
	result, err := a.Run(ctx, automaton.Config{
		Generations: cfg.Generations,
		Seed:        cfg.Seed,
		Randomize:   true,
	})
	if err != nil && result == nil {
		return err
	}
	elapsed := time.Since(start)
	if err != nil {
		fmt.Printf("stopped after %d generations: %v\n", result.Generations, err)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Rule:         r.Name,
		Notation:     r.String(),
		Shape:        cfg.Shape,
		Neighborhood: cfg.Neighborhood,
		Seed:         cfg.Seed,
		Generations:  result.Generations,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("run saved: %s\n", runID)
	fmt.Printf("%d generations in %v\n", result.Generations, elapsed.Round(time.Millisecond))
	for _, name := range []string{"population", "peak_density", "activity"} {
		fmt.Printf("  %s: %.4f\n", name, result.Metrics[name])
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	a, _, err := buildAutomaton(cfg)
	if err != nil {
		return err
	}
	a.Randomize(cfg.Seed)

	m := tui.NewModel(a, cfg.Seed, cfg.Slice, cfg.FrameRate)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func showGeneration(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	theme, ok := viz.ThemeByName(themeName)
	if !ok {
		return fmt.Errorf("unknown theme: %s", themeName)
	}

	a, r, err := buildAutomaton(cfg)
	if err != nil {
		return err
	}
	a.Randomize(cfg.Seed)
	if cmd.Flags().Changed("gens") {
		for i := 0; i < cfg.Generations; i++ {
			if _, err := a.Step(); err != nil {
				return err
			}
		}
	}

	v, err := viz.Project(a.Plane(), cfg.Slice)
	if err != nil {
		return err
	}
	frame, err := viz.RenderPlane(v, theme)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s %s  gen %d  %v", r.Name, r.String(), a.Generation(), a.Plane().Shape())
	fmt.Println(viz.Framed(theme, title, frame))
	fmt.Println(viz.Metric("population", a.Plane().Population()))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	a, _, err := buildAutomaton(cfg)
	if err != nil {
		return err
	}
	a.Randomize(cfg.Seed)
	if cmd.Flags().Changed("gens") {
		for i := 0; i < cfg.Generations; i++ {
			if _, err := a.Step(); err != nil {
				return err
			}
		}
	}

	v, err := viz.Project(a.Plane(), cfg.Slice)
	if err != nil {
		return err
	}
	svg, err := export.PlaneToSVG(v, scale, string(viz.ThemeRetroGreen.Alive))
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outputPath)
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
	fmt.Fprintln(w, "ID\tRULE\tTIME\tSHAPE\tGENS\tHOOD\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%d\t%s\t%d\n",
			run.ID,
			run.Notation,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			plane.Shape(run.Shape),
			run.Generations,
			run.Neighborhood,
			run.Seed,
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

	samples, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("rule: %s (%s)\n", meta.Rule, meta.Notation)
	fmt.Printf("samples: %d\n\n", len(samples))

	population := make([]int, len(samples))
	changed := make([]int, len(samples))
	for i, s := range samples {
		population[i] = s.Population
		changed[i] = s.Changed
	}

	fmt.Println(viz.PopulationGraph(population, 80, 10, "population"))
	fmt.Println()
	fmt.Println(viz.PopulationGraph(changed, 80, 10, "cells changed"))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func listRules(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tNOTATION\tPRESETS")
	for _, name := range rule.Names() {
		notation, _ := rule.Notation(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, notation, strings.Join(config.ListPresets(name), ", "))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nneighborhoods: %s\n", strings.Join(experiment.NewRegistry().ListNeighborhoods(), ", "))
	return nil
}

func benchRule(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if benchRuns <= 0 {
		return fmt.Errorf("runs must be positive, got %d", benchRuns)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ens := automaton.NewEnsemble(func() (*automaton.Automaton, error) {
		a, _, err := buildAutomaton(cfg)
		return a, err
	}, benchRuns, cfg.Seed, benchWorkers)

	fmt.Printf("benchmarking %s on %v: %d runs x %d generations\n",
		cfg.Rule, plane.Shape(cfg.Shape), benchRuns, cfg.Generations)

	start := time.Now()
	results, err := ens.Run(ctx, automaton.Config{Generations: cfg.Generations})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tFINAL POP\tPEAK DENSITY\tACTIVITY")
	var total float64
	for i, res := range results {
		final := res.Population[len(res.Population)-1]
		total += float64(final)
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.4f\n",
			cfg.Seed+int64(i), final, res.Metrics["peak_density"], res.Metrics["activity"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	cells := float64(plane.Shape(cfg.Shape).Size())
	steps := float64(benchRuns * cfg.Generations)
	fmt.Printf("\nmean final population: %.1f\n", total/float64(len(results)))
	fmt.Printf("%.0f generations/s, %.2e cell updates/s\n",
		steps/elapsed.Seconds(), steps*cells/elapsed.Seconds())
	return nil
}
