package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/structviz/internal/config"
	"github.com/san-kum/structviz/internal/export"
	"github.com/san-kum/structviz/internal/notify"
	"github.com/san-kum/structviz/internal/playback"
	"github.com/san-kum/structviz/internal/step"
	"github.com/san-kum/structviz/internal/store"
	"github.com/san-kum/structviz/internal/structures"
	"github.com/san-kum/structviz/internal/tui"
	"github.com/san-kum/structviz/internal/viz"
)

var (
	dataDir    string
	size       int
	seed       int64
	speed      float64
	configFile string
	preset     string
	outFile    string
	svgScale   float64
	gridRows   int
	gridCols   int
	noSave     bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func main() {
	rootCmd := &cobra.Command{
		Use:   "structviz",
		Short: "data structure and algorithm visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, "")
			if err != nil {
				return err
			}
			return tui.RunInteractive(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".structviz", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	sortCmd := &cobra.Command{
		Use:   "sort [algorithm]",
		Short: "animate a sort in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runSort,
	}
	sortCmd.Flags().IntVar(&size, "size", config.DefaultSize, "number of elements")
	sortCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	sortCmd.Flags().Float64Var(&speed, "speed", 1.0, "playback speed multiplier")
	sortCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	sortCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the trace")

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "record a sort and print its step table",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&size, "size", config.DefaultSize, "number of elements")
	traceCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	traceCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the trace")

	replayCmd := &cobra.Command{
		Use:   "replay [trace_id]",
		Short: "animate a stored trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
	replayCmd.Flags().Float64Var(&speed, "speed", 1.0, "playback speed multiplier")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored traces",
		RunE:  listTraces,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "count operations across input sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  benchAlgorithm,
	}
	benchCmd.Flags().Int64Var(&seed, "seed", 42, "random seed")

	exportCmd := &cobra.Command{
		Use:   "export [trace_id]",
		Short: "export a trace as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportTrace,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "", "output path (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [trace_id]",
		Short: "export a trace's sorted output as an SVG bar chart",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output path (default stdout)")
	exportSVGCmd.Flags().Float64Var(&svgScale, "scale", 4.0, "dot scale")

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo [structure]",
		Short: "animate a scripted tour of a data structure",
		Long:  "structures: stack, queue, list, dlist, bst, hashmap, hashset, grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runDemo,
	}
	demoCmd.Flags().Float64Var(&speed, "speed", 1.0, "playback speed multiplier")
	demoCmd.Flags().IntVar(&gridRows, "rows", 4, "grid rows")
	demoCmd.Flags().IntVar(&gridCols, "cols", 6, "grid columns")

	rootCmd.AddCommand(sortCmd, traceCmd, replayCmd, listCmd, benchCmd, exportCmd, exportSVGCmd, presetsCmd, demoCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// resolveConfig merges defaults, preset, config file, and flags, in that
// order. CLI flags win over the config file.
func resolveConfig(cmd *cobra.Command, algorithm string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(algorithm, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(algorithm))
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

	if algorithm != "" {
		cfg.Algorithm = algorithm
	}
	if f := cmd.Flags(); f != nil {
		if f.Changed("size") {
			cfg.Size = size
		}
		if f.Changed("seed") {
			cfg.Seed = seed
		}
		if f.Changed("speed") {
			cfg.Speed = speed
		}
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSort(cmd *cobra.Command, args []string) error {
	algo := step.Algorithm(args[0])
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	printer := viz.NewArrayPrinter(os.Stdout, fmt.Sprintf("%s sort", algo))
	arr := structures.NewArray(nil, printer, notify.NewLogNotifier(logger), playback.SleepDelayer{}, cfg.PlaybackDelays())

	if err := arr.Randomize(cfg.Size, cfg.Seed); err != nil {
		return err
	}
	input := arr.Values()

	if err := arr.PrepareSort(algo); err != nil {
		return err
	}

	fmt.Print(viz.HideCursor)
	defer fmt.Print(viz.ShowCursor)

	ctrl := arr.Controller()
	start := time.Now()
	if err := ctrl.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	elapsed := time.Since(start)

	// Producers are deterministic, so re-recording over the same input
	// yields exactly the steps that just played.
	steps, err := step.Produce(algo, input)
	if err != nil {
		return err
	}
	var counter step.Counter
	counter.ObserveAll(steps[:ctrl.Pos()])

	fmt.Printf("\n  %s  %d/%d steps in %v\n", ctrl.State(), ctrl.Pos(), ctrl.Len(), elapsed.Round(time.Millisecond))
	for name, count := range counter.ByName() {
		fmt.Printf("  %s: %d\n", name, count)
	}

	if noSave || ctrl.State() != playback.Complete {
		return nil
	}
	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	traceID, err := st.Save(algo, cfg.Seed, input, steps)
	if err != nil {
		return err
	}
	fmt.Printf("  trace id: %s\n", traceID)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	algo := step.Algorithm(args[0])
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	arr := structures.NewArray(nil, noopRenderer{}, nil, &playback.InstantDelayer{}, playback.Delays{})
	if err := arr.Randomize(cfg.Size, cfg.Seed); err != nil {
		return err
	}
	input := arr.Values()

	steps, err := step.Produce(algo, input)
	if err != nil {
		return err
	}

	fmt.Printf("algorithm: %s\n", algo)
	fmt.Printf("input: %v\n", input)
	fmt.Printf("steps: %d\n\n", len(steps))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tKIND\tA\tB\tVALUE\tNARRATION")
	live := append([]int(nil), input...)
	for i, s := range steps {
		if err := step.Apply(live, s); err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%s\n", i, s.Kind, s.A, s.B, s.Value, s.Narration())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\noutput: %v\n", live)

	if noSave {
		return nil
	}
	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	traceID, err := st.Save(algo, cfg.Seed, input, steps)
	if err != nil {
		return err
	}
	fmt.Printf("trace id: %s\n", traceID)
	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	traceID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(traceID)
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(traceID)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	delays := playback.DefaultDelays()
	if speed > 0 {
		delays = delays.Scale(1 / speed)
	}

	printer := viz.NewArrayPrinter(os.Stdout, fmt.Sprintf("%s (replay %s)", meta.Algorithm, meta.ID))
	ctrl := playback.New(&playback.Gate{}, printer, notify.NewLogNotifier(logger), playback.SleepDelayer{}, delays)

	live := append([]int(nil), meta.Input...)
	if err := ctrl.Prepare(live, steps); err != nil {
		return err
	}

	fmt.Print(viz.HideCursor)
	defer fmt.Print(viz.ShowCursor)

	if err := ctrl.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Printf("\n  %s  %d/%d steps\n", ctrl.State(), ctrl.Pos(), ctrl.Len())
	return nil
}

func listTraces(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	traces, err := st.List()
	if err != nil {
		return err
	}

	if len(traces) == 0 {
		fmt.Println("no traces found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tSIZE\tSTEPS\tCOMPARES\tSWAPS")

	for _, tr := range traces {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			tr.ID,
			tr.Algorithm,
			tr.Timestamp.Format("2006-01-02 15:04:05"),
			len(tr.Input),
			tr.Steps,
			tr.Counts["compare"],
			tr.Counts["swap"],
		)
	}

	return w.Flush()
}

func benchAlgorithm(cmd *cobra.Command, args []string) error {
	algo := step.Algorithm(args[0])
	if step.Describe(algo) == "" {
		return fmt.Errorf("unknown algorithm %q", algo)
	}

	sizes := []int{4, 8, 16, 32, 64}

	fmt.Printf("benchmarking %s (seed=%d)\n\n", algo, seed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tSTEPS\tCOMPARES\tSWAPS\tMOVES\tTIME")

	compares := make([]float64, 0, len(sizes))
	for _, n := range sizes {
		arr := structures.NewArray(nil, noopRenderer{}, nil, &playback.InstantDelayer{}, playback.Delays{})
		if err := arr.Randomize(n, seed); err != nil {
			return err
		}

		start := time.Now()
		steps, err := step.Produce(algo, arr.Values())
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		var counter step.Counter
		counter.ObserveAll(steps)
		counts := counter.ByName()

		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%v\n",
			n, len(steps), counts["compare"], counts["swap"],
			counts["shift"]+counts["insert"], elapsed)
		compares = append(compares, float64(counts["compare"]))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	graph := asciigraph.Plot(compares,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("comparisons vs input size %v", sizes)),
	)
	fmt.Println()
	fmt.Println(graph)
	return nil
}

func exportTrace(cmd *cobra.Command, args []string) error {
	traceID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(traceID)
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(traceID)
	if err != nil {
		return err
	}

	if outFile != "" {
		return export.ExportTraceJSON(outFile, step.Algorithm(meta.Algorithm), meta.Input, steps)
	}
	return export.WriteTraceJSON(os.Stdout, step.Algorithm(meta.Algorithm), meta.Input, steps)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	traceID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(traceID)
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(traceID)
	if err != nil {
		return err
	}

	live := append([]int(nil), meta.Input...)
	for _, s := range steps {
		if err := step.Apply(live, s); err != nil {
			return err
		}
	}

	svg := export.SequenceToSVG(live, svgScale)
	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(outFile, []byte(svg), 0644)
}

func runDemo(cmd *cobra.Command, args []string) error {
	structure := args[0]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	hold := structures.DefaultHold
	if speed > 0 {
		hold = time.Duration(float64(hold) / speed)
	}
	delayer := playback.SleepDelayer{}
	notifier := notify.NewLogNotifier(logger)

	fmt.Print(viz.HideCursor)
	defer fmt.Print(viz.ShowCursor)

	switch structure {
	case "stack":
		return demoStack(ctx, delayer, notifier, hold)
	case "queue":
		return demoQueue(ctx, delayer, notifier, hold)
	case "list":
		return demoList(ctx, delayer, notifier, hold)
	case "dlist":
		return demoDList(ctx, delayer, notifier, hold)
	case "bst":
		return demoBST(ctx, delayer, notifier, hold)
	case "hashmap":
		return demoHashMap(ctx, delayer, notifier, hold)
	case "hashset":
		return demoHashSet(ctx, delayer, notifier, hold)
	case "grid":
		return demoGrid(ctx, delayer, notifier, hold)
	default:
		return fmt.Errorf("unknown structure %q", structure)
	}
}

func demoStack(ctx context.Context, d playback.Delayer, n notify.Notifier, hold time.Duration) error {
	printer := viz.NewSeqPrinter(os.Stdout, viz.StackFrame, "stack")
	s := structures.NewStack(printer, n, d, hold)
	for _, v := range []int{4, 8, 15, 16} {
		if err := s.Push(ctx, v); err != nil {
			return err
		}
	}
	if _, err := s.Peek(ctx); err != nil {
		return err
	}
	if _, err := s.Pop(ctx); err != nil {
		return err
	}
	if _, err := s.Pop(ctx); err != nil {
		return err
	}
	return s.Clear(ctx)
}

func demoQueue(ctx context.Context, d playback.Delayer, n notify.Notifier, hold time.Duration) error {
	printer := viz.NewSeqPrinter(os.Stdout, viz.QueueFrame, "queue")
	q := structures.NewQueue(printer, n, d, hold)
	for _, v := range []int{3, 7, 11, 19} {
		if err := q.Enqueue(ctx, v); err != nil {
			return err
		}
	}
	if _, err := q.Front(ctx); err != nil {
		return err
	}
	if _, err := q.Dequeue(ctx); err != nil {
		return err
	}
	if _, err := q.Dequeue(ctx); err != nil {
		return err
	}
	return q.Clear(ctx)
}

func demoList(ctx context.Context, d playback.Delayer, n notify.Notifier, hold time.Duration) error {
	frame := func(values []int, h step.HighlightMap) string {
		return viz.ListFrame(values, h, false)
	}
	printer := viz.NewSeqPrinter(os.Stdout, frame, "singly linked list")
	l := structures.NewList(printer, n, d, hold)
	for i, v := range []int{10, 20, 30} {
		if err := l.InsertAt(ctx, i, v); err != nil {
			return err
		}
	}
	if err := l.InsertAt(ctx, 1, 15); err != nil {
		return err
	}
	if _, err := l.Search(ctx, 30); err != nil && !errors.Is(err, structures.ErrNotFound) {
		return err
	}
	if _, err := l.RemoveAt(ctx, 2); err != nil {
		return err
	}
	return l.Traverse(ctx)
}

func demoDList(ctx context.Context, d playback.Delayer, n notify.Notifier, hold time.Duration) error {
	frame := func(values []int, h step.HighlightMap) string {
		return viz.ListFrame(values, h, true)
	}
	printer := viz.NewSeqPrinter(os.Stdout, frame, "doubly linked list")
	l := structures.NewDList(printer, n, d, hold)
	for _, v := range []int{5, 6, 7} {
		if err := l.PushBack(ctx, v); err != nil {
			return err
		}
	}
	if err := l.PushFront(ctx, 4); err != nil {
		return err
	}
	if _, err := l.PopBack(ctx); err != nil {
		return err
	}
	if err := l.Traverse(ctx, false); err != nil {
		return err
	}
	return l.Traverse(ctx, true)
}

func demoBST(ctx context.Context, d playback.Delayer, n notify.Notifier, hold time.Duration) error {
	printer := viz.NewTreePrinter(os.Stdout, "binary search tree")
	t := structures.NewBST(printer, n, d, hold)
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		if err := t.Insert(ctx, v); err != nil {
			return err
		}
	}
	if _, err := t.Search(ctx, 40); err != nil {
		return err
	}
	if err := t.Remove(ctx, 30); err != nil {
		return err
	}
	return t.InOrder(ctx)
}

func demoHashMap(ctx context.Context, d playback.Delayer, n notify.Notifier, hold time.Duration) error {
	printer := viz.NewBucketPrinter(os.Stdout, "hash map")
	m := structures.NewHashMap(printer, n, d, hold)
	pairs := []struct {
		key   string
		value int
	}{
		{"ada", 1815}, {"turing", 1912}, {"hopper", 1906}, {"knuth", 1938},
	}
	for _, p := range pairs {
		if err := m.Put(ctx, p.key, p.value); err != nil {
			return err
		}
	}
	if _, err := m.Get(ctx, "turing"); err != nil {
		return err
	}
	return m.Delete(ctx, "ada")
}

func demoHashSet(ctx context.Context, d playback.Delayer, n notify.Notifier, hold time.Duration) error {
	printer := viz.NewBucketPrinter(os.Stdout, "hash set")
	s := structures.NewHashSet(printer, n, d, hold)
	for _, v := range []int{12, 7, 23, 42, 8} {
		if err := s.Add(ctx, v); err != nil && !errors.Is(err, structures.ErrDuplicate) {
			return err
		}
	}
	if _, err := s.Contains(ctx, 23); err != nil {
		return err
	}
	return s.Remove(ctx, 7)
}

func demoGrid(ctx context.Context, d playback.Delayer, n notify.Notifier, hold time.Duration) error {
	printer := viz.NewGridPrinter(os.Stdout, "2-d array")
	g, err := structures.NewGrid(gridRows, gridCols, printer, n, d, hold)
	if err != nil {
		return err
	}
	for r := 0; r < gridRows; r++ {
		for c := 0; c < gridCols; c++ {
			if (r+c)%3 == 0 {
				if err := g.Set(ctx, r, c, r*gridCols+c); err != nil {
					return err
				}
			}
		}
	}
	if err := g.RowSweep(ctx, 1); err != nil {
		return err
	}
	if err := g.ColSweep(ctx, 2); err != nil {
		return err
	}
	return g.Fill(ctx, 9)
}

// noopRenderer discards frames; used where only the recording matters.
type noopRenderer struct{}

func (noopRenderer) Render([]int, step.HighlightMap) {}
