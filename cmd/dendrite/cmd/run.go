package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spikelab/dendrite/device"
	"github.com/spikelab/dendrite/monitoring"
	"github.com/spikelab/dendrite/neuron/iafalpha"
	"github.com/spikelab/dendrite/neuron/ppdelta"
	"github.com/spikelab/dendrite/recording"
	"github.com/spikelab/dendrite/sim"
)

var runFlags = struct {
	durationMs   float64
	resolutionMs float64
	numNeurons   int
	rateHz       float64
	weight       float64
	delayMs      float64
	seed         int64
	output       string
	monitorPort  int
	workers      int
}{}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a demonstration network",
	Long: `Run a Poisson-driven population of integrate-and-fire neurons ` +
		`plus one DC-driven stochastic neuron, recording spikes and ` +
		`membrane traces into a SQLite database.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runDemoNetwork()
	},
}

func init() {
	runCmd.Flags().Float64Var(&runFlags.durationMs,
		"duration", 1000.0, "simulated duration in ms")
	runCmd.Flags().Float64Var(&runFlags.resolutionMs,
		"resolution", float64(sim.DefaultResolution), "grid resolution in ms")
	runCmd.Flags().IntVar(&runFlags.numNeurons,
		"neurons", 100, "size of the integrate-and-fire population")
	runCmd.Flags().Float64Var(&runFlags.rateHz,
		"rate", 8000.0, "rate of the Poisson drive in Hz")
	runCmd.Flags().Float64Var(&runFlags.weight,
		"weight", 100.0, "synaptic weight of the drive in pA")
	runCmd.Flags().Float64Var(&runFlags.delayMs,
		"delay", 1.0, "transmission delay in ms")
	runCmd.Flags().Int64Var(&runFlags.seed,
		"seed", 42, "seed for all random sources")
	runCmd.Flags().StringVar(&runFlags.output,
		"output", envOr("DENDRITE_OUTPUT", ""),
		"recording database path, empty for a generated name")
	runCmd.Flags().IntVar(&runFlags.monitorPort,
		"monitor-port", 0, "port of the monitoring server, 0 to disable")
	runCmd.Flags().IntVar(&runFlags.workers,
		"workers", 0, "worker goroutines, 0 for one per CPU")

	rootCmd.AddCommand(runCmd)
}

func runDemoNetwork() error {
	network := sim.NewNetwork(sim.Timestep(runFlags.resolutionMs))
	recorder := recording.New(runFlags.output)

	drive := device.NewPoissonGenerator("Drive", runFlags.rateHz, runFlags.seed)
	network.AddNode(drive)

	spikes := device.NewSpikeRecorder("Spikes", recorder, "spikes")
	network.AddNode(spikes)

	population := make([]*iafalpha.Neuron, runFlags.numNeurons)
	for i := range population {
		n := iafalpha.New(fmt.Sprintf("IAF[%d]", i))
		population[i] = n
		network.AddNode(n)

		if _, err := network.Connect(
			drive, n, runFlags.weight, runFlags.delayMs, 0); err != nil {
			return err
		}

		if _, err := network.Connect(
			n, spikes, 0, runFlags.delayMs, 0); err != nil {
			return err
		}
	}

	dc := device.NewDCGenerator("DC", 300.0).
		WithWindow(100.0, runFlags.durationMs)
	network.AddNode(dc)

	pp := ppdelta.New("PP", runFlags.seed+1)
	network.AddNode(pp)

	if _, err := network.Connect(dc, pp, 1.0, runFlags.delayMs, 0); err != nil {
		return err
	}

	if _, err := network.Connect(pp, spikes, 0, runFlags.delayMs, 0); err != nil {
		return err
	}

	meter := device.NewMultimeter(recorder, "samples", 10)
	meter.Observe(population[0])
	meter.Observe(pp)

	var engine sim.Engine
	if runFlags.workers == 1 {
		engine = sim.NewSerialEngine(network)
	} else {
		parallel := sim.NewParallelEngine(network)
		if runFlags.workers > 1 {
			parallel.WithNumWorkers(runFlags.workers)
		}
		engine = parallel
	}

	engine.AcceptHook(meter)

	var monitor *monitoring.Monitor
	if runFlags.monitorPort != 0 {
		monitor = monitoring.NewMonitor().
			WithPortNumber(runFlags.monitorPort)
		monitor.RegisterEngine(engine)
		monitor.RegisterNetwork(network)
		monitor.StartServer()
	}

	totalSteps := sim.Timestep(runFlags.resolutionMs).
		Steps(runFlags.durationMs)

	var bar *monitoring.ProgressBar
	if monitor != nil {
		bar = monitor.CreateProgressBar("Simulation", uint64(totalSteps))
		engine.AcceptHook(progressHook{bar: bar})
	}

	if err := engine.Run(runFlags.durationMs); err != nil {
		return err
	}

	if monitor != nil {
		monitor.CompleteProgressBar(bar)
	}

	recorder.Flush()
	fmt.Printf("Simulated %d steps (%.1f ms).\n",
		totalSteps, runFlags.durationMs)

	return nil
}

type progressHook struct {
	bar *monitoring.ProgressBar
}

func (h progressHook) Func(ctx sim.HookCtx) {
	if ctx.Pos == sim.HookPosStepEnd {
		h.bar.IncrementFinished(1)
	}
}
