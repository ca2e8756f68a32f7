// Package monitoring turns a running simulation into a small web service for
// external inspection and control: pause/continue the engine, list the
// nodes, read a neuron's recordables, track progress bars, and watch the
// process's resource usage.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"

	"github.com/spikelab/dendrite/model"
	"github.com/spikelab/dendrite/sim"
)

// Monitor can turn a simulation into a server and allows external monitoring
// and controlling of the simulation.
type Monitor struct {
	engine     sim.Engine
	network    *sim.Network
	portNumber int
	openViewer bool

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber != 0 && portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the monitoring server. "+
				"Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser makes StartServer open the monitor in the local browser.
func (m *Monitor) WithBrowser() *Monitor {
	m.openViewer = true
	return m
}

// RegisterEngine registers the engine that is used in the simulation.
func (m *Monitor) RegisterEngine(e sim.Engine) {
	m.engine = e
}

// RegisterNetwork registers the network whose nodes can be inspected.
func (m *Monitor) RegisterNetwork(n *sim.Network) {
	m.network = n
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		ID:        sim.GetIDGenerator().Generate(),
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar from the monitor.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// StartServer starts the monitor as a web server.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	r.HandleFunc("/api/pause", m.pauseEngine)
	r.HandleFunc("/api/continue", m.continueEngine)
	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/nodes", m.listNodes)
	r.HandleFunc("/api/node/{name}", m.nodeDetails)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", url)

	if m.openViewer {
		// Best effort only; headless runs have no browser.
		_ = browser.OpenURL(url)
	}

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

func (m *Monitor) pauseEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Pause()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) continueEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Continue()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	step := m.engine.CurrentStep()
	ms := m.network.Schedule().Resolution().Ms(step)
	fmt.Fprintf(w, "{\"step\":%d,\"time_ms\":%.10f}", step, ms)
}

func (m *Monitor) listNodes(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, n := range m.network.Nodes() {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "%q", n.Name())
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) nodeDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var node sim.Node
	for _, n := range m.network.Nodes() {
		if n.Name() == name {
			node = n
			break
		}
	}

	if node == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	neuron, ok := node.(model.Neuron)
	if !ok {
		fmt.Fprint(w, "{}")
		return
	}

	bytes, err := json.Marshal(neuron.Recordables().Snapshot())
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	bytes, err := json.Marshal(m.progressBars)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
