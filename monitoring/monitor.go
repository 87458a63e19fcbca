// Package monitoring turns live nodes into a small web server so their
// session state can be inspected from outside the process: bus address,
// subscription table, queue depths, and traffic counters.
package monitoring

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"

	"github.com/edu-rossrobotics/cyphalnode/node"
)

// PortEnvVar names the environment variable that sets the monitor's HTTP
// port when no port is given programmatically.
const PortEnvVar = "CYPHALNODE_MONITOR_PORT"

// A Monitor serves the state of registered nodes over HTTP.
type Monitor struct {
	portNumber int
	url        string

	nodesLock sync.Mutex
	nodes     []*node.Node
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterNode adds one node to be monitored.
func (m *Monitor) RegisterNode(n *node.Node) {
	m.nodesLock.Lock()
	defer m.nodesLock.Unlock()

	m.nodes = append(m.nodes, n)
}

// StartServer starts the monitor as a web server. The port comes from
// WithPortNumber, or from the CYPHALNODE_MONITOR_PORT environment
// variable (a .env file is honored), or is picked by the OS.
func (m *Monitor) StartServer() {
	// A missing .env file is fine; the variable can come from the shell.
	_ = godotenv.Load()

	if m.portNumber == 0 {
		if p, err := strconv.Atoi(os.Getenv(PortEnvVar)); err == nil {
			m.WithPortNumber(p)
		}
	}

	listener, err := net.Listen("tcp", m.listenAddr())
	dieOnErr(err)

	m.url = fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring nodes with %s\n", m.url)

	go func() {
		dieOnErr(http.Serve(listener, m.Router()))
	}()
}

// Router returns the monitor's HTTP routes.
func (m *Monitor) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/nodes", m.listNodes)
	r.HandleFunc("/api/node/{name}", m.nodeStatus)
	r.HandleFunc("/api/resource", m.listResources)

	return r
}

func (m *Monitor) listenAddr() string {
	if m.portNumber > 1000 {
		return ":" + strconv.Itoa(m.portNumber)
	}

	return ":0"
}

// URL returns the address the monitor serves on, once started.
func (m *Monitor) URL() string {
	return m.url
}

// OpenDashboard opens the monitor in the system browser.
func (m *Monitor) OpenDashboard() error {
	return browser.OpenURL(m.url + "/api/nodes")
}

type subscriptionRsp struct {
	Kind   string `json:"kind"`
	PortID uint16 `json:"port_id"`
}

type nodeStatusRsp struct {
	Name                string            `json:"name"`
	NodeID              uint8             `json:"node_id"`
	FramesDropped       uint64            `json:"frames_dropped"`
	FramesRejected      uint64            `json:"frames_rejected"`
	FramesSent          uint64            `json:"frames_sent"`
	TransfersDispatched uint64            `json:"transfers_dispatched"`
	TransfersDiscarded  uint64            `json:"transfers_discarded"`
	TxQueueSize         int               `json:"tx_queue_size"`
	Subscriptions       []subscriptionRsp `json:"subscriptions"`
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listNodes(w http.ResponseWriter, _ *http.Request) {
	m.nodesLock.Lock()
	defer m.nodesLock.Unlock()

	names := make([]string, 0, len(m.nodes))
	for _, n := range m.nodes {
		names = append(names, n.Name())
	}

	writeJSON(w, names)
}

// nodeStatus reports one node. The accessors used here are the ones the
// node documents as safe from any context, so the report never touches
// live session state while the node spins.
func (m *Monitor) nodeStatus(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	n := m.findNode(name)
	if n == nil {
		http.Error(w, "node not found", http.StatusNotFound)
		return
	}

	rsp := nodeStatusRsp{
		Name:                n.Name(),
		NodeID:              uint8(n.NodeID()),
		FramesDropped:       n.FramesDropped(),
		FramesRejected:      n.FramesRejected(),
		FramesSent:          n.FramesSent(),
		TransfersDispatched: n.TransfersDispatched(),
		TransfersDiscarded:  n.TransfersDiscarded(),
		TxQueueSize:         n.TxQueueSize(),
		Subscriptions:       []subscriptionRsp{},
	}

	for _, sub := range n.Subscriptions() {
		rsp.Subscriptions = append(rsp.Subscriptions, subscriptionRsp{
			Kind:   sub.Kind.String(),
			PortID: uint16(sub.PortID),
		})
	}

	writeJSON(w, rsp)
}

func (m *Monitor) findNode(name string) *node.Node {
	m.nodesLock.Lock()
	defer m.nodesLock.Unlock()

	for _, n := range m.nodes {
		if n.Name() == name {
			return n
		}
	}

	return nil
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memorySize, err := proc.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
