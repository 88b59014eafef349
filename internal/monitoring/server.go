package monitoring

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// Server is a small stats dashboard backend running beside the main API.
// It reports host CPU, memory and disk plus service uptime, over plain
// JSON and a websocket push for live dashboards.
type Server struct {
	port       int
	started    time.Time
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	upgrader   websocket.Upgrader
}

type Stats struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsed    string  `json:"memory_used"`
	MemoryTotal   string  `json:"memory_total"`
	DiskPercent   float64 `json:"disk_percent"`
	DiskUsed      string  `json:"disk_used"`
	DiskTotal     string  `json:"disk_total"`
}

func NewServer(port int) *Server {
	return &Server{
		port:    port,
		started: time.Now(),
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Start blocks serving the stats endpoints. Run it in a goroutine.
func (s *Server) Start() {
	r := mux.NewRouter()
	r.HandleFunc("/stats", s.handleStats).Methods("GET")
	r.HandleFunc("/ws", s.handleWS)

	go s.broadcastLoop()

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("[Monitoring] Stats server running on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Printf("[Monitoring] Stats server stopped: %v", err)
	}
}

func (s *Server) collect() Stats {
	st := Stats{Status: "ok", Uptime: time.Since(s.started).Round(time.Second).String()}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		st.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		st.MemoryPercent = vm.UsedPercent
		st.MemoryUsed = formatBytes(vm.Used)
		st.MemoryTotal = formatBytes(vm.Total)
	}
	if du, err := disk.Usage("/"); err == nil {
		st.DiskPercent = du.UsedPercent
		st.DiskUsed = formatBytes(du.Used)
		st.DiskTotal = formatBytes(du.Total)
	}
	return st
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.collect())
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Monitoring] Websocket upgrade failed: %v", err)
		return
	}

	s.clientsMux.Lock()
	s.clients[conn] = true
	s.clientsMux.Unlock()
}

// broadcastLoop pushes stats to every connected dashboard every 5 seconds.
func (s *Server) broadcastLoop() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		stats := s.collect()

		s.clientsMux.Lock()
		for conn := range s.clients {
			if err := conn.WriteJSON(stats); err != nil {
				conn.Close()
				delete(s.clients, conn)
			}
		}
		s.clientsMux.Unlock()
	}
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
