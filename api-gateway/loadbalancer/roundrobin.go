package loadbalancer

import (
	"sync"

	"github.com/traceright/dataset-service/pkg/logger"
)

// RoundRobin rotates requests across backend instances.
type RoundRobin struct {
	servers []string
	current int
	mu      sync.Mutex
}

// NewRoundRobin creates a new round-robin load balancer
func NewRoundRobin(servers []string) *RoundRobin {
	if len(servers) == 0 {
		servers = []string{"http://localhost:8084"}
	}

	logger.Logger.Info().
		Int("server_count", len(servers)).
		Strs("servers", servers).
		Msg("Round-robin load balancer initialized")

	return &RoundRobin{servers: servers}
}

// Next returns the next server in round-robin order
func (rr *RoundRobin) Next() string {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	if len(rr.servers) == 0 {
		return ""
	}

	server := rr.servers[rr.current]
	rr.current = (rr.current + 1) % len(rr.servers)
	return server
}

// Servers returns a copy of the instance list
func (rr *RoundRobin) Servers() []string {
	rr.mu.Lock()
	defer rr.mu.Unlock()
	return append([]string{}, rr.servers...)
}
