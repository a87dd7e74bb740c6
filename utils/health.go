package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger is anything the health monitor can ping.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Services  map[string]bool `json:"services"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// Healthy reports whether every pinged service answered.
func (h HealthStatus) Healthy() bool {
	for _, ok := range h.Services {
		if !ok {
			return false
		}
	}
	return true
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	out := HealthStatus{Services: make(map[string]bool, len(currentHealth.Services)), CheckedAt: currentHealth.CheckedAt}
	for k, v := range currentHealth.Services {
		out.Services[k] = v
	}
	return out
}

// CheckHealth pings every service once and stores the snapshot.
func CheckHealth(ctx context.Context, services map[string]Pinger) HealthStatus {
	status := HealthStatus{Services: make(map[string]bool, len(services)), CheckedAt: time.Now()}
	for name, p := range services {
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		status.Services[name] = p.Ping(pctx) == nil
		cancel()
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, interval time.Duration, services map[string]Pinger) {
	go func() {
		CheckHealth(ctx, services)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, services)
			}
		}
	}()
}
