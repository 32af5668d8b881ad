package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external collaborators.
type HealthStatus struct {
	HolidaySource bool      `json:"holidaySource"`
	Redis         *bool     `json:"redis,omitempty"`
	CheckedAt     time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// probeHealth performs one round of checks. redisClient may be nil when the
// in-memory holiday cache is used.
func probeHealth(redisClient *redis.Client, probe *http.Client, holidaySourceURL string) HealthStatus {
	var redisHealth *bool
	if redisClient != nil {
		ok := redisClient.Ping(context.Background()).Err() == nil
		redisHealth = &ok
	}

	sourceHealthy := false
	if resp, err := probe.Get(holidaySourceURL); err == nil {
		resp.Body.Close()
		sourceHealthy = resp.StatusCode >= 200 && resp.StatusCode <= 299
	}

	return HealthStatus{
		HolidaySource: sourceHealthy,
		Redis:         redisHealth,
		CheckedAt:     time.Now(),
	}
}

// StartHealthMonitor performs an immediate health check, then periodic ones,
// updating the in-memory snapshot.
func StartHealthMonitor(redisClient *redis.Client, holidaySourceURL string) {
	go func() {
		probe := &http.Client{Timeout: 5 * time.Second}

		update := func() {
			status := probeHealth(redisClient, probe, holidaySourceURL)
			mu.Lock()
			currentHealth = status
			mu.Unlock()
		}

		update()

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			update()
		}
	}()
}
