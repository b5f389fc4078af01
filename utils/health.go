package utils

import (
	"context"
	"sync"
	"time"

	"hireme/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest liveness snapshot of the record store and the
// Redis caches backing it.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes the store and caches on a fixed period,
// immediately and then every HEALTH_CHECK_SECONDS, until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, mongoClient *mongo.Client, redisClients ...*redis.Client) {
	period := time.Duration(config.AppConfig.HealthCheckSeconds) * time.Second
	if period <= 0 {
		period = 60 * time.Second
	}

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		probe(ctx, mongoClient, redisClients)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				probe(ctx, mongoClient, redisClients)
			}
		}
	}()
}

func probe(ctx context.Context, mongoClient *mongo.Client, redisClients []*redis.Client) {
	redisHealth := make([]bool, 0, len(redisClients))
	for _, client := range redisClients {
		redisHealth = append(redisHealth, client != nil && client.Ping(ctx).Err() == nil)
	}
	mongoHealthy := mongoClient != nil && mongoClient.Ping(ctx, nil) == nil

	healthMu.Lock()
	currentHealth = HealthStatus{
		Mongo:     mongoHealthy,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
	healthMu.Unlock()
}
