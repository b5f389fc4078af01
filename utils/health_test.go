package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthMonitorProbesImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Unreachable backends report unhealthy rather than panicking.
	StartHealthMonitor(ctx, nil, nil, nil)

	require.Eventually(t, func() bool {
		return !GetHealthStatus().CheckedAt.IsZero()
	}, time.Second, 10*time.Millisecond, "no snapshot recorded")

	status := GetHealthStatus()
	assert.False(t, status.Mongo)
	assert.Equal(t, []bool{false, false}, status.Redis)
}
