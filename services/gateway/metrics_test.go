package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAverageDuration_Empty(t *testing.T) {
	m := NewGatewayMetrics()

	// Must not divide by zero
	assert.Equal(t, 0.0, m.averageDuration())
}

func TestAverageDuration(t *testing.T) {
	m := NewGatewayMetrics()

	m.RecordDuration(100 * time.Millisecond)
	m.RecordDuration(300 * time.Millisecond)

	assert.Equal(t, 200.0, m.averageDuration())
}

// Oldest samples are dropped once the window is full.
func TestDurationWindow_Bounded(t *testing.T) {
	m := NewGatewayMetrics()

	m.RecordDuration(time.Hour)
	for i := 0; i < durationWindowSize; i++ {
		m.RecordDuration(10 * time.Millisecond)
	}

	assert.Len(t, m.durations, durationWindowSize)
	assert.Equal(t, 10.0, m.averageDuration(), "the hour-long outlier must have been evicted")
}
