package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuningFrequency(t *testing.T) {
	sensors := loadSensors(t)
	for _, workers := range []int{0, 1, 4} {
		got, err := TuningFrequency(context.Background(), sensors, 20, workers)
		require.NoError(t, err)
		assert.Equal(t, 56000011, got, "workers=%v", workers)
	}
}

func TestTuningFrequencyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := TuningFrequency(ctx, loadSensors(t), 20, 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTuningFrequencyNoBeacon(t *testing.T) {
	sensors := []Sensor{{Pos: Point{5, 5}, Beacon: Point{5, 15}}}
	_, err := TuningFrequency(context.Background(), sensors, 10, 2)
	require.ErrorIs(t, err, ErrNoBeacon)
}

func TestRowScanUncovered(t *testing.T) {
	tests := []struct {
		name    string
		sensors []Sensor
		x       int
		ok      bool
	}{
		{
			// {0 5} and {6 10} are adjacent: nothing is left uncovered.
			name: "adjacent",
			sensors: []Sensor{
				{Pos: Point{2, 0}, Beacon: Point{5, 0}},
				{Pos: Point{8, 0}, Beacon: Point{10, 0}},
			},
		},
		{
			name: "gap",
			sensors: []Sensor{
				{Pos: Point{2, 0}, Beacon: Point{4, 0}},
				{Pos: Point{8, 0}, Beacon: Point{10, 0}},
			},
			x:  5,
			ok: true,
		},
		{
			name:    "left edge",
			sensors: []Sensor{{Pos: Point{6, 0}, Beacon: Point{10, 0}}},
			x:       0,
			ok:      true,
		},
		{
			name:    "right edge",
			sensors: []Sensor{{Pos: Point{0, 0}, Beacon: Point{9, 0}}},
			x:       10,
			ok:      true,
		},
		{
			name: "no sensors",
			x:    0,
			ok:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &_RowScan{sensors: tt.sensors, limit: 10}
			x, ok := s.Uncovered(0)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.x, x)
		})
	}
}
