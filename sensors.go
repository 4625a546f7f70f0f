package main

import (
	"errors"
	"fmt"
	"io"
)

var ErrBadSensor = errors.New("malformed sensor report")

type Point struct {
	X, Y int
}

// Sensor is a sensor position together with the closest beacon it reports.
type Sensor struct {
	Pos, Beacon Point
}

// ParseSensors reads reports of the form
//
//	Sensor at x=2, y=18: closest beacon is at x=-2, y=15
//
// one per line.
func ParseSensors(r io.Reader) (sensors []Sensor, err error) {
	err = _scanLines(r, func(lineno int, line string) error {
		var s Sensor
		_, err := fmt.Sscanf(
			line,
			"Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d",
			&s.Pos.X, &s.Pos.Y, &s.Beacon.X, &s.Beacon.Y,
		)
		if err != nil {
			return fmt.Errorf("line %v: %w: %v", lineno, ErrBadSensor, err)
		}
		sensors = append(sensors, s)
		return nil
	})
	return
}

func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Reach is the distance within which no other beacon can exist.
func (s Sensor) Reach() int {
	return Manhattan(s.Pos, s.Beacon)
}

// Crosses reports whether the area covered by s touches row.
func (s Sensor) Crosses(row int) bool {
	sy, by := s.Pos.Y, s.Beacon.Y
	switch {
	case sy == row || by == row:
		return true
	case sy < row && by > row, sy > row && by < row:
		return true
	}
	reach := s.Reach()
	return sy-reach <= row && sy+reach >= row
}

// Excluded returns the columns of row that s rules out for a beacon.
// If limit is positive, the result is clamped to [0, limit]; clamping may
// leave an invalid interval when s is entirely outside that window.
// ok is false when row is out of reach.
func (s Sensor) Excluded(row, limit int) (r Interval, ok bool) {
	d := s.Reach() - abs(s.Pos.Y-row)
	if d < 0 {
		return
	}
	r = Interval{s.Pos.X - d, s.Pos.X + d}
	if limit > 0 {
		r.Low = max(r.Low, 0)
		r.High = min(r.High, limit)
	}
	return r, true
}

// excludedRow coalesces the excluded columns of every sensor crossing row.
func excludedRow(sensors []Sensor, row, limit int) IntervalSet {
	var set IntervalSet
	for _, s := range sensors {
		if !s.Crosses(row) {
			continue
		}
		if r, ok := s.Excluded(row, limit); ok {
			set = set.Merge(r)
		}
	}
	return set
}

// BeaconExclusion counts the positions on row that cannot hold a beacon.
func BeaconExclusion(sensors []Sensor, row int) int {
	return excludedRow(sensors, row, 0).Coverage()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
