package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/b97tsk/rangeset"
	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	_tuningMultiplier = 4000000
	_rowChunkSize     = 10000
	_progressInterval = time.Second
)

var (
	ErrNoBeacon = errors.New("no uncovered position")

	errBeaconFound = errors.New("beacon found")
)

// _RowScan searches rows [0, limit] for a column that no sensor excludes.
type _RowScan struct {
	sensors  []Sensor
	limit    int
	progress rate.Sometimes

	mu    sync.Mutex
	found bool
	at    Point
}

// Uncovered returns the leftmost column of row within [0, limit] that no
// sensor excludes.
func (s *_RowScan) Uncovered(row int) (x int, ok bool) {
	set := excludedRow(s.sensors, row, s.limit)
	if len(set) == 1 && set[0].Low <= 0 && set[0].High >= s.limit {
		return
	}

	// Columns are tracked half-open here, which also joins adjacent
	// intervals like {0 5} {6 20} that the closed set keeps apart.
	var incomplete rangeset.RangeSet[int]
	incomplete.AddRange(0, s.limit+1)
	for _, r := range set {
		incomplete.DeleteRange(r.Low, r.High+1)
	}
	if len(incomplete) == 0 {
		return
	}
	return incomplete[0].Low, true
}

func (s *_RowScan) scan(ctx context.Context, low, high int) error {
	log := logr.FromContextOrDiscard(ctx)
	for row := low; row <= high; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.progress.Do(func() {
			log.V(1).Info("scanning", "row", row, "limit", s.limit)
		})
		if x, ok := s.Uncovered(row); ok {
			s.mu.Lock()
			if !s.found || row < s.at.Y {
				s.found, s.at = true, Point{x, row}
			}
			s.mu.Unlock()
			return errBeaconFound
		}
	}
	return nil
}

// TuningFrequency locates the only position in [0, limit]×[0, limit] not
// excluded by any sensor and returns x*4000000+y. Rows are scanned in chunks
// by up to workers goroutines; each row builds its own IntervalSet.
func TuningFrequency(ctx context.Context, sensors []Sensor, limit, workers int) (int, error) {
	if workers < 1 {
		workers = 1
	}

	s := &_RowScan{
		sensors:  sensors,
		limit:    limit,
		progress: rate.Sometimes{Interval: _progressInterval},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for low := 0; low <= limit && gctx.Err() == nil; low += _rowChunkSize {
		low, high := low, min(low+_rowChunkSize-1, limit)
		g.Go(func() error {
			return s.scan(gctx, low, high)
		})
	}

	if err := g.Wait(); err != nil && err != errBeaconFound {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if !s.found {
		return 0, ErrNoBeacon
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("beacon located", "x", s.at.X, "y", s.at.Y)
	return s.at.X*_tuningMultiplier + s.at.Y, nil
}
