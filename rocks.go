package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

const (
	_chamberWidth = 7
	_spawnLeft    = 2
	_spawnAbove   = 3
	_profileDepth = 64
)

var ErrUnknownJet = errors.New("unknown jet pattern")

// Rock is a named shape; Cells are offsets from its bottom-left corner.
type Rock struct {
	Name  byte
	Cells []Point
}

var _rocks = [...]Rock{
	{'-', []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
	{'+', []Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}}},
	{'L', []Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}},
	{'I', []Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
	{'.', []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
}

// Jets yields a jet pattern in an endless cycle.
type Jets struct {
	pattern []byte
	next    int
}

// NewJets validates raw, which may only contain '<' and '>' apart from
// surrounding whitespace.
func NewJets(raw []byte) (*Jets, error) {
	pattern := bytes.TrimSpace(raw)
	if len(pattern) == 0 {
		return nil, ErrEmptyInput
	}
	for i, c := range pattern {
		if c != '<' && c != '>' {
			return nil, fmt.Errorf("%w: %q at offset %v", ErrUnknownJet, c, i)
		}
	}
	return &Jets{pattern: pattern}, nil
}

func (j *Jets) Next() byte {
	c := j.pattern[j.next]
	j.next++
	if j.next == len(j.pattern) {
		j.next = 0
	}
	return c
}

// Chamber is a 7 wide shaft with a floor just below row 0. Settled rock is
// kept as one bitmask per row, bit x standing for column x.
type Chamber struct {
	rows    []uint8
	jets    *Jets
	dropped int
}

func NewChamber(jets *Jets) *Chamber {
	return &Chamber{jets: jets}
}

func (c *Chamber) Height() int {
	return len(c.rows)
}

func (c *Chamber) Dropped() int {
	return c.dropped
}

func (c *Chamber) occupied(p Point) bool {
	switch {
	case p.Y < 0, p.X < 0, p.X >= _chamberWidth:
		return true
	case p.Y >= len(c.rows):
		return false
	}
	return c.rows[p.Y]&(1<<p.X) != 0
}

func (c *Chamber) fits(r Rock, at Point) bool {
	for _, p := range r.Cells {
		if c.occupied(Point{at.X + p.X, at.Y + p.Y}) {
			return false
		}
	}
	return true
}

func (c *Chamber) settle(r Rock, at Point) {
	for _, p := range r.Cells {
		x, y := at.X+p.X, at.Y+p.Y
		for len(c.rows) <= y {
			c.rows = append(c.rows, 0)
		}
		c.rows[y] |= 1 << x
	}
}

// Spawn returns the next rock and where it appears.
func (c *Chamber) Spawn() (Rock, Point) {
	return _rocks[c.dropped%len(_rocks)], Point{_spawnLeft, c.Height() + _spawnAbove}
}

// Drop lets the next rock fall until it comes to rest. The rock is pushed
// by a jet and then falls one unit, alternately; a push into a wall or
// settled rock has no effect.
func (c *Chamber) Drop() {
	r, at := c.Spawn()
	c.dropped++
	for {
		dx := 1
		if c.jets.Next() == '<' {
			dx = -1
		}
		if next := (Point{at.X + dx, at.Y}); c.fits(r, next) {
			at = next
		}
		if next := (Point{at.X, at.Y - 1}); c.fits(r, next) {
			at = next
			continue
		}
		c.settle(r, at)
		return
	}
}

// _ChamberState identifies a point of the simulation that behaves like any
// other with the same state: the next rock, the next jet and the shape of
// the surface.
type _ChamberState struct {
	rock, jet int
	profile   [_chamberWidth]int
}

func (c *Chamber) state() _ChamberState {
	s := _ChamberState{rock: c.dropped % len(_rocks), jet: c.jets.next}
	for x := range s.profile {
		depth := 0
		for y := len(c.rows) - 1; y >= 0 && c.rows[y]&(1<<x) == 0 && depth < _profileDepth; y-- {
			depth++
		}
		s.profile[x] = depth
	}
	return s
}

// TowerHeight returns the height of the tower after n rocks. Once the
// simulation repeats a state, whole cycles are skipped over.
func TowerHeight(jets []byte, n int) (int, error) {
	j, err := NewJets(jets)
	if err != nil {
		return 0, err
	}

	type mark struct{ dropped, height int }

	c := NewChamber(j)
	seen := make(map[_ChamberState]mark)
	skipped := -1
	for c.Dropped() < n {
		c.Drop()
		if skipped >= 0 {
			continue
		}
		k := c.state()
		prev, ok := seen[k]
		if !ok {
			seen[k] = mark{c.Dropped(), c.Height()}
			continue
		}
		period := c.Dropped() - prev.dropped
		cycles := (n - c.Dropped()) / period
		skipped = cycles * (c.Height() - prev.height)
		c.dropped += cycles * period
	}
	return c.Height() + max(skipped, 0), nil
}

// Draw renders the chamber top down, with settled rock as '#', the falling
// rock r at position at as '@', and the floor as a row of '-'. r may be nil.
func (c *Chamber) Draw(r *Rock, at Point) []string {
	top := c.Height() - 1
	if r != nil {
		for _, p := range r.Cells {
			top = max(top, at.Y+p.Y)
		}
	}

	falling := make(map[Point]bool)
	if r != nil {
		for _, p := range r.Cells {
			falling[Point{at.X + p.X, at.Y + p.Y}] = true
		}
	}

	lines := make([]string, 0, top+2)
	var b strings.Builder
	for y := top; y >= 0; y-- {
		b.Reset()
		for x := 0; x < _chamberWidth; x++ {
			switch {
			case c.occupied(Point{x, y}):
				b.WriteByte('#')
			case falling[Point{x, y}]:
				b.WriteByte('@')
			default:
				b.WriteByte('.')
			}
		}
		lines = append(lines, b.String())
	}
	return append(lines, strings.Repeat("-", _chamberWidth))
}
