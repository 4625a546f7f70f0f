package main

import (
	"fmt"
	"io"
)

// Cell is a grid position; row 0 is the top (north) edge.
type Cell struct {
	Row, Col int
}

// Neighbor offsets in the order N, NE, E, SE, S, SW, W, NW.
var _neighbors = [8]Cell{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

const (
	_N = iota
	_NE
	_E
	_SE
	_S
	_SW
	_W
	_NW
)

// Direction is a move an elf may propose: it steps by Step if none of the
// neighbors in Check is occupied.
type Direction struct {
	Name  string
	Check [3]int
	Step  Cell
}

// Directions are considered in this order every round.
var Directions = []Direction{
	{"N", [3]int{_N, _NE, _NW}, _neighbors[_N]},
	{"S", [3]int{_S, _SE, _SW}, _neighbors[_S]},
	{"W", [3]int{_W, _NW, _SW}, _neighbors[_W]},
	{"E", [3]int{_E, _NE, _SE}, _neighbors[_E]},
}

// ElfMap is the parsed scan: elf positions in reading order and the size of
// the scanned rectangle.
type ElfMap struct {
	Elves      []Cell
	Rows, Cols int
}

// ParseElves reads a grid where '#' marks an elf and '.' open ground.
func ParseElves(r io.Reader) (m ElfMap, err error) {
	err = _scanLines(r, func(lineno int, line string) error {
		if m.Cols == 0 {
			m.Cols = len(line)
		} else if len(line) != m.Cols {
			return fmt.Errorf("line %v: row has %v columns, want %v", lineno, len(line), m.Cols)
		}
		for col, c := range []byte(line) {
			switch c {
			case '#':
				m.Elves = append(m.Elves, Cell{m.Rows, col})
			case '.':
			default:
				return fmt.Errorf("line %v: unexpected %q", lineno, c)
			}
		}
		m.Rows++
		return nil
	})
	if err == nil && len(m.Elves) == 0 {
		err = ErrEmptyInput
	}
	return
}

type _Occupancy map[Cell]struct{}

func occupancy(elves []Cell) _Occupancy {
	o := make(_Occupancy, len(elves))
	for _, e := range elves {
		o[e] = struct{}{}
	}
	return o
}

// Neighbors reports which of the eight cells around pos hold an elf,
// in the order N, NE, E, SE, S, SW, W, NW.
func (o _Occupancy) Neighbors(pos Cell) (n [8]bool) {
	for i, d := range _neighbors {
		_, n[i] = o[Cell{pos.Row + d.Row, pos.Col + d.Col}]
	}
	return
}

// ProposeMove returns the cell the elf at pos wants to move to: the step of
// the first direction whose checked neighbors are all empty, or pos itself.
func ProposeMove(pos Cell, neighbors [8]bool, directions []Direction) Cell {
	for _, d := range directions {
		if !neighbors[d.Check[0]] && !neighbors[d.Check[1]] && !neighbors[d.Check[2]] {
			return Cell{pos.Row + d.Step.Row, pos.Col + d.Step.Col}
		}
	}
	return pos
}

// MoveElves moves every elf to its proposed cell unless another elf
// proposed the same cell, in which case both stay.
func MoveElves(elves, proposals []Cell) []Cell {
	count := make(map[Cell]int, len(proposals))
	for _, p := range proposals {
		count[p]++
	}
	moved := make([]Cell, len(elves))
	for i, p := range proposals {
		if count[p] > 1 {
			moved[i] = elves[i]
		} else {
			moved[i] = p
		}
	}
	return moved
}

// Round runs one round of proposals and moves and reports how many elves
// changed position.
func Round(elves []Cell, directions []Direction) (next []Cell, moved int) {
	o := occupancy(elves)
	proposals := make([]Cell, len(elves))
	for i, e := range elves {
		proposals[i] = ProposeMove(e, o.Neighbors(e), directions)
	}
	next = MoveElves(elves, proposals)
	for i := range next {
		if next[i] != elves[i] {
			moved++
		}
	}
	return
}
