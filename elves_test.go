package main

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadElves(t *testing.T) ElfMap {
	t.Helper()
	f, err := os.Open("testdata/elves.txt")
	require.NoError(t, err)
	defer f.Close()
	m, err := ParseElves(f)
	require.NoError(t, err)
	return m
}

func TestParseElves(t *testing.T) {
	m := loadElves(t)
	assert.Equal(t, 6, m.Rows)
	assert.Equal(t, 5, m.Cols)
	want := []Cell{{1, 2}, {1, 3}, {2, 2}, {4, 2}, {4, 3}}
	if diff := cmp.Diff(want, m.Elves); diff != "" {
		t.Errorf("ParseElves mismatch (-want +got):\n%s", diff)
	}

	_, err := ParseElves(strings.NewReader("..#\n.#\n"))
	assert.ErrorContains(t, err, "line 2")
	_, err = ParseElves(strings.NewReader("..#\n.x.\n"))
	assert.ErrorContains(t, err, "unexpected 'x'")
	_, err = ParseElves(strings.NewReader("...\n...\n"))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestNeighbors(t *testing.T) {
	o := occupancy(loadElves(t).Elves)
	tests := []struct {
		pos  Cell
		want [8]bool
	}{
		// N, NE, E, SE, S, SW, W, NW
		{Cell{1, 2}, [8]bool{false, false, true, false, true, false, false, false}},
		{Cell{2, 2}, [8]bool{true, true, false, false, false, false, false, false}},
		{Cell{3, 3}, [8]bool{false, false, false, false, true, true, false, true}},
		{Cell{0, 0}, [8]bool{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, o.Neighbors(tt.pos), "neighbors of %v", tt.pos)
	}
}

func TestProposeMove(t *testing.T) {
	pos := Cell{5, 5}
	tests := []struct {
		name      string
		neighbors [8]bool
		want      Cell
	}{
		{"alone", [8]bool{}, Cell{4, 5}},
		{"north blocked", [8]bool{_NE: true}, Cell{6, 5}},
		{"north and south blocked", [8]bool{_NW: true, _S: true}, Cell{5, 6}},
		{"only west free", [8]bool{_N: true, _S: true, _E: true}, Cell{5, 4}},
		{"surrounded", [8]bool{_N: true, _S: true, _E: true, _W: true}, pos},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProposeMove(pos, tt.neighbors, Directions), tt.name)
	}
}

func TestMoveElves(t *testing.T) {
	elves := []Cell{{1, 2}, {1, 3}, {2, 2}, {4, 2}, {4, 3}}
	proposals := []Cell{{0, 2}, {0, 3}, {3, 2}, {3, 2}, {3, 3}}
	want := []Cell{{0, 2}, {0, 3}, {2, 2}, {4, 2}, {3, 3}}
	if diff := cmp.Diff(want, MoveElves(elves, proposals)); diff != "" {
		t.Errorf("MoveElves mismatch (-want +got):\n%s", diff)
	}
}

func TestRound(t *testing.T) {
	elves := loadElves(t).Elves

	elves, moved := Round(elves, Directions)
	assert.Equal(t, 3, moved)
	assert.Equal(t, []Cell{{0, 2}, {0, 3}, {2, 2}, {4, 2}, {3, 3}}, elves)

	elves, moved = Round(elves, Directions)
	assert.Equal(t, 5, moved)
	assert.Equal(t, []Cell{{-1, 2}, {-1, 3}, {1, 2}, {5, 2}, {3, 4}}, elves)
}
