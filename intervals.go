package main

import (
	"sort"
)

// Interval is a closed range of positions, Low and High included.
type Interval struct {
	Low, High int
}

func (r Interval) IsValid() bool {
	return r.Low <= r.High
}

// Overlaps reports whether r and other share at least one position.
// Intervals that are merely adjacent, like {1 2} and {3 4}, do not overlap.
func (r Interval) Overlaps(other Interval) bool {
	switch {
	case r.Low >= other.Low && r.Low <= other.High:
		return true
	case r.High >= other.Low && r.High <= other.High:
		return true
	case r.Low >= other.Low && r.High <= other.High:
		return true
	case r.Low <= other.Low && r.High >= other.High:
		return true
	}
	return false
}

func (r Interval) fuse(other Interval) Interval {
	if other.Low < r.Low {
		r.Low = other.Low
	}
	if other.High > r.High {
		r.High = other.High
	}
	return r
}

func (r Interval) less(other Interval) bool {
	return r.Low < other.Low || r.Low == other.Low && r.High < other.High
}

// IntervalSet is a list of intervals sorted by (Low, High), no two of which
// overlap. The zero value is an empty set.
//
// IntervalSet is persistent: Merge returns a new set and leaves the receiver
// untouched, so a set may be kept while newer versions are derived from it.
type IntervalSet []Interval

// Merge returns s with n added, fusing n together with every member it
// overlaps. Invalid intervals are ignored.
func (s IntervalSet) Merge(n Interval) IntervalSet {
	if !n.IsValid() {
		return s
	}

	var overlapping, disjoint []Interval
	for _, r := range s {
		if n.Overlaps(r) {
			overlapping = append(overlapping, n.fuse(r))
		} else {
			disjoint = append(disjoint, r)
		}
	}

	if len(overlapping) == 0 {
		i := sort.Search(len(s), func(i int) bool { return n.less(s[i]) })
		t := make(IntervalSet, 0, len(s)+1)
		t = append(t, s[:i]...)
		t = append(t, n)
		return append(t, s[i:]...)
	}

	t := IntervalSet(disjoint)
	t = append(t, coalesce(overlapping)...)
	sort.Slice(t, func(i, j int) bool { return t[i].less(t[j]) })
	return t
}

// coalesce fuses members of w until no two of them overlap.
// Each pass replaces at least two intervals by one.
func coalesce(w []Interval) []Interval {
	for hasOverlap(w) {
		var pick Interval
		for i := range w {
			if overlapsAny(w, i) {
				pick = w[i]
				break
			}
		}
		rest := make([]Interval, 0, len(w)-1)
		for _, r := range w {
			if r.Overlaps(pick) {
				pick = pick.fuse(r)
			} else {
				rest = append(rest, r)
			}
		}
		w = append(rest, pick)
	}
	return w
}

func hasOverlap(w []Interval) bool {
	for i := range w {
		if overlapsAny(w, i) {
			return true
		}
	}
	return false
}

func overlapsAny(w []Interval, i int) bool {
	for j := range w {
		if j != i && w[i].Overlaps(w[j]) {
			return true
		}
	}
	return false
}

// Coverage returns the sum of High-Low over all members. A member
// contributes its width, not its position count: {3 3} adds nothing.
func (s IntervalSet) Coverage() int {
	n := 0
	for _, r := range s {
		n += r.High - r.Low
	}
	return n
}
