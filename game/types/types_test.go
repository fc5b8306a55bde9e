package types

import "testing"

func TestDirectionVectors(t *testing.T) {
	cases := []struct {
		dir  Direction
		want Point
	}{
		{Up, Point{0, -1}},
		{Right, Point{1, 0}},
		{Down, Point{0, 1}},
		{Left, Point{-1, 0}},
	}

	for _, tc := range cases {
		if got := tc.dir.ToPoint(); got != tc.want {
			t.Errorf("%s.ToPoint() = %v, want %v", tc.dir, got, tc.want)
		}
		// Moving forward then backward must land on the start cell
		start := Point{5, 5}
		back := start.Add(tc.dir.ToPoint()).Add(tc.dir.Opposite().ToPoint())
		if back != start {
			t.Errorf("%s followed by %s ends at %v, want %v", tc.dir, tc.dir.Opposite(), back, start)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, want := range pairs {
		if !d.IsOpposite(want) {
			t.Errorf("Expected %s to be opposite of %s", want, d)
		}
		if d.IsOpposite(d) {
			t.Errorf("%s must not be its own opposite", d)
		}
	}

	if Direction(9).Valid() {
		t.Error("Out-of-range direction reported as valid")
	}
}

func TestGridContains(t *testing.T) {
	g := DefaultGrid()

	inside := []Point{{0, 0}, {GridSize - 1, GridSize - 1}, {10, 3}}
	for _, p := range inside {
		if !g.Contains(p) {
			t.Errorf("Expected %v inside %dx%d grid", p, g.Width, g.Height)
		}
	}

	outside := []Point{{-1, 0}, {0, -1}, {GridSize, 0}, {0, GridSize}}
	for _, p := range outside {
		if g.Contains(p) {
			t.Errorf("Expected %v outside %dx%d grid", p, g.Width, g.Height)
		}
	}

	if g.Cells() != GridSize*GridSize {
		t.Errorf("Expected %d cells, got %d", GridSize*GridSize, g.Cells())
	}
}
