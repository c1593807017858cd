package life

import (
	"errors"
	"slices"
	"testing"
)

func TestFromRowsRejectsRagged(t *testing.T) {
	_, err := FromRows([][]bool{{true, false}, {true}})
	if !errors.Is(err, ErrRagged) {
		t.Fatalf("expected ErrRagged, got %v", err)
	}
}

func TestFromRowsRoundTrip(t *testing.T) {
	rows := [][]bool{{true, false, false}, {false, false, true}}
	g, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("size %dx%d, expected 3x2", g.Width(), g.Height())
	}
	got := g.Rows()
	for y := range rows {
		if !slices.Equal(got[y], rows[y]) {
			t.Fatalf("row %d = %v, expected %v", y, got[y], rows[y])
		}
	}

	// Rows hands out a copy.
	got[0][0] = false
	if g.At(0, 0) != Alive {
		t.Fatal("mutating Rows() output changed the grid")
	}
	rows[0][1] = true
	if g.At(1, 0) != Dead {
		t.Fatal("mutating the FromRows input changed the grid")
	}
}

func TestAtOutOfRangeIsDead(t *testing.T) {
	g := filled(2, 2, Alive)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if g.At(p[0], p[1]) != Dead {
			t.Fatalf("At%v should read as dead", p)
		}
	}
}

func TestNilGridReadsEmpty(t *testing.T) {
	var g *Grid
	if !g.Empty() || g.Population() != 0 || len(g.Rows()) != 0 {
		t.Fatal("nil grid should behave as empty")
	}
	if !g.Equal(NewGrid(0, 0, nil)) {
		t.Fatal("nil grid should equal a 0x0 grid")
	}
}

func TestAppendBytes(t *testing.T) {
	g := NewGrid(3, 2, func(x, y int) Cell { return Cell(x == y) })
	got := g.AppendBytes(nil)
	want := []uint8{1, 0, 0, 0, 1, 0}
	if !slices.Equal(got, want) {
		t.Fatalf("AppendBytes = %v, expected %v", got, want)
	}
	if g.Population() != 2 {
		t.Fatalf("population %d, expected 2", g.Population())
	}
}
