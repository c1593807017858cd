package core

import (
	"errors"
	"slices"
	"strconv"
	"testing"
	"time"
)

func TestFixedStepPacesGenerations(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(4)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should fire immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time has passed, should not step")
	}
	clock = clock.Add(100 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("100ms is less than the 250ms interval")
	}
	clock = clock.Add(150 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step after a full interval")
	}

	// A long stall is paid back one step per call.
	clock = clock.Add(500 * time.Millisecond)
	if !fs.ShouldStep() || !fs.ShouldStep() || fs.ShouldStep() {
		t.Fatal("expected exactly two catch-up steps")
	}
}

func TestFixedStepResetWaitsFullInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.Reset()
	if fs.ShouldStep() {
		t.Fatal("reset controller should not fire immediately")
	}
	clock = clock.Add(100 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected step after one interval")
	}
}

func TestByteGridResizeAndLoad(t *testing.T) {
	g := NewByteGrid(-3, 2)
	if g.W != 0 || len(g.Cells()) != 0 {
		t.Fatalf("negative width should clamp to zero, got %dx%d", g.W, g.H)
	}
	g.Resize(3, 2)
	g.Load([]uint8{1, 0, 1})
	if want := []uint8{1, 0, 1, 0, 0, 0}; !slices.Equal(g.Cells(), want) {
		t.Fatalf("cells %v, expected %v", g.Cells(), want)
	}
	if g.Index(2, 1) != 5 {
		t.Fatalf("index (2,1) = %d, expected 5", g.Index(2, 1))
	}
	g.Resize(2, 1)
	if want := []uint8{0, 0}; !slices.Equal(g.Cells(), want) {
		t.Fatalf("resize should clear, got %v", g.Cells())
	}
}

func TestParseIntReportsField(t *testing.T) {
	fields := map[string]string{"birth": "three", "size": "-1", "ok": "4"}

	_, _, err := ParseInt(fields, "birth", 0)
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Key != "birth" {
		t.Fatalf("expected ParseError for birth, got %v", err)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("expected wrapped ErrSyntax, got %v", err)
	}

	if _, _, err := ParseInt(fields, "size", 0); err == nil {
		t.Fatal("expected range error for negative size")
	}
	if v, ok, err := ParseInt(fields, "ok", 0); err != nil || !ok || v != 4 {
		t.Fatalf("ParseInt(ok) = %d, %v, %v", v, ok, err)
	}
	if _, ok, err := ParseInt(fields, "missing", 0); ok || err != nil {
		t.Fatal("missing key should report ok=false without error")
	}
}

func TestParseFloatRange(t *testing.T) {
	fields := map[string]string{"p": "1.5", "q": "0.25", "r": "x"}
	if _, _, err := ParseFloat(fields, "p", 0, 1); err == nil {
		t.Fatal("expected range error")
	}
	if v, _, err := ParseFloat(fields, "q", 0, 1); err != nil || v != 0.25 {
		t.Fatalf("ParseFloat(q) = %v, %v", v, err)
	}
	if _, _, err := ParseFloat(fields, "r", 0, 1); err == nil {
		t.Fatal("expected syntax error")
	}
}

func TestSnapshotFields(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "w", Value: "4"}}},
		{Name: "B", Params: []Parameter{{Key: "birth", Value: "3"}}},
	}}
	fields := snap.Fields()
	if fields["w"] != "4" || fields["birth"] != "3" {
		t.Fatalf("unexpected fields %v", fields)
	}
	if p, ok := snap.Lookup("birth"); !ok || p.Value != "3" {
		t.Fatal("Lookup(birth) failed")
	}
}
