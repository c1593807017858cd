package term

import (
	"strings"
	"testing"

	"lifegrid/internal/sims/threshold"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newSession(t *testing.T, fields map[string]string) *threshold.Session {
	t.Helper()
	sess := threshold.New(threshold.DefaultSettings())
	if err := sess.Apply(fields); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return sess
}

func rowText(cells []tcell.SimCell, width, y int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[0])
	}
	return b.String()
}

func TestDrawShowsBoardAndStatus(t *testing.T) {
	screen := newScreen(t, 30, 8)
	sess := newSession(t, map[string]string{"size": "3", "survival_chance": "1"})
	v := New(screen, sess, 1)
	v.Draw()

	cells, width, _ := screen.GetContents()
	if got := rowText(cells, width, 0); !strings.HasPrefix(got, strings.Repeat("█", 3)) {
		t.Fatalf("first row %q, expected three alive cells", got)
	}
	if status := rowText(cells, width, 3); !strings.HasPrefix(status, "Generation 0") {
		t.Fatalf("status row %q", status)
	}
	if help := rowText(cells, width, 4); !strings.HasPrefix(help, "n/enter step") {
		t.Fatalf("help row %q", help)
	}
}

func TestKeysDriveSession(t *testing.T) {
	screen := newScreen(t, 30, 10)
	sess := newSession(t, map[string]string{"size": "4", "survival_chance": "0.5", "seed": "11"})
	initial := sess.Grid()
	v := New(screen, sess, 11)
	v.NextSeed = func() int64 { return 99 }

	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := v.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sess.Generation() != 2 {
		t.Fatalf("generation %d, expected 2", sess.Generation())
	}

	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if err := v.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sess.Generation() != 0 || !sess.Grid().Equal(initial) {
		t.Fatal("r should regenerate the first board")
	}

	screen.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	if err := v.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sess.Settings().Seed != 99 {
		t.Fatalf("seed %d, expected 99", sess.Settings().Seed)
	}
}

func TestDrawClipsToScreen(t *testing.T) {
	screen := newScreen(t, 5, 4)
	sess := newSession(t, map[string]string{"size": "10", "survival_chance": "1"})
	v := New(screen, sess, 1)
	v.Draw()
	cells, width, _ := screen.GetContents()
	if got := rowText(cells, width, 1); got != "█████" {
		t.Fatalf("row 1 %q, expected board clipped to 5 columns", got)
	}
	if got := rowText(cells, width, 2); !strings.HasPrefix(got, "Gene") {
		t.Fatalf("status should take the row after the visible board, got %q", got)
	}
}
