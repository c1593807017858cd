// Package term draws a board in a terminal with tcell and steps it on key
// presses.
package term

import (
	"strings"
	"time"

	"lifegrid/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

// Board is the session state the view drives.
type Board interface {
	Step()
	Reset(seed int64)
	Grid() *life.Grid
	Status() []string
}

const helpLine = "n/enter step  r regenerate  s new seed  q quit"

// View renders one cell per terminal column.
type View struct {
	screen tcell.Screen
	board  Board
	seed   int64

	// NextSeed picks the seed for the "new seed" key.
	NextSeed func() int64

	alive tcell.Style
	dead  tcell.Style
	text  tcell.Style
}

// New returns a view over an initialised screen.
func New(screen tcell.Screen, board Board, seed int64) *View {
	return &View{
		screen:   screen,
		board:    board,
		seed:     seed,
		NextSeed: func() int64 { return time.Now().UnixNano() },
		alive:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		dead:     tcell.StyleDefault.Background(tcell.ColorBlack),
		text:     tcell.StyleDefault.Foreground(tcell.ColorSilver),
	}
}

// Run draws the board and processes events until the user quits or the
// screen is finalised.
func (v *View) Run() error {
	v.Draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
		}
		v.Draw()
	}
}

// handleKey applies a key press and reports whether the view should exit.
func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		v.board.Step()
		return false
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case 'n', 'N', ' ':
		v.board.Step()
	case 'r', 'R':
		v.board.Reset(v.seed)
	case 's', 'S':
		v.seed = v.NextSeed()
		v.board.Reset(v.seed)
	}
	return false
}

// Draw paints the visible part of the board followed by status and help.
func (v *View) Draw() {
	v.screen.Clear()
	sw, sh := v.screen.Size()
	g := v.board.Grid()
	rows := min(g.Height(), max(sh-2, 0))
	cols := min(g.Width(), sw)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if g.At(x, y) == life.Alive {
				v.screen.SetContent(x, y, '█', nil, v.alive)
				continue
			}
			v.screen.SetContent(x, y, ' ', nil, v.dead)
		}
	}
	v.drawText(0, rows, strings.Join(v.board.Status(), " | "))
	v.drawText(0, rows+1, helpLine)
	v.screen.Show()
}

func (v *View) drawText(x, y int, s string) {
	sw, sh := v.screen.Size()
	if y >= sh {
		return
	}
	for _, r := range s {
		if x >= sw {
			return
		}
		v.screen.SetContent(x, y, r, nil, v.text)
		x++
	}
}
