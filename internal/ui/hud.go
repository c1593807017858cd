//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type statusProvider interface {
	Status() []string
}

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor        = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the settings panel to the right of the board. Clicking +/-
// on a control starts a new run with the adjusted value.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     []string

	controls     []controlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

type controlState struct {
	control  core.ParameterControl
	value    float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: "Settings"}
	if sim != nil && sim.Name() != "" {
		h.title = fmt.Sprintf("%s settings", sim.Name())
	}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for i, ctrl := range provider.ParameterControls() {
			top := controlsTop + i*lineHeight
			buttonY := top + (lineHeight-buttonSize)/2
			plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, controlState{control: ctrl, top: top, minusRect: minus, plusRect: plus})
		}
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// MinHeight is the smallest window height that shows every control.
func (h *HUD) MinHeight() int {
	if h == nil || h.width <= 0 {
		return 0
	}
	return minPanelHeight
}

// Update refreshes cached values from the simulation and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if provider, ok := h.sim.(statusProvider); ok {
		h.status = provider.Status()
	}
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		if v, err := strconv.ParseFloat(param.Value, 64); err == nil {
			state.value = v
			state.hasValue = true
		}
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case pt.In(state.minusRect):
			h.adjust(state, -1)
			return
		case pt.In(state.plusRect):
			h.adjust(state, 1)
			return
		}
	}
}

// target returns the value one step away from the current value in the
// given direction, or false when the control cannot move that way.
func (h *HUD) target(state *controlState, direction int) (float64, bool) {
	if !state.hasValue {
		return 0, false
	}
	ctrl := state.control
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		step = math.Max(math.Round(step), 1)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	next := state.value + float64(direction)*step
	if ctrl.HasMin && next < ctrl.Min-1e-9 {
		return 0, false
	}
	if ctrl.HasMax && next > ctrl.Max+1e-9 {
		return 0, false
	}
	return math.Round(next*1e6) / 1e6, true
}

func (h *HUD) adjust(state *controlState, direction int) {
	next, ok := h.target(state, direction)
	if !ok {
		return
	}
	var applied bool
	if state.control.Type == core.ParamTypeInt {
		applied = h.intSetter.SetIntParameter(state.control.Key, int(next))
	} else {
		applied = h.floatSetter.SetFloatParameter(state.control.Key, next)
	}
	if applied {
		state.value = next
	}
}

// Draw paints the HUD panel anchored to the right edge of the board.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := max(h.sim.Size().H*max(scale, 1), minPanelHeight)
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	for _, line := range h.status {
		y += statusSpacing
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
	}

	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(state *controlState) {
	face := basicfont.Face7x13
	baseline := state.top + labelBaseline
	text.Draw(h.panel, state.control.Label, face, panelPadding, baseline, textColor)

	value, valueColor := "--", dimColor
	if state.hasValue {
		value, valueColor = formatValue(state.control, state.value), textColor
	}
	valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, valueX, baseline, valueColor)

	_, canMinus := h.target(state, -1)
	_, canPlus := h.target(state, 1)
	h.drawButton(state.minusRect, "-", canMinus)
	h.drawButton(state.plusRect, "+", canPlus)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 16
	statusLines    = 4
	controlsTop    = panelPadding + headerBaseline + statusLines*statusSpacing + 14
	minPanelHeight = controlsTop + 4*lineHeight + panelPadding
)
