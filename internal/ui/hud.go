//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strings"

	"synthvolcano/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type snapshotProvider interface {
	Snapshot() core.ParameterSnapshot
}

type namer interface {
	Name() string
}

var (
	panelColor    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor     = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	groupColor    = color.RGBA{R: 200, G: 170, B: 110, A: 255}
	buttonColor   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	disabledColor = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// hudControl is one +/- row bound to a parameter of the snapshot.
type hudControl struct {
	core.ParameterControl
	value    float64
	hasValue bool

	top         int
	minus, plus image.Rectangle
}

// HUD renders the parameter panel to the right of the raster view: the
// adjustable controls first, then every snapshot group read-only.
type HUD struct {
	subject any
	width   int
	title   string
	offsetX int

	ints   core.IntParameterSetter
	floats core.FloatParameterSetter

	snapshot core.ParameterSnapshot
	controls []hudControl

	panel *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided subject and panel width.
func NewHUD(subject any, width int) *HUD {
	h := &HUD{subject: subject, width: max(width, 0), title: "Controls"}
	if n, ok := subject.(namer); ok && n.Name() != "" {
		h.title = strings.ToUpper(n.Name()[:1]) + n.Name()[1:] + " controls"
	}
	h.ints, _ = subject.(core.IntParameterSetter)
	h.floats, _ = subject.(core.FloatParameterSetter)
	if provider, ok := subject.(core.ParameterControlsProvider); ok {
		for i, ctrl := range provider.ParameterControls() {
			top := controlsTop + i*lineHeight
			y := top + (lineHeight-buttonSize)/2
			plus := image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, hudControl{ParameterControl: ctrl, top: top, minus: minus, plus: plus})
		}
	}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update refreshes the snapshot and handles clicks on the +/- buttons. A
// successful adjustment regenerates the subject, so the snapshot is read
// again afterwards.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	provider, ok := h.subject.(snapshotProvider)
	if !ok {
		return
	}
	h.refresh(provider.Snapshot())
	if h.handleClick() {
		h.refresh(provider.Snapshot())
	}
}

func (h *HUD) refresh(snap core.ParameterSnapshot) {
	h.snapshot = snap
	for i := range h.controls {
		c := &h.controls[i]
		c.hasValue = false
		if param, ok := snap.Lookup(c.Key); ok {
			c.value, c.hasValue = c.Parse(param.Value)
		}
	}
}

func (h *HUD) handleClick() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case p.In(c.minus):
			return h.apply(c, -1)
		case p.In(c.plus):
			return h.apply(c, 1)
		}
	}
	return false
}

// target returns the value a click in direction would set, if any.
func (h *HUD) target(c *hudControl, direction int) (float64, bool) {
	if !c.hasValue {
		return 0, false
	}
	switch {
	case c.Type == core.ParamTypeInt && h.ints == nil,
		c.Type == core.ParamTypeFloat && h.floats == nil:
		return 0, false
	}
	return c.Adjust(c.value, direction)
}

func (h *HUD) apply(c *hudControl, direction int) bool {
	v, ok := h.target(c, direction)
	if !ok {
		return false
	}
	if c.Type == core.ParamTypeInt {
		ok = h.ints.SetIntParameter(c.Key, int(math.Round(v)))
	} else {
		ok = h.floats.SetFloatParameter(c.Key, v)
	}
	if ok {
		c.value = v
	}
	return ok
}

// Draw paints the panel of the given height at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}
	h.drawSnapshot()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(c *hudControl) {
	face := basicfont.Face7x13
	y := c.top + labelBaseline
	text.Draw(h.panel, c.Label, face, panelPadding, y, textColor)

	value, col := "--", mutedColor
	if c.hasValue {
		value, col = c.Format(c.value), textColor
	}
	x := c.minus.Min.X - buttonGap - text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, x, y, col)

	_, canDec := h.target(c, -1)
	_, canInc := h.target(c, 1)
	h.drawButton(c.minus, "-", canDec)
	h.drawButton(c.plus, "+", canInc)
}

// drawSnapshot lists the read-only snapshot groups below the controls until
// the panel runs out of room.
func (h *HUD) drawSnapshot() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + groupSpacing
	limit := h.panel.Bounds().Dy() - panelPadding
	for _, group := range h.snapshot.Groups {
		if y > limit {
			return
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		y += rowHeight
		for _, param := range group.Params {
			if y > limit {
				return
			}
			text.Draw(h.panel, param.Label, face, panelPadding, y, mutedColor)
			w := text.BoundString(face, param.Value).Dx()
			text.Draw(h.panel, param.Value, face, h.width-panelPadding-w, y, textColor)
			y += rowHeight
		}
		y += groupSpacing / 2
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg, fg = disabledColor, color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
	rowHeight      = 15
	groupSpacing   = 16
)
