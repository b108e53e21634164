// Package ui holds the few ebiten widgets of the settings panel:
// sliders, checkboxes and buttons stacked in sections.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
	captionHeight = 15.0
	margin        = 10.0
)

// Widget is implemented by every panel element.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	Caption() string
	moveTo(x, y float64)
}

// a row is either a section header (widget nil) or a widget
type row struct {
	title   string
	widget  Widget
	y       float64
	visible bool
}

// UIPanel stacks widgets in titled sections and scrolls with the mouse wheel
// when they do not fit in MaxHeight.
type UIPanel struct {
	X, Y         float64
	Width        float64
	MaxHeight    float64
	ScrollOffset float64

	BGColor     color.RGBA
	BorderColor color.RGBA

	rows []row
}

// NewUIPanel creates an empty panel.
func NewUIPanel(x, y, width, maxHeight float64) *UIPanel {
	return &UIPanel{
		X:           x,
		Y:           y,
		Width:       width,
		MaxHeight:   maxHeight,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection starts a new section, the following widgets are listed under title.
func (p *UIPanel) AddSection(title string) {
	p.rows = append(p.rows, row{title: title})
}

// AddSlider adds a slider widget to the panel
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+margin, 0, p.Width-2*margin, label, min, max, value)
	p.add(s)
	return s
}

// AddCheckbox adds a checkbox widget to the panel
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+margin, 0, label, value)
	p.add(c)
	return c
}

// AddButton adds a full width button to the panel
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+margin, 0, p.Width-2*margin, 18, label, onClick)
	p.add(b)
	return b
}

func (p *UIPanel) add(w Widget) {
	p.rows = append(p.rows, row{widget: w})
	p.layout()
}

// contentHeight is the height needed to show every row without scrolling.
func (p *UIPanel) contentHeight() float64 {
	h := titleHeight
	for _, r := range p.rows {
		if r.widget == nil {
			h += sectionHeight
		} else {
			h += r.widget.Height()
		}
	}
	return h
}

// Height is the drawn height of the panel.
func (p *UIPanel) Height() float64 {
	return min(p.contentHeight(), p.MaxHeight)
}

// Contains reports whether the point lies on the panel, so clicks there are not used by the world.
func (p *UIPanel) Contains(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height()
}

// layout places the rows for the current scroll offset.
// Widgets are moved here so input and drawing see the same positions.
func (p *UIPanel) layout() {
	top := p.Y + titleHeight
	bottom := p.Y + p.Height()
	y := top - p.ScrollOffset
	for i := range p.rows {
		r := &p.rows[i]
		r.y = y
		if r.widget == nil {
			r.visible = y >= top && y+sectionHeight <= bottom
			y += sectionHeight
			continue
		}
		h := r.widget.Height()
		r.visible = y >= top && y+h <= bottom
		if _, ok := r.widget.(*Slider); ok {
			r.widget.moveTo(p.X+margin, y+captionHeight)
		} else {
			r.widget.moveTo(p.X+margin, y)
		}
		y += h
	}
}

func (p *UIPanel) scroll(dy float64) {
	maxScroll := max(0, p.contentHeight()-p.Height())
	p.ScrollOffset = max(0, min(maxScroll, p.ScrollOffset-dy*20))
}

// Update handles scrolling and the input of the visible widgets.
func (p *UIPanel) Update() {
	mx, my := ebiten.CursorPosition()
	if _, dy := ebiten.Wheel(); dy != 0 && p.Contains(float64(mx), float64(my)) {
		p.scroll(dy)
	}
	// the window may have been resized since the last frame
	p.scroll(0)
	p.layout()

	for _, r := range p.rows {
		if r.widget != nil && r.visible {
			r.widget.Update()
		}
	}
}

// Draw renders the panel and its visible rows.
func (p *UIPanel) Draw(screen *ebiten.Image) {
	height := p.Height()
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, "Configuration", int(p.X+margin), int(p.Y+5))

	for _, r := range p.rows {
		if !r.visible {
			continue
		}
		if r.widget == nil {
			vector.FillRect(screen,
				float32(p.X+5), float32(r.y),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, r.title, int(p.X+margin), int(r.y+3))
			continue
		}
		if caption := r.widget.Caption(); caption != "" {
			ebitenutil.DebugPrintAt(screen, caption, int(p.X+margin), int(r.y))
		}
		r.widget.Draw(screen)
	}
}
