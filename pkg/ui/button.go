package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable UI button
type Button struct {
	Label   string
	X, Y    float64
	W, H    float64
	clicked bool   // Track if already clicked this press
	OnClick func() // Callback function

	BGColor    color.RGBA
	HoverColor color.RGBA
}

// NewButton creates a new button instance
func NewButton(x, y, width, height float64, label string, onClick func()) *Button {
	return &Button{
		Label:      label,
		X:          x,
		Y:          y,
		W:          width,
		H:          height,
		OnClick:    onClick,
		BGColor:    color.RGBA{R: 80, G: 120, B: 180, A: 255},
		HoverColor: color.RGBA{R: 100, G: 150, B: 220, A: 255},
	}
}

// Contains reports whether the point lies on the button.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Update fires OnClick once per left button press over the button.
func (b *Button) Update() {
	mx, my := ebiten.CursorPosition()
	if b.Contains(float64(mx), float64(my)) && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !b.clicked && b.OnClick != nil {
			b.OnClick()
			b.clicked = true
		}
	} else {
		b.clicked = false
	}
}

// Draw renders the button
func (b *Button) Draw(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	bgColor := b.BGColor
	if b.Contains(float64(mx), float64(my)) {
		bgColor = b.HoverColor
	}

	vector.FillRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.W), float32(b.H),
		bgColor, true)
	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.W), float32(b.H),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
	ebitenutil.DebugPrintAt(screen, b.Label, int(b.X+6), int(b.Y+3))
}

// Caption is empty, the label is drawn inside the button.
func (b *Button) Caption() string {
	return ""
}

func (b *Button) Height() float64 {
	return b.H + 6
}

func (b *Button) moveTo(x, y float64) {
	b.X, b.Y = x, y
}
