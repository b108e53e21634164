package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal value picker, dragged with the left mouse button.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
	Format   string          // value format in the caption
	OnChange func(v float64) // called after every change of Value
}

// NewSlider creates a slider with value clamped to [min, max].
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	s := &Slider{
		Label:  label,
		Min:    min,
		Max:    max,
		X:      x,
		Y:      y,
		W:      w,
		H:      10,
		Format: "%.3f",
	}
	s.Value = s.clamp(value)
	return s
}

func (s *Slider) clamp(v float64) float64 {
	return max(s.Min, min(s.Max, v))
}

// Contains reports whether the point lies on the slider bar.
func (s *Slider) Contains(x, y float64) bool {
	return x >= s.X && x <= s.X+s.W && y >= s.Y && y <= s.Y+s.H
}

// valueAt maps a horizontal position on the bar to a value.
func (s *Slider) valueAt(x float64) float64 {
	return s.clamp(s.Min + (x-s.X)/s.W*(s.Max-s.Min))
}

// Set changes the value, clamped to the range, and calls OnChange if it moved.
func (s *Slider) Set(v float64) {
	v = s.clamp(v)
	if v == s.Value {
		return
	}
	s.Value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && s.Contains(float64(mx), float64(my)) {
		s.Set(s.valueAt(float64(mx)))
	}
}

// Draw renders the slider
func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	ratio := (s.Value - s.Min) / (s.Max - s.Min)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}

func (s *Slider) Caption() string {
	return fmt.Sprintf("%s: "+s.Format, s.Label, s.Value)
}

func (s *Slider) Height() float64 {
	return s.H + 25 // label above the bar
}

func (s *Slider) moveTo(x, y float64) {
	s.X, s.Y = x, y
}
