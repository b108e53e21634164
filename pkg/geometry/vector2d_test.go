package geometry

import (
	"math"
	"testing"
)

// floatEquals compares scalars with the package Epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestNewVectorPolar(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		theta  float64
		want   Vector2D
	}{
		{"Zero radius", 0, 0, Vector2D{0, 0}},
		{"Unit on X-axis", 1, 0, Vector2D{1, 0}},
		{"Unit on Y-axis", 1, math.Pi / 2, Vector2D{0, 1}},
		{"Negative X", 2, math.Pi, Vector2D{-2, 0}},
		{"45 degrees", math.Sqrt2, math.Pi / 4, Vector2D{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewVectorPolar(tt.radius, tt.theta)
			if !got.Eq(tt.want) {
				t.Errorf("NewVectorPolar(%v, %v) = %v; want %v", tt.radius, tt.theta, got, tt.want)
			}
		})
	}
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, -5.678}
	want := "(1.23, -5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	a := Vector2D{1, 2}
	b := Vector2D{3, 4}

	tests := []struct {
		name string
		got  Vector2D
		want Vector2D
	}{
		{"Add", a.Add(b), Vector2D{4, 6}},
		{"Sub", a.Sub(b), Vector2D{-2, -2}},
		{"Mul", a.Mul(2), Vector2D{2, 4}},
		{"MulZero", a.Mul(0), Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Eq(tt.want) {
				t.Errorf("%s = %v; want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	if got := a.Dot(b); got != 11 {
		t.Errorf("Dot = %v; want 11", got)
	}
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector2D{3, 4}

	if got := v.Len(); got != 5 {
		t.Errorf("Len = %v; want 5", got)
	}
	if got := v.LenSqr(); got != 25 {
		t.Errorf("LenSqr = %v; want 25", got)
	}

	t.Run("Normalize", func(t *testing.T) {
		got := v.Normalize()
		if !got.Eq(Vector2D{0.6, 0.8}) {
			t.Errorf("Normalize = %v; want (0.6, 0.8)", got)
		}
		if !floatEquals(got.Len(), 1) {
			t.Errorf("Normalize length = %v; want 1", got.Len())
		}
	})

	t.Run("NormalizeZero", func(t *testing.T) {
		if got := Zero.Normalize(); !got.Eq(Zero) {
			t.Errorf("Normalize(0,0) = %v; want (0,0)", got)
		}
		tiny := Vector2D{Epsilon / 10, 0}
		if !tiny.IsZero() {
			t.Errorf("%v.IsZero() = false; want true", tiny)
		}
		if got := tiny.Normalize(); !got.Eq(Zero) {
			t.Errorf("Normalize(tiny) = %v; want (0,0)", got)
		}
	})
}

func TestVector_Distance(t *testing.T) {
	a := Vector2D{1, 1}
	b := Vector2D{4, 5}

	if got := a.DistanceTo(b); got != 5 {
		t.Errorf("DistanceTo = %v; want 5", got)
	}
	if got := a.DistanceSquaredTo(b); got != 25 {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
	if a.DistanceTo(b) != b.DistanceTo(a) {
		t.Error("DistanceTo is not symmetric")
	}
}

func TestVector_Angle(t *testing.T) {
	tests := []struct {
		v    Vector2D
		want float64
	}{
		{Vector2D{1, 0}, 0},
		{Vector2D{0, 1}, math.Pi / 2},
		{Vector2D{-1, 0}, math.Pi},
		{Vector2D{0, -1}, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := tt.v.Angle(); !floatEquals(got, tt.want) {
			t.Errorf("%v.Angle() = %v; want %v", tt.v, got, tt.want)
		}
	}
}

func TestVector_Rotate(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector2D
		angle float64
		want  Vector2D
	}{
		{"Quarter turn", Vector2D{1, 0}, math.Pi / 2, Vector2D{0, 1}},
		{"Half turn", Vector2D{1, 2}, math.Pi, Vector2D{-1, -2}},
		{"Full turn", Vector2D{3, -1}, 2 * math.Pi, Vector2D{3, -1}},
		{"Clockwise", Vector2D{0, 1}, -math.Pi / 2, Vector2D{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Rotate(tt.angle)
			if !got.Eq(tt.want) {
				t.Errorf("%v.Rotate(%v) = %v; want %v", tt.v, tt.angle, got, tt.want)
			}
			if !floatEquals(got.Len(), tt.v.Len()) {
				t.Errorf("Rotate changed length: %v -> %v", tt.v.Len(), got.Len())
			}
		})
	}
}

func TestVector_Lerp(t *testing.T) {
	a := Vector2D{0, 0}
	b := Vector2D{10, -10}

	tests := []struct {
		t    float64
		want Vector2D
	}{
		{0, a},
		{1, b},
		{0.5, Vector2D{5, -5}},
		{0.1, Vector2D{1, -1}},
	}
	for _, tt := range tests {
		if got := a.Lerp(b, tt.t); !got.Eq(tt.want) {
			t.Errorf("Lerp(%v) = %v; want %v", tt.t, got, tt.want)
		}
	}

	// lerp toward itself is a no-op
	h := Vector2D{0.6, 0.8}
	if got := h.Lerp(h, 0.1); !got.Eq(h) {
		t.Errorf("Lerp toward self = %v; want %v", got, h)
	}
}

func TestVector_Eq(t *testing.T) {
	v := Vector2D{1, 2}

	if !v.Eq(Vector2D{1, 2}) {
		t.Error("Eq exact match failed")
	}
	if !v.Eq(Vector2D{1 + Epsilon/2, 2 - Epsilon/2}) {
		t.Error("Eq epsilon match failed")
	}
	if v.Eq(Vector2D{1.1, 2}) {
		t.Error("Eq mismatch failed")
	}
}
