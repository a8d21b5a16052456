package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, 1)

	if got := a.Add(b); got != V(4, 5) {
		t.Errorf("Add() = %v, expected (4, 5)", got)
	}
	if got := a.Sub(b); got != V(2, 3) {
		t.Errorf("Sub() = %v, expected (2, 3)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
	if got := V(0, 0).Dist(a); got != 5 {
		t.Errorf("Dist() = %f, expected 5", got)
	}
}

func TestVecLerp(t *testing.T) {
	a, b := V(0, 10), V(10, 20)
	if got := a.Lerp(b, 0.5); got != V(5, 15) {
		t.Errorf("Lerp(0.5) = %v, expected (5, 15)", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, expected %v", got, b)
	}
}

func TestVecUnit(t *testing.T) {
	u := V(10, 0).Unit()
	if u != V(1, 0) {
		t.Errorf("Unit() = %v, expected (1, 0)", u)
	}
	if math.Abs(V(3, 4).Unit().Len()-1) > 1e-9 {
		t.Error("Unit() should have length 1")
	}
	if V(0, 0).Unit() != (Vec{}) {
		t.Error("Unit() of zero vector should be zero")
	}
}

func TestClampToField(t *testing.T) {
	tests := []struct {
		name     string
		in       Vec
		expected Vec
	}{
		{"inside", V(20, 50), V(20, 50)},
		{"left of field", V(-3, 50), V(0, 50)},
		{"right of field", V(60, 50), V(FieldWidth, 50)},
		{"behind end line", V(20, -1), V(20, 0)},
		{"past far end line", V(20, 130), V(20, FieldLength)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClampToField(tc.in)
			if got != tc.expected {
				t.Errorf("ClampToField(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
			if !InField(got) {
				t.Errorf("clamped point %v should be in field", got)
			}
		})
	}
}

func TestLineOfScrimmage(t *testing.T) {
	tests := []struct {
		ballOn   int
		expected float64
	}{
		{0, 10},
		{25, 35},
		{100, 110},
		{-5, 10},
		{140, 110},
	}

	for _, tc := range tests {
		if got := LineOfScrimmage(tc.ballOn); got != tc.expected {
			t.Errorf("LineOfScrimmage(%d) = %f, expected %f", tc.ballOn, got, tc.expected)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
