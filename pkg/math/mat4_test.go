package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformPoint(t *testing.T) {
	// Translate by (10, 20, 30)
	m := Translate(10, 20, 30)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotateY(t *testing.T) {
	// 90 degrees around Y maps +X to -Z
	m := RotateY(math.Pi / 2)
	p := [3]float32{1, 0, 0}
	result := m.TransformPoint(p)

	if math.Abs(float64(result[0])) > 1e-6 {
		t.Errorf("expected x near 0, got %f", result[0])
	}
	if math.Abs(float64(result[2]+1)) > 1e-6 {
		t.Errorf("expected z near -1, got %f", result[2])
	}
}

func TestLookAtOrigin(t *testing.T) {
	// Camera at +Z looking at origin: origin maps to (0, 0, -dist) in view space
	eye := Vec3{X: 0, Y: 0, Z: 5}
	view := LookAt(eye, Vec3{}, Vec3{Y: 1})

	result := view.TransformPoint([3]float32{0, 0, 0})
	if math.Abs(float64(result[0])) > 1e-6 || math.Abs(float64(result[1])) > 1e-6 {
		t.Errorf("origin should project onto view axis, got %v", result)
	}
	if math.Abs(float64(result[2]+5)) > 1e-5 {
		t.Errorf("expected view-space z -5, got %f", result[2])
	}
}

func TestPerspectiveBasics(t *testing.T) {
	m := Perspective(math.Pi/4, 16.0/9.0, 0.1, 100)

	if m[11] != -1 {
		t.Errorf("perspective w-divide element: got %f, want -1", m[11])
	}
	if m[0] <= 0 || m[5] <= 0 {
		t.Error("perspective focal elements should be positive")
	}
}
