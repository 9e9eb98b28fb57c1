package math

import (
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
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in the fourth column (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformVec3(t *testing.T) {
	got := Translate(10, 20, 30).TransformVec3(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}

	got = Scale(2, 2, 2).TransformVec3(Vec3{1, 2, 3})
	want = Vec3{2, 4, 6}
	if got != want {
		t.Errorf("TransformVec3 with scale: got %v, want %v", got, want)
	}
}

func TestRotateY90(t *testing.T) {
	got := RotateY(DegToRad(90)).TransformVec3(Vec3{1, 0, 0})

	// (1,0,0) rotated 90 degrees about Y ends up on -Z
	if !near(got, Vec3{0, 0, -1}) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestRotateX90(t *testing.T) {
	got := RotateX(DegToRad(90)).TransformVec3(Vec3{0, 1, 0})
	if !near(got, Vec3{0, 0, 1}) {
		t.Errorf("RotateX 90: got %v, want (0, 0, 1)", got)
	}
}

func TestRotateZ90(t *testing.T) {
	got := RotateZ(DegToRad(90)).TransformVec3(Vec3{1, 0, 0})
	if !near(got, Vec3{0, 1, 0}) {
		t.Errorf("RotateZ 90: got %v, want (0, 1, 0)", got)
	}
}

func TestMulOrder(t *testing.T) {
	// Translate * Rotate rotates first, then translates.
	m := Translate(0, 0, -10).Mul(RotateY(DegToRad(90)))
	got := m.TransformVec3(Vec3{1, 0, 0})
	if !near(got, Vec3{0, 0, -11}) {
		t.Errorf("T*R: got %v, want (0, 0, -11)", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(DegToRad(45), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}

	// Points on the near and far planes map to NDC depth -1 and 1.
	nearZ := m.TransformVec3(Vec3{0, 0, -0.1}).Z
	farZ := m.TransformVec3(Vec3{0, 0, -100}).Z
	if abs(nearZ+1) > 0.001 || abs(farZ-1) > 0.001 {
		t.Errorf("Perspective depth: near %f far %f, want -1 and 1", nearZ, farZ)
	}
}

func TestPerspectiveAspect(t *testing.T) {
	wide := Perspective(DegToRad(45), 2, 0.1, 100)
	square := Perspective(DegToRad(45), 1, 0.1, 100)
	if abs(wide[0]*2-square[0]) > 0.0001 {
		t.Errorf("aspect 2 should halve x scale: got %f vs %f", wide[0], square[0])
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	got := Translate(5, 5, 5).TransformDirection(Vec3{0, 1, 0})
	if got != (Vec3{0, 1, 0}) {
		t.Errorf("TransformDirection: got %v, want (0, 1, 0)", got)
	}
}

func near(a, b Vec3) bool {
	return abs(a.X-b.X) < 0.001 && abs(a.Y-b.Y) < 0.001 && abs(a.Z-b.Z) < 0.001
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
