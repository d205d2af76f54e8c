package math

import (
	"math"
	"testing"
)

func TestQuatIdentityRotate(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}
	r := QuatIdentity().Rotate(v)
	if r != v {
		t.Errorf("identity rotation changed vector: %v", r)
	}
}

func TestQuatAxisAngleRotate(t *testing.T) {
	// 90 degrees around Z maps +X to +Y
	q := QuatFromAxisAngle(Vec3{Z: 1}, math.Pi/2)
	r := q.Rotate(Vec3{X: 1})

	if math.Abs(float64(r.X)) > 1e-6 || math.Abs(float64(r.Y-1)) > 1e-6 || math.Abs(float64(r.Z)) > 1e-6 {
		t.Errorf("rotate +X by 90 around Z: got %v, want (0, 1, 0)", r)
	}
}

func TestQuatRotatePreservesLength(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{X: 1, Y: 1, Z: 0}.Normalize(), 0.7)
	v := Vec3{X: 2, Y: -1, Z: 0.5}
	r := q.Rotate(v)

	if math.Abs(float64(r.Length()-v.Length())) > 1e-5 {
		t.Errorf("rotation changed length: %f -> %f", v.Length(), r.Length())
	}
}

func TestQuatMulComposes(t *testing.T) {
	// Two 45-degree rotations equal one 90-degree rotation
	half := QuatFromAxisAngle(Vec3{Z: 1}, math.Pi/4)
	full := QuatFromAxisAngle(Vec3{Z: 1}, math.Pi/2)

	a := half.Mul(half).Rotate(Vec3{X: 1})
	b := full.Rotate(Vec3{X: 1})

	if math.Abs(float64(a.X-b.X)) > 1e-6 || math.Abs(float64(a.Y-b.Y)) > 1e-6 {
		t.Errorf("composed rotation mismatch: %v vs %v", a, b)
	}
}

func TestQuatToMat4Agrees(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{Y: 1}, 0.9)
	v := Vec3{X: 1, Y: 0, Z: 2}

	byQuat := q.Rotate(v)
	byMat := q.ToMat4().TransformPoint([3]float32{v.X, v.Y, v.Z})

	if math.Abs(float64(byQuat.X-byMat[0])) > 1e-5 ||
		math.Abs(float64(byQuat.Y-byMat[1])) > 1e-5 ||
		math.Abs(float64(byQuat.Z-byMat[2])) > 1e-5 {
		t.Errorf("quat and matrix rotation disagree: %v vs %v", byQuat, byMat)
	}
}
