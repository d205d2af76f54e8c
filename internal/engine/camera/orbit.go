// Package camera provides the orbit camera for the globe view.
package camera

import (
	gomath "math"

	"github.com/Faultbox/terraglobe/pkg/math"
)

// Startup orientation: camera on the +Z axis at the default distance,
// looking at the planet center.
const (
	DefaultTheta    = gomath.Pi / 2
	DefaultPhi      = gomath.Pi / 2
	DefaultDistance = 2.2
)

// OrbitCamera orbits the fixed origin using spherical coordinates, with an
// optional roll (tilt) about the viewing axis. All mutations clamp rather
// than reject, so every input sequence leaves the camera in a valid state.
type OrbitCamera struct {
	Theta    float64 // azimuth, radians, free-running
	Phi      float64 // polar angle, radians, kept inside (PhiMin, PhiMax)
	Distance float64 // radius from the origin
	Tilt     float64 // roll about the forward axis, radians

	// Constraints
	MinDistance  float64
	MaxDistance  float64
	PhiMin       float64
	PhiMax       float64
	HomeDistance float64 // distance restored by Reset

	// Sensitivity
	DragSensitivity float64 // radians per pixel
	TiltSensitivity float64 // radians per key repeat
}

// New returns an orbit camera with default settings.
func New() *OrbitCamera {
	return &OrbitCamera{
		Theta:           DefaultTheta,
		Phi:             DefaultPhi,
		Distance:        DefaultDistance,
		MinDistance:     1.2,
		MaxDistance:     8.0,
		PhiMin:          0.001,
		PhiMax:          gomath.Pi - 0.001,
		HomeDistance:    DefaultDistance,
		DragSensitivity: 0.01,
		TiltSensitivity: 0.05,
	}
}

// Drag applies a pointer delta in pixels. The delta is first rotated by -Tilt
// so it is interpreted in the un-tilted camera frame; screen-up then maps to
// camera-up regardless of the current roll. Phi never reaches the poles, which
// would degenerate the look-at.
func (c *OrbitCamera) Drag(dx, dy float64) {
	cos := gomath.Cos(-c.Tilt)
	sin := gomath.Sin(-c.Tilt)
	rx := dx*cos - dy*sin
	ry := dx*sin + dy*cos

	c.Theta += rx * c.DragSensitivity
	c.Phi = math.Clamp(c.Phi-ry*c.DragSensitivity, c.PhiMin, c.PhiMax)
}

// Zoom scales the distance by factor, clamped to [MinDistance, MaxDistance].
func (c *OrbitCamera) Zoom(factor float64) {
	c.Distance = math.Clamp(c.Distance*factor, c.MinDistance, c.MaxDistance)
}

// TiltBy adjusts the roll by delta steps of TiltSensitivity, clamped to
// [-pi/2, pi/2].
func (c *OrbitCamera) TiltBy(delta float64) {
	c.SetTilt(c.Tilt + delta*c.TiltSensitivity)
}

// SetTilt sets the roll directly, clamped to [-pi/2, pi/2].
func (c *OrbitCamera) SetTilt(tilt float64) {
	c.Tilt = math.Clamp(tilt, -gomath.Pi/2, gomath.Pi/2)
}

// Reset restores the startup orientation.
func (c *OrbitCamera) Reset() {
	c.Theta = DefaultTheta
	c.Phi = DefaultPhi
	c.Tilt = 0
	c.Distance = c.HomeDistance
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sinPhi := gomath.Sin(c.Phi)
	return math.Vec3{
		X: float32(c.Distance * sinPhi * gomath.Cos(c.Theta)),
		Y: float32(c.Distance * gomath.Cos(c.Phi)),
		Z: float32(c.Distance * sinPhi * gomath.Sin(c.Theta)),
	}
}

// ViewMatrix returns the view matrix: look-at the origin first, then roll by
// Tilt about the forward axis. Order matters; rolling before the look-at
// would be undone by its auto-orientation.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	pos := c.Position()
	forward := math.Vec3{}.Sub(pos).Normalize()
	up := math.QuatFromAxisAngle(forward, float32(c.Tilt)).Rotate(math.Vec3{Y: 1})
	return math.LookAt(pos, math.Vec3{}, up)
}
