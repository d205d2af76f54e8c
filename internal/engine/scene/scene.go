// Package scene holds the drawable globe state: the sphere mesh, the
// terminator markers and the directional light. The viewer drives it through
// plain numeric setters; the scene never samples time or input itself.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/terraglobe/internal/engine/shader"
	"github.com/Faultbox/terraglobe/pkg/math"
)

// Object identifiers for visibility toggles.
const (
	ObjectGlobe          = "globe"
	ObjectNoonMarker     = "noon"
	ObjectMidnightMarker = "midnight"
)

// markerRadius is the marker size relative to the globe; markerAltitude
// lifts markers just off the surface so they are not z-fighting the globe.
const (
	markerRadius   = 0.03
	markerAltitude = 1.01
)

// Scene owns the GL resources for the globe view.
type Scene struct {
	program uint32

	locModel      int32
	locViewProj   int32
	locLightPos   int32
	locDayColor   int32
	locNightColor int32
	locLit        int32

	sphereVAO        uint32
	sphereVBO        uint32
	sphereEBO        uint32
	sphereIndexCount int32

	rotationY float32
	lightPos  math.Vec3
	visible   map[string]bool
}

// New creates the scene. Requires a current OpenGL context.
func New() (*Scene, error) {
	s := &Scene{
		lightPos: math.Vec3{X: 10},
		visible: map[string]bool{
			ObjectGlobe:          true,
			ObjectNoonMarker:     true,
			ObjectMidnightMarker: true,
		},
	}

	program, err := shader.CompileProgram(globeVertexShader, globeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("globe shader: %w", err)
	}
	s.program = program
	s.locModel = shader.GetUniform(program, "uModel")
	s.locViewProj = shader.GetUniform(program, "uViewProj")
	s.locLightPos = shader.GetUniform(program, "uLightPos")
	s.locDayColor = shader.GetUniform(program, "uDayColor")
	s.locNightColor = shader.GetUniform(program, "uNightColor")
	s.locLit = shader.GetUniform(program, "uLit")

	s.createSphereMesh()

	return s, nil
}

func (s *Scene) createSphereMesh() {
	vertices, indices := buildSphere(48, 96)
	s.sphereIndexCount = int32(len(indices))

	gl.GenVertexArrays(1, &s.sphereVAO)
	gl.BindVertexArray(s.sphereVAO)

	gl.GenBuffers(1, &s.sphereVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.sphereVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &s.sphereEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.sphereEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.BindVertexArray(0)
}

// SetGlobeRotation sets the planet spin angle about its polar axis.
func (s *Scene) SetGlobeRotation(radians float64) {
	s.rotationY = float32(radians)
}

// GlobeRotation returns the current spin angle.
func (s *Scene) GlobeRotation() float64 {
	return float64(s.rotationY)
}

// SetLightPosition places the directional sun light.
func (s *Scene) SetLightPosition(x, y, z float64) {
	s.lightPos = math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}
}

// LightPosition returns the current sun light position.
func (s *Scene) LightPosition() (x, y, z float64) {
	return float64(s.lightPos.X), float64(s.lightPos.Y), float64(s.lightPos.Z)
}

// SetVisible toggles an object on or off.
func (s *Scene) SetVisible(id string, v bool) {
	s.visible[id] = v
}

// Visible reports whether an object is drawn.
func (s *Scene) Visible(id string) bool {
	return s.visible[id]
}

// Render draws the globe and markers with the given view and projection.
func (s *Scene) Render(view, proj math.Mat4) {
	viewProj := proj.Mul(view)

	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.locViewProj, 1, false, &viewProj[0])
	gl.Uniform3f(s.locLightPos, s.lightPos.X, s.lightPos.Y, s.lightPos.Z)

	gl.BindVertexArray(s.sphereVAO)

	if s.visible[ObjectGlobe] {
		model := math.RotateY(s.rotationY)
		gl.UniformMatrix4fv(s.locModel, 1, false, &model[0])
		gl.Uniform3f(s.locDayColor, 0.22, 0.47, 0.78)
		gl.Uniform3f(s.locNightColor, 0.02, 0.03, 0.08)
		gl.Uniform1i(s.locLit, 1)
		gl.DrawElements(gl.TRIANGLES, s.sphereIndexCount, gl.UNSIGNED_INT, nil)
	}

	// Markers sit on the subsolar and antisolar points: the noon marker
	// faces the sun, the midnight marker is its antipode.
	sunward := s.lightPos.Normalize()
	if s.visible[ObjectNoonMarker] {
		s.renderMarker(sunward.Scale(markerAltitude), math.Vec3{X: 1, Y: 0.9, Z: 0.3})
	}
	if s.visible[ObjectMidnightMarker] {
		s.renderMarker(sunward.Scale(-markerAltitude), math.Vec3{X: 0.35, Y: 0.35, Z: 0.6})
	}

	gl.BindVertexArray(0)
}

func (s *Scene) renderMarker(pos math.Vec3, color math.Vec3) {
	model := math.Translate(pos.X, pos.Y, pos.Z).Mul(math.Scale(markerRadius, markerRadius, markerRadius))
	gl.UniformMatrix4fv(s.locModel, 1, false, &model[0])
	gl.Uniform3f(s.locDayColor, color.X, color.Y, color.Z)
	gl.Uniform1i(s.locLit, 0)
	gl.DrawElements(gl.TRIANGLES, s.sphereIndexCount, gl.UNSIGNED_INT, nil)
}

// Destroy releases all GL resources.
func (s *Scene) Destroy() {
	if s.sphereVAO != 0 {
		gl.DeleteVertexArrays(1, &s.sphereVAO)
	}
	if s.sphereVBO != 0 {
		gl.DeleteBuffers(1, &s.sphereVBO)
	}
	if s.sphereEBO != 0 {
		gl.DeleteBuffers(1, &s.sphereEBO)
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
	}
}
