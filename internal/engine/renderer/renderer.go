// Package renderer owns global OpenGL state and the per-frame clear/present cycle.
package renderer

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/terraglobe/internal/logger"
	"github.com/Faultbox/terraglobe/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	FOV    float64 // vertical field of view, radians
}

// Renderer handles OpenGL global state and the projection.
type Renderer struct {
	config Config
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	if cfg.FOV <= 0 {
		cfg.FOV = gomath.Pi / 4
	}
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.01, 0.01, 0.03, 1.0) // near-black space background

	return r, nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Projection returns the perspective projection for the current window size.
func (r *Renderer) Projection() math.Mat4 {
	aspect := float32(r.config.Width) / float32(r.config.Height)
	return math.Perspective(float32(r.config.FOV), aspect, 0.1, 100.0)
}

// Size returns the current framebuffer size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// ReadPixels returns the current framebuffer contents as RGBA bytes,
// bottom-to-top as OpenGL delivers them.
func (r *Renderer) ReadPixels() []byte {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
}
