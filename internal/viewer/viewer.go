// Package viewer implements the main loop: it samples the astronomical model
// on a schedule, applies camera input immediately, and issues one render per
// frame.
package viewer

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/terraglobe/internal/astro"
	"github.com/Faultbox/terraglobe/internal/config"
	"github.com/Faultbox/terraglobe/internal/engine/camera"
	"github.com/Faultbox/terraglobe/internal/engine/debug"
	"github.com/Faultbox/terraglobe/internal/engine/input"
	"github.com/Faultbox/terraglobe/internal/engine/renderer"
	"github.com/Faultbox/terraglobe/internal/engine/scene"
	"github.com/Faultbox/terraglobe/internal/engine/window"
	"github.com/Faultbox/terraglobe/internal/logger"
)

const (
	// lightDistance is where the sun light sits, in planet radii. Far
	// enough that the lighting is effectively directional.
	lightDistance = 10.0

	// eclipticTilt is the planet's axial tilt, used by the align-to-ecliptic key.
	eclipticTilt = 23.44 * gomath.Pi / 180

	zoomInStep  = 0.9
	zoomOutStep = 1.0 / zoomInStep

	// keyOrbitStep is the synthetic pointer delta, in pixels, applied per
	// arrow-key press.
	keyOrbitStep = 10.0
)

// Viewer owns the window, the scene and the camera, and runs the frame loop.
type Viewer struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	scene    *scene.Scene
	input    *input.Input
	drag     input.DragTracker

	cam   *camera.OrbitCamera
	sched *Scheduler
	shots *debug.ScreenshotCapture

	preciseSun bool
}

// New creates a viewer from the given configuration.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:        cfg,
		preciseSun: cfg.Astro.PreciseSun,
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      "Terraglobe",
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer and scene need the OpenGL context the window created.
	// Fullscreen can override the configured size, so size the renderer
	// from the window SDL actually created.
	width, height := v.window.GetSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.scene, err = scene.New()
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	v.input = input.New()

	v.cam = camera.New()
	v.cam.Distance = cfg.Camera.Distance
	v.cam.HomeDistance = cfg.Camera.Distance
	v.cam.MinDistance = cfg.Camera.MinDistance
	v.cam.MaxDistance = cfg.Camera.MaxDistance
	v.cam.DragSensitivity = cfg.Camera.DragSensitivity
	v.cam.TiltSensitivity = cfg.Camera.TiltSensitivity

	v.sched = NewScheduler(cfg.Astro.RotationInterval.Std(), cfg.Astro.SunInterval.Std())
	v.shots = debug.NewScreenshotCapture("screenshots", "globe")

	logger.Info("viewer initialized",
		zap.Duration("rotation_interval", v.sched.RotationInterval),
		zap.Duration("sun_interval", v.sched.SunInterval),
		zap.Bool("precise_sun", v.preciseSun),
	)
	return v, nil
}

// Run starts the main loop. It returns when the window is closed or ESC is
// pressed.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()

		// 1. Process input; camera mutations happen here, synchronously.
		if v.input.Update() {
			break
		}
		for _, event := range v.input.Events() {
			v.handleEvent(event)
		}

		// 2. Resample the astronomical models when due.
		v.resample(now)

		// 3. Render exactly one frame.
		v.renderer.Begin()
		v.scene.Render(v.cam.ViewMatrix(), v.renderer.Projection())
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			v.window.SetTitle(fmt.Sprintf("Terraglobe - %d fps", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		v.running = false

	case input.EventWindowResize:
		v.renderer.Resize(e.Width, e.Height)

	case input.EventMouseDown:
		if e.Button == sdl.BUTTON_LEFT {
			v.drag.Begin(e.MouseX, e.MouseY)
		}

	case input.EventMouseUp:
		if e.Button == sdl.BUTTON_LEFT {
			v.drag.End()
		}

	case input.EventMouseMove:
		if dx, dy, ok := v.drag.Move(e.MouseX, e.MouseY); ok {
			v.cam.Drag(float64(dx), float64(dy))
		}

	case input.EventMouseWheel:
		for n := e.WheelY; n > 0; n-- {
			v.cam.Zoom(zoomInStep)
		}
		for n := e.WheelY; n < 0; n++ {
			v.cam.Zoom(zoomOutStep)
		}

	case input.EventKeyDown:
		v.handleKey(e.Key)
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false

	case sdl.SCANCODE_R:
		v.cam.Reset()

	case sdl.SCANCODE_Q:
		v.cam.TiltBy(-1)
	case sdl.SCANCODE_E:
		v.cam.TiltBy(1)

	case sdl.SCANCODE_LEFT:
		v.cam.Drag(-keyOrbitStep, 0)
	case sdl.SCANCODE_RIGHT:
		v.cam.Drag(keyOrbitStep, 0)
	case sdl.SCANCODE_UP:
		v.cam.Drag(0, -keyOrbitStep)
	case sdl.SCANCODE_DOWN:
		v.cam.Drag(0, keyOrbitStep)

	case sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS:
		v.cam.Zoom(zoomInStep)
	case sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS:
		v.cam.Zoom(zoomOutStep)

	case sdl.SCANCODE_M:
		show := !v.scene.Visible(scene.ObjectNoonMarker)
		v.scene.SetVisible(scene.ObjectNoonMarker, show)
		v.scene.SetVisible(scene.ObjectMidnightMarker, show)

	case sdl.SCANCODE_1:
		v.cam.SetTilt(0)
	case sdl.SCANCODE_2:
		v.cam.SetTilt(eclipticTilt)

	case sdl.SCANCODE_P:
		v.preciseSun = !v.preciseSun
		v.sched.Force()
		logger.Info("sun model switched", zap.Bool("precise", v.preciseSun))

	case sdl.SCANCODE_F12:
		v.captureScreenshot()
	}
}

func (v *Viewer) captureScreenshot() {
	w, h := v.renderer.Size()
	path, err := v.shots.CaptureFromPixels(v.renderer.ReadPixels(), w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// resample updates planet rotation and sun position when their intervals
// have elapsed.
func (v *Viewer) resample(now time.Time) {
	rotation, sun := v.sched.Due(now)

	if rotation {
		rot := astro.PlanetRotation(now)
		v.scene.SetGlobeRotation(rot)
		logger.Debug("planet rotation resampled", zap.Float64("radians", rot))
	}

	if sun {
		if v.preciseSun {
			x, y, z := astro.SunDirection(now)
			wx, wy, wz := sunWorldPosition(x, y, z, v.scene.GlobeRotation())
			v.scene.SetLightPosition(wx*lightDistance, wy*lightDistance, wz*lightDistance)
			logger.Debug("sun direction resampled", zap.Float64("elevation", gomath.Asin(wy)))
		} else {
			elevation := astro.SunElevation(now)
			v.scene.SetLightPosition(lightDistance, astro.LightOffset(lightDistance, elevation), 0)
			logger.Debug("sun elevation resampled", zap.Float64("radians", elevation))
		}
	}
}

// sunWorldPosition converts the earth-fixed sun direction (x through the
// prime meridian, z through the north pole) into a unit world-space light
// direction for a globe spun to rotation radians. The direction is mapped
// onto the mesh frame (+Y polar axis, prime meridian at -Z) and then given
// the same Y-axis spin as the globe; without that spin the daily rotation
// would be counted twice and the subsolar point would circle the surface
// twice per day.
func sunWorldPosition(x, y, z, rotation float64) (wx, wy, wz float64) {
	mx, my, mz := -y, z, -x

	c := gomath.Cos(rotation)
	s := gomath.Sin(rotation)
	return mx*c + mz*s, my, -mx*s + mz*c
}
