// Package engine owns the window and the frame loop: it wires the ocean and
// sky simulations to their renderers and ticks everything once per frame.
package engine

import (
	"fmt"
	"runtime"

	"Tidal3D/internal/behaviour"
	"Tidal3D/internal/logger"
	"Tidal3D/internal/ocean"
	"Tidal3D/internal/renderer"
	"Tidal3D/internal/sky"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

var lastX, lastY float64
var firstMouse bool = true

// OceanMode selects which ocean simulation drives the surface.
type OceanMode int

const (
	GerstnerMode OceanMode = iota
	SpectralMode
)

type Engine struct {
	Width  int32
	Height int32
	Title  string
	Mode   OceanMode

	Camera *renderer.Camera
	Light  *renderer.Light

	Gerstner *ocean.GerstnerOcean
	Spectral *ocean.SpectralOcean
	Clouds   *sky.CloudLayer

	oceanRend    *renderer.OceanRenderer
	spectralRend *renderer.SpectralOceanRenderer
	skyRend      *renderer.SkyRenderer

	window            *glfw.Window
	EnableCameraInput bool

	onFrameCallback func(deltaTime float64)
}

// New builds an engine with a default window size; the caller attaches the
// ocean, clouds and light before Run.
func New() *Engine {
	return &Engine{
		Width:             1280,
		Height:            720,
		Title:             "Tidal3D",
		Mode:              GerstnerMode,
		Light:             renderer.Sun(),
		EnableCameraInput: true,
	}
}

// SetOnFrameCallback registers a hook that runs each frame after rendering.
func (e *Engine) SetOnFrameCallback(callback func(deltaTime float64)) {
	e.onFrameCallback = callback
}

// GetWindow returns the GLFW window for advanced use.
func (e *Engine) GetWindow() *glfw.Window {
	return e.window
}

// Run opens the window at the given position and drives the frame loop
// until the window closes. Must be called from the main goroutine.
func (e *Engine) Run(x, y int) error {
	lastX, lastY = float64(e.Width/2), float64(e.Height/2)
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 32)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(e.Width), int(e.Height), e.Title, nil, nil)
	if err != nil {
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return err
	}
	e.window = window

	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		logger.Log.Error("Could not initialize OpenGL", zap.Error(err))
		return err
	}
	window.SetPos(x, y)
	SetDarkTitleBar(window)

	gl.Viewport(0, 0, e.Width, e.Height)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	if renderer.Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	e.Camera = renderer.NewDefaultCamera(e.Height, e.Width)
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	window.SetCursorPosCallback(e.mouseCallback)

	if err := e.initRenderers(); err != nil {
		return err
	}
	defer e.cleanup()

	logger.Log.Info("Engine running",
		zap.Int32("width", e.Width),
		zap.Int32("height", e.Height),
		zap.Int("mode", int(e.Mode)))

	e.renderLoop()
	return nil
}

func (e *Engine) initRenderers() error {
	switch e.Mode {
	case GerstnerMode:
		if e.Gerstner == nil || !e.Gerstner.IsInitialized() {
			return fmt.Errorf("gerstner mode requires an initialized ocean")
		}
		e.oceanRend = renderer.NewOceanRenderer()
		if err := e.oceanRend.Init(e.Gerstner.Mesh()); err != nil {
			return err
		}
	case SpectralMode:
		if e.Spectral == nil || !e.Spectral.IsInitialized() {
			return fmt.Errorf("spectral mode requires an initialized ocean")
		}
		e.spectralRend = renderer.NewSpectralOceanRenderer()
		if err := e.spectralRend.Init(e.Spectral.Mesh(), e.Spectral.Config().N); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown ocean mode %d", e.Mode)
	}

	if e.Clouds != nil {
		e.skyRend = renderer.NewSkyRenderer()
		if err := e.skyRend.Init(e.Clouds); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) renderLoop() {
	lastTime := glfw.GetTime()
	lastWidth, lastHeight := e.Width, e.Height

	for !e.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime
		dt := float32(deltaTime)

		actualWidth, actualHeight := e.window.GetSize()
		if int32(actualWidth) != e.Width || int32(actualHeight) != e.Height {
			e.Width = int32(actualWidth)
			e.Height = int32(actualHeight)
		}
		if e.Width != lastWidth || e.Height != lastHeight {
			gl.Viewport(0, 0, e.Width, e.Height)
			e.Camera.SetAspectRatio(float32(e.Width) / float32(e.Height))
			lastWidth, lastHeight = e.Width, e.Height
		}

		if e.EnableCameraInput {
			e.Camera.ProcessKeyboard(e.window, dt)
		}

		behaviour.GlobalBehaviourManager.UpdateAll(dt)

		// Advance the simulations.
		switch e.Mode {
		case GerstnerMode:
			e.Gerstner.Update(dt)
		case SpectralMode:
			e.Spectral.Update(dt)
			e.spectralRend.UploadFields(e.Spectral.CurrentFields())
		}
		if e.Clouds != nil {
			e.Clouds.Update(dt)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gl.Enable(gl.DEPTH_TEST)

		if e.skyRend != nil {
			e.skyRend.Render(e.Camera, e.Light, e.Clouds)
		}

		switch e.Mode {
		case GerstnerMode:
			if err := e.oceanRend.Render(e.Camera, e.Light, e.Gerstner.Uniforms()); err != nil {
				logger.Log.Error("Ocean render failed", zap.Error(err))
			}
		case SpectralMode:
			e.spectralRend.Render(e.Camera, e.Light, e.Spectral.Config().EnableChoppiness)
		}

		if e.onFrameCallback != nil {
			e.onFrameCallback(deltaTime)
		}

		e.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (e *Engine) cleanup() {
	if e.oceanRend != nil {
		e.oceanRend.Cleanup()
	}
	if e.spectralRend != nil {
		e.spectralRend.Cleanup()
	}
	if e.skyRend != nil {
		e.skyRend.Cleanup()
	}
}

func (e *Engine) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	// Rotate only while the right mouse button is held on a focused window.
	if e.EnableCameraInput && w.GetAttrib(glfw.Focused) == glfw.True && w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		if firstMouse {
			lastX = xpos
			lastY = ypos
			firstMouse = false
			return
		}

		xoffset := xpos - lastX
		yoffset := lastY - ypos // y goes bottom to top
		lastX = xpos
		lastY = ypos

		e.Camera.ProcessMouseMovement(float32(xoffset), float32(yoffset), true)
	} else {
		firstMouse = true
	}
}
