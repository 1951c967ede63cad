package game

import (
	"fmt"
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"beyondthesea/internal/ocean"
)

var windowHints = []struct {
	hint  glfw.Hint
	value int
}{
	{glfw.ContextVersionMajor, 4},
	{glfw.ContextVersionMinor, 1},
	{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
	{glfw.OpenGLForwardCompatible, glfw.True},
	{glfw.Resizable, glfw.False},
	{glfw.ScaleToMonitor, glfw.True},
	{glfw.Visible, glfw.False},
}

// openWindow creates the game window at the viewport size times scale,
// centred on the primary monitor, with its GL context current.
func openWindow(cfg ocean.Config, scale float64) (*glfw.Window, error) {
	if !(scale > 0) {
		scale = 1
	}
	width := int(math.Round(cfg.ViewportWidth * scale))
	height := int(math.Round(cfg.ViewportHeight * scale))

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	for _, h := range windowHints {
		glfw.WindowHint(h.hint, h.value)
	}

	window, err := glfw.CreateWindow(width, height, WindowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window %dx%d: %w", width, height, err)
	}
	centreOnPrimary(window)
	window.Show()

	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	return window, nil
}

func centreOnPrimary(w *glfw.Window) {
	mon := glfw.GetPrimaryMonitor()
	if mon == nil {
		return
	}
	mode := mon.GetVideoMode()
	if mode == nil {
		return
	}
	mx, my := mon.GetPos()
	ww, wh := w.GetSize()
	w.SetPos(mx+(mode.Width-ww)/2, my+(mode.Height-wh)/2)
}
