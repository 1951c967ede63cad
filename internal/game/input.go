package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"beyondthesea/internal/ocean"
)

// keyReader is the slice of *glfw.Window that input polling needs.
type keyReader interface {
	GetKey(key glfw.Key) glfw.Action
}

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window keyReader, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// SceneKeys samples the edge-triggered scene keys once per frame.
func (in *Input) SceneKeys(window keyReader) ocean.SceneKeys {
	return ocean.SceneKeys{
		Start:   in.JustPressed(window, glfw.KeySpace),
		Restart: in.JustPressed(window, glfw.KeyR),
	}
}

// ReadControls samples the held cursor keys.
func ReadControls(window keyReader) ocean.Controls {
	held := func(k glfw.Key) bool { return window.GetKey(k) == glfw.Press }
	return ocean.Controls{
		TurnLeft:  held(glfw.KeyLeft),
		TurnRight: held(glfw.KeyRight),
		Thrust:    held(glfw.KeyUp),
	}
}
