package game

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"beyondthesea/internal/audio"
	"beyondthesea/internal/config"
	"beyondthesea/internal/gfx"
	"beyondthesea/internal/ocean"
	"beyondthesea/internal/telemetry"
)

// Run opens the window and drives Load -> Title -> Play until the window is
// closed or ESC is pressed.
func Run(s config.Settings, log zerolog.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cfg := s.Ocean
	window, err := openWindow(cfg, s.Window.Scale)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()
	winW, winH := window.GetSize()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info().
		Str("gl", gl.GoStr(gl.GetString(gl.VERSION))).
		Int("width", winW).
		Int("height", winH).
		Msg("window ready")

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	deep := gfx.Palette.Deep
	r, g, b := deep.Floats()
	gl.ClearColor(r, g, b, 1.0)

	post, err := NewPostStack(cfg, log)
	if err != nil {
		return fmt.Errorf("post stack: %w", err)
	}
	defer post.Destroy()

	rend, err := NewRenderer(cfg)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	// Audio failures are not fatal; the sea is just silent.
	var (
		sound ocean.Soundscape
		mixer *audio.Mixer
	)
	if s.Audio.Enabled {
		m := audio.NewMixer(cfg.Seed, s.Audio.MasterVolume, log)
		out, err := audio.Open(m, log)
		if err != nil {
			log.Warn().Err(err).Msg("audio init failed, continuing without sound")
		} else {
			defer out.Close()
			defer m.Stop()
			sound, mixer = m, m
		}
	}
	muted := false

	bus := ocean.NewEventBus()
	world, err := ocean.NewWorld(cfg, ocean.Options{
		Filters: post,
		Sound:   sound,
		Events:  bus,
		Log:     log,
	})
	if err != nil {
		return err
	}

	var rec *telemetry.Recorder
	if s.Telemetry.Enabled {
		rec, err = telemetry.New(telemetry.Meter())
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		rec.Attach(bus, world)
	}

	scenes := ocean.NewScenes(world, bus, log)
	input := NewInput()
	ctx := context.Background()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDelta {
			dt = MaxFrameDelta
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if mixer != nil && input.JustPressed(window, glfw.KeyM) {
			muted = !muted
			mixer.SetMaster(masterGain(s.Audio.MasterVolume, muted))
			log.Info().Bool("muted", muted).Msg("audio toggled")
		}

		deltaMillis := dt * 1000
		scenes.Update(input.SceneKeys(window), ReadControls(window), deltaMillis)
		if rec != nil {
			rec.Frame(ctx, deltaMillis, scenes.State)
		}

		if err := post.Begin(fbW, fbH); err != nil {
			return fmt.Errorf("post stack: %w", err)
		}
		RenderScene(rend, scenes)
		post.Finish()

		unit := float32(fbW) / float32(cfg.ViewportWidth)
		switch scenes.State {
		case ocean.SceneTitle:
			RenderTitle(rend, fbW, fbH, unit)
		case ocean.ScenePlay:
			RenderHUD(rend, world, fbW, fbH, unit)
		}

		window.SwapBuffers()
	}

	ev := log.Info()
	if rec != nil {
		st := rec.Stats()
		ev = ev.Int64("frames", st.Frames).Int64("resets", st.Resets)
	}
	ev.Msg("shutting down")
	return nil
}

func masterGain(volume float64, muted bool) float64 {
	if muted {
		return 0
	}
	return volume
}
