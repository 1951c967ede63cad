package game

import (
	"beyondthesea/internal/gfx"
	"beyondthesea/internal/ocean"
)

// RenderTitle draws the title, byline and instructions over the water.
func RenderTitle(r *Renderer, fbW, fbH int, unit float32) {
	items := gfx.TitleLayout(r.Font, float32(fbW), float32(fbH), unit)
	r.textBuf = gfx.AppendItems(r.textBuf[:0], r.Font, items)
	r.DrawText(r.textBuf, fbW, fbH)
}

// RenderHUD draws the compass. It sits above the post stack so the labels
// stay legible however distorted the sea gets.
func RenderHUD(r *Renderer, w *ocean.World, fbW, fbH int, unit float32) {
	items := gfx.CompassLayout(r.Font, w.Vessel.Heading, unit)
	r.textBuf = gfx.AppendItems(r.textBuf[:0], r.Font, items)
	r.DrawText(r.textBuf, fbW, fbH)
}

// RenderScene draws the current scene's sprites into the post stack's
// scene target.
func RenderScene(r *Renderer, scenes *ocean.Scenes) {
	switch scenes.State {
	case ocean.ScenePlay:
		w := scenes.World
		buf := gfx.AppendTiles(r.worldBuf[:0], w.Tiles)
		buf = gfx.AppendBoat(buf, w.Vessel)
		buf = gfx.AppendNoise(buf, w.Noise)
		sx, sy := w.Camera.Scroll()
		r.DrawWorld(buf, sx, sy)
		r.worldBuf = buf
	case ocean.SceneTitle:
		r.worldBuf = gfx.AppendTiles(r.worldBuf[:0], scenes.Title)
		r.DrawWorld(r.worldBuf, 0, 0)
	}
}
