package game

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"beyondthesea/internal/gfx"
	"beyondthesea/internal/ocean"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Quad program, shared by world sprites and text.
	quadProg uint32
	quadVAO  uint32
	quadVBO  uint32

	uOrigin     int32
	uResolution int32
	uTex        int32

	atlasTex uint32
	fontTex  uint32
	Font     *gfx.FontAtlas

	viewW, viewH float32

	// Reusable render buffers to avoid per-frame heap allocations.
	worldBuf []float32
	textBuf  []float32
}

func NewRenderer(cfg ocean.Config) (*Renderer, error) {
	prog, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}

	r := &Renderer{
		quadProg: prog,
		Font:     gfx.BuildFontAtlas(),
		viewW:    float32(cfg.ViewportWidth),
		viewH:    float32(cfg.ViewportHeight),
	}

	// Quad VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(gfx.VertexFloats * 4)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	r.quadVAO = vao
	r.quadVBO = vbo

	gl.UseProgram(prog)
	r.uOrigin = gl.GetUniformLocation(prog, gl.Str("uOrigin\x00"))
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))

	r.atlasTex = uploadTexture(gfx.BuildAtlas(cfg.Seed))
	r.fontTex = uploadTexture(r.Font.Img)

	gl.BindVertexArray(0)
	return r, nil
}

// uploadTexture copies img to a new nearest-filtered GL texture.
func uploadTexture(img *image.NRGBA) uint32 {
	b := img.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return tex
}

func (r *Renderer) Destroy() {
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
	}
	if r.quadProg != 0 {
		gl.DeleteProgram(r.quadProg)
	}
	for _, id := range []uint32{r.atlasTex, r.fontTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}

// DrawWorld draws sprite quads in world space through a viewport-sized
// window whose top-left corner is (scrollX, scrollY).
func (r *Renderer) DrawWorld(buf []float32, scrollX, scrollY float64) {
	r.drawQuads(buf, r.atlasTex, atlasUnit, float32(scrollX), float32(scrollY), r.viewW, r.viewH)
}

// DrawText draws glyph quads in framebuffer pixels.
func (r *Renderer) DrawText(buf []float32, fbW, fbH int) {
	r.drawQuads(buf, r.fontTex, fontUnit, 0, 0, float32(fbW), float32(fbH))
}

func (r *Renderer) drawQuads(buf []float32, tex uint32, unit int32, ox, oy, resW, resH float32) {
	if len(buf) == 0 {
		return
	}

	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)

	gl.Uniform2f(r.uOrigin, ox, oy)
	gl.Uniform2f(r.uResolution, resW, resH)
	gl.Uniform1i(r.uTex, unit)

	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(buf) / gfx.VertexFloats
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(0)
}
