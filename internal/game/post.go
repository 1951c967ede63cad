package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/rs/zerolog"

	"beyondthesea/internal/gfx"
	"beyondthesea/internal/ocean"
)

// PostStack renders the scene off-screen and runs the live filter passes
// over it before presenting. The embedded FilterStack makes it the World's
// ocean.FilterHost.
type PostStack struct {
	gfx.FilterStack

	prog uint32
	vao  uint32
	vbo  uint32

	uTex    int32
	uMode   int32
	uAmount int32
	uSize   int32

	// Ping-pong targets; the scene is drawn into fbo[0].
	fbo  [2]uint32
	tex  [2]uint32
	w, h int32

	viewW, viewH float32
	log          zerolog.Logger
}

func NewPostStack(cfg ocean.Config, log zerolog.Logger) (*PostStack, error) {
	prog, err := linkProgram(postVertSrc, postFragSrc)
	if err != nil {
		return nil, fmt.Errorf("post program: %w", err)
	}
	p := &PostStack{
		prog:  prog,
		viewW: float32(cfg.ViewportWidth),
		viewH: float32(cfg.ViewportHeight),
		log:   log,
	}

	// Unit quad (6 vertices, 2 triangles).
	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	gl.BindVertexArray(0)

	gl.UseProgram(prog)
	p.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	p.uMode = gl.GetUniformLocation(prog, gl.Str("uMode\x00"))
	p.uAmount = gl.GetUniformLocation(prog, gl.Str("uAmount\x00"))
	p.uSize = gl.GetUniformLocation(prog, gl.Str("uSize\x00"))
	gl.Uniform1i(p.uTex, postUnit)

	gl.GenFramebuffers(2, &p.fbo[0])
	gl.GenTextures(2, &p.tex[0])
	return p, nil
}

// resize reallocates both targets when the framebuffer size changes.
func (p *PostStack) resize(w, h int32) error {
	if w == p.w && h == p.h {
		return nil
	}
	for i := range p.fbo {
		gl.BindTexture(gl.TEXTURE_2D, p.tex[i])
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

		gl.BindFramebuffer(gl.FRAMEBUFFER, p.fbo[i])
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, p.tex[i], 0)
		if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
			return fmt.Errorf("post target %d incomplete: 0x%x", i, status)
		}
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	p.w, p.h = w, h
	p.log.Debug().Int32("width", w).Int32("height", h).Msg("post targets resized")
	return nil
}

// Begin redirects drawing into the scene target and clears it.
func (p *PostStack) Begin(fbW, fbH int) error {
	if err := p.resize(int32(fbW), int32(fbH)); err != nil {
		return err
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, p.fbo[0])
	gl.Viewport(0, 0, p.w, p.h)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return nil
}

// Finish runs every live pass in order, ping-ponging between the targets,
// and writes the last one to the window. With no live passes the scene is
// copied through unchanged.
func (p *PostStack) Finish() {
	passes := p.Passes()
	if len(passes) == 0 {
		passes = copyOnly
	}

	gl.UseProgram(p.prog)
	gl.BindVertexArray(p.vao)
	gl.Uniform2f(p.uSize, p.viewW, p.viewH)
	gl.ActiveTexture(gl.TEXTURE0 + postUnit)

	src := 0
	for i, pass := range passes {
		var dst uint32
		if i < len(passes)-1 {
			dst = p.fbo[1-src]
		}
		gl.BindFramebuffer(gl.FRAMEBUFFER, dst)
		gl.Viewport(0, 0, p.w, p.h)
		gl.BindTexture(gl.TEXTURE_2D, p.tex[src])
		gl.Uniform1i(p.uMode, passMode(pass.Kind))
		gl.Uniform1f(p.uAmount, float32(pass.Amount))
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
		src = 1 - src
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(0)
}

// copyOnly presents the scene when no filter is live; its kind matches
// none of the filters, so passMode falls through to a copy.
var copyOnly = []gfx.Pass{{Kind: ^ocean.FilterKind(0)}}

func passMode(k ocean.FilterKind) int32 {
	switch k {
	case ocean.FilterPixelate:
		return postPixelate
	case ocean.FilterBarrel:
		return postBarrel
	case ocean.FilterBlur:
		return postBlur
	}
	return postCopy
}

func (p *PostStack) Destroy() {
	gl.DeleteFramebuffers(2, &p.fbo[0])
	gl.DeleteTextures(2, &p.tex[0])
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.prog != 0 {
		gl.DeleteProgram(p.prog)
	}
}
