package desktop

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"balloon/internal/game"
)

// DrawScene renders s back to front: shapes, alpha sprites, then glow.
func (r *Renderer) DrawScene(s *game.Scene, v view) {
	r.DrawTris(s.Tris, v)
	r.DrawSprites(s.Sprites, v)
	r.DrawGlowSprites(s.Glow, v)
}

// DrawTris renders flat triangles. buf format: [x, y, r, g, b, a] per vertex.
func (r *Renderer) DrawTris(buf []float32, v view) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 6
	if count > maxTriVerts {
		count = maxTriVerts - maxTriVerts%3
	}

	gl.UseProgram(r.triProg)
	gl.BindVertexArray(r.triVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.triVBO)
	gl.Uniform2f(r.triURes, v.W, v.H)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, count*6*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
	gl.Disable(gl.BLEND)
}

// DrawSprites renders round point sprites with standard alpha blending.
// buf format: [x, y, size, r, g, b, a, 0] * N.
func (r *Renderer) DrawSprites(buf []float32, v view) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > maxSprites {
		count = maxSprites
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.spriteURes, v.W, v.H)
	gl.Uniform1f(r.spriteUScale, v.Scale)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}

// DrawGlowSprites renders light sprites with additive blending and radial
// falloff. RGB values should be pre-multiplied by desired brightness.
func (r *Renderer) DrawGlowSprites(buf []float32, v view) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > maxSprites {
		count = maxSprites
	}

	gl.UseProgram(r.glowProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.glowURes, v.W, v.H)
	gl.Uniform1f(r.glowUScale, v.Scale)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}
