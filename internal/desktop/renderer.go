package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	maxTriVerts = 1 << 16
	maxSprites  = 8192
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws a game.Scene: one streamed triangle batch, then alpha and
// additive point sprites.
type Renderer struct {
	triProg uint32
	triVAO  uint32
	triVBO  uint32
	triURes int32

	spriteProg   uint32
	spriteVAO    uint32
	spriteVBO    uint32
	spriteURes   int32
	spriteUScale int32

	// Glow shares spriteVAO, additive blend only.
	glowProg   uint32
	glowURes   int32
	glowUScale int32
}

func NewRenderer() (*Renderer, error) {
	triProg, err := linkProgram(triVertSrc, triFragSrc)
	if err != nil {
		return nil, fmt.Errorf("triangle program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(triProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(triProg)
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		triProg:    triProg,
		spriteProg: spriteProg,
		glowProg:   glowProg,
	}

	// Triangle VAO/VBO. Each vertex: x, y, r, g, b, a.
	gl.GenVertexArrays(1, &r.triVAO)
	gl.GenBuffers(1, &r.triVBO)
	gl.BindVertexArray(r.triVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.triVBO)

	triStride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxTriVerts*int(triStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, triStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, triStride, glOffset(2*4))

	// Sprite VAO/VBO. Each sprite: x, y, size, r, g, b, a, unused.
	gl.GenVertexArrays(1, &r.spriteVAO)
	gl.GenBuffers(1, &r.spriteVBO)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxSprites*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))

	gl.UseProgram(triProg)
	r.triURes = gl.GetUniformLocation(triProg, gl.Str("uResolution\x00"))

	gl.UseProgram(spriteProg)
	r.spriteURes = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))
	r.spriteUScale = gl.GetUniformLocation(spriteProg, gl.Str("uScale\x00"))

	gl.UseProgram(glowProg)
	r.glowURes = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))
	r.glowUScale = gl.GetUniformLocation(glowProg, gl.Str("uScale\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.triVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.triVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.triProg, r.spriteProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// view maps viewport units onto the framebuffer.
type view struct {
	W, H  float32 // viewport size in simulation units
	Scale float32 // framebuffer pixels per unit
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
