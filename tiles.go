package main

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	mgl "github.com/go-gl/mathgl/mgl32"
)

const (
	quadVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    attribute vec2 a_texcoord;
    attribute vec4 a_color;
    uniform mat4 u_transform;
    varying vec2 v_texcoord;
    varying vec4 v_color;
    void main(void) {
      gl_Position = u_transform * vec4(a_position, 0.0, 1.0);
      v_texcoord = a_texcoord;
      v_color = a_color;
    }` + "\x00"
	quadFragmentShader = `
    precision highp float;
    uniform sampler2D u_tex;
    varying vec2 v_texcoord;
    varying vec4 v_color;
    void main(void) {
      gl_FragColor = texture2D(u_tex, v_texcoord) * v_color;
    }` + "\x00"
)

type QuadVertex struct {
	position [2]float32
	texcoord [2]float32
	color    [4]float32
}

// QuadRenderer draws textured, color modulated quads in pixel coordinates.
type QuadRenderer struct {
	program     *Program
	white       *Texture
	a_position  int32
	a_texcoord  int32
	a_color     int32
	u_transform int32
	u_tex       int32
}

type QuadBatch struct {
	qr       *QuadRenderer
	tex      *Texture
	vertices []QuadVertex
}

func CreateQuadRenderer() (*QuadRenderer, error) {
	program, err := CreateProgram(quadVertexShader, quadFragmentShader)
	if err != nil {
		return nil, err
	}
	white := NewSurface(Size{X: 1, Y: 1})
	Fill(white, white.Bounds(), ColorWhite)
	whiteTex, err := CreateTextureFromSurface(white)
	if err != nil {
		program.Close()
		return nil, err
	}
	qr := &QuadRenderer{
		program:     program,
		white:       whiteTex,
		a_position:  program.GetAttribLocation("a_position\x00"),
		a_texcoord:  program.GetAttribLocation("a_texcoord\x00"),
		a_color:     program.GetAttribLocation("a_color\x00"),
		u_transform: program.GetUniformLocation("u_transform\x00"),
		u_tex:       program.GetUniformLocation("u_tex\x00"),
	}
	if qr.a_position < 0 || qr.a_texcoord < 0 || qr.a_color < 0 {
		qr.Close()
		return nil, fmt.Errorf("quad shader is missing vertex attributes")
	}
	return qr, nil
}

func (qr *QuadRenderer) CreateBatch(tex *Texture) *QuadBatch {
	return &QuadBatch{
		qr:       qr,
		tex:      tex,
		vertices: make([]QuadVertex, 0, 6*1024),
	}
}

// CreateFillBatch returns a batch whose quads are solid colors.
func (qr *QuadRenderer) CreateFillBatch() *QuadBatch {
	return qr.CreateBatch(qr.white)
}

func (qr *QuadRenderer) Close() error {
	qr.white.Close()
	return qr.program.Close()
}

func (qb *QuadBatch) Clear() {
	qb.vertices = qb.vertices[:0]
}

func (qb *QuadBatch) appendQuad(dst Rect, s0, t0, s1, t1 float32, c Color) {
	x0 := float32(dst.Min.X)
	y0 := float32(dst.Min.Y)
	x1 := float32(dst.Max.X)
	y1 := float32(dst.Max.Y)
	r, g, b, a := colorToFloats(c)
	color := [4]float32{r, g, b, a}
	qb.vertices = append(qb.vertices,
		QuadVertex{position: [2]float32{x0, y0}, texcoord: [2]float32{s0, t0}, color: color},
		QuadVertex{position: [2]float32{x0, y1}, texcoord: [2]float32{s0, t1}, color: color},
		QuadVertex{position: [2]float32{x1, y1}, texcoord: [2]float32{s1, t1}, color: color},
		QuadVertex{position: [2]float32{x1, y1}, texcoord: [2]float32{s1, t1}, color: color},
		QuadVertex{position: [2]float32{x1, y0}, texcoord: [2]float32{s1, t0}, color: color},
		QuadVertex{position: [2]float32{x0, y0}, texcoord: [2]float32{s0, t0}, color: color},
	)
}

func (qb *QuadBatch) texcoords(src Rect) (s0, t0, s1, t1 float32) {
	size := qb.tex.Size()
	s0 = float32(src.Min.X) / float32(size.X)
	t0 = float32(src.Min.Y) / float32(size.Y)
	s1 = float32(src.Max.X) / float32(size.X)
	t1 = float32(src.Max.Y) / float32(size.Y)
	return
}

// Draw copies the src rectangle of the batch texture to dst, modulated by c.
func (qb *QuadBatch) Draw(dst, src Rect, c Color) {
	s0, t0, s1, t1 := qb.texcoords(src)
	qb.appendQuad(dst, s0, t0, s1, t1, c)
}

// DrawFlipped is Draw for textures rendered upside down, like render targets.
func (qb *QuadBatch) DrawFlipped(dst, src Rect, c Color) {
	s0, t0, s1, t1 := qb.texcoords(src)
	qb.appendQuad(dst, s0, 1-t0, s1, 1-t1, c)
}

func (qb *QuadBatch) Fill(dst Rect, c Color) {
	qb.Draw(dst, Rect{Max: qb.tex.Size()}, c)
}

// Render draws the batch onto the currently bound framebuffer whose size is
// viewport, with y growing downwards.
func (qb *QuadBatch) Render(viewport Size, mode BlendMode) error {
	if len(qb.vertices) == 0 {
		return nil
	}
	if viewport.X <= 0 || viewport.Y <= 0 {
		return fmt.Errorf("invalid viewport size: %v", viewport)
	}
	qr := qb.qr
	qr.program.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	qb.tex.Bind()
	gl.Uniform1i(qr.u_tex, 0)
	stride := int32(unsafe.Sizeof(QuadVertex{}))
	gl.EnableVertexAttribArray(uint32(qr.a_position))
	gl.VertexAttribPointer(
		uint32(qr.a_position), 2, gl.FLOAT, false, stride,
		gl.Ptr(&qb.vertices[0].position[0]))
	gl.EnableVertexAttribArray(uint32(qr.a_texcoord))
	gl.VertexAttribPointer(
		uint32(qr.a_texcoord), 2, gl.FLOAT, false, stride,
		gl.Ptr(&qb.vertices[0].texcoord[0]))
	gl.EnableVertexAttribArray(uint32(qr.a_color))
	gl.VertexAttribPointer(
		uint32(qr.a_color), 4, gl.FLOAT, false, stride,
		gl.Ptr(&qb.vertices[0].color[0]))
	mTransform := mgl.Ortho2D(0, float32(viewport.X), float32(viewport.Y), 0)
	gl.UniformMatrix4fv(qr.u_transform, 1, false, &mTransform[0])
	mode.apply()
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(qb.vertices)))
	gl.Disable(gl.BLEND)
	gl.DisableVertexAttribArray(uint32(qr.a_position))
	gl.DisableVertexAttribArray(uint32(qr.a_texcoord))
	gl.DisableVertexAttribArray(uint32(qr.a_color))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}
