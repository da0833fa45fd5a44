package main

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.1/gles2"
)

type Texture struct {
	tex  uint32
	size Size
}

func (t *Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
}

func (t *Texture) Size() Size {
	return t.size
}

func CreateTexture(size Size) (*Texture, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("texture size must be positive, got %v", size)
	}
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	// glyphs are pixel art, keep them sharp when scaled
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(size.X), int32(size.Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &Texture{tex: tex, size: size}, nil
}

func CreateTextureFromSurface(s *Surface) (*Texture, error) {
	t, err := CreateTexture(s.Bounds().Size())
	if err != nil {
		return nil, err
	}
	if err := t.Upload(s); err != nil {
		t.Close()
		return nil, err
	}
	return t, nil
}

// Upload replaces the texture contents with s, which must match its size.
func (t *Texture) Upload(s *Surface) error {
	if s.Bounds().Size() != t.size {
		return fmt.Errorf("texture upload size mismatch: texture %v, surface %v", t.size, s.Bounds().Size())
	}
	if s.Stride != 4*t.size.X {
		s = ToSurface(s)
	}
	t.Bind()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
		int32(t.size.X), int32(t.size.Y),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(s.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func (t *Texture) Close() error {
	if t.tex != 0 {
		gl.DeleteTextures(1, &t.tex)
		t.tex = 0
	}
	return nil
}

type Shader struct {
	shader uint32
}

func GetShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]uint8, length)
	var logLen int32
	gl.GetShaderInfoLog(shader, length, &logLen, &log[0])
	return string(log[:logLen])
}

func CreateShader(shaderType uint32, source string) (Shader, error) {
	shader := gl.CreateShader(shaderType)
	data := gl.Str(source)
	length := int32(len(source))
	gl.ShaderSource(shader, 1, &data, &length)
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := GetShaderInfoLog(shader)
		gl.DeleteShader(shader)
		return Shader{}, fmt.Errorf("shader compilation failed: %s", log)
	}
	return Shader{shader}, nil
}

func (s *Shader) Close() error {
	if s.shader != 0 {
		gl.DeleteShader(s.shader)
		s.shader = 0
	}
	return nil
}

type Program struct {
	program        uint32
	vertexShader   Shader
	fragmentShader Shader
}

func GetProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]uint8, length)
	var logLen int32
	gl.GetProgramInfoLog(program, length, &logLen, &log[0])
	return string(log[:logLen])
}

func CreateProgram(vertexShader string, fragmentShader string) (*Program, error) {
	vs, err := CreateShader(gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return nil, err
	}
	fs, err := CreateShader(gl.FRAGMENT_SHADER, fragmentShader)
	if err != nil {
		vs.Close()
		return nil, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs.shader)
	gl.AttachShader(program, fs.shader)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := GetProgramInfoLog(program)
		gl.DeleteProgram(program)
		vs.Close()
		fs.Close()
		return nil, fmt.Errorf("program link failed: %s", log)
	}
	return &Program{program, vs, fs}, nil
}

func (p *Program) GetAttribLocation(name string) int32 {
	return gl.GetAttribLocation(p.program, gl.Str(name))
}

func (p *Program) GetUniformLocation(name string) int32 {
	return gl.GetUniformLocation(p.program, gl.Str(name))
}

func (p *Program) Use() {
	gl.UseProgram(p.program)
}

func (p *Program) Close() error {
	if err := p.vertexShader.Close(); err != nil {
		return err
	}
	if err := p.fragmentShader.Close(); err != nil {
		return err
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
	return nil
}

// Target is an off-screen render target: a framebuffer object drawing into
// a texture.
type Target struct {
	fbo uint32
	tex *Texture
}

func CreateTarget(size Size) (*Target, error) {
	tex, err := CreateTexture(size)
	if err != nil {
		return nil, err
	}
	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex.tex, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteFramebuffers(1, &fbo)
		tex.Close()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return &Target{fbo: fbo, tex: tex}, nil
}

func (t *Target) Texture() *Texture {
	return t.tex
}

func (t *Target) Size() Size {
	return t.tex.Size()
}

// Bind redirects drawing into the target.
func (t *Target) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.Viewport(0, 0, int32(t.tex.size.X), int32(t.tex.size.Y))
}

// Unbind restores drawing to the window.
func (t *Target) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(fbSize.X), int32(fbSize.Y))
}

// Upload stores s in the target the same way rendering would: rendered
// framebuffers keep their top row at the end of the texture.
func (t *Target) Upload(s *Surface) error {
	return t.tex.Upload(FlipSurface(s))
}

func (t *Target) Close() error {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	return t.tex.Close()
}

func FlipSurface(s *Surface) *Surface {
	src := ToSurface(s)
	flipped := NewSurface(src.Bounds().Size())
	h := src.Bounds().Dy()
	for y := range h {
		copy(flipped.Pix[y*flipped.Stride:(y+1)*flipped.Stride],
			src.Pix[(h-1-y)*src.Stride:(h-y)*src.Stride])
	}
	return flipped
}

// blendFactors returns the GL source and destination factors for the color
// and alpha channels of mode. BlendNone has no factors, blending is disabled.
func blendFactors(mode BlendMode) (srcRGB, dstRGB, srcA, dstA uint32) {
	switch mode {
	case BlendBlend:
		return gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA
	case BlendAdd:
		return gl.SRC_ALPHA, gl.ONE, gl.ZERO, gl.ONE
	case BlendMod:
		// transparent texels leave the destination untouched
		return gl.DST_COLOR, gl.ONE_MINUS_SRC_ALPHA, gl.ZERO, gl.ONE
	}
	return gl.ONE, gl.ZERO, gl.ONE, gl.ZERO
}

func (m BlendMode) apply() {
	if m == BlendNone {
		gl.Disable(gl.BLEND)
		return
	}
	gl.BlendFuncSeparate(blendFactors(m))
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
}
