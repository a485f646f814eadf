// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package gl implements the driver interfaces on top of
// OpenGL 4.1 core.
// The caller is responsible for making a context current
// on the calling thread before opening the driver.
package gl

import (
	"fmt"

	api "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gviegas/tableau/driver"
)

func init() { driver.Register(&drv) }

var drv glDriver

type glDriver struct {
	gpu *gpu
}

// Name returns "gl".
func (d *glDriver) Name() string { return "gl" }

// Open loads the GL function pointers from the current
// context and returns the GPU.
func (d *glDriver) Open() (driver.GPU, error) {
	if d.gpu != nil {
		return d.gpu, nil
	}
	if err := api.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", driver.ErrNotInstalled, err)
	}
	api.Enable(api.DEPTH_TEST)
	d.gpu = &gpu{}
	return d.gpu, nil
}

// Close invalidates the GPU.
// GL objects are owned by the context and die with it.
func (d *glDriver) Close() { d.gpu = nil }

type gpu struct{}

// maxUnit is the minimum number of combined texture units
// that GL 4.1 guarantees per stage.
const maxUnit = 16

// NewTexture creates an immutable RGBA8 2D texture with
// repeat wrapping, linear filtering and a full mip chain.
func (g *gpu) NewTexture(width, height int, rgba []byte) (driver.Texture, error) {
	if width < 1 || height < 1 || len(rgba) != width*height*4 {
		return nil, fmt.Errorf("%w: texture %dx%d with %d bytes", driver.ErrInvalidArg, width, height, len(rgba))
	}
	var id uint32
	api.GenTextures(1, &id)
	api.BindTexture(api.TEXTURE_2D, id)
	api.TexParameteri(api.TEXTURE_2D, api.TEXTURE_WRAP_S, api.REPEAT)
	api.TexParameteri(api.TEXTURE_2D, api.TEXTURE_WRAP_T, api.REPEAT)
	api.TexParameteri(api.TEXTURE_2D, api.TEXTURE_MIN_FILTER, api.LINEAR)
	api.TexParameteri(api.TEXTURE_2D, api.TEXTURE_MAG_FILTER, api.LINEAR)
	api.TexImage2D(api.TEXTURE_2D, 0, api.RGBA8, int32(width), int32(height), 0, api.RGBA, api.UNSIGNED_BYTE, api.Ptr(rgba))
	api.GenerateMipmap(api.TEXTURE_2D)
	api.BindTexture(api.TEXTURE_2D, 0)
	return &texture{id: id}, nil
}

type texture struct {
	id uint32
}

func (t *texture) Bind(unit int) error {
	if unit < 0 || unit >= maxUnit {
		return fmt.Errorf("%w: texture unit %d", driver.ErrInvalidArg, unit)
	}
	api.ActiveTexture(api.TEXTURE0 + uint32(unit))
	api.BindTexture(api.TEXTURE_2D, t.id)
	return nil
}

func (t *texture) Destroy() {
	if t.id != 0 {
		api.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// NewMesh creates a VAO with an interleaved vertex buffer
// and a 32-bit index buffer.
func (g *gpu) NewMesh(vert []float32, idx []uint32) (driver.Mesh, error) {
	if len(vert) == 0 || len(vert)%driver.VertexFloats != 0 || len(idx) == 0 {
		return nil, fmt.Errorf("%w: mesh with %d floats/%d indices", driver.ErrInvalidArg, len(vert), len(idx))
	}
	m := &mesh{n: len(idx)}
	api.GenVertexArrays(1, &m.vao)
	api.BindVertexArray(m.vao)
	api.GenBuffers(1, &m.vbo)
	api.BindBuffer(api.ARRAY_BUFFER, m.vbo)
	api.BufferData(api.ARRAY_BUFFER, len(vert)*4, api.Ptr(vert), api.STATIC_DRAW)
	api.GenBuffers(1, &m.ebo)
	api.BindBuffer(api.ELEMENT_ARRAY_BUFFER, m.ebo)
	api.BufferData(api.ELEMENT_ARRAY_BUFFER, len(idx)*4, api.Ptr(idx), api.STATIC_DRAW)
	const stride = driver.VertexFloats * 4
	api.VertexAttribPointerWithOffset(0, 3, api.FLOAT, false, stride, 0)
	api.EnableVertexAttribArray(0)
	api.VertexAttribPointerWithOffset(1, 3, api.FLOAT, false, stride, 3*4)
	api.EnableVertexAttribArray(1)
	api.VertexAttribPointerWithOffset(2, 2, api.FLOAT, false, stride, 6*4)
	api.EnableVertexAttribArray(2)
	api.BindVertexArray(0)
	return m, nil
}

type mesh struct {
	vao, vbo, ebo uint32
	n             int
}

func (m *mesh) Draw() { m.DrawRange(0, m.n) }

func (m *mesh) DrawRange(first, count int) {
	api.BindVertexArray(m.vao)
	api.DrawElementsWithOffset(api.TRIANGLES, int32(count), api.UNSIGNED_INT, uintptr(first)*4)
	api.BindVertexArray(0)
}

func (m *mesh) Len() int { return m.n }

func (m *mesh) Destroy() {
	if m.vao != 0 {
		api.DeleteBuffers(1, &m.ebo)
		api.DeleteBuffers(1, &m.vbo)
		api.DeleteVertexArrays(1, &m.vao)
		m.vao, m.vbo, m.ebo = 0, 0, 0
	}
}

// NewProgram compiles both stages and links them.
func (g *gpu) NewProgram(vertSrc, fragSrc string) (driver.Program, error) {
	vs, err := compile(api.VERTEX_SHADER, vertSrc)
	if err != nil {
		return nil, err
	}
	fs, err := compile(api.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		api.DeleteShader(vs)
		return nil, err
	}
	id := api.CreateProgram()
	api.AttachShader(id, vs)
	api.AttachShader(id, fs)
	api.LinkProgram(id)
	api.DeleteShader(vs)
	api.DeleteShader(fs)
	var status int32
	if api.GetProgramiv(id, api.LINK_STATUS, &status); status == api.FALSE {
		defer api.DeleteProgram(id)
		return nil, fmt.Errorf("%w: %s", driver.ErrShader, infoLog(id, api.GetProgramiv, api.GetProgramInfoLog))
	}
	return &program{id: id, loc: map[string]int32{}}, nil
}

func compile(stage uint32, src string) (uint32, error) {
	id := api.CreateShader(stage)
	csrc, free := api.Strs(src + "\x00")
	api.ShaderSource(id, 1, csrc, nil)
	free()
	api.CompileShader(id)
	var status int32
	if api.GetShaderiv(id, api.COMPILE_STATUS, &status); status == api.FALSE {
		defer api.DeleteShader(id)
		return 0, fmt.Errorf("%w: %s", driver.ErrShader, infoLog(id, api.GetShaderiv, api.GetShaderInfoLog))
	}
	return id, nil
}

func infoLog(id uint32, geti func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	geti(id, api.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no info log"
	}
	buf := make([]byte, n+1)
	getLog(id, n, nil, &buf[0])
	return string(buf[:n])
}

type program struct {
	id  uint32
	loc map[string]int32
}

func (p *program) Use() { api.UseProgram(p.id) }

// locOf caches uniform locations.
// Unknown names cache -1, which GL defines as a no-op
// destination for uniform uploads.
func (p *program) locOf(name string) int32 {
	if l, ok := p.loc[name]; ok {
		return l
	}
	l := api.GetUniformLocation(p.id, api.Str(name+"\x00"))
	p.loc[name] = l
	return l
}

func (p *program) SetFloat(name string, v float32) { api.Uniform1f(p.locOf(name), v) }

func (p *program) SetInt(name string, v int32) { api.Uniform1i(p.locOf(name), v) }

func (p *program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	api.Uniform1i(p.locOf(name), i)
}

func (p *program) SetVec2(name string, v [2]float32) { api.Uniform2f(p.locOf(name), v[0], v[1]) }

func (p *program) SetVec3(name string, v [3]float32) { api.Uniform3f(p.locOf(name), v[0], v[1], v[2]) }

func (p *program) SetVec4(name string, v [4]float32) {
	api.Uniform4f(p.locOf(name), v[0], v[1], v[2], v[3])
}

func (p *program) SetMat4(name string, v [16]float32) {
	api.UniformMatrix4fv(p.locOf(name), 1, false, &v[0])
}

func (p *program) SetSampler(name string, unit int) { api.Uniform1i(p.locOf(name), int32(unit)) }

func (p *program) Destroy() {
	if p.id != 0 {
		api.DeleteProgram(p.id)
		p.id = 0
	}
}

// Clear clears color and depth.
func (g *gpu) Clear(r, gr, b, a float32) {
	api.ClearColor(r, gr, b, a)
	api.Clear(api.COLOR_BUFFER_BIT | api.DEPTH_BUFFER_BIT)
}

// Viewport sets the drawable area.
func (g *gpu) Viewport(width, height int) {
	api.Viewport(0, 0, int32(width), int32(height))
}
