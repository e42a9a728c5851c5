// Package opengl implements render.GL on top of go-gl.
package opengl

import (
	"fmt"
	"strings"
	"sync"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/gorustyt/glgui/render"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init loads the GL entry points. It must run after the first context is
// made current; later calls return the first result.
func Init() error {
	initOnce.Do(func() {
		initErr = gl.Init()
	})
	return initErr
}

// Version returns the driver version string. Init must have succeeded.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

type Functions struct{}

var _ render.GL = Functions{}

// New returns the go-gl backed implementation, initialising the loader if
// needed.
func New() (Functions, error) {
	if err := Init(); err != nil {
		return Functions{}, fmt.Errorf("opengl init: %w", err)
	}
	return Functions{}, nil
}

// ptr returns nil for empty slices, which gl.Ptr rejects.
func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

func (Functions) CreateShader(typ uint32) uint32 {
	return gl.CreateShader(typ)
}

func (Functions) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Functions) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (Functions) GetShaderi(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (f Functions) GetShaderInfoLog(shader uint32) string {
	logLength := f.GetShaderi(shader, gl.INFO_LOG_LENGTH)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Functions) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Functions) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Functions) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Functions) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (Functions) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Functions) GetProgrami(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (f Functions) GetProgramInfoLog(program uint32) string {
	logLength := f.GetProgrami(program, gl.INFO_LOG_LENGTH)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Functions) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Functions) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Functions) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Functions) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (Functions) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (Functions) Uniform1iv(location int32, v []int32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform1iv(location, int32(len(v)), &v[0])
}

func (Functions) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (Functions) Uniform2f(location int32, x, y float32) {
	gl.Uniform2f(location, x, y)
}

func (Functions) UniformMatrix4fv(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (Functions) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (Functions) ActiveTexture(unit uint32) {
	gl.ActiveTexture(unit)
}

func (Functions) BindTexture(target, texture uint32) {
	gl.BindTexture(target, texture)
}

func (Functions) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (Functions) TexImage2D(target uint32, level int32, internalFormat int32, width, height int32, format, typ uint32, pixels []byte) {
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, typ, ptr(pixels))
}

func (Functions) TexSubImage2D(target uint32, level int32, x, y, width, height int32, format, typ uint32, pixels []byte) {
	gl.TexSubImage2D(target, level, x, y, width, height, format, typ, ptr(pixels))
}

func (Functions) PixelStorei(pname uint32, param int32) {
	gl.PixelStorei(pname, param)
}

func (Functions) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (Functions) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Functions) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (Functions) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (Functions) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (Functions) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (Functions) BufferData(target uint32, data []byte, usage uint32) {
	gl.BufferData(target, len(data), ptr(data), usage)
}

func (Functions) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (Functions) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, typ, normalized, stride, uintptr(offset))
}

func (Functions) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (Functions) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (Functions) DrawElements(mode uint32, count int32, typ uint32, offset int) {
	gl.DrawElementsWithOffset(mode, count, typ, uintptr(offset))
}

func (Functions) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (Functions) Enable(capability uint32) {
	gl.Enable(capability)
}

func (Functions) Disable(capability uint32) {
	gl.Disable(capability)
}

func (Functions) BlendFunc(sfactor, dfactor uint32) {
	gl.BlendFunc(sfactor, dfactor)
}

func (Functions) Scissor(x, y, width, height int32) {
	gl.Scissor(x, y, width, height)
}

func (Functions) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (Functions) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Functions) Clear(mask uint32) {
	gl.Clear(mask)
}
