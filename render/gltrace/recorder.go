// Package gltrace records OpenGL calls. A Recorder without a wrapped GL
// acts as a headless fake that hands out object names and tracks texture
// state. Wrapping a real GL records and forwards every call.
package gltrace

import (
	"io"

	"github.com/gorustyt/glgui/common/message"
	"github.com/gorustyt/glgui/render"
)

var _ render.GL = (*Recorder)(nil)

type TextureState struct {
	Name           uint32
	Width, Height  int32
	InternalFormat int32
	Params         map[uint32]int32
	FullUploads    int
	SubUploads     int
}

type Recorder struct {
	next      render.GL
	recording bool
	calls     []message.Call

	lastName uint32
	textures map[uint32]*TextureState
	bound    uint32
	enabled  map[uint32]bool
	attribs  map[string]int32
	uniforms map[string]int32
	failed   nameSet

	// FailCompile makes shaders of this type fail with FailLog.
	FailCompile uint32
	// FailLink makes every link fail with FailLog.
	FailLink bool
	FailLog  string
}

// New returns a headless recorder.
func New() *Recorder {
	return Wrap(nil)
}

// Wrap records calls and forwards them to next when it is non-nil.
func Wrap(next render.GL) *Recorder {
	return &Recorder{
		next:      next,
		recording: true,
		textures:  map[uint32]*TextureState{},
		enabled:   map[uint32]bool{},
		attribs:   map[string]int32{},
		uniforms:  map[string]int32{},
		failed:    nameSet{},
	}
}

func (r *Recorder) SetRecording(on bool) {
	r.recording = on
}

func (r *Recorder) Recording() bool {
	return r.recording
}

func (r *Recorder) record(name string, ints []int64, floats []float32, dataLen int) {
	if !r.recording {
		return
	}
	r.calls = append(r.calls, message.Call{Name: name, Ints: ints, Floats: floats, DataLen: int64(dataLen)})
}

func ints(v ...int64) []int64 {
	return v
}

// Mark appends a named marker, e.g. a frame boundary, without touching GL.
func (r *Recorder) Mark(name string) {
	r.record(name, nil, nil, 0)
}

func (r *Recorder) Calls() []message.Call {
	return r.calls
}

// Named returns the recorded calls with the given name.
func (r *Recorder) Named(name string) []message.Call {
	var out []message.Call
	for _, c := range r.calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) Count(name string) int {
	return len(r.Named(name))
}

// Reset drops the call log but keeps object state.
func (r *Recorder) Reset() {
	r.calls = nil
}

// WriteTo encodes the call log with message.EncodeCalls.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(message.EncodeCalls(r.calls))
	return int64(n), err
}

func (r *Recorder) Texture(name uint32) (*TextureState, bool) {
	t, ok := r.textures[name]
	return t, ok
}

func (r *Recorder) LiveTextures() int {
	return len(r.textures)
}

func (r *Recorder) IsEnabled(capability uint32) bool {
	return r.enabled[capability]
}

func (r *Recorder) newName() uint32 {
	r.lastName++
	return r.lastName
}

func (r *Recorder) CreateShader(typ uint32) uint32 {
	var name uint32
	if r.next != nil {
		name = r.next.CreateShader(typ)
	} else {
		name = r.newName()
		if typ == r.FailCompile && typ != 0 {
			r.failed.add(name)
		}
	}
	r.record("CreateShader", ints(int64(typ), int64(name)), nil, 0)
	return name
}

type nameSet map[uint32]struct{}

func (s nameSet) add(n uint32) { s[n] = struct{}{} }

func (s nameSet) has(n uint32) bool {
	_, ok := s[n]
	return ok
}

func (r *Recorder) ShaderSource(shader uint32, src string) {
	r.record("ShaderSource", ints(int64(shader)), nil, len(src))
	if r.next != nil {
		r.next.ShaderSource(shader, src)
	}
}

func (r *Recorder) CompileShader(shader uint32) {
	r.record("CompileShader", ints(int64(shader)), nil, 0)
	if r.next != nil {
		r.next.CompileShader(shader)
	}
}

func (r *Recorder) GetShaderi(shader uint32, pname uint32) int32 {
	if r.next != nil {
		return r.next.GetShaderi(shader, pname)
	}
	switch pname {
	case render.COMPILE_STATUS:
		if r.failed.has(shader) {
			return render.FALSE
		}
		return render.TRUE
	case render.INFO_LOG_LENGTH:
		return int32(len(r.FailLog))
	}
	return 0
}

func (r *Recorder) GetShaderInfoLog(shader uint32) string {
	if r.next != nil {
		return r.next.GetShaderInfoLog(shader)
	}
	if r.failed.has(shader) {
		return r.FailLog
	}
	return ""
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.record("DeleteShader", ints(int64(shader)), nil, 0)
	if r.next != nil {
		r.next.DeleteShader(shader)
	}
}

func (r *Recorder) CreateProgram() uint32 {
	var name uint32
	if r.next != nil {
		name = r.next.CreateProgram()
	} else {
		name = r.newName()
	}
	r.record("CreateProgram", ints(int64(name)), nil, 0)
	return name
}

func (r *Recorder) AttachShader(program, shader uint32) {
	r.record("AttachShader", ints(int64(program), int64(shader)), nil, 0)
	if r.next != nil {
		r.next.AttachShader(program, shader)
	}
}

func (r *Recorder) DetachShader(program, shader uint32) {
	r.record("DetachShader", ints(int64(program), int64(shader)), nil, 0)
	if r.next != nil {
		r.next.DetachShader(program, shader)
	}
}

func (r *Recorder) LinkProgram(program uint32) {
	r.record("LinkProgram", ints(int64(program)), nil, 0)
	if r.next != nil {
		r.next.LinkProgram(program)
	}
}

func (r *Recorder) GetProgrami(program uint32, pname uint32) int32 {
	if r.next != nil {
		return r.next.GetProgrami(program, pname)
	}
	switch pname {
	case render.LINK_STATUS:
		if r.FailLink {
			return render.FALSE
		}
		return render.TRUE
	case render.INFO_LOG_LENGTH:
		return int32(len(r.FailLog))
	}
	return 0
}

func (r *Recorder) GetProgramInfoLog(program uint32) string {
	if r.next != nil {
		return r.next.GetProgramInfoLog(program)
	}
	if r.FailLink {
		return r.FailLog
	}
	return ""
}

func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram", ints(int64(program)), nil, 0)
	if r.next != nil {
		r.next.UseProgram(program)
	}
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.record("DeleteProgram", ints(int64(program)), nil, 0)
	if r.next != nil {
		r.next.DeleteProgram(program)
	}
}

// location hands out stable locations in first-query order.
func location(m map[string]int32, name string) int32 {
	if loc, ok := m[name]; ok {
		return loc
	}
	loc := int32(len(m))
	m[name] = loc
	return loc
}

func (r *Recorder) GetUniformLocation(program uint32, name string) int32 {
	if r.next != nil {
		return r.next.GetUniformLocation(program, name)
	}
	return location(r.uniforms, name)
}

func (r *Recorder) GetAttribLocation(program uint32, name string) int32 {
	if r.next != nil {
		return r.next.GetAttribLocation(program, name)
	}
	return location(r.attribs, name)
}

func (r *Recorder) Uniform1i(loc int32, v int32) {
	r.record("Uniform1i", ints(int64(loc), int64(v)), nil, 0)
	if r.next != nil {
		r.next.Uniform1i(loc, v)
	}
}

func (r *Recorder) Uniform1iv(loc int32, v []int32) {
	r.record("Uniform1iv", append(ints(int64(loc)), toInt64(v)...), nil, 0)
	if r.next != nil {
		r.next.Uniform1iv(loc, v)
	}
}

func toInt64(v []int32) []int64 {
	out := make([]int64, len(v))
	for i, x := range v {
		out[i] = int64(x)
	}
	return out
}

func (r *Recorder) Uniform1f(loc int32, v float32) {
	r.record("Uniform1f", ints(int64(loc)), []float32{v}, 0)
	if r.next != nil {
		r.next.Uniform1f(loc, v)
	}
}

func (r *Recorder) Uniform2f(loc int32, x, y float32) {
	r.record("Uniform2f", ints(int64(loc)), []float32{x, y}, 0)
	if r.next != nil {
		r.next.Uniform2f(loc, x, y)
	}
}

func (r *Recorder) UniformMatrix4fv(loc int32, m *[16]float32) {
	r.record("UniformMatrix4fv", ints(int64(loc)), append([]float32(nil), m[:]...), 0)
	if r.next != nil {
		r.next.UniformMatrix4fv(loc, m)
	}
}

func (r *Recorder) GenTexture() uint32 {
	var name uint32
	if r.next != nil {
		name = r.next.GenTexture()
	} else {
		name = r.newName()
	}
	r.textures[name] = &TextureState{Name: name, Params: map[uint32]int32{}}
	r.record("GenTexture", ints(int64(name)), nil, 0)
	return name
}

func (r *Recorder) ActiveTexture(unit uint32) {
	r.record("ActiveTexture", ints(int64(unit)), nil, 0)
	if r.next != nil {
		r.next.ActiveTexture(unit)
	}
}

func (r *Recorder) BindTexture(target, texture uint32) {
	r.record("BindTexture", ints(int64(target), int64(texture)), nil, 0)
	r.bound = texture
	if r.next != nil {
		r.next.BindTexture(target, texture)
	}
}

func (r *Recorder) boundTexture() *TextureState {
	t, ok := r.textures[r.bound]
	if !ok {
		// Adopted textures were created outside the recorder.
		t = &TextureState{Name: r.bound, Params: map[uint32]int32{}}
		if r.bound != 0 {
			r.textures[r.bound] = t
		}
	}
	return t
}

func (r *Recorder) TexParameteri(target, pname uint32, param int32) {
	r.record("TexParameteri", ints(int64(target), int64(pname), int64(param)), nil, 0)
	r.boundTexture().Params[pname] = param
	if r.next != nil {
		r.next.TexParameteri(target, pname, param)
	}
}

func (r *Recorder) TexImage2D(target uint32, level int32, internalFormat int32, width, height int32, format, typ uint32, pixels []byte) {
	r.record("TexImage2D", ints(int64(target), int64(level), int64(internalFormat), int64(width), int64(height), int64(format), int64(typ)), nil, len(pixels))
	t := r.boundTexture()
	t.Width, t.Height, t.InternalFormat = width, height, internalFormat
	t.FullUploads++
	if r.next != nil {
		r.next.TexImage2D(target, level, internalFormat, width, height, format, typ, pixels)
	}
}

func (r *Recorder) TexSubImage2D(target uint32, level int32, x, y, width, height int32, format, typ uint32, pixels []byte) {
	r.record("TexSubImage2D", ints(int64(target), int64(level), int64(x), int64(y), int64(width), int64(height), int64(format), int64(typ)), nil, len(pixels))
	r.boundTexture().SubUploads++
	if r.next != nil {
		r.next.TexSubImage2D(target, level, x, y, width, height, format, typ, pixels)
	}
}

func (r *Recorder) PixelStorei(pname uint32, param int32) {
	r.record("PixelStorei", ints(int64(pname), int64(param)), nil, 0)
	if r.next != nil {
		r.next.PixelStorei(pname, param)
	}
}

func (r *Recorder) DeleteTexture(texture uint32) {
	r.record("DeleteTexture", ints(int64(texture)), nil, 0)
	delete(r.textures, texture)
	if r.next != nil {
		r.next.DeleteTexture(texture)
	}
}

func (r *Recorder) GenVertexArray() uint32 {
	var name uint32
	if r.next != nil {
		name = r.next.GenVertexArray()
	} else {
		name = r.newName()
	}
	r.record("GenVertexArray", ints(int64(name)), nil, 0)
	return name
}

func (r *Recorder) BindVertexArray(vao uint32) {
	r.record("BindVertexArray", ints(int64(vao)), nil, 0)
	if r.next != nil {
		r.next.BindVertexArray(vao)
	}
}

func (r *Recorder) DeleteVertexArray(vao uint32) {
	r.record("DeleteVertexArray", ints(int64(vao)), nil, 0)
	if r.next != nil {
		r.next.DeleteVertexArray(vao)
	}
}

func (r *Recorder) GenBuffer() uint32 {
	var name uint32
	if r.next != nil {
		name = r.next.GenBuffer()
	} else {
		name = r.newName()
	}
	r.record("GenBuffer", ints(int64(name)), nil, 0)
	return name
}

func (r *Recorder) BindBuffer(target, buffer uint32) {
	r.record("BindBuffer", ints(int64(target), int64(buffer)), nil, 0)
	if r.next != nil {
		r.next.BindBuffer(target, buffer)
	}
}

func (r *Recorder) BufferData(target uint32, data []byte, usage uint32) {
	r.record("BufferData", ints(int64(target), int64(usage)), nil, len(data))
	if r.next != nil {
		r.next.BufferData(target, data, usage)
	}
}

func (r *Recorder) DeleteBuffer(buffer uint32) {
	r.record("DeleteBuffer", ints(int64(buffer)), nil, 0)
	if r.next != nil {
		r.next.DeleteBuffer(buffer)
	}
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset int) {
	n := int64(0)
	if normalized {
		n = 1
	}
	r.record("VertexAttribPointer", ints(int64(index), int64(size), int64(typ), n, int64(stride), int64(offset)), nil, 0)
	if r.next != nil {
		r.next.VertexAttribPointer(index, size, typ, normalized, stride, offset)
	}
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", ints(int64(index)), nil, 0)
	if r.next != nil {
		r.next.EnableVertexAttribArray(index)
	}
}

func (r *Recorder) DisableVertexAttribArray(index uint32) {
	r.record("DisableVertexAttribArray", ints(int64(index)), nil, 0)
	if r.next != nil {
		r.next.DisableVertexAttribArray(index)
	}
}

func (r *Recorder) DrawElements(mode uint32, count int32, typ uint32, offset int) {
	r.record("DrawElements", ints(int64(mode), int64(count), int64(typ), int64(offset)), nil, 0)
	if r.next != nil {
		r.next.DrawElements(mode, count, typ, offset)
	}
}

func (r *Recorder) DrawArrays(mode uint32, first, count int32) {
	r.record("DrawArrays", ints(int64(mode), int64(first), int64(count)), nil, 0)
	if r.next != nil {
		r.next.DrawArrays(mode, first, count)
	}
}

func (r *Recorder) Enable(capability uint32) {
	r.record("Enable", ints(int64(capability)), nil, 0)
	r.enabled[capability] = true
	if r.next != nil {
		r.next.Enable(capability)
	}
}

func (r *Recorder) Disable(capability uint32) {
	r.record("Disable", ints(int64(capability)), nil, 0)
	r.enabled[capability] = false
	if r.next != nil {
		r.next.Disable(capability)
	}
}

func (r *Recorder) BlendFunc(sfactor, dfactor uint32) {
	r.record("BlendFunc", ints(int64(sfactor), int64(dfactor)), nil, 0)
	if r.next != nil {
		r.next.BlendFunc(sfactor, dfactor)
	}
}

func (r *Recorder) Scissor(x, y, width, height int32) {
	r.record("Scissor", ints(int64(x), int64(y), int64(width), int64(height)), nil, 0)
	if r.next != nil {
		r.next.Scissor(x, y, width, height)
	}
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", ints(int64(x), int64(y), int64(width), int64(height)), nil, 0)
	if r.next != nil {
		r.next.Viewport(x, y, width, height)
	}
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", nil, []float32{red, green, blue, alpha}, 0)
	if r.next != nil {
		r.next.ClearColor(red, green, blue, alpha)
	}
}

func (r *Recorder) Clear(mask uint32) {
	r.record("Clear", ints(int64(mask)), nil, 0)
	if r.next != nil {
		r.next.Clear(mask)
	}
}
