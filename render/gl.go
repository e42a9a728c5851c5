package render

// GL is the subset of the OpenGL 3.3 core API the painter needs. Object
// creation returns names directly; byte slices replace raw pointers.
type GL interface {
	CreateShader(typ uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	GetAttribLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1iv(location int32, v []int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x, y float32)
	UniformMatrix4fv(location int32, m *[16]float32)

	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target, texture uint32)
	TexParameteri(target, pname uint32, param int32)
	TexImage2D(target uint32, level int32, internalFormat int32, width, height int32, format, typ uint32, pixels []byte)
	TexSubImage2D(target uint32, level int32, x, y, width, height int32, format, typ uint32, pixels []byte)
	PixelStorei(pname uint32, param int32)
	DeleteTexture(texture uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []byte, usage uint32)
	DeleteBuffer(buffer uint32)
	VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)

	DrawElements(mode uint32, count int32, typ uint32, offset int)
	DrawArrays(mode uint32, first, count int32)

	Enable(capability uint32)
	Disable(capability uint32)
	BlendFunc(sfactor, dfactor uint32)
	Scissor(x, y, width, height int32)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
}

// OpenGL enum values used by this package. They match the values in the
// go-gl bindings, so implementations can pass them through unchanged.
const (
	FALSE = 0
	TRUE  = 1

	TRIANGLES = 0x0004

	DEPTH_BUFFER_BIT = 0x00000100
	COLOR_BUFFER_BIT = 0x00004000

	ONE                 = 1
	ONE_MINUS_SRC_ALPHA = 0x0303

	DEPTH_TEST       = 0x0B71
	BLEND            = 0x0BE2
	SCISSOR_TEST     = 0x0C11
	UNPACK_ALIGNMENT = 0x0CF5
	MULTISAMPLE      = 0x809D
	FRAMEBUFFER_SRGB = 0x8DB9

	TEXTURE_2D         = 0x0DE1
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	NEAREST            = 0x2600
	LINEAR             = 0x2601
	REPEAT             = 0x2901
	CLAMP_TO_EDGE      = 0x812F
	MIRRORED_REPEAT    = 0x8370
	TEXTURE0           = 0x84C0

	UNSIGNED_BYTE  = 0x1401
	UNSIGNED_SHORT = 0x1403
	FLOAT          = 0x1406
	RGBA           = 0x1908
	SRGB8_ALPHA8   = 0x8C43

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STREAM_DRAW          = 0x88E0
	STATIC_DRAW          = 0x88E4

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84
)
