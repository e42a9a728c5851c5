package render

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	//go:embed shaders/gui.vert
	guiVertexSource string
	//go:embed shaders/gui.frag
	guiFragmentSource string
)

// Shader is a linked vertex and fragment program.
type Shader struct {
	gl       GL
	program  uint32
	uniforms map[string]int32
}

// NewShader compiles and links a program. The error carries the driver's
// info log when compilation or linking fails.
func NewShader(gl GL, vertexShaderSource, fragmentShaderSource string) (*Shader, error) {
	program, err := newProgram(gl, vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	return &Shader{gl: gl, program: program, uniforms: map[string]int32{}}, nil
}

// NewGuiShader builds the program used by Painter.
func NewGuiShader(gl GL) (*Shader, error) {
	return NewShader(gl, guiVertexSource, guiFragmentSource)
}

func newProgram(gl GL, vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(gl, vertexShaderSource, VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(gl, fragmentShaderSource, FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	if program == 0 {
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)
		return 0, fmt.Errorf("failed to create program")
	}

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	if gl.GetProgrami(program, LINK_STATUS) == FALSE {
		log := gl.GetProgramInfoLog(program)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", log)
	}
	return program, nil
}

func compileShader(gl GL, source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	if shader == 0 {
		return 0, fmt.Errorf("failed to create %v shader", shaderTypeName(shaderType))
	}

	gl.ShaderSource(shader, source)
	gl.CompileShader(shader)

	if gl.GetShaderi(shader, COMPILE_STATUS) == FALSE {
		log := gl.GetShaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %v shader: %v", shaderTypeName(shaderType), log)
	}
	return shader, nil
}

func shaderTypeName(shaderType uint32) string {
	switch shaderType {
	case VERTEX_SHADER:
		return "vertex"
	case FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", shaderType)
}

func (s *Shader) Program() uint32 {
	return s.program
}

// Attach makes the program current.
func (s *Shader) Attach() {
	s.gl.UseProgram(s.program)
}

func (s *Shader) Detach() {
	s.gl.UseProgram(0)
}

// UniformLocation returns -1 for names the linker optimised away.
func (s *Shader) UniformLocation(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := s.gl.GetUniformLocation(s.program, name)
	s.uniforms[name] = loc
	return loc
}

func (s *Shader) AttribLocation(name string) int32 {
	return s.gl.GetAttribLocation(s.program, name)
}

func (s *Shader) UploadMat4(name string, m mgl32.Mat4) {
	loc := s.UniformLocation(name)
	if loc < 0 {
		panic(fmt.Sprintf("uniform %q not found", name))
	}
	arr := [16]float32(m)
	s.gl.UniformMatrix4fv(loc, &arr)
}

func (s *Shader) UploadIntArray(name string, values []int32) {
	s.gl.Uniform1iv(s.UniformLocation(name), values)
}

func (s *Shader) UploadInt(name string, v int32) {
	s.gl.Uniform1i(s.UniformLocation(name), v)
}

func (s *Shader) UploadFloat(name string, v float32) {
	s.gl.Uniform1f(s.UniformLocation(name), v)
}

func (s *Shader) UploadVec2(name string, v mgl32.Vec2) {
	s.gl.Uniform2f(s.UniformLocation(name), v[0], v[1])
}

func (s *Shader) Delete() {
	if s.program != 0 {
		s.gl.DeleteProgram(s.program)
		s.program = 0
	}
}
