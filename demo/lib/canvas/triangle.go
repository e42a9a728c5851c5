package canvas

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/glgui/app"
	"github.com/gorustyt/glgui/common/rw"
	"github.com/gorustyt/glgui/render"
)

//go:embed triangle.glsl
var triangleShader string

const (
	float32Size = 4

	posSize   = 2
	colorSize = 3
	stride    = (posSize + colorSize) * float32Size
)

// x, y, r, g, b
var triangleVertices = []float32{
	-0.5, -0.5, 1, 0, 0,
	0.5, -0.5, 0, 1, 0,
	0.0, 0.5, 0, 0, 1,
}

// Triangle is a rotating coloured triangle drawn under the GUI.
type Triangle struct {
	gl       render.GL
	shader   *render.Shader
	vao, vbo uint32
	// Speed is the rotation speed in radians per second.
	Speed float32
}

var _ app.Scene = (*Triangle)(nil)

func NewTriangle(gl render.GL) (*Triangle, error) {
	vs, fs, err := render.ParseShaderSource(triangleShader)
	if err != nil {
		return nil, err
	}
	shader, err := render.NewShader(gl, vs, fs)
	if err != nil {
		return nil, fmt.Errorf("triangle shader: %w", err)
	}
	t := &Triangle{gl: gl, shader: shader, Speed: 1}
	t.createBuffers(triangleVertices)
	return t, nil
}

func (t *Triangle) createBuffers(vertices []float32) {
	gl := t.gl
	t.vao = gl.GenVertexArray()
	t.vbo = gl.GenBuffer()
	gl.BindVertexArray(t.vao)

	w := rw.NewWriter()
	w.WriteFloat32s(vertices)
	gl.BindBuffer(render.ARRAY_BUFFER, t.vbo)
	gl.BufferData(render.ARRAY_BUFFER, w.Bytes(), render.STATIC_DRAW)

	pos := uint32(t.shader.AttribLocation("a_pos"))
	gl.VertexAttribPointer(pos, posSize, render.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(pos)
	color := uint32(t.shader.AttribLocation("a_color"))
	gl.VertexAttribPointer(color, colorSize, render.FLOAT, false, stride, posSize*float32Size)
	gl.EnableVertexAttribArray(color)

	gl.BindVertexArray(0)
}

func (t *Triangle) Draw(ctx *app.Context) {
	angle := float32(ctx.Timer.Elapsed()) * t.Speed
	t.shader.Attach()
	t.shader.UploadMat4("u_model", mgl32.HomogRotate3DZ(angle))
	t.gl.BindVertexArray(t.vao)
	t.gl.DrawArrays(render.TRIANGLES, 0, 3)
	t.gl.BindVertexArray(0)
	t.shader.Detach()
}

// Close releases the program, its shaders and the buffers.
func (t *Triangle) Close() error {
	t.gl.DeleteVertexArray(t.vao)
	t.gl.DeleteBuffer(t.vbo)
	t.shader.Delete()
	t.vao, t.vbo = 0, 0
	return nil
}
