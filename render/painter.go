package render

import (
	"fmt"

	"github.com/gorustyt/glgui/common"
	"github.com/gorustyt/glgui/common/rw"
	"github.com/gorustyt/glgui/gui"
	"go.uber.org/zap"
)

const (
	posSize       = 2
	texCoordsSize = 2
	colorSize     = 4

	float32Size = 4

	posOffset       = 0
	texCoordsOffset = posOffset + posSize*float32Size
	colorOffset     = texCoordsOffset + texCoordsSize*float32Size

	// VertexSizeBytes is the stride of the interleaved vertex buffer.
	VertexSizeBytes = colorOffset + colorSize
)

type PainterOption func(p *Painter)

// WithSRGBScene leaves GL_FRAMEBUFFER_SRGB enabled after painting, for
// hosts whose own draw calls expect it.
func WithSRGBScene(enabled bool) PainterOption {
	return func(p *Painter) {
		p.srgbScene = enabled
	}
}

// Painter turns clipped meshes and texture deltas into GL calls.
type Painter struct {
	gl       GL
	logger   *zap.Logger
	shader   *Shader
	textures *TextureRegistry

	vao, vbo, ebo uint32

	aPos, aTc, aSrgba uint32
	uScreenSize       int32
	uSampler          int32

	width, height int
	srgbScene     bool

	vertices *rw.ReaderWriter
	indices  *rw.ReaderWriter
	// missing records unknown textures already reported this frame.
	missing map[gui.TextureId]struct{}
}

func NewPainter(gl GL, width, height int, logger *zap.Logger, opts ...PainterOption) (*Painter, error) {
	shader, err := NewGuiShader(gl)
	if err != nil {
		return nil, fmt.Errorf("gui shader: %w", err)
	}
	p := &Painter{
		gl:       gl,
		logger:   common.OrNop(logger),
		shader:   shader,
		textures: NewTextureRegistry(gl),
		width:    width,
		height:   height,
		vertices: rw.NewWriter(),
		indices:  rw.NewWriter(),
		missing:  map[gui.TextureId]struct{}{},
	}
	for _, opt := range opts {
		opt(p)
	}

	p.aPos = p.attribLocation("a_pos")
	p.aTc = p.attribLocation("a_tc")
	p.aSrgba = p.attribLocation("a_srgba")
	p.uScreenSize = shader.UniformLocation("u_screen_size")
	p.uSampler = shader.UniformLocation("u_sampler")

	p.vao = gl.GenVertexArray()
	common.Assertf(p.vao != 0, "glGenVertexArrays returned 0")
	gl.BindVertexArray(p.vao)
	p.vbo = gl.GenBuffer()
	common.Assertf(p.vbo != 0, "glGenBuffers returned 0")
	p.ebo = gl.GenBuffer()
	common.Assertf(p.ebo != 0, "glGenBuffers returned 0")
	gl.BindVertexArray(0)
	return p, nil
}

func (p *Painter) attribLocation(name string) uint32 {
	loc := p.shader.AttribLocation(name)
	common.Assertf(loc >= 0, "attribute %q not found in gui shader", name)
	return uint32(loc)
}

// SetSize records the framebuffer size in physical pixels.
func (p *Painter) SetSize(width, height int) {
	p.width, p.height = width, height
}

func (p *Painter) Size() (int, int) {
	return p.width, p.height
}

func (p *Painter) Textures() *TextureRegistry {
	return p.textures
}

// NewUserTexture registers width*height premultiplied pixels. No GL calls
// are made until the next paint.
func (p *Painter) NewUserTexture(width, height int, pixels []gui.Color32, options gui.TextureOptions) gui.TextureId {
	return p.textures.AllocateUser(width, height, pixels, options)
}

// UpdateUserTexture schedules a full re-upload on the next paint.
func (p *Painter) UpdateUserTexture(id gui.TextureId, pixels []gui.Color32) {
	p.textures.UpdateUser(id, pixels)
}

// NewOpenGLTexture adopts an existing GL texture name.
func (p *Painter) NewOpenGLTexture(name uint32) gui.TextureId {
	return p.textures.AllocateRaw(name)
}

func (p *Painter) FreeTexture(id gui.TextureId) {
	p.textures.Free(id)
}

// PaintAndUpdateTextures applies delta.Set, uploads dirty user textures,
// draws primitives and finally applies delta.Free.
func (p *Painter) PaintAndUpdateTextures(pixelsPerPoint float32, primitives []gui.ClippedPrimitive, delta *gui.TexturesDelta) {
	if delta != nil {
		for _, set := range delta.Set {
			p.textures.SetFromDelta(set.Id, set.Delta)
		}
	}
	p.textures.UploadDirty()

	p.PaintPrimitives(pixelsPerPoint, primitives)

	if delta != nil {
		for _, id := range delta.Free {
			p.textures.Free(id)
		}
	}
}

func (p *Painter) PaintPrimitives(pixelsPerPoint float32, primitives []gui.ClippedPrimitive) {
	common.Assertf(pixelsPerPoint > 0, "pixels per point must be positive, got %v", pixelsPerPoint)
	clear(p.missing)

	gl := p.gl
	gl.Enable(FRAMEBUFFER_SRGB)
	gl.Enable(SCISSOR_TEST)
	gl.Enable(BLEND)
	gl.BlendFunc(ONE, ONE_MINUS_SRC_ALPHA)
	p.shader.Attach()
	gl.ActiveTexture(TEXTURE0)

	gl.Uniform2f(p.uScreenSize, float32(p.width)/pixelsPerPoint, float32(p.height)/pixelsPerPoint)
	gl.Uniform1i(p.uSampler, 0)
	gl.Viewport(0, 0, int32(p.width), int32(p.height))
	gl.BindVertexArray(p.vao)

	for _, prim := range primitives {
		switch v := prim.Primitive.(type) {
		case *gui.Mesh:
			p.paintMesh(v, prim.ClipRect, pixelsPerPoint)
		case *gui.Callback:
			panic("custom paint callbacks are not supported by the OpenGL painter")
		default:
			panic(fmt.Sprintf("unknown primitive %T", prim.Primitive))
		}
	}

	gl.BindVertexArray(0)
	gl.Disable(SCISSOR_TEST)
	if !p.srgbScene {
		gl.Disable(FRAMEBUFFER_SRGB)
	}
}

func (p *Painter) paintMesh(mesh *gui.Mesh, clip common.Rect, pixelsPerPoint float32) {
	texture, ok := p.textures.Get(mesh.TextureId)
	if !ok {
		if _, reported := p.missing[mesh.TextureId]; !reported {
			p.missing[mesh.TextureId] = struct{}{}
			p.logger.Warn("paint skipped mesh with unknown texture", zap.Stringer("texture", mesh.TextureId))
		}
		return
	}
	if mesh.IsEmpty() {
		return
	}

	gl := p.gl
	gl.BindTexture(TEXTURE_2D, texture.Name())
	x, y, w, h := ClipToScissor(clip, pixelsPerPoint, p.width, p.height)
	gl.Scissor(x, y, w, h)

	p.vertices.Reset()
	p.vertices.Grow(len(mesh.Vertices) * VertexSizeBytes)
	for _, v := range mesh.Vertices {
		p.vertices.WriteFloat32(v.Pos[0])
		p.vertices.WriteFloat32(v.Pos[1])
		p.vertices.WriteFloat32(v.UV[0])
		p.vertices.WriteFloat32(v.UV[1])
		p.vertices.WriteUInt8s(v.Color[:])
	}
	p.indices.Reset()
	p.indices.Grow(len(mesh.Indices) * 2)
	for _, idx := range mesh.Indices {
		common.Assertf(idx <= 0xFFFF, "index %d does not fit in 16 bits", idx)
		p.indices.WriteUInt16(uint16(idx))
	}

	gl.BindBuffer(ARRAY_BUFFER, p.vbo)
	gl.BufferData(ARRAY_BUFFER, p.vertices.Bytes(), STREAM_DRAW)
	gl.BindBuffer(ELEMENT_ARRAY_BUFFER, p.ebo)
	gl.BufferData(ELEMENT_ARRAY_BUFFER, p.indices.Bytes(), STREAM_DRAW)

	gl.VertexAttribPointer(p.aPos, posSize, FLOAT, false, VertexSizeBytes, posOffset)
	gl.EnableVertexAttribArray(p.aPos)
	gl.VertexAttribPointer(p.aTc, texCoordsSize, FLOAT, false, VertexSizeBytes, texCoordsOffset)
	gl.EnableVertexAttribArray(p.aTc)
	gl.VertexAttribPointer(p.aSrgba, colorSize, UNSIGNED_BYTE, false, VertexSizeBytes, colorOffset)
	gl.EnableVertexAttribArray(p.aSrgba)

	gl.DrawElements(TRIANGLES, int32(len(mesh.Indices)), UNSIGNED_SHORT, 0)

	gl.DisableVertexAttribArray(p.aPos)
	gl.DisableVertexAttribArray(p.aTc)
	gl.DisableVertexAttribArray(p.aSrgba)
}

// Close frees every registered texture and the painter's GL objects.
func (p *Painter) Close() {
	p.textures.Close()
	p.gl.DeleteBuffer(p.vbo)
	p.gl.DeleteBuffer(p.ebo)
	p.gl.DeleteVertexArray(p.vao)
	p.shader.Delete()
	p.vbo, p.ebo, p.vao = 0, 0, 0
}
