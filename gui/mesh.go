package gui

import (
	"github.com/gorustyt/glgui/common"
)

type Vertex struct {
	// Pos is in logical points.
	Pos   common.Vec2
	UV    common.Vec2
	Color Color32
}

// Mesh is an indexed triangle list sampling one texture.
type Mesh struct {
	TextureId TextureId
	Vertices  []Vertex
	Indices   []uint32
}

func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0 || len(m.Vertices) == 0
}

// IsValid reports whether every index addresses a vertex and the index
// count describes whole triangles.
func (m *Mesh) IsValid() bool {
	if len(m.Indices)%3 != 0 {
		return false
	}
	n := uint32(len(m.Vertices))
	for _, i := range m.Indices {
		if i >= n {
			return false
		}
	}
	return true
}

// AddRectWithUV appends two triangles covering rect.
func (m *Mesh) AddRectWithUV(rect, uv common.Rect, color Color32) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		Vertex{Pos: rect.Min, UV: uv.Min, Color: color},
		Vertex{Pos: common.Vec2{rect.Max[0], rect.Min[1]}, UV: common.Vec2{uv.Max[0], uv.Min[1]}, Color: color},
		Vertex{Pos: common.Vec2{rect.Min[0], rect.Max[1]}, UV: common.Vec2{uv.Min[0], uv.Max[1]}, Color: color},
		Vertex{Pos: rect.Max, UV: uv.Max, Color: color},
	)
	m.Indices = append(m.Indices, base, base+1, base+2, base+2, base+1, base+3)
}

// Primitive is either a *Mesh or a Callback.
type Primitive interface {
	isPrimitive()
}

func (m *Mesh) isPrimitive() {}

// Callback is an application paint callback. Painters built on GL reject it.
type Callback struct {
	Rect common.Rect
	Func func()
}

func (c *Callback) isPrimitive() {}

type ClippedPrimitive struct {
	// ClipRect is in logical points.
	ClipRect  common.Rect
	Primitive Primitive
}
