// Package gui holds the data exchanged between the immediate-mode toolkit,
// the OpenGL painter and the host input layer.
package gui

// Toolkit is an immediate-mode GUI library driven one frame at a time.
type Toolkit interface {
	// BeginFrame consumes input and opens a frame. Widgets may be declared
	// until EndFrame.
	BeginFrame(input RawInput)
	EndFrame() FullOutput
	// Tessellate turns the shapes of a FullOutput into clipped meshes.
	Tessellate(shapes any, pixelsPerPoint float32) []ClippedPrimitive
	PixelsPerPoint() float32
	// SetPixelsPerPoint reports the host display scale to the toolkit.
	SetPixelsPerPoint(ppp float32)
}
