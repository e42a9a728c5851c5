package render

import (
	"github.com/gorustyt/glgui/common"
	"github.com/gorustyt/glgui/gui"
)

// GpuTexture is one GL texture plus the CPU pixels still waiting to be
// uploaded. Name 0 means the GL object has not been created yet.
type GpuTexture struct {
	gl      GL
	name    uint32
	options gui.TextureOptions
	width   int
	height  int
	// pending holds RGBA bytes for the next full upload.
	pending []byte
	dirty   bool
}

// NewGpuTexture issues no GL calls.
func NewGpuTexture(gl GL, options gui.TextureOptions, width, height int, pixels []byte, dirty bool) *GpuTexture {
	return &GpuTexture{
		gl:      gl,
		options: options,
		width:   width,
		height:  height,
		pending: pixels,
		dirty:   dirty,
	}
}

func (t *GpuTexture) Name() uint32 {
	return t.name
}

func (t *GpuTexture) Size() (int, int) {
	return t.width, t.height
}

func (t *GpuTexture) Options() gui.TextureOptions {
	return t.options
}

func (t *GpuTexture) Dirty() bool {
	return t.dirty
}

func (t *GpuTexture) Realised() bool {
	return t.name != 0
}

// SetPixels replaces the pending upload and marks the texture dirty.
func (t *GpuTexture) SetPixels(pixels []byte) {
	common.Assertf(len(pixels) == 4*t.width*t.height,
		"texture %dx%d needs %d bytes, got %d", t.width, t.height, 4*t.width*t.height, len(pixels))
	t.pending = pixels
	t.dirty = true
}

func (t *GpuTexture) takePixels() []byte {
	p := t.pending
	t.pending = nil
	return p
}

func wrapParam(mode gui.TextureWrapMode) int32 {
	switch mode {
	case gui.Repeat:
		return REPEAT
	case gui.MirroredRepeat:
		return MIRRORED_REPEAT
	}
	return CLAMP_TO_EDGE
}

func filterParam(f gui.TextureFilter) int32 {
	if f == gui.Nearest {
		return NEAREST
	}
	return LINEAR
}

// Realise creates the GL object and applies wrap and filter options.
// The texture is left bound.
func (t *GpuTexture) Realise() {
	common.Assertf(t.name == 0, "texture already realised as %d", t.name)
	name := t.gl.GenTexture()
	common.Assertf(name != 0, "glGenTextures returned 0")
	t.name = name

	t.gl.BindTexture(TEXTURE_2D, name)
	wrap := wrapParam(t.options.WrapMode)
	t.gl.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_S, wrap)
	t.gl.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_T, wrap)
	t.gl.TexParameteri(TEXTURE_2D, TEXTURE_MIN_FILTER, filterParam(t.options.Minification))
	t.gl.TexParameteri(TEXTURE_2D, TEXTURE_MAG_FILTER, filterParam(t.options.Magnification))
}

// UploadFull replaces the whole texture image.
func (t *GpuTexture) UploadFull(pixels []byte) {
	common.Assertf(t.name != 0, "upload to unrealised texture")
	common.Assertf(len(pixels) == 4*t.width*t.height,
		"mismatch between texture size %dx%d and %d bytes", t.width, t.height, len(pixels))

	t.gl.BindTexture(TEXTURE_2D, t.name)
	t.gl.TexImage2D(TEXTURE_2D, 0, SRGB8_ALPHA8, int32(t.width), int32(t.height), RGBA, UNSIGNED_BYTE, pixels)
	t.gl.BindTexture(TEXTURE_2D, 0)
}

// UploadSub patches the w by h region at (x, y).
func (t *GpuTexture) UploadSub(x, y, w, h int, pixels []byte) {
	common.Assertf(t.name != 0, "sub upload to unrealised texture")
	common.Assertf(x >= 0 && y >= 0 && x+w <= t.width && y+h <= t.height,
		"sub region (%d,%d %dx%d) outside texture %dx%d", x, y, w, h, t.width, t.height)
	common.Assertf(len(pixels) == 4*w*h,
		"mismatch between region size %dx%d and %d bytes", w, h, len(pixels))

	t.gl.BindTexture(TEXTURE_2D, t.name)
	t.gl.PixelStorei(UNPACK_ALIGNMENT, 1)
	t.gl.TexSubImage2D(TEXTURE_2D, 0, int32(x), int32(y), int32(w), int32(h), RGBA, UNSIGNED_BYTE, pixels)
	t.gl.BindTexture(TEXTURE_2D, 0)
}

func (t *GpuTexture) Free() {
	if t.name != 0 {
		t.gl.DeleteTexture(t.name)
		t.name = 0
	}
}
