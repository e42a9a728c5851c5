package render

import (
	"fmt"
	"sort"

	"github.com/gorustyt/glgui/common"
	"github.com/gorustyt/glgui/gui"
)

const (
	// Font gammas applied when turning coverage into sRGBA texels.
	fontAtlasGamma  = 0.4
	fontUpdateGamma = 1.0
)

// TextureRegistry owns every GpuTexture, keyed by toolkit texture id.
type TextureRegistry struct {
	gl       GL
	textures map[gui.TextureId]*GpuTexture
	// nextUser only grows, so user ids are never handed out twice.
	nextUser uint64
}

func NewTextureRegistry(gl GL) *TextureRegistry {
	return &TextureRegistry{gl: gl, textures: map[gui.TextureId]*GpuTexture{}}
}

func (r *TextureRegistry) Get(id gui.TextureId) (*GpuTexture, bool) {
	t, ok := r.textures[id]
	return t, ok
}

func (r *TextureRegistry) Len() int {
	return len(r.textures)
}

// Ids returns the registered ids, managed first, then by index.
func (r *TextureRegistry) Ids() []gui.TextureId {
	ids := make([]gui.TextureId, 0, len(r.textures))
	for id := range r.textures {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	return ids
}

func (r *TextureRegistry) nextUserId() gui.TextureId {
	id := gui.UserId(r.nextUser)
	r.nextUser++
	_, taken := r.textures[id]
	common.Assertf(!taken, "user texture %v is already registered", id)
	return id
}

// AllocateUser registers a texture that is uploaded on the next paint.
func (r *TextureRegistry) AllocateUser(width, height int, pixels []gui.Color32, options gui.TextureOptions) gui.TextureId {
	common.Assertf(width*height == len(pixels),
		"texture %dx%d needs %d pixels, got %d", width, height, width*height, len(pixels))
	id := r.nextUserId()
	r.textures[id] = NewGpuTexture(r.gl, options, width, height, gui.PixelBytes(pixels), true)
	return id
}

// AllocateRaw adopts a GL texture created elsewhere. The registry deletes
// it when the id is freed.
func (r *TextureRegistry) AllocateRaw(name uint32) gui.TextureId {
	common.Assertf(name != 0, "cannot adopt GL texture 0")
	id := r.nextUserId()
	t := NewGpuTexture(r.gl, gui.LinearOptions, 0, 0, nil, false)
	t.name = name
	r.textures[id] = t
	return id
}

func (r *TextureRegistry) UpdateUser(id gui.TextureId, pixels []gui.Color32) {
	t, ok := r.textures[id]
	common.Assertf(ok, "texture %v has not been created", id)
	t.SetPixels(gui.PixelBytes(pixels))
}

func imageBytes(image gui.ImageData, gamma float32) []byte {
	switch img := image.(type) {
	case *gui.ColorImage:
		common.Assertf(img.Width*img.Height == len(img.Pixels),
			"mismatch between texture size %dx%d and texel count %d", img.Width, img.Height, len(img.Pixels))
		return gui.PixelBytes(img.Pixels)
	case *gui.FontImage:
		common.Assertf(img.Width*img.Height == len(img.Pixels),
			"mismatch between texture size %dx%d and texel count %d", img.Width, img.Height, len(img.Pixels))
		return gui.PixelBytes(img.SrgbaPixels(gamma))
	}
	panic(fmt.Sprintf("unsupported image data %T", image))
}

// SetFromDelta applies one toolkit texture change. A whole-image delta
// replaces any existing texture under id. A partial delta patches the
// existing texture and panics if id is unknown.
func (r *TextureRegistry) SetFromDelta(id gui.TextureId, delta gui.ImageDelta) {
	size := delta.Image.Size()
	if delta.Pos != nil {
		t, ok := r.textures[id]
		common.Assertf(ok, "sub-region update of unknown texture %v", id)
		data := imageBytes(delta.Image, fontUpdateGamma)
		t.UploadSub(delta.Pos[0], delta.Pos[1], size[0], size[1], data)
		return
	}

	if id.Kind == gui.User && id.Index >= r.nextUser {
		r.nextUser = id.Index + 1
	}
	data := imageBytes(delta.Image, fontAtlasGamma)
	t := NewGpuTexture(r.gl, delta.Options, size[0], size[1], nil, false)
	t.Realise()
	t.UploadFull(data)
	if old, ok := r.textures[id]; ok {
		old.Free()
	}
	r.textures[id] = t
}

// UploadDirty realises and uploads every texture with pending pixels.
func (r *TextureRegistry) UploadDirty() {
	for _, id := range r.Ids() {
		t := r.textures[id]
		if t.name != 0 && !t.dirty {
			continue
		}
		if t.name == 0 {
			t.Realise()
		}
		if pixels := t.takePixels(); len(pixels) > 0 {
			t.UploadFull(pixels)
		}
		t.dirty = false
	}
}

// Free is a no-op for unknown ids.
func (r *TextureRegistry) Free(id gui.TextureId) {
	if t, ok := r.textures[id]; ok {
		delete(r.textures, id)
		t.Free()
	}
}

func (r *TextureRegistry) Close() {
	for _, id := range r.Ids() {
		r.Free(id)
	}
}
