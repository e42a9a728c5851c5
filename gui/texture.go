package gui

import (
	"fmt"
	"math"

	"github.com/gorustyt/glgui/common"
)

type TextureKind uint8

const (
	// Managed textures are owned by the toolkit, e.g. its glyph atlas.
	Managed TextureKind = iota
	// User textures are allocated on behalf of the application.
	User
)

// TextureId names a texture. It is comparable and can be used as a map key.
type TextureId struct {
	Kind  TextureKind
	Index uint64
}

func ManagedId(index uint64) TextureId {
	return TextureId{Kind: Managed, Index: index}
}

func UserId(index uint64) TextureId {
	return TextureId{Kind: User, Index: index}
}

// Less orders managed ids before user ids, then by index.
func (id TextureId) Less(other TextureId) bool {
	if id.Kind != other.Kind {
		return id.Kind < other.Kind
	}
	return id.Index < other.Index
}

func (id TextureId) String() string {
	if id.Kind == Managed {
		return fmt.Sprintf("Managed(%d)", id.Index)
	}
	return fmt.Sprintf("User(%d)", id.Index)
}

type TextureFilter uint8

const (
	Linear TextureFilter = iota
	Nearest
)

type TextureWrapMode uint8

const (
	ClampToEdge TextureWrapMode = iota
	Repeat
	MirroredRepeat
)

type TextureOptions struct {
	Magnification TextureFilter
	Minification  TextureFilter
	WrapMode      TextureWrapMode
}

var (
	LinearOptions  = TextureOptions{Magnification: Linear, Minification: Linear, WrapMode: ClampToEdge}
	NearestOptions = TextureOptions{Magnification: Nearest, Minification: Nearest, WrapMode: ClampToEdge}
)

// Color32 is a premultiplied sRGBA colour, one byte per channel.
type Color32 [4]uint8

var (
	Transparent = Color32{0, 0, 0, 0}
	Black       = Color32{0, 0, 0, 255}
	White       = Color32{255, 255, 255, 255}
	Red         = Color32{255, 0, 0, 255}
	Green       = Color32{0, 255, 0, 255}
	Blue        = Color32{0, 0, 255, 255}
)

func RGB(r, g, b uint8) Color32 {
	return Color32{r, g, b, 255}
}

// RGBAUnmultiplied premultiplies r, g and b by a. The multiply is done in
// gamma space, which is what the toolkit shaders expect.
func RGBAUnmultiplied(r, g, b, a uint8) Color32 {
	if a == 255 {
		return Color32{r, g, b, a}
	}
	f := float32(a) / 255
	return Color32{
		uint8(common.RoundToInt(float32(r) * f)),
		uint8(common.RoundToInt(float32(g) * f)),
		uint8(common.RoundToInt(float32(b) * f)),
		a,
	}
}

// PixelBytes flattens colours into the RGBA byte layout GL expects.
func PixelBytes(pixels []Color32) []byte {
	out := make([]byte, 0, 4*len(pixels))
	for _, c := range pixels {
		out = append(out, c[0], c[1], c[2], c[3])
	}
	return out
}

// ImageData is either a ColorImage or a FontImage.
type ImageData interface {
	Size() [2]int
	isImageData()
}

type ColorImage struct {
	Width  int
	Height int
	Pixels []Color32
}

func NewColorImage(w, h int, fill Color32) *ColorImage {
	img := &ColorImage{Width: w, Height: h, Pixels: make([]Color32, w*h)}
	for i := range img.Pixels {
		img.Pixels[i] = fill
	}
	return img
}

func (img *ColorImage) Size() [2]int {
	return [2]int{img.Width, img.Height}
}

func (img *ColorImage) isImageData() {}

func (img *ColorImage) Set(x, y int, c Color32) {
	img.Pixels[y*img.Width+x] = c
}

// FontImage holds glyph coverage in [0, 1], one float per texel.
type FontImage struct {
	Width  int
	Height int
	Pixels []float32
}

func (img *FontImage) Size() [2]int {
	return [2]int{img.Width, img.Height}
}

func (img *FontImage) isImageData() {}

// SrgbaPixels converts coverage to premultiplied white texels, applying
// alpha = coverage^gamma.
func (img *FontImage) SrgbaPixels(gamma float32) []Color32 {
	out := make([]Color32, len(img.Pixels))
	for i, coverage := range img.Pixels {
		alpha := float32(math.Pow(float64(coverage), float64(gamma)))
		a := uint8(common.RoundToInt(common.Clamp(alpha*255, 0, 255)))
		out[i] = Color32{a, a, a, a}
	}
	return out
}

// ImageDelta replaces a whole texture when Pos is nil, otherwise it
// patches the region starting at *Pos.
type ImageDelta struct {
	Image   ImageData
	Options TextureOptions
	Pos     *[2]int
}

func FullDelta(image ImageData, options TextureOptions) ImageDelta {
	return ImageDelta{Image: image, Options: options}
}

func PartialDelta(x, y int, image ImageData, options TextureOptions) ImageDelta {
	return ImageDelta{Image: image, Options: options, Pos: &[2]int{x, y}}
}

func (d ImageDelta) IsWhole() bool {
	return d.Pos == nil
}

type TextureSet struct {
	Id    TextureId
	Delta ImageDelta
}

// TexturesDelta lists per-frame texture changes. Set entries apply before
// painting, Free entries after.
type TexturesDelta struct {
	Set  []TextureSet
	Free []TextureId
}

func (d *TexturesDelta) IsEmpty() bool {
	return len(d.Set) == 0 && len(d.Free) == 0
}

// Append moves the entries of other onto the end of d.
func (d *TexturesDelta) Append(other TexturesDelta) {
	d.Set = append(d.Set, other.Set...)
	d.Free = append(d.Free, other.Free...)
}

func (d *TexturesDelta) Clear() {
	d.Set = d.Set[:0]
	d.Free = d.Free[:0]
}
