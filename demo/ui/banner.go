package ui

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/AllenDang/imgui-go"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/gorustyt/glgui/app"
	"github.com/gorustyt/glgui/gui"
	"github.com/gorustyt/glgui/imguikit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const bannerPadding = 8

// RenderBanner rasterises text in Go Regular as white on transparent.
func RenderBanner(text string, size float64) (*gui.ColorImage, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72})
	defer face.Close()
	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil() + 2*bannerPadding
	height := (metrics.Ascent + metrics.Descent).Ceil() + 2*bannerPadding

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), image.Transparent, image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(size)
	c.SetClip(rgba.Bounds())
	c.SetDst(rgba)
	c.SetSrc(image.White)
	c.SetHinting(font.HintingFull)
	pt := freetype.Pt(bannerPadding, bannerPadding+metrics.Ascent.Ceil())
	if _, err := c.DrawString(text, pt); err != nil {
		return nil, fmt.Errorf("draw %q: %w", text, err)
	}

	// image.RGBA is already premultiplied.
	img := &gui.ColorImage{Width: width, Height: height, Pixels: make([]gui.Color32, width*height)}
	for i := range img.Pixels {
		copy(img.Pixels[i][:], rgba.Pix[4*i:4*i+4])
	}
	return img, nil
}

// Banner shows a freetype rendered string through a user texture.
type Banner struct {
	Text    string
	Size    float64
	image   *gui.ColorImage
	texture gui.TextureId
	visible bool
	frameMs *ValueHistory
}

func NewBanner(text string, size float64) (*Banner, error) {
	img, err := RenderBanner(text, size)
	if err != nil {
		return nil, err
	}
	return &Banner{Text: text, Size: size, image: img, visible: true, frameMs: NewValueHistory()}, nil
}

func (b *Banner) Component() app.UiComponent {
	return app.UiComponent{
		Name: "banner",
		Init: func(ctx *app.Context) {
			b.texture = ctx.Renderer.NewUserTexture(b.image.Width, b.image.Height, b.image.Pixels, gui.NearestOptions)
		},
		Update: b.update,
		Close: func(ctx *app.Context) error {
			ctx.Renderer.FreeTexture(b.texture)
			return nil
		},
	}
}

func (b *Banner) update(ctx *app.Context) {
	b.frameMs.AddSample(float32(ctx.Timer.Dt() * 1000))
	if !b.visible {
		return
	}
	if imgui.BeginV("Banner", &b.visible, 0) {
		imgui.Image(imguikit.TextureID(b.texture), imgui.Vec2{X: float32(b.image.Width), Y: float32(b.image.Height)})
		imgui.Text(fmt.Sprintf("%.2f ms/frame (min %.2f, max %.2f)", b.frameMs.Average(), b.frameMs.SampleMin(), b.frameMs.SampleMax()))
		imgui.PlotLines("frame ms", b.frameMs.Values())
	}
	imgui.End()
}
