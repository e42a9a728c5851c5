package ui

import (
	"math"

	"github.com/AllenDang/imgui-go"
	"github.com/gorustyt/glgui/app"
	"github.com/gorustyt/glgui/gui"
	"github.com/gorustyt/glgui/imguikit"
)

var Yellow = gui.RGB(255, 255, 0)

// SinePlot draws a sine wave into a user texture every frame.
type SinePlot struct {
	width, height int
	pixels        []gui.Color32
	texture       gui.TextureId

	shift     float32
	Amplitude float32
	Text      string
}

func NewSinePlot(width, height int) *SinePlot {
	return &SinePlot{
		width:     width,
		height:    height,
		pixels:    make([]gui.Color32, width*height),
		Amplitude: 50,
		Text:      "A text box to write in. Cut, copy, paste commands are available.",
	}
}

func (p *SinePlot) Component() app.UiComponent {
	return app.UiComponent{Name: "sine plot", Init: p.init, Update: p.update}
}

func (p *SinePlot) init(ctx *app.Context) {
	p.texture = ctx.Renderer.NewUserTexture(p.width, p.height, p.pixels, gui.LinearOptions)
}

// Plot redraws the wave and advances its phase.
func (p *SinePlot) Plot() []gui.Color32 {
	for i := range p.pixels {
		p.pixels[i] = gui.Black
	}
	step := 360 / float32(p.width)
	for x := 0; x < p.width; x++ {
		angle := float64(float32(x)*step) * math.Pi / 180
		y := p.Amplitude * float32(math.Sin(angle+float64(p.shift)))
		row := int(float32(p.height)/2 - y)
		if row < 0 || row >= p.height {
			continue
		}
		p.pixels[row*p.width+x] = Yellow
	}
	p.shift += 0.1
	return p.pixels
}

func (p *SinePlot) update(ctx *app.Context) {
	ctx.Renderer.UpdateUserTexture(p.texture, p.Plot())

	imgui.Begin("glgui with GLFW")
	imgui.Image(imguikit.TextureID(p.texture), imgui.Vec2{X: float32(p.width), Y: float32(p.height)})
	imgui.Separator()
	imgui.Text("A simple sine wave plotted onto a GL texture then blitted to an imgui image.")
	imgui.InputTextMultiline("##text", &p.Text)
	SliderWithValue("Amplitude", &p.Amplitude, 0, 50)
	if imgui.Button("Quit") {
		ctx.Quit = true
	}
	imgui.End()
}
