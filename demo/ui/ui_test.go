package ui

import (
	"testing"

	"github.com/gorustyt/glgui/gui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countColor(pixels []gui.Color32, c gui.Color32) int {
	n := 0
	for _, p := range pixels {
		if p == c {
			n++
		}
	}
	return n
}

func TestSinePlotOnePointPerColumn(t *testing.T) {
	p := NewSinePlot(64, 128)
	pixels := p.Plot()

	require.Len(t, pixels, 64*128)
	assert.Equal(t, 64, countColor(pixels, Yellow))
	// Column 0 starts at phase 0, i.e. the middle row.
	assert.Equal(t, Yellow, pixels[64*64])
}

func TestSinePlotAdvances(t *testing.T) {
	p := NewSinePlot(32, 128)
	first := append([]gui.Color32(nil), p.Plot()...)
	second := p.Plot()
	assert.NotEqual(t, first, second)
}

func TestSinePlotClipsAmplitude(t *testing.T) {
	p := NewSinePlot(36, 20)
	p.Amplitude = 50
	pixels := p.Plot()
	n := countColor(pixels, Yellow)
	assert.Less(t, n, 36)
	assert.Greater(t, n, 0)
}

func TestRenderBanner(t *testing.T) {
	img, err := RenderBanner("glgui", 24)
	require.NoError(t, err)

	assert.Greater(t, img.Width, 2*bannerPadding)
	assert.Greater(t, img.Height, 2*bannerPadding)
	require.Len(t, img.Pixels, img.Width*img.Height)
	assert.Equal(t, gui.Transparent, img.Pixels[0])
	assert.Less(t, countColor(img.Pixels, gui.Transparent), len(img.Pixels))
	for _, px := range img.Pixels {
		assert.Equal(t, px[3], px[0], "white text is premultiplied")
	}
}

func TestRenderBannerLongerIsWider(t *testing.T) {
	short, err := RenderBanner("a", 16)
	require.NoError(t, err)
	long, err := RenderBanner("a much longer banner", 16)
	require.NoError(t, err)
	assert.Greater(t, long.Width, short.Width)
	assert.Equal(t, long.Height, short.Height)
}

func TestValueHistory(t *testing.T) {
	h := NewValueHistory()
	assert.Zero(t, h.SampleCount())
	assert.Zero(t, h.Average())

	for _, v := range []float32{4, 1, 7} {
		h.AddSample(v)
	}
	assert.Equal(t, 3, h.SampleCount())
	assert.Equal(t, float32(7), h.Sample(0))
	assert.Equal(t, float32(1), h.SampleMin())
	assert.Equal(t, float32(7), h.SampleMax())
	assert.InDelta(t, 4, h.Average(), 1e-6)
	assert.Equal(t, []float32{4, 1, 7}, h.Values())
}

func TestValueHistoryWraps(t *testing.T) {
	h := NewValueHistory()
	for i := 0; i < MAX_HISTORY+10; i++ {
		h.AddSample(float32(i))
	}
	assert.Equal(t, MAX_HISTORY, h.SampleCount())
	assert.Equal(t, float32(MAX_HISTORY+9), h.Sample(0))
	assert.Equal(t, float32(10), h.SampleMin())
	values := h.Values()
	assert.Equal(t, float32(10), values[0])
	assert.Equal(t, float32(MAX_HISTORY+9), values[len(values)-1])
}
