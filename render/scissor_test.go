package render

import (
	"testing"

	"github.com/gorustyt/glgui/common"
	"github.com/stretchr/testify/assert"
)

func TestClipToScissor(t *testing.T) {
	tests := []struct {
		name          string
		clip          common.Rect
		ppp           float32
		width, height int
		want          [4]int32
	}{
		{"retina", common.RectFromMinMax(10, 5, 50, 45), 2, 800, 600, [4]int32{20, 510, 80, 80}},
		{"identity", common.RectFromMinMax(0, 0, 800, 600), 1, 800, 600, [4]int32{0, 0, 800, 600}},
		{"clamped", common.RectFromMinMax(-10, -10, 1000, 1000), 1, 800, 600, [4]int32{0, 0, 800, 600}},
		{"inverted", common.RectFromMinMax(50, 50, 10, 10), 1, 800, 600, [4]int32{50, 550, 0, 0}},
		{"round half away", common.RectFromMinMax(0.25, 0.25, 10.25, 10.25), 2, 100, 100, [4]int32{1, 79, 20, 20}},
		{"fractional ppp", common.RectFromMinMax(1, 1, 3, 3), 1.5, 10, 10, [4]int32{2, 5, 3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := ClipToScissor(tt.clip, tt.ppp, tt.width, tt.height)
			assert.Equal(t, tt.want, [4]int32{x, y, w, h})
		})
	}
}
