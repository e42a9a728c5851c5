package common

import (
	"math"
)

// / Clamps the value to the specified range.
// / @param[in]		v	The value to clamp.
// / @param[in]		mn	The minimum permitted return value.
// / @param[in]		mx	The maximum permitted return value.
// / @return The value, clamped to the specified range.
func Clamp[T IT](v, mn, mx T) T {
	if v < mn {
		return mn
	}
	if v > mx {
		return mx
	}
	return v
}

// RoundToInt rounds half away from zero.
func RoundToInt(v float32) int32 {
	return int32(math.Round(float64(v)))
}

// Rect is an axis aligned rectangle given by its min and max corners.
type Rect struct {
	Min Vec2
	Max Vec2
}

func RectFromMinSize(min, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

func RectFromMinMax(minX, minY, maxX, maxY float32) Rect {
	return Rect{Min: Vec2{minX, minY}, Max: Vec2{maxX, maxY}}
}

func (r Rect) Width() float32 {
	return r.Max[0] - r.Min[0]
}

func (r Rect) Height() float32 {
	return r.Max[1] - r.Min[1]
}

func (r Rect) Size() Vec2 {
	return Vec2{r.Width(), r.Height()}
}

// Mul scales both corners, e.g. logical points to physical pixels.
func (r Rect) Mul(f float32) Rect {
	return Rect{Min: r.Min.Mul(f), Max: r.Max.Mul(f)}
}
