package common

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type Vec2 = mgl32.Vec2

type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// AssertTrue panics when value is false. It guards programming errors only:
// callers must never rely on recovering from it.
func AssertTrue(value bool) {
	if !value {
		panic("assert fail")
	}
}

// Assertf is AssertTrue with a formatted message.
func Assertf(value bool, format string, args ...any) {
	if !value {
		panic(fmt.Sprintf(format, args...))
	}
}
