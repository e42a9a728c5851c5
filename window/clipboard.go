package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Clipboard uses the GLFW clipboard. GLFW must be initialised.
type Clipboard struct{}

// Text returns the clipboard contents. GLFW reports a missing or non-text
// clipboard through its error panics, which are returned as errors here.
func (Clipboard) Text() (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read clipboard: %v", r)
		}
	}()
	return glfw.GetClipboardString(), nil
}

func (Clipboard) SetText(text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("write clipboard: %v", r)
		}
	}()
	glfw.SetClipboardString(text)
	return nil
}
