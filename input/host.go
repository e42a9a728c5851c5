package input

import (
	"github.com/pkg/browser"
)

// Clipboard is the OS clipboard.
type Clipboard interface {
	Text() (string, error)
	SetText(text string) error
}

type CursorSetter interface {
	SetCursor(c Cursor)
	HideCursor()
}

type URLOpener interface {
	OpenURL(url string) error
}

// BrowserOpener opens URLs in the user's default browser.
type BrowserOpener struct{}

func (BrowserOpener) OpenURL(url string) error {
	return browser.OpenURL(url)
}
