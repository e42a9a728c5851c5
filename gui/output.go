package gui

// CursorIcon is the pointer shape the toolkit asks for.
type CursorIcon uint8

const (
	CursorDefault CursorIcon = iota
	CursorNone
	CursorContextMenu
	CursorHelp
	CursorPointingHand
	CursorProgress
	CursorWait
	CursorCell
	CursorCrosshair
	CursorText
	CursorVerticalText
	CursorAlias
	CursorCopy
	CursorMove
	CursorNoDrop
	CursorNotAllowed
	CursorGrab
	CursorGrabbing
	CursorAllScroll
	CursorResizeHorizontal
	CursorResizeNeSw
	CursorResizeNwSe
	CursorResizeVertical
	CursorResizeEast
	CursorResizeSouthEast
	CursorResizeSouth
	CursorResizeSouthWest
	CursorResizeWest
	CursorResizeNorthWest
	CursorResizeNorth
	CursorResizeNorthEast
	CursorResizeColumn
	CursorResizeRow
	CursorZoomIn
	CursorZoomOut
	// CursorArrow asks for the plain arrow, unlike CursorDefault which
	// leaves the host cursor alone.
	CursorArrow
)

type OpenURL struct {
	URL    string
	NewTab bool
}

// PlatformOutput carries the requests the toolkit makes of the host.
type PlatformOutput struct {
	CursorIcon CursorIcon
	// OpenURL is nil unless a link was clicked this frame.
	OpenURL *OpenURL
	// CopiedText is non-empty when the toolkit wants it on the clipboard.
	CopiedText string
}

// FullOutput is what the toolkit returns from EndFrame.
type FullOutput struct {
	// Shapes is opaque here and only handed back to Tessellate.
	Shapes         any
	TexturesDelta  TexturesDelta
	PlatformOutput PlatformOutput
}
