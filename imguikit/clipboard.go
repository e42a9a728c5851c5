package imguikit

// clipboard sits between imgui and the frame loop. Pasted text arrives as
// a PasteEvent before imgui asks for it, and copied text leaves through
// PlatformOutput.CopiedText.
type clipboard struct {
	pasted string
	copied string
}

func (c *clipboard) Text() (string, error) {
	return c.pasted, nil
}

func (c *clipboard) SetText(text string) {
	c.copied = text
}

func (c *clipboard) takeCopied() string {
	text := c.copied
	c.copied = ""
	return text
}
