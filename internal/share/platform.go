package share

import (
	"fmt"
	"sync"

	"github.com/pkg/browser"
	"golang.design/x/clipboard"
)

// Opener sends the user to an external page.
type Opener interface {
	Open(url string) error
}

// Clipboard accepts a PNG image.
type Clipboard interface {
	WriteImage(png []byte) error
}

// ClipboardError reports that the image could not be placed on the clipboard.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string { return fmt.Sprintf("clipboard: %v", e.Err) }

func (e *ClipboardError) Unwrap() error { return e.Err }

// BrowserOpener opens URLs in the system browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// SystemClipboard writes to the desktop clipboard. Initialisation happens
// on first use; a system without clipboard support reports ClipboardError.
type SystemClipboard struct {
	once    sync.Once
	initErr error
}

func (c *SystemClipboard) WriteImage(png []byte) error {
	c.once.Do(func() { c.initErr = clipboard.Init() })
	if c.initErr != nil {
		return &ClipboardError{Err: c.initErr}
	}
	clipboard.Write(clipboard.FmtImage, png)
	return nil
}
