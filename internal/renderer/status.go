package renderer

import (
	"fmt"
	"strings"

	"github.com/dshills/kiln/internal/renderer/core"
)

// maxStatusName is the longest filename shown in the status bar.
const maxStatusName = 20

// StatusLeft returns the left part of the status bar: filename, line
// count and modification marker.
func StatusLeft(f Frame) string {
	name := f.Doc.Filename()
	if name == "" {
		name = "[No Name]"
	}
	if r := []rune(name); len(r) > maxStatusName {
		name = string(r[:maxStatusName])
	}

	modified := ""
	if f.Doc.IsDirty() {
		modified = " (modified)"
	}
	return fmt.Sprintf("%s - %d lines%s", name, f.Doc.LineCount(), modified)
}

// StatusRight returns the right part of the status bar: filetype and
// cursor row.
func StatusRight(f Frame) string {
	ft := "no ft"
	if f.Profile != nil {
		ft = f.Profile.Filetype
	}
	return fmt.Sprintf("%s | %d/%d", ft, f.Cursor.Row+1, f.Doc.LineCount())
}

// statusLine composes the full-width status bar text. The right part is
// dropped when both do not fit.
func statusLine(left, right string, width int) string {
	left = core.Truncate(left, width)
	lw := core.StringWidth(left)
	rw := core.StringWidth(right)

	if lw+rw <= width {
		return left + strings.Repeat(" ", width-lw-rw) + right
	}
	return left + strings.Repeat(" ", width-lw)
}

func (r *Renderer) drawStatusBar(f Frame) {
	y := r.textHeight()
	if y >= r.height {
		return
	}
	r.putString(0, y, statusLine(StatusLeft(f), StatusRight(f), r.width), statusStyle)
}

// MessageVisible reports whether the frame's message is still fresh.
func (r *Renderer) MessageVisible(f Frame) bool {
	return f.Message != "" && r.now().Sub(f.MessageTime) < MessageTimeout
}

func (r *Renderer) drawMessageBar(f Frame) {
	y := r.textHeight() + 1
	if y >= r.height || !r.MessageVisible(f) {
		return
	}
	r.putString(0, y, core.Truncate(f.Message, r.width), core.DefaultStyle())
}
