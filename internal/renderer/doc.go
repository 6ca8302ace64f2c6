// Package renderer draws the editor screen.
//
// A render pass reads one Frame (document, cursor, syntax profile and
// status message) and paints the whole surface through a backend:
//
//	┌─────────────────────────────────────────┐
//	│ gutter │ text area (viewport segments)  │
//	│        │                                │
//	├─────────────────────────────────────────┤
//	│ status bar (reverse video)              │
//	├─────────────────────────────────────────┤
//	│ message bar                             │
//	└─────────────────────────────────────────┘
//
// The renderer owns the Viewport. Each pass sizes the viewport to the
// text area left over by the gutter, scrolls it to the cursor, and lays
// out the visible segments before drawing.
//
// Usage:
//
//	be, _ := backend.NewTerminal()
//	r := renderer.New(be, renderer.Options{Version: "0.1.0"})
//	r.Render(renderer.Frame{Doc: doc, Cursor: pos})
package renderer
