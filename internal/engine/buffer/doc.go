// Package buffer provides the line-oriented document model of the editor.
//
// A Document is an ordered slice of Lines. Each Line keeps its raw runes,
// a rendered form with tabs expanded to fixed stops, and one highlight tag
// per rendered rune. Highlight tags are derived data: they are rebuilt by an
// explicit pass (Rehighlight, HighlightAll) after edits, never patched in
// place.
//
// Basic usage:
//
//	doc := buffer.NewDocument()
//	pos := doc.InsertChar(buffer.Position{}, 'x')
//	pos = doc.SplitLine(pos)
//	doc.Rehighlight(profile, 0)
//
// The package is not safe for concurrent use. The editor controller is its
// only writer and processes one input event at a time.
package buffer
