// Package syntax provides lexical syntax highlighting for the editor engine.
//
// Highlighting is line oriented. Each line is scanned independently by
// Highlight, which receives the multiline-comment state carried out of the
// previous line and returns the state carried out of this one. The caller
// (the buffer) drives a forward pass over the document and stops as soon as
// the carried state settles.
//
// Language rules live in a static Profile table. Profiles are looked up by
// filename and referred to by index; they are never copied or mutated.
package syntax
