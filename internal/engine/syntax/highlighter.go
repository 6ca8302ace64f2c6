package syntax

import (
	"strings"
	"unicode"
)

// separators are the punctuation runes that end a word.
const separators = ",.()+-/*=~%<>[];"

// IsSeparator reports whether r ends a word for number and keyword matching.
func IsSeparator(r rune) bool {
	return r == 0 || unicode.IsSpace(r) || strings.ContainsRune(separators, r)
}

// isDigit reports ASCII digits only.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Highlight scans a rendered line and returns one tag per rune together with
// the multiline comment state at the end of the line.
//
// inComment is the state carried out of the previous line. A nil profile
// produces all-normal tags and never leaves a comment open.
func Highlight(render []rune, p *Profile, inComment bool) ([]Tag, bool) {
	tags := make([]Tag, len(render))
	if p == nil {
		return tags, false
	}

	scl := []rune(p.SingleLineComment)
	mcs := []rune(p.MultilineCommentStart)
	mce := []rune(p.MultilineCommentEnd)
	multiline := p.HasMultilineComments()

	prevSep := true
	var inString rune

	i := 0
	for i < len(render) {
		c := render[i]
		prevTag := TagNormal
		if i > 0 {
			prevTag = tags[i-1]
		}

		if len(scl) > 0 && inString == 0 && !inComment && hasPrefixAt(render, i, scl) {
			fill(tags[i:], TagComment)
			break
		}

		if multiline && inString == 0 {
			if inComment {
				tags[i] = TagMultilineComment
				if hasPrefixAt(render, i, mce) {
					fill(tags[i:i+len(mce)], TagMultilineComment)
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			}
			if hasPrefixAt(render, i, mcs) {
				fill(tags[i:i+len(mcs)], TagMultilineComment)
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if p.Flags.Has(HighlightStrings) {
			if inString != 0 {
				tags[i] = TagString
				if c == '\\' && i+1 < len(render) {
					tags[i+1] = TagString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				tags[i] = TagString
				i++
				continue
			}
		}

		if p.Flags.Has(HighlightNumbers) {
			if (isDigit(c) && (prevSep || prevTag == TagNumber)) ||
				(c == '.' && prevTag == TagNumber) {
				tags[i] = TagNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, tag, ok := matchKeyword(render, i, p.Keywords); ok {
				fill(tags[i:i+n], tag)
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}

	return tags, inComment
}

// matchKeyword tries each keyword in profile order at position i. A keyword
// matches only when followed by a separator or the end of the line.
func matchKeyword(render []rune, i int, kws []Keyword) (int, Tag, bool) {
	for _, kw := range kws {
		text := []rune(kw.Text)
		if !hasPrefixAt(render, i, text) {
			continue
		}
		end := i + len(text)
		if end < len(render) && !IsSeparator(render[end]) {
			continue
		}
		return len(text), kw.Tag(), true
	}
	return 0, TagNormal, false
}

func hasPrefixAt(s []rune, i int, prefix []rune) bool {
	if len(prefix) == 0 || i+len(prefix) > len(s) {
		return false
	}
	for j, r := range prefix {
		if s[i+j] != r {
			return false
		}
	}
	return true
}

func fill(tags []Tag, t Tag) {
	for i := range tags {
		tags[i] = t
	}
}
