package syntax

// Tag classifies a single rendered character for display.
type Tag uint8

// Highlight tags.
const (
	TagNormal Tag = iota
	TagNumber
	TagString
	TagComment
	TagMultilineComment
	TagKeyword
	TagKeywordType
	TagMatch
)

// String returns the tag name.
func (t Tag) String() string {
	switch t {
	case TagNormal:
		return "normal"
	case TagNumber:
		return "number"
	case TagString:
		return "string"
	case TagComment:
		return "comment"
	case TagMultilineComment:
		return "mlcomment"
	case TagKeyword:
		return "keyword"
	case TagKeywordType:
		return "type"
	case TagMatch:
		return "match"
	default:
		return "unknown"
	}
}

// IsComment returns true for both comment classes.
func (t Tag) IsComment() bool {
	return t == TagComment || t == TagMultilineComment
}
