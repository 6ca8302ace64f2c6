package syntax

import (
	"path/filepath"
	"strings"
)

// Flags selects optional highlighting features of a profile.
type Flags uint8

const (
	// HighlightNumbers enables numeric literal highlighting.
	HighlightNumbers Flags = 1 << iota
	// HighlightStrings enables quoted string highlighting.
	HighlightStrings
)

// Has returns true if the flag set contains f.
func (fl Flags) Has(f Flags) bool {
	return fl&f != 0
}

// KeywordClass distinguishes the two keyword highlight classes.
type KeywordClass uint8

const (
	// KeywordBasic marks control-flow and declaration keywords.
	KeywordBasic KeywordClass = iota
	// KeywordType marks type names and literals.
	KeywordType
)

// Keyword is a keyword entry of a profile.
type Keyword struct {
	Text  string
	Class KeywordClass
}

// Tag returns the highlight tag used for the keyword class.
func (k Keyword) Tag() Tag {
	if k.Class == KeywordType {
		return TagKeywordType
	}
	return TagKeyword
}

// Profile describes the lexical rules of one language.
type Profile struct {
	// Filetype is the label shown in the status bar.
	Filetype string

	// Filematch lists filename patterns. Entries starting with '.' match the
	// extension exactly, others match when the filename contains them.
	Filematch []string

	// SingleLineComment starts a comment running to the end of the line.
	SingleLineComment string

	// MultilineCommentStart and MultilineCommentEnd delimit block comments.
	// Both must be set for block comments to be recognised.
	MultilineCommentStart string
	MultilineCommentEnd   string

	Flags    Flags
	Keywords []Keyword
}

// HasMultilineComments reports whether block comments are configured.
func (p *Profile) HasMultilineComments() bool {
	return p.MultilineCommentStart != "" && p.MultilineCommentEnd != ""
}

// Matches reports whether the profile applies to filename.
func (p *Profile) Matches(filename string) bool {
	if filename == "" {
		return false
	}
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	for _, m := range p.Filematch {
		if strings.HasPrefix(m, ".") {
			if ext == m {
				return true
			}
			continue
		}
		if strings.Contains(base, m) {
			return true
		}
	}
	return false
}

func basic(words ...string) []Keyword {
	kws := make([]Keyword, len(words))
	for i, w := range words {
		kws[i] = Keyword{Text: w, Class: KeywordBasic}
	}
	return kws
}

func types(words ...string) []Keyword {
	kws := make([]Keyword, len(words))
	for i, w := range words {
		kws[i] = Keyword{Text: w, Class: KeywordType}
	}
	return kws
}

func keywords(groups ...[]Keyword) []Keyword {
	var all []Keyword
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// profiles is the static registry. Order matters for lookup: the first
// matching profile wins.
var profiles = []Profile{
	{
		Filetype:              "c",
		Filematch:             []string{".c", ".h", ".cpp", ".hpp", ".cc"},
		SingleLineComment:     "//",
		MultilineCommentStart: "/*",
		MultilineCommentEnd:   "*/",
		Flags:                 HighlightNumbers | HighlightStrings,
		Keywords: keywords(
			basic("switch", "if", "while", "for", "break", "continue", "return", "else",
				"struct", "union", "typedef", "static", "enum", "class", "case", "default",
				"goto", "sizeof", "const", "extern", "volatile", "register", "#include",
				"#define", "#ifdef", "#ifndef", "#endif"),
			types("int", "long", "double", "float", "char", "unsigned", "signed", "void",
				"short", "bool", "size_t", "NULL", "true", "false"),
		),
	},
	{
		Filetype:              "go",
		Filematch:             []string{".go"},
		SingleLineComment:     "//",
		MultilineCommentStart: "/*",
		MultilineCommentEnd:   "*/",
		Flags:                 HighlightNumbers | HighlightStrings,
		Keywords: keywords(
			basic("break", "case", "chan", "const", "continue", "default", "defer", "else",
				"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
				"map", "package", "range", "return", "select", "struct", "switch", "type", "var"),
			types("bool", "byte", "complex64", "complex128", "error", "float32", "float64",
				"int", "int8", "int16", "int32", "int64", "rune", "string", "uint", "uint8",
				"uint16", "uint32", "uint64", "uintptr", "any", "true", "false", "nil", "iota"),
		),
	},
	{
		Filetype:              "rust",
		Filematch:             []string{".rs"},
		SingleLineComment:     "//",
		MultilineCommentStart: "/*",
		MultilineCommentEnd:   "*/",
		Flags:                 HighlightNumbers | HighlightStrings,
		Keywords: keywords(
			basic("as", "break", "const", "continue", "crate", "else", "enum", "extern",
				"fn", "for", "if", "impl", "in", "let", "loop", "match", "mod", "move", "mut",
				"pub", "ref", "return", "self", "Self", "static", "struct", "super", "trait",
				"type", "unsafe", "use", "where", "while"),
			types("i8", "i16", "i32", "i64", "i128", "isize", "u8", "u16", "u32", "u64",
				"u128", "usize", "f32", "f64", "bool", "char", "str", "String", "Vec",
				"Option", "Result", "Some", "None", "Ok", "Err", "true", "false"),
		),
	},
	{
		Filetype:              "python",
		Filematch:             []string{".py"},
		SingleLineComment:     "#",
		MultilineCommentStart: `"""`,
		MultilineCommentEnd:   `"""`,
		Flags:                 HighlightNumbers | HighlightStrings,
		Keywords: keywords(
			basic("and", "as", "assert", "break", "class", "continue", "def", "del",
				"elif", "else", "except", "finally", "for", "from", "global", "if",
				"import", "in", "is", "lambda", "nonlocal", "not", "or", "pass", "raise",
				"return", "try", "while", "with", "yield"),
			types("int", "float", "str", "bool", "list", "dict", "set", "tuple",
				"None", "True", "False"),
		),
	},
	{
		Filetype:              "javascript",
		Filematch:             []string{".js", ".ts", ".jsx", ".tsx", ".mjs"},
		SingleLineComment:     "//",
		MultilineCommentStart: "/*",
		MultilineCommentEnd:   "*/",
		Flags:                 HighlightNumbers | HighlightStrings,
		Keywords: keywords(
			basic("break", "case", "catch", "class", "const", "continue", "debugger",
				"default", "delete", "do", "else", "export", "extends", "finally", "for",
				"function", "if", "import", "in", "instanceof", "let", "new", "return",
				"super", "switch", "this", "throw", "try", "typeof", "var", "void",
				"while", "with", "yield", "async", "await", "interface", "type"),
			types("true", "false", "null", "undefined", "number", "string", "boolean",
				"any", "unknown", "never", "object"),
		),
	},
	{
		Filetype:          "shell",
		Filematch:         []string{".sh", ".bash", ".zsh"},
		SingleLineComment: "#",
		Flags:             HighlightNumbers | HighlightStrings,
		Keywords: keywords(
			basic("if", "then", "else", "elif", "fi", "for", "while", "until", "do",
				"done", "case", "esac", "in", "function", "return", "local", "export"),
			types("echo", "exit", "set", "unset", "true", "false"),
		),
	},
	{
		Filetype:          "toml",
		Filematch:         []string{".toml"},
		SingleLineComment: "#",
		Flags:             HighlightNumbers | HighlightStrings,
		Keywords:          types("true", "false"),
	},
}

// Len returns the number of registered profiles.
func Len() int {
	return len(profiles)
}

// At returns the profile at index i, or nil if i is out of range.
// The returned profile must not be modified.
func At(i int) *Profile {
	if i < 0 || i >= len(profiles) {
		return nil
	}
	return &profiles[i]
}

// Lookup returns the index of the first profile matching filename,
// or -1 when none does.
func Lookup(filename string) int {
	for i := range profiles {
		if profiles[i].Matches(filename) {
			return i
		}
	}
	return -1
}
