package buffer

// A Category is the semantic class of a highlighted span of a line. The set is
// closed: every span the classifier produces carries one of these.
type Category uint8

const (
	Plain Category = iota
	Number
	Function
	Keyword
	Type
	Reference
	String
	LineComment
	BlockComment
)

// Categories lists every Category in precedence order. Later categories win
// where two matches overlap.
var Categories = [...]Category{
	Plain,
	Number,
	Function,
	Keyword,
	Type,
	Reference,
	String,
	LineComment,
	BlockComment,
}

var categoryNames = [...]string{
	Plain:        "plain",
	Number:       "number",
	Function:     "function",
	Keyword:      "keyword",
	Type:         "type",
	Reference:    "reference",
	String:       "string",
	LineComment:  "line-comment",
	BlockComment: "block-comment",
}

// Both comment categories share one color.
var schemeKeys = [...]string{
	Plain:        "plain",
	Number:       "numbers",
	Function:     "functions",
	Keyword:      "keywords",
	Type:         "types",
	Reference:    "references",
	String:       "strings",
	LineComment:  "comments",
	BlockComment: "comments",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// SchemeKey returns the name this Category is looked up by in a color scheme.
func (c Category) SchemeKey() string {
	if int(c) < len(schemeKeys) {
		return schemeKeys[c]
	}
	return ""
}

// SchemeKeys returns every key a complete color scheme must supply, without
// duplicates, in precedence order.
func SchemeKeys() []string {
	keys := make([]string, 0, len(Categories))
	seen := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		if k := c.SchemeKey(); !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

// A Language supplies the identifier lists the category rules are built from.
// The lists are joined into whole-word alternations; an empty list disables
// its category.
type Language struct {
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Filetypes []string `json:"filetypes" yaml:"filetypes" toml:"filetypes"` // .vfl, .h, etc.
	Keywords  []string `json:"keywords" yaml:"keywords" toml:"keywords"`
	DataTypes []string `json:"data_types" yaml:"data_types" toml:"data_types"`
	Functions []string `json:"functions" yaml:"functions" toml:"functions"`
}

// VEX is the built-in language definition for Houdini VEX wrangle snippets.
var VEX = Language{
	Name:      "VEX",
	Filetypes: []string{".vfl", ".h"},
	Keywords: []string{
		"break", "const", "continue", "do", "else", "export", "for", "foreach",
		"forpoints", "if", "illuminance", "import", "return", "while",
		"_Pragma", "gather",
	},
	DataTypes: []string{
		"bsdf", "dict", "float", "function", "int", "matrix", "matrix2",
		"matrix3", "string", "struct", "vector", "vector2", "vector4", "void",
	},
	Functions: []string{
		"abs", "acos", "addattrib", "addpoint", "addprim", "addvertex", "append",
		"asin", "atan", "atan2", "ceil", "ch", "chf", "chi", "chramp", "chs",
		"chv", "clamp", "cos", "cross", "degrees", "detail", "distance", "dot",
		"error", "exp", "fit", "fit01", "floor", "frac", "getbbox", "haspoint",
		"len", "length", "lerp", "log", "max", "min", "nearpoint", "nearpoints",
		"neighbours", "noise", "normalize", "npoints", "nprimitives", "pcfilter",
		"pcopen", "point", "pop", "pow", "prim", "primpoints", "printf", "push",
		"radians", "rand", "removepoint", "removeprim", "resize", "rint", "set",
		"setattrib", "setdetailattrib", "setpointattrib", "setprimattrib", "sin",
		"smooth", "sprintf", "sqrt", "tan", "warning", "xyzdist",
	},
}
