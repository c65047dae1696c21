package dom

// PartType identifies the concrete type of a [Part].
type PartType int

// Part types.
const (
	PartTypeError PartType = iota
	PartTypeBold
	PartTypeCode
	PartTypeHorizontalLine
	PartTypeItalic
	PartTypeLink
	PartTypeModule
	PartTypeRSTRef
	PartTypeURL
	PartTypeText
	PartTypeEnvVariable
	PartTypeOptionName
	PartTypeOptionValue
	PartTypePlugin
	PartTypeReturnValue
)

var partTypeNames = [...]string{
	PartTypeError:          "error",
	PartTypeBold:           "bold",
	PartTypeCode:           "code",
	PartTypeHorizontalLine: "horizontal-line",
	PartTypeItalic:         "italic",
	PartTypeLink:           "link",
	PartTypeModule:         "module",
	PartTypeRSTRef:         "rst-ref",
	PartTypeURL:            "url",
	PartTypeText:           "text",
	PartTypeEnvVariable:    "env-variable",
	PartTypeOptionName:     "option-name",
	PartTypeOptionValue:    "option-value",
	PartTypePlugin:         "plugin",
	PartTypeReturnValue:    "return-value",
}

// String returns a stable lowercase name for the part type.
func (t PartType) String() string {
	if t < 0 || int(t) >= len(partTypeNames) {
		return "unknown"
	}

	return partTypeNames[t]
}

// Part is one piece of a [Paragraph]. The set of implementations is closed;
// every concrete part type in this package implements it.
type Part interface {
	Type() PartType
}

// Paragraph is an ordered sequence of parts.
type Paragraph []Part

// TextPart is arbitrary unformatted text.
type TextPart struct {
	Text   string
	Source string
}

// ItalicPart is text formatted in italics.
type ItalicPart struct {
	Text   string
	Source string
}

// BoldPart is text formatted in bold.
type BoldPart struct {
	Text   string
	Source string
}

// ModulePart references a module by FQCN.
type ModulePart struct {
	FQCN   string
	Source string
}

// PluginPart references a plugin. This also covers modules, roles, and
// playbooks.
type PluginPart struct {
	Plugin PluginIdentifier
	Source string
}

// URLPart is a URL without a title.
type URLPart struct {
	URL    string
	Source string
}

// LinkPart is a URL with a title.
type LinkPart struct {
	Text   string
	URL    string
	Source string
}

// RSTRefPart references a reStructuredText label in a Sphinx docsite. Most
// renderers only reproduce the title.
type RSTRefPart struct {
	Text   string
	Ref    string
	Source string
}

// CodePart is text formatted as code.
type CodePart struct {
	Text   string
	Source string
}

// OptionNamePart references an option.
type OptionNamePart struct {
	// Plugin owning the option; nil when unknown or explicitly ignored.
	Plugin *PluginIdentifier
	// Entrypoint is the role entrypoint; only set for role plugins.
	Entrypoint string
	// Link is the name without array stubs, split on ".". For example
	// "foo.bar[].baz" results in ["foo", "bar", "baz"].
	Link []string
	// Name is the option name as written, array stubs included.
	Name string
	// Value is the optional value after "=".
	Value  *string
	Source string
}

// OptionValuePart is a literal option value.
type OptionValuePart struct {
	Value  string
	Source string
}

// EnvVariablePart references an environment variable.
type EnvVariablePart struct {
	Name   string
	Source string
}

// ReturnValuePart references a return value. Fields have the same meaning as
// in [OptionNamePart].
type ReturnValuePart struct {
	Plugin     *PluginIdentifier
	Entrypoint string
	Link       []string
	Name       string
	Value      *string
	Source     string
}

// HorizontalLinePart is a horizontal rule.
type HorizontalLinePart struct {
	Source string
}

// ErrorPart carries a formatted parse error in place of the markup that
// failed to parse.
type ErrorPart struct {
	Message string
	Source  string
}

// Type implements [Part].
func (TextPart) Type() PartType { return PartTypeText }

// Type implements [Part].
func (ItalicPart) Type() PartType { return PartTypeItalic }

// Type implements [Part].
func (BoldPart) Type() PartType { return PartTypeBold }

// Type implements [Part].
func (ModulePart) Type() PartType { return PartTypeModule }

// Type implements [Part].
func (PluginPart) Type() PartType { return PartTypePlugin }

// Type implements [Part].
func (URLPart) Type() PartType { return PartTypeURL }

// Type implements [Part].
func (LinkPart) Type() PartType { return PartTypeLink }

// Type implements [Part].
func (RSTRefPart) Type() PartType { return PartTypeRSTRef }

// Type implements [Part].
func (CodePart) Type() PartType { return PartTypeCode }

// Type implements [Part].
func (OptionNamePart) Type() PartType { return PartTypeOptionName }

// Type implements [Part].
func (OptionValuePart) Type() PartType { return PartTypeOptionValue }

// Type implements [Part].
func (EnvVariablePart) Type() PartType { return PartTypeEnvVariable }

// Type implements [Part].
func (ReturnValuePart) Type() PartType { return PartTypeReturnValue }

// Type implements [Part].
func (HorizontalLinePart) Type() PartType { return PartTypeHorizontalLine }

// Type implements [Part].
func (ErrorPart) Type() PartType { return PartTypeError }

// Source returns the markup that produced p, or "" when source tracking was
// not requested.
func Source(p Part) string {
	switch v := p.(type) {
	case TextPart:
		return v.Source
	case ItalicPart:
		return v.Source
	case BoldPart:
		return v.Source
	case ModulePart:
		return v.Source
	case PluginPart:
		return v.Source
	case URLPart:
		return v.Source
	case LinkPart:
		return v.Source
	case RSTRefPart:
		return v.Source
	case CodePart:
		return v.Source
	case OptionNamePart:
		return v.Source
	case OptionValuePart:
		return v.Source
	case EnvVariablePart:
		return v.Source
	case ReturnValuePart:
		return v.Source
	case HorizontalLinePart:
		return v.Source
	case ErrorPart:
		return v.Source
	}

	return ""
}
