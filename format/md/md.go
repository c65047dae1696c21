// Package md renders documentation as Markdown.
//
// Inline formatting that Markdown has no syntax for (bold, code, rules) is
// written as inline HTML, which every common Markdown dialect accepts.
package md

import (
	"strings"

	"go.jacobcolvin.com/docmarkup/dom"
	"go.jacobcolvin.com/docmarkup/format"
	"go.jacobcolvin.com/docmarkup/format/html"
)

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Escape backslash-escapes every ASCII punctuation character.
func Escape(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for i := range len(s) {
		if strings.IndexByte(punctuation, s[i]) >= 0 {
			sb.WriteByte('\\')
		}

		sb.WriteByte(s[i])
	}

	return sb.String()
}

// PostprocessParagraph trims every line of a rendered paragraph, replaces
// tabs with spaces, and drops blank lines.
func PostprocessParagraph(par string) string {
	lines := format.SplitLines(par)
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.ReplaceAll(strings.TrimSpace(line), "\t", " ")
		if line != "" {
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n")
}

func link(text, url string) string {
	return "[" + Escape(text) + "](" + html.EscapeURLParens(url) + ")"
}

// Formatter renders parts as Markdown.
type Formatter struct{}

func (Formatter) FormatError(p dom.ErrorPart) string {
	return "<b>ERROR while parsing</b>: " + Escape(p.Message)
}

func (Formatter) FormatBold(p dom.BoldPart) string {
	return "<b>" + Escape(p.Text) + "</b>"
}

func (Formatter) FormatCode(p dom.CodePart) string {
	return "<code>" + Escape(p.Text) + "</code>"
}

func (Formatter) FormatHorizontalLine(dom.HorizontalLinePart) string {
	return "<hr>"
}

func (Formatter) FormatItalic(p dom.ItalicPart) string {
	return "<em>" + Escape(p.Text) + "</em>"
}

func (Formatter) FormatLink(p dom.LinkPart) string {
	return link(p.Text, p.URL)
}

func (Formatter) FormatModule(p dom.ModulePart, url string) string {
	if url == "" {
		return Escape(p.FQCN)
	}

	return link(p.FQCN, url)
}

func (Formatter) FormatRSTRef(p dom.RSTRefPart) string {
	return Escape(p.Text)
}

func (Formatter) FormatURL(p dom.URLPart) string {
	return link(p.URL, p.URL)
}

func (Formatter) FormatText(p dom.TextPart) string {
	return Escape(p.Text)
}

func (Formatter) FormatEnvVariable(p dom.EnvVariablePart) string {
	return "<code>" + Escape(p.Name) + "</code>"
}

func (Formatter) FormatOptionName(p dom.OptionNamePart, current *dom.PluginIdentifier, url string) string {
	return formatOptionLike(p.Plugin, p.Entrypoint, p.Name, p.Value, true, current, url)
}

func (Formatter) FormatOptionValue(p dom.OptionValuePart) string {
	return "<code>" + Escape(p.Value) + "</code>"
}

func (Formatter) FormatPlugin(p dom.PluginPart, url string) string {
	if url == "" {
		return Escape(p.Plugin.FQCN)
	}

	return link(p.Plugin.FQCN, url)
}

func (Formatter) FormatReturnValue(p dom.ReturnValuePart, current *dom.PluginIdentifier, url string) string {
	return formatOptionLike(p.Plugin, p.Entrypoint, p.Name, p.Value, false, current, url)
}

func formatOptionLike(
	plugin *dom.PluginIdentifier, entrypoint, name string, value *string, isOption bool,
	current *dom.PluginIdentifier, url string,
) string {
	text := name
	if value != nil {
		text += "=" + *value
	}

	if plugin != nil && (current == nil || *current != *plugin) {
		prefix := plugin.FQCN + "#" + plugin.Type + ":"
		if entrypoint != "" {
			prefix += entrypoint + ":"
		}

		text = prefix + text
	}

	text = Escape(text)

	if url != "" {
		text = `<a href="` + html.Escape(html.EscapeURL(url)) + `">` + text + "</a>"
	}

	if isOption && value == nil {
		text = "<strong>" + text + "</strong>"
	}

	return "<code>" + text + "</code>"
}

// Render renders paragraphs as Markdown. Paragraphs are separated by a
// blank line, and empty paragraphs become a single space.
func Render(paragraphs []dom.Paragraph, opts ...format.Option) string {
	defaults := []format.Option{
		format.WithParSep("\n\n"),
		format.WithParEmpty(" "),
		format.WithPostprocess(PostprocessParagraph),
	}

	return format.Paragraphs(paragraphs, Formatter{}, append(defaults, opts...)...)
}
