// Package html renders documentation as HTML fragments.
//
// [Render] produces the markup used by the antsibull documentation site,
// with its CSS classes. [RenderPlain] produces class-free HTML suitable for
// embedding elsewhere.
package html

import (
	"html"
	"strings"

	"go.jacobcolvin.com/docmarkup/dom"
	"go.jacobcolvin.com/docmarkup/format"
)

// Escape escapes the HTML special characters &, <, >, " and '.
func Escape(s string) string {
	return html.EscapeString(s)
}

const hexDigits = "0123456789ABCDEF"

// EscapeURL percent-encodes bytes that may not appear literally in a URL:
// control characters, spaces, non-ASCII bytes, and the characters
// " < > \ ^ ` { | }. Existing percent escapes are left alone.
func EscapeURL(url string) string {
	return escapeURL(url, "")
}

// EscapeURLParens is [EscapeURL] that also encodes parentheses, for use in
// Markdown link destinations.
func EscapeURLParens(url string) string {
	return escapeURL(url, "()")
}

func escapeURL(url, extra string) string {
	var sb strings.Builder

	sb.Grow(len(url))

	for i := range len(url) {
		c := url[i]
		if c <= ' ' || c >= 0x7f || strings.IndexByte(`"<>\^`+"`{|}"+extra, c) >= 0 {
			sb.WriteByte('%')
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0xf])

			continue
		}

		sb.WriteByte(c)
	}

	return sb.String()
}

func href(url string) string {
	return Escape(EscapeURL(url))
}

// Formatter renders parts as HTML with antsibull CSS classes.
type Formatter struct{}

func (Formatter) FormatError(p dom.ErrorPart) string {
	return `<span class="error">ERROR while parsing: ` + Escape(p.Message) + `</span>`
}

func (Formatter) FormatBold(p dom.BoldPart) string {
	return "<b>" + Escape(p.Text) + "</b>"
}

func (Formatter) FormatCode(p dom.CodePart) string {
	return "<code class='docutils literal notranslate'>" + Escape(p.Text) + "</code>"
}

func (Formatter) FormatHorizontalLine(dom.HorizontalLinePart) string {
	return "<hr/>"
}

func (Formatter) FormatItalic(p dom.ItalicPart) string {
	return "<em>" + Escape(p.Text) + "</em>"
}

func (Formatter) FormatLink(p dom.LinkPart) string {
	return "<a href='" + href(p.URL) + "'>" + Escape(p.Text) + "</a>"
}

func (Formatter) FormatModule(p dom.ModulePart, url string) string {
	if url == "" {
		return "<span class='module'>" + Escape(p.FQCN) + "</span>"
	}

	return "<a href='" + href(url) + "' class='module'>" + Escape(p.FQCN) + "</a>"
}

func (Formatter) FormatRSTRef(p dom.RSTRefPart) string {
	return "<span class='module'>" + Escape(p.Text) + "</span>"
}

func (Formatter) FormatURL(p dom.URLPart) string {
	return "<a href='" + href(p.URL) + "'>" + Escape(p.URL) + "</a>"
}

func (Formatter) FormatText(p dom.TextPart) string {
	return Escape(p.Text)
}

func (Formatter) FormatEnvVariable(p dom.EnvVariablePart) string {
	return "<code class='xref std std-envvar literal notranslate'>" + Escape(p.Name) + "</code>"
}

func (Formatter) FormatOptionName(p dom.OptionNamePart, current *dom.PluginIdentifier, url string) string {
	return formatOptionLike(p.Plugin, p.Entrypoint, p.Name, p.Value, true, current, url)
}

func (Formatter) FormatOptionValue(p dom.OptionValuePart) string {
	return "<code class='ansible-value literal notranslate'>" + Escape(p.Value) + "</code>"
}

func (Formatter) FormatPlugin(p dom.PluginPart, url string) string {
	if url == "" {
		return "<span class='module'>" + Escape(p.Plugin.FQCN) + "</span>"
	}

	return "<a href='" + href(url) + "' class='module'>" + Escape(p.Plugin.FQCN) + "</a>"
}

func (Formatter) FormatReturnValue(p dom.ReturnValuePart, current *dom.PluginIdentifier, url string) string {
	return formatOptionLike(p.Plugin, p.Entrypoint, p.Name, p.Value, false, current, url)
}

// optionLikeText returns the displayed name of an option or return value.
// References to other plugins are qualified with the plugin and entrypoint.
func optionLikeText(
	plugin *dom.PluginIdentifier, entrypoint, name string, value *string, current *dom.PluginIdentifier,
) string {
	text := name
	if value != nil {
		text += "=" + *value
	}

	if plugin == nil || (current != nil && *current == *plugin) {
		return text
	}

	prefix := plugin.FQCN + "#" + plugin.Type + ":"
	if entrypoint != "" {
		prefix += entrypoint + ":"
	}

	return prefix + text
}

func formatOptionLike(
	plugin *dom.PluginIdentifier, entrypoint, name string, value *string, isOption bool,
	current *dom.PluginIdentifier, url string,
) string {
	text := Escape(optionLikeText(plugin, entrypoint, name, value, current))
	if url != "" {
		text = "<a class='reference internal' href='" + href(url) + "'><span class='std std-ref'><span class='pre'>" +
			text + "</span></span></a>"
	}

	switch {
	case value != nil:
		return "<code class='ansible-option-value literal notranslate'>" + text + "</code>"
	case isOption:
		return "<code class='ansible-option literal notranslate'><strong>" + text + "</strong></code>"
	default:
		return "<code class='ansible-return-value literal notranslate'>" + text + "</code>"
	}
}

// PlainFormatter renders parts as HTML without CSS classes.
type PlainFormatter struct{}

func (PlainFormatter) FormatError(p dom.ErrorPart) string {
	return "<b>ERROR while parsing</b>: " + Escape(p.Message)
}

func (PlainFormatter) FormatBold(p dom.BoldPart) string {
	return "<b>" + Escape(p.Text) + "</b>"
}

func (PlainFormatter) FormatCode(p dom.CodePart) string {
	return "<code>" + Escape(p.Text) + "</code>"
}

func (PlainFormatter) FormatHorizontalLine(dom.HorizontalLinePart) string {
	return "<hr>"
}

func (PlainFormatter) FormatItalic(p dom.ItalicPart) string {
	return "<em>" + Escape(p.Text) + "</em>"
}

func (PlainFormatter) FormatLink(p dom.LinkPart) string {
	return "<a href='" + href(p.URL) + "'>" + Escape(p.Text) + "</a>"
}

func (PlainFormatter) FormatModule(p dom.ModulePart, url string) string {
	if url == "" {
		return Escape(p.FQCN)
	}

	return "<a href='" + href(url) + "'>" + Escape(p.FQCN) + "</a>"
}

func (PlainFormatter) FormatRSTRef(p dom.RSTRefPart) string {
	return Escape(p.Text)
}

func (PlainFormatter) FormatURL(p dom.URLPart) string {
	return "<a href='" + href(p.URL) + "'>" + Escape(p.URL) + "</a>"
}

func (PlainFormatter) FormatText(p dom.TextPart) string {
	return Escape(p.Text)
}

func (PlainFormatter) FormatEnvVariable(p dom.EnvVariablePart) string {
	return "<code>" + Escape(p.Name) + "</code>"
}

func (PlainFormatter) FormatOptionName(p dom.OptionNamePart, current *dom.PluginIdentifier, url string) string {
	return formatPlainOptionLike(p.Plugin, p.Entrypoint, p.Name, p.Value, true, current, url)
}

func (PlainFormatter) FormatOptionValue(p dom.OptionValuePart) string {
	return "<code>" + Escape(p.Value) + "</code>"
}

func (PlainFormatter) FormatPlugin(p dom.PluginPart, url string) string {
	if url == "" {
		return Escape(p.Plugin.FQCN)
	}

	return "<a href='" + href(url) + "'>" + Escape(p.Plugin.FQCN) + "</a>"
}

func (PlainFormatter) FormatReturnValue(p dom.ReturnValuePart, current *dom.PluginIdentifier, url string) string {
	return formatPlainOptionLike(p.Plugin, p.Entrypoint, p.Name, p.Value, false, current, url)
}

func formatPlainOptionLike(
	plugin *dom.PluginIdentifier, entrypoint, name string, value *string, isOption bool,
	current *dom.PluginIdentifier, url string,
) string {
	text := Escape(optionLikeText(plugin, entrypoint, name, value, current))
	if url != "" {
		text = "<a href='" + href(url) + "'>" + text + "</a>"
	}

	if isOption && value == nil {
		text = "<strong>" + text + "</strong>"
	}

	return "<code>" + text + "</code>"
}

func defaults() []format.Option {
	return []format.Option{
		format.WithParStart("<p>"),
		format.WithParEnd("</p>"),
	}
}

// Render renders paragraphs as antsibull-style HTML. Each paragraph is
// wrapped in <p> tags.
func Render(paragraphs []dom.Paragraph, opts ...format.Option) string {
	return format.Paragraphs(paragraphs, Formatter{}, append(defaults(), opts...)...)
}

// RenderPlain renders paragraphs as class-free HTML. Each paragraph is
// wrapped in <p> tags.
func RenderPlain(paragraphs []dom.Paragraph, opts ...format.Option) string {
	return format.Paragraphs(paragraphs, PlainFormatter{}, append(defaults(), opts...)...)
}
