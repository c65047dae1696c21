// Package rst renders documentation as reStructuredText.
//
// [Render] targets Sphinx sites using the antsibull extension roles such
// as :ansopt: and :ansval:. [RenderPlain] only uses standard Sphinx roles.
// Both post-process every paragraph with [PostprocessParagraph] to remove
// the "\ " separators that inline roles need but that are redundant next
// to whitespace.
package rst

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.jacobcolvin.com/docmarkup/dom"
	"go.jacobcolvin.com/docmarkup/format"
	"go.jacobcolvin.com/docmarkup/format/html"
)

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`<`, `\<`,
	`>`, `\>`,
	`_`, `\_`,
	`*`, `\*`,
	"`", "\\`",
	`|`, `\|`,
)

// Escape backslash-escapes characters with a special meaning in
// reStructuredText inline markup.
func Escape(s string) string {
	return escaper.Replace(s)
}

// EscapeInline is [Escape] for text placed between backticks, which must
// neither start nor end with whitespace. Leading and trailing whitespace
// is guarded with "\ ". With mustNotBeEmpty, an empty result is replaced
// by "\ ".
func EscapeInline(s string, mustNotBeEmpty bool) string {
	s = Escape(s)

	if r, _ := utf8.DecodeLastRuneInString(s); s != "" && unicode.IsSpace(r) {
		s += `\ `
	}

	if r, _ := utf8.DecodeRuneInString(s); s != "" && unicode.IsSpace(r) {
		s = `\ ` + s
	}

	if s == "" && mustNotBeEmpty {
		s = `\ `
	}

	return s
}

func role(name, text string) string {
	return `\ :` + name + ":`" + EscapeInline(text, true) + "`\\ "
}

func pluginRef(plugin dom.PluginIdentifier) string {
	return ":ref:`" + Escape(plugin.FQCN) + " <ansible_collections." + plugin.FQCN + "_" + plugin.Type + ">`"
}

// common implements the parts both flavours render the same way.
type common struct{}

func (common) FormatError(p dom.ErrorPart) string {
	return "\\ :strong:`ERROR while parsing`\\ : " + EscapeInline(p.Message, true) + `\ `
}

func (common) FormatBold(p dom.BoldPart) string {
	return role("strong", p.Text)
}

func (common) FormatCode(p dom.CodePart) string {
	return role("literal", p.Text)
}

func (common) FormatItalic(p dom.ItalicPart) string {
	return role("emphasis", p.Text)
}

func (common) FormatLink(p dom.LinkPart) string {
	if p.Text == "" {
		return ""
	}

	if p.URL == "" {
		return Escape(p.Text)
	}

	return "\\ `" + EscapeInline(p.Text, false) + " <" + html.EscapeURL(p.URL) + ">`__\\ "
}

func (common) FormatModule(p dom.ModulePart, _ string) string {
	return "\\ :ref:`" + EscapeInline(p.FQCN, true) + " <ansible_collections." + p.FQCN + "_module>`\\ "
}

func (common) FormatRSTRef(p dom.RSTRefPart) string {
	return "\\ :ref:`" + EscapeInline(p.Text, true) + " <" + p.Ref + ">`\\ "
}

func (common) FormatURL(p dom.URLPart) string {
	if p.URL == "" {
		return ""
	}

	return "\\ `" + EscapeInline(p.URL, false) + " <" + html.EscapeURL(p.URL) + ">`__\\ "
}

func (common) FormatText(p dom.TextPart) string {
	return Escape(p.Text)
}

func (common) FormatEnvVariable(p dom.EnvVariablePart) string {
	return role("envvar", p.Name)
}

func (common) FormatPlugin(p dom.PluginPart, _ string) string {
	return `\ ` + pluginRef(p.Plugin) + `\ `
}

// Formatter renders parts with the antsibull Sphinx extension roles.
type Formatter struct {
	common
}

func (Formatter) FormatHorizontalLine(dom.HorizontalLinePart) string {
	return "\n\n.. raw:: html\n\n  <hr>\n\n"
}

func (Formatter) FormatOptionName(p dom.OptionNamePart, _ *dom.PluginIdentifier, _ string) string {
	return formatOptionLike("ansopt", p.Plugin, p.Entrypoint, p.Name, p.Value)
}

func (Formatter) FormatOptionValue(p dom.OptionValuePart) string {
	return role("ansval", p.Value)
}

func (Formatter) FormatReturnValue(p dom.ReturnValuePart, _ *dom.PluginIdentifier, _ string) string {
	return formatOptionLike("ansretval", p.Plugin, p.Entrypoint, p.Name, p.Value)
}

// formatOptionLike writes the fully qualified reference
// "fqcn#type:entrypoint:name=value" that the antsibull roles resolve.
func formatOptionLike(roleName string, plugin *dom.PluginIdentifier, entrypoint, name string, value *string) string {
	var sb strings.Builder

	if plugin != nil {
		sb.WriteString(plugin.FQCN)
		sb.WriteByte('#')
		sb.WriteString(plugin.Type)
		sb.WriteByte(':')
	}

	if entrypoint != "" {
		sb.WriteString(entrypoint)
		sb.WriteByte(':')
	}

	sb.WriteString(name)

	if value != nil {
		sb.WriteByte('=')
		sb.WriteString(*value)
	}

	return role(roleName, sb.String())
}

// PlainFormatter renders parts with standard Sphinx roles only.
type PlainFormatter struct {
	common
}

func (PlainFormatter) FormatHorizontalLine(dom.HorizontalLinePart) string {
	return "\n\n------------\n\n"
}

func (PlainFormatter) FormatOptionName(p dom.OptionNamePart, _ *dom.PluginIdentifier, _ string) string {
	return formatPlainOptionLike(p.Plugin, p.Entrypoint, p.Name, p.Value)
}

func (PlainFormatter) FormatOptionValue(p dom.OptionValuePart) string {
	return role("literal", p.Value)
}

func (PlainFormatter) FormatReturnValue(p dom.ReturnValuePart, _ *dom.PluginIdentifier, _ string) string {
	return formatPlainOptionLike(p.Plugin, p.Entrypoint, p.Name, p.Value)
}

func formatPlainOptionLike(plugin *dom.PluginIdentifier, entrypoint, name string, value *string) string {
	var of strings.Builder

	if plugin != nil {
		of.WriteString(plugin.Type)

		if !isStandalonePluginType(plugin.Type) {
			of.WriteString(" plugin")
		}

		of.WriteByte(' ')
		of.WriteString(pluginRef(*plugin))
	}

	if entrypoint != "" {
		if of.Len() > 0 {
			of.WriteString(", ")
		}

		of.WriteString("entrypoint ")
		of.WriteString(EscapeInline(entrypoint, true))
	}

	text := name
	if value != nil {
		text += "=" + *value
	}

	out := "\\ :literal:`" + EscapeInline(text, true) + "`"
	if of.Len() > 0 {
		out += " (of " + of.String() + ")"
	}

	return out + `\ `
}

// isStandalonePluginType reports whether references to plugins of typ are
// written without the word "plugin".
func isStandalonePluginType(typ string) bool {
	return typ == "module" || typ == "role" || typ == "playbook"
}

func defaults() []format.Option {
	return []format.Option{
		format.WithParSep("\n\n"),
		format.WithParEmpty(`\`),
		format.WithPostprocess(PostprocessParagraph),
	}
}

// Render renders paragraphs as reStructuredText using the antsibull roles.
func Render(paragraphs []dom.Paragraph, opts ...format.Option) string {
	return format.Paragraphs(paragraphs, Formatter{}, append(defaults(), opts...)...)
}

// RenderPlain renders paragraphs as reStructuredText using standard roles.
func RenderPlain(paragraphs []dom.Paragraph, opts ...format.Option) string {
	return format.Paragraphs(paragraphs, PlainFormatter{}, append(defaults(), opts...)...)
}
