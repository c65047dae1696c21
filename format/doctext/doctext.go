// Package doctext renders documentation as the plain text shown by
// ansible-doc in a terminal.
package doctext

import (
	"strings"

	"go.jacobcolvin.com/docmarkup/dom"
	"go.jacobcolvin.com/docmarkup/format"
)

// rule separates the text around a horizontal line.
var rule = "\n" + strings.Repeat("-", 13) + "\n"

func quote(s string) string {
	return "`" + s + "'"
}

// Formatter renders parts as ansible-doc text. Links are never resolved.
type Formatter struct{}

func (Formatter) FormatError(p dom.ErrorPart) string {
	return "[[ERROR while parsing: " + p.Message + "]]"
}

func (Formatter) FormatBold(p dom.BoldPart) string                   { return "*" + p.Text + "*" }
func (Formatter) FormatCode(p dom.CodePart) string                   { return quote(p.Text) }
func (Formatter) FormatHorizontalLine(dom.HorizontalLinePart) string { return rule }
func (Formatter) FormatItalic(p dom.ItalicPart) string               { return quote(p.Text) }
func (Formatter) FormatLink(p dom.LinkPart) string                   { return p.Text + " <" + p.URL + ">" }
func (Formatter) FormatModule(p dom.ModulePart, _ string) string     { return "[" + p.FQCN + "]" }
func (Formatter) FormatRSTRef(p dom.RSTRefPart) string               { return p.Text }
func (Formatter) FormatURL(p dom.URLPart) string                     { return p.URL }
func (Formatter) FormatText(p dom.TextPart) string                   { return p.Text }
func (Formatter) FormatEnvVariable(p dom.EnvVariablePart) string     { return quote(p.Name) }
func (Formatter) FormatOptionValue(p dom.OptionValuePart) string     { return quote(p.Value) }
func (Formatter) FormatPlugin(p dom.PluginPart, _ string) string     { return "[" + p.Plugin.FQCN + "]" }

func (Formatter) FormatOptionName(p dom.OptionNamePart, _ *dom.PluginIdentifier, _ string) string {
	return formatOptionLike(p.Plugin, p.Entrypoint, p.Name, p.Value)
}

func (Formatter) FormatReturnValue(p dom.ReturnValuePart, _ *dom.PluginIdentifier, _ string) string {
	return formatOptionLike(p.Plugin, p.Entrypoint, p.Name, p.Value)
}

// formatOptionLike always names the owning plugin, even when it is the
// plugin being rendered.
func formatOptionLike(plugin *dom.PluginIdentifier, entrypoint, name string, value *string) string {
	text := name
	if value != nil {
		text += "=" + *value
	}

	text = quote(text)

	if plugin == nil {
		return text
	}

	of := plugin.Type
	if plugin.Type != "role" && plugin.Type != "module" && plugin.Type != "playbook" {
		of += " plugin"
	}

	of += " " + plugin.FQCN

	if plugin.Type == "role" && entrypoint != "" {
		of += ", " + entrypoint + " entrypoint"
	}

	return text + " (of " + of + ")"
}

// Render renders paragraphs as ansible-doc text, separated by a blank line.
func Render(paragraphs []dom.Paragraph, opts ...format.Option) string {
	return format.Paragraphs(paragraphs, Formatter{}, append([]format.Option{format.WithParSep("\n\n")}, opts...)...)
}
