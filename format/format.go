package format

import (
	"strings"

	"go.jacobcolvin.com/docmarkup/dom"
)

// Formatter renders individual parts. Implementations must be stateless;
// [Paragraphs] concatenates their results.
//
// Module, plugin, option name and return value methods receive the URL
// resolved by the [LinkProvider], or an empty string when there is none.
// Option name and return value methods also receive the plugin whose
// documentation is being rendered, or nil.
type Formatter interface {
	FormatError(part dom.ErrorPart) string
	FormatBold(part dom.BoldPart) string
	FormatCode(part dom.CodePart) string
	FormatHorizontalLine(part dom.HorizontalLinePart) string
	FormatItalic(part dom.ItalicPart) string
	FormatLink(part dom.LinkPart) string
	FormatModule(part dom.ModulePart, url string) string
	FormatRSTRef(part dom.RSTRefPart) string
	FormatURL(part dom.URLPart) string
	FormatText(part dom.TextPart) string
	FormatEnvVariable(part dom.EnvVariablePart) string
	FormatOptionName(part dom.OptionNamePart, current *dom.PluginIdentifier, url string) string
	FormatOptionValue(part dom.OptionValuePart) string
	FormatPlugin(part dom.PluginPart, url string) string
	FormatReturnValue(part dom.ReturnValuePart, current *dom.PluginIdentifier, url string) string
}

type options struct {
	formatter   Formatter
	links       LinkProvider
	current     *dom.PluginIdentifier
	postprocess func(string) string
	parStart    string
	parEnd      string
	parSep      string
	parEmpty    string
}

// Option configures [Paragraphs] and the renderers built on it.
type Option func(*options)

// WithFormatter replaces the formatter.
func WithFormatter(f Formatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}

// WithLinkProvider sets the [LinkProvider] used to resolve URLs for
// modules, plugins, options and return values. The default is [NoLinks].
func WithLinkProvider(lp LinkProvider) Option {
	return func(o *options) {
		o.links = lp
	}
}

// WithParStart sets the string written before every paragraph.
func WithParStart(s string) Option {
	return func(o *options) {
		o.parStart = s
	}
}

// WithParEnd sets the string written after every paragraph.
func WithParEnd(s string) Option {
	return func(o *options) {
		o.parEnd = s
	}
}

// WithParSep sets the string written between paragraphs.
func WithParSep(s string) Option {
	return func(o *options) {
		o.parSep = s
	}
}

// WithParEmpty sets the replacement for paragraphs that render to nothing.
func WithParEmpty(s string) Option {
	return func(o *options) {
		o.parEmpty = s
	}
}

// WithCurrentPlugin sets the plugin whose documentation is rendered.
func WithCurrentPlugin(plugin *dom.PluginIdentifier) Option {
	return func(o *options) {
		o.current = plugin
	}
}

// WithPostprocess sets a function applied to each rendered paragraph body
// before the empty check.
func WithPostprocess(fn func(string) string) Option {
	return func(o *options) {
		o.postprocess = fn
	}
}

// Paragraphs renders paragraphs with formatter. Each paragraph is written
// as start, body and end, and paragraphs are separated by the separator.
// A body that is empty after post-processing is replaced by the empty
// paragraph marker. A formatter set with [WithFormatter] takes precedence
// over formatter.
func Paragraphs(paragraphs []dom.Paragraph, formatter Formatter, opts ...Option) string {
	o := options{
		formatter: formatter,
		links:     NoLinks,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder

	for i, paragraph := range paragraphs {
		if i > 0 {
			sb.WriteString(o.parSep)
		}

		w := &walker{opts: &o}
		dom.Walk(paragraph, w)

		body := w.sb.String()
		if o.postprocess != nil {
			body = o.postprocess(body)
		}

		if body == "" {
			body = o.parEmpty
		}

		sb.WriteString(o.parStart)
		sb.WriteString(body)
		sb.WriteString(o.parEnd)
	}

	return sb.String()
}

// walker feeds every part to the formatter, resolving links on the way.
type walker struct {
	opts *options
	sb   strings.Builder
}

func (w *walker) ProcessError(p dom.ErrorPart) {
	w.sb.WriteString(w.opts.formatter.FormatError(p))
}

func (w *walker) ProcessBold(p dom.BoldPart) {
	w.sb.WriteString(w.opts.formatter.FormatBold(p))
}

func (w *walker) ProcessCode(p dom.CodePart) {
	w.sb.WriteString(w.opts.formatter.FormatCode(p))
}

func (w *walker) ProcessHorizontalLine(p dom.HorizontalLinePart) {
	w.sb.WriteString(w.opts.formatter.FormatHorizontalLine(p))
}

func (w *walker) ProcessItalic(p dom.ItalicPart) {
	w.sb.WriteString(w.opts.formatter.FormatItalic(p))
}

func (w *walker) ProcessLink(p dom.LinkPart) {
	w.sb.WriteString(w.opts.formatter.FormatLink(p))
}

func (w *walker) ProcessModule(p dom.ModulePart) {
	url := w.opts.links.PluginLink(dom.PluginIdentifier{FQCN: p.FQCN, Type: "module"})
	w.sb.WriteString(w.opts.formatter.FormatModule(p, url))
}

func (w *walker) ProcessRSTRef(p dom.RSTRefPart) {
	w.sb.WriteString(w.opts.formatter.FormatRSTRef(p))
}

func (w *walker) ProcessURL(p dom.URLPart) {
	w.sb.WriteString(w.opts.formatter.FormatURL(p))
}

func (w *walker) ProcessText(p dom.TextPart) {
	w.sb.WriteString(w.opts.formatter.FormatText(p))
}

func (w *walker) ProcessEnvVariable(p dom.EnvVariablePart) {
	w.sb.WriteString(w.opts.formatter.FormatEnvVariable(p))
}

func (w *walker) ProcessOptionName(p dom.OptionNamePart) {
	url := w.optionLikeLink(p.Plugin, p.Entrypoint, KindOption, p.Link)
	w.sb.WriteString(w.opts.formatter.FormatOptionName(p, w.opts.current, url))
}

func (w *walker) ProcessOptionValue(p dom.OptionValuePart) {
	w.sb.WriteString(w.opts.formatter.FormatOptionValue(p))
}

func (w *walker) ProcessPlugin(p dom.PluginPart) {
	w.sb.WriteString(w.opts.formatter.FormatPlugin(p, w.opts.links.PluginLink(p.Plugin)))
}

func (w *walker) ProcessReturnValue(p dom.ReturnValuePart) {
	url := w.optionLikeLink(p.Plugin, p.Entrypoint, KindReturnValue, p.Link)
	w.sb.WriteString(w.opts.formatter.FormatReturnValue(p, w.opts.current, url))
}

func (w *walker) optionLikeLink(
	plugin *dom.PluginIdentifier, entrypoint string, kind OptionLikeKind, link []string,
) string {
	if plugin == nil {
		return ""
	}

	isCurrent := w.opts.current != nil && *w.opts.current == *plugin

	return w.opts.links.PluginOptionLikeLink(*plugin, entrypoint, kind, link, isCurrent)
}

var lineBreakReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SplitLines trims surrounding whitespace from s and splits it at line
// breaks ("\n", "\r\n" or "\r"). It returns nil for blank input.
func SplitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return strings.Split(lineBreakReplacer.Replace(s), "\n")
}
