package format

import (
	"strings"

	"go.jacobcolvin.com/docmarkup/dom"
)

// OptionLikeKind distinguishes options from return values when resolving
// links.
type OptionLikeKind string

const (
	KindOption      OptionLikeKind = "option"
	KindReturnValue OptionLikeKind = "retval"
)

// LinkProvider resolves URLs for references in the DOM. An empty result
// means no link.
type LinkProvider interface {
	// PluginLink returns the URL of a plugin's documentation. Module
	// references are resolved as plugins of type "module".
	PluginLink(plugin dom.PluginIdentifier) string
	// PluginOptionLikeLink returns the URL of an option or return value.
	// The link is the dotted name split into its components, without array
	// stubs. isCurrent is true when plugin is the plugin being rendered.
	PluginOptionLikeLink(
		plugin dom.PluginIdentifier, entrypoint string, kind OptionLikeKind, link []string, isCurrent bool,
	) string
}

type noLinks struct{}

func (noLinks) PluginLink(dom.PluginIdentifier) string { return "" }

func (noLinks) PluginOptionLikeLink(dom.PluginIdentifier, string, OptionLikeKind, []string, bool) string {
	return ""
}

// NoLinks is a [LinkProvider] that never returns a link.
var NoLinks LinkProvider = noLinks{}

// TemplateLinkProvider builds links by expanding placeholders in URL
// templates. An empty template disables the corresponding links.
//
// Supported placeholders:
//
//	{fqcn}        plugin FQCN, e.g. "community.general.foo"
//	{namespace}   first FQCN segment
//	{collection}  second FQCN segment
//	{name}        remaining FQCN segments
//	{type}        plugin type
//	{entrypoint}  role entrypoint (option-like links only)
//	{kind}        "option" or "retval" (option-like links only)
//	{path}        link components joined by "/" (option-like links only)
//	{anchor}      "parameter-{path}" or "return-{path}", prefixed with
//	              "{entrypoint}--" for role entrypoints (option-like links only)
//
// For example:
//
//	lp := format.TemplateLinkProvider{
//		Plugin:     "https://docs.example.com/{namespace}/{collection}/{name}_{type}.html",
//		OptionLike: "https://docs.example.com/{namespace}/{collection}/{name}_{type}.html#{anchor}",
//	}
type TemplateLinkProvider struct {
	Plugin     string
	OptionLike string
}

// PluginLink implements [LinkProvider].
func (t TemplateLinkProvider) PluginLink(plugin dom.PluginIdentifier) string {
	if t.Plugin == "" {
		return ""
	}

	return pluginReplacer(plugin).Replace(t.Plugin)
}

// PluginOptionLikeLink implements [LinkProvider].
func (t TemplateLinkProvider) PluginOptionLikeLink(
	plugin dom.PluginIdentifier, entrypoint string, kind OptionLikeKind, link []string, _ bool,
) string {
	if t.OptionLike == "" {
		return ""
	}

	path := strings.Join(link, "/")

	anchor := "parameter-" + path
	if kind == KindReturnValue {
		anchor = "return-" + path
	}

	if entrypoint != "" {
		anchor = entrypoint + "--" + anchor
	}

	r := strings.NewReplacer(
		"{fqcn}", plugin.FQCN,
		"{namespace}", plugin.Namespace(),
		"{collection}", plugin.Collection(),
		"{name}", plugin.Name(),
		"{type}", plugin.Type,
		"{entrypoint}", entrypoint,
		"{kind}", string(kind),
		"{path}", path,
		"{anchor}", anchor,
	)

	return r.Replace(t.OptionLike)
}

func pluginReplacer(plugin dom.PluginIdentifier) *strings.Replacer {
	return strings.NewReplacer(
		"{fqcn}", plugin.FQCN,
		"{namespace}", plugin.Namespace(),
		"{collection}", plugin.Collection(),
		"{name}", plugin.Name(),
		"{type}", plugin.Type,
	)
}
