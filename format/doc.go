// Package format renders parsed documentation into output formats.
//
// A [Formatter] turns one part into a string; [Paragraphs] walks the
// paragraphs of a document, resolves links through a [LinkProvider], and
// joins the results. The subpackages provide formatters and ready-made
// renderers for reStructuredText, Markdown, HTML, and ansible-doc style
// plain text:
//
//	paragraphs, _ := parser.Parse("See M(community.general.foo).", parser.Context{})
//	out := rst.Render(paragraphs, format.WithLinkProvider(format.TemplateLinkProvider{
//		Plugin: "https://docs.example.com/{namespace}/{collection}/{name}_{type}.html",
//	}))
//
// Every renderer accepts the same [Option] values; options given by the
// caller override the renderer's defaults.
package format
