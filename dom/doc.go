// Package dom defines the document object model produced by
// [go.jacobcolvin.com/docmarkup/parser] and consumed by the renderers under
// [go.jacobcolvin.com/docmarkup/format].
//
// A document is a slice of [Paragraph] values. Each paragraph is an ordered
// slice of [Part] values, one concrete type per kind of content: plain text,
// classic formatting directives such as [BoldPart] and [ModulePart], and
// semantic references such as [OptionNamePart] and [ReturnValuePart].
// Paragraphs never nest.
//
// Parts are plain values. The parser creates them once and nothing mutates
// them afterwards, so they may be shared freely between goroutines.
//
// Consumers either type-switch on a [Part] directly or implement [Walker]
// and call [Walk]:
//
//	type counter struct {
//	    dom.NoopWalker
//	    errors int
//	}
//
//	func (c *counter) ProcessError(dom.ErrorPart) { c.errors++ }
//
//	var c counter
//	dom.Walk(paragraph, &c)
package dom
