// Package parser turns documentation strings written in inline markup into
// [dom.Paragraph] values.
//
// A directive is an uppercase token followed by a parenthesized parameter
// list, such as B(bold) or L(text,url), or a bare token for directives
// without parameters, such as HORIZONTALLINE. Text between directives
// becomes [dom.TextPart] values.
//
// Two directive families exist. Classic directives take their parameters
// verbatim; the first "," or ")" ends a parameter. Semantic directives (P,
// E, V, O and RV) support backslash escapes so their parameters may contain
// commas and parentheses:
//
//	paragraphs, err := parser.Parse(`Set O(state=present) to create V(a\,b).`, parser.Context{})
//
// Directives that fail to parse are handled according to [ErrorMode]. In
// the default [ErrorsMessage] mode they become [dom.ErrorPart] values and
// parsing continues.
package parser
