package parser

import (
	"fmt"
	"strings"
	"unicode"
)

// Whitespace selects how whitespace in text and directive arguments is
// normalized.
type Whitespace int

const (
	// WhitespaceIgnore keeps whitespace as-is.
	WhitespaceIgnore Whitespace = iota
	// WhitespaceStrip reduces every run of whitespace to a single space.
	WhitespaceStrip
	// WhitespaceKeepSingleNewlines reduces runs of whitespace containing a
	// line break to a single newline and all other runs to a single space.
	WhitespaceKeepSingleNewlines
)

var whitespaceNames = map[Whitespace]string{
	WhitespaceIgnore:             "ignore",
	WhitespaceStrip:              "strip",
	WhitespaceKeepSingleNewlines: "keep-single-newlines",
}

// String returns the flag value for w.
func (w Whitespace) String() string {
	if s, ok := whitespaceNames[w]; ok {
		return s
	}

	return fmt.Sprintf("Whitespace(%d)", int(w))
}

// ParseWhitespace parses a whitespace mode string as returned by
// [Whitespace.String]. Matching is case-insensitive.
func ParseWhitespace(s string) (Whitespace, error) {
	lower := strings.ToLower(s)
	for w, name := range whitespaceNames {
		if name == lower {
			return w, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownWhitespace, s)
}

// GetAllWhitespaceStrings returns all valid whitespace mode strings.
func GetAllWhitespaceStrings() []string {
	return []string{
		WhitespaceIgnore.String(),
		WhitespaceStrip.String(),
		WhitespaceKeepSingleNewlines.String(),
	}
}

// isKeepSpace reports whether r is a non-breaking or zero-width space that
// whitespace normalization must preserve.
func isKeepSpace(r rune) bool {
	switch r {
	case '\u00a0', '\u202f', '\u2007', '\u2060', '\u200b', '\u200c', '\u200d', '\ufeff':
		return true
	}

	return false
}

// processWhitespace normalizes text according to ws. Keep-spaces are copied
// verbatim and split the text into independently normalized segments.
//
// In a code environment only tabs and line breaks are replaced by spaces;
// runs are not collapsed. noNewlines makes [WhitespaceKeepSingleNewlines]
// behave like [WhitespaceStrip].
func processWhitespace(text string, ws Whitespace, codeEnvironment, noNewlines bool) string {
	if ws == WhitespaceIgnore || text == "" {
		return text
	}

	keepNewlines := ws == WhitespaceKeepSingleNewlines && !noNewlines

	var sb strings.Builder

	sb.Grow(len(text))

	inRun := false
	runHasNewline := false

	flush := func() {
		if !inRun {
			return
		}

		if runHasNewline {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}

		inRun = false
		runHasNewline = false
	}

	for _, r := range text {
		switch {
		case isKeepSpace(r):
			flush()
			sb.WriteRune(r)

		case codeEnvironment:
			if r == '\t' || r == '\n' || r == '\r' {
				r = ' '
			}

			sb.WriteRune(r)

		case unicode.IsSpace(r):
			inRun = true

			if keepNewlines && (r == '\n' || r == '\r') {
				runHasNewline = true
			}

		default:
			flush()
			sb.WriteRune(r)
		}
	}

	flush()

	return sb.String()
}
