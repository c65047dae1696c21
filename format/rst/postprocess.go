package rst

import (
	"regexp"
	"strings"

	"go.jacobcolvin.com/docmarkup/format"
)

const (
	rawHTMLLine = ".. raw:: html"
	dashesLine  = "------------"
	hrLine      = "  <hr>"
)

// repeatedSeparatorRegex matches runs of two or more "\ " separators.
var repeatedSeparatorRegex = regexp.MustCompile(`(?:\\ ){2,}`)

// PostprocessParagraph cleans up a rendered paragraph. Every line is
// trimmed, tabs become spaces, and "\ " separators are removed where they
// have no effect: at the start and end of a line, repeated, before a space
// or period (unless closing an inline role), and after a space (unless
// opening one). Blank lines are dropped except for those framing a
// horizontal rule block.
func PostprocessParagraph(par string) string {
	orig := format.SplitLines(par)
	lines := make([]string, len(orig))

	for i, line := range orig {
		lines[i] = line
		if isModifiable(i, line, orig) {
			lines[i] = removeSeparators(strings.ReplaceAll(strings.TrimSpace(line), "\t", " "))
		}
	}

	out := make([]string, 0, len(lines))

	for i, line := range lines {
		if line != "" || !isModifiable(i, line, lines) {
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n")
}

func lineIs(lines []string, i int, want string) bool {
	return i >= 0 && i < len(lines) && lines[i] == want
}

// isModifiable reports whether line i is ordinary text rather than part of
// a horizontal rule block.
func isModifiable(i int, line string, lines []string) bool {
	switch line {
	case rawHTMLLine, dashesLine:
		return false
	case hrLine:
		return !lineIs(lines, i-2, rawHTMLLine)
	case "":
		if lineIs(lines, i+1, rawHTMLLine) || lineIs(lines, i-1, rawHTMLLine) || lineIs(lines, i-3, rawHTMLLine) {
			return false
		}

		return !lineIs(lines, i+1, dashesLine) && !lineIs(lines, i-1, dashesLine)
	}

	return true
}

func removeSeparators(line string) string {
	start, end := 0, len(line)

	for {
		for strings.HasPrefix(line[start:end], `\ `) {
			start += 2
		}

		if !strings.HasPrefix(line[start:end], " ") {
			break
		}

		for strings.HasPrefix(line[start:end], " ") {
			start++
		}
	}

	for {
		if strings.HasSuffix(line[start:end], `\`) {
			end--
		}

		for strings.HasSuffix(line[start:end], `\ `) {
			end -= 2
		}

		if !strings.HasSuffix(line[start:end], " ") {
			break
		}

		for strings.HasSuffix(line[start:end], " ") {
			end--
		}
	}

	line = repeatedSeparatorRegex.ReplaceAllLiteralString(line[start:end], `\ `)

	return removeSeparatorAfterSpace(removeSeparatorBeforeSpace(line))
}

// removeSeparatorBeforeSpace drops "\ " directly followed by a space or
// period, unless it follows ":`".
func removeSeparatorBeforeSpace(s string) string {
	var sb strings.Builder

	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], `\ `) && i+2 < len(s) && (s[i+2] == ' ' || s[i+2] == '.') &&
			!strings.HasSuffix(s[:i], ":`") {
			sb.WriteByte(s[i+2])

			i += 3

			continue
		}

		sb.WriteByte(s[i])
		i++
	}

	return sb.String()
}

// removeSeparatorAfterSpace drops "\ " directly preceded by a space that is
// not itself escaped, unless it is followed by a backtick.
func removeSeparatorAfterSpace(s string) string {
	var sb strings.Builder

	for i := 0; i < len(s); {
		if s[i] == ' ' && strings.HasPrefix(s[i+1:], `\ `) &&
			(i == 0 || s[i-1] != '\\') &&
			(i+3 >= len(s) || s[i+3] != '`') {
			sb.WriteByte(' ')

			i += 3

			continue
		}

		sb.WriteByte(s[i])
		i++
	}

	return sb.String()
}
