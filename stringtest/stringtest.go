// Package stringtest provides helpers for writing multi-line string
// expectations in tests.
package stringtest

import "strings"

// Input dedents a raw string literal so test inputs can be indented along
// with the surrounding code. One leading and one trailing newline are
// removed, whitespace-only lines become empty, and the indentation shared
// by all remaining lines is stripped.
//
//	src := stringtest.Input(`
//		P(a.b.c#lookup)
//		O(foo=bar)`) // -> "P(a.b.c#lookup)\nO(foo=bar)"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")
	indent := -1

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		if line != "" {
			lines[i] = line[indent:]
		}
	}

	return strings.Join(lines, "\n")
}

// JoinLF joins lines with "\n".
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

// JoinCRLF joins lines with "\r\n".
func JoinCRLF(lines ...string) string {
	return strings.Join(lines, "\r\n")
}
