package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	msgClosingNotFound = `Cannot find closing ")" after last parameter`
)

func msgCommaNotFound(parameter int) string {
	return "Cannot find comma separating parameter " + strconv.Itoa(parameter) + " from the next one"
}

// parseParametersUnescaped splits the parameter list starting at index
// (just after the opening parenthesis) into count parameters. Every
// parameter but the last ends at the next ",", the last one at the next ")".
// Spaces around separating commas are dropped. It returns the parameters,
// the index just past the closing parenthesis, and an error message that is
// empty on success.
func parseParametersUnescaped(text string, index, count int) ([]string, int, string) {
	result := make([]string, 0, count)

	for left := count; left > 1; left-- {
		next := strings.IndexByte(text[index:], ',')
		if next < 0 {
			return result, len(text), msgCommaNotFound(count - left + 1)
		}

		result = append(result, strings.TrimRight(text[index:index+next], " "))
		index = skipSpaces(text, index+next+1)
	}

	next := strings.IndexByte(text[index:], ')')
	if next < 0 {
		return result, len(text), msgClosingNotFound
	}

	result = append(result, text[index:index+next])

	return result, index + next + 1, ""
}

// parseParametersEscaped is like [parseParametersUnescaped], but a backslash
// escapes the following character. Escaped characters never act as
// delimiters. With strict set, only ",", ")", and "\" may be escaped.
//
// On failure the parameter collected so far is still appended to the
// result.
func parseParametersEscaped(text string, index, count int, strict bool) ([]string, int, string) {
	result := make([]string, 0, count)

	for left := count; left > 0; left-- {
		delim := byte(',')
		if left == 1 {
			delim = ')'
		}

		var value strings.Builder

		for {
			next := strings.IndexAny(text[index:], `\`+string(delim))
			if next >= 0 && text[index+next] == '\\' && index+next+1 >= len(text) {
				// A trailing backslash has nothing to escape.
				next = -1
			}

			if next < 0 {
				result = append(result, value.String())
				if left > 1 {
					return result, len(text), msgCommaNotFound(count - left + 1)
				}

				return result, len(text), msgClosingNotFound
			}

			if text[index+next] != '\\' {
				segment := text[index : index+next]
				index += next + 1

				if delim == ',' {
					segment = strings.TrimRight(segment, " ")
					index = skipSpaces(text, index)
				}

				value.WriteString(segment)

				break
			}

			value.WriteString(text[index : index+next])
			index += next

			r, size := utf8.DecodeRuneInString(text[index+1:])
			index += 1 + size

			if strict && r != '\\' && r != ',' && r != ')' {
				result = append(result, value.String())

				return result, index, `Unnecessarily escaped "` + string(r) + `"`
			}

			value.WriteRune(r)
		}

		result = append(result, value.String())
	}

	return result, index, ""
}

func skipSpaces(text string, index int) int {
	for index < len(text) && text[index] == ' ' {
		index++
	}

	return index
}
