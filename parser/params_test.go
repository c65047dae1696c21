package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParametersEscaped(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		text    string
		want    []string
		wantErr string
		index   int
		count   int
		wantEnd int
		strict  bool
	}{
		"single": {
			text: "(a)", index: 1, count: 1,
			want: []string{"a"}, wantEnd: 3,
		},
		"last parameter absorbs commas": {
			text: "(a,b,c)", index: 1, count: 1,
			want: []string{"a,b,c"}, wantEnd: 7,
		},
		"two parameters": {
			text: "(a,b)", index: 1, count: 2,
			want: []string{"a", "b"}, wantEnd: 5,
		},
		"two parameters with rest": {
			text: "(a,b,c)", index: 1, count: 2,
			want: []string{"a", "b,c"}, wantEnd: 7,
		},
		"three parameters": {
			text: "(a,b,c)", index: 1, count: 3,
			want: []string{"a", "b", "c"}, wantEnd: 7,
		},
		"spaces around separating commas": {
			text: `( a\ , b )`, index: 1, count: 2,
			want: []string{" a ", "b "}, wantEnd: 10,
		},
		"escaped delimiters": {
			text: `(a\,,b\,\),c\))`, index: 1, count: 3,
			want: []string{"a,", "b,)", "c)"}, wantEnd: 15,
		},
		"escaped backslashes in strict mode": {
			text: `(a\\,b\),c\)\\)`, index: 1, count: 3, strict: true,
			want: []string{`a\`, "b)", `c)\`}, wantEnd: 15,
		},
		"missing closing parenthesis": {
			text: "(a", index: 1, count: 1,
			want: []string{""}, wantEnd: 2,
			wantErr: `Cannot find closing ")" after last parameter`,
		},
		"missing comma": {
			text: "(a", index: 1, count: 2,
			want: []string{""}, wantEnd: 2,
			wantErr: "Cannot find comma separating parameter 1 from the next one",
		},
		"missing closing parenthesis after comma": {
			text: "(a,b", index: 1, count: 2,
			want: []string{"a", ""}, wantEnd: 4,
			wantErr: `Cannot find closing ")" after last parameter`,
		},
		"unnecessary escape": {
			text: `(c\a)`, index: 1, count: 1,
			want: []string{"ca"}, wantEnd: 5,
		},
		"unnecessary escape in strict mode": {
			text: `(c\a)`, index: 1, count: 1, strict: true,
			want: []string{"c"}, wantEnd: 4,
			wantErr: `Unnecessarily escaped "a"`,
		},
		"unnecessary escape before comma": {
			text: `(c\a,b)`, index: 1, count: 2,
			want: []string{"ca", "b"}, wantEnd: 7,
		},
		"unnecessary escape before comma in strict mode": {
			text: `(c\a,b)`, index: 1, count: 2, strict: true,
			want: []string{"c"}, wantEnd: 4,
			wantErr: `Unnecessarily escaped "a"`,
		},
		"trailing backslash": {
			text: `(a\`, index: 1, count: 1,
			want: []string{""}, wantEnd: 3,
			wantErr: `Cannot find closing ")" after last parameter`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, end, errMsg := parseParametersEscaped(tc.text, tc.index, tc.count, tc.strict)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantEnd, end)
			assert.Equal(t, tc.wantErr, errMsg)
		})
	}
}

func TestParseParametersUnescaped(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		text    string
		want    []string
		wantErr string
		count   int
		wantEnd int
	}{
		"single": {
			text: "(a)", count: 1,
			want: []string{"a"}, wantEnd: 3,
		},
		"last parameter absorbs commas": {
			text: "(a,b)", count: 1,
			want: []string{"a,b"}, wantEnd: 5,
		},
		"two parameters": {
			text: "(a,b)", count: 2,
			want: []string{"a", "b"}, wantEnd: 5,
		},
		"two parameters with rest": {
			text: "(a,b,c)", count: 2,
			want: []string{"a", "b,c"}, wantEnd: 7,
		},
		"three parameters": {
			text: "(a,b,c)", count: 3,
			want: []string{"a", "b", "c"}, wantEnd: 7,
		},
		"spaces around separating commas": {
			text: "( a , b )", count: 2,
			want: []string{" a", "b "}, wantEnd: 9,
		},
		"backslashes are literal": {
			text: `(a\,b)`, count: 2,
			want: []string{`a\`, "b"}, wantEnd: 6,
		},
		"missing closing parenthesis": {
			text: "(a", count: 1,
			want: []string{}, wantEnd: 2,
			wantErr: `Cannot find closing ")" after last parameter`,
		},
		"missing comma": {
			text: "(a", count: 2,
			want: []string{}, wantEnd: 2,
			wantErr: "Cannot find comma separating parameter 1 from the next one",
		},
		"missing closing parenthesis after comma": {
			text: "(a,b", count: 2,
			want: []string{"a"}, wantEnd: 4,
			wantErr: `Cannot find closing ")" after last parameter`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, end, errMsg := parseParametersUnescaped(tc.text, 1, tc.count)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantEnd, end)
			assert.Equal(t, tc.wantErr, errMsg)
		})
	}
}
