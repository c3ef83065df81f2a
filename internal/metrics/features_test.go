package metrics_test

import (
	"testing"

	"github.com/fennwick/sqlchat/internal/metrics"
)

func TestCountTurn_Table(t *testing.T) {
	type exp struct {
		bytes int
		runes int
		words int
		lines int
	}
	cases := []struct {
		name string
		in   string
		exp  exp
	}{
		{
			name: "Empty",
			in:   "",
			exp:  exp{bytes: 0, runes: 0, words: 0, lines: 0},
		},
		{
			name: "PlainQuestion",
			in:   "show sales by region",
			exp:  exp{bytes: 20, runes: 20, words: 4, lines: 1},
		},
		{
			name: "Multibyte",
			in:   "héllö 世界", // bytes=14, runes=8, words=2, lines=1
			exp:  exp{bytes: 14, runes: 8, words: 2, lines: 1},
		},
		{
			name: "MultilineSQL_NoTrailing",
			in:   "SELECT *\nFROM orders\nWHERE id=1", // 3 lines
			exp:  exp{bytes: 31, runes: 31, words: 6, lines: 3},
		},
		{
			name: "Multiline_Trailing",
			in:   "a\nb\n", // bytes=4, runes=4, words=2, lines=3
			exp:  exp{bytes: 4, runes: 4, words: 2, lines: 3},
		},
		{
			name: "Whitespace_Tabs_Spaces",
			in:   "  foo\tbar   baz  ", // bytes=17, runes=17, words=3, lines=1
			exp:  exp{bytes: 17, runes: 17, words: 3, lines: 1},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := metrics.CountTurn(tc.in)
			if got.Bytes != tc.exp.bytes || got.Runes != tc.exp.runes ||
				got.Words != tc.exp.words || got.Lines != tc.exp.lines {
				t.Fatalf("got=%+v want=%+v", got, tc.exp)
			}
		})
	}
}
