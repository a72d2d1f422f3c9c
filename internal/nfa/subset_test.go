package nfa

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thompson/internal/dfa"
)

// words returns every string over alphabet up to maxLen runes long.
func words(alphabet string, maxLen int) []string {
	out := []string{""}
	layer := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, w := range layer {
			for _, c := range alphabet {
				next = append(next, w+string(c))
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

// simulate runs the NFA directly over its closures.
func simulate(t *testing.T, n *NFA, f Fragment, input string) bool {
	t.Helper()
	if f.IsEmpty() {
		return false
	}
	cl, err := n.closures()
	require.NoError(t, err)
	cur := cl[f.Start]
	for _, c := range input {
		var next []int
		for _, i := range cur {
			if st := n.states[i]; st.Kind == Literal && st.Char == c {
				next = append(next, cl[st.Out[0]]...)
			}
		}
		cur = newStateSet(next)
	}
	return cur.contains(f.End)
}

func compile(t *testing.T, build func(n *NFA) Fragment) (*NFA, Fragment, *dfa.DFA) {
	t.Helper()
	n := New()
	f := build(n)
	d, err := n.ToDFA(f)
	require.NoError(t, err)
	return n, f, d
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name   string
		build  func(n *NFA) Fragment
		accept []string
		reject []string
	}{
		{
			name:   "digit",
			build:  (*NFA).Digit,
			accept: []string{"5", "0", "9"},
			reject: []string{"a", "", "55"},
		},
		{
			name:   "concat",
			build:  func(n *NFA) Fragment { return n.Concat(n.Char('a'), n.Char('b')) },
			accept: []string{"ab"},
			reject: []string{"a", "ba", "", "abb"},
		},
		{
			name:   "star",
			build:  func(n *NFA) Fragment { return n.Star(n.Char('a')) },
			accept: []string{"", "a", "aaaa"},
			reject: []string{"b", "ab"},
		},
		{
			name:   "alternate",
			build:  func(n *NFA) Fragment { return n.Alternate(n.Char('x'), n.Char('y')) },
			accept: []string{"x", "y"},
			reject: []string{"xy", "z", ""},
		},
		{
			name:   "range",
			build:  func(n *NFA) Fragment { return n.Range('a', 'c') },
			accept: []string{"a", "b", "c"},
			reject: []string{"d", "", "ab"},
		},
		{
			name:   "reversed range",
			build:  func(n *NFA) Fragment { return n.Range('c', 'a') },
			reject: []string{"", "a", "b", "c"},
		},
		{
			name:   "optional",
			build:  func(n *NFA) Fragment { return n.Optional(n.Char('a')) },
			accept: []string{"", "a"},
			reject: []string{"aa", "b"},
		},
		{
			name:   "multibyte",
			build:  func(n *NFA) Fragment { return n.Concat(n.Char('é'), n.Char('世')) },
			accept: []string{"é世"},
			reject: []string{"é", "e世"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, d := compile(t, tt.build)
			for _, s := range tt.accept {
				assert.True(t, d.Accepts(s), "want accept %q", s)
			}
			for _, s := range tt.reject {
				assert.False(t, d.Accepts(s), "want reject %q", s)
			}
		})
	}
}

func TestLanguageEquivalence(t *testing.T) {
	tests := []struct {
		name   string
		oracle string
		build  func(n *NFA) Fragment
	}{
		{"concat", `ab`, func(n *NFA) Fragment { return n.Concat(n.Char('a'), n.Char('b')) }},
		{"alternate", `a|bc`, func(n *NFA) Fragment {
			return n.Alternate(n.Char('a'), n.Concat(n.Char('b'), n.Char('c')))
		}},
		{"star of alternation", `(ab|a)*c`, func(n *NFA) Fragment {
			body := n.Alternate(n.Concat(n.Char('a'), n.Char('b')), n.Char('a'))
			return n.Concat(n.Star(body), n.Char('c'))
		}},
		{"optional chain", `a?b?c`, func(n *NFA) Fragment {
			return n.Concat(n.Optional(n.Char('a')), n.Concat(n.Optional(n.Char('b')), n.Char('c')))
		}},
		{"nested star", `(a*)*b`, func(n *NFA) Fragment {
			return n.Concat(n.Star(n.Star(n.Char('a'))), n.Char('b'))
		}},
		{"star of optional", `(a?b?)*`, func(n *NFA) Fragment {
			return n.Star(n.Concat(n.Optional(n.Char('a')), n.Optional(n.Char('b'))))
		}},
		{"plus", `(a|b)+c`, func(n *NFA) Fragment {
			ab := func() Fragment { return n.Alternate(n.Char('a'), n.Char('b')) }
			return n.Concat(n.Plus(ab(), ab()), n.Char('c'))
		}},
		{"range vs one_of", `[a-c]`, func(n *NFA) Fragment { return n.OneOf("abc") }},
		{"duplicate one_of", `[ab]`, func(n *NFA) Fragment { return n.OneOf("abba") }},
		{"star of empty", ``, func(n *NFA) Fragment { return n.Star(Empty) }},
		{"alternate empty", `c`, func(n *NFA) Fragment { return n.Alternate(n.Range('z', 'a'), n.Char('c')) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(`^(?:` + tt.oracle + `)$`)
			n, f, d := compile(t, tt.build)
			for _, w := range words("abcd", 5) {
				want := re.MatchString(w)
				assert.Equal(t, want, simulate(t, n, f, w), "nfa on %q", w)
				assert.Equal(t, want, d.Accepts(w), "dfa on %q", w)
			}
		})
	}
}

func TestConcatEmptyMatchesNothing(t *testing.T) {
	_, _, d := compile(t, func(n *NFA) Fragment { return n.Concat(n.Char('a'), n.OneOf("")) })
	assert.Equal(t, 1, d.Len())
	for _, w := range words("ab", 3) {
		assert.False(t, d.Accepts(w))
	}
}

func TestClassesMatchTheirSets(t *testing.T) {
	tests := []struct {
		class string
		re    string
	}{
		{"alnum", `[[:alnum:]]`},
		{"alpha", `[[:alpha:]]`},
		{"blank", `[[:blank:]]`},
		{"digit", `[[:digit:]]`},
		{"graph", `[[:graph:]]`},
		{"lower", `[[:lower:]]`},
		{"print", `[[:print:]]`},
		{"punct", `[[:punct:]]`},
		{"space", `[[:space:]]`},
		{"upper", `[[:upper:]]`},
		{"xdigit", `[[:xdigit:]]`},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			re := regexp.MustCompile(`^` + tt.re + `$`)
			_, _, d := compile(t, func(n *NFA) Fragment {
				f, ok := n.Class(tt.class)
				require.True(t, ok)
				return f
			})
			for c := rune(0); c < 128; c++ {
				s := string(c)
				assert.Equal(t, re.MatchString(s), d.Accepts(s), "%q", s)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	_, _, d := compile(t, func(n *NFA) Fragment {
		// a(b|bc)*|ab: several NFA paths share each prefix
		left := n.Concat(n.Char('a'), n.Star(n.Alternate(n.Char('b'), n.Concat(n.Char('b'), n.Char('c')))))
		return n.Alternate(left, n.Concat(n.Char('a'), n.Char('b')))
	})
	for i := 0; i < d.Len(); i++ {
		seen := map[rune]bool{}
		for _, e := range d.Transitions(i) {
			assert.False(t, seen[e.Char], "state %d repeats %q", i, e.Char)
			seen[e.Char] = true
			to, ok := d.Next(i, e.Char)
			require.True(t, ok)
			assert.Equal(t, e.To, to)
		}
	}
}

func TestDiscoveryOrder(t *testing.T) {
	n := New()
	f := n.Concat(n.Char('a'), n.Char('b'))
	cl, err := n.closures()
	require.NoError(t, err)

	sets, edges := n.subsets(cl, f.Start)
	assert.Equal(t, []stateSet{{0}, {1, 2}, {3}}, sets)
	assert.Equal(t, []dfa.Edge{{From: 0, Char: 'a', To: 1}, {From: 1, Char: 'b', To: 2}}, edges)
}

func TestToDFALeavesArenaUntouched(t *testing.T) {
	n := New()
	f := n.Star(n.Alternate(n.Char('a'), n.Char('b')))
	before := append([]State(nil), n.states...)

	_, err := n.ToDFA(f)
	require.NoError(t, err)
	assert.Equal(t, before, n.states)
}
