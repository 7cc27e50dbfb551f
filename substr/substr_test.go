package substr_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbelos/arbelos/substr"
)

var searchers = map[string]func(pattern string) (substr.Searcher, error){
	"KMP":        func(p string) (substr.Searcher, error) { return substr.NewKMP(p) },
	"BoyerMoore": func(p string) (substr.Searcher, error) { return substr.NewBoyerMoore(p) },
	"RabinKarp":  func(p string) (substr.Searcher, error) { return substr.NewRabinKarp(p) },
}

// oracleAll finds every overlapping occurrence by brute force.
func oracleAll(pattern, text string) []int {
	var out []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		if text[i:i+len(pattern)] == pattern {
			out = append(out, i)
		}
	}

	return out
}

func TestSearchers_EmptyPattern(t *testing.T) {
	for name, mk := range searchers {
		t.Run(name, func(t *testing.T) {
			_, err := mk("")
			assert.ErrorIs(t, err, substr.ErrEmptyPattern)
		})
	}
}

func TestSearchers_KnownCases(t *testing.T) {
	cases := []struct {
		pattern, text string
		want          int
	}{
		{"abracadabra", "abacadabrabracabracadabrabrabracad", 14},
		{"rab", "abacadabrabracabracadabrabrabracad", 8},
		{"bcara", "abacadabrabracabracadabrabrabracad", -1},
		{"rabrabracad", "abacadabrabracabracadabrabrabracad", 23},
		{"abacad", "abacadabrabracabracadabrabrabracad", 0},
		{"a", "a", 0},
		{"a", "b", -1},
		{"aa", "a", -1},
		{"needle", "", -1},
	}
	for name, mk := range searchers {
		t.Run(name, func(t *testing.T) {
			for _, c := range cases {
				s, err := mk(c.pattern)
				require.NoError(t, err)
				assert.Equal(t, c.pattern, s.Pattern())
				assert.Equal(t, c.want, s.Index(c.text),
					"pattern %q in %q", c.pattern, c.text)
			}
		})
	}
}

func TestSearchers_OverlappingMatches(t *testing.T) {
	for name, mk := range searchers {
		t.Run(name, func(t *testing.T) {
			s, err := mk("aa")
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2}, s.IndexAll("aaaa"))

			s, err = mk("aba")
			require.NoError(t, err)
			assert.Equal(t, []int{0, 2, 4}, s.IndexAll("abababa"))

			s, err = mk("zz")
			require.NoError(t, err)
			assert.Empty(t, s.IndexAll("abababa"))
		})
	}
}

func TestSearchers_SelfSimilarPattern(t *testing.T) {
	// Patterns with heavy self-overlap stress the DFA fallback and the
	// Boyer-Moore skip floor.
	text := strings.Repeat("aab", 50) + "aabaaabb"
	for name, mk := range searchers {
		t.Run(name, func(t *testing.T) {
			for _, p := range []string{"aabaa", "aaabb", "baab"} {
				s, err := mk(p)
				require.NoError(t, err)
				assert.Equal(t, strings.Index(text, p), s.Index(text), "pattern %q", p)
				assert.Equal(t, oracleAll(p, text), s.IndexAll(text), "pattern %q", p)
			}
		})
	}
}

func TestSearchers_RandomAgainstStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := "ab"
	randStr := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}

		return string(b)
	}

	for name, mk := range searchers {
		t.Run(name, func(t *testing.T) {
			for trial := 0; trial < 300; trial++ {
				pattern := randStr(1 + rng.Intn(6))
				text := randStr(rng.Intn(80))
				s, err := mk(pattern)
				require.NoError(t, err)
				assert.Equal(t, strings.Index(text, pattern), s.Index(text),
					"pattern %q text %q", pattern, text)

				if oracle := oracleAll(pattern, text); oracle == nil {
					assert.Empty(t, s.IndexAll(text))
				} else {
					assert.Equal(t, oracle, s.IndexAll(text),
						"pattern %q text %q", pattern, text)
				}
			}
		})
	}
}

func TestSearchers_BinaryBytes(t *testing.T) {
	pattern := string([]byte{0x00, 0xFF, 0x80})
	text := string([]byte{0xFF, 0x00, 0xFF, 0x80, 0x00})
	for name, mk := range searchers {
		t.Run(name, func(t *testing.T) {
			s, err := mk(pattern)
			require.NoError(t, err)
			assert.Equal(t, 1, s.Index(text))
		})
	}
}
