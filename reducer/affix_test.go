package reducer_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-utils/reducers/reducer"
	"github.com/ARM-software/golang-utils/reducers/reducer/reducertest"
)

func TestCommonPrefix(t *testing.T) {
	reducertest.AssertSplits(t, reducer.CommonPrefix(), []string{"interspecies", "interstellar", "interstate"}, "inters")
	reducertest.AssertSplits(t, reducer.CommonPrefix(), []string{"abc", "ab", "abcd"}, "ab")
	reducertest.AssertSplits(t, reducer.CommonPrefix(), []string{"same"}, "same")
	reducertest.AssertSplits(t, reducer.CommonPrefix(), nil, "")
	reducertest.AssertSplits(t, reducer.CommonPrefix(), []string{"abc", "", "abc"}, "")
}

func TestCommonSuffix(t *testing.T) {
	reducertest.AssertSplits(t, reducer.CommonSuffix(), []string{"abcd", "abxd"}, "d")
	reducertest.AssertSplits(t, reducer.CommonSuffix(), []string{"abcd", "abxe"}, "")
	reducertest.AssertSplits(t, reducer.CommonSuffix(), []string{"running", "jumping", "ping"}, "ing")
	reducertest.AssertSplits(t, reducer.CommonSuffix(), nil, "")
}

func TestCommonAffix_MultiByteRunes(t *testing.T) {
	// 😀 and 😁 share their first three bytes, é and è their first byte.
	reducertest.AssertSplits(t, reducer.CommonPrefix(), []string{"x😀", "x😁"}, "x")
	reducertest.AssertSplits(t, reducer.CommonPrefix(), []string{"😀", "😁"}, "")
	reducertest.AssertSplits(t, reducer.CommonPrefix(), []string{"café", "cafè"}, "caf")
	reducertest.AssertSplits(t, reducer.CommonPrefix(), []string{"café", "caf\xc3"}, "caf")
	// the combining diaeresis is a rune on its own
	reducertest.AssertSplits(t, reducer.CommonSuffix(), []string{"a\u0308", "o\u0308"}, "\u0308")
	reducertest.AssertSplits(t, reducer.CommonSuffix(), []string{"é!", "è!"}, "!")
	reducertest.AssertSplits(t, reducer.CommonSuffix(), []string{"\u0101", "\u0201"}, "")

	words := []string{faker.Word() + "😀", faker.Word() + "😁"}
	suffix, err := reducer.CollectSlice(words, reducer.CommonSuffix())
	require.NoError(t, err)
	assert.Empty(t, suffix)
	prefix, err := reducer.CollectSlice([]string{"日本語", "日本人", "日本"}, reducer.CommonPrefix())
	require.NoError(t, err)
	assert.Equal(t, "日本", prefix)
	assert.True(t, utf8.ValidString(prefix))
}

func TestCommonPrefix_ShortCircuit(t *testing.T) {
	consumed := 0
	prefix, err := reducer.Collect(func(yield func(string) bool) {
		for _, s := range []string{"prefix", "prelude", "other", "pre"} {
			consumed++
			if !yield(s) {
				return
			}
		}
	}, reducer.CommonPrefix())
	require.NoError(t, err)
	assert.Empty(t, prefix)
	assert.Equal(t, 3, consumed)

	random := randomWords(t, 20)
	for i := range random {
		random[i] = "shared-" + random[i]
	}
	prefix, err = reducer.CollectSlice(random, reducer.CommonPrefix())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(prefix, "shared-"))
}
