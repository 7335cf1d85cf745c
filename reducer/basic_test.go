package reducer_test

import (
	"cmp"
	"context"
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/golang-utils/reducers/reducer"
	"github.com/ARM-software/golang-utils/reducers/reducer/reducertest"
)

type person struct {
	name string
	age  int
}

func byAge(a, b person) int {
	return cmp.Compare(a.age, b.age)
}

var people = []person{
	{name: "Alice", age: 32},
	{name: "Bob", age: 25},
	{name: "Carol", age: 41},
	{name: "Dave", age: 25},
	{name: "Eve", age: 41},
}

func randomWords(t *testing.T, n int) []string {
	t.Helper()
	words := make([]string, 0, n)
	for range n {
		words = append(words, faker.Word())
	}
	return words
}

func TestToSlice(t *testing.T) {
	reducertest.AssertSplits(t, reducer.ToSlice[int](), []int{4, 1, 3, 2}, []int{4, 1, 3, 2})
	assert.True(t, reducer.ToSlice[int]().Characteristics().Has(reducer.IdentityFinish))
}

func TestToSet(t *testing.T) {
	defer goleak.VerifyNone(t)
	input := make([]int, 0, 1000)
	for i := range 1000 {
		input = append(input, i%37)
	}
	r := reducer.ToSet[int]()
	assert.True(t, r.Characteristics().Has(reducer.Concurrent|reducer.Unordered))
	set, err := reducertest.CollectShared(context.Background(), r, input, 8)
	require.NoError(t, err)
	assert.Equal(t, 37, set.Cardinality())
	set, err = reducertest.CollectConcurrently(context.Background(), r, input, 5)
	require.NoError(t, err)
	assert.Equal(t, 37, set.Cardinality())
	assert.True(t, set.Contains(0, 36))
}

func TestToBoolSlice(t *testing.T) {
	reducertest.AssertSplits(t, reducer.ToBoolSlice(func(i int) bool {
		return i%2 == 0
	}), []int{1, 2, 4, 5}, []bool{false, true, true, false})
}

func TestCounting(t *testing.T) {
	defer goleak.VerifyNone(t)
	words := randomWords(t, 50)
	reducertest.AssertSplits(t, reducer.Counting[string](), words, int64(len(words)))

	input := make([]int, 5000)
	count, err := reducertest.CollectShared(context.Background(), reducer.Counting[int](), input, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), count)
}

func TestSumming(t *testing.T) {
	reducertest.AssertSplits(t, reducer.Summing(func(p person) int {
		return p.age
	}), people, 164)
	reducertest.AssertSplits(t, reducer.Summing(func(f float64) float64 {
		return f
	}), []float64{0.5, 0.25, 0.25}, 1.0)
}

func TestReducing(t *testing.T) {
	reducertest.AssertSplits(t, reducer.Reducing(1, func(a, b int) int {
		return a * b
	}), []int{1, 2, 3, 4}, 24)
	reducertest.AssertSplits(t, reducer.Reducing("", func(a, b string) string {
		return a + b
	}), []string{"re", "du", "ce"}, "reduce")
}

func TestAnding(t *testing.T) {
	identity := func(i uint8) uint8 { return i }
	reducertest.AssertSplits(t, reducer.Anding(identity), []uint8{0b111, 0b110, 0b011}, reducer.Some[uint8](0b010))
	reducertest.AssertSplits(t, reducer.Anding(identity), []uint8{}, reducer.Absent[uint8]())

	consumed := 0
	result, err := reducer.Collect(naturals(&consumed), reducer.Anding(func(i int) int { return i + 1 }))
	require.NoError(t, err)
	assert.Equal(t, reducer.Some(0), result)
	assert.Equal(t, 2, consumed)
}

func TestMinByMaxBy(t *testing.T) {
	reducertest.AssertSplits(t, reducer.MinBy(byAge), people, reducer.Some(people[1]))
	reducertest.AssertSplits(t, reducer.MaxBy(byAge), people, reducer.Some(people[2]))
	reducertest.AssertSplits(t, reducer.MaxBy(byAge), nil, reducer.Absent[person]())
}

func TestFirstLast(t *testing.T) {
	reducertest.AssertSplits(t, reducer.First[string](), []string{"a", "b", "c"}, reducer.Some("a"))
	reducertest.AssertSplits(t, reducer.Last[string](), []string{"a", "b", "c"}, reducer.Some("c"))
	reducertest.AssertSplits(t, reducer.Last[string](), nil, reducer.Absent[string]())

	consumed := 0
	first, err := reducer.Collect(naturals(&consumed), reducer.First[int]())
	require.NoError(t, err)
	assert.Equal(t, reducer.Some(0), first)
	assert.Equal(t, 1, consumed)
}

func TestOnlyOne(t *testing.T) {
	reducertest.AssertSplits(t, reducer.OnlyOne[int](), nil, reducer.Absent[int]())
	reducertest.AssertSplits(t, reducer.OnlyOne[int](), []int{5}, reducer.Some(5))
	reducertest.AssertSplits(t, reducer.OnlyOne[int](), []int{5, 6, 7}, reducer.Absent[int]())

	consumed := 0
	_, err := reducer.Collect(naturals(&consumed), reducer.OnlyOne[int]())
	require.NoError(t, err)
	assert.Equal(t, 2, consumed)
}

func TestOnlyOneMatching(t *testing.T) {
	r := reducer.OnlyOneMatching(isEven)
	reducertest.AssertSplits(t, r, []int{1, 3, 4, 5}, reducer.Some(4))
	reducertest.AssertSplits(t, r, []int{1, 3, 5}, reducer.Absent[int]())
	reducertest.AssertSplits(t, r, []int{2, 3, 4}, reducer.Absent[int]())

	consumed := 0
	_, err := reducer.Collect(naturals(&consumed), r)
	require.NoError(t, err)
	assert.Equal(t, 3, consumed)
}

func TestHeadTail(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7}
	for n := 1; n <= 8; n++ {
		reducertest.AssertSplits(t, reducer.Head[int](n), input, input[:min(n, len(input))])
		reducertest.AssertSplits(t, reducer.Tail[int](n), input, input[max(0, len(input)-n):])
	}
	reducertest.AssertSplits(t, reducer.Head[int](0), input, []int{})
	reducertest.AssertSplits(t, reducer.Tail[int](-1), input, []int{})
}

func TestDistinct(t *testing.T) {
	words := []string{"a", "bb", "c", "dd", "eee", "f"}
	reducertest.AssertSplits(t, reducer.DistinctBy(func(s string) int {
		return len(s)
	}), words, []string{"a", "bb", "eee"})
	reducertest.AssertSplits(t, reducer.DistinctCount(func(s string) int {
		return len(s)
	}), words, 3)
	reducertest.AssertSplits(t, reducer.DistinctCount(strings.ToLower), []string{"A", "a", "b"}, 2)
}

func TestIntersecting(t *testing.T) {
	sets := []mapset.Set[int]{
		mapset.NewSet(1, 2, 3, 4),
		mapset.NewSet(2, 3, 4, 5),
		mapset.NewSet(3, 2, 9),
	}
	for i := 0; i <= len(sets); i++ {
		result, err := reducertest.CollectSplit(reducer.Intersecting[int](), sets, i)
		require.NoError(t, err)
		assert.True(t, mapset.NewSet(2, 3).Equal(result), result.String())
	}
	assert.Equal(t, 3, sets[2].Cardinality())

	empty, err := reducer.CollectSlice([]mapset.Set[int](nil), reducer.Intersecting[int]())
	require.NoError(t, err)
	assert.Zero(t, empty.Cardinality())

	consumed := 0
	disjoint := func(yield func(mapset.Set[int]) bool) {
		for i := 0; ; i++ {
			consumed++
			if !yield(mapset.NewSet(i)) {
				return
			}
		}
	}
	_, err = reducer.Collect(disjoint, reducer.Intersecting[int]())
	require.NoError(t, err)
	assert.Equal(t, 2, consumed)
}
