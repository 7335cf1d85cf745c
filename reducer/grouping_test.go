package reducer_test

import (
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-utils/reducers/commonerrors"
	"github.com/ARM-software/golang-utils/reducers/commonerrors/errortest"
	"github.com/ARM-software/golang-utils/reducers/reducer"
	"github.com/ARM-software/golang-utils/reducers/reducer/reducertest"
)

func initial(s string) string {
	return strings.ToUpper(s[:1])
}

func TestPartitioning(t *testing.T) {
	r := reducer.Partitioning(isEven, reducer.ToSlice[int]())
	reducertest.AssertSplits(t, r, []int{1, 2, 3, 4, 5, 6}, map[bool][]int{true: {2, 4, 6}, false: {1, 3, 5}})
	reducertest.AssertSplits(t, r, []int{1, 3}, map[bool][]int{true: nil, false: {1, 3}})
	assert.False(t, r.Cancellable())

	counting := reducer.Partitioning(isEven, reducer.Counting[int]())
	assert.Equal(t, reducer.Unordered|reducer.Concurrent, counting.Characteristics())
	reducertest.AssertSplits(t, counting, []int{1, 3, 5, 7}, map[bool]int64{true: 0, false: 4})
}

func TestPartitioning_ShortCircuit(t *testing.T) {
	r := reducer.Partitioning(isEven, reducer.First[int]())
	assert.True(t, r.Cancellable())
	consumed := 0
	result, err := reducer.Collect(naturals(&consumed), r)
	require.NoError(t, err)
	assert.Equal(t, map[bool]reducer.Optional[int]{true: reducer.Some(0), false: reducer.Some(1)}, result)
	assert.Equal(t, 2, consumed)
}

func TestGroupingBy(t *testing.T) {
	words := []string{"apple", "avocado", "banana", "blueberry", "cherry"}
	r := reducer.GroupingBy(initial, reducer.ToSlice[string]())
	reducertest.AssertSplits(t, r, words, map[string][]string{
		"A": {"apple", "avocado"},
		"B": {"banana", "blueberry"},
		"C": {"cherry"},
	})
	assert.False(t, r.Cancellable())

	random := randomWords(t, 100)
	lengths, err := reducer.CollectSlice(random, reducer.GroupingBy(func(s string) int {
		return len(s)
	}, reducer.Counting[string]()))
	require.NoError(t, err)
	total := int64(0)
	for l, count := range lengths {
		assert.Positive(t, l)
		total += count
	}
	assert.Equal(t, int64(len(random)), total)
}

func TestGroupingByDomain(t *testing.T) {
	domain := mapset.NewSet("A", "B", "C")
	r, err := reducer.GroupingByDomain(domain, initial, reducer.Counting[string]())
	require.NoError(t, err)
	reducertest.AssertSplits(t, r, []string{"apple", "avocado", "apricot"}, map[string]int64{"A": 3, "B": 0, "C": 0})
	reducertest.AssertSplits(t, r, nil, map[string]int64{"A": 0, "B": 0, "C": 0})

	domain.Add("D")
	_, err = reducer.CollectSlice([]string{"apple", "date"}, r)
	errortest.AssertError(t, err, commonerrors.ErrOutOfRange)
}

func TestGroupingByDomain_Invalid(t *testing.T) {
	_, err := reducer.GroupingByDomain(nil, initial, reducer.Counting[string]())
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	empty, err := reducer.GroupingByDomain(mapset.NewSet[string](), initial, reducer.Counting[string]())
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	_, err = reducer.CollectSlice([]string{"apple", "zebra"}, empty)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = reducer.GroupingByDomain(mapset.NewSet(faker.Word()), initial, reducer.Reducer[string, int]{})
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
}

func TestGroupingByDomain_ShortCircuit(t *testing.T) {
	domain := mapset.NewSet(true, false)
	r, err := reducer.GroupingByDomain(domain, isEven, reducer.Head[int](2))
	require.NoError(t, err)
	assert.True(t, r.Cancellable())
	consumed := 0
	result, err := reducer.Collect(naturals(&consumed), r)
	require.NoError(t, err)
	assert.Equal(t, map[bool][]int{true: {0, 2}, false: {1, 3}}, result)
	assert.Equal(t, 4, consumed)

	// a key of the domain which is never seen prevents short-circuiting
	byRemainder, err := reducer.GroupingByDomain(mapset.NewSet(0, 1, 2), func(i int) int {
		return i % 2
	}, reducer.First[int]())
	require.NoError(t, err)
	state := byRemainder.Create()
	for i := range 10 {
		state, err = byRemainder.Fold(state, i)
		require.NoError(t, err)
	}
	assert.False(t, byRemainder.IsFinished(state))
}
