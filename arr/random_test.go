package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lodash-utils/arr"
)

func TestShuffle(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	got := arr.Shuffle(in)
	assert.ElementsMatch(t, in, got)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, in, "Shuffle must not mutate its input")
}

func TestShuffleEventuallyReorders(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for attempt := 0; attempt < 20; attempt++ {
		if !assert.ObjectsAreEqual(in, arr.Shuffle(in)) {
			return
		}
	}
	t.Fatal("Shuffle returned the input order 20 times in a row")
}

func TestShuffleEveryPositionReachable(t *testing.T) {
	// The first slot of a uniform shuffle of 4 items should see every value.
	seen := map[int]bool{}
	for i := 0; i < 400 && len(seen) < 4; i++ {
		seen[arr.Shuffle([]int{0, 1, 2, 3})[0]] = true
	}
	assert.Len(t, seen, 4)
}

func TestShuffleEmpty(t *testing.T) {
	assert.Empty(t, arr.Shuffle([]int{}))
}

func TestSample(t *testing.T) {
	in := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		assert.Contains(t, in, arr.Sample(in))
	}
	assert.Equal(t, "", arr.Sample([]string{}))
	assert.Equal(t, 0, arr.Sample([]int(nil)))
}

func TestSamples(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}
	got := arr.Samples(in, 3)
	require.Len(t, got, 3)
	assert.Len(t, arr.Uniq(got), 3, "Samples must draw without replacement")
	for _, v := range got {
		assert.Contains(t, in, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, in)
}

func TestSamplesCapsAtLength(t *testing.T) {
	in := []int{1, 2, 3}
	assert.ElementsMatch(t, in, arr.Samples(in, 10))
}

func TestSamplesEmptyAndNonPositive(t *testing.T) {
	assert.Equal(t, []int{}, arr.Samples([]int{}, 3))
	assert.Equal(t, []int{}, arr.Samples([]int{1, 2}, 0))
	assert.Equal(t, []int{}, arr.Samples([]int{1, 2}, -2))
}
