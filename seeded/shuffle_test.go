package seeded

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestShuffleKnownOutput(t *testing.T) {
	got := Shuffle([]int{1, 2, 3, 4, 5, 6}, 1)
	want := []int{1, 2, 4, 5, 6, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Shuffle mismatch (-want +got):\n%s", diff)
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "f", "g"}
	orig := append([]string(nil), in...)

	out := Shuffle(in, 5)

	assert.Equal(t, orig, in)
	assert.Len(t, out, len(in))
	if len(in) > 0 {
		out[0] = "changed"
		assert.Equal(t, orig[0], in[0], "result must not alias the input")
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	in := []int{9, 3, 3, 7, 1, 1, 1, 0, 12, 5}
	for seed := 1.0; seed <= 200; seed++ {
		out := Shuffle(in, seed)

		a := append([]int(nil), in...)
		b := append([]int(nil), out...)
		sort.Ints(a)
		sort.Ints(b)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("seed %v: not a permutation (-want +got):\n%s", seed, diff)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	first := Shuffle(in, 1234.5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Shuffle(in, 1234.5))
	}
}

func TestShuffleEmptyAndNil(t *testing.T) {
	assert.Nil(t, Shuffle([]int(nil), 1))
	assert.Equal(t, []int{}, Shuffle([]int{}, 1))
	assert.Equal(t, []int{8}, Shuffle([]int{8}, 1))
}

type names []string

func TestShuffleKeepsSliceType(t *testing.T) {
	in := names{"x", "y", "z"}
	out := Shuffle(in, 2)
	assert.IsType(t, names{}, out)
	assert.ElementsMatch(t, in, out)
}
