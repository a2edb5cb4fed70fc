package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	seq := Concat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	assert.Empty(slices.Collect(Concat[int]()))

	var early []int
	for val := range seq {
		early = append(early, val)
		if val == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, early)
}
