package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1}
	b := map[string]int{"b": 2, "c": 3}

	got := maps.Collect(IterSeq2Concat(maps.All(a), maps.All(b)))
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, got)

	count := 0
	for range IterSeq2Concat(maps.All(a), maps.All(b)) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}

func TestSortedByValue(t *testing.T) {
	assert := assert.New(t)

	m := map[string]int{"THAT": 4, "R4": 4, "SP": 0, "R0": 0, "KBD": 24576}

	var keys []string
	var values []int
	for k, v := range SortedByValue(m) {
		keys = append(keys, k)
		values = append(values, v)
	}

	assert.Equal([]string{"R0", "SP", "R4", "THAT", "KBD"}, keys)
	assert.True(slices.IsSorted(values))
}
