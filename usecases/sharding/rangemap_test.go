//                           _       _
// __      _____  __ ___   ___  __ _| |_ ___
// \ \ /\ / / _ \/ _` \ \ / / |/ _` | __/ _ \
//  \ V  V /  __/ (_| |\ V /| | (_| | ||  __/
//   \_/\_/ \___|\__,_| \_/ |_|\__,_|\__\___|
//
//  Copyright © 2016 - 2026 Weaviate B.V. All rights reserved.
//
//  CONTACT: hello@weaviate.io
//

package sharding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaviate/partitiondb/entities/hashrange"
)

func threeRangeMap(t *testing.T) *RangeMap[string] {
	t.Helper()

	// deliberately out of order, the constructor sorts
	m, err := NewRangeMap([]RangeEntry[string]{
		{Range: hashrange.Range{Min: 200, MaxUnbounded: true}, Value: "high"},
		{Range: hashrange.Range{Max: 100, MinUnbounded: true}, Value: "low"},
		{Range: hashrange.Range{Min: 100, Max: 200}, Value: "mid"},
	})
	require.Nil(t, err)
	return m
}

func TestRangeMapByHash(t *testing.T) {
	m := threeRangeMap(t)

	type test struct {
		hash     uint64
		expected string
	}

	tests := []test{
		{hash: 0, expected: "low"},
		{hash: 99, expected: "low"},
		{hash: 100, expected: "mid"},
		{hash: 199, expected: "mid"},
		{hash: 200, expected: "high"},
		{hash: math.MaxUint64, expected: "high"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, m.ByHash(test.hash), "hash %d", test.hash)
	}
}

func TestRangeMapByRange(t *testing.T) {
	m := threeRangeMap(t)

	v, ok := m.ByRange(hashrange.Range{Min: 100, Max: 200})
	require.True(t, ok)
	assert.Equal(t, "mid", v)

	_, ok = m.ByRange(hashrange.Range{Min: 100, Max: 201})
	assert.False(t, ok)

	_, ok = m.ByRange(hashrange.FullRange())
	assert.False(t, ok)
}

func TestRangeMapSet(t *testing.T) {
	m := threeRangeMap(t)

	// rebinding an existing range must not grow the map
	m.Set(hashrange.Range{Min: 100, Max: 200}, "mid2")
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, "mid2", m.ByHash(150))

	// a fresh range is inserted in order
	m.Set(hashrange.Range{Min: 200, Max: 300}, "extra")
	assert.Equal(t, 4, m.Len())

	ranges := m.Ranges()
	assert.True(t, ranges[2].Equal(hashrange.Range{Min: 200, Max: 300}))
}

func TestRangeMapEntriesOrdered(t *testing.T) {
	m := threeRangeMap(t)

	entries := m.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "low", entries[0].Value)
	assert.Equal(t, "mid", entries[1].Value)
	assert.Equal(t, "high", entries[2].Value)

	// Entries hands out a copy
	entries[0].Value = "mutated"
	assert.Equal(t, "low", m.Entries()[0].Value)
}

func TestRangeMapBoundedBottom(t *testing.T) {
	// a bounded range starting at zero covers the bottom just as well
	// as an unbounded one
	m, err := NewRangeMap([]RangeEntry[string]{
		{Range: hashrange.Range{Min: 0, Max: 100}, Value: "low"},
		{Range: hashrange.Range{Min: 100, MaxUnbounded: true}, Value: "high"},
	})
	require.Nil(t, err)
	assert.Equal(t, "low", m.ByHash(0))
}

func TestRangeMapCoverageValidation(t *testing.T) {
	type test struct {
		name        string
		entries     []RangeEntry[int]
		expectedErr []string
	}

	tests := []test{
		{
			name:        "empty set",
			entries:     nil,
			expectedErr: []string{"range set must not be empty"},
		},
		{
			name: "gap between ranges",
			entries: []RangeEntry[int]{
				{Range: hashrange.Range{Max: 100, MinUnbounded: true}},
				{Range: hashrange.Range{Min: 200, MaxUnbounded: true}},
			},
			expectedErr: []string{"gap between [-inf, 100) and [200, +inf)"},
		},
		{
			name: "overlapping ranges",
			entries: []RangeEntry[int]{
				{Range: hashrange.Range{Max: 150, MinUnbounded: true}},
				{Range: hashrange.Range{Min: 100, MaxUnbounded: true}},
			},
			expectedErr: []string{"ranges [-inf, 150) and [100, +inf) overlap"},
		},
		{
			name: "open at the bottom",
			entries: []RangeEntry[int]{
				{Range: hashrange.Range{Min: 10, MaxUnbounded: true}},
			},
			expectedErr: []string{"does not reach the bottom of the hash space"},
		},
		{
			name: "open at the top",
			entries: []RangeEntry[int]{
				{Range: hashrange.Range{Max: math.MaxUint64, MinUnbounded: true}},
			},
			expectedErr: []string{"does not reach the top of the hash space"},
		},
		{
			name: "several defects reported at once",
			entries: []RangeEntry[int]{
				{Range: hashrange.Range{Min: 10, Max: 100}},
				{Range: hashrange.Range{Min: 200, Max: 150}},
			},
			expectedErr: []string{
				"min must be below max",
				"does not reach the bottom of the hash space",
				"does not reach the top of the hash space",
			},
		},
		{
			name: "two ranges reaching the bottom",
			entries: []RangeEntry[int]{
				{Range: hashrange.Range{Max: 100, MinUnbounded: true}},
				{Range: hashrange.Range{Max: 200, MinUnbounded: true}},
				{Range: hashrange.Range{Min: 200, MaxUnbounded: true}},
			},
			expectedErr: []string{"more than one range reaches the bottom"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewRangeMap(test.entries)
			require.NotNil(t, err, "should have error'd")
			assert.Contains(t, err.Error(), "invalid range set")
			for _, fragment := range test.expectedErr {
				assert.Contains(t, err.Error(), fragment)
			}
		})
	}
}

func TestRangeMapByHashPanicsWithoutRanges(t *testing.T) {
	var m RangeMap[int]
	assert.Panics(t, func() {
		m.ByHash(7)
	})
}

func TestRangeMapClone(t *testing.T) {
	m := threeRangeMap(t)
	clone := m.Clone()

	clone.Set(hashrange.Range{Min: 100, Max: 200}, "changed")

	assert.Equal(t, "changed", clone.ByHash(150))
	assert.Equal(t, "mid", m.ByHash(150), "clone must not write through to the original")
}

func TestEvenSplitterCoversParent(t *testing.T) {
	parent := hashrange.FullRange()

	children, err := NewEvenSplitter().SplitRange(parent, 2)
	require.Nil(t, err)
	require.Len(t, children, 2)

	assert.True(t, children[0].MinUnbounded)
	assert.True(t, children[1].MaxUnbounded)
	assert.Equal(t, children[0].Max, children[1].Min)
}
