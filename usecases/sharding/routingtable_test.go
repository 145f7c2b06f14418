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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaviate/partitiondb/entities/hashrange"
)

func TestRoutingTable(t *testing.T) {
	table := NewRoutingTable()
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, uint64(0), table.NextID(), "an empty table allocates id 0")

	table.Set(0, hashrange.FullRange())
	assert.Equal(t, uint64(1), table.NextID())

	r, ok := table.Get(0)
	require.True(t, ok)
	assert.True(t, hashrange.FullRange().Equal(r))

	_, ok = table.Get(42)
	assert.False(t, ok)

	table.Delete(0)
	assert.Equal(t, 0, table.Len())
}

func TestRoutingTableNextIDSkipsHoles(t *testing.T) {
	table := NewRoutingTable()
	table.Set(3, hashrange.Range{Max: 100, MinUnbounded: true})
	table.Set(7, hashrange.Range{Min: 100, MaxUnbounded: true})

	// ids are never reused, even when lower ids were deleted
	assert.Equal(t, uint64(8), table.NextID())
}

func TestRoutingTableIDByRange(t *testing.T) {
	table := NewRoutingTable()
	table.Set(3, hashrange.Range{Max: 100, MinUnbounded: true})
	table.Set(7, hashrange.Range{Min: 100, MaxUnbounded: true})

	id, ok := table.IDByRange(hashrange.Range{Min: 100, MaxUnbounded: true})
	require.True(t, ok)
	assert.Equal(t, uint64(7), id)

	// a lookup matches on range identity, not on overlap
	_, ok = table.IDByRange(hashrange.Range{Min: 100, Max: 200})
	assert.False(t, ok)
}

func TestRoutingTableIDsOrdered(t *testing.T) {
	table := NewRoutingTable()
	table.Set(7, hashrange.Range{Min: 100, MaxUnbounded: true})
	table.Set(0, hashrange.Range{Max: 50, MinUnbounded: true})
	table.Set(3, hashrange.Range{Min: 50, Max: 100})

	assert.Equal(t, []uint64{0, 3, 7}, table.IDs())
}

func TestRoutingTablePartitionsIsASnapshot(t *testing.T) {
	table := NewRoutingTable()
	table.Set(0, hashrange.FullRange())

	snapshot := table.Partitions()
	require.Len(t, snapshot, 1)

	snapshot[1] = hashrange.Range{Min: 5, MaxUnbounded: true}
	assert.Equal(t, 1, table.Len(), "writing to the snapshot must not touch the table")
}

func TestRoutingTableClone(t *testing.T) {
	table := NewRoutingTable()
	table.Set(0, hashrange.FullRange())

	clone := table.Clone()
	clone.Set(1, hashrange.Range{Min: 5, MaxUnbounded: true})
	clone.Delete(0)

	assert.Equal(t, 1, table.Len())
	_, ok := table.Get(0)
	assert.True(t, ok)
}
