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
	"golang.org/x/exp/slices"

	"github.com/weaviate/partitiondb/entities/hashrange"
)

// RoutingTable maps externally-visible partition ids to their hash
// range, decoupled from the range map's internal layout: clients keep
// addressing partitions by id across internal reorganizations. Ids are
// allocated through NextID and never reused.
//
// The table is not synchronized, its owner serializes access.
type RoutingTable struct {
	entries map[uint64]hashrange.Range
}

func NewRoutingTable() *RoutingTable {
	return &RoutingTable{entries: map[uint64]hashrange.Range{}}
}

func (t *RoutingTable) Get(id uint64) (hashrange.Range, bool) {
	r, ok := t.entries[id]
	return r, ok
}

// IDByRange returns the id of the partition owning exactly this range.
func (t *RoutingTable) IDByRange(r hashrange.Range) (uint64, bool) {
	for id, candidate := range t.entries {
		if candidate.Equal(r) {
			return id, true
		}
	}

	return 0, false
}

func (t *RoutingTable) Set(id uint64, r hashrange.Range) {
	t.entries[id] = r
}

func (t *RoutingTable) Delete(id uint64) {
	delete(t.entries, id)
}

func (t *RoutingTable) Len() int {
	return len(t.entries)
}

// IDs returns all partition ids in ascending order.
func (t *RoutingTable) IDs() []uint64 {
	ids := make([]uint64, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}

	slices.Sort(ids)
	return ids
}

// NextID returns max(existing ids)+1, or 0 for an empty table. Callers
// must serialize splits, two concurrent allocations would collide.
func (t *RoutingTable) NextID() uint64 {
	next := uint64(0)
	for id := range t.entries {
		if id+1 > next {
			next = id + 1
		}
	}

	return next
}

// Partitions returns a snapshot copy of the table.
func (t *RoutingTable) Partitions() map[uint64]hashrange.Range {
	out := make(map[uint64]hashrange.Range, len(t.entries))
	for id, r := range t.entries {
		out[id] = r
	}

	return out
}

func (t *RoutingTable) Clone() *RoutingTable {
	return &RoutingTable{entries: t.Partitions()}
}
