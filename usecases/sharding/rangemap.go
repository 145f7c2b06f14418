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
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/weaviate/partitiondb/entities/hashrange"
)

// RangeEntry binds one hash range to its payload.
type RangeEntry[V any] struct {
	Range hashrange.Range
	Value V
}

// RangeMap is an ordered collection of non-overlapping hash ranges, each
// bound to a payload. The range set must tile the full hash space with
// no gaps and no overlaps, which the constructor enforces: any hash
// value belongs to exactly one range at all times.
//
// The map is not synchronized, its owner serializes access.
type RangeMap[V any] struct {
	// sorted by range start, the min-unbounded range first
	entries []RangeEntry[V]
}

// NewRangeMap validates that the entries' ranges tile the full hash
// space exactly. All coverage defects are reported at once.
func NewRangeMap[V any](entries []RangeEntry[V]) (*RangeMap[V], error) {
	m := &RangeMap[V]{entries: make([]RangeEntry[V], len(entries))}
	copy(m.entries, entries)
	m.sort()

	if err := m.validateCoverage(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *RangeMap[V]) sort() {
	sort.Slice(m.entries, func(a, b int) bool {
		return startsBelow(m.entries[a].Range, m.entries[b].Range)
	})
}

func startsBelow(a, b hashrange.Range) bool {
	if a.MinUnbounded != b.MinUnbounded {
		return a.MinUnbounded
	}

	return a.Min < b.Min
}

func (m *RangeMap[V]) validateCoverage() error {
	var result *multierror.Error

	if len(m.entries) == 0 {
		result = multierror.Append(result, errors.New("range set must not be empty"))
		return errors.Wrap(result.ErrorOrNil(), "invalid range set")
	}

	for i := range m.entries {
		if err := m.entries[i].Range.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	first := m.entries[0].Range
	if !first.MinUnbounded && first.Min != 0 {
		result = multierror.Append(result, errors.Errorf(
			"does not reach the bottom of the hash space, starts at %s", first))
	}

	// a bounded max excludes its own value, only an unbounded max
	// reaches the top of the space
	last := m.entries[len(m.entries)-1].Range
	if !last.MaxUnbounded {
		result = multierror.Append(result, errors.Errorf(
			"does not reach the top of the hash space, ends at %s", last))
	}

	for i := 1; i < len(m.entries); i++ {
		prev, cur := m.entries[i-1].Range, m.entries[i].Range

		if cur.MinUnbounded {
			result = multierror.Append(result, errors.Errorf(
				"more than one range reaches the bottom of the hash space: %s", cur))
			continue
		}

		if prev.MaxUnbounded {
			result = multierror.Append(result, errors.Errorf(
				"range %s reaches the top of the hash space but is not the last", prev))
			continue
		}

		if cur.Min < prev.Max {
			result = multierror.Append(result, errors.Errorf(
				"ranges %s and %s overlap", prev, cur))
		} else if cur.Min > prev.Max {
			result = multierror.Append(result, errors.Errorf(
				"gap between %s and %s", prev, cur))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Wrap(err, "invalid range set")
	}

	return nil
}

// ByHash returns the payload of the one range containing the hash. A
// valid map covers the full space, so a miss is not a lookup failure
// but a defect in whatever replaced the map, and panics.
func (m *RangeMap[V]) ByHash(h uint64) V {
	return m.EntryByHash(h).Value
}

// EntryByHash returns the full (range, payload) pair containing the
// hash, for callers which need the range as a key, such as a rebind of
// the payload through Set.
func (m *RangeMap[V]) EntryByHash(h uint64) RangeEntry[V] {
	if len(m.entries) == 0 {
		panic("range map has no ranges")
	}

	// the first range whose upper end lies above the hash
	i := sort.Search(len(m.entries), func(i int) bool {
		r := m.entries[i].Range
		return r.MaxUnbounded || h < r.Max
	})

	if i == len(m.entries) || !m.entries[i].Range.Contains(h) {
		panic(fmt.Sprintf("hash %d is not covered by any range, the map lost coverage", h))
	}

	return m.entries[i]
}

// ByRange returns the payload bound to the exact range key.
func (m *RangeMap[V]) ByRange(r hashrange.Range) (V, bool) {
	for i := range m.entries {
		if m.entries[i].Range.Equal(r) {
			return m.entries[i].Value, true
		}
	}

	var zero V
	return zero, false
}

// Set binds a payload to its exact range, inserting the range if not
// yet present. Coverage stays the caller's responsibility: new range
// sets go through NewRangeMap, Set only rebinds or completes them.
func (m *RangeMap[V]) Set(r hashrange.Range, v V) {
	for i := range m.entries {
		if m.entries[i].Range.Equal(r) {
			m.entries[i].Value = v
			return
		}
	}

	m.entries = append(m.entries, RangeEntry[V]{Range: r, Value: v})
	m.sort()
}

// Entries returns all (range, payload) pairs in range-start order.
func (m *RangeMap[V]) Entries() []RangeEntry[V] {
	out := make([]RangeEntry[V], len(m.entries))
	copy(out, m.entries)
	return out
}

// Ranges returns all ranges in range-start order.
func (m *RangeMap[V]) Ranges() []hashrange.Range {
	out := make([]hashrange.Range, len(m.entries))
	for i := range m.entries {
		out[i] = m.entries[i].Range
	}
	return out
}

func (m *RangeMap[V]) Len() int {
	return len(m.entries)
}

// Clone copies the map structure. Payloads are carried over by
// reference.
func (m *RangeMap[V]) Clone() *RangeMap[V] {
	entries := make([]RangeEntry[V], len(m.entries))
	copy(entries, m.entries)
	return &RangeMap[V]{entries: entries}
}
