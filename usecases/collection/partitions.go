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

package collection

import (
	"github.com/weaviate/partitiondb/entities/hashrange"
)

// ListPartitions returns a snapshot of all partition ids and the hash
// range each one owns. The returned map is the caller's to keep, later
// splits do not modify it.
func (m *Manager) ListPartitions() map[uint64]hashrange.Range {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state.routing.Partitions()
}

// PartitionCounts returns the number of records stored per partition
// id, a snapshot like ListPartitions.
func (m *Manager) PartitionCounts() map[uint64]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[uint64]int, m.state.routing.Len())
	for id, r := range m.state.routing.Partitions() {
		log := m.logByRangeLocked(id, r)
		if log == nil {
			counts[id] = 0
			continue
		}

		counts[id] = log.Count()
	}

	return counts
}
