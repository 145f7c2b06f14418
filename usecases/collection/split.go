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
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/weaviate/partitiondb/adapters/repos/memlog"
	"github.com/weaviate/partitiondb/entities/models"
	"github.com/weaviate/partitiondb/usecases/sharding"
)

// Split retires a partition and replaces it with two children which
// together cover exactly the parent's hash range. Child ids are
// allocated above the highest id ever used, retired ids are never
// reused. The new range map and routing table become visible in a
// single snapshot swap, afterwards the parent's records are replayed
// through the regular write path, which reassigns sequence numbers,
// creation times and ids. If the range splitter fails, the collection
// is left untouched.
func (m *Manager) Split(partitionID uint64) error {
	start := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	parentRange, ok := m.state.routing.Get(partitionID)
	if !ok {
		return ErrPartitionNotFound{ID: partitionID}
	}

	parentLog := m.logByRangeLocked(partitionID, parentRange)

	leftID := m.state.routing.NextID()
	rightID := leftID + 1

	childRanges, err := m.splitter.SplitRange(parentRange, 2)
	if err != nil {
		return NewErrInvalidUserInput("split partition %d: %v", partitionID, err)
	}
	if len(childRanges) != 2 {
		return NewErrInternal("split partition %d: splitter returned %d ranges, wanted 2",
			partitionID, len(childRanges))
	}

	// assemble both replacement structures away from the published
	// state, nothing below may modify what readers currently see
	entries := make([]sharding.RangeEntry[*memlog.Log], 0, m.state.ranges.Len()+1)
	for _, entry := range m.state.ranges.Entries() {
		if entry.Range.Equal(parentRange) {
			continue
		}

		// untouched partitions keep their logs by reference
		entries = append(entries, entry)
	}
	for _, child := range childRanges {
		entries = append(entries, sharding.RangeEntry[*memlog.Log]{
			Range: child,
			Value: memlog.NewLog(),
		})
	}

	// the constructor re-validates full coverage, a splitter whose
	// ranges do not tile the parent cannot make it into the collection
	ranges, err := sharding.NewRangeMap(entries)
	if err != nil {
		return NewErrInternal("split partition %d: %v", partitionID, err)
	}

	routing := m.state.routing.Clone()
	routing.Delete(partitionID)
	routing.Set(leftID, childRanges[0])
	routing.Set(rightID, childRanges[1])

	// the swap, readers see the old pair or the new pair, never a mix
	m.state = &shardingState{ranges: ranges, routing: routing}

	m.metrics.DeletePartitionRecords(partitionID)
	m.metrics.SetPartitionRecords(leftID, 0)
	m.metrics.SetPartitionRecords(rightID, 0)

	var parentRecords []*models.Record
	if parentLog != nil {
		parentRecords = parentLog.Records()
	}

	migrated := 0
	for _, record := range parentRecords {
		if _, err := m.createItemLocked(record.Payload()); err != nil {
			// every payload went through the same path once before
			panic(fmt.Sprintf("replay record %s into the new partitions: %v",
				record.ID(), err))
		}
		migrated++
	}

	took := time.Since(start)
	m.metrics.SplitCompleted(took)
	m.metrics.SetPartitions(routing.Len())

	m.logger.WithFields(logrus.Fields{
		"action":       "split_partition",
		"partition_id": partitionID,
		"child_left":   leftID,
		"child_right":  rightID,
		"migrated":     migrated,
		"took":         took,
	}).Debug("split partition into two children")

	return nil
}
