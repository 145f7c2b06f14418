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
	"github.com/weaviate/partitiondb/adapters/repos/memlog"
	"github.com/weaviate/partitiondb/entities/models"
	"github.com/weaviate/partitiondb/entities/partitionkey"
)

// CreateItem extracts the document's partition key, routes the document
// to the partition owning the key's hash and appends it there. The
// returned record carries the newly assigned sequence number, creation
// time and id.
func (m *Manager) CreateItem(doc models.Document) (*models.Record, error) {
	if doc == nil {
		return nil, NewErrInvalidUserInput("document must be set")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.createItemLocked(doc)
}

// createItemLocked is the one code path deciding which log a document
// lands in. Splits replay migrated records through it as well, so
// routing can never diverge between fresh writes and migrations.
func (m *Manager) createItemLocked(doc models.Document) (*models.Record, error) {
	value, err := partitionkey.Extract(doc, m.def)
	if err != nil {
		return nil, NewErrInvalidUserInput("invalid document: %v", err)
	}

	hash, err := m.hasher.Hash(value)
	if err != nil {
		return nil, NewErrInternal("hash partition key: %v", err)
	}

	entry := m.state.ranges.EntryByHash(hash)
	log := entry.Value
	lazyBind := log == nil
	if lazyBind {
		// first write into this range
		log = memlog.NewLog()
	}

	record, err := log.Append(doc)
	if err != nil {
		return nil, NewErrInternal("append to partition log: %v", err)
	}

	if lazyBind {
		// bind the fresh log through a replaced snapshot rather than
		// modifying the published one, and only now that the append
		// went through, a failed create must leave no trace
		ranges := m.state.ranges.Clone()
		ranges.Set(entry.Range, log)
		m.state = &shardingState{ranges: ranges, routing: m.state.routing}
	}

	m.metrics.RecordCreated()
	if m.metrics != nil {
		if id, ok := m.state.routing.IDByRange(entry.Range); ok {
			m.metrics.SetPartitionRecords(id, log.Count())
		}
	}

	return record, nil
}
