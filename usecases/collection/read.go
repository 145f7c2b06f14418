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

	"github.com/go-openapi/strfmt"

	"github.com/weaviate/partitiondb/entities/models"
	"github.com/weaviate/partitiondb/entities/partitionkey"
)

// TryReadItem looks a record up by its partition key value and id.
// Absence is a regular outcome, not an error. A matching id alone is
// not enough: the stored record's own key must equal the requested one
// by value, since two distinct keys may share a hash bucket.
func (m *Manager) TryReadItem(pk partitionkey.Value, id strfmt.UUID) (*models.Record, bool) {
	hash, err := m.hasher.Hash(pk)
	if err != nil {
		// every Value constructor produces a hashable kind
		panic(fmt.Sprintf("hash partition key %s: %v", pk, err))
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	log := m.state.ranges.ByHash(hash)
	if log == nil {
		// the range never received a write
		return nil, false
	}

	for _, record := range log.Records() {
		if record.ID() != id {
			continue
		}

		stored, err := partitionkey.Extract(record.Payload(), m.def)
		if err != nil {
			// the payload passed extraction when it was written
			panic(fmt.Sprintf("stored payload of record %s no longer yields a partition key: %v",
				record.ID(), err))
		}

		if stored.Equal(pk) {
			return record, true
		}
	}

	return nil, false
}
