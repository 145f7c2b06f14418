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
	"github.com/weaviate/partitiondb/entities/models"
)

// TryReadFeed pages through one partition's records in insertion order.
// An unknown partition id is a regular not-found, ids retire when their
// partition is split. A page beyond the end is found and empty: the
// partition exists, there is just nothing there.
func (m *Manager) TryReadFeed(partitionID uint64, pageIndex, pageSize int) ([]*models.Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.state.routing.Get(partitionID)
	if !ok {
		return nil, false
	}

	log := m.logByRangeLocked(partitionID, r)
	if log == nil {
		// the partition exists but never received a write
		return []*models.Record{}, true
	}

	page := log.Page(pageIndex, pageSize)
	if page == nil {
		page = []*models.Record{}
	}

	return page, true
}
