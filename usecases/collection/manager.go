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

// package collection provides the manager for a single partitioned
// collection. Manager routes documents into hash-range partitions,
// serves point reads and paged feed reads, and splits partitions while
// keeping every record reachable by its partition key.
package collection

import (
	"fmt"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/weaviate/partitiondb/adapters/repos/memlog"
	"github.com/weaviate/partitiondb/entities/hashrange"
	"github.com/weaviate/partitiondb/entities/partitionkey"
	"github.com/weaviate/partitiondb/usecases/sharding"
)

// Manager manages a single partitioned collection, all operations go
// through this Manager. Reads take the read lock and work on the
// current snapshot, writes take the write lock. There is no concurrent
// write path.
type Manager struct {
	mu    sync.RWMutex
	state *shardingState

	def      partitionkey.Definition
	hasher   sharding.KeyHasher
	splitter sharding.RangeSplitter
	logger   logrus.FieldLogger
	metrics  *Metrics
}

// shardingState is the pair of structures a split replaces: the range
// map routing hashes to logs and the routing table naming the ranges.
// Published states are never structurally modified, a change builds a
// new pair and installs it with a single pointer swap, so a reader
// holding the lock sees either the old pair or the new pair, never a
// mix.
type shardingState struct {
	ranges  *sharding.RangeMap[*memlog.Log]
	routing *sharding.RoutingTable
}

// NewManager builds a collection around a partition key definition. The
// collection starts out with a single partition, id 0, owning the full
// hash space. A nil logger disables logging, a nil registerer disables
// metrics.
func NewManager(def partitionkey.Definition, logger logrus.FieldLogger,
	reg prometheus.Registerer,
) (*Manager, error) {
	def.SetDefaults()
	if err := def.Validate(); err != nil {
		return nil, NewErrInvalidUserInput("invalid partition key definition: %v", err)
	}

	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	state, err := initialState()
	if err != nil {
		return nil, NewErrInternal("initial sharding state: %v", err)
	}

	m := &Manager{
		state:    state,
		def:      def,
		hasher:   sharding.NewMurmur3Hasher(),
		splitter: sharding.NewEvenSplitter(),
		logger:   logger,
		metrics:  NewMetrics(reg),
	}
	m.metrics.SetPartitions(state.routing.Len())
	for id := range state.routing.Partitions() {
		m.metrics.SetPartitionRecords(id, 0)
	}

	return m, nil
}

func initialState() (*shardingState, error) {
	// the log is bound lazily on the first write into the range
	ranges, err := sharding.NewRangeMap([]sharding.RangeEntry[*memlog.Log]{
		{Range: hashrange.FullRange()},
	})
	if err != nil {
		return nil, err
	}

	routing := sharding.NewRoutingTable()
	routing.Set(0, hashrange.FullRange())

	return &shardingState{ranges: ranges, routing: routing}, nil
}

// Definition returns the partition key definition the collection was
// created with. It never changes over the collection's lifetime.
func (m *Manager) Definition() partitionkey.Definition {
	return m.def
}

// logByRangeLocked resolves a routing-table range in the range map. The
// two structures are only ever replaced together, so a miss means the
// snapshot guarantee was broken and continuing would serve wrong data.
func (m *Manager) logByRangeLocked(partitionID uint64, r hashrange.Range) *memlog.Log {
	log, ok := m.state.ranges.ByRange(r)
	if !ok {
		panic(fmt.Sprintf("partition %d maps to range %s which the range map does not know",
			partitionID, r))
	}

	return log
}
