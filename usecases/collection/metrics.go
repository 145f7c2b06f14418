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
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics observes a single collection. All methods are safe to call on
// a nil receiver, which turns them into no-ops.
type Metrics struct {
	RecordsCreated   prometheus.Counter
	PartitionSplits  prometheus.Counter
	SplitDuration    prometheus.Histogram
	Partitions       prometheus.Gauge
	PartitionRecords *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}

	return &Metrics{
		RecordsCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "partitiondb",
			Subsystem: "collection",
			Name:      "records_created_total",
			Help:      "Number of records appended across all partitions, replays during splits included",
		}),
		PartitionSplits: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "partitiondb",
			Subsystem: "collection",
			Name:      "partition_splits_total",
			Help:      "Number of completed partition splits",
		}),
		SplitDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: "partitiondb",
			Subsystem: "collection",
			Name:      "split_duration_seconds",
			Help:      "Duration of partition splits, record migration included",
		}),
		Partitions: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: "partitiondb",
			Subsystem: "collection",
			Name:      "partitions",
			Help:      "Number of partitions currently addressable",
		}),
		PartitionRecords: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "partitiondb",
			Subsystem: "collection",
			Name:      "partition_records",
			Help:      "Number of records currently held, per partition",
		}, []string{"partition_id"}),
	}
}

func (m *Metrics) RecordCreated() {
	if m == nil {
		return
	}

	m.RecordsCreated.Inc()
}

func (m *Metrics) SplitCompleted(took time.Duration) {
	if m == nil {
		return
	}

	m.PartitionSplits.Inc()
	m.SplitDuration.Observe(took.Seconds())
}

func (m *Metrics) SetPartitions(count int) {
	if m == nil {
		return
	}

	m.Partitions.Set(float64(count))
}

func (m *Metrics) SetPartitionRecords(id uint64, count int) {
	if m == nil {
		return
	}

	m.PartitionRecords.WithLabelValues(strconv.FormatUint(id, 10)).Set(float64(count))
}

// DeletePartitionRecords drops the gauge of a retired partition so its
// id stops being reported.
func (m *Metrics) DeletePartitionRecords(id uint64) {
	if m == nil {
		return
	}

	m.PartitionRecords.DeleteLabelValues(strconv.FormatUint(id, 10))
}
