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
	"github.com/weaviate/partitiondb/entities/hashrange"
)

// RangeSplitter computes the sub-ranges that replace a parent range on
// a partition split. Implementations must return exactly parts
// non-overlapping sub-ranges that cover the parent, or an error when
// the range cannot be split, in which case the split must leave no
// trace.
type RangeSplitter interface {
	SplitRange(r hashrange.Range, parts int) ([]hashrange.Range, error)
}

// EvenSplitter cuts ranges into near-equal-width parts.
type EvenSplitter struct{}

func NewEvenSplitter() *EvenSplitter {
	return &EvenSplitter{}
}

func (es *EvenSplitter) SplitRange(r hashrange.Range, parts int) ([]hashrange.Range, error) {
	return hashrange.EvenSplit(r, parts)
}
