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
	"github.com/pkg/errors"

	"github.com/weaviate/partitiondb/entities/hashrange"
	"github.com/weaviate/partitiondb/entities/partitionkey"
)

// fixedHasher sends every key into the same bucket, which forces
// distinct keys into one shared log regardless of their values.
type fixedHasher struct {
	hash uint64
}

func (f fixedHasher) Hash(partitionkey.Value) (uint64, error) {
	return f.hash, nil
}

// failingSplitter refuses every split.
type failingSplitter struct{}

func (failingSplitter) SplitRange(hashrange.Range, int) ([]hashrange.Range, error) {
	return nil, errors.New("splitter out of order")
}

// miscountSplitter hands back the parent itself, one range where two
// were asked for.
type miscountSplitter struct{}

func (miscountSplitter) SplitRange(r hashrange.Range, parts int) ([]hashrange.Range, error) {
	return []hashrange.Range{r}, nil
}

// gapSplitter produces two children which do not tile the parent, the
// second child starts one above the first child's end.
type gapSplitter struct{}

func (gapSplitter) SplitRange(r hashrange.Range, parts int) ([]hashrange.Range, error) {
	out, err := hashrange.EvenSplit(r, parts)
	if err != nil {
		return nil, err
	}

	out[1].Min++
	return out, nil
}
