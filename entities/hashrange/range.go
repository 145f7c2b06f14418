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

package hashrange

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Range is a contiguous, half-open interval of the uint64 hash space:
// the start is inclusive or unbounded, the end exclusive or unbounded.
// When an end is unbounded its bound value carries no meaning.
type Range struct {
	Min          uint64 `json:"min"`
	Max          uint64 `json:"max"`
	MinUnbounded bool   `json:"minUnbounded"`
	MaxUnbounded bool   `json:"maxUnbounded"`
}

// FullRange covers the entire hash space.
func FullRange() Range {
	return Range{MinUnbounded: true, MaxUnbounded: true}
}

func (r Range) Contains(h uint64) bool {
	if !r.MinUnbounded && h < r.Min {
		return false
	}

	if !r.MaxUnbounded && h >= r.Max {
		return false
	}

	return true
}

// Equal ignores the bound value of an unbounded end.
func (r Range) Equal(other Range) bool {
	if r.MinUnbounded != other.MinUnbounded || r.MaxUnbounded != other.MaxUnbounded {
		return false
	}

	if !r.MinUnbounded && r.Min != other.Min {
		return false
	}

	if !r.MaxUnbounded && r.Max != other.Max {
		return false
	}

	return true
}

func (r Range) Overlaps(other Range) bool {
	rBelowOther := other.MaxUnbounded || r.MinUnbounded || r.Min < other.Max
	otherBelowR := r.MaxUnbounded || other.MinUnbounded || other.Min < r.Max
	return rBelowOther && otherBelowR
}

// Validate rejects empty intervals. A range with at least one unbounded
// end can never be empty.
func (r Range) Validate() error {
	if !r.MinUnbounded && !r.MaxUnbounded && r.Min >= r.Max {
		return errors.Errorf("invalid range %s: min must be below max", r)
	}

	return nil
}

func (r Range) String() string {
	min := "-inf"
	if !r.MinUnbounded {
		min = strconv.FormatUint(r.Min, 10)
	}

	max := "+inf"
	if !r.MaxUnbounded {
		max = strconv.FormatUint(r.Max, 10)
	}

	return fmt.Sprintf("[%s, %s)", min, max)
}
