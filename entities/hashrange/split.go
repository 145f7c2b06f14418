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
	"math/bits"

	"github.com/pkg/errors"
)

// EvenSplit cuts a range into the given number of contiguous, non-empty
// sub-ranges of near-equal width that exactly cover it. The first child
// inherits the parent's lower end, the last child the upper end,
// including unboundedness. Boundary arithmetic runs through 128-bit
// intermediates, so even the full hash space splits exactly.
//
// A range that is too narrow to produce the requested number of
// non-empty children cannot be split.
func EvenSplit(r Range, parts int) ([]Range, error) {
	if parts < 1 {
		return nil, errors.Errorf("cannot split %s into %d parts", r, parts)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	if parts == 1 {
		return []Range{r}, nil
	}

	var effMin, effMax uint64
	if !r.MinUnbounded {
		effMin = r.Min
	}
	if !r.MaxUnbounded {
		effMax = r.Max
	}

	// with an unbounded max the uint64 subtraction wraps to 2^64-effMin,
	// which is exactly the width; only the full space cannot be
	// represented and is handled separately below
	full := r.MinUnbounded && r.MaxUnbounded
	width := effMax - effMin
	if !full && width < uint64(parts) {
		return nil, errors.Errorf("cannot split %s into %d parts: range too narrow",
			r, parts)
	}

	bounds := make([]uint64, 0, parts-1)
	for i := 1; i < parts; i++ {
		var boundary uint64
		if full {
			// 2^64 * i / parts
			boundary, _ = bits.Div64(uint64(i), 0, uint64(parts))
		} else {
			hi, lo := bits.Mul64(width, uint64(i))
			offset, _ := bits.Div64(hi, lo, uint64(parts))
			boundary = effMin + offset
		}
		bounds = append(bounds, boundary)
	}

	out := make([]Range, parts)
	for i := range out {
		switch {
		case i == 0:
			out[i] = Range{Min: effMin, MinUnbounded: r.MinUnbounded, Max: bounds[0]}
		case i == parts-1:
			out[i] = Range{Min: bounds[i-1], Max: effMax, MaxUnbounded: r.MaxUnbounded}
		default:
			out[i] = Range{Min: bounds[i-1], Max: bounds[i]}
		}
	}

	return out, nil
}
