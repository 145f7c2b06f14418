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
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"github.com/spaolacci/murmur3"

	"github.com/weaviate/partitiondb/entities/partitionkey"
)

// KeyHasher maps logical partition-key values onto the uint64 hash
// space. The five value kinds must land in disjoint, deterministic
// regions: a missing key can never collide with an explicit null, a
// bool never with a number, and so on. Ordering over hashes is plain
// uint64 ordering.
type KeyHasher interface {
	Hash(v partitionkey.Value) (uint64, error)
}

const regionBits = 3

const payloadMask = 1<<(64-regionBits) - 1

// region tags, folded into the top bits of every hash, one per
// partition-key kind
const (
	regionMissing uint64 = iota
	regionNull
	regionBool
	regionNumber
	regionString
)

// Murmur3Hasher places murmur3 64bit hashes of the canonical value
// encoding into per-kind regions. Missing, null, and the two bools hash
// to fixed points, numbers hash their canonical float64 bits, strings
// their raw bytes.
type Murmur3Hasher struct{}

func NewMurmur3Hasher() *Murmur3Hasher {
	return &Murmur3Hasher{}
}

func (mh *Murmur3Hasher) Hash(v partitionkey.Value) (uint64, error) {
	switch v.Kind() {
	case partitionkey.KindMissing:
		return inRegion(regionMissing, 0), nil
	case partitionkey.KindNull:
		return inRegion(regionNull, 0), nil
	case partitionkey.KindBool:
		if v.AsBool() {
			return inRegion(regionBool, 1), nil
		}
		return inRegion(regionBool, 0), nil
	case partitionkey.KindNumber:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.AsNumber()))
		return inRegion(regionNumber, sum64(buf[:])), nil
	case partitionkey.KindString:
		return inRegion(regionString, sum64([]byte(v.AsString()))), nil
	default:
		return 0, errors.Errorf("unsupported partition key kind: %s", v.Kind())
	}
}

func sum64(in []byte) uint64 {
	h := murmur3.New64()
	h.Write(in)
	return h.Sum64()
}

func inRegion(region, payload uint64) uint64 {
	return region<<(64-regionBits) | payload&payloadMask
}
