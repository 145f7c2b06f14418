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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaviate/partitiondb/entities/partitionkey"
)

func TestMurmur3HasherRegions(t *testing.T) {
	type test struct {
		name     string
		value    partitionkey.Value
		expected uint64
	}

	tests := []test{
		{name: "missing", value: partitionkey.MissingValue(), expected: regionMissing},
		{name: "null", value: partitionkey.NullValue(), expected: regionNull},
		{name: "bool", value: partitionkey.BoolValue(true), expected: regionBool},
		{name: "number", value: partitionkey.NumberValue(42), expected: regionNumber},
		{name: "string", value: partitionkey.StringValue("tenant-a"), expected: regionString},
	}

	hasher := NewMurmur3Hasher()

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h, err := hasher.Hash(test.value)
			require.Nil(t, err)
			assert.Equal(t, test.expected, h>>(64-regionBits),
				"hash %d landed outside its kind's region", h)
		})
	}
}

func TestMurmur3HasherDeterminism(t *testing.T) {
	hasher := NewMurmur3Hasher()

	first, err := hasher.Hash(partitionkey.StringValue("tenant-a"))
	require.Nil(t, err)
	second, err := hasher.Hash(partitionkey.StringValue("tenant-a"))
	require.Nil(t, err)
	assert.Equal(t, first, second)

	other, err := hasher.Hash(partitionkey.StringValue("tenant-b"))
	require.Nil(t, err)
	assert.NotEqual(t, first, other)
}

func TestMurmur3HasherCanonicalNumbers(t *testing.T) {
	hasher := NewMurmur3Hasher()

	asInt, err := hasher.Hash(partitionkey.NumberValue(2))
	require.Nil(t, err)
	asFloat, err := hasher.Hash(partitionkey.NumberValue(2.0))
	require.Nil(t, err)
	assert.Equal(t, asInt, asFloat, "2 and 2.0 must be one logical key")

	negZero, err := hasher.Hash(partitionkey.NumberValue(negativeZero()))
	require.Nil(t, err)
	zero, err := hasher.Hash(partitionkey.NumberValue(0))
	require.Nil(t, err)
	assert.Equal(t, zero, negZero, "0 and -0 must be one logical key")
}

func TestMurmur3HasherFixedPoints(t *testing.T) {
	hasher := NewMurmur3Hasher()

	missing1, err := hasher.Hash(partitionkey.MissingValue())
	require.Nil(t, err)
	missing2, err := hasher.Hash(partitionkey.MissingValue())
	require.Nil(t, err)
	assert.Equal(t, missing1, missing2, "all missing keys share one bucket")

	null, err := hasher.Hash(partitionkey.NullValue())
	require.Nil(t, err)
	assert.NotEqual(t, missing1, null, "missing and null must stay distinct")

	truthy, err := hasher.Hash(partitionkey.BoolValue(true))
	require.Nil(t, err)
	falsy, err := hasher.Hash(partitionkey.BoolValue(false))
	require.Nil(t, err)
	assert.NotEqual(t, truthy, falsy)
}

func negativeZero() float64 {
	z := 0.0
	return -z
}
