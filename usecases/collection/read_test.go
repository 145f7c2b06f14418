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
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaviate/partitiondb/entities/models"
	"github.com/weaviate/partitiondb/entities/partitionkey"
)

func TestTryReadItem(t *testing.T) {
	m := newTestManager(t)

	record, err := m.CreateItem(models.Document{"region": "eu-west"})
	require.Nil(t, err)

	t.Run("matching key and id", func(t *testing.T) {
		found, ok := m.TryReadItem(partitionkey.StringValue("eu-west"), record.ID())
		require.True(t, ok)
		assert.Equal(t, record.ID(), found.ID())
	})

	t.Run("unknown id", func(t *testing.T) {
		found, ok := m.TryReadItem(partitionkey.StringValue("eu-west"),
			strfmt.UUID("65a23c25-4e25-4248-85b3-1dfb0d21b3ee"))
		assert.False(t, ok)
		assert.Nil(t, found)
	})

	t.Run("key of a different record", func(t *testing.T) {
		found, ok := m.TryReadItem(partitionkey.StringValue("us-east"), record.ID())
		assert.False(t, ok)
		assert.Nil(t, found)
	})
}

func TestTryReadItemEmptyCollection(t *testing.T) {
	m := newTestManager(t)

	found, ok := m.TryReadItem(partitionkey.StringValue("eu-west"),
		strfmt.UUID("65a23c25-4e25-4248-85b3-1dfb0d21b3ee"))
	assert.False(t, ok)
	assert.Nil(t, found)
}

func TestTryReadItemHashCollision(t *testing.T) {
	m := newTestManager(t)

	// every key hashes into the same bucket, so both records share one
	// log and only the stored key value can tell them apart
	m.hasher = fixedHasher{hash: 7}

	first, err := m.CreateItem(models.Document{"region": "eu-west"})
	require.Nil(t, err)
	second, err := m.CreateItem(models.Document{"region": "us-east"})
	require.Nil(t, err)

	found, ok := m.TryReadItem(partitionkey.StringValue("eu-west"), first.ID())
	require.True(t, ok)
	assert.Equal(t, first.ID(), found.ID())

	// the id exists in the bucket, but it belongs to a different key
	_, ok = m.TryReadItem(partitionkey.StringValue("eu-west"), second.ID())
	assert.False(t, ok, "an id match without a key match must not resolve")

	_, ok = m.TryReadItem(partitionkey.StringValue("us-east"), second.ID())
	assert.True(t, ok)
}
