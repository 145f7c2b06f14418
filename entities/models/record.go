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

package models

import (
	"encoding/json"

	"github.com/go-openapi/strfmt"
	"github.com/pkg/errors"
)

// Record is one entry of a partition's log. It is immutable after
// construction; the log hands out shared references freely.
//
// The sequence number is only unique within a single log instance, it
// restarts when a partition's log is replaced on a split. The id is the
// record's globally unique key component alongside the partition key.
type Record struct {
	sequenceNumber   int64
	creationTimeUnix int64
	id               strfmt.UUID
	payload          Document
}

// NewRecord validates and builds an immutable record. The sequence number
// and creation time must not be negative, id and payload must be set.
func NewRecord(sequenceNumber, creationTimeUnix int64, id strfmt.UUID,
	payload Document,
) (*Record, error) {
	if sequenceNumber < 0 {
		return nil, errors.Errorf("sequence number must not be negative, got: %d", sequenceNumber)
	}

	if creationTimeUnix < 0 {
		return nil, errors.Errorf("creation time must not be negative, got: %d", creationTimeUnix)
	}

	if id == "" {
		return nil, errors.New("id must be set")
	}

	if payload == nil {
		return nil, errors.New("payload must be set")
	}

	return &Record{
		sequenceNumber:   sequenceNumber,
		creationTimeUnix: creationTimeUnix,
		id:               id,
		payload:          payload,
	}, nil
}

func (r *Record) SequenceNumber() int64 {
	return r.sequenceNumber
}

// CreationTimeUnix is the wall-clock creation time in unix epoch
// milliseconds. It is informative, not strictly increasing under clock
// skew.
func (r *Record) CreationTimeUnix() int64 {
	return r.creationTimeUnix
}

func (r *Record) ID() strfmt.UUID {
	return r.id
}

// Payload returns the stored document. Callers must not modify it.
func (r *Record) Payload() Document {
	return r.payload
}

func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		SequenceNumber   int64       `json:"sequenceNumber"`
		CreationTimeUnix int64       `json:"creationTimeUnix"`
		ID               strfmt.UUID `json:"id"`
		Payload          Document    `json:"payload"`
	}{
		SequenceNumber:   r.sequenceNumber,
		CreationTimeUnix: r.creationTimeUnix,
		ID:               r.id,
		Payload:          r.payload,
	})
}
