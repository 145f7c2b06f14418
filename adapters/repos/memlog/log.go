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

package memlog

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/weaviate/partitiondb/entities/models"
)

// Log is the append-only record sequence of one partition. It owns
// sequence-number allocation: the first record of a log instance gets
// sequence number 1, every further one its predecessor's plus one.
// Insertion order is the definitive iteration order and equals sequence
// order.
//
// A Log is not synchronized, the owning collection serializes access.
type Log struct {
	records    []*models.Record
	timeSource timeSource
	newID      func() (strfmt.UUID, error)
}

type timeSource interface {
	Now() int64
}

func NewLog() *Log {
	return &Log{
		timeSource: defaultTimeSource{},
		newID:      generateUUID,
	}
}

// Append allocates the next sequence number, stamps the current time,
// assigns a fresh identifier, and stores the payload as an immutable
// record. The log stays untouched on any failure.
func (l *Log) Append(payload models.Document) (*models.Record, error) {
	id, err := l.newID()
	if err != nil {
		return nil, err
	}

	record, err := models.NewRecord(l.nextSequenceNumber(), l.timeSource.Now(),
		id, payload)
	if err != nil {
		return nil, err
	}

	l.records = append(l.records, record)
	return record, nil
}

func (l *Log) nextSequenceNumber() int64 {
	if len(l.records) == 0 {
		return 1
	}

	return l.records[len(l.records)-1].SequenceNumber() + 1
}

// Page returns up to pageSize records starting at offset
// pageIndex*pageSize, in log order. Pages outside the log yield an
// empty result, never an error.
func (l *Log) Page(pageIndex, pageSize int) []*models.Record {
	if pageIndex < 0 || pageSize <= 0 {
		return nil
	}

	offset := pageIndex * pageSize
	if offset/pageSize != pageIndex || offset >= len(l.records) {
		// out of range, including overflown offsets
		return nil
	}

	end := offset + pageSize
	if end > len(l.records) || end < offset {
		end = len(l.records)
	}

	return l.records[offset:end]
}

// Records returns the full log in order. Callers must treat the result
// as read-only.
func (l *Log) Records() []*models.Record {
	return l.records
}

func (l *Log) Count() int {
	return len(l.records)
}

func generateUUID() (strfmt.UUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("could not generate uuid v4: %w", err)
	}

	return strfmt.UUID(id.String()), nil
}

type defaultTimeSource struct{}

func (ts defaultTimeSource) Now() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}
