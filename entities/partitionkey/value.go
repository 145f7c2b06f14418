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

package partitionkey

import (
	"strconv"
)

// Kind enumerates the value kinds a partition key can take. This is a
// closed set: routing code switches over it exhaustively and treats any
// other value as a defect.
type Kind uint8

const (
	// KindMissing marks a document that does not carry the configured key
	// path at all. It is distinct from an explicit null at that path.
	KindMissing Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is the logical partition-key value extracted from a document,
// a tagged variant over the five supported kinds. Values are comparable
// by logical content through Equal, never through hashing: two distinct
// values may share a hash bucket.
type Value struct {
	kind    Kind
	str     string
	num     float64
	boolean bool
}

func MissingValue() Value {
	return Value{kind: KindMissing}
}

func NullValue() Value {
	return Value{kind: KindNull}
}

func BoolValue(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// NumberValue canonicalizes to float64. Negative zero folds into zero so
// that 0 and -0 are one logical key.
func NumberValue(n float64) Value {
	if n == 0 {
		n = 0
	}
	return Value{kind: KindNumber, num: n}
}

func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

func (v Value) Kind() Kind {
	return v.kind
}

// AsString returns the string payload, valid only for KindString.
func (v Value) AsString() string {
	return v.str
}

// AsNumber returns the canonical numeric payload, valid only for KindNumber.
func (v Value) AsNumber() float64 {
	return v.num
}

// AsBool returns the boolean payload, valid only for KindBool.
func (v Value) AsBool() bool {
	return v.boolean
}

// Equal compares by kind and canonical payload. Missing equals missing,
// null equals null, kinds never compare equal across each other.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindMissing, KindNull:
		return true
	case KindBool:
		return v.boolean == other.boolean
	case KindNumber:
		return v.num == other.num
	case KindString:
		return v.str == other.str
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindMissing:
		return "missing"
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	default:
		return "unknown"
	}
}
