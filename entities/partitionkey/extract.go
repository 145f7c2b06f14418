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
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/weaviate/partitiondb/entities/models"
)

// Extract resolves the definition's key path against a document and
// classifies the leaf into a Value. A path that leads nowhere, at any
// depth, yields the missing sentinel, never an error: routing treats
// absent keys as one deterministic bucket. Only scalar leaves are
// supported, a container at the key path is a validation error.
//
// The definition is assumed validated at collection construction.
func Extract(doc models.Document, def Definition) (Value, error) {
	current := interface{}(doc)

	for _, field := range def.PathTokens() {
		next, ok := fieldOf(current, field)
		if !ok {
			return MissingValue(), nil
		}
		current = next
	}

	return classify(current)
}

// fieldOf steps one level into a document tree. Anything that is not an
// object cannot be stepped into.
func fieldOf(v interface{}, name string) (interface{}, bool) {
	switch typed := v.(type) {
	case models.Document:
		return typed.Field(name)
	case map[string]interface{}:
		value, ok := typed[name]
		return value, ok
	default:
		return nil, false
	}
}

func classify(v interface{}) (Value, error) {
	switch typed := v.(type) {
	case nil:
		return NullValue(), nil
	case string:
		return StringValue(typed), nil
	case bool:
		return BoolValue(typed), nil
	case json.Number:
		asFloat, err := typed.Float64()
		if err != nil {
			return Value{}, errors.Wrapf(err, "parse numeric partition key %q", typed.String())
		}
		return NumberValue(asFloat), nil
	case float64:
		return NumberValue(typed), nil
	case float32:
		return NumberValue(float64(typed)), nil
	case int:
		return NumberValue(float64(typed)), nil
	case int8:
		return NumberValue(float64(typed)), nil
	case int16:
		return NumberValue(float64(typed)), nil
	case int32:
		return NumberValue(float64(typed)), nil
	case int64:
		return NumberValue(float64(typed)), nil
	case uint:
		return NumberValue(float64(typed)), nil
	case uint8:
		return NumberValue(float64(typed)), nil
	case uint16:
		return NumberValue(float64(typed)), nil
	case uint32:
		return NumberValue(float64(typed)), nil
	case uint64:
		return NumberValue(float64(typed)), nil
	default:
		return Value{}, errors.Errorf("unsupported partition key kind: %T", v)
	}
}
