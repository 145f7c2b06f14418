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
	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// ExtractFromJSON resolves the key path against a raw JSON document
// without unmarshalling it. Classification matches Extract exactly:
// an absent path (at any depth) is the missing sentinel, an explicit
// null is null, container leaves are a validation error.
func ExtractFromJSON(raw []byte, def Definition) (Value, error) {
	value, dataType, _, err := jsonparser.Get(raw, def.PathTokens()...)
	if err != nil {
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return MissingValue(), nil
		}
		return Value{}, errors.Wrap(err, "resolve partition key path")
	}

	switch dataType {
	case jsonparser.NotExist:
		return MissingValue(), nil
	case jsonparser.Null:
		return NullValue(), nil
	case jsonparser.Boolean:
		asBool, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return Value{}, errors.Wrap(err, "parse boolean partition key")
		}
		return BoolValue(asBool), nil
	case jsonparser.Number:
		asFloat, err := jsonparser.ParseFloat(value)
		if err != nil {
			return Value{}, errors.Wrap(err, "parse numeric partition key")
		}
		return NumberValue(asFloat), nil
	case jsonparser.String:
		asString, err := jsonparser.ParseString(value)
		if err != nil {
			return Value{}, errors.Wrap(err, "parse string partition key")
		}
		return StringValue(asString), nil
	default:
		return Value{}, errors.Errorf("unsupported partition key kind: %s", dataType)
	}
}
