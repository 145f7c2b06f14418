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

// Document is the generic tree-structured payload stored in a collection.
// It follows the encoding/json conventions: nested objects are
// map[string]interface{}, numbers may be any Go numeric type or
// json.Number, explicit nulls are untyped nil.
//
// A Document must be treated as read-only once handed to a collection.
type Document map[string]interface{}

// Field looks up a top-level field by name. The second return value
// distinguishes an absent field from one that is present with a nil value.
func (d Document) Field(name string) (interface{}, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d[name]
	return v, ok
}
