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
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultKind is the only partitioning kind supported so far.
	DefaultKind = "hash"

	// DefaultVersion is the only hash scheme version supported so far.
	DefaultVersion = 1

	// DefaultPath is assumed when a definition does not name a key path.
	DefaultPath = "/_id"
)

// Definition describes how a collection derives the partition key from a
// document: the partitioning kind, the hash scheme version, and the
// slash-delimited path of the key field. It is immutable for the lifetime
// of its collection.
type Definition struct {
	Kind    string   `json:"kind" yaml:"kind"`
	Version int      `json:"version" yaml:"version"`
	Paths   []string `json:"paths" yaml:"paths"`
}

// ParseDefinition builds a Definition from a generic map representation,
// such as a parsed config file section. Absent fields fall back to the
// defaults, present fields are type-checked and validated.
func ParseDefinition(input interface{}) (Definition, error) {
	def := Definition{}
	def.SetDefaults()

	if input == nil {
		return def, nil
	}

	asMap, ok := input.(map[string]interface{})
	if !ok || asMap == nil {
		return def, errors.Errorf("input must be a non-nil map")
	}

	if err := optionalStringFromMap(asMap, "kind", func(v string) {
		def.Kind = v
	}); err != nil {
		return def, err
	}

	if err := optionalIntFromMap(asMap, "version", func(v int) {
		def.Version = v
	}); err != nil {
		return def, err
	}

	if err := optionalStringSliceFromMap(asMap, "paths", func(v []string) {
		def.Paths = v
	}); err != nil {
		return def, err
	}

	if err := def.Validate(); err != nil {
		return def, err
	}

	return def, nil
}

// SetDefaults fills every unset field with its default. ParseDefinition
// applies it automatically, directly constructed definitions should call
// it before Validate.
func (d *Definition) SetDefaults() {
	if d.Kind == "" {
		d.Kind = DefaultKind
	}

	if d.Version == 0 {
		d.Version = DefaultVersion
	}

	if len(d.Paths) == 0 {
		d.Paths = []string{DefaultPath}
	}
}

// Validate checks the definition shape. Only single-path hash
// partitioning with the current scheme version is supported.
func (d Definition) Validate() error {
	if d.Kind != DefaultKind {
		return errors.Errorf("partitioning only supported with kind 'hash' "+
			"for now, got: %s", d.Kind)
	}

	if d.Version != DefaultVersion {
		return errors.Errorf("partitioning only supported with key version %d "+
			"for now, got: %d", DefaultVersion, d.Version)
	}

	if len(d.Paths) != 1 {
		return errors.Errorf("hash partitioning requires exactly one key path, "+
			"got: %d", len(d.Paths))
	}

	path := d.Paths[0]
	if !strings.HasPrefix(path, "/") {
		return errors.Errorf("key path must start with '/', got: %s", path)
	}

	for _, token := range strings.Split(path[1:], "/") {
		if token == "" {
			return errors.Errorf("key path must not contain empty segments, "+
				"got: %s", path)
		}
	}

	return nil
}

// PathTokens returns the key path split into its field tokens, e.g.
// "/user/region" into ["user", "region"]. It assumes a validated
// definition and returns nil on a malformed one.
func (d Definition) PathTokens() []string {
	if len(d.Paths) != 1 || !strings.HasPrefix(d.Paths[0], "/") {
		return nil
	}

	return strings.Split(d.Paths[0][1:], "/")
}

func optionalIntFromMap(in map[string]interface{}, name string,
	setFn func(v int),
) error {
	value, ok := in[name]
	if !ok {
		return nil
	}

	var asInt64 int64
	var err error

	// depending on whether the map was parsed from disk or from an API
	// payload, numbers may be represented slightly differently
	switch typed := value.(type) {
	case json.Number:
		asInt64, err = typed.Int64()
	case int:
		asInt64 = int64(typed)
	case float64:
		asInt64 = int64(typed)
	default:
		return errors.Errorf("%s must be a number, got: %T", name, value)
	}
	if err != nil {
		return errors.Wrapf(err, "%s", name)
	}

	setFn(int(asInt64))
	return nil
}

func optionalStringFromMap(in map[string]interface{}, name string,
	setFn func(v string),
) error {
	value, ok := in[name]
	if !ok {
		return nil
	}

	asString, ok := value.(string)
	if !ok {
		return errors.Errorf("%s must be a string, got: %T", name, value)
	}

	setFn(asString)
	return nil
}

func optionalStringSliceFromMap(in map[string]interface{}, name string,
	setFn func(v []string),
) error {
	value, ok := in[name]
	if !ok {
		return nil
	}

	switch typed := value.(type) {
	case []string:
		setFn(typed)
	case []interface{}:
		out := make([]string, len(typed))
		for i, elem := range typed {
			asString, ok := elem.(string)
			if !ok {
				return errors.Errorf("%s[%d] must be a string, got: %T", name, i, elem)
			}
			out[i] = asString
		}
		setFn(out)
	default:
		return errors.Errorf("%s must be a list of strings, got: %T", name, value)
	}

	return nil
}
