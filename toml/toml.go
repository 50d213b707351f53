// Package toml implements the small TOML subset used by configuration
// files: single-level tables, scalar values (string, integer, float,
// boolean) and comments. It is not a general TOML implementation; arrays,
// inline tables, dates and dotted keys are rejected with parse errors.
package toml

import (
	"fmt"
	"reflect"
)

// Unmarshal parses TOML data and stores the result in the value pointed to by v.
// v must be a pointer to a struct. Top-level keys map to struct fields,
// [table] headers map to struct-typed fields. Keys without a matching field
// are ignored so configs stay forward compatible.
func Unmarshal(data []byte, v any) error {
	tables, err := parse(data)
	if err != nil {
		return err
	}
	return decode(tables, v)
}

// Marshal returns the TOML encoding of v, which must be a struct or a
// non-nil pointer to one. Scalar fields are written first, then one [table]
// per struct-typed field, in declaration order. Fields tagged `toml:"-"`
// and unexported fields are skipped.
func Marshal(v any) ([]byte, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, fmt.Errorf("marshal: nil pointer")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("marshal: root must be a struct, got %v", val.Kind())
	}
	return encode(val)
}

// keyName resolves the TOML key for a struct field: the first element of the
// toml tag when present, the Go field name otherwise. A "-" tag excludes the
// field entirely.
func keyName(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("toml")
	if tag == "-" {
		return "", false
	}
	if tag != "" {
		for i := 0; i < len(tag); i++ {
			if tag[i] == ',' {
				return tag[:i], true
			}
		}
		return tag, true
	}
	return f.Name, true
}
