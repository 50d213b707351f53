package toml

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
)

// encode writes scalar fields first, then one [table] block per
// struct-typed field, preserving declaration order for readable configs.
func encode(val reflect.Value) ([]byte, error) {
	buf := new(bytes.Buffer)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		key, ok := keyName(typ.Field(i))
		if !ok || field.Kind() == reflect.Struct {
			continue
		}
		if err := writePair(buf, key, field); err != nil {
			return nil, err
		}
	}

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		key, ok := keyName(typ.Field(i))
		if !ok || field.Kind() != reflect.Struct {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(buf, "[%s]\n", key)
		if err := encodeTable(buf, field); err != nil {
			return nil, fmt.Errorf("table %s: %w", key, err)
		}
	}
	return buf.Bytes(), nil
}

func encodeTable(buf *bytes.Buffer, val reflect.Value) error {
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		key, ok := keyName(typ.Field(i))
		if !ok {
			continue
		}
		if field.Kind() == reflect.Struct {
			return fmt.Errorf("nested table %s not supported", key)
		}
		if err := writePair(buf, key, field); err != nil {
			return err
		}
	}
	return nil
}

func writePair(buf *bytes.Buffer, key string, field reflect.Value) error {
	switch field.Kind() {
	case reflect.String:
		fmt.Fprintf(buf, "%s = %s\n", key, strconv.Quote(field.String()))
	case reflect.Bool:
		fmt.Fprintf(buf, "%s = %t\n", key, field.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		fmt.Fprintf(buf, "%s = %d\n", key, field.Int())
	case reflect.Float32, reflect.Float64:
		fmt.Fprintf(buf, "%s = %s\n", key, strconv.FormatFloat(field.Float(), 'g', -1, 64))
	default:
		return fmt.Errorf("unsupported field type %v for key %s", field.Type(), key)
	}
	return nil
}
