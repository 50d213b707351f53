package toml

import (
	"fmt"
	"reflect"
)

func decode(src tables, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer")
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("target must point to a struct, got %v", val.Kind())
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		key, ok := keyName(typ.Field(i))
		if !ok || !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			table, present := src[key]
			if !present {
				continue
			}
			if err := decodeTable(table, field, key); err != nil {
				return err
			}
			continue
		}

		if raw, present := src[""][key]; present {
			if err := setScalar(field, raw); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	return nil
}

func decodeTable(table map[string]any, val reflect.Value, name string) error {
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		key, ok := keyName(typ.Field(i))
		if !ok || !field.CanSet() {
			continue
		}
		raw, present := table[key]
		if !present {
			continue
		}
		if err := setScalar(field, raw); err != nil {
			return fmt.Errorf("%s.%s: %w", name, key, err)
		}
	}
	return nil
}

func setScalar(field reflect.Value, raw any) error {
	switch field.Kind() {
	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("cannot convert %T to string", raw)
		}
		field.SetString(s)

	case reflect.Bool:
		b, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("cannot convert %T to bool", raw)
		}
		field.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := raw.(int64)
		if !ok {
			return fmt.Errorf("cannot convert %T to int", raw)
		}
		if field.OverflowInt(i) {
			return fmt.Errorf("value %d overflows %v", i, field.Type())
		}
		field.SetInt(i)

	case reflect.Float32, reflect.Float64:
		switch n := raw.(type) {
		case float64:
			field.SetFloat(n)
		case int64:
			// Integer literals are accepted for float fields: speed = 1
			field.SetFloat(float64(n))
		default:
			return fmt.Errorf("cannot convert %T to float", raw)
		}

	default:
		return fmt.Errorf("unsupported field type %v", field.Type())
	}
	return nil
}
