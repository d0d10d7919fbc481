package structpack

import (
	"reflect"

	"github.com/arloliu/portablestorage/pserr"
	"github.com/arloliu/portablestorage/value"
)

// ToSection builds a *value.Section from src, which must be a struct or a
// pointer to one. Field names are taken from `ps:"name"` tags, falling
// back to the Go field name.
func ToSection(src any) (*value.Section, error) {
	rv := reflect.ValueOf(src)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, pserr.Custom("structpack: ToSection given a nil %s", rv.Type())
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, pserr.Custom("structpack: ToSection requires a struct, got %s", rv.Kind())
	}

	return structToSection(rv)
}

func structToSection(rv reflect.Value) (*value.Section, error) {
	sec := value.NewSection()
	for _, fs := range fieldSpecs(rv.Type()) {
		fv := rv.FieldByIndex(fs.index)

		v, skip, err := encodeValue(fv)
		if err != nil {
			return nil, pserr.Custom("structpack: field %q: %v", fs.name, err)
		}
		if skip {
			continue
		}

		if err := sec.Insert(fs.name, v); err != nil {
			return nil, err
		}
	}

	return sec, nil
}

// encodeValue converts a single reflect.Value into a Value. skip is true
// for a nil pointer/interface field, which is simply omitted from the
// Section (the wire format has no null; omission is the encoding of
// absence).
func encodeValue(rv reflect.Value) (v value.Value, skip bool, err error) {
	if m, ok := marshaler(rv); ok {
		b, err := m.MarshalPSBytes()
		if err != nil {
			return value.Value{}, false, err
		}

		return value.Blob(b), false, nil
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return value.Value{}, true, nil
		}

		return encodeValue(rv.Elem())
	case reflect.Bool:
		return value.Bool(rv.Bool()), false, nil
	case reflect.Int8:
		return value.Int8(int8(rv.Int())), false, nil
	case reflect.Int16:
		return value.Int16(int16(rv.Int())), false, nil
	case reflect.Int32:
		return value.Int32(int32(rv.Int())), false, nil
	case reflect.Int, reflect.Int64:
		return value.Int64(rv.Int()), false, nil
	case reflect.Uint8:
		return value.Uint8(uint8(rv.Uint())), false, nil
	case reflect.Uint16:
		return value.Uint16(uint16(rv.Uint())), false, nil
	case reflect.Uint32:
		return value.Uint32(uint32(rv.Uint())), false, nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return value.Uint64(rv.Uint()), false, nil
	case reflect.Float32, reflect.Float64:
		return value.Double(rv.Float()), false, nil
	case reflect.String:
		return value.Blob([]byte(rv.String())), false, nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return value.Blob(append([]byte(nil), rv.Bytes()...)), false, nil
		}

		arr := value.NewArray()
		for i := 0; i < rv.Len(); i++ {
			ev, skip, err := encodeValue(rv.Index(i))
			if err != nil {
				return value.Value{}, false, err
			}
			if skip {
				continue
			}
			if err := arr.Push(ev); err != nil {
				return value.Value{}, false, err
			}
		}

		return value.Arr(arr), false, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return value.Value{}, false, pserr.Custom("unsupported map key type %s", rv.Type().Key())
		}

		sec := value.NewSection()
		iter := rv.MapRange()
		for iter.Next() {
			ev, skip, err := encodeValue(iter.Value())
			if err != nil {
				return value.Value{}, false, err
			}
			if skip {
				continue
			}
			if err := sec.Insert(iter.Key().String(), ev); err != nil {
				return value.Value{}, false, err
			}
		}

		return value.Sec(sec), false, nil
	case reflect.Struct:
		sec, err := structToSection(rv)
		if err != nil {
			return value.Value{}, false, err
		}

		return value.Sec(sec), false, nil
	default:
		return value.Value{}, false, pserr.Custom("unsupported field kind %s", rv.Kind())
	}
}

func marshaler(rv reflect.Value) (BytesMarshaler, bool) {
	if rv.CanAddr() {
		if m, ok := rv.Addr().Interface().(BytesMarshaler); ok {
			return m, true
		}
	}
	if rv.CanInterface() {
		if m, ok := rv.Interface().(BytesMarshaler); ok {
			return m, true
		}
	}

	return nil, false
}
