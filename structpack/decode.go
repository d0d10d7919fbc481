package structpack

import (
	"reflect"

	"github.com/arloliu/portablestorage/pserr"
	"github.com/arloliu/portablestorage/value"
	"github.com/arloliu/portablestorage/wire"
)

// config holds FromSection's options.
type config struct {
	allowUnknown bool
}

// Option configures FromSection.
type Option func(*config)

// WithUnknownFields controls whether Section entries with no matching
// struct field are tolerated (the default) or rejected with a
// pserr.Custom error. Spec §4.5: "unknown keys are surfaced to the
// visitor, which may accept or reject them per the target record's
// policy" — the caller's policy is this option.
func WithUnknownFields(allow bool) Option {
	return func(c *config) { c.allowUnknown = allow }
}

// FromSection populates dst, which must be a non-nil pointer to a struct
// or to a string-keyed map (e.g. *map[string]any), from s's entries.
func FromSection(s *value.Section, dst any, opts ...Option) error {
	cfg := config{allowUnknown: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return pserr.Custom("structpack: FromSection requires a non-nil pointer, got %s", rv.Type())
	}
	elem := rv.Elem()

	switch elem.Kind() {
	case reflect.Struct:
		return sectionToStruct(s, elem, cfg)
	case reflect.Map:
		return sectionToMap(s, elem, cfg)
	default:
		return pserr.Custom("structpack: FromSection target must be a struct or map, got %s", elem.Kind())
	}
}

func sectionToStruct(s *value.Section, rv reflect.Value, cfg config) error {
	specs := fieldSpecs(rv.Type())
	matched := make(map[string]bool, len(specs))

	for _, fs := range specs {
		v, ok := s.Get(fs.name)
		if !ok {
			continue
		}
		matched[fs.name] = true

		fv := rv.FieldByIndex(fs.index)
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				fv.Set(reflect.New(fv.Type().Elem()))
			}
			fv = fv.Elem()
		}

		if err := decodeValue(v, fv, cfg); err != nil {
			return pserr.Custom("field %q: %v", fs.name, err)
		}
	}

	if !cfg.allowUnknown {
		for name := range s.All() {
			if !matched[name] {
				return pserr.Custom("unknown field %q", name)
			}
		}
	}

	return nil
}

// sectionToMap populates fv, a string-keyed map, from s's entries. Used both
// as FromSection's top-level map target and for nested map-typed struct
// fields (decodeValue's reflect.Map case).
func sectionToMap(s *value.Section, fv reflect.Value, cfg config) error {
	if fv.Type().Key().Kind() != reflect.String {
		return pserr.Custom("unsupported map key type %s", fv.Type().Key())
	}

	out := reflect.MakeMapWithSize(fv.Type(), s.Len())
	for name, ev := range s.All() {
		elem := reflect.New(fv.Type().Elem()).Elem()
		if err := decodeValue(ev, elem, cfg); err != nil {
			return pserr.Custom("field %q: %v", name, err)
		}
		out.SetMapIndex(reflect.ValueOf(name), elem)
	}
	fv.Set(out)

	return nil
}

func decodeValue(v value.Value, fv reflect.Value, cfg config) error {
	if fv.CanAddr() {
		if u, ok := fv.Addr().Interface().(BytesUnmarshaler); ok {
			b, ok := v.AsBlob()
			if !ok {
				return pserr.Custom("expected blob for auxiliary type, got %s", v.Tag())
			}

			return u.UnmarshalPSBytes(b)
		}
	}

	switch fv.Kind() {
	case reflect.Bool:
		b, ok := v.AsBool()
		if !ok {
			return pserr.Custom("expected bool, got %s", v.Tag())
		}
		fv.SetBool(b)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int, reflect.Int64:
		n, ok := v.AsInt64Widened()
		if !ok {
			u, uok := v.AsUint64Widened()
			if !uok {
				return pserr.Custom("expected integer, got %s", v.Tag())
			}
			if u > uint64(1<<63-1) {
				return pserr.Custom("value %d overflows %s", u, fv.Kind())
			}
			n = int64(u)
		}
		if fv.OverflowInt(n) {
			return pserr.Custom("value %d overflows %s", n, fv.Kind())
		}
		fv.SetInt(n)
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint, reflect.Uint64, reflect.Uintptr:
		n, ok := v.AsUint64Widened()
		if !ok {
			s, sok := v.AsInt64Widened()
			if !sok {
				return pserr.Custom("expected integer, got %s", v.Tag())
			}
			if s < 0 {
				return pserr.Custom("value %d overflows %s", s, fv.Kind())
			}
			n = uint64(s)
		}
		if fv.OverflowUint(n) {
			return pserr.Custom("value %d overflows %s", n, fv.Kind())
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, ok := v.AsDouble()
		if !ok {
			return pserr.Custom("expected double, got %s", v.Tag())
		}
		fv.SetFloat(f)
	case reflect.String:
		b, ok := v.AsBlob()
		if !ok {
			return pserr.Custom("expected blob for string field, got %s", v.Tag())
		}
		fv.SetString(string(b))
	case reflect.Slice:
		if fv.Type().Elem().Kind() == reflect.Uint8 {
			b, ok := v.AsBlob()
			if !ok {
				return pserr.Custom("expected blob, got %s", v.Tag())
			}
			fv.SetBytes(append([]byte(nil), b...))

			return nil
		}

		arr, ok := v.AsArray()
		if !ok {
			return pserr.Custom("expected array, got %s", v.Tag())
		}
		out := reflect.MakeSlice(fv.Type(), 0, arr.Len())
		for ev := range arr.All() {
			elem := reflect.New(fv.Type().Elem()).Elem()
			if err := decodeValue(ev, elem, cfg); err != nil {
				return err
			}
			out = reflect.Append(out, elem)
		}
		fv.Set(out)
	case reflect.Map:
		sec, ok := v.AsSection()
		if !ok {
			return pserr.Custom("expected section for map field, got %s", v.Tag())
		}

		return sectionToMap(sec, fv, cfg)
	case reflect.Struct:
		sec, ok := v.AsSection()
		if !ok {
			return pserr.Custom("expected section, got %s", v.Tag())
		}

		return sectionToStruct(sec, fv, cfg)
	case reflect.Interface:
		if fv.NumMethod() != 0 {
			return pserr.Custom("unsupported interface field type %s", fv.Type())
		}
		x, err := decodeAny(v)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(x))
	default:
		return pserr.Custom("unsupported field kind %s", fv.Kind())
	}

	return nil
}

// decodeAny converts v to a plain Go value for a map[string]any (or other
// empty-interface) target, where there is no static Go type to decode
// against. Widths follow AsInt64Widened/AsUint64Widened's widest case:
// every integer Value becomes an int64 or uint64 regardless of its wire
// width, since an interface{} field has no narrower type to check against.
func decodeAny(v value.Value) (any, error) {
	switch v.Tag() {
	case wire.TagBool:
		b, _ := v.AsBool()

		return b, nil
	case wire.TagInt8, wire.TagInt16, wire.TagInt32, wire.TagInt64:
		n, _ := v.AsInt64Widened()

		return n, nil
	case wire.TagUint8, wire.TagUint16, wire.TagUint32, wire.TagUint64:
		n, _ := v.AsUint64Widened()

		return n, nil
	case wire.TagDouble:
		f, _ := v.AsDouble()

		return f, nil
	case wire.TagBlob:
		b, _ := v.AsBlob()

		return append([]byte(nil), b...), nil
	case wire.TagArray:
		arr, _ := v.AsArray()
		out := make([]any, 0, arr.Len())
		for ev := range arr.All() {
			x, err := decodeAny(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, x)
		}

		return out, nil
	case wire.TagSection:
		sec, _ := v.AsSection()
		out := make(map[string]any, sec.Len())
		for name, ev := range sec.All() {
			x, err := decodeAny(ev)
			if err != nil {
				return nil, err
			}
			out[name] = x
		}

		return out, nil
	default:
		return nil, pserr.Custom("unsupported value tag %s", v.Tag())
	}
}
