// Package structpack implements the structured-access visitor from spec
// §4.5: a field-name-driven binding between a *value.Section and a
// caller-defined Go struct, using `ps:"name"` struct tags the way
// encoding/json uses `json:"name"` tags and the way the reflection-driven
// writers/readers in the vdl package (github.com/arloliu/portablestorage's
// retrieval pack includes it vendored under kryptco-kr) dispatch on
// reflect.Kind rather than a code-generated visitor per type.
//
// FromSection and ToSection support the same widening/narrowing integer
// semantics as the raw wire format: a struct field typed narrower or wider
// than the Value actually stored still binds, as long as the Value is some
// integer variant (signed or unsigned) whose value fits the field's type.
// Nested structs bind to
// nested Section values, slices bind to Array values (except []byte, which
// binds to a Blob directly), and maps with string keys bind to nested
// Section values. A field type implementing BytesMarshaler/
// BytesUnmarshaler is treated as an auxiliary scalar serialized as a Blob
// — see package psuuid for the motivating example.
package structpack

import (
	"reflect"
	"strings"
)

// BytesMarshaler is implemented by auxiliary value types that encode to a
// fixed or variable-length byte string, stored on the wire as a Blob.
type BytesMarshaler interface {
	MarshalPSBytes() ([]byte, error)
}

// BytesUnmarshaler is the decode counterpart of BytesMarshaler.
type BytesUnmarshaler interface {
	UnmarshalPSBytes([]byte) error
}

// fieldSpec is one struct field's resolved binding: its field index path
// and its wire name. Skipped fields get no fieldSpec at all.
type fieldSpec struct {
	index []int
	name  string
}

// tagName parses the `ps` struct tag, falling back to the Go field name.
// A tag of "-" skips the field entirely (tagName returns ok=false).
func tagName(f reflect.StructField) (string, bool) {
	tag, has := f.Tag.Lookup("ps")
	if !has {
		if f.PkgPath != "" && !f.Anonymous {
			return "", false // unexported, non-embedded field
		}

		return f.Name, true
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", false
	}
	if name == "" {
		name = f.Name
	}

	return name, true
}

// fieldSpecs enumerates a struct type's bindable fields in declaration
// order, descending into anonymous (embedded) struct fields so they
// behave like Go's own embedding-promotes-fields rule.
func fieldSpecs(t reflect.Type) []fieldSpec {
	var out []fieldSpec
	var walk func(t reflect.Type, prefix []int)
	walk = func(t reflect.Type, prefix []int) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			path := append(append([]int(nil), prefix...), i)

			if f.Anonymous {
				ft := f.Type
				for ft.Kind() == reflect.Ptr {
					ft = ft.Elem()
				}
				if ft.Kind() == reflect.Struct {
					if _, explicit := f.Tag.Lookup("ps"); !explicit {
						walk(ft, path)

						continue
					}
				}
			}

			name, ok := tagName(f)
			if !ok {
				continue
			}

			out = append(out, fieldSpec{index: path, name: name})
		}
	}
	walk(t, nil)

	return out
}
