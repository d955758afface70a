// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flatten

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Entry is a single flattened leaf: the dotted path to a scalar and its
// textual value.
type Entry struct {
	Path  string
	Value string
}

// Field is a named member reported by a [Flattenable] value.
type Field struct {
	Name  string
	Value any
}

// Flattenable is implemented by types that list their own members instead
// of relying on struct field traversal. The returned order is the order of
// the produced entries.
type Flattenable interface {
	FlattenFields() []Field
}

// Flatten walks v and returns one [Entry] per non-nil scalar leaf.
//
// Paths are built by joining member names with "." starting from prefix;
// with an empty prefix top-level members use their bare name. Slice and
// array elements are addressed as name[i]. Struct members are named by the
// `url` tag, then the `json` tag, then the Go field name; a "-" name skips
// the field and the omitempty option skips zero values.
//
// A scalar v with an empty prefix returns [ErrScalarRoot]. A nil v returns
// no entries and no error.
func Flatten(v any, prefix string) ([]Entry, error) {
	w := &walker{visiting: make(map[visitKey]struct{})}
	if err := w.walk(reflect.ValueOf(v), prefix); err != nil {
		return nil, err
	}
	return w.entries, nil
}

type visitKey struct {
	typ reflect.Type
	ptr uintptr
}

type walker struct {
	entries  []Entry
	visiting map[visitKey]struct{}
}

func (w *walker) walk(v reflect.Value, path string) error {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return w.walk(v.Elem(), path)
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		leave, err := w.enter(v, path)
		if err != nil {
			return err
		}
		defer leave()
		if ok, err := w.walkSpecial(v, path); ok {
			return err
		}
		return w.walk(v.Elem(), path)
	}

	if ok, err := w.walkSpecial(v, path); ok {
		return err
	}

	switch v.Kind() {
	case reflect.Struct:
		return w.walkStruct(v, path)
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		leave, err := w.enter(v, path)
		if err != nil {
			return err
		}
		defer leave()
		return w.walkMap(v, path)
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return nil
		}
		if s, ok := formatScalar(v); ok {
			return w.emit(path, s)
		}
		for i := 0; i < v.Len(); i++ {
			if err := w.walk(v.Index(i), path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
		return nil
	}

	if s, ok := formatScalar(v); ok {
		return w.emit(path, s)
	}
	return fmt.Errorf("%w: %s at %q", ErrUnsupportedType, v.Type(), path)
}

// enter marks a pointer or map as being on the current path.
func (w *walker) enter(v reflect.Value, path string) (func(), error) {
	key := visitKey{typ: v.Type(), ptr: v.Pointer()}
	if _, seen := w.visiting[key]; seen {
		return nil, fmt.Errorf("%w at %q", ErrCyclicValue, path)
	}
	w.visiting[key] = struct{}{}
	return func() { delete(w.visiting, key) }, nil
}

// walkSpecial handles values that render themselves: Flattenable, dates,
// text marshalers and non-struct Stringers (enums).
func (w *walker) walkSpecial(v reflect.Value, path string) (bool, error) {
	if !v.CanInterface() {
		return false, nil
	}

	switch x := v.Interface().(type) {
	case Flattenable:
		return true, w.walkFields(x.FlattenFields(), path)
	case time.Time:
		return true, w.emit(path, FormatTime(x))
	case *time.Time:
		return true, w.emit(path, FormatTime(*x))
	case encoding.TextMarshaler:
		text, err := x.MarshalText()
		if err != nil {
			return true, fmt.Errorf("marshal %q: %w", path, err)
		}
		return true, w.emit(path, string(text))
	case fmt.Stringer:
		if indirectKind(v) != reflect.Struct {
			return true, w.emit(path, x.String())
		}
	}

	if v.Kind() != reflect.Pointer && v.CanAddr() {
		return w.walkSpecial(v.Addr(), path)
	}
	return false, nil
}

func (w *walker) walkFields(fields []Field, path string) error {
	for _, f := range fields {
		if err := w.walk(reflect.ValueOf(f.Value), join(path, f.Name)); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) walkStruct(v reflect.Value, path string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, omitEmpty, named, skip := fieldName(sf)
		if skip {
			continue
		}
		fv := v.Field(i)

		if sf.Anonymous && !named {
			if inner, ok := embeddedStruct(fv); ok {
				if err := w.walkEmbedded(fv, inner, path); err != nil {
					return err
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if omitEmpty && fv.IsZero() {
			continue
		}
		if err := w.walk(fv, join(path, name)); err != nil {
			return err
		}
	}
	return nil
}

// walkEmbedded promotes the members of an embedded struct into path. An
// embedded pointer is on the current path while its members are visited.
func (w *walker) walkEmbedded(field, inner reflect.Value, path string) error {
	if field.Kind() == reflect.Pointer {
		leave, err := w.enter(field, path)
		if err != nil {
			return err
		}
		defer leave()
	}
	return w.walkStruct(inner, path)
}

func (w *walker) walkMap(v reflect.Value, path string) error {
	type member struct {
		name  string
		value reflect.Value
	}

	members := make([]member, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		name, err := mapKey(iter.Key())
		if err != nil {
			return fmt.Errorf("%w at %q", err, path)
		}
		members = append(members, member{name: name, value: iter.Value()})
	}
	sort.Slice(members, func(i, j int) bool { return members[i].name < members[j].name })

	for _, m := range members {
		if err := w.walk(m.value, join(path, m.name)); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) emit(path, value string) error {
	if path == "" {
		return ErrScalarRoot
	}
	w.entries = append(w.entries, Entry{Path: path, Value: value})
	return nil
}

func fieldName(sf reflect.StructField) (name string, omitEmpty, named, skip bool) {
	tag, ok := sf.Tag.Lookup("url")
	if !ok {
		tag = sf.Tag.Get("json")
	}
	if tag == "-" {
		return "", false, false, true
	}

	name, opts, _ := strings.Cut(tag, ",")
	for _, opt := range strings.Split(opts, ",") {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	if name != "" {
		return name, omitEmpty, true, false
	}
	return sf.Name, omitEmpty, false, false
}

func embeddedStruct(v reflect.Value) (reflect.Value, bool) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() || v.Type().Elem().Kind() != reflect.Struct {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct || v.Type() == reflect.TypeOf(time.Time{}) {
		return reflect.Value{}, false
	}
	return v, true
}

func mapKey(k reflect.Value) (string, error) {
	if k.CanInterface() {
		if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
			text, err := tm.MarshalText()
			if err != nil {
				return "", err
			}
			return string(text), nil
		}
	}
	switch k.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		s, _ := formatScalar(k)
		return s, nil
	}
	return "", fmt.Errorf("%w: map key %s", ErrUnsupportedType, k.Type())
}

func indirectKind(v reflect.Value) reflect.Kind {
	t := v.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind()
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
