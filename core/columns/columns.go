/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Oferente Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package columns

import (
	"reflect"
	"strings"
)

// Type describes how a column's values are rendered.
type Type string

const (
	TypeText    Type = "text"
	TypeNumber  Type = "number"
	TypeDate    Type = "date"
	TypeBoolean Type = "boolean"
	TypeImage   Type = "image"
	TypeBadge   Type = "badge"
	TypeCustom  Type = "custom"
)

// Align is the horizontal alignment of a cell.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Column describes how to read and render one field of a row.
type Column[T any] struct {
	Key      string // may be a dotted path, e.g. "owner.name"
	Label    string
	Type     Type
	Sortable bool
	Width    string
	Align    Align

	// Format renders a resolved value. When nil the default formatting applies.
	Format func(value any, row T) string

	// Value is an optional typed accessor. When nil, Key is resolved as a path.
	Value func(row T) any
}

// Resolve returns the column's raw value for row.
func (c Column[T]) Resolve(row T) any {
	if c.Value != nil {
		return c.Value(row)
	}
	return ResolvePath(row, c.Key)
}

// EffectiveType returns the column type, defaulting to text.
func (c Column[T]) EffectiveType() Type {
	if c.Type == "" {
		return TypeText
	}
	return c.Type
}

// EffectiveAlign returns the column alignment, defaulting to left.
func (c Column[T]) EffectiveAlign() Align {
	if c.Align == "" {
		return AlignLeft
	}
	return c.Align
}

// ResolvePath descends into v following a dotted key. Maps are indexed by
// string key, structs by json tag or field name. Any missing intermediate
// yields nil.
func ResolvePath(v any, key string) any {
	if key == "" {
		return nil
	}
	cur := reflect.ValueOf(v)
	for _, part := range strings.Split(key, ".") {
		cur = indirect(cur)
		if !cur.IsValid() {
			return nil
		}
		switch cur.Kind() {
		case reflect.Map:
			if cur.Type().Key().Kind() != reflect.String {
				return nil
			}
			cur = cur.MapIndex(reflect.ValueOf(part).Convert(cur.Type().Key()))
		case reflect.Struct:
			cur = fieldByKey(cur, part)
		default:
			return nil
		}
		if !cur.IsValid() {
			return nil
		}
	}
	cur = indirect(cur)
	if !cur.IsValid() || !cur.CanInterface() {
		return nil
	}
	return cur.Interface()
}

// indirect unwraps interfaces and pointers. Nil pointers become the zero Value.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func fieldByKey(v reflect.Value, key string) reflect.Value {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag == key {
			return v.Field(i)
		}
	}
	if f, ok := t.FieldByName(key); ok && f.IsExported() {
		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			return reflect.Value{}
		}
		return fv
	}
	return reflect.Value{}
}
