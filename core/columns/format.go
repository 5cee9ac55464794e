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
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// DateLayout is the fixed day-month-year layout used for date cells.
const DateLayout = "02-01-2006"

// IsNil reports whether v is nil or a nil pointer, map, slice or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Stringify renders a raw value. Nil values and the zero time render as the
// empty string.
func Stringify(v any) string {
	if IsNil(v) {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.String()
	case fmt.Stringer:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return Stringify(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

// FormatCell renders the value of column for row. A column Format wins;
// date columns use DateLayout; everything else is stringified.
func FormatCell[T any](row T, column Column[T]) string {
	value := column.Resolve(row)
	if column.Format != nil {
		return column.Format(value, row)
	}
	if column.EffectiveType() == TypeDate && !IsNil(value) {
		if t, ok := AsTime(value); ok {
			return t.Format(DateLayout)
		}
	}
	return Stringify(value)
}

// AsTime interprets date-like values: time.Time, RFC 3339 / ISO date strings
// and Unix milliseconds.
func AsTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, !x.IsZero()
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, !x.IsZero()
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, x); err == nil {
				return t, true
			}
		}
	case int64:
		return time.UnixMilli(x).UTC(), true
	case int:
		return time.UnixMilli(int64(x)).UTC(), true
	case float64:
		return time.UnixMilli(int64(x)).UTC(), true
	}
	return time.Time{}, false
}
