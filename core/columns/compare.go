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
	"cmp"
	"reflect"
	"strings"
	"time"
)

// CompareValues compares two resolved cell values.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Nil values are larger than any non-nil value. Numbers compare numerically
// across kinds, times chronologically, bools false before true. Values of
// mismatched kinds fall back to comparing their string forms.
func CompareValues(a, b any) int {
	ra, rb := indirect(reflect.ValueOf(a)), indirect(reflect.ValueOf(b))
	aNil, bNil := !ra.IsValid(), !rb.IsValid()
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return 1
	case bNil:
		return -1
	}

	if ra.Type() == timeType && rb.Type() == timeType {
		return ra.Interface().(time.Time).Compare(rb.Interface().(time.Time))
	}
	if fa, ok := asFloat(ra); ok {
		if fb, ok := asFloat(rb); ok {
			return cmp.Compare(fa, fb)
		}
	}
	if ra.Kind() == reflect.String && rb.Kind() == reflect.String {
		return strings.Compare(ra.String(), rb.String())
	}
	if ra.Kind() == reflect.Bool && rb.Kind() == reflect.Bool {
		return compareBools(ra.Bool(), rb.Bool())
	}
	return strings.Compare(Stringify(a), Stringify(b))
}

var timeType = reflect.TypeOf(time.Time{})

func asFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

func compareBools(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}
