/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package local

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rulego/colexpr/types"
	"github.com/rulego/colexpr/utils/cast"
)

// 行内取值统一为: nil, bool, int64, float64, string, []byte, time.Time, types.Date,
// []interface{}, map[string]interface{}

const timestampLayout = "2006-01-02 15:04:05.999999999"

// normalize 把调用方传入的Go值转换为引擎内部表示
func normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case nil, bool, int64, float64, string, []byte, time.Time, types.Date:
		return x
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint:
		if uint64(x) <= math.MaxInt64 {
			return int64(x)
		}
		return float64(x)
	case uint64:
		if x <= math.MaxInt64 {
			return int64(x)
		}
		return float64(x)
	case float32:
		return float64(x)
	case *time.Time:
		if x == nil {
			return nil
		}
		return *x
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, _ := x.Float64()
		return f
	case types.Scalar:
		return normalize(x.Value())
	case types.TimeSlot:
		return x.ToStruct()
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, e := range x {
			out[k] = normalize(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	}
	if cast.IsCollection(v) {
		items, err := cast.ToSliceE(v)
		if err == nil {
			return normalize(items)
		}
	}
	return v
}

func isNumber(v interface{}) bool {
	switch v.(type) {
	case int64, float64:
		return true
	}
	return false
}

func toFloat(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int64:
		return float64(x), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(x), 64)
	}
	return cast.ToFloat64E(v)
}

func toInt(v interface{}) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(x), 10, 64)
	}
	return cast.ToInt64E(v)
}

func toBool(v interface{}) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case int64:
		return x != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "t", "yes", "y", "1":
			return true, nil
		case "false", "f", "no", "n", "0":
			return false, nil
		}
		return false, fmt.Errorf("invalid boolean %q", x)
	}
	return cast.ToBoolE(v)
}

// toText 值的字符串形式，与SQL中cast(x as string)一致
func toText(v interface{}) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case float64:
		return types.FloatScalar(x).SQL(), nil
	case time.Time:
		return x.Format(timestampLayout), nil
	case types.Date:
		return x.String(), nil
	case []interface{}:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = textOrNull(e)
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case map[string]interface{}:
		keys := sortedKeys(x)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + " -> " + textOrNull(x[k])
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	}
	return cast.ToStringE(v)
}

func textOrNull(v interface{}) string {
	if v == nil {
		return "null"
	}
	s, err := toText(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

func toBytes(v interface{}) ([]byte, error) {
	if b, ok := v.([]byte); ok {
		return b, nil
	}
	s, err := toText(v)
	return []byte(s), err
}

var timeLayouts = []string{
	time.RFC3339Nano,
	timestampLayout,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

func toTime(v interface{}, loc *time.Location) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case types.Date:
		return time.Date(x.Year, x.Month, x.Day, 0, 0, 0, 0, loc), nil
	case int64:
		return time.Unix(x, 0).In(loc), nil
	case float64:
		t, err := cast.ToTimeE(x)
		return t.In(loc), err
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range timeLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("invalid timestamp %q", x)
	}
	return cast.ToTimeE(v)
}

func toDate(v interface{}, loc *time.Location) (types.Date, error) {
	if d, ok := v.(types.Date); ok {
		return d, nil
	}
	t, err := toTime(v, loc)
	if err != nil {
		return types.Date{}, err
	}
	return types.NewDate(t.In(loc)), nil
}

func toList(v interface{}) ([]interface{}, error) {
	if l, ok := v.([]interface{}); ok {
		return l, nil
	}
	items, err := cast.ToSliceE(v)
	if err != nil {
		return nil, err
	}
	return normalize(items).([]interface{}), nil
}

// isContainer 值（解引用后）是否为给定种类之一，[]byte不算
func isContainer(v interface{}, kinds ...reflect.Kind) bool {
	if _, ok := v.([]byte); ok || v == nil {
		return false
	}
	k := reflect.Indirect(reflect.ValueOf(v)).Kind()
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func toMap(v interface{}) (map[string]interface{}, error) {
	if m, ok := v.(map[string]interface{}); ok {
		return m, nil
	}
	return nil, fmt.Errorf("expected a map or struct, got %T", v)
}

// compare 比较两个非空值，数值之间可以跨整数/浮点比较
func compare(a, b interface{}) (int, error) {
	if isNumber(a) && isNumber(b) {
		if x, ok := a.(int64); ok {
			if y, ok := b.(int64); ok {
				return cmpOrdered(x, y), nil
			}
		}
		x, _ := toFloat(a)
		y, _ := toFloat(b)
		return cmpFloat(x, y), nil
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), nil
		}
	case bool:
		if y, ok := b.(bool); ok {
			return cmpOrdered(boolRank(x), boolRank(y)), nil
		}
	case []byte:
		if y, ok := b.([]byte); ok {
			return strings.Compare(string(x), string(y)), nil
		}
	case time.Time, types.Date:
		ta, err := toTime(a, time.UTC)
		if err != nil {
			return 0, err
		}
		tb, err := toTime(b, time.UTC)
		if err != nil {
			return 0, err
		}
		return ta.Compare(tb), nil
	}
	return 0, fmt.Errorf("cannot compare %T with %T", a, b)
}

// cmpFloat 与SQL一致：NaN大于任何其他值，且NaN等于NaN
func cmpFloat(x, y float64) int {
	switch {
	case math.IsNaN(x) && math.IsNaN(y):
		return 0
	case math.IsNaN(x):
		return 1
	case math.IsNaN(y):
		return -1
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func cmpOrdered[T int64 | string](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func boolRank(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// equal 空值与任何值都不相等
func equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return false
	}
	switch x := a.(type) {
	case []interface{}:
		y, ok := b.([]interface{})
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !equal(x[i], y[i]) && !(x[i] == nil && y[i] == nil) {
				return false
			}
		}
		return true
	case map[string]interface{}:
		y, ok := b.(map[string]interface{})
		if !ok || len(x) != len(y) {
			return false
		}
		for k, e := range x {
			o, ok := y[k]
			if !ok || (!equal(e, o) && !(e == nil && o == nil)) {
				return false
			}
		}
		return true
	}
	c, err := compare(a, b)
	return err == nil && c == 0
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
