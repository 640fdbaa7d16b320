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

// Package options turns caller supplied option mappings into the canonical
// string-keyed, string-valued form that format functions hand to the engine.
package options

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/rulego/colexpr/expr"
	"github.com/rulego/colexpr/types"
	"github.com/rulego/colexpr/utils/cast"
)

// Pair is one entry of an ordered options list
type Pair struct {
	Key   string
	Value interface{}
}

// P is shorthand for Pair{key, value}
func P(key string, value interface{}) Pair {
	return Pair{Key: key, Value: value}
}

// Serialize converts in into an OptionsMap.
//
// Supported inputs: types.OptionsMap, []Pair (order kept), and any map with
// string keys (keys sorted). Booleans become "true"/"false", times RFC 3339,
// everything else its canonical string form. Nil values are dropped.
func Serialize(in interface{}) (types.OptionsMap, error) {
	out := types.NewOptionsMap()
	switch v := in.(type) {
	case nil:
		return out, nil
	case types.OptionsMap:
		return v, nil
	case []Pair:
		for _, p := range v {
			var err error
			if out, err = add(out, p.Key, p.Value); err != nil {
				return types.OptionsMap{}, err
			}
		}
		return out, nil
	case map[string]string:
		for _, k := range sortedKeys(v) {
			out = out.With(k, v[k])
		}
		return out, nil
	}

	rv := reflect.ValueOf(in)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return types.OptionsMap{}, &types.InvalidArgumentError{
			Message: fmt.Sprintf("options must be a mapping with string keys, got %T", in),
		}
	}
	keys := make([]string, 0, rv.Len())
	values := make(map[string]interface{}, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().String()
		keys = append(keys, k)
		values[k] = iter.Value().Interface()
	}
	sort.Strings(keys)
	for _, k := range keys {
		var err error
		if out, err = add(out, k, values[k]); err != nil {
			return types.OptionsMap{}, err
		}
	}
	return out, nil
}

// MustSerialize is like Serialize but panics on error
func MustSerialize(in interface{}) types.OptionsMap {
	m, err := Serialize(in)
	if err != nil {
		panic(err)
	}
	return m
}

// IsOptions reports whether Serialize accepts v as a mapping
func IsOptions(v interface{}) bool {
	switch v.(type) {
	case types.OptionsMap, []Pair:
		return true
	case nil:
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

func add(m types.OptionsMap, key string, value interface{}) (types.OptionsMap, error) {
	if value == nil {
		return m, nil
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return m, nil
	}
	var s string
	var err error
	switch f := value.(type) {
	case float64:
		// 浮点数保留小数点：1.0 -> "1.0"
		s = types.FloatScalar(f).SQL()
	case float32:
		f64, _ := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
		s = types.FloatScalar(f64).SQL()
	default:
		s, err = cast.ToStringE(value)
	}
	if err != nil {
		return m, &types.InvalidArgumentError{
			Message: fmt.Sprintf("option %q: unsupported value of type %T", key, value),
		}
	}
	return m.With(key, s), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToNamedArgs renders options as named string-literal arguments of a call
func ToNamedArgs(m types.OptionsMap) []expr.NamedArg {
	keys := m.Keys()
	named := make([]expr.NamedArg, 0, len(keys))
	for _, k := range keys {
		v, _ := m.Get(k)
		named = append(named, expr.NamedArg{Name: k, Value: expr.NewLiteral(types.StringScalar(v))})
	}
	return named
}

// FromNamedArgs collects the named literal arguments of c back into an OptionsMap.
// Named arguments that are not literals are rejected.
func FromNamedArgs(c *expr.Call) (types.OptionsMap, error) {
	out := types.NewOptionsMap()
	for _, arg := range c.NamedArgs() {
		lit, ok := arg.Value.(*expr.Literal)
		if !ok {
			return types.OptionsMap{}, &types.InvalidArgumentError{
				Function: c.Function(),
				Message:  fmt.Sprintf("option %q must be a literal, got %s", arg.Name, arg.Value),
			}
		}
		if lit.Scalar().IsNull() {
			continue
		}
		out = out.With(arg.Name, lit.Scalar().Text())
	}
	return out, nil
}
