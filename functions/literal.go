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

package functions

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/rulego/colexpr/expr"
	"github.com/rulego/colexpr/types"
	"github.com/rulego/colexpr/utils/cast"
)

// CoerceLiteral maps a Go value to a literal node by its runtime type.
//
//	bool -> boolean, ints/uints -> integer, float32/64 -> float, string -> string,
//	[]byte -> binary, types.Date -> date, time.Time -> timestamp, nil -> null
//
// A *expr.Literal is returned unchanged and a types.Scalar is wrapped, so
// coercing twice yields the same node.
func CoerceLiteral(v interface{}) (*expr.Literal, error) {
	s, err := toScalar(v)
	if err != nil {
		return nil, err
	}
	if lit, ok := v.(*expr.Literal); ok && lit != nil {
		return lit, nil
	}
	return expr.NewLiteral(s), nil
}

func toScalar(v interface{}) (types.Scalar, error) {
	switch x := v.(type) {
	case nil:
		return types.NullScalar(), nil
	case *expr.Literal:
		if x == nil {
			return types.NullScalar(), nil
		}
		return x.Scalar(), nil
	case types.Scalar:
		return x, nil
	case bool:
		return types.BoolScalar(x), nil
	case int:
		return types.IntScalar(int64(x)), nil
	case int8:
		return types.IntScalar(int64(x)), nil
	case int16:
		return types.IntScalar(int64(x)), nil
	case int32:
		return types.IntScalar(int64(x)), nil
	case int64:
		return types.IntScalar(x), nil
	case uint:
		return uintScalar(uint64(x))
	case uint8:
		return types.IntScalar(int64(x)), nil
	case uint16:
		return types.IntScalar(int64(x)), nil
	case uint32:
		return types.IntScalar(int64(x)), nil
	case uint64:
		return uintScalar(x)
	case float32:
		return types.FloatScalar(float64(x)), nil
	case float64:
		return types.FloatScalar(x), nil
	case string:
		return types.StringScalar(x), nil
	case []byte:
		return types.BinaryScalar(x), nil
	case types.Date:
		return types.DateScalar(x), nil
	case time.Time:
		return types.TimestampScalar(x), nil
	case *time.Time:
		if x == nil {
			return types.NullScalar(), nil
		}
		return types.TimestampScalar(*x), nil
	}

	// 具名的基础类型，例如 type Level int
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return types.BoolScalar(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return types.IntScalar(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uintScalar(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return types.FloatScalar(rv.Float()), nil
	case reflect.String:
		return types.StringScalar(rv.String()), nil
	}
	return types.Scalar{}, &types.UnsupportedLiteralError{GoType: fmt.Sprintf("%T", v)}
}

func uintScalar(u uint64) (types.Scalar, error) {
	if u > math.MaxInt64 {
		return types.Scalar{}, &types.UnsupportedLiteralError{
			GoType: "uint64",
			Reason: fmt.Sprintf("%d overflows a 64-bit signed integer", u),
		}
	}
	return types.IntScalar(int64(u)), nil
}

// floatLiteral 二元数学函数的显式浮点转换
func floatLiteral(v interface{}) (*expr.Literal, error) {
	switch x := v.(type) {
	case types.Scalar:
		return expr.NewLiteral(x), nil
	case string, []byte:
		return nil, &types.UnsupportedLiteralError{GoType: fmt.Sprintf("%T", v), Reason: "expected a number"}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, &types.UnsupportedLiteralError{GoType: fmt.Sprintf("%T", v), Reason: "expected a number"}
	}
	return expr.NewLiteral(types.FloatScalar(f)), nil
}
