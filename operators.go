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

package colexpr

import "github.com/rulego/colexpr/expr"

// 运算符。与命名函数不同，运算符的字符串参数是字符串字面量，
// 引用列需要使用 Col:
//
//	colexpr.Add(colexpr.Col("price"), 1)

// Add a + b
func Add(a, b interface{}) (*expr.Call, error) { return std.Call(expr.OpAdd, a, b) }

// Sub a - b
func Sub(a, b interface{}) (*expr.Call, error) { return std.Call(expr.OpSub, a, b) }

// Mul a * b
func Mul(a, b interface{}) (*expr.Call, error) { return std.Call(expr.OpMul, a, b) }

// Div a / b
func Div(a, b interface{}) (*expr.Call, error) { return std.Call(expr.OpDiv, a, b) }

// Mod a % b
func Mod(a, b interface{}) (*expr.Call, error) { return std.Call(expr.OpMod, a, b) }

// Eq a = b
func Eq(a, b interface{}) (*expr.Call, error) { return std.Call(expr.OpEq, a, b) }

// Ne a != b
func Ne(a, b interface{}) (*expr.Call, error) { return std.Call(expr.OpNe, a, b) }

// Lt a < b
func Lt(a, b interface{}) (*expr.Call, error) { return std.Call(expr.OpLt, a, b) }

// Le a <= b
func Le(a, b interface{}) (*expr.Call, error) { return std.Call(expr.OpLe, a, b) }

// Gt a > b
func Gt(a, b interface{}) (*expr.Call, error) { return std.Call(expr.OpGt, a, b) }

// Ge a >= b
func Ge(a, b interface{}) (*expr.Call, error) { return std.Call(expr.OpGe, a, b) }

// And 逻辑与
func And(a, b interface{}) (*expr.Call, error) { return std.Call(expr.OpAnd, a, b) }

// Or 逻辑或
func Or(a, b interface{}) (*expr.Call, error) { return std.Call(expr.OpOr, a, b) }

// Not 逻辑非
func Not(a interface{}) (*expr.Call, error) { return std.Call(expr.OpNot, a) }

// Negate -a
func Negate(a interface{}) (*expr.Call, error) { return std.Call(expr.OpNegate, a) }

// Alias names the expression; the name shows up as the output column and as
// the field name inside Struct.
func Alias(e interface{}, name string) (*expr.Call, error) {
	return std.Call(expr.OpAlias, e, name)
}

// Cast converts e to the named data type, e.g. "int" or "timestamp"
func Cast(e interface{}, dataType string) (*expr.Call, error) {
	return std.Call(expr.OpCast, e, dataType)
}

// GetField is the struct field by name
func GetField(e interface{}, name string) (*expr.Call, error) {
	return std.Call(expr.OpGetField, e, name)
}

// GetItem is the array item at the 0-based index, or the map value for key
func GetItem(e, key interface{}) (*expr.Call, error) {
	return std.Call(expr.OpGetItem, e, key)
}

// IsNull is true when e is null.
func IsNull(e interface{}) (*expr.Call, error) { return std.Call(expr.OpIsNull, e) }

// IsNotNull is true when e is not null.
func IsNotNull(e interface{}) (*expr.Call, error) { return std.Call(expr.OpIsNotNull, e) }

// 排序表达式

// Asc sorts ascending, nulls first.
func Asc(col interface{}) (*expr.Call, error) { return std.Call(expr.OpAsc, col) }

// Desc sorts descending, nulls last.
func Desc(col interface{}) (*expr.Call, error) { return std.Call(expr.OpDesc, col) }

// AscNullsFirst sorts ascending with nulls before other values.
func AscNullsFirst(col interface{}) (*expr.Call, error) { return std.Call("asc_nulls_first", col) }

// AscNullsLast sorts ascending with nulls after other values.
func AscNullsLast(col interface{}) (*expr.Call, error) { return std.Call("asc_nulls_last", col) }

// DescNullsFirst sorts descending with nulls before other values.
func DescNullsFirst(col interface{}) (*expr.Call, error) { return std.Call("desc_nulls_first", col) }

// DescNullsLast sorts descending with nulls after other values.
func DescNullsLast(col interface{}) (*expr.Call, error) { return std.Call("desc_nulls_last", col) }
