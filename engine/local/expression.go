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
	"encoding/hex"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rulego/colexpr/types"
)

// Expression is the reference the local engine hands back: a fragment of
// expr-lang source plus what is needed to keep composing it.
type Expression struct {
	source string
	name   string
	// 列引用与别名，作为结构字段名
	named bool
	// 常量参数保留原值，window等函数需要在构造期读取
	constant *types.Scalar
	// when链上尚未给出otherwise的分支
	branches []branch
}

type branch struct {
	cond, value string
}

// Source is the expr-lang program text of the expression
func (e *Expression) Source() string {
	return e.source
}

// Name is the output column name: the column name, the alias, or the
// rendered expression.
func (e *Expression) Name() string {
	return e.name
}

func (e *Expression) String() string {
	return e.source
}

// Constant returns the literal value when the expression is a literal
func (e *Expression) Constant() (types.Scalar, bool) {
	if e.constant == nil {
		return types.Scalar{}, false
	}
	return *e.constant, true
}

// renderScalar 把类型化常量写成expr-lang源码
func renderScalar(s types.Scalar) string {
	switch s.Kind() {
	case types.KindNull:
		return "nil"
	case types.KindBoolean:
		return strconv.FormatBool(s.Value().(bool))
	case types.KindInteger:
		v := s.Value().(int64)
		switch {
		case v == math.MinInt64:
			return "(-9223372036854775807 - 1)"
		case v < 0:
			return "(" + strconv.FormatInt(v, 10) + ")"
		}
		return strconv.FormatInt(v, 10)
	case types.KindFloat:
		f := s.Value().(float64)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return call("float", strconv.Quote(strconv.FormatFloat(f, 'g', -1, 64)))
		}
		if f < 0 || (f == 0 && math.Signbit(f)) {
			return "(" + s.SQL() + ")"
		}
		return s.SQL()
	case types.KindString:
		return quote(s.Value().(string))
	case types.KindBinary:
		return call("binary", quote(hex.EncodeToString(s.Value().([]byte))))
	case types.KindDate:
		return call("date", quote(s.Value().(types.Date).String()))
	case types.KindTimestamp:
		t := s.Value().(time.Time)
		return call("timestamp", quote(t.Format(time.RFC3339Nano)))
	}
	return "nil"
}

func quote(s string) string {
	return strconv.QuoteToASCII(s)
}

// call 渲染内置函数调用
func call(function string, args ...string) string {
	return builtinPrefix + function + "(" + strings.Join(args, ", ") + ")"
}

// column 列引用渲染为对行的取值，嵌套路径交给 column_path
func column(name string) string {
	if isPath(name) {
		return call("column_path", rowVar, quote(name))
	}
	return rowVar + "[" + quote(name) + "]"
}

func isPath(name string) bool {
	return strings.ContainsAny(name, ".[")
}
