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
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"

	ast "github.com/rulego/colexpr/expr"
	"github.com/rulego/colexpr/types"
	"github.com/rulego/colexpr/utils/fieldpath"
)

const (
	// 内置函数在expr-lang中的名字前缀，避免与expr自带函数冲突
	builtinPrefix = "fn_"
	// 行数据在执行环境中的变量名
	rowVar = "row"
)

type builtinFunc func(e *Engine, args []interface{}) (interface{}, error)

type builtin struct {
	name string
	fn   builtinFunc
	// 为true时自行处理空值参数，否则任一参数为空时结果为空
	nulls bool
}

var builtins = map[string]*builtin{}

func register(name string, fn builtinFunc) {
	builtins[name] = &builtin{name: name, fn: fn}
}

// registerNullable 注册需要看到空值参数的函数
func registerNullable(name string, fn builtinFunc) {
	builtins[name] = &builtin{name: name, fn: fn, nulls: true}
}

// 运算符在注册表中的名字与内置实现名的对应
var operatorBuiltins = map[string]string{
	ast.OpAdd:      "add",
	ast.OpSub:      "subtract",
	ast.OpMul:      "multiply",
	ast.OpDiv:      "divide",
	ast.OpMod:      "remainder",
	ast.OpEq:       "equal",
	ast.OpNe:       "not_equal",
	ast.OpLt:       "less",
	ast.OpLe:       "less_equal",
	ast.OpGt:       "greater",
	ast.OpGe:       "greater_equal",
	ast.OpAnd:      "and",
	ast.OpOr:       "or",
	ast.OpNot:      "not",
	ast.OpNegate:   "negate",
	ast.OpGetField: "get_field",
	ast.OpGetItem:  "get_item",
	ast.OpCast:     "cast",
}

func builtinName(function string) string {
	if name, ok := operatorBuiltins[function]; ok {
		return name
	}
	return function
}

// functionOptions 把所有内置函数注册为expr-lang函数
func (e *Engine) functionOptions() []expr.Option {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	opts := make([]expr.Option, 0, len(names))
	for _, name := range names {
		b := builtins[name]
		opts = append(opts, expr.Function(builtinPrefix+name, func(params ...interface{}) (interface{}, error) {
			return e.invoke(b, params)
		}))
	}
	return opts
}

func (e *Engine) invoke(b *builtin, params []interface{}) (interface{}, error) {
	args := make([]interface{}, len(params))
	for i, p := range params {
		args[i] = normalize(p)
		if args[i] == nil && !b.nulls {
			return nil, nil
		}
	}
	out, err := b.fn(e, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.name, err)
	}
	return out, nil
}

func init() {
	// 常量构造
	register("float", func(e *Engine, args []interface{}) (interface{}, error) {
		return strconv.ParseFloat(args[0].(string), 64)
	})
	register("binary", func(e *Engine, args []interface{}) (interface{}, error) {
		return hex.DecodeString(args[0].(string))
	})
	register("date", func(e *Engine, args []interface{}) (interface{}, error) {
		t, err := time.Parse("2006-01-02", args[0].(string))
		if err != nil {
			return nil, err
		}
		return types.NewDate(t), nil
	})
	register("timestamp", func(e *Engine, args []interface{}) (interface{}, error) {
		return time.Parse(time.RFC3339Nano, args[0].(string))
	})
	registerNullable("truthy", func(e *Engine, args []interface{}) (interface{}, error) {
		if args[0] == nil {
			return false, nil
		}
		return toBool(args[0])
	})

	// 算术
	register("add", arithmetic(func(a, b int64) (interface{}, error) { return a + b, nil },
		func(a, b float64) (interface{}, error) { return a + b, nil }))
	register("subtract", arithmetic(func(a, b int64) (interface{}, error) { return a - b, nil },
		func(a, b float64) (interface{}, error) { return a - b, nil }))
	register("multiply", arithmetic(func(a, b int64) (interface{}, error) { return a * b, nil },
		func(a, b float64) (interface{}, error) { return a * b, nil }))
	register("divide", func(e *Engine, args []interface{}) (interface{}, error) {
		a, b, err := floats(args[0], args[1])
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, nil
		}
		return a / b, nil
	})
	register("remainder", arithmetic(func(a, b int64) (interface{}, error) {
		if b == 0 {
			return nil, nil
		}
		return a % b, nil
	}, func(a, b float64) (interface{}, error) {
		if b == 0 {
			return nil, nil
		}
		return math.Mod(a, b), nil
	}))
	register("negate", func(e *Engine, args []interface{}) (interface{}, error) {
		n, err := numeric(args[0])
		if err != nil {
			return nil, err
		}
		if i, ok := n.(int64); ok {
			return -i, nil
		}
		return -n.(float64), nil
	})

	// 比较
	register("equal", comparison(func(c int) bool { return c == 0 }))
	register("not_equal", comparison(func(c int) bool { return c != 0 }))
	register("less", comparison(func(c int) bool { return c < 0 }))
	register("less_equal", comparison(func(c int) bool { return c <= 0 }))
	register("greater", comparison(func(c int) bool { return c > 0 }))
	register("greater_equal", comparison(func(c int) bool { return c >= 0 }))

	// 三值逻辑
	registerNullable("and", func(e *Engine, args []interface{}) (interface{}, error) {
		a, b, err := logical(args[0], args[1])
		if err != nil {
			return nil, err
		}
		if (a != nil && !*a) || (b != nil && !*b) {
			return false, nil
		}
		if a == nil || b == nil {
			return nil, nil
		}
		return true, nil
	})
	registerNullable("or", func(e *Engine, args []interface{}) (interface{}, error) {
		a, b, err := logical(args[0], args[1])
		if err != nil {
			return nil, err
		}
		if (a != nil && *a) || (b != nil && *b) {
			return true, nil
		}
		if a == nil || b == nil {
			return nil, nil
		}
		return false, nil
	})
	register("not", func(e *Engine, args []interface{}) (interface{}, error) {
		b, err := toBool(args[0])
		if err != nil {
			return nil, err
		}
		return !b, nil
	})

	register("get_field", func(e *Engine, args []interface{}) (interface{}, error) {
		name, err := toText(args[1])
		if err != nil {
			return nil, err
		}
		if v, ok := fieldpath.Field(args[0], name); ok {
			return normalize(v), nil
		}
		if !isContainer(args[0], reflect.Map, reflect.Struct) {
			return nil, fmt.Errorf("expected a map or struct, got %T", args[0])
		}
		return nil, nil
	})
	// 列名本身含点号时优先按原名取值
	register("column_path", func(e *Engine, args []interface{}) (interface{}, error) {
		row, _ := args[0].(map[string]interface{})
		path, err := toText(args[1])
		if err != nil {
			return nil, err
		}
		if v, ok := row[path]; ok {
			return v, nil
		}
		v, _ := fieldpath.Get(row, path)
		return normalize(v), nil
	})
	register("get_item", func(e *Engine, args []interface{}) (interface{}, error) {
		if v, ok := fieldpath.Item(args[0], args[1]); ok {
			return normalize(v), nil
		}
		if !isContainer(args[0], reflect.Map, reflect.Struct, reflect.Slice, reflect.Array) {
			return nil, fmt.Errorf("expected an array, map or struct, got %T", args[0])
		}
		return nil, nil
	})
	register("cast", func(e *Engine, args []interface{}) (interface{}, error) {
		typeName, err := toText(args[1])
		if err != nil {
			return nil, err
		}
		return e.castTo(args[0], typeName)
	})
}

// numeric 取数值，字符串按数字解析
func numeric(v interface{}) (interface{}, error) {
	switch x := v.(type) {
	case int64, float64:
		return x, nil
	case bool:
		return boolRank(x), nil
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64); err == nil {
			return i, nil
		}
	}
	return toFloat(v)
}

func floats(a, b interface{}) (float64, float64, error) {
	x, err := toFloat(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := toFloat(b)
	return x, y, err
}

// arithmetic 两个整数按整数运算，否则按浮点运算
func arithmetic(ints func(a, b int64) (interface{}, error), fls func(a, b float64) (interface{}, error)) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		a, err := numeric(args[0])
		if err != nil {
			return nil, err
		}
		b, err := numeric(args[1])
		if err != nil {
			return nil, err
		}
		if x, ok := a.(int64); ok {
			if y, ok := b.(int64); ok {
				return ints(x, y)
			}
		}
		x, y, err := floats(a, b)
		if err != nil {
			return nil, err
		}
		return fls(x, y)
	}
}

func comparison(test func(c int) bool) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		a, b := args[0], args[1]
		// 字符串与数字比较时按数字比较
		if s, ok := a.(string); ok && isNumber(b) {
			n, err := numeric(s)
			if err != nil {
				return nil, nil
			}
			a = n
		}
		if s, ok := b.(string); ok && isNumber(a) {
			n, err := numeric(s)
			if err != nil {
				return nil, nil
			}
			b = n
		}
		if _, ok := a.([]interface{}); ok {
			return test(boolCompare(equal(a, b))), nil
		}
		if _, ok := a.(map[string]interface{}); ok {
			return test(boolCompare(equal(a, b))), nil
		}
		c, err := compare(a, b)
		if err != nil {
			return nil, err
		}
		return test(c), nil
	}
}

func boolCompare(eq bool) int {
	if eq {
		return 0
	}
	return 1
}

func logical(a, b interface{}) (*bool, *bool, error) {
	var x, y *bool
	if a != nil {
		v, err := toBool(a)
		if err != nil {
			return nil, nil, err
		}
		x = &v
	}
	if b != nil {
		v, err := toBool(b)
		if err != nil {
			return nil, nil, err
		}
		y = &v
	}
	return x, y, nil
}

// castTo 按类型名转换，与非ANSI模式一致，无法转换时结果为空
func (e *Engine) castTo(v interface{}, typeName string) (interface{}, error) {
	t := strings.ToLower(strings.TrimSpace(typeName))
	if i := strings.IndexByte(t, '('); i > 0 {
		t = strings.TrimSpace(t[:i])
	}
	var (
		out interface{}
		err error
	)
	switch t {
	case "string", "varchar", "char":
		out, err = toText(v)
	case "int", "integer", "bigint", "long", "smallint", "short", "tinyint", "byte":
		if f, ok := v.(float64); ok {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, nil
			}
			return int64(f), nil
		}
		if tm, ok := v.(time.Time); ok {
			return tm.Unix(), nil
		}
		if s, ok := v.(string); ok {
			f, perr := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if perr != nil {
				return nil, nil
			}
			return int64(f), nil
		}
		out, err = toInt(v)
	case "double", "float", "real", "decimal", "numeric":
		out, err = toFloat(v)
	case "boolean", "bool":
		out, err = toBool(v)
	case "date":
		out, err = toDate(v, e.loc)
	case "timestamp":
		out, err = toTime(v, e.loc)
	case "binary":
		out, err = toBytes(v)
	default:
		return nil, fmt.Errorf("unsupported cast target %q", typeName)
	}
	if err != nil {
		return nil, nil
	}
	return out, nil
}
