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

	"github.com/rulego/colexpr/expr"
	"github.com/rulego/colexpr/types"
)

// Unbounded marks a variadic MaxArgs
const Unbounded = -1

// Category 函数的执行类别
type Category string

const (
	CategoryScalar    Category = "scalar"
	CategoryAggregate Category = "aggregate"
	CategoryWindow    Category = "window"
)

// FunctionType 函数分组，用于目录展示
type FunctionType string

const (
	// 聚合函数
	TypeAggregation FunctionType = "aggregation"
	// 窗口/排名函数
	TypeWindow FunctionType = "window"
	// 时间日期函数
	TypeDateTime FunctionType = "datetime"
	// 转换函数
	TypeConversion FunctionType = "conversion"
	// 数学函数
	TypeMath FunctionType = "math"
	// 字符串函数
	TypeString FunctionType = "string"
	// 数组与映射
	TypeCollection FunctionType = "collection"
	// JSON/CSV
	TypeJSON FunctionType = "json"
	// 哈希函数
	TypeHash FunctionType = "hash"
	// 条件函数
	TypeConditional FunctionType = "conditional"
	// 运算符
	TypeOperator FunctionType = "operator"
	// 排序
	TypeSort FunctionType = "sort"
	TypeMisc FunctionType = "misc"
)

// Policy 决定非表达式参数如何转换为节点
type Policy int

const (
	// ColumnsMayBeStrings 字符串按列名处理，其余原始值按类型推断为字面量
	ColumnsMayBeStrings Policy = iota
	// NumericOrColumn 字符串按列名处理，其余原始值显式转为浮点字面量（二元数学函数）
	NumericOrColumn
	// LiteralOnly 字符串按字符串字面量处理
	LiteralOnly
	// ExpressionOnly 只接受已构造的表达式
	ExpressionOnly
)

func (p Policy) String() string {
	switch p {
	case ColumnsMayBeStrings:
		return "column"
	case NumericOrColumn:
		return "numeric"
	case LiteralOnly:
		return "literal"
	case ExpressionOnly:
		return "expression"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Validator runs after the call arguments are built
type Validator func(d *Descriptor, args []expr.Node) error

// Descriptor 函数描述符：名称、参数个数范围与每个位置的转换策略
type Descriptor struct {
	Name        string
	Category    Category
	Group       FunctionType
	Description string
	MinArgs     int
	MaxArgs     int // -1 表示无限制
	// Policies 每个位置的策略，最后一个策略覆盖之后的所有可变参数
	Policies []Policy
	// ArityPolicies 按参数个数覆盖Policies，例如log(x)与log(base, x)
	ArityPolicies map[int][]Policy
	// AtLeast 函数自身的最少参数要求，先于MinArgs检查
	AtLeast int
	// FlattenSingleCollection 唯一参数是集合时展开为参数列表
	FlattenSingleCollection bool
	// DeprecatedFor 非空时该名称已废弃，调用转发到此函数
	DeprecatedFor string
	// Options 尾部的映射参数作为选项序列化为命名参数
	Options  bool
	Validate Validator
}

// PolicyAt returns the policy for position i of a call with n arguments
func (d *Descriptor) PolicyAt(i, n int) Policy {
	policies := d.Policies
	if p, ok := d.ArityPolicies[n]; ok {
		policies = p
	}
	if len(policies) == 0 {
		return ColumnsMayBeStrings
	}
	if i >= len(policies) {
		return policies[len(policies)-1]
	}
	return policies[i]
}

// IsVariadic 参数个数无上限
func (d *Descriptor) IsVariadic() bool {
	return d.MaxArgs == Unbounded
}

// ValidateArgCount 验证参数数量
func (d *Descriptor) ValidateArgCount(n int) error {
	if n < d.MinArgs || (d.MaxArgs != Unbounded && n > d.MaxArgs) {
		return &types.ArityError{Function: d.Name, Min: d.MinArgs, Max: d.MaxArgs, Got: n}
	}
	return nil
}

// Signature renders the argument shape, e.g. "lpad(column, literal, literal)"
func (d *Descriptor) Signature() string {
	n := d.MaxArgs
	if n == Unbounded {
		n = d.MinArgs + 1
		if n < 1 {
			n = 1
		}
	}
	sig := d.Name + "("
	for i := 0; i < n; i++ {
		if i > 0 {
			sig += ", "
		}
		if i >= d.MinArgs {
			sig += "["
		}
		sig += d.PolicyAt(i, n).String()
		if i >= d.MinArgs {
			sig += "]"
		}
	}
	if d.MaxArgs == Unbounded {
		sig += ", ..."
	}
	return sig + ")"
}

func (d *Descriptor) validate() error {
	if d.Name == "" {
		return fmt.Errorf("function descriptor without name")
	}
	if d.MinArgs < 0 || (d.MaxArgs != Unbounded && d.MaxArgs < d.MinArgs) {
		return fmt.Errorf("function %s: invalid arity [%d, %d]", d.Name, d.MinArgs, d.MaxArgs)
	}
	switch d.Category {
	case CategoryScalar, CategoryAggregate, CategoryWindow:
	default:
		return fmt.Errorf("function %s: unknown category %q", d.Name, d.Category)
	}
	return nil
}

// Clone returns a deep copy; registries hand out clones so the catalog stays read-only
func (d *Descriptor) Clone() *Descriptor {
	c := *d
	if d.Policies != nil {
		c.Policies = append([]Policy(nil), d.Policies...)
	}
	if d.ArityPolicies != nil {
		c.ArityPolicies = make(map[int][]Policy, len(d.ArityPolicies))
		for n, p := range d.ArityPolicies {
			c.ArityPolicies[n] = append([]Policy(nil), p...)
		}
	}
	return &c
}

// 目录表的简写构造器

func scalar(group FunctionType, name string, min, max int, description string, policies ...Policy) *Descriptor {
	return &Descriptor{
		Name:        name,
		Category:    CategoryScalar,
		Group:       group,
		Description: description,
		MinArgs:     min,
		MaxArgs:     max,
		Policies:    policies,
	}
}

func aggregate(name string, min, max int, description string, policies ...Policy) *Descriptor {
	d := scalar(TypeAggregation, name, min, max, description, policies...)
	d.Category = CategoryAggregate
	return d
}

func windowFn(name string, min, max int, description string, policies ...Policy) *Descriptor {
	d := scalar(TypeWindow, name, min, max, description, policies...)
	d.Category = CategoryWindow
	return d
}

// unary 单列函数
func unary(group FunctionType, name, description string) *Descriptor {
	return scalar(group, name, 1, 1, description, ColumnsMayBeStrings)
}

func deprecated(d *Descriptor, replacement string) *Descriptor {
	d.DeprecatedFor = replacement
	return d
}

func withOptions(d *Descriptor) *Descriptor {
	d.Options = true
	return d
}

func flattened(d *Descriptor) *Descriptor {
	d.FlattenSingleCollection = true
	return d
}

// 目录表中的策略简写
const (
	pCol  = ColumnsMayBeStrings
	pNum  = NumericOrColumn
	pLit  = LiteralOnly
	pExpr = ExpressionOnly
)
