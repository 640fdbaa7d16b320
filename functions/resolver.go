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
	"errors"
	"fmt"

	"github.com/rulego/colexpr/expr"
	"github.com/rulego/colexpr/logger"
	"github.com/rulego/colexpr/options"
	"github.com/rulego/colexpr/types"
	"github.com/rulego/colexpr/utils/cast"
)

// ArgKind 参数的一次性分类结果
type ArgKind int

const (
	// ArgExpression 已构造的表达式节点，原样使用
	ArgExpression ArgKind = iota
	// ArgName 字符串，可能是列名也可能是字符串字面量，由策略决定
	ArgName
	// ArgRawScalar 其余原始值
	ArgRawScalar
)

func (k ArgKind) String() string {
	switch k {
	case ArgExpression:
		return "expression"
	case ArgName:
		return "name"
	default:
		return "raw"
	}
}

// Classify 对调用参数分类
func Classify(v interface{}) ArgKind {
	switch v.(type) {
	case expr.Node:
		return ArgExpression
	case string:
		return ArgName
	default:
		return ArgRawScalar
	}
}

// ApplyPolicy converts one argument into a node under policy p
func ApplyPolicy(p Policy, v interface{}) (expr.Node, error) {
	kind := Classify(v)
	if kind == ArgExpression {
		n := v.(expr.Node)
		if expr.IsNil(n) {
			// 带类型的空指针节点按空值字面量处理
			return expr.NewLiteral(types.NullScalar()), nil
		}
		return n, nil
	}
	switch p {
	case ColumnsMayBeStrings:
		if kind == ArgName {
			return expr.NewColumnRef(v.(string)), nil
		}
		return CoerceLiteral(v)
	case NumericOrColumn:
		if kind == ArgName {
			return expr.NewColumnRef(v.(string)), nil
		}
		return floatLiteral(v)
	case LiteralOnly:
		if kind == ArgName {
			return expr.NewLiteral(types.StringScalar(v.(string))), nil
		}
		return CoerceLiteral(v)
	case ExpressionOnly:
		return nil, &types.InvalidArgumentError{Message: fmt.Sprintf("expected an expression, got %T", v)}
	}
	return nil, fmt.Errorf("unknown argument policy %s", p)
}

// ResolverOption 解析器配置选项
type ResolverOption func(*Resolver)

// WithLogger 设置日志记录器
func WithLogger(l logger.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = l
	}
}

// WithConfig 设置配置
func WithConfig(c types.Config) ResolverOption {
	return func(r *Resolver) {
		r.config = c.Normalize()
	}
}

// Resolver 根据函数描述符把调用参数转换为Call节点
type Resolver struct {
	registry *Registry
	logger   logger.Logger
	config   types.Config
}

// NewResolver 创建解析器，reg为nil时使用内置注册表
func NewResolver(reg *Registry, opts ...ResolverOption) *Resolver {
	if reg == nil {
		reg = Default()
	}
	r := &Resolver{
		registry: reg,
		logger:   logger.GetDefault(),
		config:   types.NewConfig(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the registry the resolver reads from
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve builds the call node for function name.
//
// Each argument may be an expr.Node, a string or a raw Go value; how a string
// or raw value is read depends on the descriptor's policy for its position.
func (r *Resolver) Resolve(name string, args ...interface{}) (*expr.Call, error) {
	d, err := r.registry.get(name)
	if err != nil {
		return nil, err
	}
	if d.DeprecatedFor != "" {
		if r.config.DeprecationNotices {
			r.logger.Warn("%s is deprecated, use %s instead", d.Name, d.DeprecatedFor)
		}
		if d, err = r.registry.get(d.DeprecatedFor); err != nil {
			return nil, err
		}
	}
	call, err := r.build(d, args)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("resolved %s", call)
	return call, nil
}

func (r *Resolver) build(d *Descriptor, args []interface{}) (*expr.Call, error) {
	if d.AtLeast > 0 && len(args) < d.AtLeast {
		return nil, &types.InsufficientArgumentsError{Function: d.Name, AtLeast: d.AtLeast, Got: len(args)}
	}

	var named []expr.NamedArg
	if d.Options && len(args) > 0 {
		last := args[len(args)-1]
		popNil := last == nil && d.MaxArgs != Unbounded && len(args) > d.MaxArgs
		if popNil || (Classify(last) == ArgRawScalar && options.IsOptions(last)) {
			opts, err := options.Serialize(last)
			if err != nil {
				return nil, withFunction(err, d.Name, len(args)-1)
			}
			named = options.ToNamedArgs(opts)
			args = args[:len(args)-1]
		}
	}

	if d.FlattenSingleCollection && r.config.FlattenSingleCollection && len(args) == 1 && cast.IsCollection(args[0]) {
		items, err := cast.ToSliceE(args[0])
		if err != nil {
			return nil, withFunction(err, d.Name, 0)
		}
		args = items
	}

	if err := d.ValidateArgCount(len(args)); err != nil {
		return nil, err
	}

	nodes := make([]expr.Node, len(args))
	for i, arg := range args {
		node, err := ApplyPolicy(d.PolicyAt(i, len(args)), arg)
		if err != nil {
			return nil, withFunction(err, d.Name, i)
		}
		nodes[i] = node
	}

	if d.Validate != nil {
		if err := d.Validate(d, nodes); err != nil {
			return nil, err
		}
	}
	return expr.NewCall(d.Name, nodes, named...), nil
}

// withFunction 为参数级错误补充函数名与位置
func withFunction(err error, function string, position int) error {
	var litErr *types.UnsupportedLiteralError
	if errors.As(err, &litErr) {
		return &types.UnsupportedLiteralError{Function: function, Position: position, GoType: litErr.GoType, Reason: litErr.Reason}
	}
	var argErr *types.InvalidArgumentError
	if errors.As(err, &argErr) {
		return &types.InvalidArgumentError{Function: function, Position: position, Message: argErr.Message}
	}
	return fmt.Errorf("%s argument %d: %w", function, position, err)
}
