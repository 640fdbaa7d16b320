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

import (
	"context"
	"errors"

	"github.com/rulego/colexpr/engine"
	"github.com/rulego/colexpr/expr"
	"github.com/rulego/colexpr/functions"
	"github.com/rulego/colexpr/logger"
	"github.com/rulego/colexpr/types"
)

// ErrNoEngine is returned by Submit when the builder has no engine attached
var ErrNoEngine = errors.New("colexpr: no engine configured")

// Builder 构建表达式树，配置了引擎时可以直接提交。
//
// 使用示例:
//
//	b := colexpr.New(colexpr.WithEngine(local.New()))
//	call, err := b.Call("substring_index", "a.b.c.d", ".", 2)
//	h, err := b.Submit(ctx, call)
//
// Builder 创建后不可变，可以在多个goroutine之间共享。
type Builder struct {
	logger   logger.Logger
	config   types.Config
	registry *functions.Registry
	resolver *functions.Resolver

	engine     engine.Engine
	bridge     *engine.Bridge
	bridgeOpts []engine.Option
}

// New 创建构建器
func New(opts ...Option) *Builder {
	b := &Builder{
		logger:   logger.GetDefault(),
		config:   types.NewConfig(),
		registry: functions.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.config = b.config.Normalize()
	b.resolver = functions.NewResolver(b.registry,
		functions.WithLogger(b.logger),
		functions.WithConfig(b.config),
	)
	if b.engine != nil {
		bridgeOpts := append([]engine.Option{
			engine.WithLogger(b.logger),
			engine.WithMaxDepth(b.config.MaxDepth),
		}, b.bridgeOpts...)
		b.bridge = engine.New(b.engine, bridgeOpts...)
	}
	return b
}

// std 包级构造函数使用的构建器，没有引擎
var std = New()

// Registry returns the function catalog calls are resolved against
func (b *Builder) Registry() *functions.Registry {
	return b.registry
}

// Config returns the effective configuration
func (b *Builder) Config() types.Config {
	return b.config
}

// Engine returns the attached engine, or nil
func (b *Builder) Engine() engine.Engine {
	return b.engine
}

// Call resolves name against the registry and builds the call node.
//
// Each argument may be an expression node, a string or a raw Go value. How
// strings and raw values are read depends on the function: a string is a
// column name where the function takes columns and a string literal where it
// takes literals.
func (b *Builder) Call(name string, args ...interface{}) (*expr.Call, error) {
	return b.resolver.Resolve(name, args...)
}

// Submit hands node to the engine and returns the handle it produced
func (b *Builder) Submit(ctx context.Context, node expr.Node) (*expr.Handle, error) {
	if b.bridge == nil {
		return nil, ErrNoEngine
	}
	return b.bridge.Submit(ctx, node)
}

// Apply builds the call and submits it in one step
func (b *Builder) Apply(ctx context.Context, name string, args ...interface{}) (*expr.Handle, error) {
	call, err := b.Call(name, args...)
	if err != nil {
		return nil, err
	}
	return b.Submit(ctx, call)
}

// Parse 解析SQL表达式文本，每个函数调用都经过注册表校验
func (b *Builder) Parse(text string) (expr.Node, error) {
	return expr.Parse(text, b.build)
}

func (b *Builder) build(function string, args ...expr.Node) (expr.Node, error) {
	in := make([]interface{}, len(args))
	for i, a := range args {
		in[i] = a
	}
	call, err := b.resolver.Resolve(function, in...)
	if err != nil {
		return nil, err
	}
	return call, nil
}

// Call builds a call of the named registry function
func Call(name string, args ...interface{}) (*expr.Call, error) {
	return std.Call(name, args...)
}

// Parse parses SQL expression text against the default registry
func Parse(text string) (expr.Node, error) {
	return std.Parse(text)
}

// Col 引用列
func Col(name string) *expr.ColumnRef {
	return expr.NewColumnRef(name)
}

// Lit 把Go值转换为带类型的字面量，nil为空值
func Lit(v interface{}) (*expr.Literal, error) {
	return functions.CoerceLiteral(v)
}

// Functions lists every function of the default registry in catalog order
func Functions() []*functions.Descriptor {
	return std.registry.List()
}

func withRest(fixed []interface{}, rest []interface{}) []interface{} {
	return append(fixed, rest...)
}
