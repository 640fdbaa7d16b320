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

package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rulego/colexpr/expr"
	"github.com/rulego/colexpr/logger"
	"github.com/rulego/colexpr/options"
	"github.com/rulego/colexpr/types"
)

// Bridge 把表达式树提交给引擎，返回可继续组合的句柄
type Bridge struct {
	engine   Engine
	logger   logger.Logger
	maxDepth int
	newID    func() string
}

// New 创建桥接层
func New(e Engine, opts ...Option) *Bridge {
	b := &Bridge{
		engine:   e,
		logger:   logger.GetDefault(),
		maxDepth: types.DefaultMaxDepth,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Engine returns the wrapped engine
func (b *Bridge) Engine() Engine {
	return b.engine
}

// Submit translates node bottom-up into engine references.
//
// Literals cross as typed scalars, named literal arguments become the call's
// options and handles pass their reference through. Engine failures come back
// as *types.EngineRejectedExpression carrying the engine's message verbatim.
func (b *Bridge) Submit(ctx context.Context, node expr.Node) (*expr.Handle, error) {
	if expr.IsNil(node) {
		return nil, &types.InvalidArgumentError{Message: "nil expression"}
	}
	if h, ok := node.(*expr.Handle); ok {
		return h, nil
	}
	if depth := expr.Depth(node); depth > b.maxDepth {
		return nil, &types.InvalidArgumentError{
			Message: fmt.Sprintf("expression depth %d exceeds the limit of %d", depth, b.maxDepth),
		}
	}
	ref, err := b.translate(ctx, node)
	if err != nil {
		b.logger.Debug("engine rejected %s: %v", node, err)
		return nil, err
	}
	h := expr.NewHandle(b.newID(), ref, node)
	b.logger.Debug("submitted %s as handle %s", node, h.ID())
	return h, nil
}

func (b *Bridge) translate(ctx context.Context, node expr.Node) (Ref, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if expr.IsNil(node) {
		return nil, &types.InvalidArgumentError{Message: "nil expression"}
	}
	switch n := node.(type) {
	case *expr.Literal:
		ref, err := b.engine.Literal(n.Scalar())
		return ref, rejected(err)
	case *expr.ColumnRef:
		ref, err := b.engine.Column(n.Name())
		return ref, rejected(err)
	case *expr.Handle:
		if n.Ref() == nil {
			return nil, &types.InvalidArgumentError{Message: fmt.Sprintf("handle %s carries no engine reference", n.ID())}
		}
		return n.Ref(), nil
	case *expr.Call:
		args := make([]Ref, n.NumArgs())
		for i := range args {
			ref, err := b.translate(ctx, n.Arg(i))
			if err != nil {
				return nil, err
			}
			args[i] = ref
		}
		opts, err := options.FromNamedArgs(n)
		if err != nil {
			return nil, err
		}
		ref, err := b.engine.Call(ctx, n.Function(), args, opts)
		return ref, rejected(err)
	}
	return nil, &types.InvalidArgumentError{Message: fmt.Sprintf("unsupported node %T", node)}
}

// rejected 统一引擎错误：Failure转换为EngineRejectedExpression，消息保持原文
func rejected(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var typed *types.EngineRejectedExpression
	if errors.As(err, &typed) {
		return typed
	}
	var f *Failure
	if errors.As(err, &f) {
		return &types.EngineRejectedExpression{Name: f.Name, Message: f.Message}
	}
	return &types.EngineRejectedExpression{Message: err.Error()}
}
