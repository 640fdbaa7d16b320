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

package expr

import (
	"github.com/rulego/colexpr/types"
)

// NodeKind 表达式节点类型
type NodeKind int

const (
	// KindLiteral 字面量
	KindLiteral NodeKind = iota
	// KindColumn 字段引用
	KindColumn
	// KindCall 函数调用
	KindCall
	// KindHandle 引擎返回的句柄
	KindHandle
)

func (k NodeKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindColumn:
		return "column"
	case KindCall:
		return "call"
	case KindHandle:
		return "handle"
	default:
		return "unknown"
	}
}

// Node 不可变的表达式树节点。
// 实现只有本包中的 *Literal, *ColumnRef, *Call, *Handle。
type Node interface {
	Kind() NodeKind
	String() string
	node()
}

// Literal 字面量节点
type Literal struct {
	value types.Scalar
}

// NewLiteral 创建字面量节点
func NewLiteral(value types.Scalar) *Literal {
	return &Literal{value: value}
}

func (l *Literal) Kind() NodeKind { return KindLiteral }

// Scalar 返回字面量的值
func (l *Literal) Scalar() types.Scalar { return l.value }

func (l *Literal) node() {}

// ColumnRef 按名称引用列，名称在引擎端才解析
type ColumnRef struct {
	name string
}

// NewColumnRef 创建列引用节点
func NewColumnRef(name string) *ColumnRef {
	return &ColumnRef{name: name}
}

func (c *ColumnRef) Kind() NodeKind { return KindColumn }

// Name 列名
func (c *ColumnRef) Name() string { return c.name }

func (c *ColumnRef) node() {}

// NamedArg 命名参数
type NamedArg struct {
	Name  string
	Value Node
}

// Call 函数调用节点
type Call struct {
	function string
	args     []Node
	named    []NamedArg
}

// NewCall 创建函数调用节点。args与named会被复制，
// 同名的命名参数保留最后一个值、位置保持首次出现的位置。
// 参数个数校验由functions包在构造前完成。
func NewCall(function string, args []Node, named ...NamedArg) *Call {
	c := &Call{
		function: function,
		args:     make([]Node, len(args)),
	}
	copy(c.args, args)
	for _, na := range named {
		replaced := false
		for i := range c.named {
			if c.named[i].Name == na.Name {
				c.named[i].Value = na.Value
				replaced = true
				break
			}
		}
		if !replaced {
			c.named = append(c.named, na)
		}
	}
	return c
}

func (c *Call) Kind() NodeKind { return KindCall }

// Function 函数名
func (c *Call) Function() string { return c.function }

// NumArgs 位置参数个数
func (c *Call) NumArgs() int { return len(c.args) }

// Arg 第i个位置参数
func (c *Call) Arg(i int) Node { return c.args[i] }

// Args 返回位置参数的副本
func (c *Call) Args() []Node {
	out := make([]Node, len(c.args))
	copy(out, c.args)
	return out
}

// NamedArgs 返回命名参数的副本，按插入顺序
func (c *Call) NamedArgs() []NamedArg {
	out := make([]NamedArg, len(c.named))
	copy(out, c.named)
	return out
}

// Named 按名称读取命名参数
func (c *Call) Named(name string) (Node, bool) {
	for _, na := range c.named {
		if na.Name == name {
			return na.Value, true
		}
	}
	return nil, false
}

func (c *Call) node() {}

// Handle 引擎返回的不透明句柄，可以作为新的表达式继续组合
type Handle struct {
	id     string
	ref    interface{}
	origin Node
}

// NewHandle 由引擎桥接层创建
func NewHandle(id string, ref interface{}, origin Node) *Handle {
	return &Handle{id: id, ref: ref, origin: origin}
}

func (h *Handle) Kind() NodeKind { return KindHandle }

// ID 句柄标识
func (h *Handle) ID() string { return h.id }

// Ref 引擎原生句柄
func (h *Handle) Ref() interface{} { return h.ref }

// Origin 生成该句柄的表达式树
func (h *Handle) Origin() Node { return h.origin }

func (h *Handle) node() {}
