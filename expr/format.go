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
	"strings"
	"unicode"

	"github.com/rulego/colexpr/types"
)

// 运算符在注册表中的函数名
const (
	OpAdd       = "+"
	OpSub       = "-"
	OpMul       = "*"
	OpDiv       = "/"
	OpMod       = "%"
	OpEq        = "=="
	OpNe        = "!="
	OpLt        = "<"
	OpLe        = "<="
	OpGt        = ">"
	OpGe        = ">="
	OpAnd       = "and"
	OpOr        = "or"
	OpNot       = "not"
	OpNegate    = "negate"
	OpAlias     = "alias"
	OpCast      = "cast"
	OpGetField  = "getField"
	OpGetItem   = "getItem"
	OpIsNull    = "isNull"
	OpIsNotNull = "isNotNull"
	OpAsc       = "asc"
	OpDesc      = "desc"
)

// 二元运算符的SQL写法
var infixOperators = map[string]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpMod: "%",
	OpEq:  "=",
	OpNe:  "!=",
	OpLt:  "<",
	OpLe:  "<=",
	OpGt:  ">",
	OpGe:  ">=",
	OpAnd: "AND",
	OpOr:  "OR",
}

// IsInfixOperator 是否为二元中缀运算符
func IsInfixOperator(function string) bool {
	_, ok := infixOperators[function]
	return ok
}

func (l *Literal) String() string {
	return l.value.SQL()
}

func (c *ColumnRef) String() string {
	return QuoteIdentifier(c.name)
}

func (h *Handle) String() string {
	if h.origin == nil {
		return "handle#" + h.id
	}
	return h.origin.String()
}

func (c *Call) String() string {
	var b strings.Builder
	c.writeTo(&b)
	return b.String()
}

func (c *Call) writeTo(b *strings.Builder) {
	if sym, ok := infixOperators[c.function]; ok && len(c.args) == 2 && len(c.named) == 0 {
		b.WriteString("(")
		b.WriteString(c.args[0].String())
		b.WriteString(" ")
		b.WriteString(sym)
		b.WriteString(" ")
		b.WriteString(c.args[1].String())
		b.WriteString(")")
		return
	}
	switch c.function {
	case OpNot:
		if len(c.args) == 1 {
			b.WriteString("(NOT " + c.args[0].String() + ")")
			return
		}
	case OpNegate:
		if len(c.args) == 1 {
			b.WriteString("(- " + c.args[0].String() + ")")
			return
		}
	case OpAlias:
		if len(c.args) == 2 {
			b.WriteString(c.args[0].String() + " AS " + QuoteIdentifier(rawText(c.args[1])))
			return
		}
	case OpCast:
		if len(c.args) == 2 {
			b.WriteString("CAST(" + c.args[0].String() + " AS " + strings.ToUpper(rawText(c.args[1])) + ")")
			return
		}
	case OpGetField:
		if len(c.args) == 2 {
			b.WriteString(c.args[0].String() + "." + QuoteIdentifier(rawText(c.args[1])))
			return
		}
	case OpGetItem:
		if len(c.args) == 2 {
			b.WriteString(c.args[0].String() + "[" + c.args[1].String() + "]")
			return
		}
	case OpIsNull:
		if len(c.args) == 1 {
			b.WriteString("(" + c.args[0].String() + " IS NULL)")
			return
		}
	case OpIsNotNull:
		if len(c.args) == 1 {
			b.WriteString("(" + c.args[0].String() + " IS NOT NULL)")
			return
		}
	case OpAsc, OpDesc:
		if len(c.args) == 1 {
			b.WriteString(c.args[0].String() + " " + strings.ToUpper(c.function))
			return
		}
	}
	b.WriteString(c.function)
	b.WriteString("(")
	for i, arg := range c.args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	for i, na := range c.named {
		if i > 0 || len(c.args) > 0 {
			b.WriteString(", ")
		}
		b.WriteString(na.Name)
		b.WriteString(" => ")
		b.WriteString(na.Value.String())
	}
	b.WriteString(")")
}

// rawText 字符串字面量取原文，其他节点按SQL渲染
func rawText(n Node) string {
	if lit, ok := n.(*Literal); ok && lit.value.Kind() == types.KindString {
		return lit.value.Text()
	}
	return n.String()
}

// QuoteIdentifier 非普通标识符的列名用反引号包裹
func QuoteIdentifier(name string) string {
	if name == "*" {
		return name
	}
	plain := true
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		plain = false
		break
	}
	if plain && name != "" {
		return name
	}
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
