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

import "reflect"

// IsNil reports whether n is nil or a typed nil pointer such as (*Literal)(nil)
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Equal 结构相等：同类节点、同名、子节点逐一相等。
// 命名参数按名称比较，与顺序无关。
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Literal:
		return x.value.Equal(b.(*Literal).value)
	case *ColumnRef:
		return x.name == b.(*ColumnRef).name
	case *Handle:
		return x.id == b.(*Handle).id
	case *Call:
		y := b.(*Call)
		if x.function != y.function || len(x.args) != len(y.args) || len(x.named) != len(y.named) {
			return false
		}
		for i := range x.args {
			if !Equal(x.args[i], y.args[i]) {
				return false
			}
		}
		for _, na := range x.named {
			other, ok := y.Named(na.Name)
			if !ok || !Equal(na.Value, other) {
				return false
			}
		}
		return true
	}
	return false
}

// Walk 先序遍历，fn返回false时跳过该节点的子节点。
// Handle不展开其Origin。
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	if c, ok := n.(*Call); ok {
		for _, arg := range c.args {
			Walk(arg, fn)
		}
		for _, na := range c.named {
			Walk(na.Value, fn)
		}
	}
}

// Columns 返回表达式引用的列名，按首次出现顺序去重
func Columns(n Node) []string {
	seen := make(map[string]bool)
	var out []string
	Walk(n, func(node Node) bool {
		if c, ok := node.(*ColumnRef); ok && !seen[c.name] {
			seen[c.name] = true
			out = append(out, c.name)
		}
		return true
	})
	return out
}

// Depth 树深度，叶子为1
func Depth(n Node) int {
	c, ok := n.(*Call)
	if !ok || c == nil {
		return 1
	}
	max := 0
	for _, arg := range c.args {
		if d := Depth(arg); d > max {
			max = d
		}
	}
	for _, na := range c.named {
		if d := Depth(na.Value); d > max {
			max = d
		}
	}
	return max + 1
}

// ToMap 转换为普通数据结构，供JSON/YAML输出
func ToMap(n Node) map[string]interface{} {
	switch x := n.(type) {
	case *Literal:
		return map[string]interface{}{
			"lit":  x.value.Text(),
			"kind": x.value.Kind().String(),
		}
	case *ColumnRef:
		return map[string]interface{}{"col": x.name}
	case *Handle:
		return map[string]interface{}{"handle": x.id}
	case *Call:
		m := map[string]interface{}{"fn": x.function}
		if len(x.args) > 0 {
			args := make([]interface{}, len(x.args))
			for i, arg := range x.args {
				args[i] = ToMap(arg)
			}
			m["args"] = args
		}
		if len(x.named) > 0 {
			named := make(map[string]interface{}, len(x.named))
			for _, na := range x.named {
				named[na.Name] = ToMap(na.Value)
			}
			m["named"] = named
		}
		return m
	}
	return nil
}
