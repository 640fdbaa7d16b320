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

/*
Package colexpr 是列表达式的构建层：把函数调用解析为不可变的表达式树，
再通过桥接层交给执行引擎。

# 核心特性

• 函数目录 - 标量、聚合、窗口函数的名称、参数个数与参数策略
• 重载解析 - 字符串按函数约定视为列名或字符串字面量，Go值转换为带类型的字面量
• 时间窗口 - 滚动窗口与滑动窗口，支持起始偏移，纪元之前的时间同样正确
• 格式选项 - from_json/to_csv 等函数的选项统一序列化为字符串映射
• 延迟求值 - 表达式树提交给引擎后得到句柄，句柄可以继续参与组合

# 入门示例

构建表达式：

	call, err := colexpr.SubstringIndex("a.b.c.d", ".", 2)
	// substring_index('a.b.c.d', '.', 2)

	w, err := colexpr.Window("ts", "10 minutes", "5 minutes")
	// window(ts, '10 minutes', '5 minutes')

	sum, err := colexpr.Add(colexpr.Col("price"), 1)
	// (price + 1)

运算符的字符串参数是字面量，引用列要使用 Col；命名函数的字符串参数
一般是列名。每个函数的参数约定见 functions 包的目录。

提交给引擎求值：

	eng := local.New()
	b := colexpr.New(colexpr.WithEngine(eng))
	h, err := b.Apply(ctx, "upper", "name")
	v, err := eng.Evaluate(ctx, h, map[string]interface{}{"name": "ann"})

# 错误

构建期的错误都是同步返回的，可以用 errors.As 区分：

	*types.ArityError                  参数个数不符合函数要求
	*types.InsufficientArgumentsError  greatest/least 少于两个参数
	*types.UnsupportedLiteralError     无法转换为字面量的Go值
	*types.UnsupportedWindowUnitError  窗口时长使用了月、年等日历单位
	*types.UnknownFunctionError        目录中没有该函数
	*types.EngineRejectedExpression    引擎拒绝了表达式，消息为引擎原文
*/
package colexpr
