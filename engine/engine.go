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

// Package engine is the seam between expression trees and the engine that
// evaluates them. Trees are translated bottom-up into engine references and
// wrapped into handles that can be composed further.
package engine

import (
	"context"
	"fmt"

	"github.com/rulego/colexpr/types"
)

// Ref 引擎内部的表达式引用，对本模块不透明
type Ref interface{}

// Engine 执行引擎接口
type Engine interface {
	// Literal 创建带类型的常量
	Literal(value types.Scalar) (Ref, error)
	// Column 引用列
	Column(name string) (Ref, error)
	// Call 以已转换的参数调用函数，options为格式类函数的选项
	Call(ctx context.Context, function string, args []Ref, options types.OptionsMap) (Ref, error)
}

// Failure is how an engine reports that it rejects an expression.
// Name is the engine's error class, e.g. "AnalysisException".
type Failure struct {
	Name    string
	Message string
}

func (f *Failure) Error() string {
	if f.Name == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", f.Name, f.Message)
}

// Reject is shorthand for &Failure{name, fmt.Sprintf(format, args...)}
func Reject(name, format string, args ...interface{}) *Failure {
	return &Failure{Name: name, Message: fmt.Sprintf(format, args...)}
}
