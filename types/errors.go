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

package types

import (
	"fmt"
	"strings"
)

// ErrorType 定义错误类型
type ErrorType int

const (
	ErrorTypeArity ErrorType = iota
	ErrorTypeUnsupportedLiteral
	ErrorTypeInsufficientArguments
	ErrorTypeUnsupportedWindowUnit
	ErrorTypeEngineRejected
	ErrorTypeUnknownFunction
	ErrorTypeInvalidArgument
)

// String 获取错误类型名称
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeArity:
		return "ARITY_ERROR"
	case ErrorTypeUnsupportedLiteral:
		return "UNSUPPORTED_LITERAL"
	case ErrorTypeInsufficientArguments:
		return "INSUFFICIENT_ARGUMENTS"
	case ErrorTypeUnsupportedWindowUnit:
		return "UNSUPPORTED_WINDOW_UNIT"
	case ErrorTypeEngineRejected:
		return "ENGINE_REJECTED_EXPRESSION"
	case ErrorTypeUnknownFunction:
		return "UNKNOWN_FUNCTION"
	case ErrorTypeInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "UNKNOWN_ERROR"
	}
}

// TypedError 所有构造期错误与引擎错误的公共接口
type TypedError interface {
	error
	ErrorType() ErrorType
}

// ArityError 参数个数超出函数描述符的[min,max]范围
type ArityError struct {
	Function string
	Min      int
	Max      int // -1 表示无上限
	Got      int
}

func (e *ArityError) Error() string {
	var want string
	switch {
	case e.Max < 0:
		want = fmt.Sprintf("at least %d", e.Min)
	case e.Min == e.Max:
		want = fmt.Sprintf("exactly %d", e.Min)
	default:
		want = fmt.Sprintf("%d to %d", e.Min, e.Max)
	}
	return fmt.Sprintf("[%s] function %s requires %s arguments, got %d", e.ErrorType(), e.Function, want, e.Got)
}

func (e *ArityError) ErrorType() ErrorType { return ErrorTypeArity }

// UnsupportedLiteralError 值无法映射到任何标量类型
type UnsupportedLiteralError struct {
	Function string
	Position int
	GoType   string
	Reason   string
}

func (e *UnsupportedLiteralError) Error() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("[%s] unsupported literal of type %s", e.ErrorType(), e.GoType))
	if e.Function != "" {
		builder.WriteString(fmt.Sprintf(" for argument %d of %s", e.Position, e.Function))
	}
	if e.Reason != "" {
		builder.WriteString(": ")
		builder.WriteString(e.Reason)
	}
	return builder.String()
}

func (e *UnsupportedLiteralError) ErrorType() ErrorType { return ErrorTypeUnsupportedLiteral }

// InsufficientArgumentsError 函数自身要求的最少参数数未满足，例如greatest至少需要2个
type InsufficientArgumentsError struct {
	Function string
	AtLeast  int
	Got      int
}

func (e *InsufficientArgumentsError) Error() string {
	return fmt.Sprintf("[%s] %s should take at least %d columns, got %d", e.ErrorType(), e.Function, e.AtLeast, e.Got)
}

func (e *InsufficientArgumentsError) ErrorType() ErrorType { return ErrorTypeInsufficientArguments }

// UnsupportedWindowUnitError 窗口时长使用了没有固定长度的日历单位（月、年）
type UnsupportedWindowUnitError struct {
	Interval string
	Unit     string
}

func (e *UnsupportedWindowUnitError) Error() string {
	return fmt.Sprintf("[%s] intervals in %s are not supported for windows: %q", e.ErrorType(), e.Unit, e.Interval)
}

func (e *UnsupportedWindowUnitError) ErrorType() ErrorType { return ErrorTypeUnsupportedWindowUnit }

// EngineRejectedExpression 执行引擎拒绝了表达式树，Message为引擎原文
type EngineRejectedExpression struct {
	Name    string
	Message string
}

func (e *EngineRejectedExpression) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("[%s] %s", e.ErrorType(), e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.ErrorType(), e.Name, e.Message)
}

func (e *EngineRejectedExpression) ErrorType() ErrorType { return ErrorTypeEngineRejected }

// UnknownFunctionError 注册表中不存在的函数名
type UnknownFunctionError struct {
	Function    string
	Suggestions []string
}

func (e *UnknownFunctionError) Error() string {
	msg := fmt.Sprintf("[%s] function %s is not registered", e.ErrorType(), e.Function)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(", did you mean: %s", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *UnknownFunctionError) ErrorType() ErrorType { return ErrorTypeUnknownFunction }

// InvalidArgumentError 参数形态不满足函数约定（例如when的条件不是表达式、窗口时长为空）
type InvalidArgumentError struct {
	Function string
	Position int
	Message  string
}

func (e *InvalidArgumentError) Error() string {
	if e.Function == "" {
		return fmt.Sprintf("[%s] %s", e.ErrorType(), e.Message)
	}
	return fmt.Sprintf("[%s] argument %d of %s: %s", e.ErrorType(), e.Position, e.Function, e.Message)
}

func (e *InvalidArgumentError) ErrorType() ErrorType { return ErrorTypeInvalidArgument }
