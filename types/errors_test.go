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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      TypedError
		typ      ErrorType
		expected string
	}{
		{
			name:     "固定个数",
			err:      &ArityError{Function: "upper", Min: 1, Max: 1, Got: 2},
			typ:      ErrorTypeArity,
			expected: "[ARITY_ERROR] function upper requires exactly 1 arguments, got 2",
		},
		{
			name:     "无上限",
			err:      &ArityError{Function: "concat_ws", Min: 1, Max: -1, Got: 0},
			typ:      ErrorTypeArity,
			expected: "[ARITY_ERROR] function concat_ws requires at least 1 arguments, got 0",
		},
		{
			name:     "范围",
			err:      &ArityError{Function: "window", Min: 2, Max: 4, Got: 5},
			typ:      ErrorTypeArity,
			expected: "[ARITY_ERROR] function window requires 2 to 4 arguments, got 5",
		},
		{
			name:     "不支持的字面量",
			err:      &UnsupportedLiteralError{Function: "lit", Position: 1, GoType: "chan int", Reason: "no scalar kind"},
			typ:      ErrorTypeUnsupportedLiteral,
			expected: "[UNSUPPORTED_LITERAL] unsupported literal of type chan int for argument 1 of lit: no scalar kind",
		},
		{
			name:     "参数不足",
			err:      &InsufficientArgumentsError{Function: "greatest", AtLeast: 2, Got: 1},
			typ:      ErrorTypeInsufficientArguments,
			expected: "[INSUFFICIENT_ARGUMENTS] greatest should take at least 2 columns, got 1",
		},
		{
			name:     "窗口单位",
			err:      &UnsupportedWindowUnitError{Interval: "1 month", Unit: "months"},
			typ:      ErrorTypeUnsupportedWindowUnit,
			expected: "[UNSUPPORTED_WINDOW_UNIT] intervals in months are not supported for windows: \"1 month\"",
		},
		{
			name:     "引擎拒绝",
			err:      &EngineRejectedExpression{Name: "AnalysisException", Message: "cannot resolve"},
			typ:      ErrorTypeEngineRejected,
			expected: "[ENGINE_REJECTED_EXPRESSION] AnalysisException: cannot resolve",
		},
		{
			name:     "未知函数",
			err:      &UnknownFunctionError{Function: "uper", Suggestions: []string{"upper"}},
			typ:      ErrorTypeUnknownFunction,
			expected: "[UNKNOWN_FUNCTION] function uper is not registered, did you mean: upper",
		},
		{
			name:     "非法参数",
			err:      &InvalidArgumentError{Function: "when", Position: 1, Message: "condition must be a column"},
			typ:      ErrorTypeInvalidArgument,
			expected: "[INVALID_ARGUMENT] argument 1 of when: condition must be a column",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.Equal(t, tt.typ, tt.err.ErrorType())
		})
	}
}

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "ARITY_ERROR", ErrorTypeArity.String())
	assert.Equal(t, "INVALID_ARGUMENT", ErrorTypeInvalidArgument.String())
	assert.Equal(t, "UNKNOWN_ERROR", ErrorType(99).String())
}

func TestTypedErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("column 2: %w", &EngineRejectedExpression{Message: "boom"})
	var typed TypedError
	assert.True(t, errors.As(err, &typed))
	assert.Equal(t, ErrorTypeEngineRejected, typed.ErrorType())
	assert.Equal(t, "[ENGINE_REJECTED_EXPRESSION] boom", typed.Error())
}
