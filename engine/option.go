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
	"github.com/rulego/colexpr/logger"
)

// Option 桥接层配置选项
type Option func(*Bridge)

// WithLogger 设置日志记录器
func WithLogger(l logger.Logger) Option {
	return func(b *Bridge) {
		b.logger = l
	}
}

// WithMaxDepth 限制提交的表达式树深度
func WithMaxDepth(depth int) Option {
	return func(b *Bridge) {
		if depth > 0 {
			b.maxDepth = depth
		}
	}
}

// WithIDFunc 设置句柄ID生成函数，默认使用UUID
func WithIDFunc(fn func() string) Option {
	return func(b *Bridge) {
		if fn != nil {
			b.newID = fn
		}
	}
}
