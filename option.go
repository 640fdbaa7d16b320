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
	"io"

	"github.com/rulego/colexpr/engine"
	"github.com/rulego/colexpr/functions"
	"github.com/rulego/colexpr/logger"
	"github.com/rulego/colexpr/types"
)

// Option 表示对Builder默认行为的修改配置
type Option func(*Builder)

// WithLogger 设置自定义日志记录器。
// 废弃函数提示、解析与提交的调试信息都输出到这里。
//
// 示例:
//
//	b := colexpr.New(colexpr.WithLogger(logger.NewLogger(logger.DEBUG, os.Stderr)))
func WithLogger(log logger.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.logger = log
		}
	}
}

// WithLogOutput 以给定级别输出日志到output
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(b *Builder) {
		b.logger = logger.NewLogger(level, output)
	}
}

// WithDiscardLog 禁用日志输出
func WithDiscardLog() Option {
	return func(b *Builder) {
		b.logger = logger.NewDiscardLogger()
	}
}

// WithConfig 替换全部可调参数
func WithConfig(c types.Config) Option {
	return func(b *Builder) {
		b.config = c
	}
}

// WithDeprecationNotices 是否为废弃的函数名输出警告
func WithDeprecationNotices(enabled bool) Option {
	return func(b *Builder) {
		b.config.DeprecationNotices = enabled
	}
}

// WithMaxDepth 提交给引擎的表达式树最大深度
func WithMaxDepth(depth int) Option {
	return func(b *Builder) {
		b.config.MaxDepth = depth
	}
}

// WithRegistry 使用自定义函数目录，例如 functions.Default().Extend(...)
func WithRegistry(r *functions.Registry) Option {
	return func(b *Builder) {
		if r != nil {
			b.registry = r
		}
	}
}

// WithEngine 绑定执行引擎，之后可以用Submit提交表达式
func WithEngine(e engine.Engine, opts ...engine.Option) Option {
	return func(b *Builder) {
		b.engine = e
		b.bridgeOpts = opts
	}
}
