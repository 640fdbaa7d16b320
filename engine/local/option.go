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

package local

import (
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/rulego/colexpr/functions"
	"github.com/rulego/colexpr/logger"
	"github.com/rulego/colexpr/types"
)

// Option 本地引擎配置选项
type Option func(*Engine)

// WithSchema 限定可引用的列，未设置时任何列名都可以引用
func WithSchema(columns ...string) Option {
	return func(e *Engine) {
		e.schema = make([]string, len(columns))
		for i, c := range columns {
			e.schema[i] = norm.NFC.String(c)
		}
	}
}

// WithConfig 使用配置中的时区
func WithConfig(c types.Config) Option {
	return func(e *Engine) {
		e.loc = c.Normalize().TimeZone
	}
}

// WithLocation 设置会话时区
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithLogger 设置日志记录器
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock 设置current_date/current_timestamp使用的时钟
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithRegistry 使用自定义函数目录
func WithRegistry(r *functions.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}
