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
	"time"
)

// DefaultMaxDepth 提交给引擎的表达式树最大深度
const DefaultMaxDepth = 1000

// Config 表达式构建与提交的可调参数
type Config struct {
	// 是否为废弃函数名输出提示
	DeprecationNotices bool `json:"deprecationNotices" yaml:"deprecationNotices"`
	// 是否允许单个集合参数展开为参数列表（struct/array/create_map/map_concat）
	FlattenSingleCollection bool `json:"flattenSingleCollection" yaml:"flattenSingleCollection"`
	// 提交到引擎时允许的最大树深度
	MaxDepth int `json:"maxDepth" yaml:"maxDepth"`
	// 参考引擎渲染日期时间时使用的时区
	TimeZone *time.Location `json:"-" yaml:"-"`
}

// NewConfig 创建默认配置
func NewConfig() Config {
	return Config{
		DeprecationNotices:      true,
		FlattenSingleCollection: true,
		MaxDepth:                DefaultMaxDepth,
		TimeZone:                time.UTC,
	}
}

// Normalize 用默认值填充未设置的字段
func (c Config) Normalize() Config {
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.TimeZone == nil {
		c.TimeZone = time.UTC
	}
	return c
}
