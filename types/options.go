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

// OptionsMap 有序的 string->string 选项表，是格式类函数（from_json/to_csv等）
// 在引擎边界上看到的唯一形态
type OptionsMap struct {
	keys   []string
	values map[string]string
}

// NewOptionsMap 创建空选项表
func NewOptionsMap() OptionsMap {
	return OptionsMap{values: make(map[string]string)}
}

// With 返回追加(或覆盖)一个键后的新选项表，原表不变
func (m OptionsMap) With(key, value string) OptionsMap {
	out := OptionsMap{
		keys:   make([]string, 0, len(m.keys)+1),
		values: make(map[string]string, len(m.values)+1),
	}
	out.keys = append(out.keys, m.keys...)
	for k, v := range m.values {
		out.values[k] = v
	}
	if _, exists := out.values[key]; !exists {
		out.keys = append(out.keys, key)
	}
	out.values[key] = value
	return out
}

// Get 读取选项值
func (m OptionsMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys 按插入顺序返回键
func (m OptionsMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m OptionsMap) Len() int {
	return len(m.keys)
}

// ToMap 转换为普通map
func (m OptionsMap) ToMap() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Equal 键、值和顺序都相同
func (m OptionsMap) Equal(o OptionsMap) bool {
	if len(m.keys) != len(o.keys) {
		return false
	}
	for i, k := range m.keys {
		if o.keys[i] != k || o.values[k] != m.values[k] {
			return false
		}
	}
	return true
}
