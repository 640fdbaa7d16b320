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

package functions

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rulego/colexpr/types"
)

// Registry 只读的函数描述符表。构造完成后不再修改，可无锁并发读取。
// 对外返回的描述符都是副本，修改副本不影响注册表。
type Registry struct {
	functions  map[string]*Descriptor
	order      []string
	categories map[Category][]*Descriptor
	groups     map[FunctionType][]*Descriptor
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in registry, building it on first use
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := NewRegistry(builtinDescriptors()...)
		if err != nil {
			panic(fmt.Sprintf("functions: invalid builtin catalog: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// NewRegistry 创建函数注册表，名称重复或描述符无效时返回错误
func NewRegistry(descs ...*Descriptor) (*Registry, error) {
	r := &Registry{
		functions:  make(map[string]*Descriptor, len(descs)),
		categories: make(map[Category][]*Descriptor),
		groups:     make(map[FunctionType][]*Descriptor),
	}
	for _, d := range descs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		// 检查函数是否已存在
		if _, exists := r.functions[d.Name]; exists {
			return nil, fmt.Errorf("function %s already registered", d.Name)
		}
		d = d.Clone()
		r.functions[d.Name] = d
		r.order = append(r.order, d.Name)
		r.categories[d.Category] = append(r.categories[d.Category], d)
		r.groups[d.Group] = append(r.groups[d.Group], d)
	}
	for _, name := range r.order {
		d := r.functions[name]
		if d.DeprecatedFor == "" {
			continue
		}
		if _, ok := r.functions[d.DeprecatedFor]; !ok {
			return nil, fmt.Errorf("function %s is deprecated for unknown function %s", d.Name, d.DeprecatedFor)
		}
	}
	return r, nil
}

// Extend returns a new registry holding r's descriptors followed by descs
func (r *Registry) Extend(descs ...*Descriptor) (*Registry, error) {
	all := make([]*Descriptor, 0, len(r.order)+len(descs))
	for _, name := range r.order {
		all = append(all, r.functions[name])
	}
	return NewRegistry(append(all, descs...)...)
}

// Lookup 按名称查找，大小写敏感
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.functions[name]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// Get is Lookup returning *types.UnknownFunctionError with suggestions
func (r *Registry) Get(name string) (*Descriptor, error) {
	d, err := r.get(name)
	if err != nil {
		return nil, err
	}
	return d.Clone(), nil
}

// get 返回注册表内部的描述符，仅供包内只读使用
func (r *Registry) get(name string) (*Descriptor, error) {
	if d, ok := r.functions[name]; ok {
		return d, nil
	}
	return nil, &types.UnknownFunctionError{Function: name, Suggestions: r.Suggest(name)}
}

// Suggest 返回相近的函数名：大小写不敏感相等、前缀、忽略下划线相等，
// 或编辑距离不超过 maxSuggestDistance。越相近越靠前，最多5个。
func (r *Registry) Suggest(name string) []string {
	lower := strings.ToLower(name)
	if lower == "" {
		return nil
	}
	maxDist := maxSuggestDistance
	if len(lower) < 4 {
		maxDist = 1
	}
	type candidate struct {
		name  string
		score int
	}
	var found []candidate
	for _, n := range r.order {
		ln := strings.ToLower(n)
		if ln == lower || (len(lower) >= 3 && strings.HasPrefix(ln, lower)) ||
			strings.ReplaceAll(ln, "_", "") == strings.ReplaceAll(lower, "_", "") {
			found = append(found, candidate{n, 0})
			continue
		}
		if d := editDistance(lower, ln, maxDist); d <= maxDist {
			found = append(found, candidate{n, d})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].score != found[j].score {
			return found[i].score < found[j].score
		}
		return found[i].name < found[j].name
	})
	if len(found) > 5 {
		found = found[:5]
	}
	var out []string
	for _, c := range found {
		out = append(out, c.name)
	}
	return out
}

const maxSuggestDistance = 2

// editDistance Levenshtein距离；超过limit后提前返回limit+1
func editDistance(a, b string, limit int) int {
	ra, rb := []rune(a), []rune(b)
	if d := len(ra) - len(rb); d > limit || -d > limit {
		return limit + 1
	}
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		best := cur[0]
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			best = min(best, cur[j])
		}
		if best > limit {
			return limit + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// List 按注册顺序列出所有函数
func (r *Registry) List() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.functions[name].Clone())
	}
	return out
}

// Names returns all function names sorted
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	sort.Strings(out)
	return out
}

// ListByCategory 按执行类别列出
func (r *Registry) ListByCategory(c Category) []*Descriptor {
	return cloneAll(r.categories[c])
}

// ListByType 按分组列出
func (r *Registry) ListByType(t FunctionType) []*Descriptor {
	return cloneAll(r.groups[t])
}

func cloneAll(descs []*Descriptor) []*Descriptor {
	out := make([]*Descriptor, len(descs))
	for i, d := range descs {
		out[i] = d.Clone()
	}
	return out
}

// Len 函数个数
func (r *Registry) Len() int {
	return len(r.order)
}

// Lookup 在默认注册表中查找
func Lookup(name string) (*Descriptor, bool) {
	return Default().Lookup(name)
}

// ListAll 列出默认注册表中的所有函数
func ListAll() []*Descriptor {
	return Default().List()
}
