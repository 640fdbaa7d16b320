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

package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumns(t *testing.T) {
	data := []map[string]interface{}{
		{"name": "Alice", "age": 30},
		{"city": "Paris", "name": "Bob"},
	}
	assert.Equal(t, []string{"age", "city", "name"}, Columns(data, nil))
	assert.Equal(t, []string{"name", "age", "city"}, Columns(data, []string{"name", "missing", "age"}))
}

// TestRenderSlice 测试表格输出
func TestRenderSlice(t *testing.T) {
	var buf bytes.Buffer
	RenderSlice(&buf, nil, nil)
	assert.Equal(t, "(0 rows)\n", buf.String())

	buf.Reset()
	data := []map[string]interface{}{
		{"name": "Alice", "age": 30},
		{"name": "Bob", "age": nil},
	}
	RenderSlice(&buf, data, []string{"name", "age"})
	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[1], "name")
	assert.Less(t, strings.Index(lines[1], "name"), strings.Index(lines[1], "age"))
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "NULL")
	assert.True(t, strings.HasSuffix(out, "(2 rows)\n"))
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	Format(&buf, map[string]interface{}{"x": 1}, nil)
	assert.Contains(t, buf.String(), "(1 rows)")

	buf.Reset()
	Format(&buf, 42, nil)
	assert.Equal(t, "Result: 42\n", buf.String())
}
