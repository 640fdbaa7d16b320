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
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
)

// Columns 列顺序：先按 fieldOrder，剩余的列按字母顺序追加
func Columns(data []map[string]interface{}, fieldOrder []string) []string {
	columnSet := make(map[string]bool)
	for _, row := range data {
		for col := range row {
			columnSet[col] = true
		}
	}

	var columns []string
	for _, field := range fieldOrder {
		if columnSet[field] {
			columns = append(columns, field)
			delete(columnSet, field)
		}
	}
	rest := make([]string, 0, len(columnSet))
	for col := range columnSet {
		rest = append(rest, col)
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

// RenderSlice writes data as a bordered table followed by the row count.
// Missing values render as empty cells and nil as NULL.
func RenderSlice(w io.Writer, data []map[string]interface{}, fieldOrder []string) {
	if len(data) == 0 {
		fmt.Fprintln(w, "(0 rows)")
		return
	}
	columns := Columns(data, fieldOrder)
	rows := make([][]string, len(data))
	for i, row := range data {
		rows[i] = make([]string, len(columns))
		for j, col := range columns {
			if v, exists := row[col]; exists {
				rows[i][j] = Cell(v)
			}
		}
	}
	Render(w, columns, rows)
	fmt.Fprintf(w, "(%d rows)\n", len(data))
}

// Render writes a left aligned table with the header exactly as given
func Render(w io.Writer, header []string, rows [][]string) {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.AppendBulk(rows)
	t.Render()
}

// Cell 单元格文本
func Cell(v interface{}) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

// Format writes table data, supports multiple data types
func Format(w io.Writer, result interface{}, fieldOrder []string) {
	switch v := result.(type) {
	case []map[string]interface{}:
		RenderSlice(w, v, fieldOrder)
	case map[string]interface{}:
		if len(v) == 0 {
			fmt.Fprintln(w, "(0 rows)")
			return
		}
		RenderSlice(w, []map[string]interface{}{v}, fieldOrder)
	default:
		fmt.Fprintf(w, "Result: %v\n", result)
	}
}
