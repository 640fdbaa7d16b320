package local

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rulego/colexpr/types"
)

// 结构化文本函数的默认格式选项
const (
	defaultJSONTimestampPattern = "yyyy-MM-dd'T'HH:mm:ss.SSSXXX"
	defaultJSONDatePattern      = "yyyy-MM-dd"
)

// field 结构类型的字段定义
type field struct {
	name     string
	dataType string
}

// JSON/CSV 函数。带选项的函数最后一个参数为选项映射
func init() {
	register("get_json_object", func(e *Engine, args []interface{}) (interface{}, error) {
		doc, path, err := texts(args[0], args[1])
		if err != nil {
			return nil, err
		}
		var v interface{}
		if err := decodeJSON(doc, &v); err != nil {
			return nil, nil
		}
		v, ok := jsonPath(v, path)
		if !ok || v == nil {
			return nil, nil
		}
		if s, ok := v.(string); ok {
			return s, nil
		}
		out, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return string(out), nil
	})
	register("from_json", func(e *Engine, args []interface{}) (interface{}, error) {
		doc, schema, err := texts(args[0], args[1])
		if err != nil {
			return nil, err
		}
		fields, err := parseSchema(schema)
		if err != nil {
			return nil, err
		}
		var v map[string]interface{}
		if err := decodeJSON(doc, &v); err != nil {
			return nil, nil
		}
		out := make(map[string]interface{}, len(fields))
		for _, f := range fields {
			out[f.name], _ = e.fieldValue(normalize(v[f.name]), f.dataType)
		}
		return out, nil
	})
	register("to_json", func(e *Engine, args []interface{}) (interface{}, error) {
		opts, err := optionsArg(args)
		if err != nil {
			return nil, err
		}
		v, err := e.jsonValue(args[0], opts)
		if err != nil {
			return nil, err
		}
		var out []byte
		if opts["pretty"] == "true" {
			out, err = json.MarshalIndent(v, "", "  ")
		} else {
			out, err = json.Marshal(v)
		}
		if err != nil {
			return nil, err
		}
		return string(out), nil
	})
	register("schema_of_json", func(e *Engine, args []interface{}) (interface{}, error) {
		doc, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		var v interface{}
		if err := decodeJSON(doc, &v); err != nil {
			return nil, err
		}
		return inferJSONType(v), nil
	})
	register("from_csv", func(e *Engine, args []interface{}) (interface{}, error) {
		line, schema, err := texts(args[0], args[1])
		if err != nil {
			return nil, err
		}
		opts, err := optionsArg(args)
		if err != nil {
			return nil, err
		}
		fields, err := parseSchema(schema)
		if err != nil {
			return nil, err
		}
		record, err := readCSV(line, opts)
		if err != nil {
			return nil, nil
		}
		out := make(map[string]interface{}, len(fields))
		for i, f := range fields {
			out[f.name] = nil
			if i < len(record) && record[i] != opts["nullValue"] {
				out[f.name], _ = e.fieldValue(record[i], f.dataType)
			}
		}
		return out, nil
	})
	register("to_csv", func(e *Engine, args []interface{}) (interface{}, error) {
		m, err := toMap(args[0])
		if err != nil {
			return nil, err
		}
		opts, err := optionsArg(args)
		if err != nil {
			return nil, err
		}
		keys := sortedKeys(m)
		record := make([]string, len(keys))
		for i, k := range keys {
			if m[k] == nil {
				record[i] = opts["nullValue"]
				continue
			}
			if record[i], err = toText(m[k]); err != nil {
				return nil, err
			}
		}
		return writeCSV(record, opts)
	})
	register("schema_of_csv", func(e *Engine, args []interface{}) (interface{}, error) {
		line, err := toText(args[0])
		if err != nil {
			return nil, err
		}
		opts, err := optionsArg(args)
		if err != nil {
			return nil, err
		}
		record, err := readCSV(line, opts)
		if err != nil {
			return nil, err
		}
		parts := make([]string, len(record))
		for i, v := range record {
			parts[i] = fmt.Sprintf("_c%d: %s", i, inferCSVType(v))
		}
		return "STRUCT<" + strings.Join(parts, ", ") + ">", nil
	})
}

// optionsArg 取出最后一个参数中的选项
func optionsArg(args []interface{}) (map[string]string, error) {
	out := map[string]string{}
	if len(args) == 0 {
		return out, nil
	}
	m, ok := args[len(args)-1].(map[string]interface{})
	if !ok {
		return out, nil
	}
	for k, v := range m {
		s, err := toText(v)
		if err != nil {
			return nil, err
		}
		out[k] = s
	}
	return out, nil
}

func decodeJSON(doc string, v interface{}) error {
	dec := json.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()
	return dec.Decode(v)
}

// jsonPath 支持 $.a.b[0] 形式的路径
func jsonPath(v interface{}, path string) (interface{}, bool) {
	if !strings.HasPrefix(path, "$") {
		return nil, false
	}
	rest := path[1:]
	for rest != "" {
		switch rest[0] {
		case '.':
			end := strings.IndexAny(rest[1:], ".[")
			name := rest[1:]
			if end >= 0 {
				name = rest[1 : end+1]
				rest = rest[end+1:]
			} else {
				rest = ""
			}
			m, ok := v.(map[string]interface{})
			if !ok {
				return nil, false
			}
			if v, ok = m[name]; !ok {
				return nil, false
			}
		case '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, false
			}
			idx, err := strconv.Atoi(rest[1:end])
			rest = rest[end+1:]
			l, ok := v.([]interface{})
			if err != nil || !ok || idx < 0 || idx >= len(l) {
				return nil, false
			}
			v = l[idx]
		default:
			return nil, false
		}
	}
	return v, true
}

// parseSchema 解析 "a INT, b STRING" 或 "STRUCT<a: INT, b: STRING>"
func parseSchema(schema string) ([]field, error) {
	s := strings.TrimSpace(schema)
	if upper := strings.ToUpper(s); strings.HasPrefix(upper, "STRUCT<") && strings.HasSuffix(s, ">") {
		s = s[len("STRUCT<") : len(s)-1]
	}
	var fields []field
	for _, part := range splitTopLevel(s) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i := strings.IndexAny(part, " :")
		if i <= 0 {
			return nil, fmt.Errorf("invalid schema %q: missing type for %q", schema, part)
		}
		name := strings.Trim(part[:i], "`")
		dataType := strings.TrimSpace(strings.TrimLeft(part[i:], " :"))
		dataType = strings.TrimSuffix(strings.TrimSuffix(dataType, " NOT NULL"), " not null")
		fields = append(fields, field{name: name, dataType: dataType})
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("invalid schema %q", schema)
	}
	return fields, nil
}

// splitTopLevel 按不在尖括号内的逗号拆分
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, c := range s {
		switch c {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// fieldValue 嵌套类型原样保留，其余按类型名转换
func (e *Engine) fieldValue(v interface{}, dataType string) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	upper := strings.ToUpper(dataType)
	if strings.HasPrefix(upper, "ARRAY") || strings.HasPrefix(upper, "MAP") || strings.HasPrefix(upper, "STRUCT") {
		return v, nil
	}
	return e.castTo(v, dataType)
}

// jsonValue 转换为可序列化的值，时间按选项中的模式格式化
func (e *Engine) jsonValue(v interface{}, opts map[string]string) (interface{}, error) {
	switch x := v.(type) {
	case time.Time:
		p := opts["timestampFormat"]
		if p == "" {
			p = defaultJSONTimestampPattern
		}
		return e.format(x, p)
	case types.Date:
		p := opts["dateFormat"]
		if p == "" {
			p = defaultJSONDatePattern
		}
		return e.format(x.Time(), p)
	case []byte:
		return x, nil
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, item := range x {
			var err error
			if out[i], err = e.jsonValue(item, opts); err != nil {
				return nil, err
			}
		}
		return out, nil
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, item := range x {
			// 结构中的空字段不输出
			if item == nil {
				continue
			}
			var err error
			if out[k], err = e.jsonValue(item, opts); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	return v, nil
}

func inferJSONType(v interface{}) string {
	switch x := v.(type) {
	case bool:
		return "BOOLEAN"
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return "BIGINT"
		}
		return "DOUBLE"
	case []interface{}:
		elem := "STRING"
		for _, item := range x {
			if item != nil {
				elem = inferJSONType(item)
				break
			}
		}
		return "ARRAY<" + elem + ">"
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + inferJSONType(x[k])
		}
		return "STRUCT<" + strings.Join(parts, ", ") + ">"
	}
	return "STRING"
}

func inferCSVType(v string) string {
	if _, err := strconv.ParseInt(v, 10, 32); err == nil {
		return "INT"
	}
	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		return "BIGINT"
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return "DOUBLE"
	}
	if _, err := strconv.ParseBool(v); err == nil && (strings.EqualFold(v, "true") || strings.EqualFold(v, "false")) {
		return "BOOLEAN"
	}
	return "STRING"
}

func separator(opts map[string]string) (rune, error) {
	sep := opts["sep"]
	if sep == "" {
		sep = opts["delimiter"]
	}
	if sep == "" {
		return ',', nil
	}
	if sep == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(sep)
	if size != len(sep) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", sep)
	}
	return r, nil
}

func readCSV(line string, opts map[string]string) ([]string, error) {
	sep, err := separator(opts)
	if err != nil {
		return nil, err
	}
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.Read()
}

func writeCSV(record []string, opts map[string]string) (interface{}, error) {
	sep, err := separator(opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = sep
	if err := w.Write(record); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return strings.TrimRight(buf.String(), "\r\n"), nil
}
