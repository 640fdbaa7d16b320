package fieldpath

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// PartKind 路径片段类型
type PartKind int

const (
	// PartField a.b 形式的字段访问
	PartField PartKind = iota
	// PartIndex [0] 形式的下标，负数从末尾计
	PartIndex
	// PartKey ['k'] 形式的键访问
	PartKey
)

// Part is one step of a field path
type Part struct {
	Kind  PartKind
	Name  string
	Index int
}

func (p Part) String() string {
	switch p.Kind {
	case PartIndex:
		return "[" + strconv.Itoa(p.Index) + "]"
	case PartKey:
		return "['" + p.Name + "']"
	}
	return p.Name
}

// FieldAccessError reports a malformed path
type FieldAccessError struct {
	Path    string
	Message string
}

func (e *FieldAccessError) Error() string {
	return fmt.Sprintf("field path error for '%s': %s", e.Path, e.Message)
}

// Parse splits a path such as a.b[0]['k'] into parts.
// Supported forms:
//   - a.b.c
//   - a.b[0], a.b[-1]
//   - a.b["key"], a.b['key']
//   - a[0].b[1].c['key']
func Parse(path string) ([]Part, error) {
	if path == "" {
		return nil, &FieldAccessError{Path: path, Message: "empty field path"}
	}
	var parts []Part
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return nil, &FieldAccessError{Path: path, Message: "empty segment"}
		}
		bracket := strings.IndexByte(segment, '[')
		if bracket == -1 {
			parts = append(parts, Part{Kind: PartField, Name: segment})
			continue
		}
		if bracket > 0 {
			parts = append(parts, Part{Kind: PartField, Name: segment[:bracket]})
		}
		rest := segment[bracket:]
		for rest != "" {
			if rest[0] != '[' {
				return nil, &FieldAccessError{Path: path, Message: "unexpected text after bracket"}
			}
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return nil, &FieldAccessError{Path: path, Message: "unmatched bracket in field path"}
			}
			part, err := parseBracket(rest[1:end])
			if err != nil {
				return nil, &FieldAccessError{Path: path, Message: err.Error()}
			}
			parts = append(parts, part)
			rest = rest[end+1:]
		}
	}
	return parts, nil
}

func parseBracket(content string) (Part, error) {
	content = strings.TrimSpace(content)
	if len(content) >= 2 {
		q := content[0]
		if (q == '\'' || q == '"') && content[len(content)-1] == q {
			return Part{Kind: PartKey, Name: content[1 : len(content)-1]}, nil
		}
	}
	n, err := strconv.Atoi(content)
	if err != nil {
		return Part{}, fmt.Errorf("invalid bracket content %q, expected number or quoted string", content)
	}
	return Part{Kind: PartIndex, Index: n}, nil
}

// Get walks data along path. The second result is false when any step is
// missing.
func Get(data interface{}, path string) (interface{}, bool) {
	parts, err := Parse(path)
	if err != nil {
		return nil, false
	}
	current := data
	for _, part := range parts {
		var next interface{}
		var ok bool
		switch part.Kind {
		case PartField, PartKey:
			next, ok = Field(current, part.Name)
		case PartIndex:
			next, ok = index(current, part.Index, true)
			if !ok {
				// 整数键的map
				next, ok = Item(current, part.Index)
			}
		}
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Field reads a named field of a map with string keys or of a struct.
// Struct fields match by Go name first, then by json tag.
func Field(data interface{}, name string) (interface{}, bool) {
	if m, ok := data.(map[string]interface{}); ok {
		v, found := m[name]
		return v, found
	}
	v, ok := indirect(data)
	if !ok {
		return nil, false
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		e := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !e.IsValid() {
			return nil, false
		}
		return e.Interface(), true
	case reflect.Struct:
		return structField(v, name)
	}
	return nil, false
}

// Item reads element key of a map, or the zero based element of a slice.
// Indices out of range are missing.
func Item(data interface{}, key interface{}) (interface{}, bool) {
	v, ok := indirect(data)
	if !ok || key == nil {
		return nil, false
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		i, ok := toInt(key)
		if !ok {
			return nil, false
		}
		return index(data, i, false)
	case reflect.Map:
		k := reflect.ValueOf(key)
		kt := v.Type().Key()
		switch {
		case k.Type().ConvertibleTo(kt) && !(kt.Kind() == reflect.String && k.Kind() != reflect.String):
			k = k.Convert(kt)
		case kt.Kind() == reflect.String:
			k = reflect.ValueOf(fmt.Sprint(key)).Convert(kt)
		default:
			return nil, false
		}
		e := v.MapIndex(k)
		if !e.IsValid() {
			return nil, false
		}
		return e.Interface(), true
	case reflect.Struct:
		if name, ok := key.(string); ok {
			return structField(v, name)
		}
	}
	return nil, false
}

func index(data interface{}, i int, fromEnd bool) (interface{}, bool) {
	if l, ok := data.([]interface{}); ok {
		if i < 0 && fromEnd {
			i += len(l)
		}
		if i < 0 || i >= len(l) {
			return nil, false
		}
		return l[i], true
	}
	v, ok := indirect(data)
	if !ok || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return nil, false
	}
	if i < 0 && fromEnd {
		i += v.Len()
	}
	if i < 0 || i >= v.Len() {
		return nil, false
	}
	return v.Index(i).Interface(), true
}

func structField(v reflect.Value, name string) (interface{}, bool) {
	t := v.Type()
	if f, ok := t.FieldByName(name); ok && f.IsExported() {
		return v.FieldByIndex(f.Index).Interface(), true
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == name {
			return v.Field(i).Interface(), true
		}
	}
	return nil, false
}

func indirect(data interface{}) (reflect.Value, bool) {
	if data == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, true
}

func toInt(key interface{}) (int, bool) {
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f == float64(int(f)) {
			return int(f), true
		}
	}
	return 0, false
}

